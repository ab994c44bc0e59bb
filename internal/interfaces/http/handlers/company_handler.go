package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/salusmind/psicossocial-api/internal/application/usecases"
)

// CompanyHandler lida com requisições administrativas de empresas
type CompanyHandler struct {
	companyUseCase *usecases.CompanyUseCase
}

// NewCompanyHandler cria uma nova instância de CompanyHandler
func NewCompanyHandler(companyUseCase *usecases.CompanyUseCase) *CompanyHandler {
	return &CompanyHandler{
		companyUseCase: companyUseCase,
	}
}

// List retorna empresas paginadas
// @Summary Lista empresas
// @Tags admin
// @Produce json
// @Param page query int false "Página atual" default(1)
// @Param limit query int false "Itens por página" default(10)
// @Success 200 {object} map[string]interface{} "Lista de empresas"
// @Router /api/admin/companies [get]
func (h *CompanyHandler) List(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "10"))

	companies, total, err := h.companyUseCase.List(c.Context(), page, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{
		"data":  companies,
		"total": total,
		"page":  page,
		"limit": limit,
	})
}

// Get retorna uma empresa pelo ID
func (h *CompanyHandler) Get(c *fiber.Ctx) error {
	company, err := h.companyUseCase.Get(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, usecases.ErrEmpresaNaoEncontrada) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Empresa não encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(company)
}

// Create cria uma empresa
func (h *CompanyHandler) Create(c *fiber.Ctx) error {
	var input usecases.CompanyInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Corpo da requisição inválido"})
	}
	if input.Nome == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Nome da empresa é obrigatório"})
	}

	company, err := h.companyUseCase.Create(c.Context(), input)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(company)
}

// Update altera uma empresa
func (h *CompanyHandler) Update(c *fiber.Ctx) error {
	var input usecases.CompanyInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Corpo da requisição inválido"})
	}

	company, err := h.companyUseCase.Update(c.Context(), c.Params("id"), input)
	if err != nil {
		if errors.Is(err, usecases.ErrEmpresaNaoEncontrada) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Empresa não encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(company)
}

// Delete remove uma empresa
func (h *CompanyHandler) Delete(c *fiber.Ctx) error {
	if err := h.companyUseCase.Delete(c.Context(), c.Params("id")); err != nil {
		if errors.Is(err, usecases.ErrEmpresaNaoEncontrada) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Empresa não encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
