package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/salusmind/psicossocial-api/internal/application/usecases"
)

// UserHandler lida com requisições administrativas de usuários
type UserHandler struct {
	userUseCase *usecases.UserUseCase
}

// NewUserHandler cria uma nova instância de UserHandler
func NewUserHandler(userUseCase *usecases.UserUseCase) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
	}
}

func userError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, usecases.ErrUsuarioNaoEncontrado):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Usuário não encontrado"})
	case errors.Is(err, usecases.ErrEmailJaCadastrado):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "E-mail já cadastrado"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
}

// List retorna usuários paginados
// @Summary Lista usuários
// @Tags admin
// @Produce json
// @Param page query int false "Página atual" default(1)
// @Param limit query int false "Itens por página" default(10)
// @Param empresa_id query string false "Filtrar por empresa"
// @Param role query string false "Filtrar por papel"
// @Success 200 {object} map[string]interface{} "Lista de usuários"
// @Router /api/admin/users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "10"))

	users, total, err := h.userUseCase.List(c.Context(), page, limit, c.Query("empresa_id", ""), c.Query("role", ""))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{
		"data":  users,
		"total": total,
		"page":  page,
		"limit": limit,
	})
}

// Get retorna um usuário pelo ID
func (h *UserHandler) Get(c *fiber.Ctx) error {
	user, err := h.userUseCase.Get(c.Context(), c.Params("id"))
	if err != nil {
		return userError(c, err)
	}
	return c.JSON(user)
}

// Create cadastra um usuário
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var input usecases.UserInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Corpo da requisição inválido"})
	}
	if input.Email == "" || input.Senha == "" || input.Role == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "E-mail, senha e papel são obrigatórios"})
	}

	user, err := h.userUseCase.Create(c.Context(), input)
	if err != nil {
		return userError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// Update altera um usuário
func (h *UserHandler) Update(c *fiber.Ctx) error {
	var input usecases.UserInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Corpo da requisição inválido"})
	}

	user, err := h.userUseCase.Update(c.Context(), c.Params("id"), input)
	if err != nil {
		return userError(c, err)
	}
	return c.JSON(user)
}

// Delete remove um usuário
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	if err := h.userUseCase.Delete(c.Context(), c.Params("id")); err != nil {
		return userError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
