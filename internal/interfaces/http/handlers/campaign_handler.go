package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/salusmind/psicossocial-api/internal/application/usecases"
	"github.com/salusmind/psicossocial-api/internal/domain/entities"
	"github.com/salusmind/psicossocial-api/internal/interfaces/http/middleware"
)

// CampaignHandler lida com requisições de campanhas
type CampaignHandler struct {
	campaignUseCase *usecases.CampaignUseCase
}

// NewCampaignHandler cria uma nova instância de CampaignHandler
func NewCampaignHandler(campaignUseCase *usecases.CampaignUseCase) *CampaignHandler {
	return &CampaignHandler{
		campaignUseCase: campaignUseCase,
	}
}

// resolveEmpresaID devolve a empresa alvo: a do chamador, ou o query param
// empresa_id quando o chamador é staff
func resolveEmpresaID(c *fiber.Ctx) string {
	empresaID, _ := c.Locals(middleware.LocalEmpresaID).(string)
	role, _ := c.Locals(middleware.LocalRole).(string)
	if role == entities.RoleAdmin {
		if override := c.Query("empresa_id", ""); override != "" {
			return override
		}
	}
	return empresaID
}

func campaignError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, usecases.ErrCampanhaNaoEncontrada):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Campanha não encontrada"})
	case errors.Is(err, usecases.ErrAcessoNegado):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Campanha pertence a outra empresa"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
}

// List retorna as campanhas da empresa
// @Summary Lista campanhas
// @Tags campaigns
// @Produce json
// @Success 200 {object} map[string]interface{} "Lista de campanhas"
// @Router /api/campaigns [get]
func (h *CampaignHandler) List(c *fiber.Ctx) error {
	empresaID := resolveEmpresaID(c)
	if empresaID == "" {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Usuário sem associação com empresa"})
	}

	campaigns, err := h.campaignUseCase.List(c.Context(), empresaID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"data": campaigns})
}

// Get retorna uma campanha específica
func (h *CampaignHandler) Get(c *fiber.Ctx) error {
	empresaID := resolveEmpresaID(c)
	if empresaID == "" {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Usuário sem associação com empresa"})
	}

	campaign, err := h.campaignUseCase.Get(c.Context(), c.Params("id"), empresaID)
	if err != nil {
		return campaignError(c, err)
	}
	return c.JSON(campaign)
}

// Create cria uma campanha
func (h *CampaignHandler) Create(c *fiber.Ctx) error {
	empresaID := resolveEmpresaID(c)
	if empresaID == "" {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Usuário sem associação com empresa"})
	}

	var input usecases.CampaignInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Corpo da requisição inválido"})
	}
	if input.Nome == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Nome da campanha é obrigatório"})
	}

	campaign, err := h.campaignUseCase.Create(c.Context(), empresaID, input)
	if err != nil {
		return campaignError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(campaign)
}

// Update altera uma campanha
func (h *CampaignHandler) Update(c *fiber.Ctx) error {
	empresaID := resolveEmpresaID(c)
	if empresaID == "" {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Usuário sem associação com empresa"})
	}

	var input usecases.CampaignInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Corpo da requisição inválido"})
	}

	campaign, err := h.campaignUseCase.Update(c.Context(), c.Params("id"), empresaID, input)
	if err != nil {
		return campaignError(c, err)
	}
	return c.JSON(campaign)
}

// Delete remove uma campanha
func (h *CampaignHandler) Delete(c *fiber.Ctx) error {
	empresaID := resolveEmpresaID(c)
	if empresaID == "" {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Usuário sem associação com empresa"})
	}

	if err := h.campaignUseCase.Delete(c.Context(), c.Params("id"), empresaID); err != nil {
		return campaignError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
