package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/salusmind/psicossocial-api/internal/application/usecases"
	"github.com/salusmind/psicossocial-api/internal/interfaces/http/middleware"
)

// ResponseHandler lida com a submissão de respostas do questionário
type ResponseHandler struct {
	responseUseCase *usecases.ResponseUseCase
	userUseCase     *usecases.UserUseCase
}

// NewResponseHandler cria uma nova instância de ResponseHandler
func NewResponseHandler(responseUseCase *usecases.ResponseUseCase, userUseCase *usecases.UserUseCase) *ResponseHandler {
	return &ResponseHandler{
		responseUseCase: responseUseCase,
		userUseCase:     userUseCase,
	}
}

type submitRequest struct {
	CampanhaID string            `json:"campanha_id"`
	Respostas  map[string]string `json:"respostas"`
}

// Submit registra a resposta completa de um colaborador a uma campanha
// @Summary Submete o questionário
// @Description Registra as respostas Likert de um colaborador a uma campanha, congelando a segmentação no envio
// @Tags surveys
// @Accept json
// @Produce json
// @Success 201 {object} map[string]interface{} "Resposta registrada"
// @Failure 400 {object} map[string]interface{} "Rótulo Likert inválido ou corpo malformado"
// @Failure 404 {object} map[string]interface{} "Campanha não encontrada"
// @Failure 409 {object} map[string]interface{} "Campanha já respondida"
// @Router /api/surveys/responses [post]
func (h *ResponseHandler) Submit(c *fiber.Ctx) error {
	userID, _ := c.Locals(middleware.LocalUserID).(string)

	var req submitRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Corpo da requisição inválido"})
	}
	if req.CampanhaID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "campanha_id é obrigatório"})
	}

	user, err := h.userUseCase.Get(c.Context(), userID)
	if err != nil {
		return userError(c, err)
	}

	response, err := h.responseUseCase.Submit(c.Context(), user, req.CampanhaID, req.Respostas)
	if err != nil {
		switch {
		case errors.Is(err, usecases.ErrCampanhaNaoEncontrada):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Campanha não encontrada"})
		case errors.Is(err, usecases.ErrCampanhaEncerrada):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Campanha não está ativa"})
		case errors.Is(err, usecases.ErrRespostaDuplicada):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Campanha já respondida por este colaborador"})
		case errors.Is(err, usecases.ErrRespostaVazia) || strings.Contains(err.Error(), "resposta inválida"):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":         response.ID,
		"created_at": response.CreatedAt,
	})
}
