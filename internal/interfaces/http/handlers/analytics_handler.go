package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/salusmind/psicossocial-api/internal/application/usecases"
	"github.com/salusmind/psicossocial-api/internal/domain/entities"
	"github.com/salusmind/psicossocial-api/internal/interfaces/http/middleware"
)

// AnalyticsHandler lida com requisições do dashboard de riscos psicossociais
type AnalyticsHandler struct {
	analyticsUseCase *usecases.AnalyticsUseCase
}

// NewAnalyticsHandler cria uma nova instância de AnalyticsHandler
func NewAnalyticsHandler(analyticsUseCase *usecases.AnalyticsUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsUseCase: analyticsUseCase,
	}
}

// GetDashboard retorna o dashboard consolidado da empresa do chamador
// @Summary Retorna o dashboard de riscos psicossociais
// @Description Retorna scores por dimensão, IRP global, maturidade, distribuições e demais métricas derivadas, recalculados a cada requisição
// @Tags analytics
// @Accept json
// @Produce json
// @Param unidade query string false "Filtrar por unidade/filial"
// @Param genero query string false "Filtrar por gênero"
// @Param nivelCargo query string false "Filtrar por nível de cargo"
// @Param area query string false "Filtrar por área"
// @Success 200 {object} entities.DashboardPayload "Dados consolidados do dashboard"
// @Failure 403 {object} map[string]interface{} "Usuário sem empresa associada"
// @Failure 404 {object} map[string]interface{} "Empresa não encontrada"
// @Router /api/analytics/dashboard [get]
func (h *AnalyticsHandler) GetDashboard(c *fiber.Ctx) error {
	empresaID, _ := c.Locals(middleware.LocalEmpresaID).(string)
	if empresaID == "" {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Usuário sem associação com empresa",
		})
	}

	filter := entities.ResponseFilter{
		Unidade:    c.Query("unidade", ""),
		Genero:     c.Query("genero", ""),
		NivelCargo: c.Query("nivelCargo", ""),
		Area:       c.Query("area", ""),
	}

	payload, err := h.analyticsUseCase.GetDashboard(c.Context(), empresaID, filter)
	if err != nil {
		if errors.Is(err, usecases.ErrEmpresaNaoEncontrada) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Empresa não encontrada",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Erro ao montar dashboard: " + err.Error(),
		})
	}

	return c.JSON(payload)
}
