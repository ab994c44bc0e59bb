package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/salusmind/psicossocial-api/internal/application/usecases"
)

// AuthHandler lida com autenticação
type AuthHandler struct {
	authUseCase *usecases.AuthUseCase
}

// NewAuthHandler cria uma nova instância de AuthHandler
func NewAuthHandler(authUseCase *usecases.AuthUseCase) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
	}
}

type loginRequest struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

// Login autentica o usuário e emite um token de acesso
// @Summary Autentica um usuário
// @Description Valida e-mail e senha e retorna um bearer token com os dados do usuário
// @Tags auth
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Token e usuário autenticado"
// @Failure 400 {object} map[string]interface{} "Corpo inválido"
// @Failure 401 {object} map[string]interface{} "Credenciais inválidas"
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Corpo da requisição inválido",
		})
	}
	if req.Email == "" || req.Senha == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "E-mail e senha são obrigatórios",
		})
	}

	user, token, err := h.authUseCase.Login(c.Context(), req.Email, req.Senha)
	if err != nil {
		if errors.Is(err, usecases.ErrCredenciaisInvalidas) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Credenciais inválidas",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Erro ao autenticar: " + err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"token": token,
		"user":  user,
	})
}
