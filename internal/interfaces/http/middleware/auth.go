package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/salusmind/psicossocial-api/internal/utils"
)

// Chaves usadas nos locals do Fiber após a autenticação
const (
	LocalUserID    = "user_id"
	LocalEmpresaID = "empresa_id"
	LocalRole      = "role"
)

// Protected valida o bearer token e guarda as claims nos locals da requisição
func Protected(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Token de autenticação ausente",
			})
		}

		claims, err := utils.ParseToken(strings.TrimPrefix(header, "Bearer "), secret)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Token de autenticação inválido ou expirado",
			})
		}

		c.Locals(LocalUserID, claims.UserID)
		c.Locals(LocalEmpresaID, claims.EmpresaID)
		c.Locals(LocalRole, claims.Role)
		return c.Next()
	}
}

// RequireRole restringe a rota aos papéis informados
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals(LocalRole).(string)
		for _, allowed := range roles {
			if role == allowed {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Acesso negado para este perfil",
		})
	}
}

// RequireCompany exige que o chamador tenha associação com uma empresa
func RequireCompany() fiber.Handler {
	return func(c *fiber.Ctx) error {
		empresaID, _ := c.Locals(LocalEmpresaID).(string)
		if empresaID == "" {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Usuário sem associação com empresa",
			})
		}
		return c.Next()
	}
}
