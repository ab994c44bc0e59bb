package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/salusmind/psicossocial-api/internal/domain/entities"
	"github.com/salusmind/psicossocial-api/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "segredo-de-teste"

func testApp() *fiber.App {
	app := fiber.New()
	app.Get("/protegida", Protected(testSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"empresa_id": c.Locals(LocalEmpresaID)})
	})
	app.Get("/dashboard", Protected(testSecret), RequireCompany(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	app.Get("/admin", Protected(testSecret), RequireRole(entities.RoleAdmin), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func tokenFor(t *testing.T, user *entities.User) string {
	t.Helper()
	token, err := utils.GenerateToken(user, testSecret, time.Hour)
	require.NoError(t, err)
	return token
}

func doRequest(t *testing.T, app *fiber.App, path, token string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestProtectedRejectsMissingToken(t *testing.T) {
	resp := doRequest(t, testApp(), "/protegida", "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestProtectedRejectsGarbageToken(t *testing.T) {
	resp := doRequest(t, testApp(), "/protegida", "nao-é-um-jwt")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestProtectedAcceptsValidToken(t *testing.T) {
	token := tokenFor(t, &entities.User{ID: "u1", EmpresaID: "emp-1", Role: entities.RoleEmpresa})
	resp := doRequest(t, testApp(), "/protegida", token)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRequireCompanyRejectsStaffWithoutCompany(t *testing.T) {
	token := tokenFor(t, &entities.User{ID: "u1", Role: entities.RoleAdmin})
	resp := doRequest(t, testApp(), "/dashboard", token)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestRequireCompanyAcceptsCompanyUser(t *testing.T) {
	token := tokenFor(t, &entities.User{ID: "u1", EmpresaID: "emp-1", Role: entities.RoleEmpresa})
	resp := doRequest(t, testApp(), "/dashboard", token)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRequireRoleEnforcesRole(t *testing.T) {
	admin := tokenFor(t, &entities.User{ID: "u1", Role: entities.RoleAdmin})
	resp := doRequest(t, testApp(), "/admin", admin)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	collab := tokenFor(t, &entities.User{ID: "u2", EmpresaID: "emp-1", Role: entities.RoleColaborador})
	resp = doRequest(t, testApp(), "/admin", collab)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}
