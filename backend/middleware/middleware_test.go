package middleware

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"coursereview/backend/apperrors"
	"coursereview/backend/config"
	"coursereview/backend/mocks"
	"coursereview/backend/models"
	"coursereview/backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupApp(t *testing.T) (*fiber.App, *config.Config, *mocks.UserStore) {
	t.Helper()
	cfg := config.Default()
	cfg.JWTSecret = "testsecret"
	users := new(mocks.UserStore)

	app := fiber.New(fiber.Config{ErrorHandler: utils.ErrorHandler})
	app.Use(LoadUser(cfg, users))
	app.Get("/open", RedirectIfAuthenticated("/index"), func(c *fiber.Ctx) error {
		return c.SendString("form")
	})
	app.Get("/private", AuthMiddleware(), func(c *fiber.Ctx) error {
		return c.SendString(CurrentUser(c).Username)
	})
	app.Get("/admin", AuthMiddleware(), AdminMiddleware("You do not have permission to access this page."), func(c *fiber.Ctx) error {
		return c.SendString("dashboard")
	})
	return app, cfg, users
}

func tokenFor(t *testing.T, id uint, cfg *config.Config) string {
	t.Helper()
	token, err := utils.GenerateJWTToken(id, cfg)
	require.NoError(t, err)
	return token
}

func get(t *testing.T, app *fiber.App, path, token string) (int, string, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest("GET", path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)

	var buf bytes.Buffer
	_, _ = buf.ReadFrom(resp.Body)
	var body map[string]interface{}
	_ = json.Unmarshal(buf.Bytes(), &body)
	return resp.StatusCode, buf.String(), body
}

func TestAuthMiddlewareRejectsAnonymous(t *testing.T) {
	app, _, _ := setupApp(t)

	status, _, body := get(t, app, "/private", "")
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Please log in to access this page.", body["message"])
}

func TestAuthMiddlewareAcceptsKnownUser(t *testing.T) {
	app, cfg, users := setupApp(t)
	users.On("GetByID", mock.Anything, uint(3)).Return(&models.User{ID: 3, Username: "alice"}, nil)

	status, text, _ := get(t, app, "/private", tokenFor(t, 3, cfg))
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "alice", text)
	users.AssertExpectations(t)
}

func TestAuthMiddlewareRejectsDeletedUser(t *testing.T) {
	app, cfg, users := setupApp(t)
	users.On("GetByID", mock.Anything, uint(9)).Return(nil, apperrors.NewResourceNotFoundError("User not found"))

	status, _, _ := get(t, app, "/private", tokenFor(t, 9, cfg))
	assert.Equal(t, fiber.StatusUnauthorized, status)
}

func TestAdminMiddleware(t *testing.T) {
	app, cfg, users := setupApp(t)
	users.On("GetByID", mock.Anything, uint(1)).Return(&models.User{ID: 1, Username: "admin", IsAdmin: true}, nil)
	users.On("GetByID", mock.Anything, uint(2)).Return(&models.User{ID: 2, Username: "bob"}, nil)

	status, text, _ := get(t, app, "/admin", tokenFor(t, 1, cfg))
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "dashboard", text)

	status, _, body := get(t, app, "/admin", tokenFor(t, 2, cfg))
	assert.Equal(t, fiber.StatusForbidden, status)
	assert.Equal(t, "You do not have permission to access this page.", body["message"])

	status, _, _ = get(t, app, "/admin", "")
	assert.Equal(t, fiber.StatusUnauthorized, status)
}

func TestRedirectIfAuthenticated(t *testing.T) {
	app, cfg, users := setupApp(t)
	users.On("GetByID", mock.Anything, uint(2)).Return(&models.User{ID: 2, Username: "bob"}, nil)

	req := httptest.NewRequest("GET", "/open", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, 2, cfg))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/index", resp.Header.Get("Location"))

	status, text, _ := get(t, app, "/open", "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "form", text)
}
