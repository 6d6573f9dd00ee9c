package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/interaction-service/internal/auth"
)

func buildGateApp(t *testing.T, tm *auth.TokenManager) *fiber.App {
	t.Helper()
	app := fiber.New()
	app.Use(auth.NewSessionGate(tm).Handle)

	ok := func(c *fiber.Ctx) error { return c.SendString("ok") }
	app.Get("/", ok)
	app.Get("/login", ok)
	app.Get("/interactions", ok)
	app.Get("/api/ping", ok)
	app.Get("/health/live", ok)
	return app
}

func doGateRequest(t *testing.T, app *fiber.App, path, cookie string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: auth.SessionCookieName, Value: cookie})
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestGateRedirectsAnonymousToLogin(t *testing.T) {
	tm := auth.NewTokenManager("gate-secret", 7)
	app := buildGateApp(t, tm)

	for _, path := range []string{"/", "/interactions"} {
		resp := doGateRequest(t, app, path, "")
		assert.Equal(t, http.StatusFound, resp.StatusCode, path)
		assert.Equal(t, "/login", resp.Header.Get("Location"), path)
	}
}

func TestGateAllowsAnonymousLoginPage(t *testing.T) {
	tm := auth.NewTokenManager("gate-secret", 7)
	app := buildGateApp(t, tm)

	resp := doGateRequest(t, app, "/login", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestGateRedirectsAuthenticatedAwayFromLogin(t *testing.T) {
	tm := auth.NewTokenManager("gate-secret", 7)
	app := buildGateApp(t, tm)

	token, _, err := tm.Generate()
	require.NoError(t, err)

	resp := doGateRequest(t, app, "/login", token)
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))
}

func TestGateAllowsAuthenticatedPages(t *testing.T) {
	tm := auth.NewTokenManager("gate-secret", 7)
	app := buildGateApp(t, tm)

	token, _, err := tm.Generate()
	require.NoError(t, err)

	resp := doGateRequest(t, app, "/interactions", token)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestGateTreatsInvalidTokenAsAnonymous(t *testing.T) {
	tm := auth.NewTokenManager("gate-secret", 7)
	app := buildGateApp(t, tm)

	forged, _, err := auth.NewTokenManager("other-secret", 7).Generate()
	require.NoError(t, err)

	resp := doGateRequest(t, app, "/", forged)
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))
}

func TestGateNeverBlocksAPIOrHealth(t *testing.T) {
	tm := auth.NewTokenManager("gate-secret", 7)
	app := buildGateApp(t, tm)

	for _, path := range []string{"/api/ping", "/health/live"} {
		resp := doGateRequest(t, app, path, "")
		assert.Equal(t, http.StatusOK, resp.StatusCode, path)
	}
}
