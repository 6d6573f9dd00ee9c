package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/interaction-service/internal/api/dto"
	"github.com/spec-kit/interaction-service/internal/auth"
	"github.com/spec-kit/interaction-service/internal/service"
	apperrors "github.com/spec-kit/interaction-service/pkg/util/errorutil"
)

// AuthHandler manages login and logout.
type AuthHandler struct {
	service       *service.AuthService
	secureCookies bool
}

// NewAuthHandler constructs handler. secureCookies marks the session cookie
// Secure (production only).
func NewAuthHandler(authService *service.AuthService, secureCookies bool) *AuthHandler {
	return &AuthHandler{service: authService, secureCookies: secureCookies}
}

// Login POST /api/auth.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	token, expiresAt, err := h.service.Login(req.Username, req.Password)
	if err != nil {
		return err
	}

	c.Cookie(auth.NewSessionCookie(token, expiresAt, h.secureCookies))
	return c.JSON(fiber.Map{"success": true})
}

// Logout DELETE /api/auth.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(auth.ClearSessionCookie(h.secureCookies))
	return c.JSON(fiber.Map{"success": true})
}
