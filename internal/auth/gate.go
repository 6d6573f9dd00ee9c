package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

const (
	loginPath = "/login"
	rootPath  = "/"
)

// SessionGate decides, per inbound request to a non-API route, whether the
// caller holds a valid session marker. API and health routes always pass
// ungated; authorization on those routes is the service layer's concern
// (none is enforced in this system).
type SessionGate struct {
	tokens *TokenManager
}

// NewSessionGate constructs the gate.
func NewSessionGate(tokens *TokenManager) *SessionGate {
	return &SessionGate{tokens: tokens}
}

// Handle redirects unauthenticated page requests to the login route and
// authenticated login requests back to the application root. Stateless per
// request; the cookie is the entire session state.
func (g *SessionGate) Handle(c *fiber.Ctx) error {
	path := c.Path()
	if strings.HasPrefix(path, "/api") || strings.HasPrefix(path, "/health") {
		return c.Next()
	}

	authenticated := false
	if token := c.Cookies(SessionCookieName); token != "" {
		authenticated = g.tokens.Validate(token) == nil
	}
	isLoginPage := path == loginPath

	if !authenticated && !isLoginPage {
		return c.Redirect(loginPath, fiber.StatusFound)
	}
	if authenticated && isLoginPage {
		return c.Redirect(rootPath, fiber.StatusFound)
	}
	return c.Next()
}
