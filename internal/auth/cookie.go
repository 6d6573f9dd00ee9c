package auth

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// SessionCookieName is fixed; there is no server-side session table keyed
// off it.
const SessionCookieName = "tanishq_auth"

// NewSessionCookie builds the session cookie: host-only, HttpOnly,
// SameSite=Lax, Secure only in production.
func NewSessionCookie(token string, expiresAt time.Time, secure bool) *fiber.Cookie {
	return &fiber.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HTTPOnly: true,
		Secure:   secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	}
}

// ClearSessionCookie builds an expired cookie that removes the session
// marker immediately.
func ClearSessionCookie(secure bool) *fiber.Cookie {
	return &fiber.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	}
}
