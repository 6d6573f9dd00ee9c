package service

import (
	"strings"
	"time"

	"github.com/spec-kit/interaction-service/internal/auth"
	"github.com/spec-kit/interaction-service/internal/config"
	apperrors "github.com/spec-kit/interaction-service/pkg/util/errorutil"
)

// AuthService handles login against the single configured credential pair.
// There is no server-side session state; a successful login yields the
// signed marker and nothing else.
type AuthService struct {
	creds  auth.Credentials
	tokens *auth.TokenManager
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config) *AuthService {
	return &AuthService{
		creds: auth.Credentials{
			Username:     cfg.Auth.Username,
			Password:     cfg.Auth.Password,
			PasswordHash: cfg.Auth.PasswordHash,
		},
		tokens: auth.NewTokenManager(cfg.Auth.SessionSecret, cfg.Auth.SessionTTLDays),
	}
}

// Login validates the credential pair and issues a session token.
func (s *AuthService) Login(username, password string) (string, time.Time, error) {
	if strings.TrimSpace(username) == "" || password == "" {
		return "", time.Time{}, apperrors.NewValidationError("username and password are required", nil)
	}
	if !s.creds.Match(username, password) {
		return "", time.Time{}, apperrors.NewUnauthorized("invalid credentials")
	}
	return s.tokens.Generate()
}

// TokenManager exposes the session token manager for the gate middleware.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokens
}
