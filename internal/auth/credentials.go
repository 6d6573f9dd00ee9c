package auth

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"
)

// Credentials holds the single configured username/password pair. When
// PasswordHash is set it takes precedence and the plaintext Password is
// ignored, so deployments can move off the default credentials without a
// breaking change.
type Credentials struct {
	Username     string
	Password     string
	PasswordHash string
}

// Match verifies a login attempt against the configured pair.
func (c Credentials) Match(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(c.Username), []byte(username)) == 1

	var passOK bool
	if c.PasswordHash != "" {
		passOK = bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte(password)) == nil
	} else {
		passOK = subtle.ConstantTimeCompare([]byte(c.Password), []byte(password)) == 1
	}
	return userOK && passOK
}
