package errorutil

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDomainErrorRowMisses(t *testing.T) {
	for _, sentinel := range []error{pgx.ErrNoRows, sql.ErrNoRows} {
		de := ToDomainError(sentinel)
		require.NotNil(t, de)
		assert.Equal(t, "NOT_FOUND", de.Code)
		assert.Equal(t, http.StatusNotFound, de.HTTPStatus)
	}

	wrapped := fmt.Errorf("query interaction: %w", pgx.ErrNoRows)
	assert.Equal(t, "NOT_FOUND", ToDomainError(wrapped).Code)
}

func TestToDomainErrorUnknown(t *testing.T) {
	de := ToDomainError(errors.New("connection refused"))
	require.NotNil(t, de)
	assert.Equal(t, "INTERNAL_ERROR", de.Code)
	assert.Equal(t, http.StatusInternalServerError, de.HTTPStatus)
	assert.ErrorContains(t, de, "connection refused")
}

func TestToDomainErrorPassthrough(t *testing.T) {
	original := NewValidationError("bad input", map[string]any{"field": "type"})
	de := ToDomainError(original)
	assert.Same(t, original, error(de))
	assert.Equal(t, "VALIDATION_FAILED", de.Code)
	assert.Equal(t, http.StatusBadRequest, de.HTTPStatus)

	wrapped := fmt.Errorf("handler: %w", original)
	assert.Equal(t, "VALIDATION_FAILED", ToDomainError(wrapped).Code)
}

func TestToDomainErrorNil(t *testing.T) {
	assert.Nil(t, ToDomainError(nil))
	assert.NoError(t, MapError(nil))
}

func TestConstructors(t *testing.T) {
	notFound := ToDomainError(NewNotFound("RSO", nil))
	assert.Equal(t, "RSO not found", notFound.Message)
	assert.Equal(t, http.StatusNotFound, notFound.HTTPStatus)

	unauthorized := ToDomainError(NewUnauthorized("invalid credentials"))
	assert.Equal(t, "UNAUTHORIZED", unauthorized.Code)
	assert.Equal(t, http.StatusUnauthorized, unauthorized.HTTPStatus)

	internal := ToDomainError(NewInternalError(errors.New("disk full")))
	assert.Equal(t, "INTERNAL_ERROR", internal.Code)
	assert.ErrorContains(t, internal, "disk full")
}
