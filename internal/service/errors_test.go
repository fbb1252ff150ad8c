package service_test

import (
	"errors"
	"testing"

	"github.com/phrazzld/deckstudy/internal/service"
	"github.com/stretchr/testify/assert"
)

func TestServiceError(t *testing.T) {
	t.Parallel()

	inner := errors.New("db down")
	err := service.NewServiceError("deck", "list", "failed to list decks", inner)
	assert.Equal(t, "deck service list failed: failed to list decks: db down", err.Error())
	assert.ErrorIs(t, err, inner)

	bare := service.NewServiceError("review", "submit", "invalid rating", nil)
	assert.Equal(t, "review service submit failed: invalid rating", bare.Error())
	assert.Nil(t, bare.Unwrap())
}
