package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "team"}
		assert.Equal(t, "team not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		assert.True(t, errors.Is(&NotFoundError{Entity: "serie"}, ErrSerieNotFound))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		assert.False(t, errors.Is(ErrTeamNotFound, ErrMatchNotFound))
	})

	t.Run("IsNotFound through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("lookup: %w", ErrRankingNotFound)
		assert.True(t, IsNotFound(wrapped))
		assert.False(t, IsNotFound(ErrSerieExists))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	t.Run("Error message with context", func(t *testing.T) {
		assert.Equal(t, "serie already exists with this serie number", ErrSerieExists.Error())
	})

	t.Run("Error message without context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "team"}
		assert.Equal(t, "team already exists", err.Error())
	})

	t.Run("IsAlreadyExists helper", func(t *testing.T) {
		assert.True(t, IsAlreadyExists(fmt.Errorf("create: %w", ErrSerieExists)))
		assert.False(t, IsAlreadyExists(ErrSerieNotFound))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "serieNumber", Message: "failed on 'min=1'"}
		assert.Equal(t, "validation error: serieNumber - failed on 'min=1'", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "invalid format"}
		assert.Equal(t, "validation error: invalid format", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		err := fmt.Errorf("validation failed: %w", NewValidationError("name", "required"))
		assert.True(t, IsValidation(err))
		assert.False(t, IsValidation(ErrTeamNotFound))
	})
}

func TestHelperFunctions(t *testing.T) {
	assert.True(t, errors.Is(NewNotFoundError("team"), ErrTeamNotFound))
	assert.True(t, errors.Is(NewAlreadyExistsError("serie", ""), ErrSerieExists))
	assert.True(t, errors.Is(fmt.Errorf("discover: %w", ErrDataDirMissing), ErrDataDirMissing))
}
