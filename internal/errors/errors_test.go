package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "listing"}
		assert.Equal(t, "listing not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "fact"}
		err2 := &NotFoundError{Entity: "fact"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "fact"}
		err2 := &NotFoundError{Entity: "listing"}
		assert.False(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("resolve court: %w", ErrListingNotFound)
		assert.True(t, errors.Is(wrapped, ErrListingNotFound))
		assert.False(t, errors.Is(wrapped, ErrClaimNotFound))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrFactNotFound))
		assert.True(t, IsNotFound(fmt.Errorf("wrapped: %w", ErrClaimNotFound)))
		assert.False(t, IsNotFound(ErrListingAlreadyOwned))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	t.Run("Error message with context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "user", Context: "with this username"}
		assert.Equal(t, "user already exists with this username", err.Error())
	})

	t.Run("Error message without context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "user"}
		assert.Equal(t, "user already exists", err.Error())
	})

	t.Run("IsAlreadyExists helper", func(t *testing.T) {
		assert.True(t, IsAlreadyExists(ErrUserExists))
		assert.False(t, IsAlreadyExists(ErrUserNotFound))
	})
}

func TestAlreadyVotedError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := NewAlreadyVotedError("u1", "f1")
		assert.Equal(t, "user u1 already voted for f1", err.Error())
		assert.Equal(t, "already voted", ErrAlreadyVoted.Error())
	})

	t.Run("errors.Is matches the sentinel", func(t *testing.T) {
		err := fmt.Errorf("add upvote: %w", NewAlreadyVotedError("u1", "f1"))
		assert.True(t, errors.Is(err, ErrAlreadyVoted))
		assert.True(t, IsAlreadyVoted(err))
		assert.False(t, IsAlreadyVoted(ErrFactNotFound))
	})
}

func TestInvalidStateTransitionError(t *testing.T) {
	err := NewInvalidStateTransitionError("APPROVED", "APPROVED")
	assert.Equal(t, "invalid state transition from APPROVED to APPROVED", err.Error())
	assert.True(t, errors.Is(err, ErrInvalidStateTransition))
	assert.True(t, IsInvalidStateTransition(fmt.Errorf("approve: %w", err)))
	assert.False(t, IsInvalidStateTransition(ErrAlreadyVoted))
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "daysOfWeek", Message: "must be between 1 and 7"}
		assert.Equal(t, "validation error: daysOfWeek - must be between 1 and 7", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "invalid format"}
		assert.Equal(t, "validation error: invalid format", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		err := NewValidationError("sortBy", "invalid")
		assert.True(t, IsValidation(err))
		assert.False(t, IsValidation(ErrListingNotFound))
	})
}

func TestConfigurationAndAuthErrors(t *testing.T) {
	cfg := NewConfigurationError("no fact store registered for COURT/PRICE")
	assert.True(t, IsConfiguration(cfg))
	assert.False(t, IsConfiguration(ErrFactNotFound))

	assert.True(t, IsAuthentication(ErrMissingUser))
	assert.True(t, IsAuthorization(ErrAdminOnly))
	assert.True(t, IsAuthorization(NewAuthorizationError("nope")))
	assert.False(t, IsAuthentication(ErrAdminOnly))
}
