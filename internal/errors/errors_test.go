package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "conversation"}
		assert.Equal(t, "conversation not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "conversation"}
		err2 := &NotFoundError{Entity: "conversation"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "conversation"}
		err2 := &NotFoundError{Entity: "appointment"}
		assert.False(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is with predefined errors", func(t *testing.T) {
		assert.True(t, errors.Is(ErrConversationNotFound, ErrConversationNotFound))
		assert.False(t, errors.Is(ErrConversationNotFound, ErrTenantNotFound))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrTenantNotFound))
		assert.False(t, IsNotFound(ErrTenantSlugExists))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	t.Run("Error message with context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "tenant", Context: "with this slug"}
		assert.Equal(t, "tenant already exists with this slug", err.Error())
	})

	t.Run("Error message without context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "tenant"}
		assert.Equal(t, "tenant already exists", err.Error())
	})

	t.Run("errors.Is comparison", func(t *testing.T) {
		err1 := &AlreadyExistsError{Entity: "user", Context: "with this email"}
		err2 := &AlreadyExistsError{Entity: "user", Context: "with this email"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("IsAlreadyExists helper", func(t *testing.T) {
		assert.True(t, IsAlreadyExists(ErrUserEmailExists))
		assert.False(t, IsAlreadyExists(ErrUserNotFound))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "email", Message: "invalid format"}
		assert.Equal(t, "validation error: email - invalid format", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "invalid format"}
		assert.Equal(t, "validation error: invalid format", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		err := NewValidationError("email", "invalid")
		assert.True(t, IsValidation(err))
		assert.False(t, IsValidation(ErrTenantNotFound))
	})
}

func TestInvalidRangeError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &InvalidRangeError{Entity: "appointment"}
		assert.Equal(t, "appointment has an invalid time range: end must be after start", err.Error())
	})

	t.Run("errors.Is with predefined error", func(t *testing.T) {
		assert.True(t, errors.Is(ErrAppointmentInvalidRange, ErrAppointmentInvalidRange))
	})

	t.Run("IsInvalidRange helper", func(t *testing.T) {
		assert.True(t, IsInvalidRange(ErrAppointmentInvalidRange))
		assert.False(t, IsInvalidRange(ErrAppointmentNotFound))
	})
}

func TestAuthenticationError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := NewAuthenticationError("token expired")
		assert.Equal(t, "token expired", err.Error())
	})

	t.Run("IsAuthentication helper", func(t *testing.T) {
		assert.True(t, IsAuthentication(ErrInvalidCredentials))
		assert.False(t, IsAuthentication(ErrUserNotFound))
	})
}

func TestHelperConstructors(t *testing.T) {
	t.Run("NewNotFoundError", func(t *testing.T) {
		err := NewNotFoundError("widget")
		assert.Equal(t, "widget not found", err.Error())
		assert.True(t, IsNotFound(err))
	})

	t.Run("NewAlreadyExistsError", func(t *testing.T) {
		err := NewAlreadyExistsError("tenant", "with this slug")
		assert.Equal(t, "tenant already exists with this slug", err.Error())
		assert.True(t, IsAlreadyExists(err))
	})

	t.Run("NewConfigurationError", func(t *testing.T) {
		err := NewConfigurationError("missing JWT secret")
		assert.Equal(t, "missing JWT secret", err.Error())
		assert.True(t, IsConfiguration(err))
	})
}
