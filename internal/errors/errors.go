package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found.
// A row that exists under a different tenant is reported exactly the same
// way as a row that does not exist at all, so callers cannot probe for
// another tenant's data.
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "with this slug"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// InvalidRangeError represents an error when a time range is inverted or empty
type InvalidRangeError struct {
	Entity string
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("%s has an invalid time range: end must be after start", e.Entity)
}

// Is enables errors.Is() comparison for InvalidRangeError
func (e *InvalidRangeError) Is(target error) bool {
	t, ok := target.(*InvalidRangeError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrTenantNotFound       = &NotFoundError{Entity: "tenant"}
	ErrUserNotFound         = &NotFoundError{Entity: "user"}
	ErrConversationNotFound = &NotFoundError{Entity: "conversation"}
	ErrMessageNotFound      = &NotFoundError{Entity: "message"}
	ErrAppointmentNotFound  = &NotFoundError{Entity: "appointment"}
	ErrSubscriptionNotFound = &NotFoundError{Entity: "subscription"}
)

// Already Exists Errors
var (
	ErrTenantSlugExists   = &AlreadyExistsError{Entity: "tenant", Context: "with this slug"}
	ErrUserEmailExists    = &AlreadyExistsError{Entity: "user", Context: "with this email"}
	ErrSubscriptionExists = &AlreadyExistsError{Entity: "subscription", Context: "for this tenant"}
)

// Range Errors
var (
	ErrAppointmentInvalidRange = &InvalidRangeError{Entity: "appointment"}
)

// Authentication Errors
var (
	ErrInvalidCredentials = &AuthenticationError{Message: "invalid email or password"}
	ErrInvalidToken       = &AuthenticationError{Message: "invalid or expired token"}
)

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsInvalidRange checks if an error is an InvalidRangeError
func IsInvalidRange(err error) bool {
	var rangeErr *InvalidRangeError
	return errors.As(err, &rangeErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}
