package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
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

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// UpstreamError wraps a failure reported by an external collaborator
// (identity API, Slack, event bus).
type UpstreamError struct {
	Service string
	Err     error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s request failed: %v", e.Service, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// PersistenceError wraps a storage failure with the operation that failed
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("failed to %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// Validation Errors
var (
	ErrInvalidRange       = &ValidationError{Field: "startDate", Message: "startDate must be before or equal to endDate"}
	ErrInvalidDateFormat  = &ValidationError{Field: "dates", Message: "dates must be ISO-8601 calendar dates (YYYY-MM-DD)"}
	ErrInvalidLeaveStatus = &ValidationError{Field: "status", Message: "status must be one of LEAVE, HOLIDAY, AVAILABLE"}
	ErrNoDates            = &ValidationError{Field: "dates", Message: "at least one date is required"}
)

// Scheduler Errors
var (
	ErrLockUnavailable = errors.New("lock is held by another instance")
)

// Authentication Errors
var (
	ErrMissingUserID      = &AuthenticationError{Message: "authenticated user id not found in context"}
	ErrMachineTokenDenied = &AuthorizationError{Message: "machine tokens are not allowed to access leave data"}
	ErrInsufficientRole   = &AuthorizationError{Message: "insufficient role to access this resource"}
)

// Configuration Errors
var (
	ErrSlackNotConfigured     = &ConfigurationError{Message: "slack is not configured: SLACK_BOT_KEY or SLACK_CHANNEL_ID missing"}
	ErrM2MNotConfigured       = &ConfigurationError{Message: "m2m auth is not configured: M2M_AUTH_URL, M2M_AUTH_CLIENT_ID or M2M_AUTH_CLIENT_SECRET missing"}
	ErrReminderTemplateNotSet = &ConfigurationError{Message: "SENDGRID_LEAVE_REMINDER_TEMPLATE_ID is not configured"}
)

// Not Found Errors
var (
	ErrIdentityRoleNotFound = &NotFoundError{Entity: "identity role"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// IsUpstream checks if an error is an UpstreamError
func IsUpstream(err error) bool {
	var upstreamErr *UpstreamError
	return errors.As(err, &upstreamErr)
}

// IsPersistence checks if an error is a PersistenceError
func IsPersistence(err error) bool {
	var persistenceErr *PersistenceError
	return errors.As(err, &persistenceErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}

// NewUpstreamError wraps err as a failure of the named external service
func NewUpstreamError(service string, err error) error {
	return &UpstreamError{Service: service, Err: err}
}

// NewPersistenceError wraps err as a failure of the named storage operation
func NewPersistenceError(op string, err error) error {
	return &PersistenceError{Op: op, Err: err}
}
