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

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "with this username"
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

// AlreadyVotedError is returned when a voter upvotes the same fact twice.
// It is recoverable: the vote the user wanted is already recorded.
type AlreadyVotedError struct {
	VoterID string
	FactID  string
}

func (e *AlreadyVotedError) Error() string {
	if e.VoterID == "" && e.FactID == "" {
		return "already voted"
	}
	return fmt.Sprintf("user %s already voted for %s", e.VoterID, e.FactID)
}

// Is matches any AlreadyVotedError so callers can compare against ErrAlreadyVoted
func (e *AlreadyVotedError) Is(target error) bool {
	_, ok := target.(*AlreadyVotedError)
	return ok
}

// InvalidStateTransitionError is returned when a terminal ownership claim is moved again
type InvalidStateTransitionError struct {
	From string
	To   string
}

func (e *InvalidStateTransitionError) Error() string {
	return fmt.Sprintf("invalid state transition from %s to %s", e.From, e.To)
}

// Is matches any InvalidStateTransitionError
func (e *InvalidStateTransitionError) Is(target error) bool {
	_, ok := target.(*InvalidStateTransitionError)
	return ok
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

// ConfigurationError represents configuration-related errors.
// In this service it means an entity/info type combination was never registered.
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrListingNotFound = &NotFoundError{Entity: "listing"}
	ErrFactNotFound    = &NotFoundError{Entity: "fact"}
	ErrClaimNotFound   = &NotFoundError{Entity: "ownership claim"}
	ErrUserNotFound    = &NotFoundError{Entity: "user"}
)

// Already Exists Errors
var (
	ErrUserExists = &AlreadyExistsError{Entity: "user", Context: "with this id or username"}
)

// Business Logic Errors
var (
	ErrAlreadyVoted            = &AlreadyVotedError{}
	ErrInvalidStateTransition  = &InvalidStateTransitionError{}
	ErrListingAlreadyOwned     = errors.New("listing already has a verified owner")
	ErrInvalidPaginationParams = errors.New("invalid pagination parameters")
)

// Authentication Errors
var (
	ErrMissingUser = &AuthenticationError{Message: "authenticated user not found in context"}
	ErrAdminOnly   = &AuthorizationError{Message: "admin role required"}
)

// Helper Functions

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

// IsAlreadyVoted checks if an error is an AlreadyVotedError
func IsAlreadyVoted(err error) bool {
	var votedErr *AlreadyVotedError
	return errors.As(err, &votedErr)
}

// IsInvalidStateTransition checks if an error is an InvalidStateTransitionError
func IsInvalidStateTransition(err error) bool {
	var transitionErr *InvalidStateTransitionError
	return errors.As(err, &transitionErr)
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

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewAlreadyVotedError creates an AlreadyVotedError for a voter and fact
func NewAlreadyVotedError(voterID, factID string) error {
	return &AlreadyVotedError{VoterID: voterID, FactID: factID}
}

// NewInvalidStateTransitionError creates an InvalidStateTransitionError
func NewInvalidStateTransitionError(from, to string) error {
	return &InvalidStateTransitionError{From: from, To: to}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}
