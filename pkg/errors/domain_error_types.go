package errors

import (
	"fmt"
	"strings"
	"time"
)

// DomainErrorType represents the category of domain error
type DomainErrorType string

const (
	// DomainValidationError indicates input validation failure
	DomainValidationError DomainErrorType = "VALIDATION_ERROR"

	// DomainBusinessRuleError indicates a business rule violation
	DomainBusinessRuleError DomainErrorType = "BUSINESS_RULE_ERROR"

	// DomainNotFoundError indicates a resource was not found
	DomainNotFoundError DomainErrorType = "NOT_FOUND"

	// DomainConflictError indicates a conflict with existing state
	DomainConflictError DomainErrorType = "CONFLICT"

	// DomainDataIntegrityError indicates a malformed or inconsistent source record
	DomainDataIntegrityError DomainErrorType = "DATA_INTEGRITY_ERROR"

	// DomainInfrastructureError indicates an infrastructure-level failure
	DomainInfrastructureError DomainErrorType = "INFRASTRUCTURE_ERROR"

	// DomainRateLimitError indicates rate limit exceeded
	DomainRateLimitError DomainErrorType = "RATE_LIMIT_ERROR"

	// DomainTimeoutError indicates operation timeout
	DomainTimeoutError DomainErrorType = "TIMEOUT_ERROR"

	// DomainUnavailableError indicates a dependent capability is down
	DomainUnavailableError DomainErrorType = "UNAVAILABLE_ERROR"
)

// DomainError represents a domain-specific error with rich context
type DomainError struct {
	Type       DomainErrorType        `json:"type"`
	Code       string                 `json:"code"`
	Message    string                 `json:"message"`
	Details    map[string]interface{} `json:"details,omitempty"`
	Cause      error                  `json:"-"`
	Retryable  bool                   `json:"retryable"`
	StatusCode int                    `json:"status_code"`
}

// NewDomainError creates a new domain error
func NewDomainError(errorType DomainErrorType, code string, message string) *DomainError {
	return &DomainError{
		Type:       errorType,
		Code:       code,
		Message:    message,
		Details:    make(map[string]interface{}),
		Retryable:  false,
		StatusCode: domainErrorTypeToStatusCode(errorType),
	}
}

// Error implements the error interface
func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s:%s] %s: %v", e.Type, e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s:%s] %s", e.Type, e.Code, e.Message)
}

// WithCause adds a cause to the error
func (e *DomainError) WithCause(cause error) *DomainError {
	e.Cause = cause
	return e
}

// Clone returns a copy safe to annotate. Predefined errors are shared
// package state; annotate copies, not the originals.
func (e *DomainError) Clone() *DomainError {
	details := make(map[string]interface{}, len(e.Details))
	for k, v := range e.Details {
		details[k] = v
	}
	return &DomainError{
		Type:       e.Type,
		Code:       e.Code,
		Message:    e.Message,
		Details:    details,
		Cause:      e.Cause,
		Retryable:  e.Retryable,
		StatusCode: e.StatusCode,
	}
}

// WithDetail adds a detail to the error
func (e *DomainError) WithDetail(key string, value interface{}) *DomainError {
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *DomainError) WithDetails(details map[string]interface{}) *DomainError {
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// WithRetryable sets whether the error is retryable
func (e *DomainError) WithRetryable(retryable bool) *DomainError {
	e.Retryable = retryable
	return e
}

// WithStatusCode sets a custom HTTP status code
func (e *DomainError) WithStatusCode(code int) *DomainError {
	e.StatusCode = code
	return e
}

// Is checks if the error is of a specific type
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Type == t.Type && e.Code == t.Code
}

// Unwrap returns the underlying cause
func (e *DomainError) Unwrap() error {
	return e.Cause
}

// domainErrorTypeToStatusCode maps error types to HTTP status codes
func domainErrorTypeToStatusCode(errorType DomainErrorType) int {
	switch errorType {
	case DomainValidationError:
		return 400 // Bad Request
	case DomainBusinessRuleError:
		return 422 // Unprocessable Entity
	case DomainDataIntegrityError:
		return 422 // Unprocessable Entity
	case DomainNotFoundError:
		return 404 // Not Found
	case DomainConflictError:
		return 409 // Conflict
	case DomainRateLimitError:
		return 429 // Too Many Requests
	case DomainTimeoutError:
		return 504 // Gateway Timeout
	case DomainUnavailableError:
		return 503 // Service Unavailable
	case DomainInfrastructureError:
		return 500 // Internal Server Error
	default:
		return 500 // Internal Server Error
	}
}

// Common domain errors - these are pre-defined errors that can be reused

var (
	// Celebrity errors
	ErrCelebrityNotFound = NewDomainError(
		DomainNotFoundError,
		"CELEBRITY_NOT_FOUND",
		"The requested celebrity is not in the seeded roster",
	)

	ErrCelebrityNameRequired = NewDomainError(
		DomainValidationError,
		"CELEBRITY_NAME_REQUIRED",
		"Celebrity name is required",
	)

	ErrUnknownCategory = NewDomainError(
		DomainValidationError,
		"UNKNOWN_CATEGORY",
		"Celebrity category is not one of the supported values",
	)

	// Person errors
	ErrPersonNotFound = NewDomainError(
		DomainNotFoundError,
		"PERSON_NOT_FOUND",
		"The requested person does not exist in this circle",
	)

	ErrPersonNameRequired = NewDomainError(
		DomainValidationError,
		"PERSON_NAME_REQUIRED",
		"Person name is required",
	)

	ErrUnknownRelationshipTag = NewDomainError(
		DomainValidationError,
		"UNKNOWN_RELATIONSHIP_TAG",
		"Relationship tag is not one of the supported values",
	)

	ErrChannelHandleRequired = NewDomainError(
		DomainValidationError,
		"CHANNEL_HANDLE_REQUIRED",
		"Contact channel handle is required",
	)

	// Edge errors
	ErrSelfReferentialEdge = NewDomainError(
		DomainDataIntegrityError,
		"SELF_REFERENTIAL_EDGE",
		"An edge cannot connect a person to themselves",
	)

	ErrEdgeEndpointUnknown = NewDomainError(
		DomainDataIntegrityError,
		"EDGE_ENDPOINT_UNKNOWN",
		"Edge references a person that is not part of this circle",
	)

	ErrEdgeStrengthOutOfRange = NewDomainError(
		DomainDataIntegrityError,
		"EDGE_STRENGTH_OUT_OF_RANGE",
		"Edge strength must be between 0 and 100",
	)

	// Snapshot errors
	ErrSnapshotMissing = NewDomainError(
		DomainNotFoundError,
		"SNAPSHOT_MISSING",
		"No graph snapshot has been built for this celebrity yet",
	)

	ErrRebuildInFlight = NewDomainError(
		DomainConflictError,
		"REBUILD_IN_FLIGHT",
		"A snapshot rebuild for this celebrity is already running",
	).WithRetryable(true)

	// Outreach errors
	ErrOutreachNotFound = NewDomainError(
		DomainNotFoundError,
		"OUTREACH_NOT_FOUND",
		"The requested outreach record does not exist",
	)

	ErrInvalidOutreachStatus = NewDomainError(
		DomainValidationError,
		"INVALID_OUTREACH_STATUS",
		"Outreach status must be one of draft, sent, replied",
	)

	ErrInvalidStatusTransition = NewDomainError(
		DomainBusinessRuleError,
		"INVALID_STATUS_TRANSITION",
		"Outreach status cannot move backwards in its lifecycle",
	)

	// Generation errors
	ErrGenerationUnavailable = NewDomainError(
		DomainUnavailableError,
		"GENERATION_UNAVAILABLE",
		"Message generation is temporarily unavailable",
	).WithRetryable(true)

	// Transaction errors
	ErrConcurrentModification = NewDomainError(
		DomainConflictError,
		"CONCURRENT_MODIFICATION",
		"The resource was modified by another process",
	).WithRetryable(true)

	// Rate limiting errors
	ErrRateLimitExceeded = NewDomainError(
		DomainRateLimitError,
		"RATE_LIMIT_EXCEEDED",
		"Too many requests, please try again later",
	).WithRetryable(true)

	// Infrastructure errors
	ErrDatabaseConnection = NewDomainError(
		DomainInfrastructureError,
		"DATABASE_CONNECTION_ERROR",
		"Failed to connect to database",
	).WithRetryable(true)

	ErrEventPublishFailed = NewDomainError(
		DomainInfrastructureError,
		"EVENT_PUBLISH_FAILED",
		"Failed to publish domain event",
	).WithRetryable(true)
)

// ValidationErrors aggregates multiple validation errors
type ValidationErrors struct {
	Errors []*DomainError `json:"errors"`
}

// NewValidationErrors creates a new validation errors collection
func NewValidationErrors() *ValidationErrors {
	return &ValidationErrors{
		Errors: make([]*DomainError, 0),
	}
}

// Add adds a validation error
func (v *ValidationErrors) Add(field string, message string) {
	err := NewDomainError(DomainValidationError, "FIELD_VALIDATION_ERROR", message).
		WithDetail("field", field)
	v.Errors = append(v.Errors, err)
}

// AddError adds a pre-existing domain error
func (v *ValidationErrors) AddError(err *DomainError) {
	v.Errors = append(v.Errors, err)
}

// HasErrors returns true if there are validation errors
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// Error implements the error interface
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return ""
	}

	messages := make([]string, len(v.Errors))
	for i, err := range v.Errors {
		messages[i] = err.Message
	}
	return fmt.Sprintf("Validation failed: %s", strings.Join(messages, "; "))
}

// ToMap converts validation errors to a map for JSON serialization
func (v *ValidationErrors) ToMap() map[string][]string {
	result := make(map[string][]string)

	for _, err := range v.Errors {
		field, ok := err.Details["field"].(string)
		if !ok {
			field = "general"
		}

		if _, exists := result[field]; !exists {
			result[field] = make([]string, 0)
		}
		result[field] = append(result[field], err.Message)
	}

	return result
}

// DomainErrorResponse represents the API error response format for domain errors
type DomainErrorResponse struct {
	Error     bool                   `json:"error"`
	Type      DomainErrorType        `json:"type"`
	Code      string                 `json:"code"`
	Message   string                 `json:"message"`
	Details   map[string]interface{} `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	RequestID string                 `json:"request_id,omitempty"`
	Timestamp string                 `json:"timestamp"`
}

// NewDomainErrorResponse creates an error response from a domain error
func NewDomainErrorResponse(err *DomainError, requestID string) *DomainErrorResponse {
	return &DomainErrorResponse{
		Error:     true,
		Type:      err.Type,
		Code:      err.Code,
		Message:   err.Message,
		Details:   err.Details,
		Retryable: err.Retryable,
		RequestID: requestID,
		Timestamp: fmt.Sprintf("%d", timeNow().Unix()),
	}
}

// Helper function for testing (can be mocked)
var timeNow = func() time.Time {
	return time.Now()
}
