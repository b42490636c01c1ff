package api

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when a requested resource is not found.
// It provides structured information about what type of resource was not found
// and its identifier.
type NotFoundError struct {
	// ResourceType is the category of resource ("agent", "task", "tool", "resource").
	ResourceType string

	// ResourceName is the identifier that was looked up.
	ResourceName string

	// Message overrides the default message when set.
	Message string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("%s %s not found", e.ResourceType, e.ResourceName)
}

// NewNotFoundError creates a new NotFoundError with the default message format.
func NewNotFoundError(resourceType, resourceName string) *NotFoundError {
	return &NotFoundError{
		ResourceType: resourceType,
		ResourceName: resourceName,
	}
}

// NewNotFoundErrorWithMessage creates a new NotFoundError with a custom message.
func NewNotFoundErrorWithMessage(resourceType, resourceName, message string) *NotFoundError {
	return &NotFoundError{
		ResourceType: resourceType,
		ResourceName: resourceName,
		Message:      message,
	}
}

var (
	NewAgentNotFoundError    = func(id string) *NotFoundError { return NewNotFoundError("agent", id) }
	NewTaskNotFoundError     = func(id string) *NotFoundError { return NewNotFoundError("task", id) }
	NewToolNotFoundError     = func(name string) *NotFoundError {
		return NewNotFoundErrorWithMessage("tool", name, "Unknown tool: "+name)
	}
	NewResourceNotFoundError = func(uri string) *NotFoundError {
		return NewNotFoundErrorWithMessage("resource", uri, "Unknown resource: "+uri)
	}
)

// IsNotFound reports whether err is, or wraps, a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// ValidationError is returned when tool arguments fail their schema.
// Message carries the diagnostic shown to callers.
type ValidationError struct {
	Tool    string
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(tool, field, message string) *ValidationError {
	return &ValidationError{Tool: tool, Field: field, Message: message}
}

// IsValidation reports whether err is, or wraps, a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// CollaboratorError wraps a failure of an external capability such as the
// text analyzer, so that callers can tell it apart from hive errors.
type CollaboratorError struct {
	Collaborator string
	Err          error
}

func (e *CollaboratorError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Collaborator, e.Err)
}

func (e *CollaboratorError) Unwrap() error {
	return e.Err
}

// NewCollaboratorError wraps err as a failure of the named collaborator.
func NewCollaboratorError(collaborator string, err error) *CollaboratorError {
	return &CollaboratorError{Collaborator: collaborator, Err: err}
}

// IsCollaborator reports whether err is, or wraps, a CollaboratorError.
func IsCollaborator(err error) bool {
	var ce *CollaboratorError
	return errors.As(err, &ce)
}
