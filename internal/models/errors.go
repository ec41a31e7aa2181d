package models

import "fmt"

// NotFoundError indicates that a requested record does not exist.
type NotFoundError struct {
	Resource string
	ID       int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %d was not found", e.Resource, e.ID)
}

// NewNotFound builds a NotFoundError for the given resource and id.
func NewNotFound(resource string, id int64) error {
	return &NotFoundError{Resource: resource, ID: id}
}

// InvalidOperationError indicates a business-rule violation. The message is
// meant to be shown to the end user as-is.
type InvalidOperationError struct {
	Message string
}

func (e *InvalidOperationError) Error() string {
	return e.Message
}

// NewInvalidOperation builds an InvalidOperationError with the given message.
func NewInvalidOperation(message string) error {
	return &InvalidOperationError{Message: message}
}
