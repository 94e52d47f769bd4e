package errs

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidTransition = errors.New("invalid transition")
	ErrGenerationFailed  = errors.New("checklist generation failed")
	ErrConcurrentUpdate  = errors.New("concurrent update conflict")
	ErrPermissionDenied  = errors.New("permission denied")
)

// InvalidTransitionError names the edge of the order status graph that was
// attempted but does not exist. It is a client error and is never retried.
type InvalidTransitionError struct {
	From string
	To   string
}

func NewInvalidTransitionError(from, to fmt.Stringer) *InvalidTransitionError {
	return &InvalidTransitionError{From: from.String(), To: to.String()}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrInvalidTransition, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// GenerationFailedError is returned when checklist templates could not be read.
// The order stays assigned with no checklist until an operator regenerates it.
type GenerationFailedError struct {
	OrderID string
	Cause   error
}

func NewGenerationFailedError(orderID string, cause error) *GenerationFailedError {
	return &GenerationFailedError{OrderID: orderID, Cause: cause}
}

func (e *GenerationFailedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: order %s (cause: %v)", ErrGenerationFailed, e.OrderID, e.Cause)
	}
	return fmt.Sprintf("%s: order %s", ErrGenerationFailed, e.OrderID)
}

func (e *GenerationFailedError) Unwrap() error {
	return ErrGenerationFailed
}

// ConcurrentUpdateError signals that a versioned write lost the race against
// another writer of the same row.
type ConcurrentUpdateError struct {
	Entity string
	ID     string
}

func NewConcurrentUpdateError(entity, id string) *ConcurrentUpdateError {
	return &ConcurrentUpdateError{Entity: entity, ID: id}
}

func (e *ConcurrentUpdateError) Error() string {
	return fmt.Sprintf("%s: %s %s was modified by another request", ErrConcurrentUpdate, e.Entity, e.ID)
}

func (e *ConcurrentUpdateError) Unwrap() error {
	return ErrConcurrentUpdate
}

// PermissionDeniedError is returned when an actor touches a resource it does not own.
type PermissionDeniedError struct {
	Actor    string
	Resource string
	Reason   string
}

func NewPermissionDeniedError(actor, resource, reason string) *PermissionDeniedError {
	return &PermissionDeniedError{Actor: actor, Resource: resource, Reason: reason}
}

func (e *PermissionDeniedError) Error() string {
	return fmt.Sprintf("%s: %s on %s: %s", ErrPermissionDenied, e.Actor, e.Resource, e.Reason)
}

func (e *PermissionDeniedError) Unwrap() error {
	return ErrPermissionDenied
}
