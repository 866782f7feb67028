package models

import (
	"errors"
	"net/http"
)

// DomainError is the single error kind raised by the service layer:
// validation failures, ownership denial, rule conflicts, lockout and
// rate-limit rejections all carry a human-readable message plus the
// HTTP status the boundary should answer with. Most violations answer
// 400; the exceptions (404 for patient lookups, 403 for role gates)
// are set where the error is raised.
type DomainError struct {
	Message string `json:"message"`
	Status  int    `json:"-"`
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError builds the common 400 violation.
func NewDomainError(message string) *DomainError {
	return &DomainError{Message: message, Status: http.StatusBadRequest}
}

// NewNotFoundError builds a 404 violation.
func NewNotFoundError(message string) *DomainError {
	return &DomainError{Message: message, Status: http.StatusNotFound}
}

// NewForbiddenError builds a 403 violation, used by role gates.
func NewForbiddenError(message string) *DomainError {
	return &DomainError{Message: message, Status: http.StatusForbidden}
}

// AsDomainError unwraps err into a DomainError if it is one.
func AsDomainError(err error) (*DomainError, bool) {
	var de *DomainError
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}
