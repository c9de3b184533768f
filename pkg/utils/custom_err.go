package utils

import (
	"errors"
	"fmt"
)

var (
	ErrMissingEmail       = errors.New("email is required")
	ErrMissingAnswers     = errors.New("answers are required")
	ErrMissingHairType    = errors.New("hair type is required")
	ErrInvalidAnswers     = errors.New("invalid answers")
	ErrSessionRequired    = errors.New("session id is required")
	ErrEmailAlreadyExists = errors.New("email already submitted")
	ErrLeadNotFound       = errors.New("lead not found")
	ErrProductNotFound    = errors.New("product not found")
	ErrDocumentNotFound   = errors.New("document not found or expired")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidPage        = errors.New("invalid page parameter")
	ErrInvalidPageSize    = errors.New("invalid page size parameter")
	ErrInvalidRange       = errors.New("invalid time range")
	ErrDatabaseError      = errors.New("database error")
)

// DuplicateLeadError carries the id of the lead that already owns the email.
type DuplicateLeadError struct {
	LeadID string
}

func (e *DuplicateLeadError) Error() string {
	return fmt.Sprintf("%v: lead %s", ErrEmailAlreadyExists, e.LeadID)
}

func (e *DuplicateLeadError) Unwrap() error { return ErrEmailAlreadyExists }
