package types

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrValidation        = errors.New("validation failed")
	ErrCaseNotFound      = errors.New("case not found")
	ErrDonationNotFound  = errors.New("donation not found")
	ErrExpenseNotFound   = errors.New("expense not found")
	ErrVolunteerNotFound = errors.New("volunteer not found")
	ErrAffidavitNotFound = errors.New("affidavit not found")
	ErrDocNotFound       = errors.New("document not found")
	ErrAffidavitConflict = errors.New("affidavit party is already registered as a case")
)

// IsNotFound reports whether err is one of the lookup misses above.
func IsNotFound(err error) bool {
	for _, target := range []error{
		ErrCaseNotFound,
		ErrDonationNotFound,
		ErrExpenseNotFound,
		ErrVolunteerNotFound,
		ErrAffidavitNotFound,
		ErrDocNotFound,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// ValidationError lists the input fields that were rejected.
type ValidationError struct {
	Fields []string
	Reason string
}

func (e *ValidationError) Error() string {
	msg := ErrValidation.Error()
	if len(e.Fields) > 0 {
		msg = fmt.Sprintf("%s: %s", msg, strings.Join(e.Fields, ", "))
	}
	if e.Reason != "" {
		msg = fmt.Sprintf("%s (%s)", msg, e.Reason)
	}
	return msg
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// AffidavitConflictError names the case that blocked an affidavit.
type AffidavitConflictError struct {
	Party    string
	CaseID   int64
	CaseName string
}

func (e *AffidavitConflictError) Error() string {
	return fmt.Sprintf("%s: %s matches case %d (%s)", ErrAffidavitConflict, e.Party, e.CaseID, e.CaseName)
}

func (e *AffidavitConflictError) Unwrap() error {
	return ErrAffidavitConflict
}
