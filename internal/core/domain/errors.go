package domain

import (
	"errors"
	"fmt"
)

// Payment submission precondition failures, in the order they are checked.
var (
	ErrNotAuthenticated     = errors.New("not authenticated")
	ErrNotPayableThisMonth  = errors.New("bill is not payable this month")
	ErrMissingRequiredField = errors.New("missing required field")
	ErrInvalidPhoneFormat   = errors.New("invalid phone format")
)

var (
	ErrBillNotFound     = errors.New("bill not found")
	ErrPaymentNotFound  = errors.New("payment not found")
	ErrNoPendingPayment = errors.New("no pending payment")
	ErrForbidden        = errors.New("access forbidden")
	ErrInvalidTheme     = errors.New("invalid theme")
	ErrProfileNotFound  = errors.New("profile not found")
)

// CollaboratorError reports a failed request to the catalog collaborator:
// a transport failure or a non-2xx response.
type CollaboratorError struct {
	Op      string // e.g. "create payment"
	Status  int    // HTTP status, 0 on transport failure
	Message string // collaborator "message" body field, may be empty
	Err     error  // underlying transport error, may be nil
}

func (e *CollaboratorError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("collaborator: %s: %v", e.Op, e.Err)
	}
	if e.Message != "" {
		return fmt.Sprintf("collaborator: %s: status %d: %s", e.Op, e.Status, e.Message)
	}
	return fmt.Sprintf("collaborator: %s: status %d", e.Op, e.Status)
}

func (e *CollaboratorError) Unwrap() error { return e.Err }

// UserMessage returns the collaborator's error message verbatim when one was
// provided, else a generic failure notice.
func (e *CollaboratorError) UserMessage() string {
	if e.Message != "" {
		return e.Message
	}
	return "payment service request failed"
}
