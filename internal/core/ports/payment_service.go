package ports

import (
	"context"
	"time"

	"github.com/billpie/billpie/internal/core/domain"
)

// PayBillInput carries the payment form plus the caller's identity state.
// Identity is nil when the request carried no (or an invalid) token.
type PayBillInput struct {
	Identity   *domain.Identity
	SessionKey string // anonymous session key used to stash the pending bill
	BillID     string
	Username   string
	Address    string
	Phone      string
	Notes      string
}

// PaymentRecord is the service-layer view of a stored payment.
type PaymentRecord struct {
	ID          string
	BillID      string
	Title       string
	Category    string
	Amount      float64
	Location    string
	Description string
	ImageURL    string
	DueDate     time.Time
	PayerEmail  string
	Username    string
	Address     string
	Phone       string
	Notes       string
	PaidAt      time.Time
}

// PayBillResult is returned after the collaborator accepted the payment.
type PayBillResult struct {
	Payment PaymentRecord
}

// PaymentService implements the pay-bill flow: precondition checks in a fixed
// order, then a single create call against the collaborator.
type PaymentService interface {
	PayBill(ctx context.Context, input PayBillInput) (*PayBillResult, error)

	// PendingBill returns the bill stashed for this session during a sign-in
	// redirect, annotated with its current payability.
	PendingBill(ctx context.Context, sessionKey string) (*BillItem, error)
}
