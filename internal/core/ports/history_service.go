package ports

import (
	"context"

	"github.com/billpie/billpie/internal/core/domain"
)

// ListPaymentsInput mirrors the bill listing idiom, restricted to the
// payment record's denormalized fields. Admins see the full collection;
// everyone else is scoped to their own email.
type ListPaymentsInput struct {
	Identity domain.Identity
	Query    string
	Sort     SortKey
	Page     int
	PageSize int
}

// ListPaymentsResult is a page of payment records.
type ListPaymentsResult struct {
	Items      []PaymentRecord
	Total      int
	Page       int
	PageSize   int
	TotalPages int
}

// Receipt is the exportable human-readable payment document.
type Receipt struct {
	Number   string
	Filename string
	Body     string
}

// ShareSummary is the compact record representation handed to a native share
// sheet, or copied to the clipboard as JSON when none is available.
type ShareSummary struct {
	PaymentID  string  `json:"payment_id"`
	Title      string  `json:"title"`
	Category   string  `json:"category"`
	Amount     float64 `json:"amount"`
	PaidAt     string  `json:"paid_at"`
	PayerEmail string  `json:"payer_email"`
	ReceiptURL string  `json:"receipt_url"`
}

// HistoryService exposes the payment history use cases.
type HistoryService interface {
	ListPayments(ctx context.Context, input ListPaymentsInput) (*ListPaymentsResult, error)
	GetPayment(ctx context.Context, identity domain.Identity, id string) (*PaymentRecord, error)

	// DeletePayment issues exactly one delete call against the collaborator
	// for the given record after verifying ownership.
	DeletePayment(ctx context.Context, identity domain.Identity, id string) error

	ExportReceipt(ctx context.Context, identity domain.Identity, id string) (*Receipt, error)
	Share(ctx context.Context, identity domain.Identity, id string) (*ShareSummary, error)
}
