package ports

import (
	"context"

	"github.com/billpie/billpie/internal/core/domain"
)

// PaymentLedger is the payment side of the external catalog collaborator.
type PaymentLedger interface {
	// CreatePayment submits a payment record. A single attempt is made; the
	// caller must resubmit manually on failure.
	CreatePayment(ctx context.Context, p *domain.Payment) error

	// ListPayments returns the full, unscoped payment collection (admin view).
	ListPayments(ctx context.Context) ([]domain.Payment, error)

	// ListPaymentsByUser returns the payments whose payer email matches.
	ListPaymentsByUser(ctx context.Context, email string) ([]domain.Payment, error)

	DeletePayment(ctx context.Context, id string) error
}
