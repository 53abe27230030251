package ports

import (
	"context"

	"github.com/billpie/billpie/internal/core/domain"
)

// SessionStore holds the small pieces of cross-request state the gateway
// keeps outside the collaborator: the bill a signed-out user intended to pay
// (stashed across the sign-in redirect) and the per-user theme preference.
type SessionStore interface {
	// StashPendingBill saves the intended bill under the caller's session key
	// so the payment flow can resume after sign-in. Entries expire.
	StashPendingBill(ctx context.Context, sessionKey string, bill domain.Bill) error

	// TakePendingBill returns and removes the stashed bill, or
	// domain.ErrNoPendingPayment when nothing is stashed.
	TakePendingBill(ctx context.Context, sessionKey string) (*domain.Bill, error)

	SetTheme(ctx context.Context, email, theme string) error

	// GetTheme returns the stored preference, or domain.ThemeLight when the
	// user has never set one.
	GetTheme(ctx context.Context, email string) (string, error)
}
