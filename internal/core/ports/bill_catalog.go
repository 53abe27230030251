package ports

import (
	"context"

	"github.com/billpie/billpie/internal/core/domain"
)

// BillCatalog is the read-side of the external catalog collaborator. The
// collaborator is the source of truth; there is no local persistence and no
// server-side filtering — callers always receive the full collection.
type BillCatalog interface {
	ListBills(ctx context.Context) ([]domain.Bill, error)
	ListRecentBills(ctx context.Context) ([]domain.Bill, error)
}
