package billdesk

import (
	"context"
	"net/http"

	"github.com/billpie/billpie/internal/core/domain"
)

// BillCatalog implements ports.BillCatalog against the collaborator's
// /bills and /recentBills endpoints.
type BillCatalog struct {
	client *Client
}

func NewBillCatalog(client *Client) *BillCatalog {
	return &BillCatalog{client: client}
}

func (c *BillCatalog) ListBills(ctx context.Context) ([]domain.Bill, error) {
	var docs []wireBill
	if err := c.client.do(ctx, "list bills", http.MethodGet, "/bills", nil, &docs); err != nil {
		return nil, err
	}
	return billsToDomain(docs), nil
}

func (c *BillCatalog) ListRecentBills(ctx context.Context) ([]domain.Bill, error) {
	var docs []wireBill
	if err := c.client.do(ctx, "list recent bills", http.MethodGet, "/recentBills", nil, &docs); err != nil {
		return nil, err
	}
	return billsToDomain(docs), nil
}
