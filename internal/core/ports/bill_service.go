package ports

import (
	"context"
	"time"
)

// SortKey selects the ordering applied to bill and payment listings.
type SortKey string

const (
	SortDueDateAsc  SortKey = "due_date_asc"
	SortDueDateDesc SortKey = "due_date_desc"
	SortAmountAsc   SortKey = "amount_asc"
	SortAmountDesc  SortKey = "amount_desc"
)

// PageSizePresets are the selectable page sizes. Requests outside the preset
// list are snapped to DefaultPageSize.
var PageSizePresets = []int{6, 9, 12, 24}

const DefaultPageSize = 9

// ListBillsInput carries the client-side filter/sort/paginate parameters.
// Filtering is always applied to the full in-memory collection fetched from
// the collaborator; nothing is filtered server-side there.
type ListBillsInput struct {
	Query    string  // case-insensitive substring over title/category/description/location; empty matches all
	Category string  // optional exact category filter
	Sort     SortKey // defaults to due date ascending
	Page     int     // 1-indexed; out-of-range values are clamped
	PageSize int     // snapped to PageSizePresets
}

// BillItem is a bill annotated with the payability verdict for "now".
type BillItem struct {
	ID          string
	Title       string
	Category    string
	Amount      float64
	DueDate     time.Time
	Location    string
	Description string
	ImageURL    string
	Payable     bool
}

// ListBillsResult reports the page window actually served. Page is the
// effective (clamped) page, which callers should treat as their current page.
type ListBillsResult struct {
	Items      []BillItem
	Total      int
	Page       int
	PageSize   int
	TotalPages int
}

// BillService exposes the bill listing use cases.
type BillService interface {
	ListBills(ctx context.Context, input ListBillsInput) (*ListBillsResult, error)
	ListRecentBills(ctx context.Context) ([]BillItem, error)
}
