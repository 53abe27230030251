package service

import (
	"context"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/billpie/billpie/internal/core/domain"
	"github.com/billpie/billpie/internal/core/ports"
)

// BillService serves the bill listing views. Every call fetches the full
// collection from the catalog collaborator and applies filter, sort, and
// pagination client-side, annotating each bill with the payability verdict.
type BillService struct {
	catalog ports.BillCatalog
	logger  zerolog.Logger
	now     func() time.Time
}

func NewBillService(catalog ports.BillCatalog, logger zerolog.Logger) *BillService {
	return &BillService{catalog: catalog, logger: logger, now: time.Now}
}

func (s *BillService) ListBills(ctx context.Context, input ports.ListBillsInput) (*ports.ListBillsResult, error) {
	bills, err := s.catalog.ListBills(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to fetch bill collection")
		return nil, err
	}

	filtered := make([]domain.Bill, 0, len(bills))
	for _, b := range bills {
		if input.Category != "" && string(b.Category) != input.Category {
			continue
		}
		if !matchQuery(input.Query, b.Title, string(b.Category), b.Description, b.Location) {
			continue
		}
		filtered = append(filtered, b)
	}

	sortBills(filtered, input.Sort)

	size := normalizePageSize(input.PageSize)
	pages := pageCount(len(filtered), size)
	page := clampPage(input.Page, pages)
	start, end := pageWindow(len(filtered), page, size)

	now := s.now()
	items := make([]ports.BillItem, 0, end-start)
	for _, b := range filtered[start:end] {
		items = append(items, toBillItem(b, now))
	}

	return &ports.ListBillsResult{
		Items:      items,
		Total:      len(filtered),
		Page:       page,
		PageSize:   size,
		TotalPages: pages,
	}, nil
}

func (s *BillService) ListRecentBills(ctx context.Context) ([]ports.BillItem, error) {
	bills, err := s.catalog.ListRecentBills(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to fetch recent bills")
		return nil, err
	}

	now := s.now()
	items := make([]ports.BillItem, 0, len(bills))
	for _, b := range bills {
		items = append(items, toBillItem(b, now))
	}
	return items, nil
}

// sortBills orders the slice by the requested key. The sort is stable so
// records with equal keys keep their collaborator order.
func sortBills(bills []domain.Bill, key ports.SortKey) {
	switch key {
	case ports.SortDueDateDesc:
		sort.SliceStable(bills, func(i, j int) bool { return bills[i].DueDate.After(bills[j].DueDate) })
	case ports.SortAmountAsc:
		sort.SliceStable(bills, func(i, j int) bool { return bills[i].Amount < bills[j].Amount })
	case ports.SortAmountDesc:
		sort.SliceStable(bills, func(i, j int) bool { return bills[i].Amount > bills[j].Amount })
	default: // SortDueDateAsc
		sort.SliceStable(bills, func(i, j int) bool { return bills[i].DueDate.Before(bills[j].DueDate) })
	}
}

func toBillItem(b domain.Bill, now time.Time) ports.BillItem {
	return ports.BillItem{
		ID:          b.ID,
		Title:       b.Title,
		Category:    string(b.Category),
		Amount:      b.Amount,
		DueDate:     b.DueDate,
		Location:    b.Location,
		Description: b.Description,
		ImageURL:    b.ImageURL,
		Payable:     b.PayableAt(now),
	}
}
