package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/billpie/billpie/internal/core/domain"
	"github.com/billpie/billpie/internal/core/ports"
)

type stubCatalog struct {
	bills  []domain.Bill
	recent []domain.Bill
	err    error
	calls  int
}

func (c *stubCatalog) ListBills(_ context.Context) ([]domain.Bill, error) {
	c.calls++
	if c.err != nil {
		return nil, c.err
	}
	out := make([]domain.Bill, len(c.bills))
	copy(out, c.bills)
	return out, nil
}

func (c *stubCatalog) ListRecentBills(_ context.Context) ([]domain.Bill, error) {
	if c.err != nil {
		return nil, c.err
	}
	out := make([]domain.Bill, len(c.recent))
	copy(out, c.recent)
	return out, nil
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func testBills() []domain.Bill {
	return []domain.Bill{
		{ID: "b1", Title: "March electricity", Category: domain.CategoryElectricity, Amount: 120.50, DueDate: day(2024, time.March, 10), Location: "Dhanmondi"},
		{ID: "b2", Title: "Home internet", Category: domain.CategoryInternet, Amount: 60, DueDate: day(2024, time.April, 5), Location: "Gulshan"},
		{ID: "b3", Title: "Gas line", Category: domain.CategoryGas, Amount: 45.25, DueDate: day(2024, time.March, 1), Location: "Mirpur"},
		{ID: "b4", Title: "Water supply", Category: domain.CategoryWater, Amount: 200, DueDate: day(2024, time.February, 20), Location: "Banani", Description: "quarterly"},
	}
}

func newTestBillService(catalog ports.BillCatalog, now time.Time) *BillService {
	svc := NewBillService(catalog, zerolog.Nop())
	svc.now = func() time.Time { return now }
	return svc
}

func TestBillService_ListBills_DefaultSortAndPayability(t *testing.T) {
	catalog := &stubCatalog{bills: testBills()}
	svc := newTestBillService(catalog, day(2024, time.March, 15))

	result, err := svc.ListBills(context.Background(), ports.ListBillsInput{})
	if err != nil {
		t.Fatalf("ListBills returned error: %v", err)
	}
	if result.Total != 4 {
		t.Fatalf("expected total 4, got %d", result.Total)
	}
	if result.Page != 1 || result.PageSize != ports.DefaultPageSize || result.TotalPages != 1 {
		t.Fatalf("unexpected pagination: page=%d size=%d pages=%d", result.Page, result.PageSize, result.TotalPages)
	}

	// Default order is due date ascending.
	wantOrder := []string{"b4", "b3", "b1", "b2"}
	for i, want := range wantOrder {
		if result.Items[i].ID != want {
			t.Fatalf("position %d: expected %s, got %s", i, want, result.Items[i].ID)
		}
	}

	// Only bills due in March 2024 are payable on 2024-03-15.
	payable := map[string]bool{"b1": true, "b3": true, "b2": false, "b4": false}
	for _, item := range result.Items {
		if item.Payable != payable[item.ID] {
			t.Fatalf("bill %s: expected payable=%v, got %v", item.ID, payable[item.ID], item.Payable)
		}
	}
}

func TestBillService_ListBills_AmountSortIsReversible(t *testing.T) {
	catalog := &stubCatalog{bills: testBills()}
	svc := newTestBillService(catalog, day(2024, time.March, 15))

	asc, err := svc.ListBills(context.Background(), ports.ListBillsInput{Sort: ports.SortAmountAsc})
	if err != nil {
		t.Fatalf("ListBills asc returned error: %v", err)
	}
	desc, err := svc.ListBills(context.Background(), ports.ListBillsInput{Sort: ports.SortAmountDesc})
	if err != nil {
		t.Fatalf("ListBills desc returned error: %v", err)
	}

	n := len(asc.Items)
	for i := 0; i < n; i++ {
		if asc.Items[i].ID != desc.Items[n-1-i].ID {
			t.Fatalf("position %d: asc %s is not the mirror of desc %s", i, asc.Items[i].ID, desc.Items[n-1-i].ID)
		}
	}
	if asc.Items[0].ID != "b3" || asc.Items[n-1].ID != "b4" {
		t.Fatalf("unexpected amount ordering: first=%s last=%s", asc.Items[0].ID, asc.Items[n-1].ID)
	}
}

func TestBillService_ListBills_CategoryFilter(t *testing.T) {
	catalog := &stubCatalog{bills: testBills()}
	svc := newTestBillService(catalog, day(2024, time.March, 15))

	result, err := svc.ListBills(context.Background(), ports.ListBillsInput{Category: "Internet"})
	if err != nil {
		t.Fatalf("ListBills returned error: %v", err)
	}
	if result.Total != 1 || result.Items[0].ID != "b2" {
		t.Fatalf("expected only b2, got total=%d", result.Total)
	}
}

func TestBillService_ListBills_QueryMatchesAnyField(t *testing.T) {
	catalog := &stubCatalog{bills: testBills()}
	svc := newTestBillService(catalog, day(2024, time.March, 15))

	cases := []struct {
		query string
		want  []string
	}{
		{"ELECTRIC", []string{"b1"}},     // title, case-insensitive
		{"mirpur", []string{"b3"}},       // location
		{"quarterly", []string{"b4"}},    // description
		{"gas", []string{"b3"}},          // category
		{"  ", []string{"b4", "b3", "b1", "b2"}}, // blank query matches all
		{"nothing-here", nil},
	}

	for _, tc := range cases {
		result, err := svc.ListBills(context.Background(), ports.ListBillsInput{Query: tc.query})
		if err != nil {
			t.Fatalf("query %q returned error: %v", tc.query, err)
		}
		if result.Total != len(tc.want) {
			t.Fatalf("query %q: expected %d results, got %d", tc.query, len(tc.want), result.Total)
		}
		for i, want := range tc.want {
			if result.Items[i].ID != want {
				t.Fatalf("query %q position %d: expected %s, got %s", tc.query, i, want, result.Items[i].ID)
			}
		}
	}
}

func TestBillService_ListBills_PageClampingAndSizeSnapping(t *testing.T) {
	bills := make([]domain.Bill, 0, 20)
	for i := 0; i < 20; i++ {
		bills = append(bills, domain.Bill{
			ID:      string(rune('a' + i)),
			Amount:  float64(i),
			DueDate: day(2024, time.March, 1).AddDate(0, 0, i),
		})
	}
	catalog := &stubCatalog{bills: bills}
	svc := newTestBillService(catalog, day(2024, time.March, 15))

	cases := []struct {
		name      string
		page      int
		size      int
		wantPage  int
		wantSize  int
		wantItems int
	}{
		{"zero page clamps to first", 0, 6, 1, 6, 6},
		{"negative page clamps to first", -3, 6, 1, 6, 6},
		{"past the end clamps to last", 99, 6, 4, 6, 2},
		{"unknown size snaps to default", 1, 7, 1, ports.DefaultPageSize, 9},
		{"preset size kept", 1, 12, 1, 12, 12},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := svc.ListBills(context.Background(), ports.ListBillsInput{Page: tc.page, PageSize: tc.size})
			if err != nil {
				t.Fatalf("ListBills returned error: %v", err)
			}
			if result.Page != tc.wantPage {
				t.Fatalf("expected page %d, got %d", tc.wantPage, result.Page)
			}
			if result.PageSize != tc.wantSize {
				t.Fatalf("expected page size %d, got %d", tc.wantSize, result.PageSize)
			}
			if len(result.Items) != tc.wantItems {
				t.Fatalf("expected %d items, got %d", tc.wantItems, len(result.Items))
			}
		})
	}
}

func TestBillService_ListBills_CatalogError(t *testing.T) {
	boom := errors.New("catalog down")
	svc := newTestBillService(&stubCatalog{err: boom}, day(2024, time.March, 15))

	if _, err := svc.ListBills(context.Background(), ports.ListBillsInput{}); !errors.Is(err, boom) {
		t.Fatalf("expected catalog error passthrough, got %v", err)
	}
}

func TestBillService_ListRecentBills(t *testing.T) {
	catalog := &stubCatalog{recent: testBills()[:2]}
	svc := newTestBillService(catalog, day(2024, time.March, 15))

	items, err := svc.ListRecentBills(context.Background())
	if err != nil {
		t.Fatalf("ListRecentBills returned error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if !items[0].Payable {
		t.Fatalf("expected March bill to be payable in March")
	}
}
