package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/billpie/billpie/internal/api/metrics"
	"github.com/billpie/billpie/internal/core/domain"
	"github.com/billpie/billpie/internal/core/ports"
)

// logoURL is the static brand image embedded in exported receipts.
const logoURL = "https://billpie.app/static/logo.png"

// HistoryService serves the payment history views. Admins read the full,
// unscoped payment collection; everyone else only sees records whose payer
// email matches their own.
type HistoryService struct {
	ledger ports.PaymentLedger
	logger zerolog.Logger
}

func NewHistoryService(ledger ports.PaymentLedger, logger zerolog.Logger) *HistoryService {
	return &HistoryService{ledger: ledger, logger: logger}
}

func (s *HistoryService) ListPayments(ctx context.Context, input ports.ListPaymentsInput) (*ports.ListPaymentsResult, error) {
	payments, err := s.scopedPayments(ctx, input.Identity)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to fetch payment collection")
		return nil, err
	}

	filtered := make([]domain.Payment, 0, len(payments))
	for _, p := range payments {
		if !matchQuery(input.Query, p.Title, string(p.Category), p.Description, p.Location) {
			continue
		}
		filtered = append(filtered, p)
	}

	sortPayments(filtered, input.Sort)

	size := normalizePageSize(input.PageSize)
	pages := pageCount(len(filtered), size)
	page := clampPage(input.Page, pages)
	start, end := pageWindow(len(filtered), page, size)

	items := make([]ports.PaymentRecord, 0, end-start)
	for _, p := range filtered[start:end] {
		items = append(items, toPaymentRecord(p))
	}

	return &ports.ListPaymentsResult{
		Items:      items,
		Total:      len(filtered),
		Page:       page,
		PageSize:   size,
		TotalPages: pages,
	}, nil
}

func (s *HistoryService) GetPayment(ctx context.Context, identity domain.Identity, id string) (*ports.PaymentRecord, error) {
	p, err := s.findPayment(ctx, identity, id)
	if err != nil {
		return nil, err
	}
	record := toPaymentRecord(*p)
	return &record, nil
}

// DeletePayment verifies the record exists and belongs to the caller, then
// issues exactly one delete call against the collaborator.
func (s *HistoryService) DeletePayment(ctx context.Context, identity domain.Identity, id string) error {
	p, err := s.findPayment(ctx, identity, id)
	if err != nil {
		return err
	}

	if err := s.ledger.DeletePayment(ctx, p.ID); err != nil {
		s.logger.Error().Err(err).Str("payment_id", p.ID).Msg("payment delete failed")
		return err
	}

	metrics.PaymentsDeletedTotal.Inc()
	s.logger.Info().Str("payment_id", p.ID).Str("payer", p.PayerEmail).Msg("payment deleted")
	return nil
}

// ExportReceipt renders the record as a human-readable document embedding
// all denormalized fields and the static logo reference.
func (s *HistoryService) ExportReceipt(ctx context.Context, identity domain.Identity, id string) (*ports.Receipt, error) {
	p, err := s.findPayment(ctx, identity, id)
	if err != nil {
		return nil, err
	}

	var b strings.Builder
	line := strings.Repeat("=", 46)
	fmt.Fprintln(&b, line)
	fmt.Fprintln(&b, "              BILL PIE  —  RECEIPT")
	fmt.Fprintln(&b, line)
	fmt.Fprintf(&b, "Logo        : %s\n", logoURL)
	fmt.Fprintf(&b, "Receipt No  : %s\n", p.ID)
	fmt.Fprintf(&b, "Paid on     : %s\n", p.PaidAt.Format("2006-01-02"))
	fmt.Fprintln(&b, strings.Repeat("-", 46))
	fmt.Fprintf(&b, "Bill        : %s\n", p.Title)
	fmt.Fprintf(&b, "Category    : %s\n", p.Category)
	fmt.Fprintf(&b, "Amount      : %.2f\n", p.Amount)
	fmt.Fprintf(&b, "Due date    : %s\n", p.DueDate.Format("2006-01-02"))
	fmt.Fprintf(&b, "Location    : %s\n", p.Location)
	if p.Description != "" {
		fmt.Fprintf(&b, "Details     : %s\n", p.Description)
	}
	fmt.Fprintln(&b, strings.Repeat("-", 46))
	fmt.Fprintf(&b, "Payer       : %s\n", p.PayerEmail)
	fmt.Fprintf(&b, "Name        : %s\n", p.Username)
	fmt.Fprintf(&b, "Address     : %s\n", p.Address)
	fmt.Fprintf(&b, "Phone       : %s\n", p.Phone)
	if p.Notes != "" {
		fmt.Fprintf(&b, "Notes       : %s\n", p.Notes)
	}
	fmt.Fprintln(&b, line)
	fmt.Fprintln(&b, "Thank you for paying with Bill Pie.")

	return &ports.Receipt{
		Number:   p.ID,
		Filename: fmt.Sprintf("receipt-%s.txt", p.ID),
		Body:     b.String(),
	}, nil
}

// Share returns the compact JSON summary used by the share action.
func (s *HistoryService) Share(ctx context.Context, identity domain.Identity, id string) (*ports.ShareSummary, error) {
	p, err := s.findPayment(ctx, identity, id)
	if err != nil {
		return nil, err
	}

	return &ports.ShareSummary{
		PaymentID:  p.ID,
		Title:      p.Title,
		Category:   string(p.Category),
		Amount:     p.Amount,
		PaidAt:     p.PaidAt.Format("2006-01-02"),
		PayerEmail: p.PayerEmail,
		ReceiptURL: fmt.Sprintf("/v1/payments/%s/receipt", p.ID),
	}, nil
}

// scopedPayments applies the role scoping rule for history reads.
func (s *HistoryService) scopedPayments(ctx context.Context, identity domain.Identity) ([]domain.Payment, error) {
	if identity.IsAdmin() {
		return s.ledger.ListPayments(ctx)
	}
	return s.ledger.ListPaymentsByUser(ctx, identity.Email)
}

// findPayment locates a record within the caller's scope. A record outside
// the scope is indistinguishable from a missing one.
func (s *HistoryService) findPayment(ctx context.Context, identity domain.Identity, id string) (*domain.Payment, error) {
	payments, err := s.scopedPayments(ctx, identity)
	if err != nil {
		return nil, err
	}
	for i := range payments {
		if payments[i].ID == id {
			return &payments[i], nil
		}
	}
	return nil, domain.ErrPaymentNotFound
}

// sortPayments mirrors sortBills over the denormalized snapshot fields.
func sortPayments(payments []domain.Payment, key ports.SortKey) {
	switch key {
	case ports.SortDueDateDesc:
		sort.SliceStable(payments, func(i, j int) bool { return payments[i].DueDate.After(payments[j].DueDate) })
	case ports.SortAmountAsc:
		sort.SliceStable(payments, func(i, j int) bool { return payments[i].Amount < payments[j].Amount })
	case ports.SortAmountDesc:
		sort.SliceStable(payments, func(i, j int) bool { return payments[i].Amount > payments[j].Amount })
	default: // SortDueDateAsc
		sort.SliceStable(payments, func(i, j int) bool { return payments[i].DueDate.Before(payments[j].DueDate) })
	}
}
