package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/billpie/billpie/internal/api/metrics"
	"github.com/billpie/billpie/internal/core/domain"
	"github.com/billpie/billpie/internal/core/ports"
)

// PaymentService implements the pay-bill flow. Preconditions are checked in
// a fixed order before the collaborator is called: identity, payability,
// required fields, phone format. The create call is made exactly once.
type PaymentService struct {
	catalog  ports.BillCatalog
	ledger   ports.PaymentLedger
	sessions ports.SessionStore
	logger   zerolog.Logger
	now      func() time.Time
}

func NewPaymentService(
	catalog ports.BillCatalog,
	ledger ports.PaymentLedger,
	sessions ports.SessionStore,
	logger zerolog.Logger,
) *PaymentService {
	return &PaymentService{
		catalog:  catalog,
		ledger:   ledger,
		sessions: sessions,
		logger:   logger,
		now:      time.Now,
	}
}

func (s *PaymentService) PayBill(ctx context.Context, input ports.PayBillInput) (*ports.PayBillResult, error) {
	// 1. Identity. A signed-out caller gets the intended bill stashed under
	// its session key so the flow can resume after sign-in.
	if input.Identity == nil || input.Identity.Email == "" {
		s.stashPendingBill(ctx, input.SessionKey, input.BillID)
		metrics.PaymentRejectionsTotal.WithLabelValues("not_authenticated").Inc()
		return nil, domain.ErrNotAuthenticated
	}

	bill, err := s.findBill(ctx, input.BillID)
	if err != nil {
		return nil, err
	}

	now := s.now()

	// 2. Payability.
	if !bill.PayableAt(now) {
		metrics.PaymentRejectionsTotal.WithLabelValues("not_payable").Inc()
		return nil, domain.ErrNotPayableThisMonth
	}

	// 3. Required fields, trimmed.
	username := strings.TrimSpace(input.Username)
	address := strings.TrimSpace(input.Address)
	phone := strings.TrimSpace(input.Phone)
	for _, field := range []struct{ name, value string }{
		{"username", username},
		{"address", address},
		{"phone", phone},
	} {
		if field.value == "" {
			metrics.PaymentRejectionsTotal.WithLabelValues("missing_field").Inc()
			return nil, fmt.Errorf("%w: %s", domain.ErrMissingRequiredField, field.name)
		}
	}

	// 4. Phone format.
	if !domain.ValidPhone(phone) {
		metrics.PaymentRejectionsTotal.WithLabelValues("invalid_phone").Inc()
		return nil, domain.ErrInvalidPhoneFormat
	}

	payment := &domain.Payment{
		ID:          uuid.NewString(),
		BillID:      bill.ID,
		Title:       bill.Title,
		Category:    bill.Category,
		Amount:      bill.Amount,
		Location:    bill.Location,
		Description: bill.Description,
		ImageURL:    bill.ImageURL,
		DueDate:     bill.DueDate,
		PayerEmail:  input.Identity.Email,
		Username:    username,
		Address:     address,
		Phone:       phone,
		Notes:       strings.TrimSpace(input.Notes),
		PaidAt:      now,
	}

	// Single attempt, no retry.
	if err := s.ledger.CreatePayment(ctx, payment); err != nil {
		metrics.PaymentsSubmittedTotal.WithLabelValues("collaborator_error").Inc()
		s.logger.Error().Err(err).Str("bill_id", bill.ID).Msg("payment submission failed")
		return nil, err
	}

	metrics.PaymentsSubmittedTotal.WithLabelValues("success").Inc()
	s.logger.Info().
		Str("payment_id", payment.ID).
		Str("bill_id", bill.ID).
		Str("payer", payment.PayerEmail).
		Msg("payment submitted")

	return &ports.PayBillResult{Payment: toPaymentRecord(*payment)}, nil
}

// PendingBill returns the bill stashed for this session during a sign-in
// redirect, annotated with its payability as of now.
func (s *PaymentService) PendingBill(ctx context.Context, sessionKey string) (*ports.BillItem, error) {
	if sessionKey == "" {
		return nil, domain.ErrNoPendingPayment
	}
	bill, err := s.sessions.TakePendingBill(ctx, sessionKey)
	if err != nil {
		return nil, err
	}
	item := toBillItem(*bill, s.now())
	return &item, nil
}

// stashPendingBill saves the intended bill for later resumption. Failures
// are logged but never surfaced: the caller is being redirected to sign in
// either way.
func (s *PaymentService) stashPendingBill(ctx context.Context, sessionKey, billID string) {
	if sessionKey == "" || billID == "" {
		return
	}
	bill, err := s.findBill(ctx, billID)
	if err != nil {
		s.logger.Warn().Err(err).Str("bill_id", billID).Msg("cannot stash pending bill")
		return
	}
	if err := s.sessions.StashPendingBill(ctx, sessionKey, *bill); err != nil {
		s.logger.Warn().Err(err).Str("bill_id", billID).Msg("pending bill stash failed")
	}
}

// findBill resolves a bill by id. The collaborator has no single-bill
// endpoint, so the full collection is fetched and scanned.
func (s *PaymentService) findBill(ctx context.Context, id string) (*domain.Bill, error) {
	bills, err := s.catalog.ListBills(ctx)
	if err != nil {
		return nil, err
	}
	for i := range bills {
		if bills[i].ID == id {
			return &bills[i], nil
		}
	}
	return nil, domain.ErrBillNotFound
}

func toPaymentRecord(p domain.Payment) ports.PaymentRecord {
	return ports.PaymentRecord{
		ID:          p.ID,
		BillID:      p.BillID,
		Title:       p.Title,
		Category:    string(p.Category),
		Amount:      p.Amount,
		Location:    p.Location,
		Description: p.Description,
		ImageURL:    p.ImageURL,
		DueDate:     p.DueDate,
		PayerEmail:  p.PayerEmail,
		Username:    p.Username,
		Address:     p.Address,
		Phone:       p.Phone,
		Notes:       p.Notes,
		PaidAt:      p.PaidAt,
	}
}
