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

type stubLedger struct {
	payments    map[string]*domain.Payment
	createCalls int
	deleteCalls int
	deletedIDs  []string
	createErr   error
}

func newStubLedger() *stubLedger {
	return &stubLedger{payments: make(map[string]*domain.Payment)}
}

func (l *stubLedger) CreatePayment(_ context.Context, p *domain.Payment) error {
	l.createCalls++
	if l.createErr != nil {
		return l.createErr
	}
	clone := *p
	l.payments[p.ID] = &clone
	return nil
}

func (l *stubLedger) ListPayments(_ context.Context) ([]domain.Payment, error) {
	out := make([]domain.Payment, 0, len(l.payments))
	for _, p := range l.payments {
		out = append(out, *p)
	}
	return out, nil
}

func (l *stubLedger) ListPaymentsByUser(_ context.Context, email string) ([]domain.Payment, error) {
	out := make([]domain.Payment, 0)
	for _, p := range l.payments {
		if p.PayerEmail == email {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (l *stubLedger) DeletePayment(_ context.Context, id string) error {
	l.deleteCalls++
	l.deletedIDs = append(l.deletedIDs, id)
	if _, ok := l.payments[id]; !ok {
		return domain.ErrPaymentNotFound
	}
	delete(l.payments, id)
	return nil
}

type stubSessions struct {
	pending map[string]domain.Bill
	themes  map[string]string
}

func newStubSessions() *stubSessions {
	return &stubSessions{pending: make(map[string]domain.Bill), themes: make(map[string]string)}
}

func (s *stubSessions) StashPendingBill(_ context.Context, key string, bill domain.Bill) error {
	s.pending[key] = bill
	return nil
}

func (s *stubSessions) TakePendingBill(_ context.Context, key string) (*domain.Bill, error) {
	bill, ok := s.pending[key]
	if !ok {
		return nil, domain.ErrNoPendingPayment
	}
	delete(s.pending, key)
	return &bill, nil
}

func (s *stubSessions) SetTheme(_ context.Context, email, theme string) error {
	s.themes[email] = theme
	return nil
}

func (s *stubSessions) GetTheme(_ context.Context, email string) (string, error) {
	if theme, ok := s.themes[email]; ok {
		return theme, nil
	}
	return domain.ThemeLight, nil
}

func payer() *domain.Identity {
	return &domain.Identity{Email: "alice@example.com", Name: "Alice", Role: domain.RoleUser}
}

func validInput() ports.PayBillInput {
	return ports.PayBillInput{
		Identity: payer(),
		BillID:   "b1",
		Username: "Alice Rahman",
		Address:  "12 Lake Road, Dhanmondi",
		Phone:    "01712345678",
		Notes:    "march bill",
	}
}

func newTestPaymentService(catalog ports.BillCatalog, ledger ports.PaymentLedger, sessions ports.SessionStore, now time.Time) *PaymentService {
	svc := NewPaymentService(catalog, ledger, sessions, zerolog.Nop())
	svc.now = func() time.Time { return now }
	return svc
}

func TestPaymentService_PayBill_Success(t *testing.T) {
	catalog := &stubCatalog{bills: testBills()}
	ledger := newStubLedger()
	svc := newTestPaymentService(catalog, ledger, newStubSessions(), day(2024, time.March, 15))

	result, err := svc.PayBill(context.Background(), validInput())
	if err != nil {
		t.Fatalf("PayBill returned error: %v", err)
	}
	if ledger.createCalls != 1 {
		t.Fatalf("expected exactly one create call, got %d", ledger.createCalls)
	}

	p := result.Payment
	if p.ID == "" {
		t.Fatalf("expected generated payment id")
	}
	if p.BillID != "b1" || p.Title != "March electricity" || p.Category != "Electricity" {
		t.Fatalf("snapshot does not match the bill: %+v", p)
	}
	if p.Amount != 120.50 || p.Location != "Dhanmondi" {
		t.Fatalf("snapshot amount/location wrong: %+v", p)
	}
	if p.PayerEmail != "alice@example.com" || p.Username != "Alice Rahman" || p.Phone != "01712345678" {
		t.Fatalf("payer fields wrong: %+v", p)
	}
	if !p.PaidAt.Equal(day(2024, time.March, 15)) {
		t.Fatalf("expected PaidAt from the injected clock, got %v", p.PaidAt)
	}
}

func TestPaymentService_PayBill_UnauthenticatedStashesBill(t *testing.T) {
	catalog := &stubCatalog{bills: testBills()}
	ledger := newStubLedger()
	sessions := newStubSessions()
	svc := newTestPaymentService(catalog, ledger, sessions, day(2024, time.March, 15))

	input := validInput()
	input.Identity = nil
	input.SessionKey = "sess-1"

	if _, err := svc.PayBill(context.Background(), input); !errors.Is(err, domain.ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}
	if ledger.createCalls != 0 {
		t.Fatalf("no create call expected for unauthenticated payer")
	}
	if bill, ok := sessions.pending["sess-1"]; !ok || bill.ID != "b1" {
		t.Fatalf("expected bill b1 stashed under sess-1")
	}
}

func TestPaymentService_PayBill_EmptyEmailIsUnauthenticated(t *testing.T) {
	svc := newTestPaymentService(&stubCatalog{bills: testBills()}, newStubLedger(), newStubSessions(), day(2024, time.March, 15))

	input := validInput()
	input.Identity = &domain.Identity{}

	if _, err := svc.PayBill(context.Background(), input); !errors.Is(err, domain.ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}
}

func TestPaymentService_PayBill_NotPayableOutsideDueMonth(t *testing.T) {
	ledger := newStubLedger()
	// Clock set to April: the March bill is no longer payable.
	svc := newTestPaymentService(&stubCatalog{bills: testBills()}, ledger, newStubSessions(), day(2024, time.April, 1))

	if _, err := svc.PayBill(context.Background(), validInput()); !errors.Is(err, domain.ErrNotPayableThisMonth) {
		t.Fatalf("expected ErrNotPayableThisMonth, got %v", err)
	}
	if ledger.createCalls != 0 {
		t.Fatalf("no create call expected for unpayable bill")
	}
}

func TestPaymentService_PayBill_PayabilityCheckedBeforeFields(t *testing.T) {
	// An unpayable bill with a blank form must fail on payability, not on the
	// missing fields.
	svc := newTestPaymentService(&stubCatalog{bills: testBills()}, newStubLedger(), newStubSessions(), day(2024, time.April, 1))

	input := validInput()
	input.Username, input.Address, input.Phone = "", "", ""

	if _, err := svc.PayBill(context.Background(), input); !errors.Is(err, domain.ErrNotPayableThisMonth) {
		t.Fatalf("expected ErrNotPayableThisMonth first, got %v", err)
	}
}

func TestPaymentService_PayBill_MissingFields(t *testing.T) {
	svc := newTestPaymentService(&stubCatalog{bills: testBills()}, newStubLedger(), newStubSessions(), day(2024, time.March, 15))

	cases := []struct {
		name   string
		mutate func(*ports.PayBillInput)
	}{
		{"username", func(in *ports.PayBillInput) { in.Username = "" }},
		{"whitespace username", func(in *ports.PayBillInput) { in.Username = "   " }},
		{"address", func(in *ports.PayBillInput) { in.Address = "\t" }},
		{"phone", func(in *ports.PayBillInput) { in.Phone = "" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := validInput()
			tc.mutate(&input)
			if _, err := svc.PayBill(context.Background(), input); !errors.Is(err, domain.ErrMissingRequiredField) {
				t.Fatalf("expected ErrMissingRequiredField, got %v", err)
			}
		})
	}
}

func TestPaymentService_PayBill_InvalidPhone(t *testing.T) {
	ledger := newStubLedger()
	svc := newTestPaymentService(&stubCatalog{bills: testBills()}, ledger, newStubSessions(), day(2024, time.March, 15))

	for _, phone := range []string{"0712345678", "01112345678", "017123456789", "abc"} {
		input := validInput()
		input.Phone = phone
		if _, err := svc.PayBill(context.Background(), input); !errors.Is(err, domain.ErrInvalidPhoneFormat) {
			t.Fatalf("phone %q: expected ErrInvalidPhoneFormat, got %v", phone, err)
		}
	}
	if ledger.createCalls != 0 {
		t.Fatalf("no create call expected for invalid phone")
	}
}

func TestPaymentService_PayBill_UnknownBill(t *testing.T) {
	svc := newTestPaymentService(&stubCatalog{bills: testBills()}, newStubLedger(), newStubSessions(), day(2024, time.March, 15))

	input := validInput()
	input.BillID = "missing"

	if _, err := svc.PayBill(context.Background(), input); !errors.Is(err, domain.ErrBillNotFound) {
		t.Fatalf("expected ErrBillNotFound, got %v", err)
	}
}

func TestPaymentService_PayBill_CollaboratorErrorNoRetry(t *testing.T) {
	ledger := newStubLedger()
	ledger.createErr = &domain.CollaboratorError{Op: "create_payment", Status: 500, Message: "ledger offline"}
	svc := newTestPaymentService(&stubCatalog{bills: testBills()}, ledger, newStubSessions(), day(2024, time.March, 15))

	_, err := svc.PayBill(context.Background(), validInput())
	var collab *domain.CollaboratorError
	if !errors.As(err, &collab) {
		t.Fatalf("expected CollaboratorError passthrough, got %v", err)
	}
	if collab.UserMessage() != "ledger offline" {
		t.Fatalf("expected verbatim collaborator message, got %q", collab.UserMessage())
	}
	if ledger.createCalls != 1 {
		t.Fatalf("expected a single attempt without retry, got %d", ledger.createCalls)
	}
}

func TestPaymentService_PendingBill(t *testing.T) {
	sessions := newStubSessions()
	sessions.pending["sess-1"] = testBills()[0]
	svc := newTestPaymentService(&stubCatalog{}, newStubLedger(), sessions, day(2024, time.March, 15))

	item, err := svc.PendingBill(context.Background(), "sess-1")
	if err != nil {
		t.Fatalf("PendingBill returned error: %v", err)
	}
	if item.ID != "b1" || !item.Payable {
		t.Fatalf("unexpected pending bill: %+v", item)
	}

	// The stash is one-shot.
	if _, err := svc.PendingBill(context.Background(), "sess-1"); !errors.Is(err, domain.ErrNoPendingPayment) {
		t.Fatalf("expected ErrNoPendingPayment on second take, got %v", err)
	}
}

func TestPaymentService_PendingBill_EmptyKey(t *testing.T) {
	svc := newTestPaymentService(&stubCatalog{}, newStubLedger(), newStubSessions(), day(2024, time.March, 15))

	if _, err := svc.PendingBill(context.Background(), ""); !errors.Is(err, domain.ErrNoPendingPayment) {
		t.Fatalf("expected ErrNoPendingPayment for empty key, got %v", err)
	}
}
