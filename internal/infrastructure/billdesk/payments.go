package billdesk

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/billpie/billpie/internal/core/domain"
)

// PaymentLedger implements ports.PaymentLedger against the collaborator's
// /payBill endpoints.
type PaymentLedger struct {
	client *Client
}

func NewPaymentLedger(client *Client) *PaymentLedger {
	return &PaymentLedger{client: client}
}

func (l *PaymentLedger) CreatePayment(ctx context.Context, p *domain.Payment) error {
	return l.client.do(ctx, "create payment", http.MethodPost, "/payBill", toPaymentDoc(p), nil)
}

func (l *PaymentLedger) ListPayments(ctx context.Context) ([]domain.Payment, error) {
	var docs []wirePayment
	if err := l.client.do(ctx, "list payments", http.MethodGet, "/payBill", nil, &docs); err != nil {
		return nil, err
	}
	return paymentsToDomain(docs), nil
}

func (l *PaymentLedger) ListPaymentsByUser(ctx context.Context, email string) ([]domain.Payment, error) {
	var docs []wirePayment
	path := "/payBill/user/" + url.PathEscape(email)
	if err := l.client.do(ctx, "list payments by user", http.MethodGet, path, nil, &docs); err != nil {
		return nil, err
	}
	return paymentsToDomain(docs), nil
}

func (l *PaymentLedger) DeletePayment(ctx context.Context, id string) error {
	path := "/payBill/" + url.PathEscape(id)
	err := l.client.do(ctx, "delete payment", http.MethodDelete, path, nil, nil)
	var collab *domain.CollaboratorError
	if errors.As(err, &collab) && collab.Status == http.StatusNotFound {
		return domain.ErrPaymentNotFound
	}
	return err
}
