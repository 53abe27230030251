package billdesk

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/billpie/billpie/internal/core/domain"
)

// The collaborator's documents are loosely typed: ids appear as "_id" or
// "id", titles as "title" or "name", amounts as numbers or numeric strings,
// dates in several formats. This file is the single normalization step that
// maps them onto the stable domain shapes.

// flexFloat accepts a JSON number or a numeric string.
type flexFloat float64

func (f *flexFloat) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = 0
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			*f = 0 // unparseable amount string degrades to zero
			return nil
		}
		*f = flexFloat(v)
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*f = flexFloat(v)
	return nil
}

// dateFormats are tried in order when parsing collaborator date strings.
var dateFormats = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
}

// parseDate returns the zero time when the value is empty or unparseable;
// a zero due date renders a bill permanently non-payable instead of crashing
// the view.
func parseDate(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range dateFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

func nonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

type wireBill struct {
	ID          string    `json:"_id"`
	AltID       string    `json:"id"`
	Title       string    `json:"title"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Amount      flexFloat `json:"amount"`
	Price       flexFloat `json:"price"`
	DueDate     string    `json:"dueDate"`
	Date        string    `json:"date"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	ImageURL    string    `json:"imageUrl"`
	Image       string    `json:"image"`
}

func (w wireBill) toDomain() domain.Bill {
	amount := float64(w.Amount)
	if amount == 0 {
		amount = float64(w.Price)
	}
	return domain.Bill{
		ID:          firstNonEmpty(w.ID, w.AltID),
		Title:       firstNonEmpty(w.Title, w.Name),
		Category:    domain.ParseCategory(w.Category),
		Amount:      nonNegative(amount),
		DueDate:     parseDate(firstNonEmpty(w.DueDate, w.Date)),
		Location:    strings.TrimSpace(w.Location),
		Description: strings.TrimSpace(w.Description),
		ImageURL:    firstNonEmpty(w.ImageURL, w.Image),
	}
}

func billsToDomain(docs []wireBill) []domain.Bill {
	out := make([]domain.Bill, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out
}

type wirePayment struct {
	ID          string    `json:"_id"`
	AltID       string    `json:"id"`
	BillID      string    `json:"billId"`
	AltBillID   string    `json:"billingId"`
	Title       string    `json:"title"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Amount      flexFloat `json:"amount"`
	Price       flexFloat `json:"price"`
	DueDate     string    `json:"dueDate"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	ImageURL    string    `json:"imageUrl"`
	Image       string    `json:"image"`
	Email       string    `json:"email"`
	Username    string    `json:"username"`
	Address     string    `json:"address"`
	Phone       string    `json:"phone"`
	Notes       string    `json:"notes"`
	Message     string    `json:"message"`
	PayDate     string    `json:"payDate"`
	PaymentDate string    `json:"paymentDate"`
}

func (w wirePayment) toDomain() domain.Payment {
	amount := float64(w.Amount)
	if amount == 0 {
		amount = float64(w.Price)
	}
	return domain.Payment{
		ID:          firstNonEmpty(w.ID, w.AltID),
		BillID:      firstNonEmpty(w.BillID, w.AltBillID),
		Title:       firstNonEmpty(w.Title, w.Name),
		Category:    domain.ParseCategory(w.Category),
		Amount:      nonNegative(amount),
		Location:    strings.TrimSpace(w.Location),
		Description: strings.TrimSpace(w.Description),
		ImageURL:    firstNonEmpty(w.ImageURL, w.Image),
		DueDate:     parseDate(w.DueDate),
		PayerEmail:  strings.TrimSpace(w.Email),
		Username:    strings.TrimSpace(w.Username),
		Address:     strings.TrimSpace(w.Address),
		Phone:       strings.TrimSpace(w.Phone),
		Notes:       firstNonEmpty(w.Notes, w.Message),
		PaidAt:      parseDate(firstNonEmpty(w.PayDate, w.PaymentDate)),
	}
}

func paymentsToDomain(docs []wirePayment) []domain.Payment {
	out := make([]domain.Payment, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out
}

// paymentDoc is the outbound create payload, written with the collaborator's
// canonical field names.
type paymentDoc struct {
	ID          string  `json:"id"`
	BillID      string  `json:"billId"`
	Title       string  `json:"title"`
	Category    string  `json:"category"`
	Amount      float64 `json:"amount"`
	DueDate     string  `json:"dueDate"`
	Location    string  `json:"location"`
	Description string  `json:"description,omitempty"`
	Image       string  `json:"image,omitempty"`
	Email       string  `json:"email"`
	Username    string  `json:"username"`
	Address     string  `json:"address"`
	Phone       string  `json:"phone"`
	Notes       string  `json:"notes,omitempty"`
	PayDate     string  `json:"payDate"`
}

const wireDateLayout = "2006-01-02"

func toPaymentDoc(p *domain.Payment) paymentDoc {
	doc := paymentDoc{
		ID:          p.ID,
		BillID:      p.BillID,
		Title:       p.Title,
		Category:    string(p.Category),
		Amount:      p.Amount,
		Location:    p.Location,
		Description: p.Description,
		Image:       p.ImageURL,
		Email:       p.PayerEmail,
		Username:    p.Username,
		Address:     p.Address,
		Phone:       p.Phone,
		Notes:       p.Notes,
		PayDate:     p.PaidAt.Format(wireDateLayout),
	}
	if !p.DueDate.IsZero() {
		doc.DueDate = p.DueDate.Format(wireDateLayout)
	}
	return doc
}

type wireProfile struct {
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	Name        string `json:"name"`
	PhotoURL    string `json:"photoURL"`
	Photo       string `json:"photo"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

func (w wireProfile) toDomain() domain.Profile {
	return domain.Profile{
		Email:       strings.TrimSpace(w.Email),
		DisplayName: firstNonEmpty(w.DisplayName, w.Name),
		PhotoURL:    firstNonEmpty(w.PhotoURL, w.Photo),
		CreatedAt:   parseDate(w.CreatedAt),
		UpdatedAt:   parseDate(w.UpdatedAt),
	}
}
