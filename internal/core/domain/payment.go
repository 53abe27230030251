package domain

import (
	"regexp"
	"time"
)

// phonePattern matches local mobile numbers: "01", third digit 3-9, then
// eight more digits (11 digits total).
var phonePattern = regexp.MustCompile(`^01[3-9][0-9]{8}$`)

// ValidPhone reports whether s is a well-formed local mobile number.
func ValidPhone(s string) bool {
	return phonePattern.MatchString(s)
}

// Payment is a denormalized snapshot created when a user pays a bill. The
// bill's display fields are copied at submission time, so later bill edits do
// not retroactively change historical payment records.
type Payment struct {
	ID          string       `json:"id"`
	BillID      string       `json:"bill_id"`
	Title       string       `json:"title"`
	Category    BillCategory `json:"category"`
	Amount      float64      `json:"amount"`
	Location    string       `json:"location"`
	Description string       `json:"description"`
	ImageURL    string       `json:"image_url"`
	DueDate     time.Time    `json:"due_date"`

	PayerEmail string `json:"payer_email"`
	Username   string `json:"username"`
	Address    string `json:"address"`
	Phone      string `json:"phone"`
	Notes      string `json:"notes,omitempty"`

	// PaidAt is the submission date, not the bill's due date.
	PaidAt time.Time `json:"paid_at"`
}
