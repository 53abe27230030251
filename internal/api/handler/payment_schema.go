package handler

import "time"

// --- Request types ---

// payBillRequest carries the payment form. Only the bill reference is
// validated at the transport edge; form-field rules (required fields, phone
// format) live in the service so the precondition order stays deterministic.
type payBillRequest struct {
	BillID   string `json:"bill_id" validate:"required"`
	Username string `json:"username"`
	Address  string `json:"address"`
	Phone    string `json:"phone"`
	Notes    string `json:"notes"`
}

type listPaymentsRequest struct {
	Query    string `query:"q"`
	Sort     string `query:"sort" validate:"omitempty,oneof=due_date_asc due_date_desc amount_asc amount_desc"`
	Page     int    `query:"page"`
	PageSize int    `query:"page_size"`
}

// --- Response types ---

type paymentResponse struct {
	ID          string     `json:"id"`
	BillID      string     `json:"bill_id"`
	Title       string     `json:"title"`
	Category    string     `json:"category"`
	Amount      float64    `json:"amount"`
	Location    string     `json:"location"`
	Description string     `json:"description,omitempty"`
	ImageURL    string     `json:"image_url,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	PayerEmail  string     `json:"payer_email"`
	Username    string     `json:"username"`
	Address     string     `json:"address"`
	Phone       string     `json:"phone"`
	Notes       string     `json:"notes,omitempty"`
	PaidAt      time.Time  `json:"paid_at"`
}

type listPaymentsResponse struct {
	Data       []paymentResponse  `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}

// signInRequiredResponse tells an unauthenticated payer where to sign in and
// where the stashed bill can be resumed afterwards.
type signInRequiredResponse struct {
	Error  string `json:"error"`
	SignIn string `json:"sign_in"`
	Resume string `json:"resume"`
}
