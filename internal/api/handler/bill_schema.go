package handler

import "time"

// --- Request types ---

type listBillsRequest struct {
	Query    string `query:"q"`
	Category string `query:"category"  validate:"omitempty,oneof=Electricity Gas Internet Water Other"`
	Sort     string `query:"sort"      validate:"omitempty,oneof=due_date_asc due_date_desc amount_asc amount_desc"`
	Page     int    `query:"page"`
	PageSize int    `query:"page_size"`
}

// --- Response types ---
// Response-only types owned by the transport layer, intentionally separate
// from ports/domain types so the JSON contract is not coupled to internal
// service changes.

type billItemResponse struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Category    string     `json:"category"`
	Amount      float64    `json:"amount"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Location    string     `json:"location"`
	Description string     `json:"description,omitempty"`
	ImageURL    string     `json:"image_url,omitempty"`
	Payable     bool       `json:"payable"`
}

type paginationResponse struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalPages int `json:"total_pages"`
}

type listBillsResponse struct {
	Data       []billItemResponse `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}

type recentBillsResponse struct {
	Data []billItemResponse `json:"data"`
}
