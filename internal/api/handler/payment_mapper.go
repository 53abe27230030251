package handler

import "github.com/billpie/billpie/internal/core/ports"

func toPaymentResponse(p ports.PaymentRecord) paymentResponse {
	resp := paymentResponse{
		ID:          p.ID,
		BillID:      p.BillID,
		Title:       p.Title,
		Category:    p.Category,
		Amount:      p.Amount,
		Location:    p.Location,
		Description: p.Description,
		ImageURL:    p.ImageURL,
		PayerEmail:  p.PayerEmail,
		Username:    p.Username,
		Address:     p.Address,
		Phone:       p.Phone,
		Notes:       p.Notes,
		PaidAt:      p.PaidAt.UTC(),
	}
	if !p.DueDate.IsZero() {
		due := p.DueDate.UTC()
		resp.DueDate = &due
	}
	return resp
}

func toPaymentResponses(records []ports.PaymentRecord) []paymentResponse {
	out := make([]paymentResponse, len(records))
	for i, p := range records {
		out[i] = toPaymentResponse(p)
	}
	return out
}

func toListPaymentsResponse(r *ports.ListPaymentsResult) listPaymentsResponse {
	return listPaymentsResponse{
		Data: toPaymentResponses(r.Items),
		Pagination: paginationResponse{
			Total:      r.Total,
			Page:       r.Page,
			PageSize:   r.PageSize,
			TotalPages: r.TotalPages,
		},
	}
}
