package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/billpie/billpie/internal/core/ports"
)

// BillHandler handles HTTP requests for the bill listing views.
type BillHandler struct {
	service ports.BillService
}

func NewBillHandler(service ports.BillService) *BillHandler {
	return &BillHandler{service: service}
}

// List handles GET /v1/bills.
//
// @Summary      List bills with client-side filter, sort, and pagination
// @Tags         bills
// @Produce      json
// @Param        q          query     string  false  "Case-insensitive substring over title/category/description/location"
// @Param        category   query     string  false  "Exact category filter"
// @Param        sort       query     string  false  "due_date_asc|due_date_desc|amount_asc|amount_desc"
// @Param        page       query     int     false  "1-indexed page, clamped into range"
// @Param        page_size  query     int     false  "Snapped to the preset sizes"
// @Success      200        {object}  listBillsResponse
// @Failure      422        {object}  errorResponse
// @Failure      502        {object}  errorResponse
// @Router       /v1/bills [get]
func (h *BillHandler) List(c echo.Context) error {
	var req listBillsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query parameters")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	result, err := h.service.ListBills(c.Request().Context(), ports.ListBillsInput{
		Query:    req.Query,
		Category: req.Category,
		Sort:     ports.SortKey(req.Sort),
		Page:     req.Page,
		PageSize: req.PageSize,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toListBillsResponse(result))
}

// Recent handles GET /v1/bills/recent.
//
// @Summary      List the collaborator's recent bills
// @Tags         bills
// @Produce      json
// @Success      200  {object}  recentBillsResponse
// @Failure      502  {object}  errorResponse
// @Router       /v1/bills/recent [get]
func (h *BillHandler) Recent(c echo.Context) error {
	items, err := h.service.ListRecentBills(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, recentBillsResponse{Data: toBillItemResponses(items)})
}

// --- Service result → HTTP response ---

func toBillItemResponse(item ports.BillItem) billItemResponse {
	resp := billItemResponse{
		ID:          item.ID,
		Title:       item.Title,
		Category:    item.Category,
		Amount:      item.Amount,
		Location:    item.Location,
		Description: item.Description,
		ImageURL:    item.ImageURL,
		Payable:     item.Payable,
	}
	if !item.DueDate.IsZero() {
		due := item.DueDate.UTC()
		resp.DueDate = &due
	}
	return resp
}

func toBillItemResponses(items []ports.BillItem) []billItemResponse {
	out := make([]billItemResponse, len(items))
	for i, item := range items {
		out[i] = toBillItemResponse(item)
	}
	return out
}

func toListBillsResponse(r *ports.ListBillsResult) listBillsResponse {
	return listBillsResponse{
		Data: toBillItemResponses(r.Items),
		Pagination: paginationResponse{
			Total:      r.Total,
			Page:       r.Page,
			PageSize:   r.PageSize,
			TotalPages: r.TotalPages,
		},
	}
}
