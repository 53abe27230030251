package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/billpie/billpie/internal/core/domain"
	"github.com/billpie/billpie/internal/core/ports"
)

const (
	signInPath        = "/auth/sign-in"
	pendingResumePath = "/v1/payments/pending"
)

// PaymentHandler handles payment submission and the payment history views.
type PaymentHandler struct {
	payments ports.PaymentService
	history  ports.HistoryService
}

func NewPaymentHandler(payments ports.PaymentService, history ports.HistoryService) *PaymentHandler {
	return &PaymentHandler{payments: payments, history: history}
}

// Create handles POST /v1/payments.
//
// @Summary      Submit a payment for a bill
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        request  body      payBillRequest  true  "Payment form"
// @Success      201      {object}  paymentResponse
// @Failure      400      {object}  errorResponse
// @Failure      401      {object}  signInRequiredResponse
// @Failure      422      {object}  errorResponse
// @Failure      502      {object}  errorResponse
// @Router       /v1/payments [post]
func (h *PaymentHandler) Create(c echo.Context) error {
	var req payBillRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.payments.PayBill(c.Request().Context(), ports.PayBillInput{
		Identity:   optionalIdentity(c),
		SessionKey: sessionKey(c),
		BillID:     req.BillID,
		Username:   req.Username,
		Address:    req.Address,
		Phone:      req.Phone,
		Notes:      req.Notes,
	})
	if err != nil {
		// Unauthenticated payers get a redirect envelope instead of a bare
		// 401: the bill they tried to pay is stashed for resumption.
		if errors.Is(err, domain.ErrNotAuthenticated) {
			return c.JSON(http.StatusUnauthorized, signInRequiredResponse{
				Error:  "sign in required",
				SignIn: signInPath,
				Resume: pendingResumePath,
			})
		}
		return err
	}

	return c.JSON(http.StatusCreated, toPaymentResponse(result.Payment))
}

// Pending handles GET /v1/payments/pending.
//
// @Summary      Resume the bill stashed before a sign-in redirect
// @Tags         payments
// @Produce      json
// @Success      200  {object}  billItemResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/payments/pending [get]
func (h *PaymentHandler) Pending(c echo.Context) error {
	item, err := h.payments.PendingBill(c.Request().Context(), sessionKey(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toBillItemResponse(*item))
}

// List handles GET /v1/payments.
//
// @Summary      List payment history for the authenticated user
// @Tags         payments
// @Produce      json
// @Param        q          query     string  false  "Case-insensitive substring filter"
// @Param        sort       query     string  false  "due_date_asc|due_date_desc|amount_asc|amount_desc"
// @Param        page       query     int     false  "1-indexed page"
// @Param        page_size  query     int     false  "Snapped to the preset sizes"
// @Success      200        {object}  listPaymentsResponse
// @Failure      401        {object}  errorResponse
// @Failure      502        {object}  errorResponse
// @Router       /v1/payments [get]
func (h *PaymentHandler) List(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req listPaymentsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query parameters")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	result, err := h.history.ListPayments(c.Request().Context(), ports.ListPaymentsInput{
		Identity: identity,
		Query:    req.Query,
		Sort:     ports.SortKey(req.Sort),
		Page:     req.Page,
		PageSize: req.PageSize,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toListPaymentsResponse(result))
}

// Get handles GET /v1/payments/:id.
//
// @Summary      Fetch a single payment record
// @Tags         payments
// @Produce      json
// @Param        id   path      string  true  "Payment ID"
// @Success      200  {object}  paymentResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/payments/{id} [get]
func (h *PaymentHandler) Get(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	record, err := h.history.GetPayment(c.Request().Context(), identity, c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toPaymentResponse(*record))
}

// Delete handles DELETE /v1/payments/:id.
//
// @Summary      Delete a payment record
// @Tags         payments
// @Param        id  path  string  true  "Payment ID"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Failure      502  {object}  errorResponse
// @Router       /v1/payments/{id} [delete]
func (h *PaymentHandler) Delete(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.history.DeletePayment(c.Request().Context(), identity, c.Param("id")); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// Receipt handles GET /v1/payments/:id/receipt.
//
// @Summary      Download a payment receipt as a text document
// @Tags         payments
// @Produce      plain
// @Param        id   path      string  true  "Payment ID"
// @Success      200  {string}  string
// @Failure      404  {object}  errorResponse
// @Router       /v1/payments/{id}/receipt [get]
func (h *PaymentHandler) Receipt(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	receipt, err := h.history.ExportReceipt(c.Request().Context(), identity, c.Param("id"))
	if err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=%q", receipt.Filename))
	return c.Blob(http.StatusOK, echo.MIMETextPlainCharsetUTF8, []byte(receipt.Body))
}

// Share handles GET /v1/payments/:id/share.
//
// @Summary      Build a shareable summary of a payment record
// @Tags         payments
// @Produce      json
// @Param        id   path      string  true  "Payment ID"
// @Success      200  {object}  ports.ShareSummary
// @Failure      404  {object}  errorResponse
// @Router       /v1/payments/{id}/share [get]
func (h *PaymentHandler) Share(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	summary, err := h.history.Share(c.Request().Context(), identity, c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, summary)
}
