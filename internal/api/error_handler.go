package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/billpie/billpie/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Surfaces collaborator error messages verbatim when present.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Payment preconditions and known domain errors → deterministic codes.
	switch {
	case errors.Is(err, domain.ErrNotAuthenticated):
		return http.StatusUnauthorized, "sign in required"
	case errors.Is(err, domain.ErrNotPayableThisMonth):
		return http.StatusUnprocessableEntity, err.Error()
	case errors.Is(err, domain.ErrMissingRequiredField):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrInvalidPhoneFormat):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrInvalidTheme):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrBillNotFound):
		return http.StatusNotFound, "bill not found"
	case errors.Is(err, domain.ErrPaymentNotFound):
		return http.StatusNotFound, "payment not found"
	case errors.Is(err, domain.ErrNoPendingPayment):
		return http.StatusNotFound, "no pending payment"
	case errors.Is(err, domain.ErrProfileNotFound):
		return http.StatusNotFound, "profile not found"
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "access forbidden"
	}

	// Collaborator failures: the view stays interactive, the user sees the
	// collaborator's message when one was provided.
	var collab *domain.CollaboratorError
	if errors.As(err, &collab) {
		log.Warn().
			Err(err).
			Str("operation", collab.Op).
			Int("status", collab.Status).
			Msg("collaborator request failed")
		return http.StatusBadGateway, collab.UserMessage()
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
