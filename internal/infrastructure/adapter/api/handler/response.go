package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainerr "github.com/amirhossein-jamali/companion-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/companion-ledger/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/companion-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/companion-ledger/internal/infrastructure/adapter/api/dto"
)

// HTTPStatus maps a domain error to its HTTP status code. A failed generation
// is always 502 whatever its cause wraps.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, domainerr.ErrGenerationFailed):
		return http.StatusBadGateway
	case errors.Is(err, domainerr.ErrUnauthenticated), errors.Is(err, domainerr.ErrInvalidToken):
		return http.StatusUnauthorized
	case errors.Is(err, domainerr.ErrInsufficientFunds):
		return http.StatusPaymentRequired
	case errors.Is(err, domainerr.ErrAccessDenied):
		return http.StatusForbidden
	case domainerr.IsNotFoundError(err):
		return http.StatusNotFound
	case errors.Is(err, domainerr.ErrDuplicateAccount), errors.Is(err, domainerr.ErrDuplicateEntry),
		errors.Is(err, domainerr.ErrDuplicateTransaction):
		return http.StatusConflict
	case errors.Is(err, domainerr.ErrInvalidPaymentEvent), domainerr.IsValidationError(err):
		return http.StatusBadRequest
	case errors.Is(err, domainerr.ErrConcurrentUpdate):
		return http.StatusTooManyRequests
	case errors.Is(err, domainerr.ErrPaymentNotConfigured), errors.Is(err, domainerr.ErrDatabaseConnection):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// errorDetails exposes what a caller needs to recover from a rejection
func errorDetails(err error) map[string]any {
	var gen *domainerr.GenerationFailedError
	if errors.As(err, &gen) {
		details := map[string]any{"refunded": gen.Refunded}
		if !gen.Refunded {
			details["reservationId"] = gen.ReservationID
		}
		return details
	}
	var funds *domainerr.InsufficientFundsError
	if errors.As(err, &funds) {
		return map[string]any{"required": funds.Required, "available": funds.Available, "missing": funds.Missing()}
	}
	var denied *domainerr.AccessDeniedError
	if errors.As(err, &denied) {
		return map[string]any{
			"level":         denied.Level,
			"currentTier":   denied.CurrentTier,
			"requiredTier":  denied.RequiredTier,
			"creditsToNext": denied.Shortfall(),
		}
	}
	var invalid *domainerr.ValidationError
	if errors.As(err, &invalid) && invalid.Field != "" {
		return map[string]any{"field": invalid.Field}
	}
	return nil
}

// respondError writes the error response. Internal details are only logged.
func respondError(c *gin.Context, logger coreport.Logger, operation string, err error) {
	status := HTTPStatus(err)
	_ = c.Error(err)

	message := err.Error()
	if status >= http.StatusInternalServerError && status != http.StatusBadGateway {
		logger.Error("Error "+operation, map[string]any{"error": err.Error()})
		message = http.StatusText(status)
	}
	var gen *domainerr.GenerationFailedError
	if errors.As(err, &gen) {
		message = "Generation failed, your credits were returned"
		if !gen.Refunded {
			logger.Error("Error "+operation+", reservation not refunded", map[string]any{
				"reservation_id": gen.ReservationID,
				"error":          err.Error(),
			})
			message = "Generation failed, your credits were not yet returned and will be refunded automatically"
		}
	}

	c.JSON(status, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: message,
		Details: errorDetails(err),
	})
}

// bindError reports a malformed request body
func bindError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Code:    domainerr.CodeValidation,
		Message: "Invalid request: " + err.Error(),
	})
}

// pageFromQuery parses limit and offset. Absent values are left zero for the use case to default.
func pageFromQuery(c *gin.Context) (entity.Page, error) {
	var p entity.Page
	for name, target := range map[string]*int{"limit": &p.Limit, "offset": &p.Offset} {
		raw := c.Query(name)
		if raw == "" {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			return p, domainerr.NewValidationError(name, "must be a non-negative integer")
		}
		*target = v
	}
	return p, nil
}
