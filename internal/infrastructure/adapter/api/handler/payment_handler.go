package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerr "github.com/amirhossein-jamali/companion-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/companion-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/companion-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/companion-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/companion-ledger/internal/infrastructure/adapter/api/middleware"
)

// Webhook limits
const (
	SignatureHeader = "Stripe-Signature"
	MaxWebhookBytes = 64 << 10
)

// PaymentHandler sells credit packages and receives payment notifications
type PaymentHandler struct {
	payments usecase.PaymentUseCase
	logger   coreport.Logger
}

// NewPaymentHandler creates a new payment handler instance
func NewPaymentHandler(payments usecase.PaymentUseCase, logger coreport.Logger) *PaymentHandler {
	return &PaymentHandler{
		payments: payments,
		logger:   logger,
	}
}

// Packages handles GET /packages
func (h *PaymentHandler) Packages(c *gin.Context) {
	packages, err := h.payments.Packages(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, "listing packages", err)
		return
	}

	c.JSON(http.StatusOK, dto.ListResponse[dto.PackageResponse]{
		Items: dto.Map(packages, dto.NewPackageResponse),
	})
}

// Checkout handles POST /checkout
func (h *PaymentHandler) Checkout(c *gin.Context) {
	var req dto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	session, err := h.payments.Checkout(c.Request.Context(), middleware.GetAccountID(c), req.PackageID)
	if err != nil {
		respondError(c, h.logger, "creating checkout", err)
		return
	}

	c.JSON(http.StatusOK, dto.CheckoutResponse{SessionID: session.ID, URL: session.URL})
}

// Webhook handles POST /payments/webhook. The raw body is needed to verify the signature.
func (h *PaymentHandler) Webhook(c *gin.Context) {
	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, MaxWebhookBytes+1))
	if err != nil {
		bindError(c, err)
		return
	}
	if len(payload) > MaxWebhookBytes {
		respondError(c, h.logger, "reading webhook", domainerr.ErrInvalidPaymentEvent)
		return
	}

	result, err := h.payments.HandleWebhook(c.Request.Context(), payload, c.GetHeader(SignatureHeader))
	if err != nil {
		h.logger.Warn("Payment webhook rejected", map[string]any{"error": err.Error()})
		respondError(c, h.logger, "handling webhook", err)
		return
	}

	resp := dto.WebhookResponse{
		Received:  true,
		Credited:  result.Credited,
		Duplicate: result.Duplicate,
	}
	if result.Event != nil {
		resp.EventID = result.Event.ID
	}
	c.JSON(http.StatusOK, resp)
}
