package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/companion-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/companion-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/companion-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/companion-ledger/internal/infrastructure/adapter/api/middleware"
)

// LedgerHandler serves the transaction history
type LedgerHandler struct {
	ledger usecase.LedgerUseCase
	logger coreport.Logger
}

// NewLedgerHandler creates a new ledger handler instance
func NewLedgerHandler(ledger usecase.LedgerUseCase, logger coreport.Logger) *LedgerHandler {
	return &LedgerHandler{
		ledger: ledger,
		logger: logger,
	}
}

// History handles GET /transactions
func (h *LedgerHandler) History(c *gin.Context) {
	page, err := pageFromQuery(c)
	if err != nil {
		respondError(c, h.logger, "parsing page", err)
		return
	}

	txns, err := h.ledger.History(c.Request.Context(), middleware.GetAccountID(c), page)
	if err != nil {
		respondError(c, h.logger, "loading transactions", err)
		return
	}

	c.JSON(http.StatusOK, listOf(txns, dto.NewTransactionResponse, page))
}
