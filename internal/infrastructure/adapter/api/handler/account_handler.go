package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/companion-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/companion-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/companion-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/companion-ledger/internal/infrastructure/adapter/api/middleware"
)

// AccountHandler handles signup, login and account lifecycle requests
type AccountHandler struct {
	accounts usecase.AccountUseCase
	logger   coreport.Logger
}

// NewAccountHandler creates a new account handler instance
func NewAccountHandler(accounts usecase.AccountUseCase, logger coreport.Logger) *AccountHandler {
	return &AccountHandler{
		accounts: accounts,
		logger:   logger,
	}
}

// Register handles POST /auth/register
func (h *AccountHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	result, err := h.accounts.Register(c.Request.Context(), usecase.RegisterInput{
		Email:    req.Email,
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		respondError(c, h.logger, "registering account", err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewAuthResponse(result))
}

// Login handles POST /auth/login
func (h *AccountHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	result, err := h.accounts.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, h.logger, "logging in", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAuthResponse(result))
}

// Me handles GET /me
func (h *AccountHandler) Me(c *gin.Context) {
	summary, err := h.accounts.Me(c.Request.Context(), middleware.GetAccountID(c))
	if err != nil {
		respondError(c, h.logger, "loading account", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAccountResponse(summary))
}

// Delete handles DELETE /me
func (h *AccountHandler) Delete(c *gin.Context) {
	if err := h.accounts.Delete(c.Request.Context(), middleware.GetAccountID(c)); err != nil {
		respondError(c, h.logger, "deleting account", err)
		return
	}

	c.Status(http.StatusNoContent)
}
