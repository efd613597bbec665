package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/companion-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/companion-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/companion-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/companion-ledger/internal/infrastructure/adapter/api/middleware"
)

// GenerationHandler handles paid text and image turns
type GenerationHandler struct {
	generation usecase.GenerationUseCase
	logger     coreport.Logger
}

// NewGenerationHandler creates a new generation handler instance
func NewGenerationHandler(generation usecase.GenerationUseCase, logger coreport.Logger) *GenerationHandler {
	return &GenerationHandler{
		generation: generation,
		logger:     logger,
	}
}

// SendMessage handles POST /personas/:personaId/messages
func (h *GenerationHandler) SendMessage(c *gin.Context) {
	var req dto.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	result, err := h.generation.SendMessage(c.Request.Context(), middleware.GetAccountID(c), c.Param("personaId"), req.Text)
	if err != nil {
		respondError(c, h.logger, "sending message", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewMessageResponse(result))
}

// GenerateImage handles POST /personas/:personaId/images
func (h *GenerationHandler) GenerateImage(c *gin.Context) {
	var req dto.GenerateImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	result, err := h.generation.GenerateImage(c.Request.Context(), middleware.GetAccountID(c), c.Param("personaId"), req.Scenario, req.Level)
	if err != nil {
		respondError(c, h.logger, "generating image", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewGeneratedImageResponse(result))
}
