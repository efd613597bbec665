package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amirhossein-jamali/companion-ledger/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/companion-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/companion-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/companion-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/companion-ledger/internal/infrastructure/adapter/api/middleware"
)

// PersonaHandler serves personas, their conversation history and the image gallery
type PersonaHandler struct {
	personas usecase.PersonaUseCase
	logger   coreport.Logger
}

// NewPersonaHandler creates a new persona handler instance
func NewPersonaHandler(personas usecase.PersonaUseCase, logger coreport.Logger) *PersonaHandler {
	return &PersonaHandler{
		personas: personas,
		logger:   logger,
	}
}

// Create handles POST /personas
func (h *PersonaHandler) Create(c *gin.Context) {
	var req dto.CreatePersonaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	persona, err := h.personas.Create(c.Request.Context(), middleware.GetAccountID(c), req.Input())
	if err != nil {
		respondError(c, h.logger, "creating persona", err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewPersonaResponse(persona))
}

// List handles GET /personas
func (h *PersonaHandler) List(c *gin.Context) {
	personas, err := h.personas.List(c.Request.Context(), middleware.GetAccountID(c))
	if err != nil {
		respondError(c, h.logger, "listing personas", err)
		return
	}

	c.JSON(http.StatusOK, dto.ListResponse[dto.PersonaResponse]{
		Items: dto.Map(personas, dto.NewPersonaResponse),
	})
}

// Get handles GET /personas/:personaId
func (h *PersonaHandler) Get(c *gin.Context) {
	persona, err := h.personas.Get(c.Request.Context(), middleware.GetAccountID(c), c.Param("personaId"))
	if err != nil {
		respondError(c, h.logger, "loading persona", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPersonaResponse(persona))
}

// Delete handles DELETE /personas/:personaId
func (h *PersonaHandler) Delete(c *gin.Context) {
	if err := h.personas.Delete(c.Request.Context(), middleware.GetAccountID(c), c.Param("personaId")); err != nil {
		respondError(c, h.logger, "deleting persona", err)
		return
	}

	c.Status(http.StatusNoContent)
}

// History handles GET /personas/:personaId/messages
func (h *PersonaHandler) History(c *gin.Context) {
	page, err := pageFromQuery(c)
	if err != nil {
		respondError(c, h.logger, "parsing page", err)
		return
	}

	turns, err := h.personas.History(c.Request.Context(), middleware.GetAccountID(c), c.Param("personaId"), page)
	if err != nil {
		respondError(c, h.logger, "loading conversation", err)
		return
	}

	c.JSON(http.StatusOK, listOf(turns, dto.NewTurnResponse, page))
}

// Gallery handles GET /gallery. The personaId query narrows it to one persona.
func (h *PersonaHandler) Gallery(c *gin.Context) {
	page, err := pageFromQuery(c)
	if err != nil {
		respondError(c, h.logger, "parsing page", err)
		return
	}

	images, err := h.personas.Gallery(c.Request.Context(), middleware.GetAccountID(c), c.Query("personaId"), page)
	if err != nil {
		respondError(c, h.logger, "loading gallery", err)
		return
	}

	c.JSON(http.StatusOK, listOf(images, dto.NewImageResponse, page))
}

// ToggleLike handles POST /gallery/:imageId/like
func (h *PersonaHandler) ToggleLike(c *gin.Context) {
	imageID := c.Param("imageId")
	liked, err := h.personas.ToggleLike(c.Request.Context(), middleware.GetAccountID(c), imageID)
	if err != nil {
		respondError(c, h.logger, "toggling like", err)
		return
	}

	c.JSON(http.StatusOK, dto.LikeResponse{ImageID: imageID, Liked: liked})
}

func listOf[S any, T any](items []S, fn func(S) T, page entity.Page) dto.ListResponse[T] {
	return dto.ListResponse[T]{
		Items:  dto.Map(items, fn),
		Limit:  page.Limit,
		Offset: page.Offset,
	}
}
