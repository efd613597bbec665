package dto

import (
	"time"

	"github.com/amirhossein-jamali/companion-ledger/internal/domain/entity"
)

// CreatePersonaRequest represents the API request for creating a persona
type CreatePersonaRequest struct {
	Name         string `json:"name" binding:"required"`
	Age          int    `json:"age"`
	Description  string `json:"description"`
	VisualPrompt string `json:"visualPrompt"`
	Seed         *int64 `json:"seed"`
}

// Input converts the request to the domain input
func (r CreatePersonaRequest) Input() entity.PersonaInput {
	return entity.PersonaInput{
		Name:         r.Name,
		Age:          r.Age,
		Description:  r.Description,
		VisualPrompt: r.VisualPrompt,
		Seed:         r.Seed,
	}
}

// PersonaResponse represents a persona
type PersonaResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Age             int       `json:"age"`
	Description     string    `json:"description"`
	VisualPrompt    string    `json:"visualPrompt"`
	Seed            *int64    `json:"seed,omitempty"`
	AvatarURL       string    `json:"avatarUrl,omitempty"`
	ImagesGenerated int       `json:"imagesGenerated"`
	CreatedAt       time.Time `json:"createdAt"`
}

// NewPersonaResponse converts a persona
func NewPersonaResponse(p *entity.Persona) PersonaResponse {
	return PersonaResponse{
		ID:              p.ID,
		Name:            p.Name,
		Age:             p.Age,
		Description:     p.Description,
		VisualPrompt:    p.VisualPrompt,
		Seed:            p.Seed,
		AvatarURL:       p.AvatarURL,
		ImagesGenerated: p.ImagesGenerated,
		CreatedAt:       p.CreatedAt,
	}
}

// TurnResponse represents one conversation turn
type TurnResponse struct {
	ID        string    `json:"id"`
	Sender    string    `json:"sender"`
	Content   string    `json:"content"`
	IsImage   bool      `json:"isImage"`
	ImageURL  string    `json:"imageUrl,omitempty"`
	Cost      int64     `json:"cost"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewTurnResponse converts a turn
func NewTurnResponse(t *entity.ConversationTurn) TurnResponse {
	return TurnResponse{
		ID:        t.ID,
		Sender:    string(t.Sender),
		Content:   t.Content,
		IsImage:   t.IsImage,
		ImageURL:  t.ImageURL,
		Cost:      t.Cost,
		CreatedAt: t.CreatedAt,
	}
}

// ImageResponse represents a gallery image
type ImageResponse struct {
	ID        string    `json:"id"`
	PersonaID string    `json:"personaId"`
	Prompt    string    `json:"prompt"`
	Level     int       `json:"level"`
	Cost      int64     `json:"cost"`
	URL       string    `json:"url"`
	Liked     bool      `json:"liked"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewImageResponse converts a gallery image
func NewImageResponse(i *entity.GeneratedImage) ImageResponse {
	return ImageResponse{
		ID:        i.ID,
		PersonaID: i.PersonaID,
		Prompt:    i.Prompt,
		Level:     i.Level,
		Cost:      i.Cost,
		URL:       i.URL,
		Liked:     i.Liked,
		CreatedAt: i.CreatedAt,
	}
}

// LikeResponse reports the like state after a toggle
type LikeResponse struct {
	ImageID string `json:"imageId"`
	Liked   bool   `json:"liked"`
}

// ListResponse wraps a page of items
type ListResponse[T any] struct {
	Items  []T `json:"items"`
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// Map converts a slice with fn
func Map[S any, T any](items []S, fn func(S) T) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		out = append(out, fn(item))
	}
	return out
}
