package dto

import "github.com/amirhossein-jamali/companion-ledger/internal/domain/port/usecase"

// SendMessageRequest represents the API request for a paid text turn
type SendMessageRequest struct {
	Text string `json:"text" binding:"required"`
}

// GenerateImageRequest represents the API request for a paid image turn
type GenerateImageRequest struct {
	Scenario string `json:"scenario" binding:"required"`
	Level    int    `json:"level" binding:"gte=0"`
}

// MessageResponse is the outcome of a paid text turn
type MessageResponse struct {
	UserTurn TurnResponse `json:"userTurn"`
	Reply    TurnResponse `json:"reply"`
	Cost     int64        `json:"cost"`
	Balance  int64        `json:"balance"`
}

// NewMessageResponse converts a message result
func NewMessageResponse(r *usecase.MessageResult) MessageResponse {
	return MessageResponse{
		UserTurn: NewTurnResponse(r.UserTurn),
		Reply:    NewTurnResponse(r.Reply),
		Cost:     r.Cost,
		Balance:  r.Balance,
	}
}

// GeneratedImageResponse is the outcome of a paid image turn
type GeneratedImageResponse struct {
	Image   ImageResponse `json:"image"`
	Turn    TurnResponse  `json:"turn"`
	Cost    int64         `json:"cost"`
	Balance int64         `json:"balance"`
}

// NewGeneratedImageResponse converts an image result
func NewGeneratedImageResponse(r *usecase.ImageResult) GeneratedImageResponse {
	return GeneratedImageResponse{
		Image:   NewImageResponse(r.Image),
		Turn:    NewTurnResponse(r.Turn),
		Cost:    r.Cost,
		Balance: r.Balance,
	}
}
