package entity

import (
	"fmt"
	"time"
)

// Sender identifies who authored a conversation turn
type Sender string

// Senders
const (
	SenderUser      Sender = "user"
	SenderAssistant Sender = "assistant"
)

// ImagePlaceholder replaces image turns when a conversation is sent to the responder
const ImagePlaceholder = "[just sent you a photo]"

// MaxMessageLength bounds a user-authored turn
const MaxMessageLength = 4000

// ConversationTurn is an append-only message in a persona's conversation
type ConversationTurn struct {
	ID        string
	PersonaID string
	Sender    Sender
	Content   string
	IsImage   bool
	ImageURL  string
	Cost      int64 // Credits charged for producing the turn, 0 for user turns
	CreatedAt time.Time
}

// NewUserTurn creates a free turn authored by the account owner
func NewUserTurn(id, personaID, content string, now time.Time) *ConversationTurn {
	return &ConversationTurn{
		ID:        id,
		PersonaID: personaID,
		Sender:    SenderUser,
		Content:   content,
		CreatedAt: now,
	}
}

// NewReplyTurn creates a paid assistant text turn
func NewReplyTurn(id, personaID, content string, cost int64, now time.Time) *ConversationTurn {
	return &ConversationTurn{
		ID:        id,
		PersonaID: personaID,
		Sender:    SenderAssistant,
		Content:   content,
		Cost:      cost,
		CreatedAt: now,
	}
}

// NewImageTurn creates a paid assistant turn that delivers an image
func NewImageTurn(id, personaID, scenario, imageURL string, cost int64, now time.Time) *ConversationTurn {
	return &ConversationTurn{
		ID:        id,
		PersonaID: personaID,
		Sender:    SenderAssistant,
		Content:   fmt.Sprintf("[photo: %s]", scenario),
		IsImage:   true,
		ImageURL:  imageURL,
		Cost:      cost,
		CreatedAt: now,
	}
}

// ContextContent returns the text sent to the responder for this turn
func (t *ConversationTurn) ContextContent() string {
	if t.IsImage {
		return ImagePlaceholder
	}
	return t.Content
}
