package gateway

import (
	"context"

	"github.com/amirhossein-jamali/companion-ledger/internal/domain/entity"
)

// Turn is one message of the context window handed to a responder
type Turn struct {
	Sender  entity.Sender
	Content string
}

// Responder produces the persona's reply to a conversation
type Responder interface {
	// Reply returns the next assistant message. directive describes the persona,
	// turns are ordered oldest first and end with the newest user message.
	Reply(ctx context.Context, directive string, turns []Turn) (string, error)
}
