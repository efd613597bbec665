package generation

import (
	"fmt"

	"github.com/amirhossein-jamali/companion-ledger/internal/domain/entity"
	"github.com/amirhossein-jamali/companion-ledger/internal/domain/port/gateway"
)

// Directive renders the persona description handed to the responder
func Directive(pc entity.PersonaContext) string {
	return fmt.Sprintf(`You are %s, %d years old, texting with someone you like.

YOUR LOOK: %s
YOUR PERSONALITY: %s

HOW YOU TEXT:
- One or two short sentences per reply, like a real text message.
- React to what was just said. Never give generic answers.
- No asterisks and no narrated actions.
- Never break character.`, pc.Name, pc.Age, pc.Appearance, pc.Personality)
}

// contextWindow converts stored turns to responder turns, oldest first
func contextWindow(turns []*entity.ConversationTurn) []gateway.Turn {
	out := make([]gateway.Turn, 0, len(turns))
	for _, t := range turns {
		out = append(out, gateway.Turn{Sender: t.Sender, Content: t.ContextContent()})
	}
	return out
}
