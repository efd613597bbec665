package entity

import (
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/companion-ledger/internal/domain/error"
)

// Persona defaults applied when optional fields are left empty
const (
	DefaultPersonaAge         = 24
	DefaultPersonaDescription = "Confident, flirty, direct"
	DefaultPersonaAppearance  = "beautiful woman"
	MinPersonaAge             = 18
	MaxPersonaAge             = 99
	MaxPersonaNameLength      = 50
	MaxPersonaTextLength      = 1000
	MaxPersonaSeed            = 999999
)

// Persona is a character owned by one account
type Persona struct {
	ID              string
	AccountID       string
	Name            string
	Age             int
	Description     string
	VisualPrompt    string
	Seed            *int64
	AvatarURL       string
	ImagesGenerated int
	CreatedAt       time.Time
}

// PersonaInput holds the owner-supplied persona fields
type PersonaInput struct {
	Name         string
	Age          int
	Description  string
	VisualPrompt string
	Seed         *int64
}

// Validate checks the persona input
func (in PersonaInput) Validate() error {
	name := strings.TrimSpace(in.Name)
	if name == "" || len(name) > MaxPersonaNameLength {
		return errs.NewValidationError("name", "must be between 1 and 50 characters")
	}
	if in.Age != 0 && (in.Age < MinPersonaAge || in.Age > MaxPersonaAge) {
		return errs.NewValidationError("age", "must be between 18 and 99")
	}
	if len(in.Description) > MaxPersonaTextLength {
		return errs.NewValidationError("description", "is too long")
	}
	if len(in.VisualPrompt) > MaxPersonaTextLength {
		return errs.NewValidationError("visualPrompt", "is too long")
	}
	if in.Seed != nil && (*in.Seed < 1 || *in.Seed > MaxPersonaSeed) {
		return errs.NewValidationError("seed", "must be between 1 and 999999")
	}
	return nil
}

// NewPersona creates a persona from validated input
func NewPersona(id, accountID string, in PersonaInput, now time.Time) (*Persona, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	return &Persona{
		ID:           id,
		AccountID:    accountID,
		Name:         strings.TrimSpace(in.Name),
		Age:          in.Age,
		Description:  strings.TrimSpace(in.Description),
		VisualPrompt: strings.TrimSpace(in.VisualPrompt),
		Seed:         in.Seed,
		CreatedAt:    now,
	}, nil
}

// Context returns the typed prompt context with defaults filled in
func (p *Persona) Context() PersonaContext {
	return NewPersonaContext(p.Name, p.Age, p.Description, p.VisualPrompt)
}

// PersonaContext is the typed persona description handed to the responder
type PersonaContext struct {
	Name        string
	Age         int
	Personality string
	Appearance  string
}

// NewPersonaContext builds a context, substituting defaults for empty fields
func NewPersonaContext(name string, age int, personality, appearance string) PersonaContext {
	if age <= 0 {
		age = DefaultPersonaAge
	}
	if strings.TrimSpace(personality) == "" {
		personality = DefaultPersonaDescription
	}
	if strings.TrimSpace(appearance) == "" {
		appearance = DefaultPersonaAppearance
	}

	return PersonaContext{
		Name:        name,
		Age:         age,
		Personality: personality,
		Appearance:  appearance,
	}
}
