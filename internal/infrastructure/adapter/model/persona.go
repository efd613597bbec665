package model

import (
	"time"

	"github.com/amirhossein-jamali/companion-ledger/internal/domain/entity"
)

// Persona represents the database model for personas
type Persona struct {
	ID              string    `gorm:"primaryKey;size:64"`
	AccountID       string    `gorm:"not null;size:64;index"`
	Name            string    `gorm:"not null;size:50"`
	Age             int       `gorm:"not null;default:0"`
	Description     string    `gorm:"type:text"`
	VisualPrompt    string    `gorm:"type:text"`
	Seed            *int64
	AvatarURL       string    `gorm:"type:text"`
	ImagesGenerated int       `gorm:"not null;default:0"`
	CreatedAt       time.Time `gorm:"not null"`

	Account Account `gorm:"foreignKey:AccountID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for Persona
func (Persona) TableName() string {
	return "personas"
}

// FromPersona converts a persona entity to its row
func FromPersona(p *entity.Persona) *Persona {
	return &Persona{
		ID:              p.ID,
		AccountID:       p.AccountID,
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

// ToEntity rebuilds the persona entity
func (m *Persona) ToEntity() *entity.Persona {
	return &entity.Persona{
		ID:              m.ID,
		AccountID:       m.AccountID,
		Name:            m.Name,
		Age:             m.Age,
		Description:     m.Description,
		VisualPrompt:    m.VisualPrompt,
		Seed:            m.Seed,
		AvatarURL:       m.AvatarURL,
		ImagesGenerated: m.ImagesGenerated,
		CreatedAt:       m.CreatedAt,
	}
}

// ConversationTurn represents one message row
type ConversationTurn struct {
	ID        string    `gorm:"primaryKey;size:64"`
	PersonaID string    `gorm:"not null;size:64;index:idx_turns_persona_created,priority:1"`
	Sender    string    `gorm:"not null;size:20"`
	Content   string    `gorm:"type:text;not null"`
	IsImage   bool      `gorm:"not null;default:false"`
	ImageURL  string    `gorm:"type:text"`
	Cost      int64     `gorm:"not null;default:0"`
	CreatedAt time.Time `gorm:"not null;index:idx_turns_persona_created,priority:2"`

	Persona Persona `gorm:"foreignKey:PersonaID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for ConversationTurn
func (ConversationTurn) TableName() string {
	return "conversation_turns"
}

// FromTurn converts a turn entity to its row
func FromTurn(t *entity.ConversationTurn) *ConversationTurn {
	return &ConversationTurn{
		ID:        t.ID,
		PersonaID: t.PersonaID,
		Sender:    string(t.Sender),
		Content:   t.Content,
		IsImage:   t.IsImage,
		ImageURL:  t.ImageURL,
		Cost:      t.Cost,
		CreatedAt: t.CreatedAt,
	}
}

// ToEntity rebuilds the turn entity
func (m *ConversationTurn) ToEntity() *entity.ConversationTurn {
	return &entity.ConversationTurn{
		ID:        m.ID,
		PersonaID: m.PersonaID,
		Sender:    entity.Sender(m.Sender),
		Content:   m.Content,
		IsImage:   m.IsImage,
		ImageURL:  m.ImageURL,
		Cost:      m.Cost,
		CreatedAt: m.CreatedAt,
	}
}

// GeneratedImage represents a gallery row
type GeneratedImage struct {
	ID        string    `gorm:"primaryKey;size:64"`
	AccountID string    `gorm:"not null;size:64;index:idx_images_account_created,priority:1"`
	PersonaID string    `gorm:"not null;size:64;index"`
	Prompt    string    `gorm:"type:text"`
	Level     int       `gorm:"not null"`
	Cost      int64     `gorm:"not null"`
	URL       string    `gorm:"type:text;not null"`
	Liked     bool      `gorm:"not null;default:false"`
	CreatedAt time.Time `gorm:"not null;index:idx_images_account_created,priority:2"`

	Persona Persona `gorm:"foreignKey:PersonaID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for GeneratedImage
func (GeneratedImage) TableName() string {
	return "generated_images"
}

// FromImage converts a gallery entity to its row
func FromImage(i *entity.GeneratedImage) *GeneratedImage {
	return &GeneratedImage{
		ID:        i.ID,
		AccountID: i.AccountID,
		PersonaID: i.PersonaID,
		Prompt:    i.Prompt,
		Level:     i.Level,
		Cost:      i.Cost,
		URL:       i.URL,
		Liked:     i.Liked,
		CreatedAt: i.CreatedAt,
	}
}

// ToEntity rebuilds the gallery entity
func (m *GeneratedImage) ToEntity() *entity.GeneratedImage {
	return &entity.GeneratedImage{
		ID:        m.ID,
		AccountID: m.AccountID,
		PersonaID: m.PersonaID,
		Prompt:    m.Prompt,
		Level:     m.Level,
		Cost:      m.Cost,
		URL:       m.URL,
		Liked:     m.Liked,
		CreatedAt: m.CreatedAt,
	}
}
