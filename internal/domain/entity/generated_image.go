package entity

import "time"

// GeneratedImage is a gallery record of a delivered image
type GeneratedImage struct {
	ID        string
	AccountID string
	PersonaID string
	Prompt    string // The scenario the account asked for
	Level     int
	Cost      int64
	URL       string
	Liked     bool
	CreatedAt time.Time
}

// ContentLevel classifies requested content by explicitness.
// Each level has a fixed price and the unlock tier it requires.
type ContentLevel struct {
	Level   int
	Name    string
	Cost    int64
	MinTier int
}
