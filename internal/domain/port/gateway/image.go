package gateway

import "context"

// ImageRequest describes one image to generate
type ImageRequest struct {
	Visual   string // Persona appearance
	Scenario string // What the account asked for
	Level    int    // Content level
	Seed     *int64 // Optional persona seed for consistent looks
}

// ImageProvider synchronously generates an image and returns its URL
type ImageProvider interface {
	Generate(ctx context.Context, req ImageRequest) (string, error)
}

// ImageStore copies a provider URL into owned storage and returns the new URL
type ImageStore interface {
	Mirror(ctx context.Context, sourceURL string) (string, error)
}
