// Package imagegen implements the ImageProvider port on fal.ai-compatible
// synchronous endpoints.
package imagegen

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	coreport "github.com/amirhossein-jamali/companion-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/companion-ledger/internal/domain/port/gateway"
)

// Request defaults used when the configuration leaves them empty
const (
	DefaultBaseURL        = "https://fal.run/fal-ai/flux/dev"
	DefaultImageSize      = "portrait_4_3"
	DefaultInferenceSteps = 28
	DefaultGuidanceScale  = 3.5

	qualitySuffix  = "RAW photo, 8k uhd, photorealistic, dslr, sharp focus, soft lighting, realistic skin texture, high detail"
	maxErrorLength = 500
)

// ErrNoImage is returned when the provider answered without an image
var ErrNoImage = errors.New("image provider returned no images")

// levelStyles describes each content level, higher levels reuse the last entry
var levelStyles = []string{
	"elegant portrait, tasteful, confident posture, looking at viewer",
	"suggestive, alluring pose, intimate lighting, looking at viewer",
	"adult content, sensual, natural body, realistic proportions",
}

// Config holds the provider settings
type Config struct {
	BaseURL           string
	APIKey            string
	ImageSize         string
	InferenceSteps    int
	GuidanceScale     float64
	EnableSafetyCheck bool
}

// FalProvider implements gateway.ImageProvider
type FalProvider struct {
	httpClient *http.Client
	config     Config
	logger     coreport.Logger
}

// NewFalProvider creates a provider. Timeouts come from the caller's context.
func NewFalProvider(cfg Config, httpClient *http.Client, logger coreport.Logger) (*FalProvider, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("image provider api key is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.ImageSize == "" {
		cfg.ImageSize = DefaultImageSize
	}
	if cfg.InferenceSteps <= 0 {
		cfg.InferenceSteps = DefaultInferenceSteps
	}
	if cfg.GuidanceScale <= 0 {
		cfg.GuidanceScale = DefaultGuidanceScale
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	return &FalProvider{httpClient: httpClient, config: cfg, logger: logger}, nil
}

var _ gateway.ImageProvider = (*FalProvider)(nil)

type generateRequest struct {
	Prompt              string  `json:"prompt"`
	ImageSize           string  `json:"image_size"`
	NumInferenceSteps   int     `json:"num_inference_steps"`
	GuidanceScale       float64 `json:"guidance_scale"`
	Seed                *int64  `json:"seed,omitempty"`
	EnableSafetyChecker bool    `json:"enable_safety_checker"`
	NumImages           int     `json:"num_images"`
	OutputFormat        string  `json:"output_format"`
}

type generateResponse struct {
	Images []struct {
		URL string `json:"url"`
	} `json:"images"`
}

// BuildPrompt renders the provider prompt for a request
func BuildPrompt(req gateway.ImageRequest) string {
	idx := min(max(req.Level, 0), len(levelStyles)-1)
	parts := []string{"RAW photo"}
	if v := strings.TrimSpace(req.Visual); v != "" {
		parts = append(parts, v)
	}
	if s := strings.TrimSpace(req.Scenario); s != "" {
		parts = append(parts, s)
	}
	parts = append(parts, levelStyles[idx], qualitySuffix)
	return strings.Join(parts, ", ")
}

// Generate renders one image and returns its URL
func (p *FalProvider) Generate(ctx context.Context, req gateway.ImageRequest) (string, error) {
	body, err := json.Marshal(generateRequest{
		Prompt:              BuildPrompt(req),
		ImageSize:           p.config.ImageSize,
		NumInferenceSteps:   p.config.InferenceSteps,
		GuidanceScale:       p.config.GuidanceScale,
		Seed:                req.Seed,
		EnableSafetyChecker: p.config.EnableSafetyCheck,
		NumImages:           1,
		OutputFormat:        "jpeg",
	})
	if err != nil {
		return "", fmt.Errorf("encode image request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.config.BaseURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build image request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Key "+p.config.APIKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("image request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorLength))
		p.logger.Warn("Image provider error", map[string]any{
			"status": resp.StatusCode,
			"body":   string(snippet),
			"level":  req.Level,
		})
		return "", fmt.Errorf("image provider returned status %d", resp.StatusCode)
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode image response: %w", err)
	}
	if len(out.Images) == 0 || out.Images[0].URL == "" {
		return "", ErrNoImage
	}
	return out.Images[0].URL, nil
}
