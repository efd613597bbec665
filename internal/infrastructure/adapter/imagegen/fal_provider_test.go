package imagegen

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/companion-ledger/internal/domain/port/gateway"
	"github.com/amirhossein-jamali/companion-ledger/internal/infrastructure/adapter/logger"
)

func TestBuildPrompt(t *testing.T) {
	tests := []struct {
		name    string
		level   int
		contain string
	}{
		{"Safe", 0, "elegant portrait"},
		{"Suggestive", 1, "suggestive"},
		{"Explicit", 2, "adult content"},
		{"Above table clamps to last", 7, "adult content"},
		{"Negative clamps to first", -1, "elegant portrait"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prompt := BuildPrompt(gateway.ImageRequest{Visual: "red hair", Scenario: "at the beach", Level: tt.level})

			assert.Contains(t, prompt, "red hair, at the beach")
			assert.Contains(t, prompt, tt.contain)
		})
	}
}

func TestFalProvider(t *testing.T) {
	seed := int64(4242)

	t.Run("Generate", func(t *testing.T) {
		// Arrange
		var got generateRequest
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "Key fal-key", r.Header.Get("Authorization"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			_, _ = w.Write([]byte(`{"images":[{"url":"https://cdn.fal/img.jpg"}]}`))
		}))
		defer srv.Close()
		p, err := NewFalProvider(Config{BaseURL: srv.URL, APIKey: "fal-key"}, srv.Client(), logger.NewNoopLogger())
		require.NoError(t, err)

		// Act
		url, err := p.Generate(context.Background(), gateway.ImageRequest{Visual: "v", Scenario: "s", Level: 1, Seed: &seed})

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "https://cdn.fal/img.jpg", url)
		require.NotNil(t, got.Seed)
		assert.Equal(t, seed, *got.Seed)
		assert.Equal(t, DefaultImageSize, got.ImageSize)
		assert.Equal(t, DefaultInferenceSteps, got.NumInferenceSteps)
		assert.Equal(t, 1, got.NumImages)
	})

	t.Run("Provider error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "quota exceeded", http.StatusTooManyRequests)
		}))
		defer srv.Close()
		p, err := NewFalProvider(Config{BaseURL: srv.URL, APIKey: "k"}, srv.Client(), logger.NewNoopLogger())
		require.NoError(t, err)

		_, err = p.Generate(context.Background(), gateway.ImageRequest{Visual: "v"})
		assert.ErrorContains(t, err, "429")
	})

	t.Run("No images", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"images":[]}`))
		}))
		defer srv.Close()
		p, err := NewFalProvider(Config{BaseURL: srv.URL, APIKey: "k"}, srv.Client(), logger.NewNoopLogger())
		require.NoError(t, err)

		_, err = p.Generate(context.Background(), gateway.ImageRequest{Visual: "v"})
		assert.ErrorIs(t, err, ErrNoImage)
	})

	t.Run("Cancelled context", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"images":[{"url":"x"}]}`))
		}))
		defer srv.Close()
		p, err := NewFalProvider(Config{BaseURL: srv.URL, APIKey: "k"}, srv.Client(), logger.NewNoopLogger())
		require.NoError(t, err)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err = p.Generate(ctx, gateway.ImageRequest{Visual: "v"})
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("Key is required", func(t *testing.T) {
		_, err := NewFalProvider(Config{}, nil, logger.NewNoopLogger())
		assert.Error(t, err)
	})
}
