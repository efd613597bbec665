// Package storage copies provider images into an S3-compatible bucket so
// gallery URLs outlive the provider's temporary links.
package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/google/uuid"

	coreport "github.com/amirhossein-jamali/companion-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/companion-ledger/internal/domain/port/gateway"
)

// MaxImageBytes bounds a mirrored image
const MaxImageBytes = 20 << 20

// ErrImageTooLarge is returned when the source exceeds MaxImageBytes
var ErrImageTooLarge = errors.New("image exceeds size limit")

// Config holds bucket settings
type Config struct {
	Endpoint      string
	Region        string
	AccessKey     string
	SecretKey     string
	Bucket        string
	PublicBaseURL string
	UsePathStyle  bool
	Prefix        string
}

// S3Mirror implements gateway.ImageStore
type S3Mirror struct {
	cfg          Config
	client       *s3.Client
	httpClient   *http.Client
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewS3Mirror validates the configuration and creates the S3 client
func NewS3Mirror(cfg Config, httpClient *http.Client, timeProvider coreport.TimeProvider, logger coreport.Logger) (*S3Mirror, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("s3 bucket is required")
	}
	if cfg.Region == "" {
		return nil, fmt.Errorf("s3 region is required")
	}
	if cfg.AccessKey == "" || cfg.SecretKey == "" {
		return nil, fmt.Errorf("s3 credentials are required")
	}
	if cfg.PublicBaseURL == "" {
		return nil, fmt.Errorf("s3 public base url is required")
	}
	if cfg.Prefix == "" {
		cfg.Prefix = "images"
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	options := s3.Options{
		Region:       cfg.Region,
		Credentials:  credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		UsePathStyle: cfg.UsePathStyle,
		HTTPClient:   httpClient,
	}
	if cfg.Endpoint != "" {
		options.BaseEndpoint = aws.String(cfg.Endpoint)
	}

	return &S3Mirror{
		cfg:          cfg,
		client:       s3.New(options),
		httpClient:   httpClient,
		timeProvider: timeProvider,
		logger:       logger,
	}, nil
}

var _ gateway.ImageStore = (*S3Mirror)(nil)

// Mirror downloads sourceURL and uploads it, returning the public URL
func (m *S3Mirror) Mirror(ctx context.Context, sourceURL string) (string, error) {
	data, contentType, err := m.fetch(ctx, sourceURL)
	if err != nil {
		return "", err
	}

	key := m.generateKey(contentType)
	_, err = m.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(m.cfg.Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
		ACL:         types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		m.logger.Warn("Failed to upload image", map[string]any{
			"bucket": m.cfg.Bucket,
			"key":    key,
			"error":  err.Error(),
		})
		return "", fmt.Errorf("upload to s3: %w", err)
	}

	return strings.TrimRight(m.cfg.PublicBaseURL, "/") + "/" + key, nil
}

func (m *S3Mirror) fetch(ctx context.Context, sourceURL string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, sourceURL, nil)
	if err != nil {
		return nil, "", fmt.Errorf("build download request: %w", err)
	}
	resp, err := m.httpClient.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("download image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("download image: status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxImageBytes+1))
	if err != nil {
		return nil, "", fmt.Errorf("read image: %w", err)
	}
	if len(data) == 0 {
		return nil, "", fmt.Errorf("download image: empty body")
	}
	if len(data) > MaxImageBytes {
		return nil, "", ErrImageTooLarge
	}

	contentType, _, _ := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	if !strings.HasPrefix(contentType, "image/") {
		contentType = http.DetectContentType(data)
	}
	return data, contentType, nil
}

func (m *S3Mirror) generateKey(contentType string) string {
	now := m.timeProvider.Now().UTC()
	prefix := strings.Trim(m.cfg.Prefix, "/")
	return path.Join(prefix, fmt.Sprintf("%04d/%02d/%02d", now.Year(), now.Month(), now.Day()), uuid.NewString()+extensionFromContentType(contentType))
}

func extensionFromContentType(contentType string) string {
	switch strings.ToLower(contentType) {
	case "image/png":
		return ".png"
	case "image/jpeg", "image/jpg":
		return ".jpg"
	case "image/webp":
		return ".webp"
	default:
		return ".bin"
	}
}
