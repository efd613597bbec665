package config

import (
	"time"

	"github.com/amirhossein-jamali/companion-ledger/internal/domain/entity"
	"github.com/amirhossein-jamali/companion-ledger/internal/domain/usecase/pricing"
	"github.com/amirhossein-jamali/companion-ledger/internal/domain/usecase/tier"
)

// Config holds all configuration for the application
type Config struct {
	Environment   string              `mapstructure:"environment"`
	Server        ServerConfig        `mapstructure:"server"`
	Database      DatabaseConfig      `mapstructure:"database"`
	Logger        LoggerConfig        `mapstructure:"logger"`
	Ledger        LedgerConfig        `mapstructure:"ledger"`
	Generation    GenerationConfig    `mapstructure:"generation"`
	Auth          AuthConfig          `mapstructure:"auth"`
	Responder     ResponderConfig     `mapstructure:"responder"`
	ImageProvider ImageProviderConfig `mapstructure:"imageProvider"`
	Storage       StorageConfig       `mapstructure:"storage"`
	Payment       PaymentConfig       `mapstructure:"payment"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`       // seconds
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`      // seconds
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`       // seconds
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"` // seconds
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`   // seconds
	MetricsEnabled    bool          `mapstructure:"metricsEnabled"`
	CORSOrigins       []string      `mapstructure:"corsOrigins"`
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"` // postgres, sqlite or memory
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	Username        string        `mapstructure:"username"`
	Password        string        `mapstructure:"password"`
	Database        string        `mapstructure:"database"` // File path for sqlite
	SSLMode         string        `mapstructure:"sslMode"`
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"` // minutes
	ConnMaxIdleTime time.Duration `mapstructure:"connMaxIdleTime"` // minutes
	QueryTimeout    time.Duration `mapstructure:"queryTimeout"`    // seconds
	RetryAttempts   int           `mapstructure:"retryAttempts"`
	RetryDelay      time.Duration `mapstructure:"retryDelay"` // seconds
	LogLevel        string        `mapstructure:"logLevel"`
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	Output     string `mapstructure:"output"`
	TimeFormat string `mapstructure:"timeFormat"`
	CallerInfo bool   `mapstructure:"callerInfo"`
}

// ContentLevelConfig prices one content level
type ContentLevelConfig struct {
	Level   int    `mapstructure:"level"`
	Name    string `mapstructure:"name"`
	Cost    int64  `mapstructure:"cost"`
	MinTier int    `mapstructure:"minTier"`
}

// ThresholdConfig is one row of a spend table
type ThresholdConfig struct {
	Spend int64 `mapstructure:"spend"`
	Level int   `mapstructure:"level"`
}

// LedgerConfig contains prices, spend tables and ledger retry settings
type LedgerConfig struct {
	TextCost           int64                `mapstructure:"textCost"`
	Levels             []ContentLevelConfig `mapstructure:"levels"`
	LevelThresholds    []ThresholdConfig    `mapstructure:"levelThresholds"`
	UnlockThresholds   []ThresholdConfig    `mapstructure:"unlockThresholds"`
	OpeningBalance     int64                `mapstructure:"openingBalance"`
	SignupBonus        int64                `mapstructure:"signupBonus"`
	RefundReducesSpend bool                 `mapstructure:"refundReducesSpend"`
	MaxRetries         uint                 `mapstructure:"maxRetries"`
	RetryInterval      time.Duration        `mapstructure:"retryInterval"`    // milliseconds
	MaxRetryInterval   time.Duration        `mapstructure:"maxRetryInterval"` // milliseconds
}

// GenerationConfig tunes the generation orchestrator
type GenerationConfig struct {
	ContextWindow    int           `mapstructure:"contextWindow"`
	ResponderTimeout time.Duration `mapstructure:"responderTimeout"` // seconds
	ImageTimeout     time.Duration `mapstructure:"imageTimeout"`     // seconds
	AvatarTimeout    time.Duration `mapstructure:"avatarTimeout"`    // seconds
	RefundTimeout    time.Duration `mapstructure:"refundTimeout"`    // seconds
	RefundMaxTries   uint          `mapstructure:"refundMaxTries"`

	// Unsettled reservations older than ReconcileAfter are refunded every ReconcileInterval
	ReconcileAfter    time.Duration `mapstructure:"reconcileAfter"`    // seconds
	ReconcileInterval time.Duration `mapstructure:"reconcileInterval"` // seconds
	ReconcileBatch    int           `mapstructure:"reconcileBatch"`
}

// AuthConfig contains password hashing and token settings
type AuthConfig struct {
	JWTSecret  string        `mapstructure:"jwtSecret"`
	Issuer     string        `mapstructure:"issuer"`
	TokenTTL   time.Duration `mapstructure:"tokenTTL"` // hours
	BcryptCost int           `mapstructure:"bcryptCost"`
}

// ResponderConfig points at an OpenAI-compatible chat completion API
type ResponderConfig struct {
	BaseURL     string  `mapstructure:"baseURL"`
	APIKey      string  `mapstructure:"apiKey"`
	Model       string  `mapstructure:"model"`
	Temperature float32 `mapstructure:"temperature"`
	MaxTokens   int     `mapstructure:"maxTokens"`
}

// ImageProviderConfig points at a synchronous image generation endpoint
type ImageProviderConfig struct {
	BaseURL           string  `mapstructure:"baseURL"`
	APIKey            string  `mapstructure:"apiKey"`
	ImageSize         string  `mapstructure:"imageSize"`
	InferenceSteps    int     `mapstructure:"inferenceSteps"`
	GuidanceScale     float64 `mapstructure:"guidanceScale"`
	EnableSafetyCheck bool    `mapstructure:"enableSafetyCheck"`
}

// StorageConfig contains the S3 compatible bucket used to mirror images
type StorageConfig struct {
	Enabled       bool          `mapstructure:"enabled"`
	Bucket        string        `mapstructure:"bucket"`
	Region        string        `mapstructure:"region"`
	Endpoint      string        `mapstructure:"endpoint"`
	AccessKey     string        `mapstructure:"accessKey"`
	SecretKey     string        `mapstructure:"secretKey"`
	PublicBaseURL string        `mapstructure:"publicBaseURL"`
	KeyPrefix     string        `mapstructure:"keyPrefix"`
	UsePathStyle  bool          `mapstructure:"usePathStyle"`
	FetchTimeout  time.Duration `mapstructure:"fetchTimeout"`  // seconds
	UploadTimeout time.Duration `mapstructure:"uploadTimeout"` // seconds, fetch and upload together
}

// PaymentConfig contains Stripe settings. An empty secret key disables checkout.
type PaymentConfig struct {
	SecretKey     string `mapstructure:"secretKey"`
	WebhookSecret string `mapstructure:"webhookSecret"`
	SuccessURL    string `mapstructure:"successURL"`
	CancelURL     string `mapstructure:"cancelURL"`
	Currency      string `mapstructure:"currency"`
}

// PricingConfig converts the ledger section into the domain pricing input.
// Empty tables fall back to the built-in defaults.
func (c LedgerConfig) PricingConfig() pricing.Config {
	cfg := pricing.DefaultConfig()
	if c.TextCost > 0 {
		cfg.TextCost = c.TextCost
	}
	cfg.OpeningBalance = c.OpeningBalance
	cfg.SignupBonus = c.SignupBonus
	cfg.RefundReducesSpend = c.RefundReducesSpend

	if len(c.Levels) > 0 {
		cfg.Levels = make([]entity.ContentLevel, 0, len(c.Levels))
		for _, l := range c.Levels {
			cfg.Levels = append(cfg.Levels, entity.ContentLevel{Level: l.Level, Name: l.Name, Cost: l.Cost, MinTier: l.MinTier})
		}
	}
	if len(c.LevelThresholds) > 0 {
		cfg.LevelThresholds = thresholds(c.LevelThresholds)
	}
	if len(c.UnlockThresholds) > 0 {
		cfg.UnlockThresholds = thresholds(c.UnlockThresholds)
	}
	return cfg
}

func thresholds(in []ThresholdConfig) []tier.Threshold {
	out := make([]tier.Threshold, 0, len(in))
	for _, t := range in {
		out = append(out, tier.Threshold{Spend: t.Spend, Level: t.Level})
	}
	return out
}
