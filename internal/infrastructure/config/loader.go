package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// EnvPrefix prefixes every environment override
const EnvPrefix = "CL"

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"../.env",
	"../../.env",
	"./configs/.env",
}

// envOverrides maps secret or deployment specific variables onto config keys
var envOverrides = map[string]string{
	"CL_SERVER_HOST":             "server.host",
	"CL_SERVER_PORT":             "server.port",
	"CL_DB_DRIVER":               "database.driver",
	"CL_DB_HOST":                 "database.host",
	"CL_DB_PORT":                 "database.port",
	"CL_DB_USERNAME":             "database.username",
	"CL_DB_PASSWORD":             "database.password",
	"CL_DB_NAME":                 "database.database",
	"CL_DB_SSL_MODE":             "database.sslMode",
	"CL_LOGGER_LEVEL":            "logger.level",
	"CL_CORS_ORIGINS":            "server.corsOrigins",
	"CL_JWT_SECRET":              "auth.jwtSecret",
	"CL_RESPONDER_API_KEY":       "responder.apiKey",
	"CL_RESPONDER_MODEL":         "responder.model",
	"CL_IMAGE_API_KEY":           "imageProvider.apiKey",
	"CL_STORAGE_ACCESS_KEY":      "storage.accessKey",
	"CL_STORAGE_SECRET_KEY":      "storage.secretKey",
	"CL_STORAGE_BUCKET":          "storage.bucket",
	"CL_STRIPE_SECRET_KEY":       "payment.secretKey",
	"CL_STRIPE_WEBHOOK_SECRET":   "payment.webhookSecret",
	"CL_LEDGER_OPENING_BALANCE":  "ledger.openingBalance",
	"CL_LEDGER_SIGNUP_BONUS":     "ledger.signupBonus",
	"CL_LEDGER_REFUND_REDUCES":   "ledger.refundReducesSpend",
	"CL_GENERATION_CONTEXT_SIZE": "generation.contextWindow",
	"CL_RECONCILE_AFTER":         "generation.reconcileAfter",
}

// LoadConfig loads configuration from file based on the environment
func LoadConfig() (*Config, error) {
	// A missing .env file is normal outside local development
	_ = loadDotEnvFile()

	env := GetEnvironment()

	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")
	for _, path := range ConfigPaths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return decode(v, env)
}

// LoadFromViper decodes an already populated viper instance. Used by tests.
func LoadFromViper(v *viper.Viper, env string) (*Config, error) {
	setDefaults(v)
	return decode(v, env)
}

func decode(v *viper.Viper, env string) (*Config, error) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	processEnvOverrides(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.Environment = env
	processDurations(&config)

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func loadDotEnvFile() error {
	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err == nil {
			return godotenv.Load(path)
		}
	}
	return errors.New("no .env file found in search paths")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.readTimeout", 15)
	v.SetDefault("server.writeTimeout", 240) // image generation can take minutes
	v.SetDefault("server.idleTimeout", 60)
	v.SetDefault("server.readHeaderTimeout", 10)
	v.SetDefault("server.shutdownTimeout", 20)
	v.SetDefault("server.metricsEnabled", true)
	v.SetDefault("server.corsOrigins", []string{"*"})

	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.maxOpenConns", 50)
	v.SetDefault("database.maxIdleConns", 25)
	v.SetDefault("database.connMaxLifetime", 30)
	v.SetDefault("database.connMaxIdleTime", 15)
	v.SetDefault("database.queryTimeout", 5)
	v.SetDefault("database.retryAttempts", 5)
	v.SetDefault("database.retryDelay", 1)
	v.SetDefault("database.logLevel", "warn")

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")
	v.SetDefault("logger.output", "stdout")
	v.SetDefault("logger.callerInfo", true)

	v.SetDefault("ledger.textCost", 1)
	v.SetDefault("ledger.openingBalance", 0)
	v.SetDefault("ledger.signupBonus", 50)
	v.SetDefault("ledger.refundReducesSpend", false)
	v.SetDefault("ledger.maxRetries", 5)
	v.SetDefault("ledger.retryInterval", 20)
	v.SetDefault("ledger.maxRetryInterval", 500)

	v.SetDefault("generation.contextWindow", 10)
	v.SetDefault("generation.responderTimeout", 60)
	v.SetDefault("generation.imageTimeout", 180)
	v.SetDefault("generation.avatarTimeout", 60)
	v.SetDefault("generation.refundTimeout", 15)
	v.SetDefault("generation.refundMaxTries", 5)
	v.SetDefault("generation.reconcileAfter", 900)
	v.SetDefault("generation.reconcileInterval", 300)
	v.SetDefault("generation.reconcileBatch", 100)

	v.SetDefault("auth.issuer", "companion-ledger")
	v.SetDefault("auth.tokenTTL", 24*30)
	v.SetDefault("auth.bcryptCost", 10)

	v.SetDefault("responder.baseURL", "https://openrouter.ai/api/v1")
	v.SetDefault("responder.model", "gryphe/mythomax-l2-13b")
	v.SetDefault("responder.temperature", 0.9)
	v.SetDefault("responder.maxTokens", 300)

	v.SetDefault("imageProvider.baseURL", "https://fal.run/fal-ai/flux/dev")
	v.SetDefault("imageProvider.imageSize", "portrait_4_3")
	v.SetDefault("imageProvider.inferenceSteps", 28)
	v.SetDefault("imageProvider.guidanceScale", 3.5)

	v.SetDefault("storage.enabled", false)
	v.SetDefault("storage.region", "us-east-1")
	v.SetDefault("storage.keyPrefix", "images")
	v.SetDefault("storage.fetchTimeout", 30)
	v.SetDefault("storage.uploadTimeout", 60)

	v.SetDefault("payment.currency", "eur")
	v.SetDefault("payment.successURL", "http://localhost:3000/credits/success")
	v.SetDefault("payment.cancelURL", "http://localhost:3000/credits/cancel")
}

// GetEnvironment determines the environment from CL_ENV, defaulting to development
func GetEnvironment() string {
	env := os.Getenv(EnvPrefix + "_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides applies only the variables that are actually set
func processEnvOverrides(v *viper.Viper) {
	for name, key := range envOverrides {
		if value, ok := os.LookupEnv(name); ok && value != "" {
			v.Set(key, value)
		}
	}
}

// processDurations converts raw numeric values into durations
func processDurations(config *Config) {
	config.Server.ReadTimeout *= time.Second
	config.Server.WriteTimeout *= time.Second
	config.Server.IdleTimeout *= time.Second
	config.Server.ReadHeaderTimeout *= time.Second
	config.Server.ShutdownTimeout *= time.Second

	config.Database.ConnMaxLifetime *= time.Minute
	config.Database.ConnMaxIdleTime *= time.Minute
	config.Database.QueryTimeout *= time.Second
	config.Database.RetryDelay *= time.Second

	config.Ledger.RetryInterval *= time.Millisecond
	config.Ledger.MaxRetryInterval *= time.Millisecond

	config.Generation.ResponderTimeout *= time.Second
	config.Generation.ImageTimeout *= time.Second
	config.Generation.AvatarTimeout *= time.Second
	config.Generation.RefundTimeout *= time.Second
	config.Generation.ReconcileAfter *= time.Second
	config.Generation.ReconcileInterval *= time.Second

	config.Auth.TokenTTL *= time.Hour
	config.Storage.FetchTimeout *= time.Second
	config.Storage.UploadTimeout *= time.Second
}

// Validate checks settings that cannot be defaulted
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case "postgres":
		if c.Database.Host == "" || c.Database.Database == "" {
			return errors.New("database host and name are required for postgres")
		}
	case "sqlite":
		if c.Database.Database == "" {
			return errors.New("database file is required for sqlite")
		}
	case "memory":
	default:
		return fmt.Errorf("unsupported database driver: %s", c.Database.Driver)
	}

	if c.Auth.JWTSecret == "" {
		return errors.New("auth.jwtSecret is required")
	}
	if c.Environment == Production && len(c.Auth.JWTSecret) < 32 {
		return errors.New("auth.jwtSecret must be at least 32 characters in production")
	}
	if c.Storage.Enabled && c.Storage.Bucket == "" {
		return errors.New("storage.bucket is required when storage is enabled")
	}
	if c.Generation.ReconcileAfter > 0 && c.Generation.ReconcileAfter <= c.longestGeneration() {
		return errors.New("generation.reconcileAfter must exceed the longest generation plus the refund timeout")
	}
	if c.Payment.SecretKey != "" && c.Payment.WebhookSecret == "" {
		return errors.New("payment.webhookSecret is required when payments are enabled")
	}
	return nil
}

// longestGeneration bounds how long a request can hold an unsettled reservation
func (c *Config) longestGeneration() time.Duration {
	image := c.Generation.ImageTimeout
	if c.Storage.Enabled {
		image += c.Storage.UploadTimeout
	}
	return max(c.Generation.ResponderTimeout, image) + c.Generation.RefundTimeout
}
