package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	DBUser     string `validate:"required"`
	DBPassword string `validate:"required"`
	DBHost     string `validate:"required"`
	DBPort     string `validate:"required,numeric"`
	DBName     string `validate:"required"`
	DBSSLMode  string

	DiscordToken   string `validate:"required"`
	DiscordAppID   string `validate:"required"`
	DiscordGuildID string
	AdminChannelID string

	// EngineStrategy selects the extraction engine: "vision" runs the local
	// multi-pass OCR pipeline, "claudevision" delegates to the model API.
	EngineStrategy string `validate:"engine"`

	AnthropicKey     string
	AnthropicModel   string
	AnthropicBaseURL string `validate:"omitempty,url"`

	ValidationTimeout time.Duration
	PollInterval      time.Duration
	WorkerInterval    time.Duration

	// ArchiveThreshold is the confidence below which extraction inputs and
	// raw output are archived for later inspection.
	ArchiveThreshold float64 `validate:"gte=0,lte=1"`
	DiagnosticsDir   string

	HTTPPort  int `validate:"gt=0,lte=65535"`
	LogLevel  string
	LogFormat string
	AppEnv    string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		DBUser:     getEnv(EnvDBUser, DefaultDBUser),
		DBPassword: getEnv(EnvDBPassword, "postgres"),
		DBHost:     getEnv(EnvDBHost, DefaultDBHost),
		DBPort:     getEnv(EnvDBPort, DefaultDBPort),
		DBName:     getEnv(EnvDBName, DefaultDBName),
		DBSSLMode:  getEnv(EnvDBSSLMode, DefaultDBSSLMode),

		DiscordToken:   getEnv(EnvDiscordToken, ""),
		DiscordAppID:   getEnv(EnvDiscordAppID, ""),
		DiscordGuildID: getEnv(EnvDiscordGuildID, ""),
		AdminChannelID: getEnv(EnvAdminChannelID, ""),

		EngineStrategy: getEnv(EnvEngineStrategy, DefaultEngine),

		AnthropicKey:     getEnv(EnvAnthropicKey, ""),
		AnthropicModel:   getEnv(EnvAnthropicModel, DefaultModel),
		AnthropicBaseURL: getEnv(EnvAnthropicBaseURL, DefaultBaseURL),

		DiagnosticsDir: getEnv(EnvDiagnosticsDir, DefaultDiagDir),
		LogLevel:       getEnv(EnvLogLevel, "INFO"),
		LogFormat:      getEnv(EnvLogFormat, "json"),
		AppEnv:         getEnv(EnvAppEnv, "development"),
	}

	seconds, err := getEnvInt(EnvValidationTimeout, DefaultValidation)
	if err != nil {
		return nil, err
	}
	cfg.ValidationTimeout = time.Duration(seconds) * time.Second

	seconds, err = getEnvInt(EnvPollInterval, DefaultPoll)
	if err != nil {
		return nil, err
	}
	cfg.PollInterval = time.Duration(seconds) * time.Second

	seconds, err = getEnvInt(EnvWorkerInterval, DefaultWorker)
	if err != nil {
		return nil, err
	}
	cfg.WorkerInterval = time.Duration(seconds) * time.Second

	threshold, err := getEnvFloat(EnvArchiveThreshold, DefaultThreshold)
	if err != nil {
		return nil, err
	}
	cfg.ArchiveThreshold = threshold

	port, err := getEnvInt(EnvHTTPPort, 0)
	if err != nil {
		return nil, err
	}
	if port == 0 {
		port, _ = strconv.Atoi(DefaultHTTPPort)
	}
	cfg.HTTPPort = port

	if cfg.EngineStrategy == EngineClaudeVision && cfg.AnthropicKey == "" {
		return nil, fmt.Errorf("%s: %s requires %s", ErrMsgInvalidConfig, EngineClaudeVision, EnvAnthropicKey)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the struct tags and the custom engine rule.
func (c *Config) Validate() error {
	v := validator.New()
	_ = v.RegisterValidation("engine", validateEngine)
	if err := v.Struct(c); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgInvalidConfig, err)
	}
	return nil
}

func validateEngine(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case EngineVision, EngineClaudeVision:
		return true
	}
	return false
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	raw, exists := os.LookupEnv(key)
	if !exists || raw == "" {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return value, nil
}

func getEnvFloat(key string, defaultValue float64) (float64, error) {
	raw, exists := os.LookupEnv(key)
	if !exists || raw == "" {
		return defaultValue, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return value, nil
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
		c.DBSSLMode,
	)
}
