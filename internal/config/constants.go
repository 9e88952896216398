package config

// Environment variable names.
const (
	EnvDBHost     = "DB_HOST"
	EnvDBPort     = "DB_PORT"
	EnvDBUser     = "DB_USER"
	EnvDBPassword = "DB_PASSWORD"
	EnvDBName     = "DB_NAME"
	EnvDBSSLMode  = "DB_SSLMODE"

	EnvDiscordToken     = "DISCORD_TOKEN"
	EnvDiscordAppID     = "DISCORD_APP_ID"
	EnvDiscordGuildID   = "DISCORD_GUILD_ID"
	EnvAdminChannelID   = "ADMIN_CHANNEL_ID"
	EnvEngineStrategy   = "ENGINE_STRATEGY"
	EnvAnthropicKey     = "ANTHROPIC_API_KEY"
	EnvAnthropicModel   = "ANTHROPIC_MODEL"
	EnvAnthropicBaseURL = "ANTHROPIC_BASE_URL"
	EnvTessdataPrefix   = "TESSDATA_PREFIX"

	EnvValidationTimeout  = "VALIDATION_TIMEOUT_SECONDS"
	EnvPollInterval       = "POLL_INTERVAL_SECONDS"
	EnvWorkerInterval     = "WORKER_INTERVAL_SECONDS"
	EnvArchiveThreshold   = "ARCHIVE_CONFIDENCE_THRESHOLD"
	EnvDiagnosticsDir     = "DIAGNOSTICS_DIR"
	EnvHTTPPort           = "HTTP_PORT"
	EnvLogLevel           = "LOG_LEVEL"
	EnvLogFormat          = "LOG_FORMAT"
	EnvAppEnv             = "APP_ENV"
)

// Defaults applied when the variable is unset.
const (
	DefaultDBHost     = "localhost"
	DefaultDBPort     = "5432"
	DefaultDBUser     = "postgres"
	DefaultDBName     = "capturebot"
	DefaultDBSSLMode  = "disable"
	DefaultHTTPPort   = "8080"
	DefaultEngine     = EngineVision
	DefaultModel      = "claude-sonnet-4-20250514"
	DefaultBaseURL    = "https://api.anthropic.com"
	DefaultDiagDir    = "diagnostics"
	DefaultValidation = 300
	DefaultPoll       = 60
	DefaultWorker     = 15
	DefaultThreshold  = 0.7
)

// Engine strategy values.
const (
	EngineVision       = "vision"
	EngineClaudeVision = "claudevision"
)

const (
	ErrMsgMissingEnvVars  = "missing required environment variables"
	ErrMsgInvalidConfig   = "invalid configuration"
	ErrMsgUnknownEngine   = "unknown engine strategy"
	LogMsgEnvFileNotFound = "no .env file found, relying on process environment"
)
