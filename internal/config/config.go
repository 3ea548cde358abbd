package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all configuration values
type Config struct {
	// Server configuration
	Port        int    `json:"port"`
	Environment string `json:"environment"`

	// MongoDB configuration
	MongoURI      string `json:"mongo_uri"`
	MongoDatabase string `json:"mongo_database"`

	// Redis configuration
	RedisURI      string        `json:"redis_uri"`
	RedisPassword string        `json:"redis_password"`
	RedisDB       int           `json:"redis_db"`
	RedisTTL      time.Duration `json:"redis_ttl"`

	// Collection names
	UserCollection        string `json:"mongo_user_collection"`
	EventCollection       string `json:"mongo_event_collection"`
	InscricaoCollection   string `json:"mongo_inscricao_collection"`
	CapacityCollection    string `json:"mongo_capacity_collection"`
	StatusAuditCollection string `json:"mongo_status_audit_collection"`

	// Capacity configuration. In strict mode the pipeline reserves a slot
	// atomically before creating the enrollment; relaxed mode keeps the
	// advisory-only check of the original flow.
	CapacityStrictMode bool          `json:"capacity_strict_mode"`
	CapacityCacheTTL   time.Duration `json:"capacity_cache_ttl"`

	// Blob storage configuration (proof-of-payment uploads)
	StorageBaseURL   string `json:"storage_base_url"`
	StorageBucket    string `json:"storage_bucket"`
	StorageAPIKey    string `json:"-"`
	StoragePublicURL string `json:"storage_public_url"`

	// Email delivery configuration
	EmailBaseURL string `json:"email_base_url"`
	EmailAPIKey  string `json:"-"`
	EmailFrom    string `json:"email_from"`
	EmailEnabled bool   `json:"email_enabled"`

	// Rate limiting for the public submission endpoint
	RegistrationRateLimit  int           `json:"registration_rate_limit"`
	RegistrationRateWindow time.Duration `json:"registration_rate_window"`

	// Tracing configuration
	TracingEnabled  bool   `json:"tracing_enabled"`
	TracingEndpoint string `json:"tracing_endpoint"`
}

var (
	AppConfig *Config
)

// LoadConfig loads configuration from environment variables
func LoadConfig() error {
	port, err := strconv.Atoi(getEnvOrDefault("PORT", "8080"))
	if err != nil {
		return fmt.Errorf("invalid PORT: %w", err)
	}

	redisDB, err := strconv.Atoi(getEnvOrDefault("REDIS_DB", "0"))
	if err != nil {
		return fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	redisTTL, err := time.ParseDuration(getEnvOrDefault("REDIS_TTL", "60m"))
	if err != nil {
		return fmt.Errorf("invalid REDIS_TTL: %w", err)
	}

	capacityCacheTTL, err := time.ParseDuration(getEnvOrDefault("CAPACITY_CACHE_TTL", "15s"))
	if err != nil {
		return fmt.Errorf("invalid CAPACITY_CACHE_TTL: %w", err)
	}

	rateLimit, err := strconv.Atoi(getEnvOrDefault("REGISTRATION_RATE_LIMIT", "10"))
	if err != nil {
		return fmt.Errorf("invalid REGISTRATION_RATE_LIMIT: %w", err)
	}

	rateWindow, err := time.ParseDuration(getEnvOrDefault("REGISTRATION_RATE_WINDOW", "1m"))
	if err != nil {
		return fmt.Errorf("invalid REGISTRATION_RATE_WINDOW: %w", err)
	}

	// Check if MONGODB_INSCRICAO_COLLECTION is set
	inscricaoCollection := os.Getenv("MONGODB_INSCRICAO_COLLECTION")
	if inscricaoCollection == "" {
		return fmt.Errorf("MONGODB_INSCRICAO_COLLECTION environment variable is required")
	}

	AppConfig = &Config{
		// Server configuration
		Port:        port,
		Environment: getEnvOrDefault("ENVIRONMENT", "development"),

		// MongoDB configuration
		MongoURI:      getEnvOrDefault("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDatabase: getEnvOrDefault("MONGODB_DATABASE", "acampamento"),

		// Redis configuration
		RedisURI:      getEnvOrDefault("REDIS_URI", "redis://localhost:6379"),
		RedisPassword: getEnvOrDefault("REDIS_PASSWORD", ""),
		RedisDB:       redisDB,
		RedisTTL:      redisTTL,

		// Collection names
		UserCollection:        getEnvOrDefault("MONGODB_USER_COLLECTION", "users"),
		EventCollection:       getEnvOrDefault("MONGODB_EVENT_COLLECTION", "eventos"),
		InscricaoCollection:   inscricaoCollection,
		CapacityCollection:    getEnvOrDefault("MONGODB_CAPACITY_COLLECTION", "capacity_counters"),
		StatusAuditCollection: getEnvOrDefault("MONGODB_STATUS_AUDIT_COLLECTION", "status_audit_logs"),

		// Capacity configuration
		CapacityStrictMode: getEnvOrDefault("CAPACITY_STRICT_MODE", "false") == "true",
		CapacityCacheTTL:   capacityCacheTTL,

		// Blob storage configuration
		StorageBaseURL:   getEnvOrDefault("STORAGE_BASE_URL", "http://localhost:9000"),
		StorageBucket:    getEnvOrDefault("STORAGE_BUCKET", "comprovantes"),
		StorageAPIKey:    getEnvOrDefault("STORAGE_API_KEY", ""),
		StoragePublicURL: getEnvOrDefault("STORAGE_PUBLIC_URL", ""),

		// Email delivery configuration
		EmailBaseURL: getEnvOrDefault("EMAIL_BASE_URL", ""),
		EmailAPIKey:  getEnvOrDefault("EMAIL_API_KEY", ""),
		EmailFrom:    getEnvOrDefault("EMAIL_FROM", "inscricoes@comunidadevida.org.br"),
		EmailEnabled: getEnvOrDefault("EMAIL_ENABLED", "true") == "true",

		// Rate limiting
		RegistrationRateLimit:  rateLimit,
		RegistrationRateWindow: rateWindow,

		// Tracing configuration
		TracingEnabled:  getEnvOrDefault("TRACING_ENABLED", "false") == "true",
		TracingEndpoint: getEnvOrDefault("TRACING_ENDPOINT", "localhost:4317"),
	}

	return nil
}

// getEnvOrDefault returns environment variable value or default if not set
func getEnvOrDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
