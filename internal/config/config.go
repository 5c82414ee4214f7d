package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var ErrEmptyEnvironmentVariable = errors.New("empty environment variable")

// Config holds all application configuration
type Config struct {
	Database   DatabaseConfig
	Auth       AuthConfig
	Kafka      KafkaConfig
	Redis      RedisConfig
	RateLimit  RateLimitConfig
	Ledger     LedgerConfig
	Rewards    RewardsConfig
	Batch      BatchConfig
	Settlement SettlementConfig
	Server     ServerConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Username string
	Password string
	Name     string
}

// AuthConfig holds merchant token settings
type AuthConfig struct {
	JWTSecret string
}

// KafkaConfig holds Kafka/event streaming configuration. Brokers may be empty, in which case
// domain events are not published.
type KafkaConfig struct {
	Brokers           []string
	Topic             string
	InteractionsTopic string
	ConsumerGroup     string
}

// Enabled reports whether a broker list was configured
func (k KafkaConfig) Enabled() bool {
	return len(k.Brokers) > 0
}

// RedisConfig holds the asynq broker address. An empty host runs jobs on the inline scheduler.
type RedisConfig struct {
	Host string
}

// RateLimitConfig holds the per-merchant API request budget. Zero disables limiting.
type RateLimitConfig struct {
	RequestsPerMinute int
}

// LedgerConfig holds the rewards ledger contract settings
type LedgerConfig struct {
	RPCURL          string
	ContractAddress string
	PrivateKey      string
	TokenDecimals   int32
	TxTimeout       time.Duration
}

// Enabled reports whether settlement can reach a chain
func (l LedgerConfig) Enabled() bool {
	return l.RPCURL != "" && l.ContractAddress != "" && l.PrivateKey != ""
}

// RewardsConfig holds attribution and referral tuning
type RewardsConfig struct {
	TouchpointLookback time.Duration
	ReferralCacheSize  int
	ReferralCacheTTL   time.Duration
	ReferralMaxDepth   int
}

// BatchConfig holds the interaction batch job settings
type BatchConfig struct {
	Interval time.Duration
	MinAge   time.Duration
	Size     int
}

// SettlementConfig holds the settlement job settings
type SettlementConfig struct {
	Interval   time.Duration
	BatchSize  int
	StaleAfter time.Duration
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port           int
	AllowedOrigins []string
}

// Load reads and validates all required environment variables
func Load() (*Config, error) {
	// Load env.local in non-production environments
	if os.Getenv("GO_ENV") != "production" {
		if err := godotenv.Load("env.local"); err != nil {
			return nil, fmt.Errorf("failed to load env.local: %w", err)
		}
	}
	return FromEnv()
}

// FromEnv builds the configuration from the current process environment
func FromEnv() (*Config, error) {
	cfg := &Config{}

	// Database configuration
	var err error
	if cfg.Database.Host, err = requireEnv("DB_HOST"); err != nil {
		return nil, err
	}
	if cfg.Database.Username, err = requireEnv("DB_USERNAME"); err != nil {
		return nil, err
	}
	if cfg.Database.Password, err = requireEnv("DB_PASSWORD"); err != nil {
		return nil, err
	}
	if cfg.Database.Name, err = requireEnv("DB_NAME"); err != nil {
		return nil, err
	}

	// Auth configuration
	if cfg.Auth.JWTSecret, err = requireEnv("JWT_SECRET"); err != nil {
		return nil, err
	}

	// Kafka configuration
	cfg.Kafka.Brokers = splitList(os.Getenv("KAFKA_BROKERS"))
	cfg.Kafka.Topic = getEnvWithDefault("KAFKA_TOPIC", "rewards-events")
	cfg.Kafka.InteractionsTopic = getEnvWithDefault("INTERACTIONS_TOPIC", "interaction-events")
	cfg.Kafka.ConsumerGroup = getEnvWithDefault("KAFKA_CONSUMER_GROUP", "rewards-interactions")

	// Redis configuration
	cfg.Redis.Host = os.Getenv("REDIS_HOST")
	if cfg.RateLimit.RequestsPerMinute, err = getIntWithDefault("RATE_LIMIT_RPM", 600); err != nil {
		return nil, err
	}
	if cfg.RateLimit.RequestsPerMinute < 0 {
		return nil, fmt.Errorf("RATE_LIMIT_RPM must not be negative, got %d", cfg.RateLimit.RequestsPerMinute)
	}

	// Ledger configuration
	cfg.Ledger.RPCURL = os.Getenv("LEDGER_RPC_URL")
	cfg.Ledger.ContractAddress = os.Getenv("LEDGER_CONTRACT_ADDRESS")
	cfg.Ledger.PrivateKey = os.Getenv("LEDGER_PRIVATE_KEY")
	decimals, err := getIntWithDefault("LEDGER_TOKEN_DECIMALS", 18)
	if err != nil {
		return nil, err
	}
	if decimals < 0 || decimals > 77 {
		return nil, fmt.Errorf("LEDGER_TOKEN_DECIMALS must be between 0 and 77, got %d", decimals)
	}
	cfg.Ledger.TokenDecimals = int32(decimals)
	if cfg.Ledger.TxTimeout, err = getDurationWithDefault("LEDGER_TX_TIMEOUT", 2*time.Minute); err != nil {
		return nil, err
	}

	// Rewards configuration
	lookbackDays, err := getIntWithDefault("TOUCHPOINT_LOOKBACK_DAYS", 30)
	if err != nil {
		return nil, err
	}
	cfg.Rewards.TouchpointLookback = time.Duration(lookbackDays) * 24 * time.Hour
	if cfg.Rewards.ReferralCacheSize, err = getIntWithDefault("REFERRAL_CACHE_SIZE", 10000); err != nil {
		return nil, err
	}
	if cfg.Rewards.ReferralCacheTTL, err = getDurationWithDefault("REFERRAL_CACHE_TTL", 5*time.Minute); err != nil {
		return nil, err
	}
	if cfg.Rewards.ReferralMaxDepth, err = getIntWithDefault("REFERRAL_MAX_DEPTH", 5); err != nil {
		return nil, err
	}

	// Batch configuration
	if cfg.Batch.Interval, err = getDurationWithDefault("BATCH_INTERVAL", time.Minute); err != nil {
		return nil, err
	}
	if cfg.Batch.MinAge, err = getDurationWithDefault("BATCH_MIN_AGE", 30*time.Second); err != nil {
		return nil, err
	}
	if cfg.Batch.Size, err = getIntWithDefault("BATCH_SIZE", 100); err != nil {
		return nil, err
	}

	// Settlement configuration
	if cfg.Settlement.Interval, err = getDurationWithDefault("SETTLEMENT_INTERVAL", 5*time.Minute); err != nil {
		return nil, err
	}
	if cfg.Settlement.BatchSize, err = getIntWithDefault("SETTLEMENT_BATCH_SIZE", 50); err != nil {
		return nil, err
	}
	if cfg.Settlement.StaleAfter, err = getDurationWithDefault("SETTLEMENT_STALE_AFTER", 15*time.Minute); err != nil {
		return nil, err
	}

	// Server configuration
	if cfg.Server.Port, err = getIntWithDefault("SERVER_PORT", 80); err != nil {
		return nil, err
	}
	cfg.Server.AllowedOrigins = splitList(os.Getenv("CORS_ALLOWED_ORIGINS"))

	return cfg, nil
}

// ConnectionString returns a PostgreSQL connection string
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s/%s",
		c.Username, c.Password, c.Host, c.Name)
}

// requireEnv retrieves an environment variable or returns an error if empty
func requireEnv(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s is not set: %w", key, ErrEmptyEnvironmentVariable)
	}
	return value, nil
}

// getEnvWithDefault retrieves an environment variable or returns a default value
func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getIntWithDefault(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", key, err)
	}
	return parsed, nil
}

func getDurationWithDefault(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", key, err)
	}
	return parsed, nil
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
