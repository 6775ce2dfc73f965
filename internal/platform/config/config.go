package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Server captures process level configuration.
type Server struct {
	Addr      string
	LogLevel  string
	Database  DatabaseConfig
	Redis     RedisConfig
	Kafka     KafkaConfig
	Matching  MatchingConfig
	Auth      AuthConfig
	RateLimit RateLimitConfig
}

// DatabaseConfig points at the external catalog and profile database.
// An empty URL runs the service on the seeded in-memory stores.
type DatabaseConfig struct {
	URL             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	AutoMigrate     bool
}

// RedisConfig configures the optional catalog cache.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// KafkaConfig configures the optional match audit sink.
type KafkaConfig struct {
	Brokers    []string
	AuditTopic string
	ClientID   string
}

// MatchingConfig holds the tunables of both matching flows.
type MatchingConfig struct {
	DismissalCooldownDays int
	CatalogFetchTimeout   time.Duration
	CatalogCacheTTL       time.Duration
	MinStrictResults      int
}

// AuthConfig verifies upstream bearer tokens. Tokens are issued elsewhere.
type AuthConfig struct {
	TokenSecret string
	TokenIssuer string
}

// RateLimitConfig throttles the anonymous eligibility endpoint per client
// address. Requests <= 0 disables throttling.
type RateLimitConfig struct {
	Requests int
	Window   time.Duration
}

// FromEnv builds a Server config from environment variables so main stays
// lean. A .env file in the working directory is loaded first when present;
// real environment variables take precedence.
func FromEnv() Server {
	_ = godotenv.Load()

	return Server{
		Addr:     envString("OLERA_ADDR", ":8080"),
		LogLevel: envString("LOG_LEVEL", "info"),
		Database: DatabaseConfig{
			URL:             os.Getenv("DATABASE_URL"),
			MaxOpenConns:    envInt("DATABASE_MAX_OPEN_CONNS", 20),
			MaxIdleConns:    envInt("DATABASE_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: envDuration("DATABASE_CONN_MAX_LIFETIME", 30*time.Minute),
			AutoMigrate:     envBool("DATABASE_AUTO_MIGRATE", true),
		},
		Redis: RedisConfig{
			URL:          os.Getenv("REDIS_URL"),
			PoolSize:     envInt("REDIS_POOL_SIZE", 10),
			MinIdleConns: envInt("REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  envDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  envDuration("REDIS_READ_TIMEOUT", 500*time.Millisecond),
			WriteTimeout: envDuration("REDIS_WRITE_TIMEOUT", 500*time.Millisecond),
		},
		Kafka: KafkaConfig{
			Brokers:    envList("KAFKA_BROKERS"),
			AuditTopic: envString("KAFKA_AUDIT_TOPIC", "olera.match-audit"),
			ClientID:   envString("KAFKA_CLIENT_ID", "olera-matching"),
		},
		Matching: MatchingConfig{
			DismissalCooldownDays: envInt("DISMISSAL_COOLDOWN_DAYS", 30),
			CatalogFetchTimeout:   envDuration("CATALOG_FETCH_TIMEOUT", 5*time.Second),
			CatalogCacheTTL:       envDuration("CATALOG_CACHE_TTL", 10*time.Minute),
			MinStrictResults:      envInt("MIN_STRICT_RESULTS", 5),
		},
		Auth: AuthConfig{
			// Use a default for development - should be overridden in production
			TokenSecret: envString("AUTH_TOKEN_SECRET", "dev-secret-key-change-in-production"),
			TokenIssuer: os.Getenv("AUTH_TOKEN_ISSUER"),
		},
		RateLimit: RateLimitConfig{
			Requests: envInt("RATE_LIMIT_REQUESTS", 60),
			Window:   envDuration("RATE_LIMIT_WINDOW", time.Minute),
		},
	}
}

func envString(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v, err := strconv.Atoi(strings.TrimSpace(os.Getenv(key)))
	if err != nil {
		return fallback
	}
	return v
}

func envBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(strings.TrimSpace(os.Getenv(key)))
	if err != nil {
		return fallback
	}
	return v
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(strings.TrimSpace(os.Getenv(key)))
	if err != nil {
		return fallback
	}
	return v
}

func envList(key string) []string {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
