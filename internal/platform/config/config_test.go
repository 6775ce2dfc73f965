package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFromEnv_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("KAFKA_BROKERS", "")
	t.Setenv("CATALOG_FETCH_TIMEOUT", "")
	t.Setenv("DISMISSAL_COOLDOWN_DAYS", "")

	cfg := FromEnv()

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Empty(t, cfg.Database.URL)
	assert.Nil(t, cfg.Kafka.Brokers)
	assert.Equal(t, 30, cfg.Matching.DismissalCooldownDays)
	assert.Equal(t, 5*time.Second, cfg.Matching.CatalogFetchTimeout)
	assert.Equal(t, 10*time.Minute, cfg.Matching.CatalogCacheTTL)
	assert.Equal(t, 5, cfg.Matching.MinStrictResults)
	assert.True(t, cfg.Database.AutoMigrate)
	assert.Equal(t, 60, cfg.RateLimit.Requests)
	assert.Equal(t, time.Minute, cfg.RateLimit.Window)
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("OLERA_ADDR", ":9090")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092,")
	t.Setenv("DISMISSAL_COOLDOWN_DAYS", "14")
	t.Setenv("CATALOG_FETCH_TIMEOUT", "750ms")
	t.Setenv("DATABASE_AUTO_MIGRATE", "false")
	t.Setenv("RATE_LIMIT_REQUESTS", "0")

	cfg := FromEnv()

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, 14, cfg.Matching.DismissalCooldownDays)
	assert.Equal(t, 750*time.Millisecond, cfg.Matching.CatalogFetchTimeout)
	assert.False(t, cfg.Database.AutoMigrate)
	assert.Zero(t, cfg.RateLimit.Requests)
}

func TestFromEnv_MalformedValuesFallBack(t *testing.T) {
	t.Setenv("DISMISSAL_COOLDOWN_DAYS", "a month")
	t.Setenv("CATALOG_CACHE_TTL", "forever")

	cfg := FromEnv()

	assert.Equal(t, 30, cfg.Matching.DismissalCooldownDays)
	assert.Equal(t, 10*time.Minute, cfg.Matching.CatalogCacheTTL)
}
