package config

import (
	"testing"

	"github.com/kelseyhightower/envconfig"
	"github.com/stretchr/testify/assert"
)

func TestProcess_Defaults(t *testing.T) {
	var cfg Config

	err := envconfig.Process("", &cfg)

	assert.NoError(t, err)
	assert.Equal(t, 60, cfg.JWT.AccessExpireMin)
	assert.Equal(t, "camping.booking.events", cfg.Kafka.Topics.Booking)
	assert.Equal(t, "disable", cfg.DB.Postgres.Write.SSLMode)
}

func TestProcess_NestedPrefixes(t *testing.T) {
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("JWT_ACCESS_SECRET", "s3cret")
	t.Setenv("JWT_ACCESS_EXPIRE_MIN", "15")
	t.Setenv("DB_POSTGRES_WRITE_HOST", "db.internal")
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")
	t.Setenv("APP_RATE_LIMITER_ENABLE", "true")

	var cfg Config

	err := envconfig.Process("", &cfg)

	assert.NoError(t, err)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "s3cret", cfg.JWT.AccessSecret)
	assert.Equal(t, 15, cfg.JWT.AccessExpireMin)
	assert.Equal(t, "db.internal", cfg.DB.Postgres.Write.Host)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	assert.True(t, cfg.App.RateLimiter.Enable)
}
