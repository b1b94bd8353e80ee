package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("MONGO_URL", "mongodb://localhost:27017")
	t.Setenv("MONGO_PUBLIC_URL", "")
	t.Setenv("DB_NAME", "lumiere")
	for _, k := range []string{"CORS_ORIGINS", "PORT", "LOG_LEVEL", "REQUEST_TIMEOUT", "REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB", "ORDER_CACHE_TTL", "KAFKA_BROKERS", "KAFKA_ORDER_TOPIC"} {
		t.Setenv(k, "")
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURL)
	assert.Equal(t, "lumiere", cfg.DBName)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 15*time.Minute, cfg.OrderCacheTTL)
	assert.Empty(t, cfg.RedisAddr)
	assert.Empty(t, cfg.KafkaBrokers)
	assert.Equal(t, "order_events", cfg.KafkaOrderTopic)
}

func TestFromEnv_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("MONGO_URL", "")
	t.Setenv("MONGO_PUBLIC_URL", "mongodb://public:27017")
	t.Setenv("CORS_ORIGINS", "https://lumiere.example.com/, http://localhost:3000")
	t.Setenv("REQUEST_TIMEOUT", "3s")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "mongodb://public:27017", cfg.MongoURL)
	assert.Equal(t, []string{"https://lumiere.example.com", "http://localhost:3000"}, cfg.CORSOrigins)
	assert.Equal(t, 3*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 2, cfg.RedisDB)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.KafkaBrokers)
}

func TestFromEnv_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{"missing mongo url", map[string]string{"MONGO_URL": ""}, "MONGO_URL is required"},
		{"missing db name", map[string]string{"DB_NAME": ""}, "DB_NAME is required"},
		{"bad origin", map[string]string{"CORS_ORIGINS": "lumiere.example.com"}, "not an http(s) origin"},
		{"bad timeout", map[string]string{"REQUEST_TIMEOUT": "soon"}, "REQUEST_TIMEOUT"},
		{"negative ttl", map[string]string{"ORDER_CACHE_TTL": "-1m"}, "ORDER_CACHE_TTL must be positive"},
		{"bad redis db", map[string]string{"REDIS_DB": "one"}, "REDIS_DB"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequired(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := FromEnv()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
