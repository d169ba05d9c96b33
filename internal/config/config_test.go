package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bignyap/media-service/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "50053", cfg.GRPCPort)
	assert.Equal(t, "dev", cfg.Environment)
	assert.Equal(t, "localhost:9000", cfg.MinioEndpoint)
	assert.Equal(t, "media-service", cfg.MinioBucket)
	assert.False(t, cfg.MinioUseSSL)
	assert.Equal(t, 24*time.Hour, cfg.PresignExpiry)
	assert.True(t, cfg.URLCacheEnabled)
	assert.Equal(t, 15*time.Second, cfg.ShutdownTimeout)
	assert.Zero(t, cfg.RateLimitPerSecond)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("GRPC_PORT", "50099")
	t.Setenv("MINIO_ENDPOINT", "minio:9000")
	t.Setenv("MINIO_BUCKET", "uploads")
	t.Setenv("MINIO_USE_SSL", "true")
	t.Setenv("PRESIGN_EXPIRY", "1h")
	t.Setenv("RATE_LIMIT_PER_SECOND", "5")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "50099", cfg.GRPCPort)
	assert.Equal(t, "minio:9000", cfg.MinioEndpoint)
	assert.Equal(t, "uploads", cfg.MinioBucket)
	assert.True(t, cfg.MinioUseSSL)
	assert.Equal(t, time.Hour, cfg.PresignExpiry)
	assert.Equal(t, 5.0, cfg.RateLimitPerSecond)
}
