package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env"
)

// Config holds the full runtime configuration of the media service,
// populated from environment variables.
type Config struct {
	GRPCPort    string `env:"GRPC_PORT" envDefault:"50053"`
	Environment string `env:"ENVIRONMENT" envDefault:"dev"`
	Version     string `env:"SERVICE_VERSION" envDefault:"dev"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	MinioEndpoint  string `env:"MINIO_ENDPOINT" envDefault:"localhost:9000"`
	MinioAccessKey string `env:"MINIO_ACCESS_KEY" envDefault:"minioadmin"`
	MinioSecretKey string `env:"MINIO_SECRET_KEY" envDefault:"minioadmin"`
	MinioBucket    string `env:"MINIO_BUCKET" envDefault:"media-service"`
	MinioUseSSL    bool   `env:"MINIO_USE_SSL" envDefault:"false"`

	// PresignExpiry is the lifetime of presigned download URLs.
	PresignExpiry time.Duration `env:"PRESIGN_EXPIRY" envDefault:"24h"`

	// URLCacheEnabled caches presigned URLs for slightly less than
	// PresignExpiry so repeated listings do not re-sign every object.
	URLCacheEnabled bool `env:"URL_CACHE_ENABLED" envDefault:"true"`

	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"15s"`

	TelemetryEnabled bool `env:"TELEMETRY_ENABLED" envDefault:"false"`

	// Per-user request limiting. Zero rate disables the interceptor.
	RateLimitPerSecond float64 `env:"RATE_LIMIT_PER_SECOND" envDefault:"0"`
	RateLimitBurst     int     `env:"RATE_LIMIT_BURST" envDefault:"10"`
}

// Load parses the configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment config: %w", err)
	}
	return cfg, nil
}
