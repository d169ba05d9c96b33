package server

import "time"

// Config defines runtime configuration for the gRPC server.
type Config struct {
	Port            string
	Environment     string
	Version         string
	ShutdownTimeout time.Duration
}

// DefaultConfig returns the default server configuration.
func DefaultConfig() *Config {
	return &Config{
		Port:            "50053",
		Environment:     "dev",
		Version:         "dev",
		ShutdownTimeout: 15 * time.Second,
	}
}
