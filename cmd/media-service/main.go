package main

import (
	"context"
	"fmt"
	"os"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"

	"github.com/bignyap/media-service/internal/config"
	"github.com/bignyap/media-service/internal/logger"
	"github.com/bignyap/media-service/internal/media"
	"github.com/bignyap/media-service/internal/mediapb"
	"github.com/bignyap/media-service/internal/ratelimit"
	"github.com/bignyap/media-service/internal/server"
	"github.com/bignyap/media-service/internal/storage"
	"github.com/bignyap/media-service/internal/urlcache"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{
		Level:       cfg.LogLevel,
		Format:      cfg.LogFormat,
		Environment: cfg.Environment,
	})

	store, err := storage.NewMinioStore(ctx, storage.Config{
		Endpoint:  cfg.MinioEndpoint,
		AccessKey: cfg.MinioAccessKey,
		SecretKey: cfg.MinioSecretKey,
		Bucket:    cfg.MinioBucket,
		UseSSL:    cfg.MinioUseSSL,
	})
	if err != nil {
		log.Fatal(ctx, "failed to connect to object store", err)
	}

	// The metadata index is in-memory only; it starts empty on every
	// boot while the store keeps its objects.
	index := media.NewIndex()

	svcOpts := []media.Option{media.WithPresignExpiry(cfg.PresignExpiry)}
	if cfg.URLCacheEnabled {
		svcOpts = append(svcOpts, media.WithURLCache(urlcache.New(cfg.PresignExpiry)))
	}
	svc := media.NewService(store, index, cfg.MinioBucket, log, svcOpts...)

	srvOpts := []server.Option{server.WithLogger(log)}
	if cfg.TelemetryEnabled {
		srvOpts = append(srvOpts, server.WithServerOption(
			grpc.StatsHandler(otelgrpc.NewServerHandler()),
		))
	}
	interceptors := []grpc.UnaryServerInterceptor{server.LoggingInterceptor(log)}
	if cfg.RateLimitPerSecond > 0 {
		limiter := ratelimit.New(cfg.RateLimitPerSecond, cfg.RateLimitBurst)
		interceptors = append(interceptors, server.RateLimitInterceptor(limiter))
	}
	srvOpts = append(srvOpts, server.WithServerOption(grpc.ChainUnaryInterceptor(interceptors...)))

	srv := server.NewGRPCServer(&server.Config{
		Port:            cfg.GRPCPort,
		Environment:     cfg.Environment,
		Version:         cfg.Version,
		ShutdownTimeout: cfg.ShutdownTimeout,
	}, srvOpts...)

	mediapb.RegisterMediaServiceServer(srv.Registrar(), server.NewMediaServer(svc, log))

	if err := srv.Start(); err != nil {
		log.Error(ctx, "server failed", err)
		os.Exit(1)
	}
}
