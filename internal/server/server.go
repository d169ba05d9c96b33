package server

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"

	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"

	"github.com/bignyap/media-service/internal/logger"
)

// GRPCServer wraps a grpc.Server with config-driven startup and
// signal-driven graceful shutdown.
type GRPCServer struct {
	config     *Config
	grpcServer *grpc.Server
	log        logger.Logger
	shutdownFn []func()
}

// Option configures a GRPCServer.
type Option func(*GRPCServer, *[]grpc.ServerOption)

// WithLogger sets the server logger.
func WithLogger(log logger.Logger) Option {
	return func(s *GRPCServer, _ *[]grpc.ServerOption) {
		s.log = log
	}
}

// WithServerOption appends a raw grpc.ServerOption (stats handlers,
// interceptors).
func WithServerOption(opt grpc.ServerOption) Option {
	return func(_ *GRPCServer, opts *[]grpc.ServerOption) {
		*opts = append(*opts, opt)
	}
}

// WithShutdownFunc registers a function to run before the server stops.
func WithShutdownFunc(fn func()) Option {
	return func(s *GRPCServer, _ *[]grpc.ServerOption) {
		s.shutdownFn = append(s.shutdownFn, fn)
	}
}

// NewGRPCServer creates a server; services are registered on
// Registrar() before Start.
func NewGRPCServer(cfg *Config, opts ...Option) *GRPCServer {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	s := &GRPCServer{
		config:     cfg,
		shutdownFn: []func(){},
	}

	var serverOpts []grpc.ServerOption
	for _, opt := range opts {
		opt(s, &serverOpts)
	}

	if s.log == nil {
		s.log = logger.Nop{}
	}

	s.grpcServer = grpc.NewServer(serverOpts...)
	return s
}

// Registrar exposes the underlying grpc.Server for service
// registration.
func (s *GRPCServer) Registrar() *grpc.Server {
	return s.grpcServer
}

// Start listens on the configured port and serves until SIGINT or
// SIGTERM, then shuts down gracefully.
func (s *GRPCServer) Start() error {
	ctx := context.Background()

	lis, err := net.Listen("tcp", ":"+s.config.Port)
	if err != nil {
		s.log.Error(ctx, "failed to listen", err)
		return err
	}

	reflection.Register(s.grpcServer)

	s.log.WithFields(
		logger.String("port", s.config.Port),
		logger.String("env", s.config.Environment),
		logger.String("version", s.config.Version),
	).Info(ctx, "starting gRPC server")

	go func() {
		if err := s.grpcServer.Serve(lis); err != nil {
			s.log.Error(ctx, "gRPC server failed", err)
		}
	}()

	return s.waitForShutdown()
}

func (s *GRPCServer) waitForShutdown() error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx := context.Background()
	s.log.Info(ctx, "shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(ctx, s.config.ShutdownTimeout)
	defer cancel()
	return s.Shutdown(shutdownCtx)
}

// Shutdown runs registered shutdown hooks and stops the server
// gracefully.
func (s *GRPCServer) Shutdown(ctx context.Context) error {
	for _, fn := range s.shutdownFn {
		fn()
	}
	s.grpcServer.GracefulStop()
	s.log.Info(ctx, "gRPC server shut down cleanly")
	return nil
}
