package server

import (
	"context"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/bignyap/media-service/internal/logger"
	"github.com/bignyap/media-service/internal/ratelimit"
)

// LoggingInterceptor attaches a request-scoped logger and a fresh
// trace id to the context, then logs the outcome of each call.
// Handlers pick the logger up with logger.FromContext so their events
// carry the same trace id.
func LoggingInterceptor(log logger.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		ctx = logger.WithTraceID(ctx, uuid.NewString())
		ctx = logger.ToContext(ctx, log)

		start := time.Now()
		resp, err := handler(ctx, req)

		fields := []logger.Field{
			logger.String("method", info.FullMethod),
			logger.Duration("duration", time.Since(start)),
		}
		if err != nil {
			log.Warn(ctx, "request failed", append(fields,
				logger.String("code", status.Code(err).String()))...)
		} else {
			log.Debug(ctx, "request handled", fields...)
		}
		return resp, err
	}
}

// userRequest matches any request message carrying a user id.
type userRequest interface {
	GetUserId() string
}

// RateLimitInterceptor rejects requests from users exceeding their
// per-user rate. Requests without a user id pass through.
func RateLimitInterceptor(limiter *ratelimit.Limiter) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		if r, ok := req.(userRequest); ok && r.GetUserId() != "" {
			if !limiter.Allow(r.GetUserId()) {
				return nil, status.Error(codes.ResourceExhausted, "rate limit exceeded")
			}
		}
		return handler(ctx, req)
	}
}
