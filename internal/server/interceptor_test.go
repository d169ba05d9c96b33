package server_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/bignyap/media-service/internal/logger"
	"github.com/bignyap/media-service/internal/mediapb"
	"github.com/bignyap/media-service/internal/ratelimit"
	"github.com/bignyap/media-service/internal/server"
)

func TestLoggingInterceptorInstallsContextLogger(t *testing.T) {
	interceptor := server.LoggingInterceptor(logger.Nop{})
	info := &grpc.UnaryServerInfo{FullMethod: mediapb.MediaService_GetMedia_FullMethodName}

	var seenTraceID string
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		assert.NotNil(t, logger.FromContext(ctx), "handler should see the request logger")
		seenTraceID = logger.TraceIDFromContext(ctx)
		return &mediapb.GetMediaResponse{}, nil
	}

	resp, err := interceptor(context.Background(), &mediapb.GetMediaRequest{MediaId: "u1/x/a.txt"}, info, handler)
	require.NoError(t, err)
	assert.IsType(t, &mediapb.GetMediaResponse{}, resp)
	assert.NotEmpty(t, seenTraceID)

	// each call gets its own trace id
	first := seenTraceID
	_, err = interceptor(context.Background(), &mediapb.GetMediaRequest{MediaId: "u1/x/a.txt"}, info, handler)
	require.NoError(t, err)
	assert.NotEqual(t, first, seenTraceID)
}

func TestLoggingInterceptorPassesErrorsThrough(t *testing.T) {
	interceptor := server.LoggingInterceptor(logger.Nop{})
	info := &grpc.UnaryServerInfo{FullMethod: mediapb.MediaService_GetMedia_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return nil, status.Error(codes.NotFound, "media not found")
	}

	_, err := interceptor(context.Background(), &mediapb.GetMediaRequest{MediaId: "missing"}, info, handler)
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestRateLimitInterceptor(t *testing.T) {
	interceptor := server.RateLimitInterceptor(ratelimit.New(1, 2))
	info := &grpc.UnaryServerInfo{FullMethod: mediapb.MediaService_ListMedia_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return &mediapb.ListMediaResponse{}, nil
	}
	ctx := context.Background()

	req := &mediapb.ListMediaRequest{UserId: "u1"}
	for i := 0; i < 2; i++ {
		_, err := interceptor(ctx, req, info, handler)
		require.NoError(t, err)
	}

	_, err := interceptor(ctx, req, info, handler)
	assert.Equal(t, codes.ResourceExhausted, status.Code(err))

	// a different user has their own bucket
	_, err = interceptor(ctx, &mediapb.ListMediaRequest{UserId: "u2"}, info, handler)
	assert.NoError(t, err)
}

func TestRateLimitInterceptorPassesRequestsWithoutUserID(t *testing.T) {
	interceptor := server.RateLimitInterceptor(ratelimit.New(1, 1))
	info := &grpc.UnaryServerInfo{FullMethod: mediapb.MediaService_GetMedia_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return &mediapb.GetMediaResponse{}, nil
	}

	for i := 0; i < 5; i++ {
		_, err := interceptor(context.Background(), &mediapb.GetMediaRequest{MediaId: "u1/x/a.txt"}, info, handler)
		require.NoError(t, err)
	}
}
