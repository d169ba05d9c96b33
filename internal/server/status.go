package server

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/bignyap/media-service/internal/media"
)

// statusFromError maps a service error to a gRPC status. The switch is
// exhaustive over media.Kind so every category keeps its distinct
// transport code; anything untyped is an internal error with a generic
// message so no internals leak across the boundary.
func statusFromError(err error) error {
	var e *media.Error
	if !errors.As(err, &e) {
		return status.Error(codes.Internal, "internal error")
	}

	switch e.Kind {
	case media.KindNotFound:
		return status.Error(codes.NotFound, e.Message)
	case media.KindPermissionDenied:
		return status.Error(codes.PermissionDenied, e.Message)
	case media.KindInvalidInput:
		return status.Error(codes.InvalidArgument, e.Message)
	case media.KindStorage:
		return status.Error(codes.Internal, e.Message)
	default:
		return status.Error(codes.Internal, e.Message)
	}
}

func invalidArgument(msg string) error {
	return statusFromError(media.NewError(media.KindInvalidInput, msg, nil))
}
