package server

import (
	"context"

	"github.com/bignyap/media-service/internal/logger"
	"github.com/bignyap/media-service/internal/media"
	"github.com/bignyap/media-service/internal/mediapb"
	"github.com/bignyap/media-service/internal/validate"
)

// MediaServer is the gRPC facade over the media service. It validates
// inputs, delegates to the Service and maps outcomes to transport
// status codes. No authorization happens here; that is the Service's
// job.
type MediaServer struct {
	mediapb.UnimplementedMediaServiceServer

	svc *media.Service
	log logger.Logger
}

// NewMediaServer creates the facade.
func NewMediaServer(svc *media.Service, log logger.Logger) *MediaServer {
	return &MediaServer{svc: svc, log: log.WithComponent("grpc")}
}

// logger prefers the request-scoped logger installed by
// LoggingInterceptor, so handler events share its trace id.
func (h *MediaServer) logger(ctx context.Context) logger.Logger {
	if l := logger.FromContext(ctx); l != nil {
		return l
	}
	return h.log
}

func (h *MediaServer) UploadMedia(ctx context.Context, req *mediapb.UploadMediaRequest) (*mediapb.UploadMediaResponse, error) {
	if !validate.UserID(req.GetUserId()) {
		return nil, invalidArgument("invalid user id")
	}
	if !validate.FileName(req.GetFileName()) {
		return nil, invalidArgument("invalid file name")
	}

	key, err := h.svc.Upload(ctx, req.GetUserId(), req.GetFileBytes(), req.GetMimeType(), req.GetFileName())
	if err != nil {
		h.logger(ctx).Error(ctx, "upload failed", err, logger.String("owner", req.GetUserId()))
		return nil, statusFromError(err)
	}

	return &mediapb.UploadMediaResponse{
		MediaId: key,
		Message: "file uploaded successfully",
		Url:     h.svc.AccessURL(key),
	}, nil
}

func (h *MediaServer) GetMedia(ctx context.Context, req *mediapb.GetMediaRequest) (*mediapb.GetMediaResponse, error) {
	if req.GetMediaId() == "" {
		return nil, invalidArgument("media id is required")
	}

	obj, err := h.svc.Fetch(ctx, req.GetMediaId())
	if err != nil {
		if !media.IsNotFound(err) {
			h.logger(ctx).Error(ctx, "fetch failed", err, logger.String("key", req.GetMediaId()))
		}
		return nil, statusFromError(err)
	}

	// Metadata fields stay empty on an index miss; the bytes are
	// still served.
	return &mediapb.GetMediaResponse{
		UserId:    obj.Meta.Owner,
		FileBytes: obj.Data,
		MimeType:  obj.Meta.MimeType,
		FileName:  obj.Meta.FileName,
	}, nil
}

func (h *MediaServer) DeleteMedia(ctx context.Context, req *mediapb.DeleteMediaRequest) (*mediapb.DeleteMediaResponse, error) {
	if req.GetMediaId() == "" {
		return nil, invalidArgument("media id is required")
	}
	if !validate.UserID(req.GetUserId()) {
		return nil, invalidArgument("invalid user id")
	}

	deleted, err := h.svc.Delete(ctx, req.GetMediaId(), req.GetUserId())
	if err != nil {
		if !media.IsPermissionDenied(err) {
			h.logger(ctx).Error(ctx, "delete failed", err, logger.String("key", req.GetMediaId()))
		}
		return nil, statusFromError(err)
	}
	if !deleted {
		return &mediapb.DeleteMediaResponse{
			Success: false,
			Message: "file not found",
		}, nil
	}

	return &mediapb.DeleteMediaResponse{
		Success: true,
		Message: "file deleted successfully",
	}, nil
}

func (h *MediaServer) ListMedia(ctx context.Context, req *mediapb.ListMediaRequest) (*mediapb.ListMediaResponse, error) {
	if !validate.UserID(req.GetUserId()) {
		return nil, invalidArgument("invalid user id")
	}

	entries, err := h.svc.List(ctx, req.GetUserId())
	if err != nil {
		h.logger(ctx).Error(ctx, "list failed", err, logger.String("owner", req.GetUserId()))
		return nil, statusFromError(err)
	}

	items := make([]*mediapb.MediaItem, 0, len(entries))
	for _, e := range entries {
		items = append(items, &mediapb.MediaItem{
			MediaId:    e.Key,
			FileName:   e.FileName,
			MimeType:   e.Meta.MimeType,
			UploadDate: e.Meta.UploadedAt,
			Url:        e.URL,
		})
	}
	return &mediapb.ListMediaResponse{MediaItems: items}, nil
}

func (h *MediaServer) GetUrl(ctx context.Context, req *mediapb.GetUrlRequest) (*mediapb.GetUrlResponse, error) {
	if req.GetMediaId() == "" {
		return nil, invalidArgument("media id is required")
	}

	url, err := h.svc.PresignedURL(ctx, req.GetMediaId())
	if err != nil {
		if !media.IsNotFound(err) {
			h.logger(ctx).Error(ctx, "presign failed", err, logger.String("key", req.GetMediaId()))
		}
		return nil, statusFromError(err)
	}

	return &mediapb.GetUrlResponse{
		Url:     url,
		MediaId: req.GetMediaId(),
	}, nil
}
