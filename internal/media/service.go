package media

import (
	"bytes"
	"context"
	"errors"
	"time"

	"github.com/bignyap/media-service/internal/logger"
	"github.com/bignyap/media-service/internal/storage"
)

// DefaultPresignExpiry is the lifetime of presigned download URLs.
const DefaultPresignExpiry = 24 * time.Hour

// URLCache caches presigned URLs keyed by media key. Optional; the
// Service works without one.
type URLCache interface {
	Get(key string) (string, bool)
	Set(key, url string)
	Invalidate(key string)
}

// Object is the result of fetching media: the stored bytes plus
// whatever metadata the index currently holds. HasMeta is false after
// a restart wiped the index; the descriptive fields are then zero
// values, which is not an error.
type Object struct {
	Data        []byte
	ContentType string
	Meta        Metadata
	HasMeta     bool
}

// Entry is one item of a user's media listing.
type Entry struct {
	Key      string
	FileName string
	Meta     Metadata
	URL      string
}

// Service orchestrates the key scheme, the metadata index and the
// object store. It is the only component that performs ownership
// checks, derived from the key's owner segment.
type Service struct {
	store         storage.ObjectStore
	index         *Index
	log           logger.Logger
	bucket        string
	presignExpiry time.Duration
	urls          URLCache
	now           func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithURLCache installs a cache for presigned URLs.
func WithURLCache(c URLCache) Option {
	return func(s *Service) { s.urls = c }
}

// WithPresignExpiry overrides the presigned URL lifetime.
func WithPresignExpiry(d time.Duration) Option {
	return func(s *Service) { s.presignExpiry = d }
}

// WithClock overrides the service clock, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService creates a media service. The bucket name is only used to
// build stable access URLs; all store operations go through store.
func NewService(store storage.ObjectStore, index *Index, bucket string, log logger.Logger, opts ...Option) *Service {
	s := &Service{
		store:         store,
		index:         index,
		log:           log.WithComponent("media"),
		bucket:        bucket,
		presignExpiry: DefaultPresignExpiry,
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Upload stores data under a freshly minted key and records its
// metadata. The store write happens first; the index insert only after
// a successful write, so a failed upload leaves the index untouched.
// A crash between the two leaves an unindexed object, which read paths
// tolerate.
func (s *Service) Upload(ctx context.Context, owner string, data []byte, mimeType, fileName string) (string, error) {
	key := NewKey(owner, fileName)

	err := s.store.Put(ctx, key, bytes.NewReader(data), int64(len(data)), mimeType)
	if err != nil {
		return "", NewError(KindStorage, "failed to store media", err)
	}

	s.index.Put(key, Metadata{
		Owner:      owner,
		MimeType:   mimeType,
		FileName:   fileName,
		UploadedAt: s.now().UTC().Format(time.RFC3339),
	})

	s.log.Info(ctx, "media uploaded",
		logger.String("key", key),
		logger.String("owner", owner),
		logger.Int("size", len(data)),
	)
	return key, nil
}

// Fetch reads the object bytes for key. The store is authoritative for
// existence; an index miss only means the descriptive fields are
// unknown.
func (s *Service) Fetch(ctx context.Context, key string) (Object, error) {
	data, contentType, err := s.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			return Object{}, NewError(KindNotFound, "media not found", err)
		}
		return Object{}, NewError(KindStorage, "failed to read media", err)
	}

	meta, ok := s.index.Get(key)
	return Object{Data: data, ContentType: contentType, Meta: meta, HasMeta: ok}, nil
}

// Delete removes the object for key after verifying that requester
// owns it. Permission is checked before any store or index access.
// When the store reports the object absent, Delete returns
// (false, nil) and leaves any stale index entry in place.
func (s *Service) Delete(ctx context.Context, key, requester string) (bool, error) {
	owner, ok := KeyOwner(key)
	if !ok || owner != requester {
		return false, NewError(KindPermissionDenied, "requester does not own this media", nil)
	}

	// RemoveObject succeeds on absent keys, so existence has to be
	// checked explicitly to report it to the caller.
	if _, err := s.store.Stat(ctx, key); err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			return false, nil
		}
		return false, NewError(KindStorage, "failed to delete media", err)
	}

	if err := s.store.Delete(ctx, key); err != nil {
		return false, NewError(KindStorage, "failed to delete media", err)
	}

	s.index.Remove(key)
	if s.urls != nil {
		s.urls.Invalidate(key)
	}

	s.log.Info(ctx, "media deleted",
		logger.String("key", key),
		logger.String("owner", owner),
	)
	return true, nil
}

// List returns all media owned by owner, in the store's native listing
// order, each entry enriched with indexed metadata (when present) and
// a presigned URL. A presign failure leaves that entry's URL empty
// rather than failing the whole listing.
func (s *Service) List(ctx context.Context, owner string) ([]Entry, error) {
	infos, err := s.store.List(ctx, owner+KeyDelimiter)
	if err != nil {
		return nil, NewError(KindStorage, "failed to list media", err)
	}

	entries := make([]Entry, 0, len(infos))
	for _, info := range infos {
		meta, _ := s.index.Get(info.Key)

		url, err := s.presign(ctx, info.Key)
		if err != nil {
			s.log.Warn(ctx, "failed to presign listed media",
				logger.String("key", info.Key),
			)
		}

		entries = append(entries, Entry{
			Key:      info.Key,
			FileName: KeyFileName(info.Key),
			Meta:     meta,
			URL:      url,
		})
	}
	return entries, nil
}

// PresignedURL issues a time-limited download URL for key. The object
// is resolved first, so an absent key yields KindNotFound rather than
// a URL that would 404.
func (s *Service) PresignedURL(ctx context.Context, key string) (string, error) {
	if _, err := s.store.Stat(ctx, key); err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			return "", NewError(KindNotFound, "media not found", err)
		}
		return "", NewError(KindStorage, "failed to resolve media", err)
	}

	url, err := s.presign(ctx, key)
	if err != nil {
		return "", NewError(KindStorage, "failed to generate URL", err)
	}
	return url, nil
}

// AccessURL returns the stable /media/{bucket}/{key} path resolved by
// the reverse proxy in front of the object store, as opposed to the
// ephemeral presigned URLs.
func (s *Service) AccessURL(key string) string {
	return "/media/" + s.bucket + "/" + key
}

func (s *Service) presign(ctx context.Context, key string) (string, error) {
	if s.urls != nil {
		if url, ok := s.urls.Get(key); ok {
			return url, nil
		}
	}

	url, err := s.store.PresignedGetURL(ctx, key, s.presignExpiry)
	if err != nil {
		return "", err
	}

	if s.urls != nil {
		s.urls.Set(key, url)
	}
	return url, nil
}
