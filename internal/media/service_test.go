package media_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bignyap/media-service/internal/logger"
	"github.com/bignyap/media-service/internal/media"
	"github.com/bignyap/media-service/internal/storage"
)

var fixedTime = time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)

func newTestService(t *testing.T, store storage.ObjectStore, opts ...media.Option) (*media.Service, *media.Index) {
	t.Helper()
	index := media.NewIndex()
	opts = append([]media.Option{media.WithClock(func() time.Time { return fixedTime })}, opts...)
	svc := media.NewService(store, index, "test-bucket", logger.Nop{}, opts...)
	return svc, index
}

func TestUploadFetchRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, storage.NewMemoryStore())

	payload := []byte("test file content")
	key, err := svc.Upload(ctx, "u1", payload, "text/plain", "a.txt")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(key, "u1/"))

	obj, err := svc.Fetch(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, payload, obj.Data)
	require.True(t, obj.HasMeta)
	assert.Equal(t, "u1", obj.Meta.Owner)
	assert.Equal(t, "text/plain", obj.Meta.MimeType)
	assert.Equal(t, "a.txt", obj.Meta.FileName)
	assert.Equal(t, fixedTime.Format(time.RFC3339), obj.Meta.UploadedAt)
}

func TestUploadStoreFailureLeavesIndexUntouched(t *testing.T) {
	ctx := context.Background()
	svc, index := newTestService(t, &failingStore{})

	_, err := svc.Upload(ctx, "u1", []byte("data"), "text/plain", "a.txt")
	require.Error(t, err)
	assert.Equal(t, media.KindStorage, media.KindOf(err))
	assert.Equal(t, 0, index.Len())
}

func TestFetchNotFound(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, storage.NewMemoryStore())

	_, err := svc.Fetch(ctx, "u1/never/uploaded.txt")
	assert.True(t, media.IsNotFound(err))
}

func TestFetchWithoutMetadata(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	svc, _ := newTestService(t, store)

	payload := []byte("survives restarts")
	key, err := svc.Upload(ctx, "u1", payload, "text/plain", "a.txt")
	require.NoError(t, err)

	// A process restart keeps the store but starts a fresh index.
	restarted, _ := newTestService(t, store)

	obj, err := restarted.Fetch(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, payload, obj.Data)
	assert.False(t, obj.HasMeta)
	assert.Empty(t, obj.Meta.Owner)
	assert.Empty(t, obj.Meta.MimeType)
	assert.Empty(t, obj.Meta.FileName)
}

func TestDeleteByOwner(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	svc, index := newTestService(t, store)

	key, err := svc.Upload(ctx, "u1", []byte("data"), "text/plain", "a.txt")
	require.NoError(t, err)

	deleted, err := svc.Delete(ctx, key, "u1")
	require.NoError(t, err)
	assert.True(t, deleted)
	assert.Equal(t, 0, index.Len())
	assert.Equal(t, 0, store.Len())
}

func TestDeleteDeniedForNonOwner(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	svc, index := newTestService(t, store)

	key, err := svc.Upload(ctx, "u1", []byte("data"), "text/plain", "a.txt")
	require.NoError(t, err)

	deleted, err := svc.Delete(ctx, key, "u2")
	assert.False(t, deleted)
	assert.True(t, media.IsPermissionDenied(err))

	// neither store nor index were touched
	assert.Equal(t, 1, store.Len())
	assert.Equal(t, 1, index.Len())
	_, err = svc.Fetch(ctx, key)
	assert.NoError(t, err)
}

func TestDeleteDeniedForMalformedKey(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, storage.NewMemoryStore())

	deleted, err := svc.Delete(ctx, "no-delimiter", "u1")
	assert.False(t, deleted)
	assert.True(t, media.IsPermissionDenied(err))
}

func TestDeleteAbsentReportsFailure(t *testing.T) {
	ctx := context.Background()
	svc, index := newTestService(t, storage.NewMemoryStore())

	// A stale index entry survives a delete that the store rejects as
	// absent.
	stale := media.Metadata{Owner: "u1", MimeType: "text/plain", FileName: "gone.txt"}
	index.Put("u1/token/gone.txt", stale)

	deleted, err := svc.Delete(ctx, "u1/token/gone.txt", "u1")
	require.NoError(t, err)
	assert.False(t, deleted)

	got, ok := index.Get("u1/token/gone.txt")
	require.True(t, ok)
	assert.Equal(t, stale, got)
}

func TestDeleteTwiceFailsSecondTime(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, storage.NewMemoryStore())

	key, err := svc.Upload(ctx, "u1", []byte("data"), "text/plain", "a.txt")
	require.NoError(t, err)

	deleted, err := svc.Delete(ctx, key, "u1")
	require.NoError(t, err)
	require.True(t, deleted)

	deleted, err = svc.Delete(ctx, key, "u1")
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestListScopedToOwner(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, storage.NewMemoryStore())

	k1, err := svc.Upload(ctx, "u1", []byte("one"), "text/plain", "one.txt")
	require.NoError(t, err)
	_, err = svc.Upload(ctx, "u2", []byte("two"), "text/plain", "two.txt")
	require.NoError(t, err)

	entries, err := svc.List(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, k1, entries[0].Key)
	assert.Equal(t, "one.txt", entries[0].FileName)
	assert.Equal(t, "text/plain", entries[0].Meta.MimeType)
	assert.NotEmpty(t, entries[0].URL)
}

func TestListEmptyForUnknownOwner(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, storage.NewMemoryStore())

	entries, err := svc.List(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestListAfterRestartHasEmptyMetadata(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	svc, _ := newTestService(t, store)

	key, err := svc.Upload(ctx, "u1", []byte("data"), "image/png", "pic.png")
	require.NoError(t, err)

	restarted, _ := newTestService(t, store)
	entries, err := restarted.List(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, key, entries[0].Key)
	assert.Equal(t, "pic.png", entries[0].FileName)
	assert.Empty(t, entries[0].Meta.MimeType)
	assert.Empty(t, entries[0].Meta.UploadedAt)
}

func TestConcurrentDistinctUploads(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, storage.NewMemoryStore())

	const n = 32
	keys := make([]string, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			owner := fmt.Sprintf("user%d", i)
			name := fmt.Sprintf("file%d.txt", i)
			key, err := svc.Upload(ctx, owner, []byte(name), "text/plain", name)
			assert.NoError(t, err)
			keys[i] = key
		}(i)
	}
	wg.Wait()

	seen := make(map[string]struct{}, n)
	for i, key := range keys {
		require.NotEmpty(t, key)
		_, dup := seen[key]
		require.False(t, dup)
		seen[key] = struct{}{}

		obj, err := svc.Fetch(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, []byte(fmt.Sprintf("file%d.txt", i)), obj.Data)
	}
}

func TestPresignedURLNotFound(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, storage.NewMemoryStore())

	_, err := svc.PresignedURL(ctx, "u1/never/uploaded.txt")
	assert.True(t, media.IsNotFound(err))
}

func TestPresignedURLUsesCache(t *testing.T) {
	ctx := context.Background()
	cache := &recordingCache{entries: map[string]string{}}
	svc, _ := newTestService(t, storage.NewMemoryStore(), media.WithURLCache(cache))

	key, err := svc.Upload(ctx, "u1", []byte("data"), "text/plain", "a.txt")
	require.NoError(t, err)

	first, err := svc.PresignedURL(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, 1, cache.sets)

	second, err := svc.PresignedURL(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, cache.sets, "second call should be served from cache")

	// deletion invalidates the cached URL
	_, err = svc.Delete(ctx, key, "u1")
	require.NoError(t, err)
	_, ok := cache.entries[key]
	assert.False(t, ok)
}

func TestAccessURL(t *testing.T) {
	svc, _ := newTestService(t, storage.NewMemoryStore())
	assert.Equal(t, "/media/test-bucket/u1/abc/a.txt", svc.AccessURL("u1/abc/a.txt"))
}

// failingStore rejects every operation with an infrastructure error.
type failingStore struct{}

var errStoreDown = errors.New("connection refused")

func (failingStore) Put(ctx context.Context, key string, data io.Reader, size int64, contentType string) error {
	return errStoreDown
}

func (failingStore) Get(ctx context.Context, key string) ([]byte, string, error) {
	return nil, "", errStoreDown
}

func (failingStore) Stat(ctx context.Context, key string) (storage.ObjectInfo, error) {
	return storage.ObjectInfo{}, errStoreDown
}

func (failingStore) Delete(ctx context.Context, key string) error {
	return errStoreDown
}

func (failingStore) List(ctx context.Context, prefix string) ([]storage.ObjectInfo, error) {
	return nil, errStoreDown
}

func (failingStore) PresignedGetURL(ctx context.Context, key string, expiry time.Duration) (string, error) {
	return "", errStoreDown
}

// recordingCache counts cache writes.
type recordingCache struct {
	entries map[string]string
	sets    int
}

func (c *recordingCache) Get(key string) (string, bool) {
	url, ok := c.entries[key]
	return url, ok
}

func (c *recordingCache) Set(key, url string) {
	c.entries[key] = url
	c.sets++
}

func (c *recordingCache) Invalidate(key string) {
	delete(c.entries, key)
}
