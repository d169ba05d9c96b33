package storage_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bignyap/media-service/internal/storage"
)

func put(t *testing.T, s *storage.MemoryStore, key, contentType string, data []byte) {
	t.Helper()
	err := s.Put(context.Background(), key, bytes.NewReader(data), int64(len(data)), contentType)
	require.NoError(t, err)
}

func TestMemoryStorePutGet(t *testing.T) {
	ctx := context.Background()
	s := storage.NewMemoryStore()

	put(t, s, "u1/abc/a.txt", "text/plain", []byte("hello"))

	data, contentType, err := s.Get(ctx, "u1/abc/a.txt")
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), data)
	assert.Equal(t, "text/plain", contentType)

	_, _, err = s.Get(ctx, "missing")
	assert.ErrorIs(t, err, storage.ErrObjectNotFound)
}

func TestMemoryStoreStat(t *testing.T) {
	ctx := context.Background()
	s := storage.NewMemoryStore()

	put(t, s, "u1/abc/a.txt", "text/plain", []byte("hello"))

	info, err := s.Stat(ctx, "u1/abc/a.txt")
	require.NoError(t, err)
	assert.Equal(t, "u1/abc/a.txt", info.Key)
	assert.Equal(t, int64(5), info.Size)
	assert.Equal(t, "text/plain", info.ContentType)

	_, err = s.Stat(ctx, "missing")
	assert.ErrorIs(t, err, storage.ErrObjectNotFound)
}

func TestMemoryStoreDeleteAbsentIsNoError(t *testing.T) {
	s := storage.NewMemoryStore()
	assert.NoError(t, s.Delete(context.Background(), "missing"))
}

func TestMemoryStoreListByPrefix(t *testing.T) {
	ctx := context.Background()
	s := storage.NewMemoryStore()

	put(t, s, "u1/a/one.txt", "text/plain", []byte("1"))
	put(t, s, "u2/b/two.txt", "text/plain", []byte("2"))
	put(t, s, "u1/c/three.txt", "text/plain", []byte("3"))

	infos, err := s.List(ctx, "u1/")
	require.NoError(t, err)
	require.Len(t, infos, 2)
	// insertion order is preserved
	assert.Equal(t, "u1/a/one.txt", infos[0].Key)
	assert.Equal(t, "u1/c/three.txt", infos[1].Key)

	infos, err = s.List(ctx, "u3/")
	require.NoError(t, err)
	assert.Empty(t, infos)
}

func TestMemoryStorePresignedGetURL(t *testing.T) {
	ctx := context.Background()
	s := storage.NewMemoryStore()

	put(t, s, "u1/abc/a.txt", "text/plain", []byte("hello"))

	url, err := s.PresignedGetURL(ctx, "u1/abc/a.txt", 24*time.Hour)
	require.NoError(t, err)
	assert.NotEmpty(t, url)

	_, err = s.PresignedGetURL(ctx, "missing", 24*time.Hour)
	assert.ErrorIs(t, err, storage.ErrObjectNotFound)
}
