package media_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bignyap/media-service/internal/media"
)

func TestNewKeyShape(t *testing.T) {
	key := media.NewKey("user123", "photo.jpg")

	segments := strings.Split(key, "/")
	require.Len(t, segments, 3)
	assert.Equal(t, "user123", segments[0])
	assert.NotEmpty(t, segments[1])
	assert.Equal(t, "photo.jpg", segments[2])
}

func TestNewKeyUniqueness(t *testing.T) {
	seen := make(map[string]struct{}, 10000)
	for i := 0; i < 10000; i++ {
		key := media.NewKey("user123", "photo.jpg")
		_, dup := seen[key]
		require.False(t, dup, "duplicate key after %d iterations: %s", i, key)
		seen[key] = struct{}{}
	}
}

func TestKeyOwner(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		owner string
		ok    bool
	}{
		{"well formed", "user123/abc/file.txt", "user123", true},
		{"no delimiter", "user123", "", false},
		{"empty owner", "/abc/file.txt", "", false},
		{"nothing after owner", "user123/", "", false},
		{"empty key", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			owner, ok := media.KeyOwner(tt.key)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.owner, owner)
		})
	}
}

func TestKeyFileName(t *testing.T) {
	assert.Equal(t, "file.txt", media.KeyFileName("user123/abc/file.txt"))
	assert.Equal(t, "file.txt", media.KeyFileName("file.txt"))
}
