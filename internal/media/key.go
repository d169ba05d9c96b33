package media

import (
	"strings"

	"github.com/google/uuid"
)

// KeyDelimiter separates the segments of a media key. Input validation
// guarantees it never appears inside the owner id or the filename, so
// the owner segment is always recoverable from the first delimiter.
const KeyDelimiter = "/"

// NewKey mints a storage key of the form owner/<random token>/filename.
// The random token makes the key globally unique; the owner prefix
// enables both listing and ownership checks.
func NewKey(owner, fileName string) string {
	return owner + KeyDelimiter + uuid.NewString() + KeyDelimiter + fileName
}

// KeyOwner recovers the owner segment from a media key. ok is false
// when the key has no delimiter or an empty owner segment.
func KeyOwner(key string) (owner string, ok bool) {
	owner, rest, found := strings.Cut(key, KeyDelimiter)
	if !found || owner == "" || rest == "" {
		return "", false
	}
	return owner, true
}

// KeyFileName returns the filename segment of a media key, which is
// everything after the last delimiter.
func KeyFileName(key string) string {
	if i := strings.LastIndex(key, KeyDelimiter); i >= 0 {
		return key[i+1:]
	}
	return key
}
