package media

import "sync"

// Metadata holds the descriptive fields recorded at upload time.
// UploadedAt is an RFC 3339 timestamp from the service clock.
type Metadata struct {
	Owner      string
	MimeType   string
	FileName   string
	UploadedAt string
}

// Index is a process-local map from media key to Metadata. It is a
// best-effort cache of descriptive fields and never authoritative for
// existence: after a restart it is empty while the store is not, and
// read paths must treat a miss as "unknown", not "absent".
//
// A single mutex serializes mutations per key so a delete racing a
// re-insert cannot resurrect a stale entry. The index is small and
// low-contention, so one lock over the whole map is enough.
type Index struct {
	mu      sync.RWMutex
	entries map[string]Metadata
}

// NewIndex creates an empty metadata index.
func NewIndex() *Index {
	return &Index{entries: make(map[string]Metadata)}
}

// Put inserts or replaces the metadata for key.
func (ix *Index) Put(key string, meta Metadata) {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	ix.entries[key] = meta
}

// Get returns the metadata for key, or ok=false on a miss.
func (ix *Index) Get(key string) (Metadata, bool) {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	meta, ok := ix.entries[key]
	return meta, ok
}

// Remove deletes the entry for key, if any.
func (ix *Index) Remove(key string) {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	delete(ix.entries, key)
}

// Len returns the number of indexed keys.
func (ix *Index) Len() int {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return len(ix.entries)
}
