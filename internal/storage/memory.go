package storage

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

// MemoryStore is an in-memory ObjectStore for tests and local
// development. Listing follows insertion order, which is stable for a
// given store state.
type MemoryStore struct {
	mu      sync.RWMutex
	objects map[string]memObject
	order   []string
}

type memObject struct {
	data        []byte
	contentType string
	modified    time.Time
}

var _ ObjectStore = (*MemoryStore)(nil)

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{objects: make(map[string]memObject)}
}

func (s *MemoryStore) Put(ctx context.Context, key string, data io.Reader, size int64, contentType string) error {
	buf, err := io.ReadAll(data)
	if err != nil {
		return fmt.Errorf("failed to read object data: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.objects[key]; !exists {
		s.order = append(s.order, key)
	}
	s.objects[key] = memObject{data: buf, contentType: contentType, modified: time.Now()}
	return nil
}

func (s *MemoryStore) Get(ctx context.Context, key string) ([]byte, string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	obj, ok := s.objects[key]
	if !ok {
		return nil, "", ErrObjectNotFound
	}
	data := make([]byte, len(obj.data))
	copy(data, obj.data)
	return data, obj.contentType, nil
}

func (s *MemoryStore) Stat(ctx context.Context, key string) (ObjectInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	obj, ok := s.objects[key]
	if !ok {
		return ObjectInfo{}, ErrObjectNotFound
	}
	return s.info(key, obj), nil
}

func (s *MemoryStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.objects[key]; !ok {
		return nil
	}
	delete(s.objects, key)
	for i, k := range s.order {
		if k == key {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

func (s *MemoryStore) List(ctx context.Context, prefix string) ([]ObjectInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var infos []ObjectInfo
	for _, key := range s.order {
		if strings.HasPrefix(key, prefix) {
			infos = append(infos, s.info(key, s.objects[key]))
		}
	}
	return infos, nil
}

func (s *MemoryStore) PresignedGetURL(ctx context.Context, key string, expiry time.Duration) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, ok := s.objects[key]; !ok {
		return "", ErrObjectNotFound
	}
	return fmt.Sprintf("memory://%s?expires=%d", key, int64(expiry.Seconds())), nil
}

// Len returns the number of stored objects.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.objects)
}

func (s *MemoryStore) info(key string, obj memObject) ObjectInfo {
	return ObjectInfo{
		Key:          key,
		Size:         int64(len(obj.data)),
		ContentType:  obj.contentType,
		LastModified: obj.modified,
	}
}
