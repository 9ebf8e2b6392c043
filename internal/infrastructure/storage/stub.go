package storage

import (
	"context"
	"errors"
	"net/url"
	"sync"
	"time"

	"github.com/propertyhub/backend/internal/domain/document"
)

// StubObjectStorage is used when object storage is disabled. It hands out
// placeholder URLs and treats every key as uploaded so the upload flow can be
// exercised locally. Objects written with PutObject are kept in memory.
type StubObjectStorage struct {
	BaseURL string

	mu      sync.Mutex
	objects map[string][]byte
	deleted map[string]bool
}

// NewStubObjectStorage creates a stub rooted at a placeholder host
func NewStubObjectStorage() *StubObjectStorage {
	return &StubObjectStorage{
		BaseURL: "http://storage.invalid",
		objects: make(map[string][]byte),
		deleted: make(map[string]bool),
	}
}

var _ document.ObjectStorage = (*StubObjectStorage)(nil)

func (s *StubObjectStorage) url(op, key string, expires time.Duration) string {
	q := url.Values{"expires": {time.Now().Add(expires).UTC().Format(time.RFC3339)}}
	return s.BaseURL + "/" + op + "/" + key + "?" + q.Encode()
}

// PresignPut returns a placeholder upload URL
func (s *StubObjectStorage) PresignPut(_ context.Context, key, _ string, _ int64, expires time.Duration) (string, error) {
	if key == "" {
		return "", errors.New("storage key is required")
	}
	return s.url("upload", key, expires), nil
}

// PresignGet returns a placeholder download URL
func (s *StubObjectStorage) PresignGet(_ context.Context, key, _ string, expires time.Duration) (string, error) {
	if key == "" {
		return "", errors.New("storage key is required")
	}
	return s.url("download", key, expires), nil
}

// ObjectExists reports true for any key not deleted. The size is known only
// for objects written with PutObject.
func (s *StubObjectStorage) ObjectExists(_ context.Context, key string) (bool, int64, error) {
	if key == "" {
		return false, 0, errors.New("storage key is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.deleted[key] {
		return false, 0, nil
	}
	return true, int64(len(s.objects[key])), nil
}

// DeleteObject marks key as gone
func (s *StubObjectStorage) DeleteObject(_ context.Context, key string) error {
	if key == "" {
		return errors.New("storage key is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, key)
	s.deleted[key] = true
	return nil
}

// PutObject keeps data in memory
func (s *StubObjectStorage) PutObject(_ context.Context, key, _ string, data []byte) error {
	if key == "" {
		return errors.New("storage key is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[key] = append([]byte(nil), data...)
	delete(s.deleted, key)
	return nil
}
