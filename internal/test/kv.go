package test

import (
	"context"
	"sync"
)

// KVStub is an in-memory key-value store for tests with optional error
// injection per operation.
type KVStub struct {
	mu     sync.Mutex
	Data   map[string][]byte
	GetErr error
	SetErr error
	DelErr error
	Sets   int
}

// NewKVStub constructs a stub with an initialized map.
func NewKVStub() *KVStub {
	return &KVStub{Data: make(map[string][]byte)}
}

// Get returns the stored value, honoring the injected error.
func (s *KVStub) Get(ctx context.Context, key string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.GetErr != nil {
		return nil, false, s.GetErr
	}
	value, ok := s.Data[key]
	return value, ok, nil
}

// Set stores the value, honoring the injected error, and counts writes.
func (s *KVStub) Set(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.SetErr != nil {
		return s.SetErr
	}
	if s.Data == nil {
		s.Data = make(map[string][]byte)
	}
	stored := make([]byte, len(value))
	copy(stored, value)
	s.Data[key] = stored
	s.Sets++
	return nil
}

// Delete removes the key, honoring the injected error.
func (s *KVStub) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.DelErr != nil {
		return s.DelErr
	}
	delete(s.Data, key)
	return nil
}

// Close is a no-op.
func (s *KVStub) Close() error { return nil }
