package registry

import (
	"context"
	"slices"
	"sync"

	"github.com/dmitrymomot/recordkit/pkg/record"
)

// MemoryStore keeps schemas in a map. The zero value is not usable; call
// NewMemoryStore.
type MemoryStore struct {
	mu      sync.RWMutex
	schemas map[string]*record.Schema
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{schemas: make(map[string]*record.Schema)}
}

func (s *MemoryStore) Get(_ context.Context, name string) (*record.Schema, error) {
	if err := checkName(name); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	schema, ok := s.schemas[name]
	if !ok {
		return nil, notFound(name)
	}
	return schema, nil
}

// Put stores schema under name. Schemas are immutable, so the pointer is
// shared rather than copied.
func (s *MemoryStore) Put(_ context.Context, name string, schema *record.Schema) error {
	if err := checkName(name); err != nil {
		return err
	}
	if schema == nil {
		return ErrNilSchema
	}
	s.mu.Lock()
	s.schemas[name] = schema
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, name string) error {
	if err := checkName(name); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.schemas[name]; !ok {
		return notFound(name)
	}
	delete(s.schemas, name)
	return nil
}

func (s *MemoryStore) List(_ context.Context) ([]string, error) {
	s.mu.RLock()
	names := make([]string, 0, len(s.schemas))
	for name := range s.schemas {
		names = append(names, name)
	}
	s.mu.RUnlock()
	slices.Sort(names)
	return names, nil
}
