package cookbook

import (
	"context"
	"slices"
	"sort"
	"sync"
)

// Store is the registry of entries keyed by name. Entries are immutable once
// inserted; there is no update or delete.
type Store interface {
	Insert(ctx context.Context, e Entry) error
	Lookup(ctx context.Context, name string) (Entry, error)
	List(ctx context.Context) ([]Entry, error)
}

// MemoryStore is a process-local Store guarded by a read/write mutex. Every
// call takes the lock for that single access only.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]Entry
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]Entry)}
}

// Insert stores e verbatim. It returns ErrDuplicateName if the name is taken.
func (s *MemoryStore) Insert(_ context.Context, e Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.entries[e.Name]; exists {
		return Errorf(ErrDuplicateName, e.Name, "Entry name must be unique")
	}
	e.RequiredItems = slices.Clone(e.RequiredItems)
	s.entries[e.Name] = e
	return nil
}

// Lookup returns the entry registered under name or ErrNotFound.
func (s *MemoryStore) Lookup(_ context.Context, name string) (Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[name]
	if !ok {
		return Entry{}, Errorf(ErrNotFound, name, "entry %q not found", name)
	}
	e.RequiredItems = slices.Clone(e.RequiredItems)
	return e, nil
}

// List returns every entry sorted by name.
func (s *MemoryStore) List(_ context.Context) ([]Entry, error) {
	s.mu.RLock()
	out := make([]Entry, 0, len(s.entries))
	for _, e := range s.entries {
		out = append(out, e)
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}
