package service

import (
	"context"

	"github.com/mwhite7112/woodpantry-cookbook/internal/cookbook"
)

// Service holds all dependencies for the cookbook service layer.
type Service struct {
	store     cookbook.Store
	threshold float64
}

// New creates a new Service. threshold is the minimum similarity score a
// registered name needs to be offered as a suggestion.
func New(store cookbook.Store, threshold float64) *Service {
	return &Service{store: store, threshold: threshold}
}

// Entry returns the entry registered under name.
func (s *Service) Entry(ctx context.Context, name string) (cookbook.Entry, error) {
	return s.store.Lookup(ctx, name)
}

// Entries returns every registered entry sorted by name.
func (s *Service) Entries(ctx context.Context) ([]cookbook.Entry, error) {
	entries, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []cookbook.Entry{}
	}
	return entries, nil
}
