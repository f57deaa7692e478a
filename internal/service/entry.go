package service

import (
	"context"
	"errors"
	"log/slog"
	"math"

	"github.com/mwhite7112/woodpantry-cookbook/internal/cookbook"
	"github.com/mwhite7112/woodpantry-cookbook/internal/metrics"
)

// EntryDraft is an unvalidated entry as submitted by a client or a seed file.
// Pointer fields distinguish an absent number from zero.
type EntryDraft struct {
	Name          string      `json:"name" yaml:"name"`
	Type          string      `json:"type" yaml:"type"`
	CookTime      *float64    `json:"cookTime" yaml:"cookTime"`
	RequiredItems []ItemDraft `json:"requiredItems" yaml:"requiredItems"`
}

// ItemDraft is an unvalidated required item.
type ItemDraft struct {
	Name     string   `json:"name" yaml:"name"`
	Quantity *float64 `json:"quantity" yaml:"quantity"`
}

// AddEntry validates d and inserts it into the store. Checks run in a fixed
// order: name and type, uniqueness, then the kind-specific fields.
func (s *Service) AddEntry(ctx context.Context, d EntryDraft) (cookbook.Entry, error) {
	entry, err := s.addEntry(ctx, d)
	if err != nil {
		metrics.EntriesRejected.WithLabelValues(rejectReason(err)).Inc()
		return cookbook.Entry{}, err
	}
	metrics.EntriesCreated.WithLabelValues(string(entry.Kind)).Inc()
	slog.Debug("entry added", "name", entry.Name, "type", entry.Kind)
	return entry, nil
}

func (s *Service) addEntry(ctx context.Context, d EntryDraft) (cookbook.Entry, error) {
	if d.Name == "" || d.Type == "" {
		return cookbook.Entry{}, cookbook.Errorf(cookbook.ErrInvalidShape, d.Name, "Missing 'name' or 'type'")
	}
	kind := cookbook.Kind(d.Type)
	if !kind.Valid() {
		return cookbook.Entry{}, cookbook.Errorf(cookbook.ErrInvalidShape, d.Name, "Invalid type. Must be 'recipe' or 'ingredient'")
	}

	if _, err := s.store.Lookup(ctx, d.Name); err == nil {
		return cookbook.Entry{}, cookbook.Errorf(cookbook.ErrDuplicateName, d.Name, "Entry name must be unique")
	} else if !errors.Is(err, cookbook.ErrNotFound) {
		return cookbook.Entry{}, err
	}

	var entry cookbook.Entry
	switch kind {
	case cookbook.KindRecipe:
		items, err := validateItems(d)
		if err != nil {
			return cookbook.Entry{}, err
		}
		entry = cookbook.Entry{Name: d.Name, Kind: kind, RequiredItems: items}
	case cookbook.KindIngredient:
		if d.CookTime == nil || !nonNegative(*d.CookTime) {
			return cookbook.Entry{}, cookbook.Errorf(cookbook.ErrInvalidShape, d.Name, "Ingredient must have a 'cookTime' >= 0")
		}
		entry = cookbook.NewIngredient(d.Name, *d.CookTime)
	}

	// Insert re-checks uniqueness under the store lock.
	if err := s.store.Insert(ctx, entry); err != nil {
		return cookbook.Entry{}, err
	}
	return entry, nil
}

func validateItems(d EntryDraft) ([]cookbook.RequiredItem, error) {
	if d.RequiredItems == nil {
		return nil, cookbook.Errorf(cookbook.ErrInvalidShape, d.Name, "Recipe must have a list of 'requiredItems'")
	}

	seen := make(map[string]struct{}, len(d.RequiredItems))
	items := make([]cookbook.RequiredItem, 0, len(d.RequiredItems))
	for _, it := range d.RequiredItems {
		if it.Name == "" || it.Quantity == nil || !finite(*it.Quantity) {
			return nil, cookbook.Errorf(cookbook.ErrInvalidShape, d.Name, "Each requiredItem must have 'name' and 'quantity'")
		}
		if _, dup := seen[it.Name]; dup {
			return nil, cookbook.Errorf(cookbook.ErrInvalidShape, it.Name, "Duplicate requiredItem names are not allowed")
		}
		seen[it.Name] = struct{}{}
		items = append(items, cookbook.RequiredItem{Name: it.Name, Quantity: *it.Quantity})
	}
	return items, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func nonNegative(v float64) bool {
	return v >= 0 && !math.IsInf(v, 0)
}

func rejectReason(err error) string {
	switch {
	case errors.Is(err, cookbook.ErrInvalidShape):
		return "invalid_shape"
	case errors.Is(err, cookbook.ErrDuplicateName):
		return "duplicate_name"
	default:
		return "error"
	}
}
