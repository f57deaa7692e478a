package service

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"strings"

	"github.com/mwhite7112/woodpantry-cookbook/internal/cookbook"
	"github.com/mwhite7112/woodpantry-cookbook/internal/metrics"
)

// IngredientQuantity is one line of a flattened ingredient list.
type IngredientQuantity struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
}

// Summary is a recipe expanded down to its leaf ingredients.
type Summary struct {
	Name        string               `json:"name"`
	CookTime    float64              `json:"cookTime"`
	Ingredients []IngredientQuantity `json:"ingredients"`
}

// Summarize expands the named recipe into its total cook time and the summed
// quantity of every leaf ingredient it transitively requires. Any unresolvable
// reference, at any depth, fails the whole call.
func (s *Service) Summarize(ctx context.Context, name string) (Summary, error) {
	sum, err := s.summarize(ctx, name)
	metrics.Summaries.WithLabelValues(summaryOutcome(err)).Inc()
	if err != nil {
		slog.Debug("summary failed", "name", name, "error", err)
		return Summary{}, err
	}
	return sum, nil
}

func (s *Service) summarize(ctx context.Context, name string) (Summary, error) {
	root, err := s.store.Lookup(ctx, name)
	if err != nil {
		return Summary{}, err
	}
	if !root.IsRecipe() {
		return Summary{}, cookbook.Errorf(cookbook.ErrNotARecipe, name, "Requested name is not a recipe")
	}

	cookTime, totals, err := s.expand(ctx, root, []string{root.Name})
	if err != nil {
		return Summary{}, err
	}
	if !finite(cookTime) {
		return Summary{}, cookbook.Errorf(cookbook.ErrOutOfRange, name, "Recipe cook time is too large to compute")
	}
	ingredients := totals.list()
	for _, iq := range ingredients {
		if !finite(iq.Quantity) {
			return Summary{}, cookbook.Errorf(cookbook.ErrOutOfRange, iq.Name, "Quantity of %s is too large to compute", iq.Name)
		}
	}
	return Summary{Name: name, CookTime: cookTime, Ingredients: ingredients}, nil
}

// expand walks recipe depth-first. path holds the recipes currently being
// expanded, so a name reappearing on it is a cycle; a sub-recipe shared by
// sibling branches is expanded once per branch.
func (s *Service) expand(ctx context.Context, recipe cookbook.Entry, path []string) (float64, *tally, error) {
	var cookTime float64
	totals := newTally()

	for _, item := range recipe.RequiredItems {
		entry, err := s.store.Lookup(ctx, item.Name)
		if err != nil {
			if errors.Is(err, cookbook.ErrNotFound) {
				return 0, nil, cookbook.Errorf(cookbook.ErrMissingDependency, item.Name, "Missing ingredient: %s", item.Name)
			}
			return 0, nil, err
		}

		if entry.IsIngredient() {
			cookTime += entry.CookTime * item.Quantity
			totals.add(item.Name, item.Quantity)
			continue
		}

		if slices.Contains(path, item.Name) {
			cycle := append(slices.Clone(path), item.Name)
			return 0, nil, cookbook.Errorf(cookbook.ErrCyclicDependency, item.Name, "Cyclic dependency: %s", strings.Join(cycle, " -> "))
		}
		subTime, sub, err := s.expand(ctx, entry, append(path[:len(path):len(path)], item.Name))
		if err != nil {
			return 0, nil, err
		}
		cookTime += subTime * item.Quantity
		for _, iq := range sub.list() {
			totals.add(iq.Name, iq.Quantity*item.Quantity)
		}
	}
	return cookTime, totals, nil
}

// tally accumulates quantities per ingredient, remembering first-insertion
// order.
type tally struct {
	order []string
	qty   map[string]float64
}

func newTally() *tally {
	return &tally{qty: make(map[string]float64)}
}

func (t *tally) add(name string, q float64) {
	if _, ok := t.qty[name]; !ok {
		t.order = append(t.order, name)
	}
	t.qty[name] += q
}

func (t *tally) list() []IngredientQuantity {
	out := make([]IngredientQuantity, 0, len(t.order))
	for _, n := range t.order {
		out = append(out, IngredientQuantity{Name: n, Quantity: t.qty[n]})
	}
	return out
}

func summaryOutcome(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeOK
	case errors.Is(err, cookbook.ErrNotFound):
		return metrics.OutcomeNotFound
	case errors.Is(err, cookbook.ErrNotARecipe):
		return metrics.OutcomeNotARecipe
	case errors.Is(err, cookbook.ErrMissingDependency):
		return metrics.OutcomeMissingDependency
	case errors.Is(err, cookbook.ErrCyclicDependency):
		return metrics.OutcomeCyclicDependency
	case errors.Is(err, cookbook.ErrOutOfRange):
		return metrics.OutcomeOutOfRange
	default:
		return metrics.OutcomeError
	}
}
