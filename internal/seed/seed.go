// Package seed pre-populates the cookbook from a YAML file at startup.
//
// The file lists entries in the same shape POST /entry accepts:
//
//	entries:
//	  - name: egg
//	    type: ingredient
//	    cookTime: 2
//	  - name: omelette
//	    type: recipe
//	    requiredItems:
//	      - name: egg
//	        quantity: 3
package seed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mwhite7112/woodpantry-cookbook/internal/cookbook"
	"github.com/mwhite7112/woodpantry-cookbook/internal/service"
	"gopkg.in/yaml.v3"
)

// Adder validates and stores a single entry.
type Adder interface {
	AddEntry(ctx context.Context, d service.EntryDraft) (cookbook.Entry, error)
}

type file struct {
	Entries []service.EntryDraft `yaml:"entries"`
}

// LoadFile opens path and loads it with Load.
func LoadFile(ctx context.Context, a Adder, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open seed file: %w", err)
	}
	defer f.Close()

	n, err := Load(ctx, a, f)
	if err != nil {
		return n, fmt.Errorf("seed %s: %w", path, err)
	}
	return n, nil
}

// Load adds every entry in r, in file order, and returns how many were added.
// It stops at the first rejected entry.
func Load(ctx context.Context, a Adder, r io.Reader) (int, error) {
	var f file
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return 0, nil
		}
		return 0, fmt.Errorf("decode seed: %w", err)
	}

	for i, d := range f.Entries {
		if _, err := a.AddEntry(ctx, d); err != nil {
			return i, fmt.Errorf("entry %d (%q): %w", i, d.Name, err)
		}
	}
	slog.Info("cookbook seeded", "entries", len(f.Entries))
	return len(f.Entries), nil
}
