package service

import (
	"context"
	"strings"

	"github.com/agnivade/levenshtein"
)

// similarity returns a 0.0–1.0 confidence score between two strings using
// Levenshtein distance: 1.0 - distance/max(len(a), len(b)).
func similarity(a, b string) float64 {
	if a == b {
		return 1.0
	}
	maxLen := len([]rune(a))
	if lb := len([]rune(b)); lb > maxLen {
		maxLen = lb
	}
	if maxLen == 0 {
		return 1.0
	}
	dist := levenshtein.ComputeDistance(a, b)
	return 1.0 - float64(dist)/float64(maxLen)
}

// Suggest returns the registered name closest to name, compared
// case-insensitively, if it scores at or above the configured threshold.
// Exact matches are never suggested.
func (s *Service) Suggest(ctx context.Context, name string) (string, bool) {
	if name == "" {
		return "", false
	}
	all, err := s.store.List(ctx)
	if err != nil {
		return "", false
	}

	target := strings.ToLower(name)
	best := ""
	bestScore := -1.0
	for _, e := range all {
		if e.Name == name {
			continue
		}
		if score := similarity(target, strings.ToLower(e.Name)); score > bestScore {
			bestScore = score
			best = e.Name
		}
	}
	if best == "" || bestScore < s.threshold {
		return "", false
	}
	return best, true
}
