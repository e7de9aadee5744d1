package library

import (
	"path/filepath"
	"slices"
	"strings"

	"golang.org/x/text/cases"
)

// Order is the direction of a name sort.
type Order string

const (
	Ascending  Order = "asc"
	Descending Order = "desc"
)

// sortKey folds case so "alpha" and "Alpha" sort together.
func sortKey(name string) string {
	return cases.Fold().String(name)
}

func compareNames(a, b Game) int {
	return strings.Compare(sortKey(a.Name), sortKey(b.Name))
}

// Merge overlays found onto existing by path and returns the result sorted by
// name. A path present in both keeps the entry from found.
func Merge(existing, found []Game) []Game {
	byPath := make(map[string]Game, len(existing)+len(found))
	for _, g := range existing {
		byPath[g.Path] = g
	}
	for _, g := range found {
		byPath[g.Path] = g
	}
	merged := make([]Game, 0, len(byPath))
	for _, g := range byPath {
		merged = append(merged, g)
	}
	slices.SortFunc(merged, func(a, b Game) int {
		if c := compareNames(a, b); c != 0 {
			return c
		}
		return strings.Compare(a.Path, b.Path)
	})
	return merged
}

// Remove returns games without any entry equal to target.
func Remove(games []Game, target Game) []Game {
	out := make([]Game, 0, len(games))
	for _, g := range games {
		if g != target {
			out = append(out, g)
		}
	}
	return out
}

// Rename returns a copy of games where the entry equal to target carries name.
// Order is preserved. An empty name leaves the list unchanged.
func Rename(games []Game, target Game, name string) []Game {
	out := slices.Clone(games)
	if out == nil {
		out = []Game{}
	}
	if name == "" {
		return out
	}
	for i, g := range out {
		if g == target {
			out[i].Name = name
			break
		}
	}
	return out
}

// Sort returns games ordered by name, case-insensitively.
func Sort(games []Game, order Order) []Game {
	out := slices.Clone(games)
	if out == nil {
		out = []Game{}
	}
	slices.SortStableFunc(out, func(a, b Game) int {
		if order == Descending {
			return compareNames(b, a)
		}
		return compareNames(a, b)
	})
	return out
}

// Unique drops entries whose name was already seen. It is applied before
// every render.
func Unique(games []Game) []Game {
	seen := make(map[string]struct{}, len(games))
	out := make([]Game, 0, len(games))
	for _, g := range games {
		if _, ok := seen[g.Name]; ok {
			continue
		}
		seen[g.Name] = struct{}{}
		out = append(out, g)
	}
	return out
}

// FromPaths turns scanned executables into entries named after the file.
func FromPaths(paths []string) []Game {
	games := make([]Game, 0, len(paths))
	for _, p := range paths {
		base := filepath.Base(p)
		name := strings.TrimSuffix(base, filepath.Ext(base))
		if name == "" {
			name = base
		}
		games = append(games, Game{Name: name, Path: p})
	}
	return games
}
