package config

import (
	"path/filepath"

	"go.trai.ch/cookbook/internal/core/domain"
	"go.trai.ch/zerr"
)

// expandSeeds resolves seed patterns against dir and expands globs.
// Literal paths are kept even if missing so LoadSeed can report them.
// The result keeps configuration order and drops repeated files.
func expandSeeds(patterns []string, dir string) ([]string, error) {
	seen := make(map[string]bool)
	paths := make([]string, 0, len(patterns))

	add := func(path string) {
		if !seen[path] {
			seen[path] = true
			paths = append(paths, path)
		}
	}

	for _, pattern := range patterns {
		if !filepath.IsAbs(pattern) {
			pattern = filepath.Join(dir, pattern)
		}

		if !hasMeta(pattern) {
			add(pattern)
			continue
		}

		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to glob seed pattern"), "pattern", pattern)
		}
		if len(matches) == 0 {
			return nil, zerr.With(zerr.Wrap(domain.ErrSeedNotFound, "failed to expand seeds"), "pattern", pattern)
		}

		// Glob returns matches in lexical order.
		for _, match := range matches {
			add(match)
		}
	}

	return paths, nil
}

func hasMeta(path string) bool {
	for _, c := range path {
		switch c {
		case '*', '?', '[', '\\':
			return true
		}
	}
	return false
}
