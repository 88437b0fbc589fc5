package processing

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/systemstart/toy-components/pkg/api"
)

// DefaultManifestPattern matches component manifests anywhere below the root.
const DefaultManifestPattern = "**/*.component.yaml"

// DiscoverComponents returns the manifest files below root matching any of
// the doublestar patterns, sorted and deduplicated. No patterns means
// DefaultManifestPattern.
func DiscoverComponents(root string, patterns []string) ([]string, error) {
	if len(patterns) == 0 {
		patterns = []string{DefaultManifestPattern}
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving root path: %w", err)
	}

	fsys := os.DirFS(absRoot)
	var matches []string
	for _, pattern := range patterns {
		found, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("glob %q: %w", pattern, err)
		}
		for _, m := range found {
			matches = append(matches, filepath.Join(absRoot, filepath.FromSlash(m)))
		}
	}

	slices.Sort(matches)
	return slices.Compact(matches), nil
}

// ValidateComponents loads every manifest in paths and returns the ones that
// failed, keyed by path. Loaded components are returned in path order.
func ValidateComponents(paths []string) ([]*api.Component, map[string]error) {
	components := make([]*api.Component, 0, len(paths))
	failures := make(map[string]error)

	for _, p := range paths {
		c, err := api.LoadComponent(p)
		if err != nil {
			failures[p] = err
			continue
		}
		components = append(components, c)
	}
	return components, failures
}
