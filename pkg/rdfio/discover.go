package rdfio

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// discoverSuffixes is the set of extensions treated as ontology documents.
// Extensionless files are also accepted and format-sniffed later.
var discoverSuffixes = map[string]bool{
	".ttl":    true,
	".rdf":    true,
	".owl":    true,
	".xml":    true,
	".xsd":    true,
	".nt":     true,
	".n3":     true,
	".trig":   true,
	".jsonld": true,
	".rj":     true,
}

// DiscoverFiles walks dir recursively and returns the ontology-like files,
// sorted by path. The optional include and exclude arguments are doublestar
// glob patterns matched against the path relative to dir; a file must match
// at least one include pattern (when any are given) and no exclude pattern.
func DiscoverFiles(dir string, include, exclude []string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if ext != "" && !discoverSuffixes[ext] {
			return nil
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			rel = path
		}
		rel = filepath.ToSlash(rel)

		ok, err := matchGlobs(rel, include, exclude)
		if err != nil {
			return err
		}
		if ok {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", dir, err)
	}

	sort.Strings(files)
	return files, nil
}

// matchGlobs applies include/exclude doublestar patterns to a relative path.
func matchGlobs(rel string, include, exclude []string) (bool, error) {
	if len(include) > 0 {
		matched := false
		for _, pattern := range include {
			ok, err := doublestar.Match(pattern, rel)
			if err != nil {
				return false, fmt.Errorf("invalid include pattern %q: %w", pattern, err)
			}
			if ok {
				matched = true
				break
			}
		}
		if !matched {
			return false, nil
		}
	}

	for _, pattern := range exclude {
		ok, err := doublestar.Match(pattern, rel)
		if err != nil {
			return false, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}
		if ok {
			return false, nil
		}
	}
	return true, nil
}
