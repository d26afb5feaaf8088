// Package metadata loads the optional metadata.yaml sidecar records that
// describe downloaded ontologies, and associates them with namespaces via
// file provenance.
package metadata

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SidecarName is the filename looked up next to each ontology document.
const SidecarName = "metadata.yaml"

// Record is one sidecar metadata record. Catalogue entries carry arbitrary
// extra fields, which are preserved on the Extra map.
type Record struct {
	Name            string         `yaml:"name,omitempty"`
	Description     string         `yaml:"description,omitempty"`
	Homepage        string         `yaml:"homepage,omitempty"`
	Keywords        []string       `yaml:"keywords,omitempty"`
	DownloadedFiles []string       `yaml:"downloaded_files,omitempty"`
	Extra           map[string]any `yaml:",inline"`
}

// LoadForFile reads the metadata.yaml sitting next to a data file. A
// missing sidecar is not an error: both return values are nil.
func LoadForFile(path string) (*Record, error) {
	sidecar := filepath.Join(filepath.Dir(path), SidecarName)
	data, err := os.ReadFile(sidecar)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", sidecar, err)
	}

	var record Record
	if err := yaml.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", sidecar, err)
	}
	return &record, nil
}

// Associate maps records onto namespaces via file provenance: for each
// namespace, the first contributing file (in sorted order) that carries a
// record wins. Namespaces with no attributed record are absent from the
// result and treated as having no keywords.
func Associate(filesByNamespace map[string][]string, byFile map[string]*Record) map[string]*Record {
	byNamespace := make(map[string]*Record)
	for ns, files := range filesByNamespace {
		for _, file := range files {
			if record, ok := byFile[file]; ok && record != nil {
				byNamespace[ns] = record
				break
			}
		}
	}
	return byNamespace
}

// Keywords projects an association down to the keyword lists consulted by
// the document filter.
func Keywords(byNamespace map[string]*Record) map[string][]string {
	out := make(map[string][]string, len(byNamespace))
	for ns, record := range byNamespace {
		out[ns] = record.Keywords
	}
	return out
}
