// Package fetch downloads ontology definition files listed in a catalogue
// YAML into per-ontology directories, writing a metadata.yaml sidecar next
// to each ontology's files.
package fetch

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/coolbeans/ontograph/pkg/analyze"
	"github.com/coolbeans/ontograph/pkg/metadata"
)

// DefaultTimeout is the default per-download timeout.
const DefaultTimeout = 20 * time.Second

// CatalogueEntry describes one ontology in the catalogue: its name, the
// keyword tags used for selection, and the definition URLs to download.
// Extra fields are preserved and copied into the sidecar record.
type CatalogueEntry struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description,omitempty"`
	Homepage    string         `yaml:"homepage,omitempty"`
	Keywords    []string       `yaml:"keywords,omitempty"`
	Definitions []string       `yaml:"definitions,omitempty"`
	Extra       map[string]any `yaml:",inline"`
}

// Catalogue is the top-level structure of the catalogue file.
type Catalogue struct {
	Ontologies []CatalogueEntry `yaml:"ontologies"`
}

// LoadCatalogue reads and parses a catalogue YAML file.
func LoadCatalogue(path string) (*Catalogue, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalogue %s: %w", path, err)
	}
	var catalogue Catalogue
	if err := yaml.Unmarshal(data, &catalogue); err != nil {
		return nil, fmt.Errorf("failed to parse catalogue %s: %w", path, err)
	}
	return &catalogue, nil
}

// Report summarizes one fetch run.
type Report struct {
	Selected   int
	Downloaded int
	Failed     int
}

// Fetcher downloads catalogue entries into an output directory.
type Fetcher struct {
	client    *http.Client
	outputDir string
}

// NewFetcher creates a fetcher writing under outputDir. A zero timeout
// falls back to DefaultTimeout. Redirects are followed by the client; the
// saved filename is derived from the final URL.
func NewFetcher(outputDir string, timeout time.Duration) *Fetcher {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Fetcher{
		client:    &http.Client{Timeout: timeout},
		outputDir: outputDir,
	}
}

// FetchAll downloads every catalogue entry whose keywords match the
// patterns. Individual download failures are logged and skipped; the
// sidecar is written even when an entry has nothing to download.
func (f *Fetcher) FetchAll(catalogue *Catalogue, patterns []string) (*Report, error) {
	if err := os.MkdirAll(f.outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory %s: %w", f.outputDir, err)
	}

	report := &Report{}
	for _, entry := range catalogue.Ontologies {
		if !analyze.MatchKeywords(entry.Keywords, patterns) {
			continue
		}
		report.Selected++

		name := entry.Name
		if name == "" {
			name = "unknown"
		}
		subdir := filepath.Join(f.outputDir, SafeName(name))
		if err := os.MkdirAll(subdir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create directory %s: %w", subdir, err)
		}

		var downloaded []string
		for _, url := range entry.Definitions {
			filename, err := f.download(url, subdir)
			if err != nil {
				log.Printf("failed to download %s: %v", url, err)
				report.Failed++
				continue
			}
			downloaded = append(downloaded, filename)
			report.Downloaded++
		}

		if err := writeSidecar(subdir, entry, downloaded); err != nil {
			log.Printf("failed to write metadata for %s: %v", name, err)
		}
	}

	return report, nil
}

// download retrieves one definition URL into dir and returns the saved
// filename, derived from the final (post-redirect) URL path.
func (f *Fetcher) download(url, dir string) (string, error) {
	resp, err := f.client.Get(url)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	filename := path.Base(resp.Request.URL.Path)
	if filename == "" || filename == "." || filename == "/" {
		filename = "definition"
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, filename), data, 0o644); err != nil {
		return "", fmt.Errorf("failed to save %s: %w", filename, err)
	}
	return filename, nil
}

// writeSidecar stores the catalogue entry, plus the list of files actually
// downloaded, as the ontology directory's metadata.yaml.
func writeSidecar(dir string, entry CatalogueEntry, downloaded []string) error {
	record := metadata.Record{
		Name:            entry.Name,
		Description:     entry.Description,
		Homepage:        entry.Homepage,
		Keywords:        entry.Keywords,
		DownloadedFiles: downloaded,
		Extra:           entry.Extra,
	}
	data, err := yaml.Marshal(&record)
	if err != nil {
		return fmt.Errorf("failed to marshal metadata: %w", err)
	}
	return os.WriteFile(filepath.Join(dir, metadata.SidecarName), data, 0o644)
}

var safeNameReplacer = strings.NewReplacer(
	" ", "_",
	"/", "_",
	"(", "",
	")", "",
	",", "",
)

// SafeName lowercases an ontology name and strips characters that do not
// belong in a directory name.
func SafeName(name string) string {
	return safeNameReplacer.Replace(strings.ToLower(name))
}
