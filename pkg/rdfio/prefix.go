package rdfio

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strings"
)

// PrefixTable records declared (prefix, namespace) pairs for a corpus.
// Registration order is preserved and the first registration of a prefix
// wins; later declarations of the same prefix are ignored.
type PrefixTable struct {
	entries  []PrefixEntry
	byPrefix map[string]bool
}

// PrefixEntry is one declared prefix binding.
type PrefixEntry struct {
	Prefix    string
	Namespace string
}

// NewPrefixTable creates an empty prefix table.
func NewPrefixTable() *PrefixTable {
	return &PrefixTable{byPrefix: make(map[string]bool)}
}

// Register adds a prefix binding. The first registration of a prefix wins.
func (pt *PrefixTable) Register(prefix, namespace string) {
	if namespace == "" || pt.byPrefix[prefix] {
		return
	}
	pt.byPrefix[prefix] = true
	pt.entries = append(pt.entries, PrefixEntry{Prefix: prefix, Namespace: namespace})
}

// Merge registers all of other's bindings, preserving first-wins priority.
func (pt *PrefixTable) Merge(other *PrefixTable) {
	for _, e := range other.entries {
		pt.Register(e.Prefix, e.Namespace)
	}
}

// Entries returns all bindings in registration order.
func (pt *PrefixTable) Entries() []PrefixEntry {
	return pt.entries
}

// Len returns the number of registered prefixes.
func (pt *PrefixTable) Len() int {
	return len(pt.entries)
}

var (
	// @prefix ex: <http://example.org/> .  /  PREFIX ex: <http://example.org/>
	turtlePrefixRe = regexp.MustCompile(`(?i)^\s*@?prefix\s+([A-Za-z][\w.-]*)?:\s*<([^>]+)>`)

	// xmlns:ex="http://example.org/"
	xmlnsRe = regexp.MustCompile(`xmlns:([A-Za-z][\w.-]*)\s*=\s*"([^"]+)"`)
)

// ScanPrefixes collects declared prefixes from one file. Both Turtle-style
// @prefix/PREFIX lines and RDF/XML xmlns attributes are recognized; the
// default (empty) Turtle prefix is skipped since it cannot serve as a short
// identifier.
func ScanPrefixes(path string) (*PrefixTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	table := NewPrefixTable()
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()

		if m := turtlePrefixRe.FindStringSubmatch(line); m != nil && m[1] != "" {
			table.Register(m[1], m[2])
		}
		for _, m := range xmlnsRe.FindAllStringSubmatch(line, -1) {
			if !strings.EqualFold(m[1], "xml") {
				table.Register(m[1], m[2])
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", path, err)
	}

	return table, nil
}
