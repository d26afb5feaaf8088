package rdfio

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/knakk/rdf"
)

// rdfSuffixes maps file extensions to the serialization format to try first.
// TriG inputs are attempted as Turtle; files using named graph blocks fall
// through the fallback chain and are reported as unparseable.
var rdfSuffixes = map[string]rdf.Format{
	".ttl":    rdf.Turtle,
	".nt":     rdf.NTriples,
	".n3":     rdf.Turtle,
	".nq":     rdf.NQuads,
	".trig":   rdf.Turtle,
	".rdf":    rdf.RDFXML,
	".owl":    rdf.RDFXML,
	".xml":    rdf.RDFXML,
	".jsonld": rdf.RDFXML,
	".rj":     rdf.RDFXML,
}

// fallbackFormats is the order in which formats are retried when the
// extension-suggested format fails or the file has no known extension.
var fallbackFormats = []rdf.Format{rdf.Turtle, rdf.RDFXML, rdf.NTriples, rdf.NQuads}

// LoadFile parses one RDF file into a fresh graph and merges the triples
// into corpus. The format suggested by the file extension is tried first,
// then each fallback format in turn. Returns an error only when the file
// cannot be read or no format parses it.
func LoadFile(path string, corpus *Graph) (*Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	formats := formatCandidates(path)
	var lastErr error
	for _, format := range formats {
		g, err := decodeAll(data, format)
		if err != nil {
			lastErr = err
			continue
		}
		if corpus != nil {
			corpus.Merge(g)
		}
		return g, nil
	}

	return nil, fmt.Errorf("could not parse %s in any RDF format: %w", path, lastErr)
}

// formatCandidates returns the formats to try for a path, preferred first.
func formatCandidates(path string) []rdf.Format {
	preferred, ok := rdfSuffixes[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return fallbackFormats
	}
	formats := []rdf.Format{preferred}
	for _, f := range fallbackFormats {
		if f != preferred {
			formats = append(formats, f)
		}
	}
	return formats
}

// decodeAll parses a byte slice in the given format into a new graph.
// N-Quads go through the quad decoder with the graph context discarded.
func decodeAll(data []byte, format rdf.Format) (*Graph, error) {
	g := NewGraph()

	if format == rdf.NQuads {
		dec := rdf.NewQuadDecoder(bytes.NewReader(data), format)
		for {
			q, err := dec.Decode()
			if err == io.EOF {
				break
			}
			if err != nil {
				return nil, err
			}
			g.Add(q.Triple)
		}
	} else {
		dec := rdf.NewTripleDecoder(bytes.NewReader(data), format)
		for {
			t, err := dec.Decode()
			if err == io.EOF {
				break
			}
			if err != nil {
				return nil, err
			}
			g.Add(t)
		}
	}

	if g.Len() == 0 {
		// An empty parse of a non-empty file usually means the wrong
		// format was silently tolerated; let the next format try.
		if len(bytes.TrimSpace(data)) > 0 {
			return nil, fmt.Errorf("no triples decoded")
		}
	}
	return g, nil
}
