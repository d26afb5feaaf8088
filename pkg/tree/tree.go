// Package tree extracts per-ontology class/property/individual trees and
// writes one ontology-tree.yaml into each ontology folder.
package tree

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/coolbeans/ontograph/pkg/rdfio"
	"github.com/coolbeans/ontograph/pkg/vocab"
	"github.com/knakk/rdf"
)

// OutputName is the filename written into each ontology folder.
const OutputName = "ontology-tree.yaml"

// ClassInfo describes one declared class.
type ClassInfo struct {
	Label   string   `yaml:"label,omitempty"`
	Comment string   `yaml:"comment,omitempty"`
	Parents []string `yaml:"parents"`
}

// PropertyInfo describes one declared property.
type PropertyInfo struct {
	Label   string   `yaml:"label,omitempty"`
	Comment string   `yaml:"comment,omitempty"`
	Domain  []string `yaml:"domain"`
	Range   []string `yaml:"range"`
}

// IndividualInfo describes one typed resource that is neither a class nor a
// property.
type IndividualInfo struct {
	Types []string `yaml:"types"`
}

// Tree is the extracted structure of one ontology folder.
type Tree struct {
	Classes     map[string]*ClassInfo      `yaml:"classes"`
	Properties  map[string]*PropertyInfo   `yaml:"properties"`
	Individuals map[string]*IndividualInfo `yaml:"individuals"`
}

// treePropertyTypes are the property-declaring classes recognized by the
// tree extractor. Unlike the analyzer's classification set, it does not
// include owl:OntologyProperty.
var treePropertyTypes = []string{
	vocab.RDFProperty,
	vocab.OWLObjectProperty,
	vocab.OWLDatatypeProperty,
	vocab.OWLAnnotationProperty,
}

// Extract builds the class/property/individual tree of a merged graph.
func Extract(g *rdfio.Graph) *Tree {
	t := &Tree{
		Classes:     make(map[string]*ClassInfo),
		Properties:  make(map[string]*PropertyInfo),
		Individuals: make(map[string]*IndividualInfo),
	}

	for _, cls := range g.SubjectsWithType(vocab.OWLClass) {
		if cls.Type() != rdf.TermIRI {
			continue
		}
		t.Classes[cls.String()] = &ClassInfo{
			Label:   label(g, cls),
			Comment: comment(g, cls),
			Parents: objectStrings(g, cls, vocab.RDFSSubClassOf),
		}
	}

	for _, ptype := range treePropertyTypes {
		for _, prop := range g.SubjectsWithType(ptype) {
			if prop.Type() != rdf.TermIRI {
				continue
			}
			t.Properties[prop.String()] = &PropertyInfo{
				Label:   label(g, prop),
				Comment: comment(g, prop),
				Domain:  objectStrings(g, prop, vocab.RDFSDomain),
				Range:   objectStrings(g, prop, vocab.RDFSRange),
			}
		}
	}

	for _, triple := range g.Triples() {
		if triple.Pred.Type() != rdf.TermIRI || triple.Pred.String() != vocab.RDFType {
			continue
		}
		if triple.Subj.Type() != rdf.TermIRI {
			continue
		}
		uri := triple.Subj.String()
		if _, isClass := t.Classes[uri]; isClass {
			continue
		}
		if _, isProperty := t.Properties[uri]; isProperty {
			continue
		}
		if _, seen := t.Individuals[uri]; seen {
			continue
		}
		t.Individuals[uri] = &IndividualInfo{
			Types: objectStrings(g, triple.Subj, vocab.RDFType),
		}
	}

	return t
}

// label returns the node's rdfs:label, falling back to dcterms:title.
func label(g *rdfio.Graph, node rdf.Subject) string {
	for _, pred := range []string{vocab.RDFSLabel, vocab.DCTermsTitle} {
		if v := g.FirstLiteral(node, pred); v != "" {
			return v
		}
	}
	return ""
}

// comment returns the node's rdfs:comment, falling back to dcterms:description.
func comment(g *rdfio.Graph, node rdf.Subject) string {
	for _, pred := range []string{vocab.RDFSComment, vocab.DCTermsDescription} {
		if v := g.FirstLiteral(node, pred); v != "" {
			return v
		}
	}
	return ""
}

// objectStrings collects the string forms of all objects of (node, pred).
func objectStrings(g *rdfio.Graph, node rdf.Subject, pred string) []string {
	objs := g.Objects(node, pred)
	out := make([]string, 0, len(objs))
	for _, o := range objs {
		out = append(out, o.String())
	}
	return out
}

// ScanFolders returns the subdirectories of base whose names contain any of
// the case-insensitive filter substrings; with no filters, all
// subdirectories are returned, sorted.
func ScanFolders(base string, filters []string) ([]string, error) {
	entries, err := os.ReadDir(base)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", base, err)
	}

	var dirs []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if matchesFolder(entry.Name(), filters) {
			dirs = append(dirs, filepath.Join(base, entry.Name()))
		}
	}
	sort.Strings(dirs)
	return dirs, nil
}

func matchesFolder(name string, filters []string) bool {
	if len(filters) == 0 {
		return true
	}
	lower := strings.ToLower(name)
	for _, f := range filters {
		if strings.Contains(lower, strings.ToLower(f)) {
			return true
		}
	}
	return false
}

// Generate extracts a tree for every matching ontology folder under base
// and writes it into the folder as ontology-tree.yaml. Folders with no
// parseable RDF files are skipped; per-folder failures are logged, not
// fatal.
func Generate(base string, filters []string) error {
	folders, err := ScanFolders(base, filters)
	if err != nil {
		return err
	}
	if len(folders) == 0 {
		return fmt.Errorf("no ontology folders matched filters %v under %s", filters, base)
	}

	for _, folder := range folders {
		files, err := rdfio.DiscoverFiles(folder, nil, nil)
		if err != nil {
			log.Printf("failed to list files in %s: %v", folder, err)
			continue
		}

		merged := rdfio.NewGraph()
		parsed := 0
		for _, file := range files {
			if rdfio.LooksLikeSchema(file) {
				continue
			}
			if _, err := rdfio.LoadFile(file, merged); err != nil {
				log.Printf("skipping %s: %v", file, err)
				continue
			}
			parsed++
		}
		if parsed == 0 {
			continue
		}

		t := Extract(merged)
		data, err := yaml.Marshal(t)
		if err != nil {
			log.Printf("failed to marshal tree for %s: %v", folder, err)
			continue
		}
		outPath := filepath.Join(folder, OutputName)
		if err := os.WriteFile(outPath, data, 0o644); err != nil {
			log.Printf("failed to write %s: %v", outPath, err)
		}
	}

	return nil
}
