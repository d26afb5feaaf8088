// Package rdfio provides the parsing collaborators for ontology analysis:
// RDF file loading with format fallback, an indexed in-memory corpus graph,
// declared-prefix scanning, XML-Schema import scanning, and file discovery.
package rdfio

import (
	"fmt"

	"github.com/knakk/rdf"
)

// Graph is an in-memory collection of RDF triples with lookup indexes.
// It deduplicates triples on insertion, so a graph behaves as a set:
//   - SPO index: subject -> predicate -> objects (facts about a subject)
//   - POS index: predicate -> object -> subjects (subjects with property=value)
type Graph struct {
	triples []rdf.Triple
	seen    map[string]bool

	spo map[string]map[string][]rdf.Object
	pos map[string]map[string][]rdf.Subject
}

// NewGraph creates an empty graph with all indexes initialized.
func NewGraph() *Graph {
	return &Graph{
		seen: make(map[string]bool),
		spo:  make(map[string]map[string][]rdf.Object),
		pos:  make(map[string]map[string][]rdf.Subject),
	}
}

// Add inserts a triple. Duplicate triples are ignored (idempotent).
func (g *Graph) Add(t rdf.Triple) {
	key := tripleKey(t)
	if g.seen[key] {
		return
	}
	g.seen[key] = true
	g.triples = append(g.triples, t)

	s := termKey(t.Subj)
	p := termKey(t.Pred)
	o := termKey(t.Obj)

	if g.spo[s] == nil {
		g.spo[s] = make(map[string][]rdf.Object)
	}
	g.spo[s][p] = append(g.spo[s][p], t.Obj)

	if g.pos[p] == nil {
		g.pos[p] = make(map[string][]rdf.Subject)
	}
	g.pos[p][o] = append(g.pos[p][o], t.Subj)
}

// Merge copies all triples from other into g. Duplicates are skipped.
func (g *Graph) Merge(other *Graph) {
	for _, t := range other.triples {
		g.Add(t)
	}
}

// Len returns the number of distinct triples in the graph.
func (g *Graph) Len() int {
	return len(g.triples)
}

// Triples returns all triples in insertion order.
func (g *Graph) Triples() []rdf.Triple {
	return g.triples
}

// SubjectsWithType returns the subjects typed as the given class IRI,
// in insertion order.
func (g *Graph) SubjectsWithType(class string) []rdf.Subject {
	oMap := g.pos[iriKey(rdfTypeIRI)]
	if oMap == nil {
		return nil
	}
	return oMap[iriKey(class)]
}

// Objects returns the objects of all (subj, pred, ?) triples, in insertion
// order. The predicate is given as an IRI string.
func (g *Graph) Objects(subj rdf.Subject, pred string) []rdf.Object {
	pMap := g.spo[termKey(subj)]
	if pMap == nil {
		return nil
	}
	return pMap[iriKey(pred)]
}

// FirstLiteral returns the string value of the first literal-valued object
// for (subj, pred), or "" when none exists.
func (g *Graph) FirstLiteral(subj rdf.Subject, pred string) string {
	for _, o := range g.Objects(subj, pred) {
		if o.Type() == rdf.TermLiteral {
			return o.String()
		}
	}
	return ""
}

// rdfTypeIRI duplicates vocab.RDFType to keep rdfio free of upward imports.
const rdfTypeIRI = "http://www.w3.org/1999/02/22-rdf-syntax-ns#type"

// termKey builds an index key that cannot collide across term kinds.
func termKey(t rdf.Term) string {
	switch t.Type() {
	case rdf.TermIRI:
		return "i|" + t.String()
	case rdf.TermBlank:
		return "b|" + t.String()
	default:
		return "l|" + t.String()
	}
}

// iriKey builds the index key for an IRI given as a plain string.
func iriKey(iri string) string {
	return "i|" + iri
}

// tripleKey uniquely identifies a triple for deduplication.
func tripleKey(t rdf.Triple) string {
	return fmt.Sprintf("%s\x00%s\x00%s", termKey(t.Subj), termKey(t.Pred), termKey(t.Obj))
}
