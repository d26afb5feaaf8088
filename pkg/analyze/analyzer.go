package analyze

import (
	"sort"

	"github.com/coolbeans/ontograph/pkg/rdfio"
	"github.com/coolbeans/ontograph/pkg/vocab"
	"github.com/knakk/rdf"
)

// UnknownNamespace is the sentinel under which entirely unattributable input
// is accumulated. It keeps degenerate inputs visible in the output instead
// of silently dropping them.
const UnknownNamespace = "unknown"

// NamespaceStats accumulates per-namespace counters and provenance while
// files are processed.
type NamespaceStats struct {
	Namespace   string
	Files       map[string]bool
	Triples     int
	Classes     int
	Properties  int
	Individuals int
	Label       string
	Description string
}

// Analyzer accumulates ontology statistics, cross-namespace references and
// explicit imports across multiple RDF and XSD files. It is constructed
// empty for one analysis run, mutated only through its own methods, and
// consumed once by BuildDocument.
type Analyzer struct {
	namespaces map[string]*NamespaceStats
	references map[string]map[string]int
	imports    map[string]map[string]bool
}

// NewAnalyzer creates an empty analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		namespaces: make(map[string]*NamespaceStats),
		references: make(map[string]map[string]int),
		imports:    make(map[string]map[string]bool),
	}
}

// ensure returns the stats entry for a raw namespace, creating it on first
// use. An absent ("") or unnormalizable namespace falls back to the
// UnknownNamespace sentinel.
func (a *Analyzer) ensure(raw string) *NamespaceStats {
	ns, ok := Normalize(raw)
	if !ok {
		ns = UnknownNamespace
	}
	stats, exists := a.namespaces[ns]
	if !exists {
		stats = &NamespaceStats{Namespace: ns, Files: make(map[string]bool)}
		a.namespaces[ns] = stats
	}
	return stats
}

// addReference accumulates weight on the (src, dst) reference edge.
// Self-references and edges with an absent endpoint are never recorded.
func (a *Analyzer) addReference(rawSrc, rawDst string, weight int) {
	src, srcOK := Normalize(rawSrc)
	dst, dstOK := Normalize(rawDst)
	if !srcOK || !dstOK || src == dst {
		return
	}
	// Both endpoints must surface in the final node list.
	a.ensure(src)
	a.ensure(dst)
	if a.references[src] == nil {
		a.references[src] = make(map[string]int)
	}
	a.references[src][dst] += weight
}

// addImport records an explicit import declaration. Every import also
// contributes weight 1 to the reference table; the reverse does not hold.
func (a *Analyzer) addImport(rawSrc, rawDst string) {
	src, srcOK := Normalize(rawSrc)
	dst, dstOK := Normalize(rawDst)
	if !srcOK || !dstOK || src == dst {
		return
	}
	if a.imports[src] == nil {
		a.imports[src] = make(map[string]bool)
	}
	a.imports[src][dst] = true
	a.addReference(src, dst, 1)
}

// ProcessGraph folds one parsed RDF file into the accumulators: file
// attribution and triple counts, rdf:type classification, cross-namespace
// reference detection, and owl:imports tracking.
func (a *Analyzer) ProcessGraph(path string, g *rdfio.Graph) {
	for _, t := range g.Triples() {
		// File attribution and triple count, once per triple.
		if sns, ok := TermNamespace(t.Subj); ok {
			stats := a.ensure(sns)
			stats.Files[path] = true
			stats.Triples++
		}

		// Classification of typed resources.
		if isIRI(t.Pred, vocab.RDFType) && t.Subj.Type() == rdf.TermIRI && t.Obj.Type() == rdf.TermIRI {
			if sns, ok := TermNamespace(t.Subj); ok {
				stats := a.ensure(sns)
				obj := t.Obj.String()
				switch {
				case vocab.IsClassType(obj):
					stats.Classes++
				case vocab.IsPropertyType(obj):
					stats.Properties++
				default:
					stats.Individuals++
				}
			}
		}

		a.detectReferences(t)
	}

	a.trackImports(path, g)
}

// referenceRules are the independent cross-namespace detection rules. Each
// rule either yields one candidate (source, destination) pair or nothing; a
// single triple may satisfy several rules and contribute several units of
// weight between the same pair.
var referenceRules = []func(t rdf.Triple, sns, pns, ons string) (string, string, bool){
	// Subject uses a predicate from a foreign namespace.
	func(t rdf.Triple, sns, pns, ons string) (string, string, bool) {
		if sns != "" && pns != "" && sns != pns {
			return sns, pns, true
		}
		return "", "", false
	},
	// Subject is typed as a class from a foreign namespace.
	func(t rdf.Triple, sns, pns, ons string) (string, string, bool) {
		if isIRI(t.Pred, vocab.RDFType) && sns != "" && ons != "" && sns != ons {
			return sns, ons, true
		}
		return "", "", false
	},
	// Alignment predicate pointing at a foreign namespace.
	func(t rdf.Triple, sns, pns, ons string) (string, string, bool) {
		if t.Pred.Type() == rdf.TermIRI && vocab.IsDependencyPredicate(t.Pred.String()) &&
			sns != "" && ons != "" && sns != ons {
			return sns, ons, true
		}
		return "", "", false
	},
}

// detectReferences applies every detection rule to one triple.
func (a *Analyzer) detectReferences(t rdf.Triple) {
	sns, _ := TermNamespace(t.Subj)
	pns, _ := TermNamespace(t.Pred)
	ons, _ := TermNamespace(t.Obj)

	for _, rule := range referenceRules {
		if src, dst, ok := rule(t, sns, pns, ons); ok {
			a.addReference(src, dst, 1)
		}
	}
}

// trackImports records file attribution and owl:imports declarations for
// every resource declared as an ontology in the file.
func (a *Analyzer) trackImports(path string, g *rdfio.Graph) {
	for _, onto := range g.SubjectsWithType(vocab.OWLOntology) {
		if onto.Type() != rdf.TermIRI {
			continue
		}
		ontoNS, _ := TermNamespace(onto)
		stats := a.ensure(ontoNS)
		stats.Files[path] = true

		for _, imported := range g.Objects(onto, vocab.OWLImports) {
			if imported.Type() != rdf.TermIRI {
				continue
			}
			impNS, ok := TermNamespace(imported)
			if !ok {
				continue
			}
			a.ensure(impNS)
			a.addImport(ontoNS, impNS)
		}
	}
}

// ProcessSchema folds one XML-Schema file into the accumulators. A schema
// without a target namespace stays visible under a file-derived name.
func (a *Analyzer) ProcessSchema(path string, schema *rdfio.Schema) {
	tns, ok := Normalize(schema.TargetNamespace)
	if !ok {
		tns = schema.FallbackNamespace()
	}
	stats := a.ensure(tns)
	stats.Files[path] = true

	for _, raw := range schema.Imports {
		ns, ok := Normalize(raw)
		if !ok {
			continue
		}
		a.ensure(ns)
		a.addImport(tns, ns)
	}
}

// AttachDescriptions walks every declared ontology in the merged corpus and
// attaches the first available label and description along the preference
// lists. Already-set values are never overwritten: first writer wins across
// files contributing to the same namespace.
func (a *Analyzer) AttachDescriptions(corpus *rdfio.Graph) {
	for _, onto := range corpus.SubjectsWithType(vocab.OWLOntology) {
		if onto.Type() != rdf.TermIRI {
			continue
		}
		ns, _ := TermNamespace(onto)
		stats := a.ensure(ns)

		if stats.Label == "" {
			for _, pred := range vocab.LabelPreference {
				if objs := corpus.Objects(onto, pred); len(objs) > 0 {
					stats.Label = objs[0].String()
					break
				}
			}
		}
		if stats.Description == "" {
			for _, pred := range vocab.DescriptionPreference {
				if objs := corpus.Objects(onto, pred); len(objs) > 0 {
					stats.Description = objs[0].String()
					break
				}
			}
		}
	}
}

// Namespaces returns every observed namespace, sorted.
func (a *Analyzer) Namespaces() []string {
	names := make([]string, 0, len(a.namespaces))
	for ns := range a.namespaces {
		names = append(names, ns)
	}
	sort.Strings(names)
	return names
}

// StatsFor returns the accumulated statistics for a namespace, or nil when
// the namespace was never observed.
func (a *Analyzer) StatsFor(ns string) *NamespaceStats {
	return a.namespaces[ns]
}

// FilesByNamespace returns the sorted contributing files per namespace,
// used to associate sidecar metadata records with namespaces.
func (a *Analyzer) FilesByNamespace() map[string][]string {
	out := make(map[string][]string, len(a.namespaces))
	for ns, stats := range a.namespaces {
		out[ns] = sortedKeys(stats.Files)
	}
	return out
}

// ReferenceWeight returns the accumulated weight on the (src, dst) edge.
func (a *Analyzer) ReferenceWeight(src, dst string) int {
	return a.references[src][dst]
}

// HasImport reports whether src explicitly imports dst.
func (a *Analyzer) HasImport(src, dst string) bool {
	return a.imports[src][dst]
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// isIRI reports whether a term is the given IRI.
func isIRI(t rdf.Term, iri string) bool {
	return t.Type() == rdf.TermIRI && t.String() == iri
}
