package analyze

import (
	"testing"

	"github.com/coolbeans/ontograph/pkg/rdfio"
	"github.com/coolbeans/ontograph/pkg/vocab"
	"github.com/knakk/rdf"
)

func mustIRI(t *testing.T, s string) rdf.IRI {
	t.Helper()
	iri, err := rdf.NewIRI(s)
	if err != nil {
		t.Fatalf("NewIRI(%q) failed: %v", s, err)
	}
	return iri
}

func mustLiteral(t *testing.T, s string) rdf.Literal {
	t.Helper()
	lit, err := rdf.NewLiteral(s)
	if err != nil {
		t.Fatalf("NewLiteral(%q) failed: %v", s, err)
	}
	return lit
}

// buildTestGraph assembles a graph from (subject, predicate, object) IRI
// triples.
func buildTestGraph(t *testing.T, triples [][3]string) *rdfio.Graph {
	t.Helper()
	g := rdfio.NewGraph()
	for _, spo := range triples {
		g.Add(rdf.Triple{
			Subj: mustIRI(t, spo[0]),
			Pred: mustIRI(t, spo[1]),
			Obj:  mustIRI(t, spo[2]),
		})
	}
	return g
}

func TestAnalyzer_ProcessGraph_Classification(t *testing.T) {
	g := buildTestGraph(t, [][3]string{
		{"http://a.org/alpha#Person", vocab.RDFType, vocab.OWLClass},
		{"http://a.org/alpha#Agent", vocab.RDFType, vocab.RDFSClass},
		{"http://a.org/alpha#name", vocab.RDFType, vocab.OWLDatatypeProperty},
		{"http://a.org/alpha#alice", vocab.RDFType, "http://a.org/alpha#Person"},
	})

	a := NewAnalyzer()
	a.ProcessGraph("alpha.ttl", g)

	stats := a.StatsFor("http://a.org/alpha")
	if stats == nil {
		t.Fatal("namespace http://a.org/alpha not observed")
	}
	if stats.Triples != 4 {
		t.Errorf("Triples: got %d, want 4", stats.Triples)
	}
	if stats.Classes != 2 {
		t.Errorf("Classes: got %d, want 2", stats.Classes)
	}
	if stats.Properties != 1 {
		t.Errorf("Properties: got %d, want 1", stats.Properties)
	}
	if stats.Individuals != 1 {
		t.Errorf("Individuals: got %d, want 1", stats.Individuals)
	}
	if !stats.Files["alpha.ttl"] {
		t.Error("file alpha.ttl not attributed to namespace")
	}
}

func TestAnalyzer_ReferenceRulesCompound(t *testing.T) {
	// One triple can satisfy several rules: a foreign predicate plus a
	// foreign object behind an alignment predicate.
	g := buildTestGraph(t, [][3]string{
		{"http://a.org/alpha#X", vocab.RDFSSubClassOf, "http://b.org/beta#Y"},
	})

	a := NewAnalyzer()
	a.ProcessGraph("alpha.ttl", g)

	if got := a.ReferenceWeight("http://a.org/alpha", "http://b.org/beta"); got != 1 {
		t.Errorf("alpha->beta weight: got %d, want 1", got)
	}
	if got := a.ReferenceWeight("http://a.org/alpha", "http://www.w3.org/2000/01/rdf-schema"); got != 1 {
		t.Errorf("alpha->rdfs weight: got %d, want 1", got)
	}
}

func TestAnalyzer_TypedAsForeignClass(t *testing.T) {
	g := buildTestGraph(t, [][3]string{
		{"http://a.org/alpha#alice", vocab.RDFType, "http://b.org/beta#Person"},
	})

	a := NewAnalyzer()
	a.ProcessGraph("alpha.ttl", g)

	// Rule coverage: predicate namespace (rdf) and object namespace (beta).
	if got := a.ReferenceWeight("http://a.org/alpha", "http://b.org/beta"); got != 1 {
		t.Errorf("alpha->beta weight: got %d, want 1", got)
	}
	if got := a.ReferenceWeight("http://a.org/alpha", "http://www.w3.org/1999/02/22-rdf-syntax-ns"); got != 1 {
		t.Errorf("alpha->rdf weight: got %d, want 1", got)
	}
}

func TestAnalyzer_NoSelfReferences(t *testing.T) {
	g := buildTestGraph(t, [][3]string{
		{"http://a.org/alpha#X", "http://a.org/alpha#relatedTo", "http://a.org/alpha#Y"},
	})

	a := NewAnalyzer()
	a.ProcessGraph("alpha.ttl", g)

	if got := a.ReferenceWeight("http://a.org/alpha", "http://a.org/alpha"); got != 0 {
		t.Errorf("self-reference weight: got %d, want 0", got)
	}
}

func TestAnalyzer_ReferencedNamespaceBecomesNode(t *testing.T) {
	// beta never contributes triples of its own but is referenced, so it
	// must still appear as an observed namespace.
	g := buildTestGraph(t, [][3]string{
		{"http://a.org/alpha#X", vocab.RDFSSeeAlso, "http://b.org/beta#Y"},
	})

	a := NewAnalyzer()
	a.ProcessGraph("alpha.ttl", g)

	if a.StatsFor("http://b.org/beta") == nil {
		t.Error("referenced namespace http://b.org/beta not observed")
	}
}

func TestAnalyzer_ImportsContributeReferences(t *testing.T) {
	g := buildTestGraph(t, [][3]string{
		{"http://a.org/alpha#", vocab.RDFType, vocab.OWLOntology},
		{"http://a.org/alpha#", vocab.OWLImports, "http://b.org/beta#"},
	})

	a := NewAnalyzer()
	a.ProcessGraph("alpha.ttl", g)

	if !a.HasImport("http://a.org/alpha", "http://b.org/beta") {
		t.Error("import alpha->beta not recorded")
	}
	if got := a.ReferenceWeight("http://a.org/alpha", "http://b.org/beta"); got != 1 {
		t.Errorf("alpha->beta weight: got %d, want 1", got)
	}
	// The reverse does not hold: references alone never become imports.
	if a.HasImport("http://a.org/alpha", "http://www.w3.org/2002/07/owl") {
		t.Error("plain reference to owl recorded as import")
	}
}

func TestAnalyzer_UnattributableOntologySentinel(t *testing.T) {
	// An ontology IRI with no derivable namespace lands under "unknown".
	g := buildTestGraph(t, [][3]string{
		{"ontology", vocab.RDFType, vocab.OWLOntology},
	})

	a := NewAnalyzer()
	a.ProcessGraph("odd.ttl", g)

	stats := a.StatsFor(UnknownNamespace)
	if stats == nil {
		t.Fatal("unknown sentinel namespace not created")
	}
	if !stats.Files["odd.ttl"] {
		t.Error("file odd.ttl not attributed to unknown namespace")
	}
}

func TestAnalyzer_BlankNodeSubjectsMutateNothing(t *testing.T) {
	blank, err := rdf.NewBlank("b0")
	if err != nil {
		t.Fatalf("NewBlank failed: %v", err)
	}
	g := rdfio.NewGraph()
	g.Add(rdf.Triple{
		Subj: blank,
		Pred: mustIRI(t, vocab.RDFType),
		Obj:  mustIRI(t, "http://b.org/beta#Thing"),
	})

	a := NewAnalyzer()
	a.ProcessGraph("anon.ttl", g)

	if got := a.Namespaces(); len(got) != 0 {
		t.Errorf("namespaces observed from blank subject: %v", got)
	}
}

func TestAnalyzer_ProcessSchema(t *testing.T) {
	a := NewAnalyzer()
	a.ProcessSchema("core.xsd", &rdfio.Schema{
		Path:            "core.xsd",
		TargetNamespace: "http://a.org/alpha#",
		Imports:         []string{"http://b.org/beta/", "http://c.org/gamma"},
	})

	stats := a.StatsFor("http://a.org/alpha")
	if stats == nil {
		t.Fatal("target namespace not observed")
	}
	if !stats.Files["core.xsd"] {
		t.Error("file core.xsd not attributed")
	}
	for _, dst := range []string{"http://b.org/beta", "http://c.org/gamma"} {
		if !a.HasImport("http://a.org/alpha", dst) {
			t.Errorf("import alpha->%s not recorded", dst)
		}
		if got := a.ReferenceWeight("http://a.org/alpha", dst); got != 1 {
			t.Errorf("alpha->%s weight: got %d, want 1", dst, got)
		}
	}
}

func TestAnalyzer_ProcessSchema_NoTargetNamespace(t *testing.T) {
	a := NewAnalyzer()
	schema := &rdfio.Schema{Path: "dir/naked.xsd"}
	a.ProcessSchema("dir/naked.xsd", schema)

	if a.StatsFor(schema.FallbackNamespace()) == nil {
		t.Errorf("fallback namespace %q not observed", schema.FallbackNamespace())
	}
}

func TestAnalyzer_AttachDescriptions(t *testing.T) {
	onto := "http://a.org/alpha#"
	g := rdfio.NewGraph()
	g.Add(rdf.Triple{Subj: mustIRI(t, onto), Pred: mustIRI(t, vocab.RDFType), Obj: mustIRI(t, vocab.OWLOntology)})
	g.Add(rdf.Triple{Subj: mustIRI(t, onto), Pred: mustIRI(t, vocab.DCTermsTitle), Obj: mustLiteral(t, "Alpha Title")})
	g.Add(rdf.Triple{Subj: mustIRI(t, onto), Pred: mustIRI(t, vocab.RDFSLabel), Obj: mustLiteral(t, "Alpha Label")})
	g.Add(rdf.Triple{Subj: mustIRI(t, onto), Pred: mustIRI(t, vocab.RDFSComment), Obj: mustLiteral(t, "a comment")})
	g.Add(rdf.Triple{Subj: mustIRI(t, onto), Pred: mustIRI(t, vocab.DCTermsDescription), Obj: mustLiteral(t, "a description")})

	a := NewAnalyzer()
	a.ProcessGraph("alpha.ttl", g)
	a.AttachDescriptions(g)

	stats := a.StatsFor("http://a.org/alpha")
	if stats == nil {
		t.Fatal("namespace not observed")
	}
	if stats.Label != "Alpha Label" {
		t.Errorf("Label: got %q, want %q (rdfs:label preferred)", stats.Label, "Alpha Label")
	}
	if stats.Description != "a description" {
		t.Errorf("Description: got %q, want %q (dcterms:description preferred)", stats.Description, "a description")
	}
}

func TestAnalyzer_DuplicateTriplesAcrossFilesCount(t *testing.T) {
	triple := [][3]string{
		{"http://a.org/alpha#X", vocab.RDFType, vocab.OWLClass},
	}

	a := NewAnalyzer()
	a.ProcessGraph("one.ttl", buildTestGraph(t, triple))
	a.ProcessGraph("two.ttl", buildTestGraph(t, triple))

	stats := a.StatsFor("http://a.org/alpha")
	if stats == nil {
		t.Fatal("namespace not observed")
	}
	if stats.Triples != 2 {
		t.Errorf("Triples: got %d, want 2 (same fact in two files counts twice)", stats.Triples)
	}
	if len(stats.Files) != 2 {
		t.Errorf("Files: got %d, want 2", len(stats.Files))
	}
}
