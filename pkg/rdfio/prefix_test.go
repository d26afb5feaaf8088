package rdfio

import (
	"testing"
)

func TestPrefixTable_FirstRegistrationWins(t *testing.T) {
	pt := NewPrefixTable()
	pt.Register("ex", "http://example.org/one#")
	pt.Register("ex", "http://example.org/two#")
	pt.Register("other", "http://example.org/other#")

	if pt.Len() != 2 {
		t.Fatalf("Len: got %d, want 2", pt.Len())
	}
	entries := pt.Entries()
	if entries[0].Prefix != "ex" || entries[0].Namespace != "http://example.org/one#" {
		t.Errorf("first entry: got %+v, want ex -> http://example.org/one#", entries[0])
	}
}

func TestPrefixTable_RegistrationOrderPreserved(t *testing.T) {
	pt := NewPrefixTable()
	pt.Register("zz", "http://example.org/zz#")
	pt.Register("aa", "http://example.org/aa#")

	entries := pt.Entries()
	if entries[0].Prefix != "zz" || entries[1].Prefix != "aa" {
		t.Errorf("entries not in registration order: %+v", entries)
	}
}

func TestPrefixTable_Merge(t *testing.T) {
	a := NewPrefixTable()
	a.Register("ex", "http://example.org/one#")

	b := NewPrefixTable()
	b.Register("ex", "http://example.org/two#")
	b.Register("new", "http://example.org/new#")

	a.Merge(b)

	if a.Len() != 2 {
		t.Fatalf("Len: got %d, want 2", a.Len())
	}
	if a.Entries()[0].Namespace != "http://example.org/one#" {
		t.Error("merge displaced an existing prefix binding")
	}
}

func TestScanPrefixes_Turtle(t *testing.T) {
	content := `@prefix ex: <http://example.org/onto#> .
@prefix : <http://example.org/default#> .
PREFIX sparql: <http://example.org/sparql#>
<http://example.org/onto#X> a <http://example.org/onto#Y> .
`
	path := writeTestFile(t, "prefixes.ttl", content)

	pt, err := ScanPrefixes(path)
	if err != nil {
		t.Fatalf("ScanPrefixes failed: %v", err)
	}

	want := map[string]string{
		"ex":     "http://example.org/onto#",
		"sparql": "http://example.org/sparql#",
	}
	if pt.Len() != len(want) {
		t.Fatalf("Len: got %d, want %d (%+v)", pt.Len(), len(want), pt.Entries())
	}
	for _, e := range pt.Entries() {
		if want[e.Prefix] != e.Namespace {
			t.Errorf("prefix %q: got %q, want %q", e.Prefix, e.Namespace, want[e.Prefix])
		}
	}
}

func TestScanPrefixes_XMLNS(t *testing.T) {
	content := `<?xml version="1.0"?>
<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#" xmlns:dct="http://purl.org/dc/terms/"
    xmlns:xml="http://www.w3.org/XML/1998/namespace">
</rdf:RDF>
`
	path := writeTestFile(t, "doc.rdf", content)

	pt, err := ScanPrefixes(path)
	if err != nil {
		t.Fatalf("ScanPrefixes failed: %v", err)
	}

	got := make(map[string]string)
	for _, e := range pt.Entries() {
		got[e.Prefix] = e.Namespace
	}
	if got["rdf"] != "http://www.w3.org/1999/02/22-rdf-syntax-ns#" {
		t.Errorf("rdf prefix: got %q", got["rdf"])
	}
	if got["dct"] != "http://purl.org/dc/terms/" {
		t.Errorf("dct prefix: got %q", got["dct"])
	}
	if _, ok := got["xml"]; ok {
		t.Error("reserved xml prefix was registered")
	}
}
