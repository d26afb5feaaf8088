package analyze

import (
	"testing"

	"github.com/knakk/rdf"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"http://example.org/onto/", "http://example.org/onto", true},
		{"http://example.org/onto#", "http://example.org/onto", true},
		{"http://example.org/onto/#", "http://example.org/onto", true},
		{"http://example.org/onto", "http://example.org/onto", true},
		{"", "", false},
		{"/#/#", "", false},
	}

	for _, tt := range tests {
		got, ok := Normalize(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("Normalize(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"http://example.org/onto/",
		"http://example.org/onto#",
		"http://purl.org/dc/terms/",
	}
	for _, in := range inputs {
		once, ok := Normalize(in)
		if !ok {
			t.Fatalf("Normalize(%q) unexpectedly absent", in)
		}
		twice, ok := Normalize(once)
		if !ok || twice != once {
			t.Errorf("Normalize not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}

func TestURINamespace(t *testing.T) {
	tests := []struct {
		uri    string
		want   string
		wantOK bool
	}{
		{"http://example.org/onto#Thing", "http://example.org/onto", true},
		{"http://example.org/onto/Thing", "http://example.org/onto", true},
		{"http://www.w3.org/1999/02/22-rdf-syntax-ns#type", "http://www.w3.org/1999/02/22-rdf-syntax-ns", true},
		{"http://purl.org/dc/terms/title", "http://purl.org/dc/terms", true},
		// Trailing delimiter: no local name, the URI is its own namespace.
		{"http://example.org/onto/", "http://example.org/onto", true},
		// Versioned path segments stay on the namespace side of the split.
		{"http://example.org/v1.0", "http://example.org", true},
		// No structure at all.
		{"Thing", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := URINamespace(tt.uri)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("URINamespace(%q) = (%q, %v), want (%q, %v)", tt.uri, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestTermNamespace_NonIRITerms(t *testing.T) {
	lit, err := rdf.NewLiteral("http://example.org/onto#Thing")
	if err != nil {
		t.Fatalf("NewLiteral failed: %v", err)
	}
	if ns, ok := TermNamespace(lit); ok {
		t.Errorf("literal term produced namespace %q, want absent", ns)
	}

	blank, err := rdf.NewBlank("b0")
	if err != nil {
		t.Fatalf("NewBlank failed: %v", err)
	}
	if ns, ok := TermNamespace(blank); ok {
		t.Errorf("blank term produced namespace %q, want absent", ns)
	}
}
