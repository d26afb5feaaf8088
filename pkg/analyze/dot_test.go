package analyze

import (
	"strings"
	"testing"
)

func TestDocument_ToDOT(t *testing.T) {
	doc := &Document{
		Graph: GraphSection{
			Nodes: []*Node{
				{ID: "alpha", Namespace: "http://a.org/alpha", Label: "Alpha"},
				{ID: "beta", Namespace: "http://b.org/beta", Label: `Beta "core"`},
			},
			Edges: []*Edge{
				{Source: "alpha", Target: "beta", ReferenceCount: 2, Import: true},
				{Source: "beta", Target: "alpha"},
			},
		},
	}

	dot := doc.ToDOT()

	if !strings.HasPrefix(dot, "digraph ontologies {") {
		t.Errorf("missing digraph header:\n%s", dot)
	}
	if !strings.HasSuffix(dot, "}\n") {
		t.Errorf("missing closing brace:\n%s", dot)
	}
	if !strings.Contains(dot, `"alpha" [label="Alpha\nhttp://a.org/alpha"];`) {
		t.Errorf("alpha node line missing:\n%s", dot)
	}
	if !strings.Contains(dot, `Beta \"core\"`) {
		t.Errorf("quotes not escaped in label:\n%s", dot)
	}
	if !strings.Contains(dot, `"alpha" -> "beta" [label="import / refs=2"];`) {
		t.Errorf("labeled edge missing:\n%s", dot)
	}
	if !strings.Contains(dot, `"beta" -> "alpha";`) {
		t.Errorf("unlabeled edge missing:\n%s", dot)
	}
}
