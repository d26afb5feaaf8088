package analyze

import (
	"fmt"
	"strings"
)

// ToDOT renders the document's nodes and edges as a Graphviz DOT directed
// graph. Nodes are labeled with their label and namespace; edges carry
// "import" and/or "refs=<n>" labels when either applies, and no label when
// neither does.
func (d *Document) ToDOT() string {
	var sb strings.Builder
	sb.WriteString("digraph ontologies {\n")

	for _, node := range d.Graph.Nodes {
		label := node.Label
		if label == "" {
			label = node.ID
		}
		full := escapeDOT(label + "\\n" + node.Namespace)
		sb.WriteString(fmt.Sprintf("  %q [label=\"%s\"];\n", node.ID, full))
	}

	for _, edge := range d.Graph.Edges {
		var parts []string
		if edge.Import {
			parts = append(parts, "import")
		}
		if edge.ReferenceCount > 0 {
			parts = append(parts, fmt.Sprintf("refs=%d", edge.ReferenceCount))
		}
		if len(parts) > 0 {
			sb.WriteString(fmt.Sprintf("  %q -> %q [label=\"%s\"];\n",
				edge.Source, edge.Target, strings.Join(parts, " / ")))
		} else {
			sb.WriteString(fmt.Sprintf("  %q -> %q;\n", edge.Source, edge.Target))
		}
	}

	sb.WriteString("}\n")
	return sb.String()
}

// escapeDOT escapes double quotes inside a DOT label. Literal \n sequences
// are preserved as DOT line breaks.
func escapeDOT(s string) string {
	return strings.ReplaceAll(s, `"`, `\"`)
}
