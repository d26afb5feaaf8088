package analyze

import "strings"

// MatchKeywords evaluates keyword selection patterns against a keyword set:
//
//	token    keyword must be present (implicit "+")
//	+token   keyword must be present
//	-token   keyword must be absent
//	*        include everything not explicitly excluded
//
// With no patterns everything matches. A bare "*" disables the must-include
// requirement entirely; exclusions still apply.
func MatchKeywords(keywords, patterns []string) bool {
	if len(patterns) == 0 {
		return true
	}

	kws := make(map[string]bool, len(keywords))
	for _, kw := range keywords {
		kws[kw] = true
	}

	var includes, excludes []string
	star := false
	for _, p := range patterns {
		switch {
		case p == "*":
			star = true
		case strings.HasPrefix(p, "+"):
			includes = append(includes, p[1:])
		case strings.HasPrefix(p, "-"):
			excludes = append(excludes, p[1:])
		default:
			includes = append(includes, p)
		}
	}

	for _, e := range excludes {
		if kws[e] {
			return false
		}
	}
	if star {
		return true
	}
	for _, i := range includes {
		if !kws[i] {
			return false
		}
	}
	return true
}

// FilterDocument prunes nodes whose sidecar keywords do not match the
// patterns, and every edge touching a pruned node. Filtering applies only
// to the node and edge lists; the underlying statistics and rankings were
// accumulated on the full corpus and stay untouched.
func FilterDocument(doc *Document, keywordsByNamespace map[string][]string, patterns []string) {
	if len(patterns) == 0 {
		return
	}

	kept := make([]*Node, 0, len(doc.Graph.Nodes))
	keepIDs := make(map[string]bool)
	for _, node := range doc.Graph.Nodes {
		if MatchKeywords(keywordsByNamespace[node.Namespace], patterns) {
			kept = append(kept, node)
			keepIDs[node.ID] = true
		}
	}

	edges := make([]*Edge, 0, len(doc.Graph.Edges))
	for _, edge := range doc.Graph.Edges {
		if keepIDs[edge.Source] && keepIDs[edge.Target] {
			edges = append(edges, edge)
		}
	}

	doc.Ontologies = kept
	doc.Graph.Nodes = kept
	doc.Graph.Edges = edges
}
