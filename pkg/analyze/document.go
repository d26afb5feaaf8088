package analyze

import (
	"sort"

	"github.com/coolbeans/ontograph/pkg/rdfio"
)

// Node is one namespace in the final graph document, carrying all
// accumulated statistics plus both reference totals.
type Node struct {
	ID                 string   `yaml:"id" json:"id"`
	Namespace          string   `yaml:"namespace" json:"namespace"`
	Label              string   `yaml:"label" json:"label"`
	Description        string   `yaml:"description,omitempty" json:"description,omitempty"`
	Triples            int      `yaml:"triples" json:"triples"`
	Classes            int      `yaml:"classes" json:"classes"`
	Properties         int      `yaml:"properties" json:"properties"`
	Individuals        int      `yaml:"individuals" json:"individuals"`
	Files              []string `yaml:"files" json:"files"`
	Imports            []string `yaml:"imports" json:"imports"`
	IncomingReferences int      `yaml:"incoming_references" json:"incoming_references"`
	OutgoingReferences int      `yaml:"outgoing_references" json:"outgoing_references"`
}

// Edge is one deduplicated relation between two namespaces. An edge may
// carry accumulated reference weight, an explicit import flag, or both.
type Edge struct {
	Source         string `yaml:"source" json:"source"`
	Target         string `yaml:"target" json:"target"`
	ReferenceCount int    `yaml:"reference_count" json:"reference_count"`
	Import         bool   `yaml:"import" json:"import"`
}

// ReferencedEntry is one row of the most-referenced ranking.
type ReferencedEntry struct {
	ID                 string `yaml:"id" json:"id"`
	Namespace          string `yaml:"namespace" json:"namespace"`
	Label              string `yaml:"label" json:"label"`
	IncomingReferences int    `yaml:"incoming_references" json:"incoming_references"`
}

// ConsumerEntry is one row of the largest-consumers ranking.
type ConsumerEntry struct {
	ID                 string `yaml:"id" json:"id"`
	Namespace          string `yaml:"namespace" json:"namespace"`
	Label              string `yaml:"label" json:"label"`
	OutgoingReferences int    `yaml:"outgoing_references" json:"outgoing_references"`
}

// Ranking holds both orderings of the node list.
type Ranking struct {
	MostReferenced   []ReferencedEntry `yaml:"most_referenced" json:"most_referenced"`
	LargestConsumers []ConsumerEntry   `yaml:"largest_consumers" json:"largest_consumers"`
}

// GraphSection is the nodes/edges projection of the document.
type GraphSection struct {
	Nodes []*Node `yaml:"nodes" json:"nodes"`
	Edges []*Edge `yaml:"edges" json:"edges"`
}

// Document is the final analysis result. The node list appears both as the
// top-level ontologies list and under graph.nodes for compatibility.
type Document struct {
	Ontologies []*Node      `yaml:"ontologies" json:"ontologies"`
	Graph      GraphSection `yaml:"graph" json:"graph"`
	Ranking    Ranking      `yaml:"ranking" json:"ranking"`
}

// BuildDocument consumes the analyzer: it attaches descriptive metadata from
// the merged corpus, assigns identifiers, computes reference totals, and
// produces the deduplicated node/edge/ranking document. Node order is the
// sorted namespace order; ranking sorts are stable so ties keep it.
func (a *Analyzer) BuildDocument(corpus *rdfio.Graph, prefixes *rdfio.PrefixTable) *Document {
	if corpus != nil {
		a.AttachDescriptions(corpus)
	}
	idMap := a.assignIDs(prefixes)

	incoming := make(map[string]int, len(a.namespaces))
	outgoing := make(map[string]int, len(a.namespaces))
	for src, targets := range a.references {
		for dst, count := range targets {
			outgoing[src] += count
			if _, observed := a.namespaces[dst]; observed {
				incoming[dst] += count
			}
		}
	}

	nodes := make([]*Node, 0, len(a.namespaces))
	for _, ns := range a.Namespaces() {
		stats := a.namespaces[ns]
		id := idMap[ns]
		label := stats.Label
		if label == "" {
			label = id
		}
		nodes = append(nodes, &Node{
			ID:                 id,
			Namespace:          ns,
			Label:              label,
			Description:        stats.Description,
			Triples:            stats.Triples,
			Classes:            stats.Classes,
			Properties:         stats.Properties,
			Individuals:        stats.Individuals,
			Files:              sortedKeys(stats.Files),
			Imports:            sortedKeys(a.imports[ns]),
			IncomingReferences: incoming[ns],
			OutgoingReferences: outgoing[ns],
		})
	}

	edges := a.buildEdges(idMap)

	return &Document{
		Ontologies: nodes,
		Graph:      GraphSection{Nodes: nodes, Edges: edges},
		Ranking:    buildRanking(nodes),
	}
}

// buildEdges merges the reference and import tables into one edge list
// keyed by (source-id, target-id), sorted for determinism.
func (a *Analyzer) buildEdges(idMap map[string]string) []*Edge {
	type key struct{ source, target string }
	edgeMap := make(map[key]*Edge)

	edgeFor := func(srcNS, dstNS string) *Edge {
		srcID, srcOK := idMap[srcNS]
		dstID, dstOK := idMap[dstNS]
		if !srcOK || !dstOK {
			return nil
		}
		k := key{srcID, dstID}
		edge, exists := edgeMap[k]
		if !exists {
			edge = &Edge{Source: srcID, Target: dstID}
			edgeMap[k] = edge
		}
		return edge
	}

	for src, targets := range a.references {
		for dst, count := range targets {
			if edge := edgeFor(src, dst); edge != nil {
				edge.ReferenceCount += count
			}
		}
	}
	for src, targets := range a.imports {
		for dst := range targets {
			if edge := edgeFor(src, dst); edge != nil {
				edge.Import = true
			}
		}
	}

	edges := make([]*Edge, 0, len(edgeMap))
	for _, edge := range edgeMap {
		edges = append(edges, edge)
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].Source != edges[j].Source {
			return edges[i].Source < edges[j].Source
		}
		return edges[i].Target < edges[j].Target
	})
	return edges
}

// buildRanking produces both orderings. The sorts are stable, so namespaces
// with equal totals retain the alphabetical node order.
func buildRanking(nodes []*Node) Ranking {
	byIncoming := make([]*Node, len(nodes))
	copy(byIncoming, nodes)
	sort.SliceStable(byIncoming, func(i, j int) bool {
		return byIncoming[i].IncomingReferences > byIncoming[j].IncomingReferences
	})

	byOutgoing := make([]*Node, len(nodes))
	copy(byOutgoing, nodes)
	sort.SliceStable(byOutgoing, func(i, j int) bool {
		return byOutgoing[i].OutgoingReferences > byOutgoing[j].OutgoingReferences
	})

	ranking := Ranking{
		MostReferenced:   make([]ReferencedEntry, 0, len(nodes)),
		LargestConsumers: make([]ConsumerEntry, 0, len(nodes)),
	}
	for _, n := range byIncoming {
		ranking.MostReferenced = append(ranking.MostReferenced, ReferencedEntry{
			ID:                 n.ID,
			Namespace:          n.Namespace,
			Label:              n.Label,
			IncomingReferences: n.IncomingReferences,
		})
	}
	for _, n := range byOutgoing {
		ranking.LargestConsumers = append(ranking.LargestConsumers, ConsumerEntry{
			ID:                 n.ID,
			Namespace:          n.Namespace,
			Label:              n.Label,
			OutgoingReferences: n.OutgoingReferences,
		})
	}
	return ranking
}
