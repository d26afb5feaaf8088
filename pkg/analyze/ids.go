package analyze

import (
	"fmt"
	"strings"

	"github.com/coolbeans/ontograph/pkg/rdfio"
)

// assignIDs produces a total mapping from every observed namespace to a
// short identifier. Declared prefixes win for their exact normalized
// namespace (first-registered prefix wins on collision, not reported);
// remaining namespaces get an identifier derived from their last
// path/fragment segment, falling back to a sequential ns<N> identifier
// assigned in sorted-namespace order.
func (a *Analyzer) assignIDs(prefixes *rdfio.PrefixTable) map[string]string {
	idMap := make(map[string]string, len(a.namespaces))

	if prefixes != nil {
		for _, entry := range prefixes.Entries() {
			ns, ok := Normalize(entry.Namespace)
			if !ok {
				continue
			}
			if _, observed := a.namespaces[ns]; !observed {
				continue
			}
			if _, assigned := idMap[ns]; assigned {
				continue
			}
			idMap[ns] = entry.Prefix
		}
	}

	// The fallback counter is scoped to the fallback path: it advances
	// only when segment derivation yields nothing.
	counter := 1
	for _, ns := range a.Namespaces() {
		if _, assigned := idMap[ns]; assigned {
			continue
		}
		id := deriveID(ns)
		if id == "" {
			id = fmt.Sprintf("ns%d", counter)
			counter++
		}
		idMap[ns] = id
	}

	return idMap
}

var idReplacer = strings.NewReplacer("-", "_", ".", "_")

// deriveID builds a short identifier from the last path or fragment segment
// of a namespace: lower-cased, with "-" and "." replaced by "_". Returns ""
// when the namespace has no usable segment.
func deriveID(ns string) string {
	s := strings.TrimRight(ns, "/#")
	if s == "" {
		return ""
	}
	last := s[strings.LastIndex(s, "/")+1:]
	last = last[strings.LastIndex(last, "#")+1:]
	return idReplacer.Replace(strings.ToLower(last))
}
