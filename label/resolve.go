package label

import (
	"sort"
	"strings"
)

// Tier identifies which step of the resolution chain produced a label.
// Exposed for instrumentation: a rising share of low-tier resolutions
// usually means the ontology is missing localized labels.
type Tier string

const (
	// TierPreferred means the caller's preferred language matched.
	TierPreferred Tier = "preferred"

	// TierEnglish means the "en" fallback matched.
	TierEnglish Tier = "english"

	// TierUntagged means the untagged ("") label matched.
	TierUntagged Tier = "untagged"

	// TierAny means an arbitrary (but deterministic) language matched.
	TierAny Tier = "any"

	// TierLegacy means the pre-multilanguage label was used.
	TierLegacy Tier = "legacy"

	// TierLocalName means the label was derived from the identifier.
	TierLocalName Tier = "local_name"
)

// Resolve returns the best display string for e given the caller's
// preferred language code. The priority chain, first non-empty wins:
//
//  1. Labels[preferred]
//  2. Labels["en"]
//  3. Labels[""] (untagged)
//  4. any remaining label, chosen as the value under the
//     lexicographically smallest language key (map iteration order is
//     not semantically meaningful upstream, so the pick must be stable)
//  5. Legacy, unless it merely repeats the ID
//  6. LocalName(e.ID)
//
// Resolve is total: it never fails for missing labels, and it returns a
// non-empty string whenever e.ID is non-empty.
func Resolve(e Entity, preferred string) string {
	s, _ := ResolveTier(e, preferred)
	return s
}

// ResolveTier is Resolve plus the chain tier that produced the result.
func ResolveTier(e Entity, preferred string) (string, Tier) {
	if v := e.Labels[preferred]; v != "" {
		return v, TierPreferred
	}
	if v := e.Labels["en"]; v != "" {
		return v, TierEnglish
	}
	if v := e.Labels[""]; v != "" {
		return v, TierUntagged
	}
	if v := anyLabel(e.Labels); v != "" {
		return v, TierAny
	}
	if e.Legacy != "" && e.Legacy != e.ID {
		return e.Legacy, TierLegacy
	}
	return LocalName(e.ID), TierLocalName
}

// anyLabel returns the non-empty value under the lexicographically
// smallest key, or "" when no label qualifies.
func anyLabel(labels map[string]string) string {
	if len(labels) == 0 {
		return ""
	}
	keys := make([]string, 0, len(labels))
	for k, v := range labels {
		if v != "" {
			keys = append(keys, k)
		}
	}
	if len(keys) == 0 {
		return ""
	}
	sort.Strings(keys)
	return labels[keys[0]]
}

// LocalName extracts the trailing segment of an IRI: the substring after
// the last '#' or '/'. Identifiers containing neither character come
// back unchanged, as does an identifier ending in a separator (so a
// non-empty input never yields an empty result).
func LocalName(iri string) string {
	idx := strings.LastIndexAny(iri, "#/")
	if idx < 0 {
		return iri
	}
	if local := iri[idx+1:]; local != "" {
		return local
	}
	return iri
}
