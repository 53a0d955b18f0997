// Package vocabulary provides standard W3C annotation-property IRIs used
// when assembling display labels from knowledge-graph triples.
//
// References:
// - RDFS: https://www.w3.org/TR/rdf-schema/
// - SKOS: https://www.w3.org/TR/skos-reference/
// - Dublin Core: https://www.dublincore.org/specifications/dublin-core/dcmi-terms/
// - Schema.org: https://schema.org/
package vocabulary

// RDF Schema Standard IRIs
const (
	// RdfsLabel provides a human-readable name for a resource.
	RdfsLabel = "http://www.w3.org/2000/01/rdf-schema#label"

	// RdfsComment provides a human-readable description.
	RdfsComment = "http://www.w3.org/2000/01/rdf-schema#comment"
)

// SKOS (Simple Knowledge Organization System) Standard IRIs
const (
	// SkosPrefLabel provides the preferred lexical label for a resource.
	SkosPrefLabel = "http://www.w3.org/2004/02/skos/core#prefLabel"

	// SkosAltLabel provides an alternative lexical label for a resource.
	SkosAltLabel = "http://www.w3.org/2004/02/skos/core#altLabel"

	// SkosDefinition provides a complete explanation of a concept.
	SkosDefinition = "http://www.w3.org/2004/02/skos/core#definition"
)

// Dublin Core Metadata Terms Standard IRIs
const (
	// DcTitle provides a name given to the resource.
	DcTitle = "http://purl.org/dc/terms/title"
)

// Schema.org Standard IRIs
const (
	// SchemaName provides the name of an item.
	SchemaName = "https://schema.org/name"
)

// labelPriority orders label predicates from most to least preferred.
// When one subject carries several label literals in the same language,
// the literal under the higher-priority predicate wins.
var labelPriority = []string{
	SkosPrefLabel,
	RdfsLabel,
	DcTitle,
	SchemaName,
	SkosAltLabel,
}

// LabelPredicates returns the label predicates in priority order. The
// returned slice is a copy; callers may reorder it freely.
func LabelPredicates() []string {
	out := make([]string, len(labelPriority))
	copy(out, labelPriority)
	return out
}

// LabelPredicateRank returns the priority rank of a label predicate
// (lower is more preferred) and whether the IRI is a label predicate at
// all. Non-label predicates report ok == false.
func LabelPredicateRank(iri string) (int, bool) {
	for i, p := range labelPriority {
		if p == iri {
			return i, true
		}
	}
	return 0, false
}

// IsLabelPredicate reports whether the IRI denotes a display-label
// annotation property.
func IsLabelPredicate(iri string) bool {
	_, ok := LabelPredicateRank(iri)
	return ok
}
