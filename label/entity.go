package label

// Entity is a labeled catalog entity as delivered by the knowledge graph.
//
// Entities are plain values constructed per request from upstream data.
// Nothing in this package mutates or retains them.
type Entity struct {
	// ID is the stable identifier, usually an IRI
	// (e.g. "https://example.org/ontology#Customer") or a slug.
	ID string `json:"id"`

	// Labels maps language codes to display strings. The empty-string key
	// is the untagged sentinel: a label recorded without a language tag.
	// All other keys are non-empty language codes.
	Labels map[string]string `json:"labels,omitempty"`

	// Legacy is the single display label from before multi-language
	// support. Consulted only when Labels yields nothing.
	Legacy string `json:"label,omitempty"`
}
