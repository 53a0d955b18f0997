// Package export serializes catalog label triples to standard RDF
// formats so external tools (ontology editors, triple stores) can
// consume the catalog's labeling data.
package export

import (
	"fmt"
	"sort"
	"strings"

	"github.com/c360studio/ontolabel/graph"
	"github.com/c360studio/ontolabel/vocabulary"
)

// Format specifies the output serialization format.
type Format string

const (
	// FormatTurtle produces Turtle (.ttl) output.
	FormatTurtle Format = "turtle"

	// FormatNTriples produces N-Triples (.nt) output.
	FormatNTriples Format = "ntriples"
)

// FormatInfo provides metadata about an export format.
type FormatInfo struct {
	// Name is the format identifier.
	Name Format

	// MIMEType is the standard MIME type.
	MIMEType string

	// Extension is the file extension (with dot).
	Extension string
}

// FormatRegistry contains metadata for all supported formats.
var FormatRegistry = map[Format]FormatInfo{
	FormatTurtle: {
		Name:      FormatTurtle,
		MIMEType:  "text/turtle",
		Extension: ".ttl",
	},
	FormatNTriples: {
		Name:      FormatNTriples,
		MIMEType:  "application/n-triples",
		Extension: ".nt",
	},
}

// defaultPrefixes returns the namespace prefixes written to Turtle output.
func defaultPrefixes() map[string]string {
	return map[string]string{
		"rdfs":   "http://www.w3.org/2000/01/rdf-schema#",
		"skos":   "http://www.w3.org/2004/02/skos/core#",
		"dc":     "http://purl.org/dc/terms/",
		"schema": "https://schema.org/",
	}
}

// Export serializes the triples to the given format. Triples with an
// empty subject or predicate are skipped; output order follows input
// order.
func Export(triples []graph.Triple, format Format) (string, error) {
	switch format {
	case FormatTurtle:
		return toTurtle(triples), nil
	case FormatNTriples:
		return toNTriples(triples), nil
	default:
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}

// LabelTriples extracts only the label-predicate triples, the subset a
// labeling consumer needs.
func LabelTriples(triples []graph.Triple) []graph.Triple {
	out := make([]graph.Triple, 0, len(triples))
	for _, t := range triples {
		if vocabulary.IsLabelPredicate(t.Predicate) {
			out = append(out, t)
		}
	}
	return out
}

// toNTriples serializes to N-Triples: one triple per line, full IRIs.
func toNTriples(triples []graph.Triple) string {
	var sb strings.Builder
	for _, t := range triples {
		if t.Subject == "" || t.Predicate == "" {
			continue
		}
		sb.WriteString(fmt.Sprintf("<%s> <%s> %s .\n", t.Subject, t.Predicate, objectTerm(t)))
	}
	return sb.String()
}

// toTurtle serializes to Turtle with prefix declarations. Prefixes are
// written in sorted order so output is reproducible.
func toTurtle(triples []graph.Triple) string {
	var sb strings.Builder

	prefixes := defaultPrefixes()
	names := make([]string, 0, len(prefixes))
	for name := range prefixes {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		sb.WriteString(fmt.Sprintf("@prefix %s: <%s> .\n", name, prefixes[name]))
	}
	sb.WriteString("\n")

	for _, t := range triples {
		if t.Subject == "" || t.Predicate == "" {
			continue
		}
		sb.WriteString(fmt.Sprintf("<%s> %s %s .\n",
			t.Subject, prefixedTerm(t.Predicate, prefixes), objectTerm(t)))
	}
	return sb.String()
}

// prefixedTerm shortens an IRI to prefix:local when a declared prefix
// matches, else writes the full IRI.
func prefixedTerm(iri string, prefixes map[string]string) string {
	for name, ns := range prefixes {
		if strings.HasPrefix(iri, ns) {
			local := iri[len(ns):]
			if local != "" && !strings.ContainsAny(local, "/#") {
				return name + ":" + local
			}
		}
	}
	return "<" + iri + ">"
}

// objectTerm renders the object position: an IRI reference or a
// (possibly language-tagged) literal.
func objectTerm(t graph.Triple) string {
	if t.ObjectIsIRI {
		return "<" + t.Object + ">"
	}
	lit := `"` + escapeLiteral(t.Object) + `"`
	if t.Language != "" {
		lit += "@" + t.Language
	}
	return lit
}

// escapeLiteral escapes the characters N-Triples requires escaping in
// string literals.
func escapeLiteral(s string) string {
	r := strings.NewReplacer(
		`\`, `\\`,
		`"`, `\"`,
		"\n", `\n`,
		"\r", `\r`,
		"\t", `\t`,
	)
	return r.Replace(s)
}
