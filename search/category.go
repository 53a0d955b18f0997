// Package search classifies catalog search results into presentation
// categories for result listings and icons.
package search

// Category is the presentation category of a search result.
type Category string

const (
	// CategoryTerm marks glossary and ontology concepts.
	CategoryTerm Category = "term"

	// CategoryProduct marks data products.
	CategoryProduct Category = "product"

	// CategoryContract marks data contracts.
	CategoryContract Category = "contract"

	// CategoryPersona marks persona entries.
	CategoryPersona Category = "persona"

	// CategoryGeneric is the default for results that match no known
	// hint or type.
	CategoryGeneric Category = "generic"
)

// String returns the string representation of the category.
func (c Category) String() string {
	return string(c)
}

// knownCategories recognizes explicit category hints carried by a result.
var knownCategories = map[string]Category{
	"term":     CategoryTerm,
	"product":  CategoryProduct,
	"contract": CategoryContract,
	"persona":  CategoryPersona,
	"generic":  CategoryGeneric,
}

// typeCategories maps result type tokens to categories when no explicit
// hint is recognized.
var typeCategories = map[string]Category{
	"data-product":  CategoryProduct,
	"data-contract": CategoryContract,
	"glossary-term": CategoryTerm,
	"persona":       CategoryPersona,
}

// Classify maps a result's explicit category hint to a presentation
// category; unrecognized hints fall back to the result type, and unknown
// types land on CategoryGeneric. Both enumerations stay open: new hint
// and type tokens are expected over time and must not break callers.
func Classify(hint, resultType string) Category {
	if c, ok := knownCategories[hint]; ok {
		return c
	}
	if c, ok := typeCategories[resultType]; ok {
		return c
	}
	return CategoryGeneric
}
