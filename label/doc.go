// Package label resolves human-readable display strings for catalog
// entities carrying multi-language label maps.
//
// Resolution follows a fixed priority chain (preferred language, English,
// untagged, any, legacy label, IRI local name) and is total: it never
// fails for missing labels, it degrades to the next tier.
//
// All functions are pure and safe for concurrent use.
package label
