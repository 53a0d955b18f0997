// Package graph assembles labeled entities from knowledge-graph triples.
//
// The catalog's relational store keeps ontology content as RDF triples
// (one row per subject/predicate/object, with optional language tags on
// literal objects). This package turns those rows into label.Entity
// values ready for resolution.
package graph

import (
	"sort"

	"github.com/c360studio/ontolabel/label"
	"github.com/c360studio/ontolabel/vocabulary"
)

// Triple mirrors one stored RDF triple.
type Triple struct {
	// Subject is the subject IRI.
	Subject string `json:"subject" yaml:"subject"`

	// Predicate is the predicate IRI.
	Predicate string `json:"predicate" yaml:"predicate"`

	// Object is the object value: an IRI when ObjectIsIRI is set, a
	// literal otherwise.
	Object string `json:"object" yaml:"object"`

	// ObjectIsIRI distinguishes IRI objects from literals. Only literal
	// objects can contribute labels.
	ObjectIsIRI bool `json:"object_is_iri,omitempty" yaml:"object_is_iri,omitempty"`

	// Language is the language tag of a literal object ("en", "de", …).
	// Empty for untagged literals.
	Language string `json:"language,omitempty" yaml:"language,omitempty"`
}

// EntitiesFromTriples groups triples by subject and collects their
// label-predicate literals into per-language label maps. When a subject
// carries several label literals in the same language, the literal under
// the higher-priority predicate wins (see vocabulary.LabelPredicates);
// ties on the same predicate keep the first occurrence. Subjects with no
// label literals still appear, with a nil label map, so resolution can
// fall through to the IRI local name.
//
// Output order is ascending by subject IRI, independent of input order.
func EntitiesFromTriples(triples []Triple) []label.Entity {
	type langLabel struct {
		value string
		rank  int
	}
	bySubject := make(map[string]map[string]langLabel)

	for _, t := range triples {
		if t.Subject == "" {
			continue
		}
		if _, ok := bySubject[t.Subject]; !ok {
			bySubject[t.Subject] = nil
		}
		if t.ObjectIsIRI || t.Object == "" {
			continue
		}
		rank, ok := vocabulary.LabelPredicateRank(t.Predicate)
		if !ok {
			continue
		}
		labels := bySubject[t.Subject]
		if labels == nil {
			labels = make(map[string]langLabel)
			bySubject[t.Subject] = labels
		}
		if existing, ok := labels[t.Language]; ok && existing.rank <= rank {
			continue
		}
		labels[t.Language] = langLabel{value: t.Object, rank: rank}
	}

	subjects := make([]string, 0, len(bySubject))
	for s := range bySubject {
		subjects = append(subjects, s)
	}
	sort.Strings(subjects)

	entities := make([]label.Entity, 0, len(subjects))
	for _, s := range subjects {
		e := label.Entity{ID: s}
		if langs := bySubject[s]; langs != nil {
			e.Labels = make(map[string]string, len(langs))
			for lang, l := range langs {
				e.Labels[lang] = l.value
			}
		}
		entities = append(entities, e)
	}
	return entities
}
