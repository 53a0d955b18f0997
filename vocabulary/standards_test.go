package vocabulary

import "testing"

func TestLabelPredicateRank(t *testing.T) {
	tests := []struct {
		name string
		iri  string
		rank int
		ok   bool
	}{
		{"skos prefLabel is most preferred", SkosPrefLabel, 0, true},
		{"rdfs label second", RdfsLabel, 1, true},
		{"dc title third", DcTitle, 2, true},
		{"schema name fourth", SchemaName, 3, true},
		{"skos altLabel last", SkosAltLabel, 4, true},
		{"comment is not a label", RdfsComment, 0, false},
		{"definition is not a label", SkosDefinition, 0, false},
		{"arbitrary IRI is not a label", "https://example.org/ns#size", 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rank, ok := LabelPredicateRank(tc.iri)
			if ok != tc.ok {
				t.Fatalf("LabelPredicateRank(%q) ok = %v, want %v", tc.iri, ok, tc.ok)
			}
			if ok && rank != tc.rank {
				t.Errorf("LabelPredicateRank(%q) = %d, want %d", tc.iri, rank, tc.rank)
			}
		})
	}
}

func TestLabelPredicatesIsACopy(t *testing.T) {
	first := LabelPredicates()
	first[0] = "mutated"

	second := LabelPredicates()
	if second[0] != SkosPrefLabel {
		t.Errorf("LabelPredicates leaked internal state: %q", second[0])
	}
}

func TestIsLabelPredicate(t *testing.T) {
	if !IsLabelPredicate(RdfsLabel) {
		t.Error("RdfsLabel should be a label predicate")
	}
	if IsLabelPredicate(RdfsComment) {
		t.Error("RdfsComment should not be a label predicate")
	}
}
