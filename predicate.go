package customquery

import (
	"strings"

	"github.com/theplant/customquery/sqlclause"
)

// Value is the right hand side of a predicate: a Scalar, a List or a Range.
type Value interface {
	isValue()
}

// Scalar is a single value. It is trimmed before use.
type Scalar string

// List is a multi-valued selection.
type List []string

// Range bounds a value on one or both sides, inclusively.
type Range struct {
	From *string
	To   *string
}

func (Scalar) isValue() {}
func (List) isValue()   {}
func (Range) isValue()  {}

// Predicate filters one custom field. Predicates sharing a Grouping are
// ANDed, distinct groupings are ORed.
type Predicate struct {
	Name     string
	Op       sqlclause.Op
	Value    Value
	Grouping int
	// Wildcard turns string equality into a LIKE match, and joins
	// serialized multi-value matches with OR instead of AND.
	Wildcard bool
}

// Term is a custom field in play. A term without predicates only joins and
// selects the field.
type Term struct {
	FieldID    int64
	Predicates []Predicate
}

// mergeTerms folds duplicate field ids into their first occurrence.
func mergeTerms(terms []Term) []Term {
	index := map[int64]int{}
	out := make([]Term, 0, len(terms))
	for _, t := range terms {
		if i, ok := index[t.FieldID]; ok {
			out[i].Predicates = append(out[i].Predicates, t.Predicates...)
			continue
		}
		index[t.FieldID] = len(out)
		out = append(out, Term{
			FieldID:    t.FieldID,
			Predicates: append([]Predicate(nil), t.Predicates...),
		})
	}
	return out
}

// termIDs returns the field ids of terms in order.
func termIDs(terms []Term) []int64 {
	ids := make([]int64, 0, len(terms))
	for _, t := range terms {
		ids = append(ids, t.FieldID)
	}
	return ids
}

// splitAutocomplete turns the comma separated value of an autocomplete
// widget into a list.
func splitAutocomplete(value string) List {
	var out List
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
