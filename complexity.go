package customquery

import (
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// ErrComplexity reports a term set exceeding its limits.
var ErrComplexity = errors.New("query too complex")

// ComplexityLimits defines limits for term sets.
// A value of 0 means no limit for that metric.
type ComplexityLimits struct {
	MaxFields     int // Maximum number of distinct custom fields
	MaxPredicates int // Maximum total number of predicates
	MaxGroupings  int // Maximum number of OR-ed groupings
	MaxListValues int // Maximum values in a single list predicate
}

// ComplexityResult contains the calculated complexity metrics of a term set.
type ComplexityResult struct {
	Fields     int
	Predicates int
	Groupings  int
	ListValues int // Largest list found in any predicate
}

// Predefined complexity limits
var (
	// DefaultLimits provides reasonable defaults for search forms.
	DefaultLimits = &ComplexityLimits{
		MaxFields:     50,
		MaxPredicates: 100,
		MaxGroupings:  10,
		MaxListValues: 200,
	}

	// StrictLimits provides tighter limits for public endpoints.
	StrictLimits = &ComplexityLimits{
		MaxFields:     10,
		MaxPredicates: 20,
		MaxGroupings:  3,
		MaxListValues: 50,
	}

	// RelaxedLimits provides looser limits for trusted/internal use.
	RelaxedLimits = &ComplexityLimits{
		MaxFields:     200,
		MaxPredicates: 500,
		MaxGroupings:  50,
		MaxListValues: 1000,
	}
)

// CheckComplexity validates that terms don't exceed the specified limits.
// If limits is nil, no validation is performed.
func CheckComplexity(terms []Term, limits *ComplexityLimits) error {
	if limits == nil {
		return nil
	}

	result := CalculateComplexity(terms)

	if limits.MaxFields > 0 && result.Fields > limits.MaxFields {
		return errors.Wrapf(ErrComplexity, "field count %d exceeds limit %d", result.Fields, limits.MaxFields)
	}
	if limits.MaxPredicates > 0 && result.Predicates > limits.MaxPredicates {
		return errors.Wrapf(ErrComplexity, "predicate count %d exceeds limit %d", result.Predicates, limits.MaxPredicates)
	}
	if limits.MaxGroupings > 0 && result.Groupings > limits.MaxGroupings {
		return errors.Wrapf(ErrComplexity, "grouping count %d exceeds limit %d", result.Groupings, limits.MaxGroupings)
	}
	if limits.MaxListValues > 0 && result.ListValues > limits.MaxListValues {
		return errors.Wrapf(ErrComplexity, "list of %d values exceeds limit %d", result.ListValues, limits.MaxListValues)
	}

	return nil
}

// CalculateComplexity returns the complexity metrics of terms.
func CalculateComplexity(terms []Term) *ComplexityResult {
	result := &ComplexityResult{
		Fields: len(lo.Uniq(termIDs(terms))),
	}
	groupings := map[int]bool{}
	for _, t := range terms {
		for _, p := range t.Predicates {
			result.Predicates++
			groupings[p.Grouping] = true
			if list, ok := p.Value.(List); ok && len(list) > result.ListValues {
				result.ListValues = len(list)
			}
		}
	}
	result.Groupings = len(groupings)
	return result
}
