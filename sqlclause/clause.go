// Package sqlclause escapes values and builds single-column SQL predicates.
// Column names are trusted; every value passes through a typed escape.
package sqlclause

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// BuildClause renders "column op value" for a single comparison.
//
// Null and empty tests ignore value. IN and NOT IN accept either a comma
// separated list or a parenthesized one such as "(1,2,3)". String values
// of the binary comparisons are lower-cased before quoting.
func BuildClause(d Dialect, column string, op Op, value string, t Type) (string, error) {
	switch op {
	case OpIsNull, OpIsNotNull:
		return fmt.Sprintf("%s %s", column, op), nil

	case OpIsEmpty:
		return fmt.Sprintf("(NULLIF(%s, '') IS NULL)", column), nil

	case OpIsNotEmpty:
		return fmt.Sprintf("(NULLIF(%s, '') IS NOT NULL)", column), nil

	case OpIn, OpNotIn:
		return BuildInClause(d, column, op, SplitList(value), t)

	case OpEq, OpNeq, OpLt, OpLte, OpGt, OpGte, OpLike:
		if t == TypeString {
			value = Lower(value)
		}
		lit, err := Literal(d, value, t)
		if err != nil {
			return "", errors.Wrapf(err, "column %s", column)
		}
		return fmt.Sprintf("%s %s %s", column, op, lit), nil
	}
	return "", errors.Wrapf(ErrUnsupportedOperator, "%q", string(op))
}

// BuildInClause renders "column IN (v1,v2,...)" with typed literals.
func BuildInClause(d Dialect, column string, op Op, values []string, t Type) (string, error) {
	if !op.IsSetTest() {
		return "", errors.Wrapf(ErrUnsupportedOperator, "%q is not a set operator", string(op))
	}
	if len(values) == 0 {
		return "", errors.Errorf("empty value list for %s on %s", op, column)
	}
	lits := make([]string, 0, len(values))
	for _, v := range values {
		lit, err := Literal(d, v, t)
		if err != nil {
			return "", errors.Wrapf(err, "column %s", column)
		}
		lits = append(lits, lit)
	}
	return fmt.Sprintf("%s %s (%s)", column, op, strings.Join(lits, ",")), nil
}

// SplitList splits "a,b" or "(a,b)" into trimmed, non-empty items.
func SplitList(value string) []string {
	value = strings.TrimSpace(value)
	value = strings.TrimPrefix(value, "(")
	value = strings.TrimSuffix(value, ")")
	var out []string
	for _, item := range strings.Split(value, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		out = append(out, item)
	}
	return out
}
