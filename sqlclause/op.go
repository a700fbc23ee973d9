package sqlclause

// Op is a comparison operator from the closed predicate operator set.
type Op string

const (
	OpEq         Op = "="
	OpNeq        Op = "!="
	OpLt         Op = "<"
	OpLte        Op = "<="
	OpGt         Op = ">"
	OpGte        Op = ">="
	OpLike       Op = "LIKE"
	OpIn         Op = "IN"
	OpNotIn      Op = "NOT IN"
	OpIsNull     Op = "IS NULL"
	OpIsNotNull  Op = "IS NOT NULL"
	OpIsEmpty    Op = "IS EMPTY"
	OpIsNotEmpty Op = "IS NOT EMPTY"
)

// Ops lists every supported operator.
var Ops = []Op{
	OpEq, OpNeq, OpLt, OpLte, OpGt, OpGte, OpLike,
	OpIn, OpNotIn,
	OpIsNull, OpIsNotNull, OpIsEmpty, OpIsNotEmpty,
}

// Valid reports whether op belongs to the operator set.
func (op Op) Valid() bool {
	for _, o := range Ops {
		if o == op {
			return true
		}
	}
	return false
}

// IsNullTest reports whether op tests for absence rather than comparing a value.
func (op Op) IsNullTest() bool {
	switch op {
	case OpIsNull, OpIsNotNull, OpIsEmpty, OpIsNotEmpty:
		return true
	}
	return false
}

// IsSetTest reports whether op compares against a value list.
func (op Op) IsSetTest() bool {
	return op == OpIn || op == OpNotIn
}
