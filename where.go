package customquery

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/spf13/cast"

	"github.com/theplant/customquery/field"
	"github.com/theplant/customquery/sqlclause"
)

// compile adds the clause and description of p to its grouping.
func (q *query) compile(ctx context.Context, spec *field.Spec, p Predicate) error {
	if !p.Op.Valid() {
		return errors.Wrapf(sqlclause.ErrUnsupportedOperator, "%q", string(p.Op))
	}

	value := p.Value
	if s, ok := value.(Scalar); ok && spec.DataType == field.String && spec.HTMLType == field.AutocompleteSelect && p.Op == sqlclause.OpEq {
		value = splitAutocomplete(string(s))
	}

	switch v := value.(type) {
	case List:
		if spec.IsSearchRange {
			return errors.Wrapf(sqlclause.ErrInvalidValue, "range field %q does not take a list", spec.Label)
		}
		return q.compileList(ctx, spec, p, v)
	case Range:
		return q.compileRange(spec, p, v)
	case Scalar:
		return q.compileScalar(ctx, spec, p, strings.TrimSpace(string(v)))
	case nil:
		return q.compileScalar(ctx, spec, p, "")
	}
	return errors.Errorf("unsupported value %T", value)
}

// compileList matches any (wildcard) or all of the values in serialized
// cells, and falls back to an IN test for plain cells.
func (q *query) compileList(ctx context.Context, spec *field.Spec, p Predicate, values List) error {
	values = lo.Compact(lo.Map(values, func(v string, _ int) string { return strings.TrimSpace(v) }))
	if len(values) == 0 {
		return nil
	}

	serialized := spec.IsSerialized()
	wildcard := p.Wildcard || !serialized

	var clause string
	if serialized {
		parts := make([]string, 0, len(values))
		for _, v := range values {
			pattern := field.SerializedPattern(sqlclause.Escape(q.dialect, v))
			parts = append(parts, fmt.Sprintf("( %s LIKE '%s' )", spec.Column(), pattern))
		}
		sep := " AND "
		if wildcard {
			sep = " OR "
		}
		clause = "( " + strings.Join(parts, sep) + " )"
	} else {
		op := sqlclause.OpIn
		if p.Op == sqlclause.OpNotIn {
			op = sqlclause.OpNotIn
		}
		var err error
		clause, err = sqlclause.BuildInClause(q.dialect, spec.Column(), op, values, spec.DataType.SQLType())
		if err != nil {
			return err
		}
	}

	labels := make([]string, 0, len(values))
	for _, v := range values {
		label, err := q.display(ctx, spec, v)
		if err != nil {
			return err
		}
		labels = append(labels, label)
	}

	q.addClause(p.Grouping, clause)
	q.addQill(p.Grouping, q.describe(spec, p.Op, q.joinLabels(labels, wildcard)))
	return nil
}

func (q *query) compileRange(spec *field.Spec, p Predicate, r Range) error {
	switch spec.DataType {
	case field.Date:
		return q.dateRange(spec, p.Grouping, r)
	case field.String, field.Int, field.Float:
		if spec.IsSearchRange {
			return q.searchRange(spec, p.Grouping, r)
		}
	case field.Money:
		if spec.IsSearchRange {
			cleaned, err := q.cleanRange(r)
			if err != nil {
				return err
			}
			return q.searchRange(spec, p.Grouping, cleaned)
		}
	}
	return errors.Wrapf(sqlclause.ErrInvalidValue, "%s field %q does not search by range", spec.DataType, spec.Label)
}

func (q *query) compileScalar(ctx context.Context, spec *field.Spec, p Predicate, value string) error {
	op := p.Op
	col := spec.Column()

	if spec.DataType == field.File {
		switch op {
		case sqlclause.OpIsEmpty:
			op = sqlclause.OpIsNull
		case sqlclause.OpIsNotEmpty:
			op = sqlclause.OpIsNotNull
		case sqlclause.OpIsNull, sqlclause.OpIsNotNull:
		default:
			return nil
		}
	}

	if op.IsNullTest() {
		clause, err := sqlclause.BuildClause(q.dialect, col, op, "", spec.DataType.SQLType())
		if err != nil {
			return err
		}
		q.addClause(p.Grouping, clause)
		q.addQill(p.Grouping, q.describe(spec, op, ""))
		return nil
	}

	var (
		sqlValue = value
		sqlType  = spec.DataType.SQLType()
		qill     string
		err      error
	)
	switch spec.DataType {
	case field.String:
		if qill, err = q.display(ctx, spec, value); err != nil {
			return err
		}
		if p.Wildcard {
			sqlValue = "%" + value + "%"
			op = sqlclause.OpLike
		}

	case field.Memo, field.Link:
		qill = value

	case field.Int, field.Float, field.ContactReference, field.StateProvince, field.Country:
		if qill, err = q.display(ctx, spec, value); err != nil {
			return err
		}

	case field.Money:
		if sqlValue, err = CleanMoney(value, q.opts.MoneyFormat); err != nil {
			return err
		}
		qill = sqlValue

	case field.Boolean:
		sqlValue = "0"
		qill = q.ts(msgNo)
		if q.isYes(value) {
			sqlValue = "1"
			qill = q.ts(msgYes)
		}
		sqlType = sqlclause.TypeInteger

	case field.Date:
		t, ok := ParseDate(value)
		if !ok {
			return nil
		}
		sqlValue = q.dialect.DateLiteral(t)
		qill = FormatDate(q.printer, t)

	default:
		return errors.Errorf("unsupported data type %q", spec.DataType)
	}

	clause, err := sqlclause.BuildClause(q.dialect, col, op, sqlValue, sqlType)
	if err != nil {
		return err
	}
	q.addClause(p.Grouping, clause)
	q.addQill(p.Grouping, q.describe(spec, op, qill))
	return nil
}

// display returns the label shown for value in descriptions.
func (q *query) display(ctx context.Context, spec *field.Spec, value string) (string, error) {
	if label, ok := q.catalog.Options(spec.ID).Label(value); ok {
		return label, nil
	}
	if q.lookup == nil {
		return value, nil
	}
	id, err := cast.ToInt64E(value)
	if err != nil {
		return value, nil
	}

	var name string
	switch spec.DataType {
	case field.ContactReference:
		name, err = q.lookup.ContactSortName(ctx, id)
		// a missing contact is described without a name
		return name, err
	case field.StateProvince:
		name, err = q.lookup.StateProvinceName(ctx, id)
	case field.Country:
		name, err = q.lookup.CountryName(ctx, id)
	default:
		return value, nil
	}
	if err != nil {
		return "", err
	}
	if name == "" {
		return value, nil
	}
	return name, nil
}

func (q *query) isYes(value string) bool {
	lower := strings.ToLower(value)
	if lower == "yes" || lower == strings.ToLower(q.ts(msgYes)) {
		return true
	}
	b, err := cast.ToBoolE(value)
	return err == nil && b
}

func (q *query) describe(spec *field.Spec, op sqlclause.Op, value string) string {
	return strings.TrimSpace(fmt.Sprintf("%s %s %s", spec.Label, op, value))
}

// joinLabels renders "a, b OR c" or "a, b AND c".
func (q *query) joinLabels(labels []string, or bool) string {
	if len(labels) <= 1 {
		return strings.Join(labels, "")
	}
	conj := q.ts(msgAND)
	if or {
		conj = q.ts(msgOR)
	}
	last := len(labels) - 1
	return strings.Join(labels[:last], ", ") + " " + conj + " " + labels[last]
}
