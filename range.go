package customquery

import (
	"fmt"
	"strings"

	"github.com/theplant/customquery/field"
	"github.com/theplant/customquery/sqlclause"
)

// searchRange emits "col >= from" and "col <= to" for the present ends.
// String ends are quoted; no end is lower-cased.
func (q *query) searchRange(spec *field.Spec, grouping int, r Range) error {
	t := spec.DataType.SQLType()
	var qill []string

	if r.From != nil {
		lit, err := sqlclause.Literal(q.dialect, *r.From, t)
		if err != nil {
			return err
		}
		q.addClause(grouping, fmt.Sprintf("%s >= %s", spec.Column(), lit))
		qill = append(qill, q.ts(msgGreaterOrEqual, *r.From))
	}
	if r.To != nil {
		lit, err := sqlclause.Literal(q.dialect, *r.To, t)
		if err != nil {
			return err
		}
		q.addClause(grouping, fmt.Sprintf("%s <= %s", spec.Column(), lit))
		qill = append(qill, q.ts(msgLessOrEqual, *r.To))
	}

	if len(qill) > 0 {
		q.addQill(grouping, spec.Label+" - "+strings.Join(qill, " "+q.ts(msgAnd)+" "))
	}
	return nil
}

// dateRange emits independent bounds for the ends that parse. Nothing is
// emitted when neither does.
func (q *query) dateRange(spec *field.Spec, grouping int, r Range) error {
	bounds := []struct {
		end *string
		op  sqlclause.Op
	}{
		{r.From, sqlclause.OpGte},
		{r.To, sqlclause.OpLte},
	}
	for _, b := range bounds {
		if b.end == nil {
			continue
		}
		t, ok := ParseDate(*b.end)
		if !ok {
			continue
		}
		clause, err := sqlclause.BuildClause(q.dialect, spec.Column(), b.op, q.dialect.DateLiteral(t), sqlclause.TypeDate)
		if err != nil {
			return err
		}
		q.addClause(grouping, clause)
		q.addQill(grouping, q.describe(spec, b.op, FormatDate(q.printer, t)))
	}
	return nil
}

func (q *query) cleanRange(r Range) (Range, error) {
	var out Range
	if r.From != nil {
		from, err := CleanMoney(*r.From, q.opts.MoneyFormat)
		if err != nil {
			return out, err
		}
		out.From = &from
	}
	if r.To != nil {
		to, err := CleanMoney(*r.To, q.opts.MoneyFormat)
		if err != nil {
			return out, err
		}
		out.To = &to
	}
	return out, nil
}
