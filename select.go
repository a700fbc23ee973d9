package customquery

import (
	"fmt"

	"github.com/theplant/customquery/field"
)

// plan records the select entries of spec and the joins from its host
// table to its value table. Value joins needed by predicates are also
// recorded in whereTables.
func (q *query) plan(t Term, spec *field.Spec) {
	table := spec.TableName
	q.addSelect(table+".id", table+"_id")
	q.addSelect(spec.Column(), spec.Element())

	if spec.Extends == "" {
		return
	}

	filtering := len(t.Predicates) > 0
	hostAlias := q.opts.HostAlias
	joinTable := spec.Extends
	if spec.Extends == field.ContactTable {
		joinTable = hostAlias
	}

	target := joinTable
	switch loc, ok := q.opts.Locations[spec.ID]; {
	case joinTable == hostAlias:
		if q.opts.ContactSearch {
			q.openPane(q.ts(msgCustomFields))
		}
	case ok:
		key := loc.Type + "-address"
		alias := q.dialect.Quote(key)
		join := fmt.Sprintf("LEFT JOIN %s %s ON (%s.contact_id = %s.id AND %s.location_type_id = %d)",
			joinTable, alias, alias, hostAlias, alias, loc.TypeID)
		q.tables.Set(key, join)
		q.whereTables.Set(key, join)
		target = alias
	default:
		if !q.tables.Has(joinTable) {
			q.tables.Set(joinTable, "")
		}
		if !q.whereTables.Has(joinTable) {
			q.whereTables.Set(joinTable, "")
		}
	}

	join := fmt.Sprintf("LEFT JOIN %s ON %s.entity_id = %s.id", table, table, target)
	q.tables.Set(table, join)
	if filtering {
		q.whereTables.Set(table, join)
	}
}
