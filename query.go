package customquery

import (
	"slices"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/text/message"

	"github.com/theplant/customquery/catalog"
	"github.com/theplant/customquery/field"
	"github.com/theplant/customquery/sqlclause"
)

// Report carries hints for the caller's user interface.
type Report struct {
	// OpenPanes lists the translated titles of the search panes that
	// should be opened, in order of first use.
	OpenPanes []string
}

// Result is the assembled output of a builder.
type Result struct {
	// Select holds the select entries, each "<expr> AS <alias>".
	Select []string
	// Elements holds the aliases of the select entries.
	Elements []string
	// Tables holds every join needed to select the fields.
	Tables *Joins
	// WhereTables holds the joins needed by the where clause.
	WhereTables *Joins
	// Where is "( (a AND b) OR (c) )" over the groupings, "" when nothing filters.
	Where string
	// Qill describes the where clause per grouping.
	Qill   map[int][]string
	Report Report
}

// SelectList joins the select entries with commas.
func (r *Result) SelectList() string {
	return strings.Join(r.Select, ", ")
}

// From joins the join clauses with spaces. The caller supplies the root
// FROM of the host table.
func (r *Result) From() string {
	return r.Tables.String()
}

// Groupings returns the grouping ids that carry a description, ascending.
func (r *Result) Groupings() []int {
	keys := lo.Keys(r.Qill)
	slices.Sort(keys)
	return keys
}

// QillBuckets returns the descriptions ordered by grouping.
func (r *Result) QillBuckets() [][]string {
	return lo.Map(r.Groupings(), func(g int, _ int) []string {
		return r.Qill[g]
	})
}

type query struct {
	catalog *field.Catalog
	opts    *Options
	dialect sqlclause.Dialect
	lookup  catalog.Lookup
	printer *message.Printer

	selects     []string
	elements    []string
	tables      *Joins
	whereTables *Joins
	where       map[int][]string
	qill        map[int][]string
	panes       []string
}

func newQuery(cat *field.Catalog, opts *Options) *query {
	return &query{
		catalog:     cat,
		opts:        opts,
		dialect:     opts.Dialect,
		lookup:      opts.Lookup,
		printer:     opts.Printer,
		tables:      NewJoins(),
		whereTables: NewJoins(),
		where:       map[int][]string{},
		qill:        map[int][]string{},
	}
}

func (q *query) addSelect(expr, alias string) {
	if lo.Contains(q.elements, alias) {
		return
	}
	q.selects = append(q.selects, expr+" AS "+alias)
	q.elements = append(q.elements, alias)
}

func (q *query) addClause(grouping int, clause string) {
	q.where[grouping] = append(q.where[grouping], clause)
}

func (q *query) addQill(grouping int, qill string) {
	q.qill[grouping] = append(q.qill[grouping], qill)
}

func (q *query) openPane(title string) {
	if !lo.Contains(q.panes, title) {
		q.panes = append(q.panes, title)
	}
}

func (q *query) result() *Result {
	groupings := lo.Keys(q.where)
	slices.Sort(groupings)

	var buckets []string
	for _, g := range groupings {
		if clauses := q.where[g]; len(clauses) > 0 {
			buckets = append(buckets, "( "+strings.Join(clauses, " AND ")+" )")
		}
	}
	var where string
	if len(buckets) > 0 {
		where = "( " + strings.Join(buckets, " OR ") + " )"
	}

	return &Result{
		Select:      q.selects,
		Elements:    q.elements,
		Tables:      q.tables,
		WhereTables: q.whereTables,
		Where:       where,
		Qill:        q.qill,
		Report:      Report{OpenPanes: q.panes},
	}
}
