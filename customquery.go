// Package customquery builds the SQL fragments filtering and selecting custom
// fields: the select list, the joins from the host entity tables to the
// custom value tables, the where clause, and a readable description of the
// filter for search result headers.
package customquery

import (
	"context"

	"github.com/pkg/errors"

	"github.com/theplant/customquery/catalog"
	"github.com/theplant/customquery/field"
)

// Prefix is the alias prefix of custom value tables.
const Prefix = "custom_value_"

// Builder compiles terms against a field catalog. It holds no state between
// calls to Query.
type Builder struct {
	catalog *field.Catalog
	terms   []Term
	opts    *Options
}

// New returns a builder over terms. Terms whose field is missing from cat
// are ignored.
func New(cat *field.Catalog, terms []Term, opts ...Option) *Builder {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	if cat == nil {
		cat = field.NewCatalog()
	}
	return &Builder{
		catalog: cat,
		terms:   mergeTerms(terms),
		opts:    o,
	}
}

// Load reads the catalog of the fields in terms from src and returns a
// builder over them. When no lookup is configured and src implements
// catalog.Lookup, src decodes ids in descriptions.
func Load(ctx context.Context, src catalog.Source, terms []Term, opts ...Option) (*Builder, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	if err := CheckComplexity(terms, o.ComplexityLimits); err != nil {
		return nil, err
	}
	cat, err := catalog.Load(ctx, src, termIDs(terms), o.CatalogOptions...)
	if err != nil {
		return nil, err
	}
	if o.Lookup == nil {
		if lookup, ok := src.(catalog.Lookup); ok {
			opts = append(opts[:len(opts):len(opts)], WithLookup(lookup))
		}
	}
	return New(cat, terms, opts...), nil
}

// Catalog returns the field catalog the builder compiles against.
func (b *Builder) Catalog() *field.Catalog {
	return b.catalog
}

// Query plans the joins, compiles the predicates and assembles the result.
func (b *Builder) Query(ctx context.Context) (*Result, error) {
	if err := CheckComplexity(b.terms, b.opts.ComplexityLimits); err != nil {
		return nil, err
	}

	q := newQuery(b.catalog, b.opts)
	for _, t := range b.terms {
		spec, ok := b.catalog.Field(t.FieldID)
		if !ok || field.IsRelationalExtension(spec) {
			continue
		}
		q.plan(t, spec)
	}
	for _, t := range b.terms {
		spec, ok := b.catalog.Field(t.FieldID)
		if !ok || field.IsRelationalExtension(spec) || len(t.Predicates) == 0 {
			continue
		}
		for _, p := range t.Predicates {
			if err := q.compile(ctx, spec, p); err != nil {
				return nil, errors.Wrapf(err, "custom field %q", spec.Label)
			}
		}
	}
	return q.result(), nil
}
