package customquery

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/theplant/customquery/catalog"
	"github.com/theplant/customquery/sqlclause"
)

// DefaultHostAlias is the alias of the contact table in the outer query.
const DefaultHostAlias = "contact_a"

// Location scopes an address custom field to one location type.
type Location struct {
	Type   string
	TypeID int64
}

type Option func(*Options)

type Options struct {
	ContactSearch    bool
	Locations        map[int64]Location
	HostAlias        string
	Dialect          sqlclause.Dialect
	Lookup           catalog.Lookup
	Printer          *message.Printer
	MoneyFormat      MoneyFormat
	ComplexityLimits *ComplexityLimits
	CatalogOptions   []catalog.Option
}

func defaultOptions() *Options {
	return &Options{
		HostAlias:   DefaultHostAlias,
		Dialect:     sqlclause.MySQL,
		Printer:     message.NewPrinter(language.English),
		MoneyFormat: DefaultMoneyFormat,
	}
}

// WithContactSearch reports contact extended fields to the outer contact
// search through Report.OpenPanes.
func WithContactSearch(contactSearch bool) Option {
	return func(o *Options) {
		o.ContactSearch = contactSearch
	}
}

// WithLocations joins the listed address fields through a location scoped
// address alias.
func WithLocations(locations map[int64]Location) Option {
	return func(o *Options) {
		o.Locations = locations
	}
}

func WithHostAlias(alias string) Option {
	return func(o *Options) {
		o.HostAlias = alias
	}
}

func WithDialect(d sqlclause.Dialect) Option {
	return func(o *Options) {
		o.Dialect = d
	}
}

// WithLookup decodes contact, state and country ids in descriptions.
func WithLookup(lookup catalog.Lookup) Option {
	return func(o *Options) {
		o.Lookup = lookup
	}
}

// WithPrinter translates descriptions.
func WithPrinter(p *message.Printer) Option {
	return func(o *Options) {
		o.Printer = p
	}
}

func WithMoneyFormat(f MoneyFormat) Option {
	return func(o *Options) {
		o.MoneyFormat = f
	}
}

// WithComplexityLimits rejects term sets exceeding limits. Nil disables the check.
func WithComplexityLimits(limits *ComplexityLimits) Option {
	return func(o *Options) {
		o.ComplexityLimits = limits
	}
}

// WithCatalogOptions is passed on to catalog.Load by Load.
func WithCatalogOptions(opts ...catalog.Option) Option {
	return func(o *Options) {
		o.CatalogOptions = append(o.CatalogOptions, opts...)
	}
}
