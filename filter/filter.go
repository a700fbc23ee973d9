// Package filter parses JSON filter documents into custom query terms.
//
//	{
//	  "fields": [9, 12],
//	  "or": [
//	    {"custom_42": {"eq": "Bob", "wildcard": true}, "custom_17": {"range": {"from": 10, "to": 20}}},
//	    {"custom_5": {"in": ["a", "b"]}}
//	  ]
//	}
//
// Each element of "or" is a grouping, numbered from 0. Fields listed in
// "fields" are selected without filtering. A document with neither key is
// a single grouping.
package filter

import (
	"cmp"
	"regexp"
	"slices"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/spf13/cast"

	"github.com/theplant/customquery"
	"github.com/theplant/customquery/internal/hook"
	"github.com/theplant/customquery/sqlclause"
)

const (
	KeyFields   = "fields"
	KeyOr       = "or"
	KeyWildcard = "wildcard"
)

// Operators maps the comparison operators of a document to SQL operators.
var Operators = map[string]sqlclause.Op{
	"eq":    sqlclause.OpEq,
	"neq":   sqlclause.OpNeq,
	"lt":    sqlclause.OpLt,
	"lte":   sqlclause.OpLte,
	"gt":    sqlclause.OpGt,
	"gte":   sqlclause.OpGte,
	"like":  sqlclause.OpLike,
	"in":    sqlclause.OpIn,
	"notIn": sqlclause.OpNotIn,
}

// operatorOrder is the order predicates of one field are emitted in.
var operatorOrder = []string{
	"eq", "neq", "lt", "lte", "gt", "gte", "like", "in", "notIn",
	"range", "isNull", "isEmpty",
}

var fieldKeyRegexp = regexp.MustCompile(`^(?:custom_)?([0-9]+)$`)

// HandleOperatorInput provides input information for operator handling
type HandleOperatorInput struct {
	FieldName string // Key of the field (e.g., "custom_42")
	FieldID   int64
	Operator  string // Name of the operator (e.g., "eq", "range")
	Value     any    // Decoded value, numbers as json.Number
	Grouping  int
	Wildcard  bool
}

// HandleOperatorFunc turns one operator of a field into predicates.
// To pass control to the next handler in the chain, call next(input).
type HandleOperatorFunc func(input *HandleOperatorInput) ([]customquery.Predicate, error)

type Options struct {
	handleOperatorHook func(next HandleOperatorFunc) HandleOperatorFunc
	complexityLimits   *customquery.ComplexityLimits
}

type Option func(*Options)

// WithHandleOperatorHook adds custom operator handler hooks.
// Hooks are applied in the order they are added.
// The default handler is always at the end of the chain.
func WithHandleOperatorHook(hooks ...func(next HandleOperatorFunc) HandleOperatorFunc) Option {
	return func(o *Options) {
		o.handleOperatorHook = hook.Prepend(o.handleOperatorHook, hooks...)
	}
}

// WithComplexityLimits rejects documents whose terms exceed limits.
func WithComplexityLimits(limits *customquery.ComplexityLimits) Option {
	return func(o *Options) {
		o.complexityLimits = limits
	}
}

// Parse converts a JSON filter document into terms ordered by the listed
// fields first, then by field id within each grouping.
func Parse(data []byte, opts ...Option) ([]customquery.Term, error) {
	filterMap, err := ToMap(data)
	if err != nil {
		return nil, err
	}
	return FromMap(filterMap, opts...)
}

// FromMap converts a decoded filter document into terms.
func FromMap(filterMap map[string]any, opts ...Option) ([]customquery.Term, error) {
	if filterMap == nil {
		return nil, nil
	}

	options := &Options{}
	for _, opt := range opts {
		opt(options)
	}
	handle := HandleOperatorFunc(defaultHandleOperator)
	if options.handleOperatorHook != nil {
		handle = options.handleOperatorHook(handle)
	}

	b := &termsBuilder{index: map[int64]int{}}

	_, hasFields := filterMap[KeyFields]
	_, hasOr := filterMap[KeyOr]
	if !hasFields && !hasOr {
		if err := b.addBucket(filterMap, 0, handle); err != nil {
			return nil, err
		}
		return b.finish(options)
	}

	for key := range filterMap {
		if key != KeyFields && key != KeyOr {
			return nil, errors.Errorf("unexpected key %q next to %q and %q", key, KeyFields, KeyOr)
		}
	}

	if v, ok := filterMap[KeyFields]; ok {
		ids, ok := v.([]any)
		if !ok {
			return nil, errors.Errorf("%q must be a list", KeyFields)
		}
		for _, item := range ids {
			id, err := cast.ToInt64E(item)
			if err != nil {
				return nil, errors.Wrapf(err, "field id %v", item)
			}
			b.term(id)
		}
	}

	if v, ok := filterMap[KeyOr]; ok {
		buckets, ok := v.([]any)
		if !ok {
			return nil, errors.Errorf("%q must be a list", KeyOr)
		}
		for i, item := range buckets {
			bucket, ok := item.(map[string]any)
			if !ok {
				return nil, errors.Errorf("%s[%d] must be an object", KeyOr, i)
			}
			if err := b.addBucket(bucket, i, handle); err != nil {
				return nil, err
			}
		}
	}

	return b.finish(options)
}

type termsBuilder struct {
	terms []customquery.Term
	index map[int64]int
}

func (b *termsBuilder) term(id int64) *customquery.Term {
	i, ok := b.index[id]
	if !ok {
		i = len(b.terms)
		b.index[id] = i
		b.terms = append(b.terms, customquery.Term{FieldID: id})
	}
	return &b.terms[i]
}

func (b *termsBuilder) finish(options *Options) ([]customquery.Term, error) {
	if err := customquery.CheckComplexity(b.terms, options.complexityLimits); err != nil {
		return nil, err
	}
	return b.terms, nil
}

func (b *termsBuilder) addBucket(bucket map[string]any, grouping int, handle HandleOperatorFunc) error {
	type fieldKey struct {
		name string
		id   int64
	}
	keys := make([]fieldKey, 0, len(bucket))
	for name := range bucket {
		m := fieldKeyRegexp.FindStringSubmatch(name)
		if m == nil {
			return errors.Errorf("invalid field key %q", name)
		}
		keys = append(keys, fieldKey{name: name, id: cast.ToInt64(m[1])})
	}
	slices.SortFunc(keys, func(a, b fieldKey) int {
		return cmp.Or(cmp.Compare(a.id, b.id), cmp.Compare(a.name, b.name))
	})

	for _, key := range keys {
		ops, ok := bucket[key.name].(map[string]any)
		if !ok {
			return errors.Errorf("%s must be an object of operators", key.name)
		}
		wildcard := false
		if v, ok := ops[KeyWildcard]; ok {
			var err error
			if wildcard, err = cast.ToBoolE(v); err != nil {
				return errors.Wrapf(err, "%s.%s", key.name, KeyWildcard)
			}
		}

		names := lo.Without(lo.Keys(ops), KeyWildcard)
		slices.SortFunc(names, func(a, b string) int {
			return cmp.Or(cmp.Compare(operatorRank(a), operatorRank(b)), cmp.Compare(a, b))
		})

		t := b.term(key.id)
		for _, name := range names {
			preds, err := handle(&HandleOperatorInput{
				FieldName: key.name,
				FieldID:   key.id,
				Operator:  name,
				Value:     ops[name],
				Grouping:  grouping,
				Wildcard:  wildcard,
			})
			if err != nil {
				return errors.Wrapf(err, "%s.%s", key.name, name)
			}
			t.Predicates = append(t.Predicates, preds...)
		}
	}
	return nil
}

// operatorRank orders known operators first, the rest after them.
func operatorRank(name string) int {
	if i := slices.Index(operatorOrder, name); i >= 0 {
		return i
	}
	return len(operatorOrder)
}

func defaultHandleOperator(input *HandleOperatorInput) ([]customquery.Predicate, error) {
	p := customquery.Predicate{
		Name:     input.FieldName,
		Grouping: input.Grouping,
		Wildcard: input.Wildcard,
	}

	switch input.Operator {
	case "isNull", "isEmpty":
		b, err := cast.ToBoolE(input.Value)
		if err != nil {
			return nil, errors.Wrap(err, "expect a boolean")
		}
		switch {
		case input.Operator == "isNull" && b:
			p.Op = sqlclause.OpIsNull
		case input.Operator == "isNull":
			p.Op = sqlclause.OpIsNotNull
		case b:
			p.Op = sqlclause.OpIsEmpty
		default:
			p.Op = sqlclause.OpIsNotEmpty
		}

	case "range":
		r, err := toRange(input.Value)
		if err != nil {
			return nil, err
		}
		p.Op = sqlclause.OpEq
		p.Value = r

	case "in", "notIn":
		list, err := toList(input.Value)
		if err != nil {
			return nil, err
		}
		p.Op = Operators[input.Operator]
		p.Value = list

	default:
		op, ok := Operators[input.Operator]
		if !ok {
			return nil, errors.Errorf("unknown operator %q", input.Operator)
		}
		s, err := cast.ToStringE(input.Value)
		if err != nil {
			return nil, errors.Wrap(err, "expect a scalar")
		}
		p.Op = op
		p.Value = customquery.Scalar(s)
	}
	return []customquery.Predicate{p}, nil
}

func toList(v any) (customquery.List, error) {
	switch v := v.(type) {
	case string:
		return customquery.List(sqlclause.SplitList(v)), nil
	case []any:
		list := make(customquery.List, 0, len(v))
		for _, item := range v {
			s, err := cast.ToStringE(item)
			if err != nil {
				return nil, errors.Wrap(err, "expect a list of scalars")
			}
			list = append(list, s)
		}
		return list, nil
	}
	return nil, errors.Errorf("expect a list, got %T", v)
}

func toRange(v any) (customquery.Range, error) {
	var r customquery.Range
	m, ok := v.(map[string]any)
	if !ok {
		return r, errors.Errorf("expect an object with from and to, got %T", v)
	}
	for key, item := range m {
		s, err := cast.ToStringE(item)
		if err != nil {
			return r, errors.Wrapf(err, "range %s", key)
		}
		switch key {
		case "from":
			r.From = &s
		case "to":
			r.To = &s
		default:
			return r, errors.Errorf("unexpected range key %q", key)
		}
	}
	return r, nil
}
