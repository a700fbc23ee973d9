package catalog

import (
	"context"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/theplant/customquery/field"
	"github.com/theplant/customquery/internal/hook"
)

// ErrCorruptField reports an option widget without an option group.
var ErrCorruptField = errors.New("corrupt, delete and re-build the field")

// OptionsInput is handed to options hooks once the values of a field are cached.
type OptionsInput struct {
	Field   *field.Spec
	Values  map[string]string
	Editing bool
}

// OptionsFunc returns the option values to keep for a field.
type OptionsFunc func(ctx context.Context, input *OptionsInput) (map[string]string, error)

type Option func(*options)

type options struct {
	optionsHook func(next OptionsFunc) OptionsFunc
}

// WithOptionsHook appends hooks that may rewrite the option values of each
// field before any query is compiled.
func WithOptionsHook(hooks ...func(next OptionsFunc) OptionsFunc) Option {
	return func(o *options) {
		o.optionsHook = hook.Append(o.optionsHook, hooks...)
	}
}

func keepOptions(_ context.Context, input *OptionsInput) (map[string]string, error) {
	return input.Values, nil
}

// Load reads the specs and option caches of ids from src. Ids that are
// unknown or inactive are left out; the catalog keeps the order of ids.
func Load(ctx context.Context, src Source, ids []int64, opts ...Option) (*field.Catalog, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	cat := field.NewCatalog()
	ids = lo.Uniq(ids)
	if len(ids) == 0 {
		return cat, nil
	}

	rows, err := src.Fields(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "load custom fields")
	}
	byID := lo.KeyBy(rows, func(r *FieldRow) int64 { return r.ID })

	subTypes := map[string]bool{}
	if lo.SomeBy(rows, func(r *FieldRow) bool { _, ok := field.HostTables[r.Extends]; return !ok }) {
		names, err := src.ContactSubTypes(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "load contact sub types")
		}
		subTypes = lo.SliceToMap(names, func(n string) (string, bool) { return n, true })
	}
	isSubType := func(name string) bool { return subTypes[name] }

	optionsFunc := OptionsFunc(keepOptions)
	if o.optionsHook != nil {
		optionsFunc = o.optionsHook(optionsFunc)
	}

	for _, id := range ids {
		row, ok := byID[id]
		if !ok {
			continue
		}
		spec := row.Spec(field.ResolveHost(row.Extends, isSubType))
		opts := field.NewOptions(spec)

		if spec.NeedsOptionGroup() && spec.OptionGroupID == nil {
			return nil, errors.Wrapf(ErrCorruptField, "custom field %q", spec.Label)
		}
		if spec.HTMLType.HasOptions() && spec.DataType != field.ContactReference && spec.OptionGroupID != nil {
			values, err := src.OptionValues(ctx, *spec.OptionGroupID)
			if err != nil {
				return nil, errors.Wrapf(err, "load options of custom field %d", spec.ID)
			}
			for _, v := range values {
				opts.Set(v.Value, v.Label)
			}
			kept, err := optionsFunc(ctx, &OptionsInput{Field: spec, Values: opts.Values})
			if err != nil {
				return nil, errors.Wrapf(err, "options hook for custom field %d", spec.ID)
			}
			opts.Values = map[string]string{}
			for value, label := range kept {
				opts.Set(value, label)
			}
		}

		cat.Add(spec, opts)
	}
	return cat, nil
}
