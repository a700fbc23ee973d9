package field

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Attributes are the display attributes cached with the options of a field.
type Attributes struct {
	Label      string
	DataType   DataType
	HTMLType   HTMLType
	DateFormat string
	TimeFormat string
}

// Options caches option values of a field, value to label.
type Options struct {
	Attributes Attributes
	Values     map[string]string
}

// NewOptions returns an empty option cache for s.
func NewOptions(s *Spec) *Options {
	o := &Options{
		Attributes: Attributes{
			Label:    s.Label,
			DataType: s.DataType,
			HTMLType: s.HTMLType,
		},
		Values: map[string]string{},
	}
	if s.HTMLType == SelectDate {
		o.Attributes.DateFormat = s.DateFormat
		o.Attributes.TimeFormat = s.TimeFormat
	}
	return o
}

// Set stores label under the cache key of value.
func (o *Options) Set(value, label string) {
	if o.Values == nil {
		o.Values = map[string]string{}
	}
	o.Values[OptionKey(o.Attributes.DataType, value)] = label
}

// Label resolves value to its option label.
func (o *Options) Label(value string) (string, bool) {
	if o == nil || len(o.Values) == 0 {
		return "", false
	}
	label, ok := o.Values[OptionKey(o.Attributes.DataType, value)]
	return label, ok
}

// OptionKey is the cache key of value. Int and Float values are rounded to
// two decimals and printed in shortest form, so "1" and "1.00" share a key.
func OptionKey(t DataType, value string) string {
	value = strings.TrimSpace(value)
	if !t.IsNumeric() {
		return value
	}
	dec, err := decimal.NewFromString(value)
	if err != nil {
		return value
	}
	return dec.Round(2).String()
}
