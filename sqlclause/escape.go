package sqlclause

import (
	"regexp"
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Type is the declared type a value is escaped for.
type Type int

const (
	TypeString Type = iota
	TypeInteger
	TypeFloat
	TypeBoolean
	TypeDate
)

func (t Type) String() string {
	switch t {
	case TypeString:
		return "String"
	case TypeInteger:
		return "Integer"
	case TypeFloat:
		return "Float"
	case TypeBoolean:
		return "Boolean"
	case TypeDate:
		return "Date"
	}
	return "Unknown"
}

// Quoted reports whether literals of this type are wrapped in single quotes.
func (t Type) Quoted() bool {
	return t == TypeString || t == TypeDate
}

var (
	ErrInvalidValue        = errors.New("invalid value")
	ErrUnsupportedOperator = errors.New("unsupported operator")
)

var (
	integerRegexp = regexp.MustCompile(`^[-+]?[0-9]+$`)
	dateRegexp    = regexp.MustCompile(`^[0-9][0-9 :.-]*$`)
)

// Escape escapes s for a single quoted string literal.
func Escape(d Dialect, s string) string {
	return d.EscapeString(s)
}

// EscapeTyped validates value against t and returns its SQL-safe text,
// without surrounding quotes.
func EscapeTyped(d Dialect, value string, t Type) (string, error) {
	value = strings.TrimSpace(value)
	switch t {
	case TypeString:
		return d.EscapeString(value), nil
	case TypeInteger:
		if !integerRegexp.MatchString(value) {
			return "", errors.Wrapf(ErrInvalidValue, "%q is not of the type %s", value, t)
		}
		return strings.TrimPrefix(value, "+"), nil
	case TypeFloat:
		dec, err := decimal.NewFromString(value)
		if err != nil {
			return "", errors.Wrapf(ErrInvalidValue, "%q is not of the type %s", value, t)
		}
		return dec.String(), nil
	case TypeBoolean:
		b, err := cast.ToBoolE(value)
		if err != nil {
			return "", errors.Wrapf(ErrInvalidValue, "%q is not of the type %s", value, t)
		}
		if b {
			return "1", nil
		}
		return "0", nil
	case TypeDate:
		if !dateRegexp.MatchString(value) {
			return "", errors.Wrapf(ErrInvalidValue, "%q is not of the type %s", value, t)
		}
		return d.EscapeString(value), nil
	}
	return "", errors.Errorf("unknown type %d", t)
}

// Literal escapes value for t and quotes it when t is a quoted type.
func Literal(d Dialect, value string, t Type) (string, error) {
	escaped, err := EscapeTyped(d, value, t)
	if err != nil {
		return "", err
	}
	if t.Quoted() {
		return "'" + escaped + "'", nil
	}
	return escaped, nil
}

// Lower lower-cases s with Unicode aware rules.
func Lower(s string) string {
	return cases.Lower(language.Und).String(s)
}
