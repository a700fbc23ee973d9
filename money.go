package customquery

import (
	"strings"
	"unicode"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/theplant/customquery/sqlclause"
)

// MoneyFormat names the separators used in monetary input.
type MoneyFormat struct {
	ThousandSeparator string
	DecimalPoint      string
}

var DefaultMoneyFormat = MoneyFormat{ThousandSeparator: ",", DecimalPoint: "."}

// CleanMoney strips currency symbols and thousand separators from value and
// returns it as a plain decimal number.
func CleanMoney(value string, f MoneyFormat) (string, error) {
	s := strings.TrimSpace(value)
	if f.ThousandSeparator != "" {
		s = strings.ReplaceAll(s, f.ThousandSeparator, "")
	}
	if f.DecimalPoint != "" && f.DecimalPoint != "." {
		s = strings.ReplaceAll(s, f.DecimalPoint, ".")
	}
	s = strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) || r == '.' || r == '-' {
			return r
		}
		return -1
	}, s)

	dec, err := decimal.NewFromString(s)
	if err != nil {
		return "", errors.Wrapf(sqlclause.ErrInvalidValue, "%q is not an amount of money", value)
	}
	return dec.String(), nil
}
