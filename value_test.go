package customquery_test

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/theplant/customquery"
	"github.com/theplant/customquery/sqlclause"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		value  string
		want   time.Time
		wantOK bool
	}{
		{value: "2021", want: time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC), wantOK: true},
		{value: "20210304", want: time.Date(2021, 3, 4, 0, 0, 0, 0, time.UTC), wantOK: true},
		{value: "20210304103000", want: time.Date(2021, 3, 4, 10, 30, 0, 0, time.UTC), wantOK: true},
		{value: "2021-03-04", want: time.Date(2021, 3, 4, 0, 0, 0, 0, time.UTC), wantOK: true},
		{value: " 2021-03-04 10:30:00 ", want: time.Date(2021, 3, 4, 10, 30, 0, 0, time.UTC), wantOK: true},
		{value: "03/04/2021", want: time.Date(2021, 3, 4, 0, 0, 0, 0, time.UTC), wantOK: true},
		{value: "03-04-2021", want: time.Date(2021, 4, 3, 0, 0, 0, 0, time.UTC), wantOK: true},
		{value: "03-04-2021 10:30", want: time.Date(2021, 4, 3, 10, 30, 0, 0, time.UTC), wantOK: true},
		{value: "20210101000005", want: time.Date(2021, 1, 1, 0, 0, 5, 0, time.UTC), wantOK: true},
		{value: "20210101000500", want: time.Date(2021, 1, 1, 0, 5, 0, 0, time.UTC), wantOK: true},
		{value: "202101011005", want: time.Date(2021, 1, 1, 10, 5, 0, 0, time.UTC), wantOK: true},
		{value: "202101010005", want: time.Date(2021, 1, 1, 0, 5, 0, 0, time.UTC), wantOK: true},
		{value: "20211301000000", wantOK: false},
		{value: "March 4, 2021", want: time.Date(2021, 3, 4, 0, 0, 0, 0, time.UTC), wantOK: true},
		{value: "", wantOK: false},
		{value: "21", wantOK: false},
		{value: "tomorrow", wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			got, ok := customquery.ParseDate(tt.value)
			require.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				require.True(t, tt.want.Equal(got), "got %s", got)
			}
		})
	}
}

func TestFormatDate(t *testing.T) {
	p := message.NewPrinter(language.English)
	require.Equal(t, "January 1st, 2021", customquery.FormatDate(p, time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)))
	require.Equal(t, "February 22nd, 2020 3:05 PM", customquery.FormatDate(p, time.Date(2020, 2, 22, 15, 5, 0, 0, time.UTC)))
}

func TestCleanMoney(t *testing.T) {
	european := customquery.MoneyFormat{ThousandSeparator: ".", DecimalPoint: ","}
	tests := []struct {
		value      string
		format     customquery.MoneyFormat
		want       string
		wantErrMsg string
	}{
		{value: "1234", format: customquery.DefaultMoneyFormat, want: "1234"},
		{value: "$1,234.50", format: customquery.DefaultMoneyFormat, want: "1234.5"},
		{value: " -12.00 USD ", format: customquery.DefaultMoneyFormat, want: "-12"},
		{value: "€ 1.234,56", format: european, want: "1234.56"},
		{value: "free", format: customquery.DefaultMoneyFormat, wantErrMsg: `"free" is not an amount of money: invalid value`},
		{value: "1.2.3", format: customquery.DefaultMoneyFormat, wantErrMsg: "invalid value"},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			got, err := customquery.CleanMoney(tt.value, tt.format)
			if tt.wantErrMsg != "" {
				require.ErrorContains(t, err, tt.wantErrMsg)
				require.True(t, errors.Is(err, sqlclause.ErrInvalidValue))
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}
