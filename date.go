package customquery

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jinzhu/now"
	"golang.org/x/text/message"
)

// DateLayouts are tried in order when parsing date values. Dashed dates are
// day first, slashed dates month first.
var DateLayouts = []string{
	"20060102",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02",
	"02-01-2006 15:04",
	"02-01-2006",
	"01/02/2006 15:04",
	"01/02/2006",
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
}

var (
	yearRegexp    = regexp.MustCompile(`^[0-9]{4}$`)
	compactRegexp = regexp.MustCompile(`^([0-9]{4})([0-9]{2})([0-9]{2})([0-9]{2})([0-9]{2})([0-9]{2})?$`)
	dateParser    = &now.Config{TimeLocation: time.UTC, TimeFormats: DateLayouts}
)

// ParseDate parses a search date. A bare year stands for the first of January.
func ParseDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	if yearRegexp.MatchString(value) {
		value = "01-01-" + value
	}
	// now only keeps zero hours and minutes when it sees a clock time
	if m := compactRegexp.FindStringSubmatch(value); m != nil {
		value = m[1] + "-" + m[2] + "-" + m[3] + " " + m[4] + ":" + m[5]
		if m[6] != "" {
			value += ":" + m[6]
		}
	}
	t, err := dateParser.Parse(value)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// FormatDate renders t as "January 1st, 2021", followed by the time of day
// when t is not midnight. The month name is translated by p.
func FormatDate(p *message.Printer, t time.Time) string {
	s := fmt.Sprintf("%s %s, %d", p.Sprintf(t.Month().String()), humanize.Ordinal(t.Day()), t.Year())
	if t.Hour() != 0 || t.Minute() != 0 || t.Second() != 0 {
		s += " " + t.Format("3:04 PM")
	}
	return s
}
