package customquery

// Messages shown in descriptions. Translations are looked up by these keys
// in the catalog of the configured printer; month names are keys too.
const (
	msgYes            = "Yes"
	msgNo             = "No"
	msgOR             = "OR"
	msgAND            = "AND"
	msgAnd            = "and"
	msgGreaterOrEqual = "greater than or equal to '%s'"
	msgLessOrEqual    = "less than or equal to '%s'"
	msgCustomFields   = "Custom Fields"
)

// Messages lists every translatable key.
var Messages = []string{
	msgYes, msgNo, msgOR, msgAND, msgAnd,
	msgGreaterOrEqual, msgLessOrEqual, msgCustomFields,
	"January", "February", "March", "April", "May", "June", "July",
	"August", "September", "October", "November", "December",
}

func (q *query) ts(key string, args ...any) string {
	return q.printer.Sprintf(key, args...)
}
