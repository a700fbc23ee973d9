// Package field describes custom fields: their metadata, the host tables
// they extend and the option values that constrain them.
package field

import "fmt"

const (
	ContactTable = "civicrm_contact"
	GroupTable   = "civicrm_group"
)

// HostTables maps the entity class a custom group extends to its host table.
var HostTables = map[string]string{
	"Contact":           ContactTable,
	"Individual":        ContactTable,
	"Household":         ContactTable,
	"Organization":      ContactTable,
	"Contribution":      "civicrm_contribution",
	"ContributionRecur": "civicrm_contribution_recur",
	"Membership":        "civicrm_membership",
	"Participant":       "civicrm_participant",
	"Group":             GroupTable,
	"Relationship":      "civicrm_relationship",
	"Event":             "civicrm_event",
	"Case":              "civicrm_case",
	"Activity":          "civicrm_activity",
	"Pledge":            "civicrm_pledge",
	"Grant":             "civicrm_grant",
	"Address":           "civicrm_address",
	"Campaign":          "civicrm_campaign",
	"Survey":            "civicrm_survey",
}

// ResolveHost maps an entity class to its host table. Contact sub types fold
// to the contact table. It returns "" when extends cannot be resolved.
func ResolveHost(extends string, isContactSubType func(string) bool) string {
	if table, ok := HostTables[extends]; ok {
		return table
	}
	if isContactSubType != nil && isContactSubType(extends) {
		return ContactTable
	}
	return ""
}

// Spec is the metadata of one custom field.
type Spec struct {
	ID            int64
	Label         string
	DataType      DataType
	HTMLType      HTMLType
	IsSearchRange bool
	OptionGroupID *int64
	ColumnName    string
	TableName     string
	// Extends is the resolved host table, "" when unresolvable.
	Extends    string
	DateFormat string
	TimeFormat string
}

// Column is the qualified column holding the field value.
func (s *Spec) Column() string {
	return s.TableName + "." + s.ColumnName
}

// Element is the select alias of the field value.
func (s *Spec) Element() string {
	return fmt.Sprintf("custom_%d", s.ID)
}

// IsSerialized reports whether the field stores separator delimited values.
func (s *Spec) IsSerialized() bool {
	return s.HTMLType.IsSerialized()
}

// NeedsOptionGroup reports whether the field must be backed by an option group.
func (s *Spec) NeedsOptionGroup() bool {
	return s.HTMLType.HasOptions() && s.DataType != ContactReference && s.DataType != Boolean
}

// IsRelationalExtension reports whether the field extends groups. Group
// membership is resolved by the outer query, so such fields are kept in the
// catalog but never planned or compiled.
func IsRelationalExtension(s *Spec) bool {
	return s.Extends == GroupTable
}
