package customquery_test

import (
	"context"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"

	"github.com/theplant/customquery"
	"github.com/theplant/customquery/catalog"
)

func row(id int64, label, dataType, htmlType, table, column, extends string) *catalog.FieldRow {
	return &catalog.FieldRow{
		ID:         id,
		Label:      label,
		DataType:   dataType,
		HTMLType:   htmlType,
		TableName:  table,
		ColumnName: column,
		Extends:    extends,
	}
}

func withGroup(r *catalog.FieldRow, group int64) *catalog.FieldRow {
	r.OptionGroupID = lo.ToPtr(group)
	return r
}

func searchRange(r *catalog.FieldRow) *catalog.FieldRow {
	r.IsSearchRange = true
	return r
}

func newStatic() *catalog.Static {
	return &catalog.Static{
		FieldRows: []*catalog.FieldRow{
			row(42, "Alias", "String", "Text", "civicrm_value_x_1", "alias_7", "Contact"),
			searchRange(row(17, "Score", "Int", "Text", "civicrm_value_x_1", "score_3", "Individual")),
			withGroup(row(5, "Fruit", "String", "CheckBox", "civicrm_value_y_2", "fruit_5", "Student"), 7),
			withGroup(row(6, "Color", "String", "Select", "civicrm_value_y_2", "color_6", "Contact"), 8),
			row(8, "Flag", "Boolean", "Radio", "civicrm_value_c_4", "flag_8", "Contribution"),
			row(9, "Due", "Date", "Select Date", "civicrm_value_z_3", "due_9", "Contact"),
			searchRange(row(10, "Amount", "Money", "Text", "civicrm_value_c_4", "amount_10", "Contribution")),
			row(11, "Friend", "ContactReference", "Autocomplete-Select", "civicrm_value_x_1", "friend_11", "Contact"),
			row(12, "State", "StateProvince", "Select State/Province", "civicrm_value_a_5", "state_12", "Address"),
			withGroup(row(13, "Tags", "String", "Autocomplete-Select", "civicrm_value_x_1", "tags_13", "Contact"), 9),
			row(14, "Doc", "File", "File", "civicrm_value_x_1", "doc_14", "Contact"),
			row(15, "Notes", "Memo", "TextArea", "civicrm_value_x_1", "notes_15", "Contact"),
			row(16, "Site", "Link", "Link", "civicrm_value_x_1", "site_16", "Contact"),
			row(18, "Ratio", "Float", "Text", "civicrm_value_x_1", "ratio_18", "Contact"),
			row(19, "Country", "Country", "Select Country", "civicrm_value_a_5", "country_19", "Address"),
			row(20, "Segment", "String", "Text", "civicrm_value_g_6", "segment_20", "Group"),
			withGroup(row(21, "Level", "Int", "Select", "civicrm_value_x_1", "level_21", "Contact"), 10),
			row(22, "Odd", "String", "Text", "civicrm_value_q_7", "odd_22", "Spaceship"),
			withGroup(row(23, "Sizes", "String", "Multi-Select", "civicrm_value_y_2", "sizes_23", "Contact"), 11),
			searchRange(row(24, "Code", "String", "Text", "civicrm_value_x_1", "code_24", "Contact")),
		},
		OptionGroups: map[int64][]*catalog.OptionValue{
			7:  {{Value: "a", Label: "Apple"}, {Value: "b", Label: "Banana"}},
			8:  {{Value: "r", Label: "Red"}, {Value: "u", Label: "Blue"}},
			9:  {{Value: "a", Label: "Alpha"}, {Value: "b", Label: "Beta"}},
			10: {{Value: "1.00", Label: "Gold"}, {Value: "2", Label: "Silver"}},
			11: {{Value: "S", Label: "Small"}, {Value: "L", Label: "Large"}},
		},
		SubTypes:       []string{"Student"},
		Contacts:       map[int64]string{12: "Doe, Jane"},
		StateProvinces: map[int64]string{1004: "California"},
		Countries:      map[int64]string{1228: "United States"},
	}
}

func query(t *testing.T, terms []customquery.Term, opts ...customquery.Option) (*customquery.Result, error) {
	t.Helper()
	b, err := customquery.Load(context.Background(), newStatic(), terms, opts...)
	require.NoError(t, err)
	return b.Query(context.Background())
}
