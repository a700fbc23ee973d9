package catalog

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"

	"github.com/theplant/customquery/field"
)

func testStatic() *Static {
	return &Static{
		FieldRows: []*FieldRow{
			{ID: 42, Label: "Alias", DataType: "String", HTMLType: "Text", ColumnName: "alias_7", TableName: "civicrm_value_x_1", Extends: "Contact"},
			{ID: 17, Label: "Score", DataType: "Int", HTMLType: "Select", OptionGroupID: lo.ToPtr[int64](3), ColumnName: "score_3", TableName: "civicrm_value_x_1", Extends: "Individual"},
			{ID: 5, Label: "Fruit", DataType: "String", HTMLType: "CheckBox", OptionGroupID: lo.ToPtr[int64](7), ColumnName: "fruit_5", TableName: "civicrm_value_y_2", Extends: "Student"},
			{ID: 8, Label: "Flag", DataType: "Boolean", HTMLType: "Radio", ColumnName: "flag_8", TableName: "civicrm_value_y_2", Extends: "Contribution"},
			{ID: 9, Label: "Due", DataType: "Date", HTMLType: "Select Date", DateFormat: lo.ToPtr("mm/dd/yy"), TimeFormat: lo.ToPtr("2"), ColumnName: "due_9", TableName: "civicrm_value_z_3", Extends: "Spaceship"},
		},
		OptionGroups: map[int64][]*OptionValue{
			3: {{Value: "1.00", Label: "Low"}, {Value: "2", Label: "High"}},
			7: {{Value: "a", Label: "Apple"}, {Value: "b", Label: "Banana"}},
		},
		SubTypes: []string{"Student"},
	}
}

func label(o *field.Options, value string) string {
	l, _ := o.Label(value)
	return l
}

func TestLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("specs follow request order", func(t *testing.T) {
		cat, err := Load(ctx, testStatic(), []int64{9, 42, 17, 1000, 42, 5, 8})
		require.NoError(t, err)
		require.Equal(t, []int64{9, 42, 17, 5, 8}, cat.IDs())

		alias, ok := cat.Field(42)
		require.True(t, ok)
		require.Equal(t, "civicrm_contact", alias.Extends)
		require.Equal(t, "civicrm_value_x_1.alias_7", alias.Column())

		fruit, _ := cat.Field(5)
		require.Equal(t, "civicrm_contact", fruit.Extends, "sub types fold to contact")

		flag, _ := cat.Field(8)
		require.Equal(t, "civicrm_contribution", flag.Extends)

		due, _ := cat.Field(9)
		require.Equal(t, "", due.Extends)
		require.Equal(t, "mm/dd/yy", cat.Options(9).Attributes.DateFormat)
		require.Equal(t, "2", cat.Options(9).Attributes.TimeFormat)
	})

	t.Run("option caches", func(t *testing.T) {
		cat, err := Load(ctx, testStatic(), []int64{17, 5, 8})
		require.NoError(t, err)

		require.Equal(t, map[string]string{"1": "Low", "2": "High"}, cat.Options(17).Values)
		require.Equal(t, "Low", label(cat.Options(17), "1.00"))
		require.Equal(t, "Banana", label(cat.Options(5), "b"))
		require.Empty(t, cat.Options(8).Values, "boolean radios need no option group")
		require.Equal(t, "Score", cat.Options(17).Attributes.Label)
		require.Equal(t, field.Select, cat.Options(17).Attributes.HTMLType)
	})

	t.Run("corrupt option field", func(t *testing.T) {
		src := testStatic()
		src.FieldRows[2].OptionGroupID = nil
		_, err := Load(ctx, src, []int64{5})
		require.True(t, errors.Is(err, ErrCorruptField))
		require.ErrorContains(t, err, `custom field "Fruit": corrupt`)
	})

	t.Run("boolean radios with a group keep their options", func(t *testing.T) {
		src := testStatic()
		src.FieldRows[3].OptionGroupID = lo.ToPtr[int64](7)
		cat, err := Load(ctx, src, []int64{8})
		require.NoError(t, err)
		require.Equal(t, "Apple", label(cat.Options(8), "a"))
	})

	t.Run("contact reference selects need no option group", func(t *testing.T) {
		src := testStatic()
		src.FieldRows = append(src.FieldRows, &FieldRow{ID: 11, Label: "Friend", DataType: "ContactReference", HTMLType: "Autocomplete-Select", ColumnName: "friend_11", TableName: "civicrm_value_x_1", Extends: "Contact"})
		cat, err := Load(ctx, src, []int64{11})
		require.NoError(t, err)
		require.Equal(t, 1, cat.Len())
	})

	t.Run("options hooks run in order", func(t *testing.T) {
		var seen []int64
		drop := func(next OptionsFunc) OptionsFunc {
			return func(ctx context.Context, input *OptionsInput) (map[string]string, error) {
				seen = append(seen, input.Field.ID)
				require.False(t, input.Editing)
				values, err := next(ctx, input)
				if err != nil {
					return nil, err
				}
				delete(values, "b")
				return values, nil
			}
		}
		add := func(next OptionsFunc) OptionsFunc {
			return func(ctx context.Context, input *OptionsInput) (map[string]string, error) {
				values, err := next(ctx, input)
				if err != nil {
					return nil, err
				}
				if input.Field.DataType == field.Int {
					values["3.000"] = "Extreme"
				}
				return values, nil
			}
		}

		cat, err := Load(ctx, testStatic(), []int64{42, 5, 17}, WithOptionsHook(drop), WithOptionsHook(add))
		require.NoError(t, err)
		require.Equal(t, []int64{5, 17}, seen, "only fields with option groups")
		require.Equal(t, map[string]string{"a": "Apple"}, cat.Options(5).Values)
		require.Equal(t, "Extreme", label(cat.Options(17), "3"))
	})

	t.Run("hook errors abort", func(t *testing.T) {
		fail := func(next OptionsFunc) OptionsFunc {
			return func(ctx context.Context, input *OptionsInput) (map[string]string, error) {
				return nil, errors.New("boom")
			}
		}
		_, err := Load(ctx, testStatic(), []int64{5}, WithOptionsHook(fail))
		require.ErrorContains(t, err, "options hook for custom field 5: boom")
	})

	t.Run("no ids", func(t *testing.T) {
		cat, err := Load(ctx, testStatic(), nil)
		require.NoError(t, err)
		require.Equal(t, 0, cat.Len())
	})
}
