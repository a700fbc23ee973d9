package customquery_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/theplant/customquery"
	"github.com/theplant/customquery/sqlclause"
)

func TestSelect(t *testing.T) {
	t.Run("contact field joins the host alias", func(t *testing.T) {
		res, err := query(t, []customquery.Term{
			{FieldID: 42, Predicates: []customquery.Predicate{pred(sqlclause.OpEq, customquery.Scalar("Bob"))}},
		})
		require.NoError(t, err)
		require.Equal(t, []string{
			"civicrm_value_x_1.id AS civicrm_value_x_1_id",
			"civicrm_value_x_1.alias_7 AS custom_42",
		}, res.Select)
		require.Equal(t, "civicrm_value_x_1.id AS civicrm_value_x_1_id, civicrm_value_x_1.alias_7 AS custom_42", res.SelectList())
		require.Equal(t, []string{"civicrm_value_x_1_id", "custom_42"}, res.Elements)
		require.Equal(t, "LEFT JOIN civicrm_value_x_1 ON civicrm_value_x_1.entity_id = contact_a.id", res.From())
		require.Equal(t, []string{"civicrm_value_x_1"}, res.WhereTables.Keys())
		require.Empty(t, res.Report.OpenPanes)
	})

	t.Run("join only terms are not filtering", func(t *testing.T) {
		res, err := query(t, []customquery.Term{{FieldID: 42}, {FieldID: 6}})
		require.NoError(t, err)
		require.Equal(t, []string{"civicrm_value_x_1", "civicrm_value_y_2"}, res.Tables.Keys())
		require.Equal(t, 0, res.WhereTables.Len())
		require.Empty(t, res.Where)
	})

	t.Run("fields of one table share the id column", func(t *testing.T) {
		res, err := query(t, []customquery.Term{{FieldID: 42}, {FieldID: 17}})
		require.NoError(t, err)
		require.Equal(t, []string{
			"civicrm_value_x_1.id AS civicrm_value_x_1_id",
			"civicrm_value_x_1.alias_7 AS custom_42",
			"civicrm_value_x_1.score_3 AS custom_17",
		}, res.Select)
		require.Equal(t, 1, res.Tables.Len())
	})

	t.Run("host alias is configurable", func(t *testing.T) {
		res, err := query(t, []customquery.Term{{FieldID: 5}}, customquery.WithHostAlias("c"))
		require.NoError(t, err)
		require.Equal(t, "LEFT JOIN civicrm_value_y_2 ON civicrm_value_y_2.entity_id = c.id", res.From())
	})

	t.Run("other hosts are required from the outer query", func(t *testing.T) {
		res, err := query(t, []customquery.Term{
			{FieldID: 8, Predicates: []customquery.Predicate{pred(sqlclause.OpEq, customquery.Scalar("1"))}},
		})
		require.NoError(t, err)
		require.Equal(t, []string{"civicrm_contribution", "civicrm_value_c_4"}, res.Tables.Keys())
		require.Equal(t, []string{"civicrm_contribution", "civicrm_value_c_4"}, res.WhereTables.Keys())
		clause, ok := res.Tables.Get("civicrm_contribution")
		require.True(t, ok)
		require.Empty(t, clause)
		require.Equal(t, "LEFT JOIN civicrm_value_c_4 ON civicrm_value_c_4.entity_id = civicrm_contribution.id", res.From())
	})

	t.Run("location scoped address field", func(t *testing.T) {
		res, err := query(t, []customquery.Term{
			{FieldID: 12, Predicates: []customquery.Predicate{pred(sqlclause.OpEq, customquery.Scalar("1004"))}},
		}, customquery.WithLocations(map[int64]customquery.Location{12: {Type: "Home", TypeID: 1}}))
		require.NoError(t, err)
		require.Equal(t, []string{
			"LEFT JOIN civicrm_address `Home-address` ON (`Home-address`.contact_id = contact_a.id AND `Home-address`.location_type_id = 1)",
			"LEFT JOIN civicrm_value_a_5 ON civicrm_value_a_5.entity_id = `Home-address`.id",
		}, res.Tables.Clauses())
		require.Equal(t, []string{"Home-address", "civicrm_value_a_5"}, res.WhereTables.Keys())
	})

	t.Run("location alias on postgres", func(t *testing.T) {
		res, err := query(t, []customquery.Term{{FieldID: 19}},
			customquery.WithDialect(sqlclause.Postgres),
			customquery.WithLocations(map[int64]customquery.Location{19: {Type: "Work", TypeID: 2}}),
		)
		require.NoError(t, err)
		require.Equal(t, `LEFT JOIN civicrm_address "Work-address" ON ("Work-address".contact_id = contact_a.id AND "Work-address".location_type_id = 2) LEFT JOIN civicrm_value_a_5 ON civicrm_value_a_5.entity_id = "Work-address".id`, res.From())
		require.Equal(t, []string{"Work-address"}, res.WhereTables.Keys())
	})

	t.Run("locations do not apply to contact fields", func(t *testing.T) {
		res, err := query(t, []customquery.Term{{FieldID: 42}},
			customquery.WithLocations(map[int64]customquery.Location{42: {Type: "Home", TypeID: 1}}),
		)
		require.NoError(t, err)
		require.Equal(t, "LEFT JOIN civicrm_value_x_1 ON civicrm_value_x_1.entity_id = contact_a.id", res.From())
	})

	t.Run("group fields are left out", func(t *testing.T) {
		res, err := query(t, []customquery.Term{
			{FieldID: 20, Predicates: []customquery.Predicate{pred(sqlclause.OpEq, customquery.Scalar("x"))}},
			{FieldID: 42},
		})
		require.NoError(t, err)
		require.Equal(t, []string{"civicrm_value_x_1_id", "custom_42"}, res.Elements)
		require.Equal(t, []string{"civicrm_value_x_1"}, res.Tables.Keys())
	})

	t.Run("unresolved hosts are selected without joins", func(t *testing.T) {
		res, err := query(t, []customquery.Term{{FieldID: 22}})
		require.NoError(t, err)
		require.Equal(t, []string{"civicrm_value_q_7_id", "custom_22"}, res.Elements)
		require.Equal(t, 0, res.Tables.Len())
	})

	t.Run("contact search opens the custom fields pane", func(t *testing.T) {
		res, err := query(t, []customquery.Term{{FieldID: 42}, {FieldID: 5}, {FieldID: 8}}, customquery.WithContactSearch(true))
		require.NoError(t, err)
		require.Equal(t, []string{"Custom Fields"}, res.Report.OpenPanes)

		res, err = query(t, []customquery.Term{{FieldID: 8}}, customquery.WithContactSearch(true))
		require.NoError(t, err)
		require.Empty(t, res.Report.OpenPanes)
	})

	t.Run("elements follow term order", func(t *testing.T) {
		res, err := query(t, []customquery.Term{{FieldID: 9}, {FieldID: 42}})
		require.NoError(t, err)
		require.Equal(t, []string{"civicrm_value_z_3_id", "custom_9", "civicrm_value_x_1_id", "custom_42"}, res.Elements)
		require.Equal(t, []string{"civicrm_value_z_3", "civicrm_value_x_1"}, res.Tables.Keys())
	})
}

func TestJoins(t *testing.T) {
	j := customquery.NewJoins()
	j.Set("b", "JOIN b")
	j.Set("a", "")
	j.Set("c", "JOIN c")
	j.Set("b", "LEFT JOIN b")

	require.Equal(t, []string{"b", "a", "c"}, j.Keys())
	require.Equal(t, 3, j.Len())
	require.True(t, j.Has("a"))
	require.False(t, j.Has("d"))
	require.Equal(t, "LEFT JOIN b JOIN c", j.String())
}
