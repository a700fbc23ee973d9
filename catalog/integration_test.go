//go:build integration

package catalog

import (
	"context"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
	"github.com/theplant/testenv"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var db *gorm.DB

func TestMain(m *testing.M) {
	env, err := testenv.New().DBEnable(true).SetUp()
	if err != nil {
		panic(err)
	}
	defer env.TearDown()

	db = env.DB
	db.Logger = db.Logger.LogMode(logger.Info)

	m.Run()
}

func TestLoadFromDatabase(t *testing.T) {
	ctx := context.Background()
	models := []any{&CustomGroup{}, &CustomField{}, &OptionValueRecord{}, &ContactType{}, &Contact{}, &StateProvince{}, &Country{}}
	require.NoError(t, db.Migrator().DropTable(models...))
	require.NoError(t, db.AutoMigrate(models...))

	require.NoError(t, db.Create([]*CustomGroup{
		{ID: 1, Name: "extra", Extends: "Individual", Table: "civicrm_value_extra_1", IsActive: true},
		{ID: 2, Name: "students", Extends: "Student", Table: "civicrm_value_students_2", IsActive: true},
		{ID: 3, Name: "retired", Extends: "Contact", Table: "civicrm_value_retired_3", IsActive: false},
	}).Error)
	require.NoError(t, db.Create([]*CustomField{
		{ID: 42, CustomGroupID: 1, Label: "Alias", DataType: "String", HTMLType: "Text", IsActive: true, ColumnName: "alias_42"},
		{ID: 5, CustomGroupID: 2, Label: "Fruit", DataType: "String", HTMLType: "CheckBox", IsActive: true, OptionGroupID: lo.ToPtr[int64](7), ColumnName: "fruit_5"},
		{ID: 6, CustomGroupID: 3, Label: "Old", DataType: "String", HTMLType: "Text", IsActive: true, ColumnName: "old_6"},
	}).Error)
	require.NoError(t, db.Create([]*OptionValueRecord{
		{ID: 1, OptionGroupID: 7, Label: "Banana", Value: "b", Weight: 2},
		{ID: 2, OptionGroupID: 7, Label: "Apple", Value: "a", Weight: 1},
	}).Error)
	require.NoError(t, db.Create([]*ContactType{
		{ID: 1, Name: "Individual"},
		{ID: 2, Name: "Student", ParentID: lo.ToPtr[int64](1)},
	}).Error)
	require.NoError(t, db.Create(&Contact{ID: 12, SortName: "Doe, Jane"}).Error)

	src := NewGormSource(db)
	cat, err := Load(ctx, src, []int64{5, 6, 42})
	require.NoError(t, err)
	require.Equal(t, []int64{5, 42}, cat.IDs())

	fruit, _ := cat.Field(5)
	require.Equal(t, "civicrm_contact", fruit.Extends)
	require.Equal(t, "civicrm_value_students_2.fruit_5", fruit.Column())
	require.Equal(t, map[string]string{"a": "Apple", "b": "Banana"}, cat.Options(5).Values)

	name, err := src.ContactSortName(ctx, 12)
	require.NoError(t, err)
	require.Equal(t, "Doe, Jane", name)
}
