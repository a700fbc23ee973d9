// Package catalog loads custom field metadata and option values.
package catalog

import (
	"context"

	"github.com/theplant/customquery/field"
)

// Source reads the custom field catalog.
type Source interface {
	// Fields returns the active fields among ids together with the table
	// and entity class of their active custom group. Order is not significant.
	Fields(ctx context.Context, ids []int64) ([]*FieldRow, error)
	// OptionValues returns the options of an option group.
	OptionValues(ctx context.Context, optionGroupID int64) ([]*OptionValue, error)
	// ContactSubTypes returns the names of the contact sub types.
	ContactSubTypes(ctx context.Context) ([]string, error)
}

// Lookup decodes ids shown in query descriptions. Missing rows resolve to "".
type Lookup interface {
	ContactSortName(ctx context.Context, id int64) (string, error)
	StateProvinceName(ctx context.Context, id int64) (string, error)
	CountryName(ctx context.Context, id int64) (string, error)
}

// FieldRow is one row of the field catalog query.
type FieldRow struct {
	ID            int64   `gorm:"column:id" yaml:"id"`
	Label         string  `gorm:"column:label" yaml:"label"`
	DataType      string  `gorm:"column:data_type" yaml:"data_type"`
	HTMLType      string  `gorm:"column:html_type" yaml:"html_type"`
	IsSearchRange bool    `gorm:"column:is_search_range" yaml:"is_search_range"`
	OptionGroupID *int64  `gorm:"column:option_group_id" yaml:"option_group_id"`
	CustomGroupID int64   `gorm:"column:custom_group_id" yaml:"custom_group_id"`
	ColumnName    string  `gorm:"column:column_name" yaml:"column_name"`
	TableName     string  `gorm:"column:table_name" yaml:"table_name"`
	Extends       string  `gorm:"column:extends" yaml:"extends"`
	DateFormat    *string `gorm:"column:date_format" yaml:"date_format"`
	TimeFormat    *string `gorm:"column:time_format" yaml:"time_format"`
}

// Spec converts the row, with extends already resolved to a host table.
func (r *FieldRow) Spec(hostTable string) *field.Spec {
	s := &field.Spec{
		ID:            r.ID,
		Label:         r.Label,
		DataType:      field.DataType(r.DataType),
		HTMLType:      field.HTMLType(r.HTMLType),
		IsSearchRange: r.IsSearchRange,
		OptionGroupID: r.OptionGroupID,
		ColumnName:    r.ColumnName,
		TableName:     r.TableName,
		Extends:       hostTable,
	}
	if r.DateFormat != nil {
		s.DateFormat = *r.DateFormat
	}
	if r.TimeFormat != nil {
		s.TimeFormat = *r.TimeFormat
	}
	return s
}

// OptionValue is one option of an option group.
type OptionValue struct {
	Label string `gorm:"column:label" yaml:"label"`
	Value string `gorm:"column:value" yaml:"value"`
}
