package catalog

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// CustomField maps civicrm_custom_field.
type CustomField struct {
	ID            int64 `gorm:"primaryKey"`
	CustomGroupID int64 `gorm:"index;not null"`
	Name          string
	Label         string `gorm:"not null"`
	DataType      string `gorm:"not null"`
	HTMLType      string `gorm:"column:html_type;not null"`
	IsSearchRange bool   `gorm:"not null;default:false"`
	IsActive      bool   `gorm:"not null;default:true"`
	OptionGroupID *int64
	ColumnName    string `gorm:"not null"`
	DateFormat    *string
	TimeFormat    *string
}

func (CustomField) TableName() string { return "civicrm_custom_field" }

// CustomGroup maps civicrm_custom_group.
type CustomGroup struct {
	ID       int64 `gorm:"primaryKey"`
	Name     string
	Title    string
	Extends  string `gorm:"not null"`
	Table    string `gorm:"column:table_name;not null"`
	IsActive bool   `gorm:"not null;default:true"`
}

func (CustomGroup) TableName() string { return "civicrm_custom_group" }

// OptionValueRecord maps civicrm_option_value.
type OptionValueRecord struct {
	ID            int64 `gorm:"primaryKey"`
	OptionGroupID int64 `gorm:"index;not null"`
	Label         string
	Value         string
	Weight        int
}

func (OptionValueRecord) TableName() string { return "civicrm_option_value" }

// ContactType maps civicrm_contact_type; sub types carry a parent.
type ContactType struct {
	ID       int64 `gorm:"primaryKey"`
	Name     string
	ParentID *int64
}

func (ContactType) TableName() string { return "civicrm_contact_type" }

// Contact maps the columns of civicrm_contact needed for descriptions.
type Contact struct {
	ID       int64 `gorm:"primaryKey"`
	SortName string
}

func (Contact) TableName() string { return "civicrm_contact" }

// StateProvince maps civicrm_state_province.
type StateProvince struct {
	ID   int64 `gorm:"primaryKey"`
	Name string
}

func (StateProvince) TableName() string { return "civicrm_state_province" }

// Country maps civicrm_country.
type Country struct {
	ID   int64 `gorm:"primaryKey"`
	Name string
}

func (Country) TableName() string { return "civicrm_country" }

// GormSource reads the catalog tables through gorm.
type GormSource struct {
	db *gorm.DB
}

var (
	_ Source = (*GormSource)(nil)
	_ Lookup = (*GormSource)(nil)
)

func NewGormSource(db *gorm.DB) *GormSource {
	return &GormSource{db: db}
}

func (s *GormSource) Fields(ctx context.Context, ids []int64) ([]*FieldRow, error) {
	var rows []*FieldRow
	if len(ids) == 0 {
		return rows, nil
	}
	err := s.db.WithContext(ctx).
		Table("civicrm_custom_field AS f").
		Select("f.id, f.label, f.data_type, f.html_type, f.is_search_range, f.option_group_id, f.custom_group_id, f.column_name, g.table_name, g.extends, f.date_format, f.time_format").
		Joins("JOIN civicrm_custom_group g ON f.custom_group_id = g.id").
		Where("g.is_active = ? AND f.is_active = ? AND f.id IN ?", true, true, ids).
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "query custom fields")
	}
	s.db.Logger.Info(ctx, "loaded %d of %d custom fields", len(rows), len(ids))
	return rows, nil
}

func (s *GormSource) OptionValues(ctx context.Context, optionGroupID int64) ([]*OptionValue, error) {
	var rows []*OptionValue
	err := s.db.WithContext(ctx).
		Model(&OptionValueRecord{}).
		Select("label, value").
		Where("option_group_id = ?", optionGroupID).
		Order("weight").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrapf(err, "query option group %d", optionGroupID)
	}
	return rows, nil
}

func (s *GormSource) ContactSubTypes(ctx context.Context) ([]string, error) {
	var names []string
	err := s.db.WithContext(ctx).
		Model(&ContactType{}).
		Where("parent_id IS NOT NULL").
		Pluck("name", &names).Error
	if err != nil {
		return nil, errors.Wrap(err, "query contact sub types")
	}
	return names, nil
}

func (s *GormSource) ContactSortName(ctx context.Context, id int64) (string, error) {
	return s.name(ctx, &Contact{}, "sort_name", id)
}

func (s *GormSource) StateProvinceName(ctx context.Context, id int64) (string, error) {
	return s.name(ctx, &StateProvince{}, "name", id)
}

func (s *GormSource) CountryName(ctx context.Context, id int64) (string, error) {
	return s.name(ctx, &Country{}, "name", id)
}

func (s *GormSource) name(ctx context.Context, model any, column string, id int64) (string, error) {
	var names []string
	err := s.db.WithContext(ctx).
		Model(model).
		Where("id = ?", id).
		Limit(1).
		Pluck(column, &names).Error
	if err != nil {
		return "", errors.Wrapf(err, "lookup %s of %d", column, id)
	}
	if len(names) == 0 {
		return "", nil
	}
	return names[0], nil
}
