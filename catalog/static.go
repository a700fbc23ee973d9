package catalog

import (
	"context"
	"os"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

// Static is an in-memory catalog, usually decoded from YAML:
//
//	fields:
//	  - id: 42
//	    label: Alias
//	    data_type: String
//	    html_type: Text
//	    column_name: alias_7
//	    table_name: civicrm_value_x_1
//	    extends: Contact
//	option_groups:
//	  7:
//	    - {value: a, label: Apple}
//	contact_sub_types: [Student]
//	contacts: {12: "Doe, Jane"}
type Static struct {
	FieldRows      []*FieldRow              `yaml:"fields"`
	OptionGroups   map[int64][]*OptionValue `yaml:"option_groups"`
	SubTypes       []string                 `yaml:"contact_sub_types"`
	Contacts       map[int64]string         `yaml:"contacts"`
	StateProvinces map[int64]string         `yaml:"state_provinces"`
	Countries      map[int64]string         `yaml:"countries"`
}

var (
	_ Source = (*Static)(nil)
	_ Lookup = (*Static)(nil)
)

// ParseStatic decodes a YAML catalog.
func ParseStatic(data []byte) (*Static, error) {
	s := &Static{}
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, errors.Wrap(err, "decode static catalog")
	}
	return s, nil
}

// ReadStatic decodes the YAML catalog stored at path.
func ReadStatic(path string) (*Static, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read static catalog %s", path)
	}
	return ParseStatic(data)
}

func (s *Static) Fields(_ context.Context, ids []int64) ([]*FieldRow, error) {
	wanted := lo.SliceToMap(ids, func(id int64) (int64, bool) { return id, true })
	return lo.Filter(s.FieldRows, func(r *FieldRow, _ int) bool {
		return wanted[r.ID]
	}), nil
}

func (s *Static) OptionValues(_ context.Context, optionGroupID int64) ([]*OptionValue, error) {
	return s.OptionGroups[optionGroupID], nil
}

func (s *Static) ContactSubTypes(context.Context) ([]string, error) {
	return s.SubTypes, nil
}

func (s *Static) ContactSortName(_ context.Context, id int64) (string, error) {
	return s.Contacts[id], nil
}

func (s *Static) StateProvinceName(_ context.Context, id int64) (string, error) {
	return s.StateProvinces[id], nil
}

func (s *Static) CountryName(_ context.Context, id int64) (string, error) {
	return s.Countries[id], nil
}
