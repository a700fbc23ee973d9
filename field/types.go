package field

import "github.com/theplant/customquery/sqlclause"

// DataType is the storage type of a custom field.
type DataType string

const (
	String           DataType = "String"
	Int              DataType = "Int"
	Float            DataType = "Float"
	Money            DataType = "Money"
	Boolean          DataType = "Boolean"
	Date             DataType = "Date"
	Memo             DataType = "Memo"
	Link             DataType = "Link"
	ContactReference DataType = "ContactReference"
	File             DataType = "File"
	StateProvince    DataType = "StateProvince"
	Country          DataType = "Country"
)

// DataTypes lists every data type the compiler handles.
var DataTypes = []DataType{
	String, Int, Float, Money, Boolean, Date, Memo, Link,
	ContactReference, File, StateProvince, Country,
}

func (t DataType) Valid() bool {
	for _, v := range DataTypes {
		if v == t {
			return true
		}
	}
	return false
}

// SQLType is the escape type used when values of t are merged into SQL.
func (t DataType) SQLType() sqlclause.Type {
	switch t {
	case Int, ContactReference, StateProvince, Country:
		return sqlclause.TypeInteger
	case Float, Money:
		return sqlclause.TypeFloat
	case Boolean:
		return sqlclause.TypeBoolean
	case Date:
		return sqlclause.TypeDate
	default:
		return sqlclause.TypeString
	}
}

// IsNumeric reports whether option values of t are keyed by rounded number.
func (t DataType) IsNumeric() bool {
	return t == Int || t == Float
}

// HTMLType is the widget used to edit a custom field.
type HTMLType string

const (
	Text                     HTMLType = "Text"
	TextArea                 HTMLType = "TextArea"
	Select                   HTMLType = "Select"
	Radio                    HTMLType = "Radio"
	CheckBox                 HTMLType = "CheckBox"
	MultiSelect              HTMLType = "Multi-Select"
	AdvMultiSelect           HTMLType = "AdvMulti-Select"
	AutocompleteSelect       HTMLType = "Autocomplete-Select"
	SelectDate               HTMLType = "Select Date"
	FileWidget               HTMLType = "File"
	LinkWidget               HTMLType = "Link"
	SelectCountry            HTMLType = "Select Country"
	MultiSelectCountry       HTMLType = "Multi-Select Country"
	SelectStateProvince      HTMLType = "Select State/Province"
	MultiSelectStateProvince HTMLType = "Multi-Select State/Province"
	RichTextEditor           HTMLType = "RichTextEditor"
)

// HasOptions reports whether the widget picks from an option group.
func (h HTMLType) HasOptions() bool {
	switch h {
	case CheckBox, Radio, Select, MultiSelect, AdvMultiSelect, AutocompleteSelect:
		return true
	}
	return false
}

// IsSerialized reports whether the widget stores several values in one cell.
func (h HTMLType) IsSerialized() bool {
	switch h {
	case CheckBox, MultiSelect, AdvMultiSelect, MultiSelectCountry, MultiSelectStateProvince:
		return true
	}
	return false
}
