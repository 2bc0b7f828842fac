package guigrid

import (
	"fmt"
	"reflect"
	"strings"
)

// StructFieldNaming defines how struct fields
// are mapped to grid column identifiers.
//
// nil is a valid value for *StructFieldNaming
// and is equal to the zero value
// which will use all exported struct fields
// with their field name as column.
type StructFieldNaming struct {
	// Tag is the struct field tag to be used as column.
	// If Tag is empty, then every struct field will be treated as untagged.
	Tag string
	// Ignore is the column name that marks a struct field as ignored.
	Ignore string
	// Untagged will be called with the struct field name to
	// return a column in case the struct field has no tag named Tag.
	// If Untagged is nil, then the struct field name will be used.
	Untagged func(fieldName string) (column string)
}

// String implements the fmt.Stringer interface for StructFieldNaming.
func (n *StructFieldNaming) String() string {
	if n == nil {
		return `StructFieldNaming{Tag: "", Ignore: ""}`
	}
	return fmt.Sprintf("StructFieldNaming{Tag: %#v, Ignore: %#v}", n.Tag, n.Ignore)
}

// StructFieldColumn returns the column for a struct field.
func (n *StructFieldNaming) StructFieldColumn(structField reflect.StructField) string {
	if n == nil {
		return structField.Name
	}
	if n.Tag != "" {
		if tag, ok := structField.Tag.Lookup(n.Tag); ok {
			if i := strings.IndexByte(tag, ','); i != -1 {
				tag = tag[:i]
			}
			if tag != "" {
				return tag
			}
		}
	}
	if n.Untagged == nil {
		return structField.Name
	}
	return n.Untagged(structField.Name)
}

// IsIgnored reports if column is the Ignore column.
func (n *StructFieldNaming) IsIgnored(column string) bool {
	return n != nil && n.Ignore != "" && column == n.Ignore
}

// ColumnStructFieldValue returns the field of strct mapped to column
// or an invalid reflect.Value if there is none.
func (n *StructFieldNaming) ColumnStructFieldValue(strct reflect.Value, column string) reflect.Value {
	if column == "" || n.IsIgnored(column) {
		return reflect.Value{}
	}
	values := StructFieldValues(strct)
	for i, field := range StructFieldTypes(strct.Type()) {
		if n.StructFieldColumn(field) == column {
			return values[i]
		}
	}
	return reflect.Value{}
}

// Columns returns the columns of all struct fields of strct
// that are not ignored and have a non empty column name.
// strct can be a struct or a pointer to a struct.
func (n *StructFieldNaming) Columns(strct any) []string {
	fields := StructFieldTypes(reflect.TypeOf(strct))
	columns := make([]string, 0, len(fields))
	for _, field := range fields {
		column := n.StructFieldColumn(field)
		if column != "" && !n.IsIgnored(column) {
			columns = append(columns, column)
		}
	}
	return columns
}
