package guigrid

import (
	"encoding"
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// Scan assigns the cells of the row to the exported fields
// of the struct pointed to by dst.
//
// Columns of the row's column order snapshot are mapped to struct fields
// using naming, where nil uses the field names as columns.
// Columns without a matching field are skipped.
// Cell strings are converted with ScanString using parser,
// where nil uses the defaults of NewStringParser.
func (r *Row) Scan(dst any, naming *StructFieldNaming, parser Parser) error {
	v := reflect.ValueOf(dst)
	if v.Kind() != reflect.Pointer || v.IsNil() || v.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("expected non nil struct pointer, got %T", dst)
	}
	return r.scanStruct(v.Elem(), naming, parser)
}

func (r *Row) scanStruct(strct reflect.Value, naming *StructFieldNaming, parser Parser) error {
	if parser == nil {
		parser = defaultParser
	}
	for col, column := range r.columns {
		field := naming.ColumnStructFieldValue(strct, column)
		if !field.IsValid() {
			continue
		}
		str, err := r.grid.CellValue(r.index, col)
		if err != nil {
			return err
		}
		err = ScanString(field, str, parser)
		if err != nil {
			return fmt.Errorf("row %d column %q: %w", r.index, column, err)
		}
	}
	return nil
}

// ScanRows reads all rows of grid into a slice of structs
// or struct pointers using Row.Scan.
func ScanRows[T any](grid *Grid, naming *StructFieldNaming, parser Parser) ([]T, error) {
	rowType := reflect.TypeFor[T]()
	isPointer := rowType.Kind() == reflect.Pointer
	if rowType.Kind() != reflect.Struct && (!isPointer || rowType.Elem().Kind() != reflect.Struct) {
		return nil, fmt.Errorf("slice element type %s is not a struct or pointer to struct", rowType)
	}
	var rows []T
	for row, err := range grid.Rows() {
		if err != nil {
			return nil, err
		}
		var elem T
		strct := reflect.ValueOf(&elem).Elem()
		if isPointer {
			strct.Set(reflect.New(rowType.Elem())) // Set allocated struct pointer for row
			strct = strct.Elem()                   // Continue with struct value instead of pointer
		}
		err = row.scanStruct(strct, naming, parser)
		if err != nil {
			return nil, err
		}
		rows = append(rows, elem)
	}
	return rows, nil
}

// ScanString parses str with parser and assigns the result to dst.
//
// Supported destinations are time.Time, time.Duration,
// implementations of encoding.TextUnmarshaler, strings, bools,
// integer and float kinds, and pointers to those.
// Pointers are set to nil for strings where parser.IsNil returns true.
// Blank strings assign the zero value to non string kinds.
func ScanString(dst reflect.Value, str string, parser Parser) error {
	if !dst.IsValid() {
		return errors.New("dst value is invalid")
	}
	if !dst.CanSet() {
		return errors.New("cannot set dst value")
	}

	dstType := dst.Type()
	if dstType.Kind() == reflect.Pointer {
		if parser.IsNil(str) {
			dst.Set(reflect.Zero(dstType))
			return nil
		}
		ptr := reflect.New(dstType.Elem())
		err := ScanString(ptr.Elem(), str, parser)
		if err != nil {
			return err
		}
		dst.Set(ptr)
		return nil
	}
	if dstType.Kind() != reflect.String && strings.TrimSpace(str) == "" {
		dst.Set(reflect.Zero(dstType))
		return nil
	}

	switch dstType {
	case typeOfTime:
		t, err := parser.ParseTime(str)
		if err != nil {
			return err
		}
		dst.Set(reflect.ValueOf(t))
		return nil

	case typeOfDuration:
		d, err := parser.ParseDuration(str)
		if err != nil {
			return err
		}
		dst.SetInt(int64(d))
		return nil
	}

	if dst.CanAddr() && dst.Addr().Type().Implements(typeOfTextUnmarshaler) {
		return dst.Addr().Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(str))
	}

	switch dstType.Kind() {
	case reflect.String:
		dst.SetString(str)

	case reflect.Bool:
		b, err := parser.ParseBool(str)
		if err != nil {
			return err
		}
		dst.SetBool(b)

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := parser.ParseInt(str)
		if err != nil {
			return err
		}
		if dst.OverflowInt(i) {
			return fmt.Errorf("value %d overflows %s", i, dstType)
		}
		dst.SetInt(i)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u, err := parser.ParseUint(str)
		if err != nil {
			return err
		}
		if dst.OverflowUint(u) {
			return fmt.Errorf("value %d overflows %s", u, dstType)
		}
		dst.SetUint(u)

	case reflect.Float32, reflect.Float64:
		f, err := parser.ParseFloat(str)
		if err != nil {
			return err
		}
		if dst.OverflowFloat(f) {
			return fmt.Errorf("value %g overflows %s", f, dstType)
		}
		dst.SetFloat(f)

	default:
		return fmt.Errorf("%w: scanning string into %s", errors.ErrUnsupported, dstType)
	}
	return nil
}
