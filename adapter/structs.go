package adapter

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/bjaus/tabulate"
)

type structColumn struct {
	index []int
	name  string
}

// Reflector turns values of struct type T into rows. Its columns are
// resolved once, by [NewReflector], so a Reflector is immutable and can be
// shared between goroutines.
//
// Every exported field is a column, including fields promoted from embedded
// structs. A `table:"Label"` tag sets the header verbatim; `table:"-"` skips
// the field. Untagged field names go through the [WithNames] transform.
type Reflector[T any] struct {
	columns []structColumn
	headers []string
}

// NewReflector inspects T, which must be a struct or a pointer to one.
func NewReflector[T any](opts ...Option) (*Reflector[T], error) {
	o := newOptions(opts)
	typ := reflect.TypeFor[T]()
	for typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	if typ.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %v is not a struct", ErrUnsupportedShape, reflect.TypeFor[T]())
	}

	r := &Reflector[T]{}
	for _, f := range reflect.VisibleFields(typ) {
		if !f.IsExported() {
			continue
		}
		if f.Anonymous && indirectKind(f.Type) == reflect.Struct {
			continue
		}
		tag := f.Tag.Get("table")
		if tag == "-" {
			continue
		}
		name := o.names.Apply(f.Name)
		if label, _, _ := strings.Cut(tag, ","); label != "" {
			name = label
		}
		r.columns = append(r.columns, structColumn{index: f.Index, name: name})
		r.headers = append(r.headers, name)
	}
	return r, nil
}

// Headers returns a copy of the column headers.
func (r *Reflector[T]) Headers() []string {
	out := make([]string, len(r.headers))
	copy(out, r.headers)
	return out
}

// Row converts one item. A nil item yields a row of empty cells.
func (r *Reflector[T]) Row(item T) []string {
	row := make([]string, len(r.columns))
	v := reflect.ValueOf(&item).Elem()
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return row
		}
		v = v.Elem()
	}
	for i, col := range r.columns {
		field, err := v.FieldByIndexErr(col.index)
		if err != nil {
			// Promoted through a nil embedded pointer.
			continue
		}
		row[i] = formatValue(field)
	}
	return row
}

// Table converts items.
func (r *Reflector[T]) Table(items []T) tabulate.Table {
	rows := make([][]string, len(items))
	for i, item := range items {
		rows[i] = r.Row(item)
	}
	return tabulate.Table{Headers: r.Headers(), Rows: rows}
}

// Structs is shorthand for [NewReflector] followed by [Reflector.Table].
func Structs[T any](items []T, opts ...Option) (tabulate.Table, error) {
	r, err := NewReflector[T](opts...)
	if err != nil {
		return tabulate.Table{}, err
	}
	return r.Table(items), nil
}

// formatValue renders nil pointers and interfaces as empty cells and
// prefers fmt.Stringer at every level of indirection.
func formatValue(v reflect.Value) string {
	for {
		switch v.Kind() {
		case reflect.Invalid:
			return ""
		case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice:
			if v.IsNil() {
				return ""
			}
		}
		if v.CanInterface() {
			if s, ok := v.Interface().(fmt.Stringer); ok {
				return s.String()
			}
		}
		if v.Kind() != reflect.Pointer && v.Kind() != reflect.Interface {
			break
		}
		v = v.Elem()
	}
	if v.Kind() == reflect.Slice && v.Type().Elem().Kind() == reflect.Uint8 {
		return string(v.Bytes())
	}
	// fmt reads fields promoted through unexported embedded structs too.
	return fmt.Sprint(v)
}

func indirectKind(t reflect.Type) reflect.Kind {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Kind()
}
