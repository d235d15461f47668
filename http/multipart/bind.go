package multipart

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/xy-planning-network/forms"
)

// FromForm is the interface implemented by types that convert a loaded Form
// into themselves, instead of relying on Decode's struct tags.
type FromForm interface {
	FromMultipartForm(f *Form) error
}

var fileType = reflect.TypeOf(File{})

// Decode converts the loaded Form into the struct pointed at by structPtr.
//
// When structPtr implements FromForm, Decode delegates to it.
// Otherwise Decode matches form fields to struct fields through "multipart"
// struct tags, falling back to the lowercased field name; a "-" tag skips the field.
//
// Field types steer the conversion:
//   - File requires exactly one file part
//   - *File takes zero or one file part
//   - []File takes any number of file parts
//   - string, bool, ints, uints and floats require exactly one text part
//   - a pointer to one of those takes zero or one text part
//   - a slice of one of those takes any number of text parts
//
// Requiring exactly one part fails with a *GetError wrapping ErrNotFound when
// zero match and ErrDuplicateField when several do; a text part that cannot
// parse into the field's type fails with a *GetError wrapping ErrTypeMismatch.
func Decode(f *Form, structPtr any) error {
	if impl, ok := structPtr.(FromForm); ok {
		return impl.FromMultipartForm(f)
	}

	rv := reflect.ValueOf(structPtr)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("%w: Decode requires a non-nil pointer, got %T", forms.ErrBadAny, structPtr)
	}

	rv = rv.Elem()
	if rv.Kind() != reflect.Struct {
		return fmt.Errorf("%w: Decode requires a pointer to a struct, got %T", forms.ErrBadAny, structPtr)
	}

	rt := rv.Type()
	for i := 0; i < rv.NumField(); i++ {
		field := rv.Field(i)
		if !field.CanSet() {
			continue
		}

		name, skip := fieldName(rt.Field(i))
		if skip {
			continue
		}

		if err := setField(f, field, name); err != nil {
			return err
		}
	}

	return nil
}

// fieldName resolves the form field name for the struct field and whether to skip it.
func fieldName(field reflect.StructField) (string, bool) {
	tag := field.Tag.Get("multipart")
	if tag == "" {
		return strings.ToLower(field.Name), false
	}

	if tag == "-" {
		return "", true
	}

	return strings.SplitN(tag, ",", 2)[0], false
}

func setField(f *Form, field reflect.Value, name string) error {
	ft := field.Type()

	// File-typed fields pull from file parts, everything else from text parts.
	switch {
	case ft == fileType:
		fl, err := f.File(name)
		if err != nil {
			return err
		}

		field.Set(reflect.ValueOf(fl))
		return nil

	case ft.Kind() == reflect.Ptr && ft.Elem() == fileType:
		fs := f.Files(name)
		switch len(fs) {
		case 0:
			return nil
		case 1:
			fl := fs[0]
			field.Set(reflect.ValueOf(&fl))
			return nil
		default:
			return &GetError{Field: name, err: ErrDuplicateField}
		}

	case ft.Kind() == reflect.Slice && ft.Elem() == fileType:
		field.Set(reflect.ValueOf(f.Files(name)))
		return nil
	}

	vals := f.Texts(name)

	switch ft.Kind() {
	case reflect.Ptr:
		switch len(vals) {
		case 0:
			return nil
		case 1:
			if field.IsNil() {
				field.Set(reflect.New(ft.Elem()))
			}
			return setScalar(field.Elem(), name, vals[0])
		default:
			return &GetError{Field: name, err: ErrDuplicateField}
		}

	case reflect.Slice:
		slice := reflect.MakeSlice(ft, len(vals), len(vals))
		for i, val := range vals {
			if err := setScalar(slice.Index(i), name, val); err != nil {
				return err
			}
		}

		field.Set(slice)
		return nil

	default:
		switch len(vals) {
		case 0:
			return &GetError{Field: name, err: ErrNotFound}
		case 1:
			return setScalar(field, name, vals[0])
		default:
			return &GetError{Field: name, err: ErrDuplicateField}
		}
	}
}

// setScalar parses val into the basic-typed field.
func setScalar(field reflect.Value, name, val string) error {
	switch field.Kind() {
	case reflect.String:
		field.SetString(val)

	case reflect.Bool:
		b, err := strconv.ParseBool(val)
		if err != nil {
			return &GetError{Field: name, err: ErrTypeMismatch}
		}
		field.SetBool(b)

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(val, 10, field.Type().Bits())
		if err != nil {
			return &GetError{Field: name, err: ErrTypeMismatch}
		}
		field.SetInt(n)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(val, 10, field.Type().Bits())
		if err != nil {
			return &GetError{Field: name, err: ErrTypeMismatch}
		}
		field.SetUint(n)

	case reflect.Float32, reflect.Float64:
		n, err := strconv.ParseFloat(val, field.Type().Bits())
		if err != nil {
			return &GetError{Field: name, err: ErrTypeMismatch}
		}
		field.SetFloat(n)

	default:
		return fmt.Errorf("%w: cannot convert multipart values into %s", forms.ErrNotImplemented, field.Type())
	}

	return nil
}
