package multipart

import (
	"errors"
	"fmt"
	"os"
)

var (
	ErrDuplicateField = errors.New("duplicate field")
	ErrNotFound       = errors.New("not found")
	ErrTypeMismatch   = errors.New("type mismatch")
)

// A GetError describes why a field in a loaded Form
// could not be converted into a typed value.
type GetError struct {
	// Field is the form field name the conversion failed on.
	Field string

	err error
}

func (e *GetError) Error() string {
	return fmt.Sprintf("multipart field %q: %s", e.Field, e.err)
}

func (e *GetError) Unwrap() error { return e.err }

// A Text is one plain text part of a multipart form.
type Text struct {
	// Name is the field name from the part's Content-Disposition header.
	Name string

	// Value is the part's body, decoded as UTF-8.
	Value string
}

// A File is one uploaded part of a multipart form, spooled to a temporary file.
type File struct {
	// Name is the field name from the part's Content-Disposition header.
	Name string

	// Filename is the client-supplied filename; it may be empty.
	Filename string

	// ContentType is the part's declared media type.
	ContentType string

	// Size is the number of bytes written to the temporary file.
	Size int64

	// Path locates the temporary file on local disk.
	Path string
}

// Open opens the temporary file holding the uploaded bytes.
// The caller owns closing the returned *os.File.
func (f File) Open() (*os.File, error) {
	fd, err := os.Open(f.Path)
	if err != nil {
		return nil, fmt.Errorf("cannot open %q for field %q: %w", f.Path, f.Name, err)
	}

	return fd, nil
}

// Remove deletes the temporary file.
func (f File) Remove() error { return os.Remove(f.Path) }

// A Form is the ordered collection of parts loaded from one multipart request body.
//
// A Form owns the temporary files its File entries point at;
// Close removes them all.
type Form struct {
	texts []Text
	files []File
}

// Texts retrieves the values of every text part named name, in the order received.
func (f *Form) Texts(name string) []string {
	var vals []string
	for _, t := range f.texts {
		if t.Name == name {
			vals = append(vals, t.Value)
		}
	}

	return vals
}

// Text retrieves the value of exactly one text part named name.
//
// Zero parts returns a *GetError wrapping ErrNotFound;
// more than one returns a *GetError wrapping ErrDuplicateField.
func (f *Form) Text(name string) (string, error) {
	vals := f.Texts(name)
	switch len(vals) {
	case 0:
		return "", &GetError{Field: name, err: ErrNotFound}
	case 1:
		return vals[0], nil
	default:
		return "", &GetError{Field: name, err: ErrDuplicateField}
	}
}

// Files retrieves every file part named name, in the order received.
func (f *Form) Files(name string) []File {
	var fs []File
	for _, fl := range f.files {
		if fl.Name == name {
			fs = append(fs, fl)
		}
	}

	return fs
}

// File retrieves exactly one file part named name.
//
// Zero parts returns a *GetError wrapping ErrNotFound;
// more than one returns a *GetError wrapping ErrDuplicateField.
func (f *Form) File(name string) (File, error) {
	fs := f.Files(name)
	switch len(fs) {
	case 0:
		return File{}, &GetError{Field: name, err: ErrNotFound}
	case 1:
		return fs[0], nil
	default:
		return File{}, &GetError{Field: name, err: ErrDuplicateField}
	}
}

// Len reports the total number of parts in the Form.
func (f *Form) Len() int { return len(f.texts) + len(f.files) }

// Close removes every temporary file the Form owns.
// Close keeps going past individual failures, returning the first error hit.
func (f *Form) Close() error {
	var first error
	for _, fl := range f.files {
		if err := fl.Remove(); err != nil && !errors.Is(err, os.ErrNotExist) && first == nil {
			first = err
		}
	}

	f.files = nil
	f.texts = nil
	return first
}
