package extract

import (
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"

	"github.com/gorilla/schema"
	"github.com/xy-planning-network/forms"
	"github.com/xy-planning-network/forms/http/multipart"
)

// DefaultFormMaxSize caps an URL-encoded body at 16KB unless FormConfig says otherwise.
const DefaultFormMaxSize int64 = 16 << 10

// An Extractor decodes and validates the inputs of an HTTP request.
// A single Extractor suffices for an application; it is safe for concurrent use.
type Extractor struct {
	decoder *schema.Decoder
	validator
}

func NewExtractor() *Extractor {
	return &Extractor{
		decoder:   newDecoder(),
		validator: newValidator(),
	}
}

// Query decodes into a pointer to a struct the query param data in *http.Request.URL.
// If successful, Query runs validation against the contents,
// returning an ErrNotValid if the data fails validation rules.
func (e *Extractor) Query(r *http.Request, structPtr any) error {
	if err := e.decode(structPtr, r.URL.Query()); err != nil {
		return fmt.Errorf("forms/http/extract: failed decoding query params: %w", err)
	}

	if err := e.validate(structPtr); err != nil {
		return fmt.Errorf("forms/http/extract: %T failed validation: %w", structPtr, err)
	}

	return nil
}

// Form decodes into a pointer to a struct the application/x-www-form-urlencoded
// data in *http.Request.Body, reading at most maxSize bytes;
// a maxSize at or below zero falls back to DefaultFormMaxSize.
// If successful, Form runs validation against the contents,
// returning an ErrNotValid if the data fails validation rules.
//
// Form reads the entire r.Body and can't be read from again.
func (e *Extractor) Form(r *http.Request, structPtr any, maxSize int64) error {
	if maxSize <= 0 {
		maxSize = DefaultFormMaxSize
	}

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "application/x-www-form-urlencoded" {
		return fmt.Errorf(
			"forms/http/extract: %w: got %q, expected application/x-www-form-urlencoded",
			forms.ErrBadFormat,
			mediaType,
		)
	}

	b, err := io.ReadAll(io.LimitReader(r.Body, maxSize+1))
	if err != nil {
		return fmt.Errorf("forms/http/extract: %w: failed reading request body: %s", forms.ErrUnexpected, err)
	}

	if int64(len(b)) > maxSize {
		return fmt.Errorf("forms/http/extract: %w: form body exceeds %d bytes", forms.ErrTooLarge, maxSize)
	}

	vals, err := url.ParseQuery(string(b))
	if err != nil {
		return fmt.Errorf("forms/http/extract: %w: failed decoding request body: %s", forms.ErrBadFormat, err)
	}

	if err := e.decode(structPtr, vals); err != nil {
		return fmt.Errorf("forms/http/extract: failed decoding form body: %w", err)
	}

	if err := e.validate(structPtr); err != nil {
		return fmt.Errorf("forms/http/extract: %T failed validation: %w", structPtr, err)
	}

	return nil
}

// Multipart loads the multipart/form-data body of r within the budgets set by cfg,
// converts the loaded collection into structPtr (honoring multipart.FromForm),
// and runs validation against the contents.
//
// On success the returned *multipart.Form owns the temporary files any
// multipart.File fields on structPtr point at; the caller must Close it when
// the request is done with them. On failure the temporary files are already
// removed and the *multipart.Form is nil.
func (e *Extractor) Multipart(r *http.Request, structPtr any, cfg multipart.Config) (*multipart.Form, error) {
	form, err := multipart.Load(r, cfg)
	if err != nil {
		return nil, fmt.Errorf("forms/http/extract: failed loading multipart body: %w", err)
	}

	if err := multipart.Decode(form, structPtr); err != nil {
		form.Close()
		return nil, fmt.Errorf("forms/http/extract: failed converting multipart body: %w", err)
	}

	if err := e.validate(structPtr); err != nil {
		form.Close()
		return nil, fmt.Errorf("forms/http/extract: %T failed validation: %w", structPtr, err)
	}

	return form, nil
}

// decode runs the schema decoder, translating its errors to standardized ones.
func (e *Extractor) decode(structPtr any, vals url.Values) error {
	err := e.decoder.Decode(structPtr, vals)
	if err == nil {
		return nil
	}

	// NOTE(dlk): schema surfaces a non-pointer or non-struct target as a bare
	// error; that's our caller's fault, not the request's.
	if strings.Contains(err.Error(), "interface must be a pointer to struct") {
		return fmt.Errorf("%w: %s", forms.ErrBadAny, err)
	}

	return translateDecoderError(err)
}
