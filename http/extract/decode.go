package extract

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gorilla/schema"
	"github.com/xy-planning-network/forms"
)

func newDecoder() *schema.Decoder {
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)

	return dec
}

// translateDecoderError converts an error returned by *schema.Decoder into standardized errors.
// Some *schema.Decoder errors are issues with calling code;
// some errors are unexpected issues;
// still some are issues with mismatches between a request's key-value pairs and the expected shape.
func translateDecoderError(err error) error {
	var pkgErrs schema.MultiError
	// NOTE(dlk): In testing the schema package, outside other errors handled above,
	// the package appears to always use MultiError to wrap errors up.
	// This is the "happy path".
	if !errors.As(err, &pkgErrs) {
		return fmt.Errorf("%w: %s", forms.ErrBadFormat, err)
	}

	var validErrs ValidationErrors
	for _, pkgErr := range pkgErrs {
		switch err := pkgErr.(type) {
		case schema.ConversionError:
			ve := ValidationError{
				Field: err.Key,
				// NOTE(dlk): For non-slice values, ce.Index is -1.
				// Having such a subtle difference is confusing.
				Got:  fmt.Sprintf("bad value at index %d", max(0, err.Index)),
				Rule: "must be " + err.Type.String(),
			}

			validErrs = append(validErrs, ve)

		case schema.EmptyFieldError:
			return fmt.Errorf(`%w: use "validate" tags to set required fields, not schema`, forms.ErrNotImplemented)

		case schema.UnknownKeyError:
			// NOTE(dlk): We are currently accepting unknown keys,
			// as set in the default configuration for schema.Decoder.
			// That configuration can change.
			// We should gracefully handle that situation changing.
			ve := ValidationError{
				Field: err.Key,
				Got:   "value is set",
				Rule:  "unexpected key should not be set",
			}

			validErrs = append(validErrs, ve)

		default:
			// NOTE(dlk): This is an unfortunate footgun with struct tags.
			// A field that requires, but that does not have a schema.Converter registered,
			// will not raise an error until a url.Values has the key set for the incorrectly configured field.
			if strings.Contains(err.Error(), "schema: converter not found for") {
				return fmt.Errorf("%w: cannot convert values into unsupported type", forms.ErrNotImplemented)
			}

			// NOTE(dlk): The above covers all the known struct-back errors schema returns.
			// If it isn't one of those, it's likely a programming error, and thus a show-stopper.
			// Let's surface these immediately.
			return fmt.Errorf("%w: %s", forms.ErrUnexpected, err)
		}
	}

	return validErrs
}

func max(a, b int) int {
	if a > b {
		return a
	}

	return b
}
