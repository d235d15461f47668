package extract

import (
	"errors"
	"net/http"
	"sync"

	"github.com/xy-planning-network/forms"
	"github.com/xy-planning-network/forms/http/multipart"
	"github.com/xy-planning-network/forms/http/resp"
)

// An ErrorHandler converts a failed extraction into an HTTP response.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

// A QueryConfig adjusts how the Query wrapper serves a handler.
// A zero QueryConfig routes failures through the default ErrorHandler.
type QueryConfig struct {
	ErrorHandler ErrorHandler
}

// A FormConfig adjusts how the Form wrapper serves a handler.
// A zero FormConfig reads at most DefaultFormMaxSize bytes
// and routes failures through the default ErrorHandler.
type FormConfig struct {
	// MaxSize is the maximum size in bytes of the URL-encoded body.
	MaxSize int64

	ErrorHandler ErrorHandler
}

// A MultipartConfig adjusts how the Multipart wrapper serves a handler.
// A zero MultipartConfig applies the multipart package's default budgets
// and routes failures through the default ErrorHandler.
type MultipartConfig struct {
	multipart.Config

	ErrorHandler ErrorHandler
}

var (
	defaultOnce    sync.Once
	defaultHandler ErrorHandler
)

// defaultErrorHandler lazily builds the package-wide ErrorHandler
// so importing extract does not configure a Responder by side effect.
func defaultErrorHandler() ErrorHandler {
	defaultOnce.Do(func() {
		defaultHandler = RespondErr(resp.NewResponder())
	})

	return defaultHandler
}

// RespondErr builds an ErrorHandler over d mapping extraction failures
// to 400-class JSON responses:
//
//	422 with field-level problems when validation rules failed
//	413 when a size limit ran out
//	400 for malformed encodings and failed multipart conversions
//	500 when request I/O failed
func RespondErr(d *resp.Responder) ErrorHandler {
	return func(w http.ResponseWriter, r *http.Request, err error) {
		var validErrs ValidationErrors
		if errors.As(err, &validErrs) {
			d.Json(w, r, resp.Code(http.StatusUnprocessableEntity), resp.Data(validErrs))
			return
		}

		var getErr *multipart.GetError
		switch {
		case errors.As(err, &getErr):
			d.Json(w, r, resp.Code(http.StatusBadRequest), resp.Data(map[string]any{
				"error": getErr.Error(),
				"field": getErr.Field,
			}))

		case errors.Is(err, forms.ErrTooLarge):
			d.Json(w, r, resp.Code(http.StatusRequestEntityTooLarge), resp.Data(map[string]any{
				"error": "request inputs exceed the configured size limit",
			}))

		case errors.Is(err, forms.ErrBadFormat), errors.Is(err, forms.ErrNotValid):
			d.Json(w, r, resp.Code(http.StatusBadRequest), resp.Data(map[string]any{
				"error": err.Error(),
			}))

		default:
			d.Err(w, r, err)
		}
	}
}

// Query wraps handle with query string extraction:
// handle only runs once the request's query params decode into a T
// that passes its validation rules; any failure is routed through
// cfg.ErrorHandler instead.
func Query[T any](e *Extractor, cfg QueryConfig, handle func(w http.ResponseWriter, r *http.Request, val T)) http.HandlerFunc {
	eh := cfg.ErrorHandler
	if eh == nil {
		eh = defaultErrorHandler()
	}

	return func(w http.ResponseWriter, r *http.Request) {
		var val T
		if err := e.Query(r, &val); err != nil {
			eh(w, r, err)
			return
		}

		handle(w, r, val)
	}
}

// Form wraps handle with URL-encoded body extraction,
// reading at most cfg.MaxSize bytes; failures route through cfg.ErrorHandler.
func Form[T any](e *Extractor, cfg FormConfig, handle func(w http.ResponseWriter, r *http.Request, val T)) http.HandlerFunc {
	eh := cfg.ErrorHandler
	if eh == nil {
		eh = defaultErrorHandler()
	}

	return func(w http.ResponseWriter, r *http.Request) {
		var val T
		if err := e.Form(r, &val, cfg.MaxSize); err != nil {
			eh(w, r, err)
			return
		}

		handle(w, r, val)
	}
}

// Multipart wraps handle with multipart body extraction within cfg's budgets.
// Temporary files backing any multipart.File fields on T live until handle
// returns, then are removed; failures route through cfg.ErrorHandler.
func Multipart[T any](e *Extractor, cfg MultipartConfig, handle func(w http.ResponseWriter, r *http.Request, val T)) http.HandlerFunc {
	eh := cfg.ErrorHandler
	if eh == nil {
		eh = defaultErrorHandler()
	}

	return func(w http.ResponseWriter, r *http.Request) {
		var val T
		form, err := e.Multipart(r, &val, cfg.Config)
		if err != nil {
			eh(w, r, err)
			return
		}
		defer form.Close()

		handle(w, r, val)
	}
}
