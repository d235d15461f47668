package resp

import (
	"net/http"
)

// A Fn is a functional option that mutates the state of the Response.
type Fn func(Responder, *Response) error

// A Response is the internal object a Responder response method builds
// while applying all functional options.
type Response struct {
	w         http.ResponseWriter
	r         *http.Request
	closeBody bool
	code      int
	data      any
}

// Code sets the response status code.
func Code(c int) Fn {
	return func(_ Responder, r *Response) error {
		r.code = c
		return nil
	}
}

// Data stores the provided value for writing to the client.
//
// Used with Responder.Json.
func Data(d any) Fn {
	return func(_ Responder, r *Response) error {
		r.data = d
		return nil
	}
}

// Err sets the status code http.StatusInternalServerError and logs the error.
func Err(e error) Fn {
	return func(d Responder, r *Response) error {
		if e != nil {
			d.logger.Error(e.Error(), newLogContext(r.r, e, r.data))
		}

		return Code(http.StatusInternalServerError)(d, r)
	}
}
