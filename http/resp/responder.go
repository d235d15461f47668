package resp

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/xy-planning-network/forms/logger"
)

const responderFrames = 0

// Responder maintains reusable pieces for responding to HTTP requests.
//
// Most oftentimes, setting up a single instance of a Responder suffices for an application.
// Meaning, one needs only application-wide configuration of how HTTP responses should look.
//
// When handling a specific HTTP request, calling code supplies additional data
// and structure through Fn functions.
type Responder struct {
	logger logger.Logger

	// Pool of *bytes.Buffer to prerender responses into
	pool *sync.Pool
}

// NewResponder constructs a *Responder using the ResponderOptFns passed in.
func NewResponder(opts ...ResponderOptFn) *Responder {
	d := &Responder{
		pool: &sync.Pool{New: func() any { return new(bytes.Buffer) }},
	}
	for _, opt := range opts {
		opt(d)
	}

	if d.logger == nil {
		d.logger = logger.New()
	}

	if l, ok := d.logger.(logger.SkipLogger); ok {
		d.logger = l.AddSkip(responderFrames)
	}

	return d
}

// Err wraps http.Error(), logging the error causing the failure state.
//
// Use in exceptional circumstances when no structured response can occur.
func (doer *Responder) Err(w http.ResponseWriter, r *http.Request, err error, opts ...Fn) {
	rr, nested := doer.do(w, r, append(opts, Err(err))...)
	defer r.Body.Close()
	if nested != nil {
		err = fmt.Errorf("%w: %s", err, nested)
	}

	var msg string
	if err != nil {
		msg = err.Error()
	}

	if rr == nil || rr.code == 0 {
		http.Error(w, msg, http.StatusInternalServerError)
		return
	}

	http.Error(w, msg, rr.code)
}

type jsonSchema struct {
	D any `json:"data,omitempty"`
}

// Json responds with data in JSON format, collating it from Data() and setting appropriate headers.
//
// The JSON schema will look like this:
//
//	{
//		"data": {}
//	}
//
// Data() calls populate "data"
func (doer *Responder) Json(w http.ResponseWriter, r *http.Request, opts ...Fn) error {
	rr, err := doer.do(w, r, opts...)
	if err != nil {
		return err
	}

	if rr.closeBody {
		defer r.Body.Close()
	}

	if rr.code == 0 {
		if err := Code(http.StatusOK)(*doer, rr); err != nil {
			return err
		}
	}

	b := doer.pool.Get().(*bytes.Buffer)
	b.Reset()
	defer doer.pool.Put(b)

	if err := json.NewEncoder(b).Encode(jsonSchema{D: rr.data}); err != nil {
		doer.Err(w, r, err)
		return err
	}

	w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	w.WriteHeader(rr.code)
	if _, err := b.WriteTo(w); err != nil {
		return err
	}

	return nil
}

// do applies all options to the passed in http.ResponseWriter and *http.Request.
//
// Calling code ought to pass Options in the correct order.
// An option requiring something set by another one should come after.
func (doer *Responder) do(w http.ResponseWriter, r *http.Request, opts ...Fn) (*Response, error) {
	resp := &Response{
		closeBody: true,
		w:         w,
		r:         r,
	}

	for _, opt := range opts {
		select {
		case <-r.Context().Done():
			return nil, fmt.Errorf("%w", ErrDone)
		default:
			if err := opt(*doer, resp); err != nil {
				return resp, err
			}
		}
	}

	return resp, nil
}
