package resp

import "errors"

// ErrDone signals the request context closed before the response was built.
var ErrDone = errors.New("request ctx done")
