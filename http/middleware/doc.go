/*
The middleware package defines what a middleware is in forms and a set of basic middlewares.

The available middlewares are:
- BodyLimit
- CORS
- InjectIPAddress
- LogRequest
- RateLimit
- ReportPanic
- RequestID

Due to the amount of configuration required, middleware does not provide a default middleware chain.
Instead, the following can be copy-pasted:

	vs := middleware.NewVisitors()
	adpts := []middleware.Adapter{
		middleware.RateLimit(vs),
		middleware.RequestID(forms.RequestIDKey),
		middleware.InjectIPAddress(),
		middleware.LogRequest(log),
		middleware.BodyLimit(maxBytes),
	}
*/
package middleware
