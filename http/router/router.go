package router

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/xy-planning-network/forms/http/middleware"
)

// A Route maps a path and HTTP method to an [http.HandlerFunc].
// Additional [middleware.Adapter] can be called when a server handles
// a request matching the Route.
type Route struct {
	Path        string
	Method      string
	Handler     http.HandlerFunc
	Middlewares []middleware.Adapter
}

// Router routes requests to the handlers registered on it.
type Router struct {
	Env           string
	everyReqStack []middleware.Adapter
	logReq        middleware.Adapter
	r             *mux.Router
}

// New constructs a [*Router] for the given environment.
func New(env string, logReq middleware.Adapter) *Router {
	return &Router{logReq: logReq, Env: env, r: mux.NewRouter()}
}

// CatchAll sets up a handler for all routes to funnel to for e.g. maintenance mode.
func (r *Router) CatchAll(handler http.HandlerFunc) {
	r.r.PathPrefix("/").Handler(
		middleware.Chain(
			middleware.ReportPanic(r.Env)(handler),
			r.everyReqStack...,
		),
	)
}

// Handle applies the [Route] to the [*Router].
func (r *Router) Handle(route Route) {
	r.HandleRoutes([]Route{route})
}

// HandleNotFound sets the provided [http.HandlerFunc] as the default function
// for when no other registered Route is matched.
func (r *Router) HandleNotFound(handler http.HandlerFunc) {
	r.r.NotFoundHandler = middleware.Chain(
		middleware.ReportPanic(r.Env)(handler),
		r.logReq,
	)
}

// HandleRoutes registers the set of Routes on the Router
// and includes all the [middleware.Adapter] on each Route.
// Any [middleware.Adapter] already assigned to a Route is appended to middlewares,
// so are called after the default set.
func (r *Router) HandleRoutes(routes []Route, middlewares ...middleware.Adapter) {
	for _, route := range routes {
		mws := append(r.everyReqStack, middlewares...)
		mws = append(mws, route.Middlewares...)
		handler := middleware.Chain(middleware.ReportPanic(r.Env)(route.Handler), mws...)
		r.r.Handle(route.Path, handler).Methods(route.Method)
	}
}

// OnEveryRequest appends the middlewares to the existing stack
// that the [*Router] will apply to every request.
func (r *Router) OnEveryRequest(middlewares ...middleware.Adapter) {
	r.everyReqStack = append(r.everyReqStack, middlewares...)
}

// ServeHTTP responds to an HTTP request.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.r.ServeHTTP(w, req)
}

// SubrouterHost constructs a [*Router] that handles requests matching the host.
func (r *Router) SubrouterHost(host string) *Router {
	return &Router{
		Env:           r.Env,
		r:             r.r.Host(host).Subrouter(),
		logReq:        r.logReq,
		everyReqStack: r.everyReqStack,
	}
}

// Subrouter constructs a [*Router] that handles requests to endpoints matching the prefix.
//
// e.g., r.Subrouter("/api/v1") handles requests to endpoints like /api/v1/users
func (r *Router) Subrouter(prefix string) *Router {
	return &Router{
		Env:           r.Env,
		r:             r.r.PathPrefix(prefix).Subrouter(),
		logReq:        r.logReq,
		everyReqStack: r.everyReqStack,
	}
}
