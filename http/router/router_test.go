package router_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/forms/http/middleware"
	"github.com/xy-planning-network/forms/http/router"
)

func TestRouterHandleRoutes(t *testing.T) {
	// Arrange
	r := router.New("development", middleware.NoopAdapter)
	var order []string
	tag := func(name string) middleware.Adapter {
		return func(h http.Handler) http.Handler {
			return http.HandlerFunc(func(wx http.ResponseWriter, rx *http.Request) {
				order = append(order, name)
				h.ServeHTTP(wx, rx)
			})
		}
	}

	r.OnEveryRequest(tag("every"))
	r.HandleRoutes([]router.Route{
		{
			Path:   "/ok",
			Method: http.MethodGet,
			Handler: func(wx http.ResponseWriter, rx *http.Request) {
				wx.WriteHeader(http.StatusNoContent)
			},
			Middlewares: []middleware.Adapter{tag("route")},
		},
	}, tag("group"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ok", nil)

	// Act
	r.ServeHTTP(w, req)

	// Assert
	require.Equal(t, http.StatusNoContent, w.Code)
	require.Equal(t, []string{"every", "group", "route"}, order)

	// Arrange
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/ok", nil)

	// Act
	r.ServeHTTP(w, req)

	// Assert
	require.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestRouterSubrouter(t *testing.T) {
	// Arrange
	r := router.New("development", middleware.NoopAdapter)
	api := r.Subrouter("/api/v1")
	api.Handle(router.Route{
		Path:   "/users",
		Method: http.MethodGet,
		Handler: func(wx http.ResponseWriter, rx *http.Request) {
			wx.WriteHeader(http.StatusOK)
		},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/users", nil)

	// Act
	r.ServeHTTP(w, req)

	// Assert
	require.Equal(t, http.StatusOK, w.Code)
}

func TestRouterHandleNotFound(t *testing.T) {
	// Arrange
	r := router.New("development", middleware.NoopAdapter)
	r.HandleNotFound(func(wx http.ResponseWriter, rx *http.Request) {
		wx.WriteHeader(http.StatusTeapot)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/missing", nil)

	// Act
	r.ServeHTTP(w, req)

	// Assert
	require.Equal(t, http.StatusTeapot, w.Code)
}
