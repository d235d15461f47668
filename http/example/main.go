/*

Package main provides a toy example use of forms' http stack.

Point a browser or curl at the routes below to watch extraction succeed and fail:

	curl 'localhost:8081/search?q=trailheads&page=2'
	curl 'localhost:8081/search?page=0'
	curl -d 'name=Jerry&age=200' -H 'Content-Type: application/x-www-form-urlencoded' localhost:8081/signup
	curl -F 'title=summit' -F 'photo=@shot.jpg' localhost:8081/upload

*/
package main

import (
	"fmt"
	"net/http"

	_ "github.com/joho/godotenv/autoload"

	"github.com/xy-planning-network/forms"
	"github.com/xy-planning-network/forms/http/extract"
	"github.com/xy-planning-network/forms/http/middleware"
	"github.com/xy-planning-network/forms/http/multipart"
	"github.com/xy-planning-network/forms/http/resp"
	"github.com/xy-planning-network/forms/http/router"
	"github.com/xy-planning-network/forms/logger"
)

// searchParams is pulled out of the query string.
type searchParams struct {
	Query string `schema:"q" validate:"required"`
	Page  int    `schema:"page" validate:"omitempty,min=1"`
}

// signupForm is pulled out of an URL-encoded body.
type signupForm struct {
	Name  string `schema:"name" validate:"required"`
	Age   int    `schema:"age" validate:"omitempty,max=150"`
	Email string `schema:"email" validate:"omitempty,email"`
}

// uploadForm is pulled out of a multipart/form-data body.
//
// Caption being a pointer makes the field optional;
// Photo being a value requires exactly one file part named "photo".
type uploadForm struct {
	Title   string         `multipart:"title" validate:"required"`
	Caption *string        `multipart:"caption"`
	Photo   multipart.File `multipart:"photo"`
}

// Handler shares the initialized Responder and Extractor across all example responses.
type Handler struct {
	*resp.Responder
	*extract.Extractor
}

func (h *Handler) search(w http.ResponseWriter, r *http.Request, params searchParams) {
	data := map[string]any{"query": params.Query, "page": params.Page, "results": []string{}}
	if err := h.Json(w, r, resp.Data(data)); err != nil {
		h.Err(w, r, err)
	}
}

func (h *Handler) signup(w http.ResponseWriter, r *http.Request, form signupForm) {
	if err := h.Json(w, r, resp.Code(http.StatusCreated), resp.Data(form)); err != nil {
		h.Err(w, r, err)
	}
}

// upload reads the uploaded file off disk while the temp file is still alive;
// once this returns, the wrapper removes it.
func (h *Handler) upload(w http.ResponseWriter, r *http.Request, form uploadForm) {
	data := map[string]any{
		"title":    form.Title,
		"filename": form.Photo.Filename,
		"size":     form.Photo.Size,
	}
	if form.Caption != nil {
		data["caption"] = *form.Caption
	}

	if err := h.Json(w, r, resp.Code(http.StatusCreated), resp.Data(data)); err != nil {
		h.Err(w, r, err)
	}
}

func main() {
	env := forms.EnvVarOrEnv("ENVIRONMENT", forms.Development)
	log := logger.New(logger.WithEnv(env.String()))
	h := &Handler{
		Responder: resp.NewResponder(resp.WithLogger(log)),
		Extractor: extract.NewExtractor(),
	}

	// route all failures through the Responder so the logs match the app's.
	onErr := extract.RespondErr(h.Responder)

	vs := middleware.NewVisitors()
	r := router.New(env.String(), middleware.LogRequest(log))
	r.OnEveryRequest(
		middleware.RateLimit(vs),
		middleware.RequestID(forms.RequestIDKey),
		middleware.InjectIPAddress(),
		middleware.LogRequest(log),
	)

	r.HandleRoutes([]router.Route{
		{
			Path:    "/search",
			Method:  http.MethodGet,
			Handler: extract.Query(h.Extractor, extract.QueryConfig{ErrorHandler: onErr}, h.search),
		},
		{
			Path:    "/signup",
			Method:  http.MethodPost,
			Handler: extract.Form(h.Extractor, extract.FormConfig{ErrorHandler: onErr}, h.signup),
		},
		{
			Path:   "/upload",
			Method: http.MethodPost,
			Handler: extract.Multipart(h.Extractor, extract.MultipartConfig{
				Config:       multipart.Config{TextLimit: 1 << 16, FileLimit: 32 << 20},
				ErrorHandler: onErr,
			}, h.upload),
			Middlewares: []middleware.Adapter{middleware.BodyLimit(33 << 20)},
		},
	})

	port := forms.EnvVarOrString("PORT", "8081")
	fmt.Println("listening on :" + port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.Fatal(err.Error(), nil)
	}
}
