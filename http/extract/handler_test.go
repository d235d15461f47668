package extract_test

import (
	"encoding/json"
	stdmultipart "mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/forms/http/extract"
	"github.com/xy-planning-network/forms/http/multipart"
	"github.com/xy-planning-network/forms/http/resp"
	"github.com/xy-planning-network/forms/logger"
)

func newErrorHandler() extract.ErrorHandler {
	return extract.RespondErr(resp.NewResponder(resp.WithLogger(logger.NoopLogger())))
}

func TestQueryHandler(t *testing.T) {
	t.Run("Calls-Handler", func(t *testing.T) {
		// Arrange
		e := extract.NewExtractor()
		var got queryParams
		handler := extract.Query(e, extract.QueryConfig{ErrorHandler: newErrorHandler()},
			func(w http.ResponseWriter, r *http.Request, val queryParams) {
				got = val
				w.WriteHeader(http.StatusOK)
			})

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/?name=Jerry&age=41", nil)

		// Act
		handler(w, r)

		// Assert
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, queryParams{Name: "Jerry", Age: 41}, got)
	})

	t.Run("Responds-422", func(t *testing.T) {
		// Arrange
		e := extract.NewExtractor()
		handler := extract.Query(e, extract.QueryConfig{ErrorHandler: newErrorHandler()},
			func(w http.ResponseWriter, r *http.Request, val queryParams) {
				t.Fatal("handler ran on invalid input")
			})

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/?name=&age=200", nil)

		// Act
		handler(w, r)

		// Assert
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)

		var body struct {
			Data struct {
				ValidationErrors []extract.ValidationError `json:"validationErrors"`
			} `json:"data"`
		}
		require.Nil(t, json.Unmarshal(w.Body.Bytes(), &body))
		require.Len(t, body.Data.ValidationErrors, 2)
		require.Equal(t, "name", body.Data.ValidationErrors[0].Field)
	})
}

func TestFormHandler(t *testing.T) {
	t.Run("Calls-Handler", func(t *testing.T) {
		// Arrange
		e := extract.NewExtractor()
		var got queryParams
		handler := extract.Form(e, extract.FormConfig{ErrorHandler: newErrorHandler()},
			func(w http.ResponseWriter, r *http.Request, val queryParams) {
				got = val
				w.WriteHeader(http.StatusCreated)
			})

		w := httptest.NewRecorder()
		r := newFormRequest("name=Jerry&age=41")

		// Act
		handler(w, r)

		// Assert
		require.Equal(t, http.StatusCreated, w.Code)
		require.Equal(t, "Jerry", got.Name)
	})

	t.Run("Responds-400-On-Wrong-Content-Type", func(t *testing.T) {
		// Arrange
		e := extract.NewExtractor()
		handler := extract.Form(e, extract.FormConfig{ErrorHandler: newErrorHandler()},
			func(w http.ResponseWriter, r *http.Request, val queryParams) {
				t.Fatal("handler ran on invalid input")
			})

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/", nil)
		r.Header.Set("Content-Type", "application/json")

		// Act
		handler(w, r)

		// Assert
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Responds-413-Over-Limit", func(t *testing.T) {
		// Arrange
		e := extract.NewExtractor()
		handler := extract.Form(e, extract.FormConfig{MaxSize: 8, ErrorHandler: newErrorHandler()},
			func(w http.ResponseWriter, r *http.Request, val queryParams) {
				t.Fatal("handler ran on invalid input")
			})

		w := httptest.NewRecorder()
		r := newFormRequest("name=JerryButLonger")

		// Act
		handler(w, r)

		// Assert
		require.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	})
}

func TestMultipartHandler(t *testing.T) {
	t.Run("Removes-Temp-Files-After-Handler", func(t *testing.T) {
		// Arrange
		e := extract.NewExtractor()
		var path string
		handler := extract.Multipart(e, extract.MultipartConfig{ErrorHandler: newErrorHandler()},
			func(w http.ResponseWriter, r *http.Request, val uploadForm) {
				path = val.Photo.Path
				require.FileExists(t, path)
				w.WriteHeader(http.StatusCreated)
			})

		w := httptest.NewRecorder()
		r := newMultipartRequest(t, func(mw *stdmultipart.Writer) {
			require.Nil(t, mw.WriteField("title", "summit"))
			fw, err := mw.CreateFormFile("photo", "shot.jpg")
			require.Nil(t, err)
			_, err = fw.Write([]byte("bytes"))
			require.Nil(t, err)
		})

		// Act
		handler(w, r)

		// Assert
		require.Equal(t, http.StatusCreated, w.Code)
		require.NoFileExists(t, path)
	})

	t.Run("Responds-400-On-Failed-Conversion", func(t *testing.T) {
		// Arrange
		e := extract.NewExtractor()
		handler := extract.Multipart(e, extract.MultipartConfig{ErrorHandler: newErrorHandler()},
			func(w http.ResponseWriter, r *http.Request, val uploadForm) {
				t.Fatal("handler ran on invalid input")
			})

		w := httptest.NewRecorder()
		r := newMultipartRequest(t, func(mw *stdmultipart.Writer) {
			require.Nil(t, mw.WriteField("title", "summit"))
		})

		// Act
		handler(w, r)

		// Assert
		require.Equal(t, http.StatusBadRequest, w.Code)

		var body struct {
			Data struct {
				Field string `json:"field"`
			} `json:"data"`
		}
		require.Nil(t, json.Unmarshal(w.Body.Bytes(), &body))
		require.Equal(t, "photo", body.Data.Field)
	})

	t.Run("Responds-413-Over-Budget", func(t *testing.T) {
		// Arrange
		e := extract.NewExtractor()
		cfg := extract.MultipartConfig{
			Config:       multipart.Config{TextLimit: 8},
			ErrorHandler: newErrorHandler(),
		}
		handler := extract.Multipart(e, cfg, func(w http.ResponseWriter, r *http.Request, val uploadForm) {
			t.Fatal("handler ran on invalid input")
		})

		w := httptest.NewRecorder()
		r := newMultipartRequest(t, func(mw *stdmultipart.Writer) {
			require.Nil(t, mw.WriteField("title", "far-more-than-eight-bytes"))
		})

		// Act
		handler(w, r)

		// Assert
		require.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	})
}
