package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/forms/logger"
)

func TestLogContextMarshalText(t *testing.T) {
	// Arrange
	lc := logger.LogContext{}

	// Act
	b, err := lc.MarshalText()

	// Assert
	require.Nil(t, err)
	require.Equal(t, []byte("{}"), b)

	// Arrange
	lc = logger.LogContext{Data: map[string]any{"test": "data"}}

	// Act
	b, err = lc.MarshalText()

	// Assert
	require.Nil(t, err)
	require.Equal(t, `{"data":{"test":"data"}}`, string(b))

	// Arrange
	lc = logger.LogContext{Error: errors.New("test")}

	// Act
	b, err = lc.MarshalText()

	// Assert
	require.Nil(t, err)
	require.Equal(t, `{"error":"test"}`, string(b))

	// Arrange
	r := httptest.NewRequest(http.MethodGet, "https://example.com", nil)
	r.Header.Set("Host", "example.com")
	lc = logger.LogContext{Request: r}
	expected := map[string]any{
		"request": map[string]any{
			"method": http.MethodGet,
			"url":    "https://example.com",
			"header": map[string]any{
				"Host": []any{"example.com"},
			},
		},
	}

	// Act
	b, err = lc.MarshalText()

	// Assert
	require.Nil(t, err)
	m := make(map[string]any)
	require.Nil(t, json.Unmarshal(b, &m))
	require.Equal(t, expected, m)

	// Arrange
	form := url.Values{}
	form.Set("email", "husserl@example.com")
	r = httptest.NewRequest(http.MethodPost, "https://example.com/test?some=param", strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r.ParseForm()
	lc = logger.LogContext{Request: r}

	// Act
	b, err = lc.MarshalText()

	// Assert
	require.Nil(t, err)
	m = make(map[string]any)
	require.Nil(t, json.Unmarshal(b, &m))
	req := m["request"].(map[string]any)
	require.Equal(t, map[string]any{"email": []any{"husserl@example.com"}}, req["form"])

	// Arrange
	buf := new(bytes.Buffer)
	require.Nil(t, json.NewEncoder(buf).Encode(map[string]string{"email": "husserl@example.com"}))
	r = httptest.NewRequest(http.MethodPost, "https://example.com/test", buf)
	r.Header.Set("Content-Type", "application/json")
	lc = logger.LogContext{Request: r}

	// Act
	b, err = lc.MarshalText()

	// Assert
	require.Nil(t, err)
	m = make(map[string]any)
	require.Nil(t, json.Unmarshal(b, &m))
	req = m["request"].(map[string]any)
	require.Equal(t, map[string]any{"email": "husserl@example.com"}, req["json"])
}
