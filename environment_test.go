package forms_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/forms"
)

func TestEnvironmentValid(t *testing.T) {
	for _, tc := range []struct {
		name  string
		input forms.Environment
		err   error
	}{
		{"Development", forms.Development, nil},
		{"Production", forms.Production, nil},
		{"Review", forms.Review, nil},
		{"Staging", forms.Staging, nil},
		{"Testing", forms.Testing, nil},
		{"Zero-Value", forms.Environment(""), forms.ErrNotValid},
		{"Lowercased", forms.Environment("production"), forms.ErrNotValid},
		{"Unknown", forms.Environment("LOCAL"), forms.ErrNotValid},
	} {
		t.Run(tc.name, func(t *testing.T) {
			require.ErrorIs(t, tc.input.Valid(), tc.err)
		})
	}
}

func TestEnvVarOrEnv(t *testing.T) {
	// Arrange
	key := "FORMS_TEST_ENVIRONMENT"

	t.Run("Unset", func(t *testing.T) {
		require.Equal(t, forms.Development, forms.EnvVarOrEnv(key, forms.Development))
	})

	t.Run("Set", func(t *testing.T) {
		t.Setenv(key, "staging")
		require.Equal(t, forms.Staging, forms.EnvVarOrEnv(key, forms.Development))
	})

	t.Run("Invalid", func(t *testing.T) {
		t.Setenv(key, "nonsense")
		require.Equal(t, forms.Development, forms.EnvVarOrEnv(key, forms.Development))
	})
}

func TestEnvVarOrHelpers(t *testing.T) {
	t.Run("Bool", func(t *testing.T) {
		key := "FORMS_TEST_BOOL"
		require.True(t, forms.EnvVarOrBool(key, true))

		t.Setenv(key, "TRUE")
		require.True(t, forms.EnvVarOrBool(key, false))

		t.Setenv(key, "false")
		require.False(t, forms.EnvVarOrBool(key, true))

		t.Setenv(key, "yes")
		require.True(t, forms.EnvVarOrBool(key, true))
	})

	t.Run("Duration", func(t *testing.T) {
		key := "FORMS_TEST_DURATION"
		require.Equal(t, time.Minute, forms.EnvVarOrDuration(key, time.Minute))

		t.Setenv(key, "90s")
		require.Equal(t, 90*time.Second, forms.EnvVarOrDuration(key, time.Minute))
	})

	t.Run("Int", func(t *testing.T) {
		key := "FORMS_TEST_INT"
		require.Equal(t, 7, forms.EnvVarOrInt(key, 7))

		t.Setenv(key, "42")
		require.Equal(t, 42, forms.EnvVarOrInt(key, 7))

		t.Setenv(key, "forty-two")
		require.Equal(t, 7, forms.EnvVarOrInt(key, 7))
	})

	t.Run("String", func(t *testing.T) {
		key := "FORMS_TEST_STRING"
		require.Equal(t, "fallback", forms.EnvVarOrString(key, "fallback"))

		t.Setenv(key, "value")
		require.Equal(t, "value", forms.EnvVarOrString(key, "fallback"))
	})

	t.Run("URL", func(t *testing.T) {
		key := "FORMS_TEST_URL"
		require.Equal(t, "/", forms.EnvVarOrURL(key, "https://example.com").Path)

		t.Setenv(key, "https://example.com/hello")
		require.Equal(t, "/hello", forms.EnvVarOrURL(key, "https://example.com").Path)

		t.Setenv(key, "not-a-url")
		require.Equal(t, "/", forms.EnvVarOrURL(key, "https://example.com").Path)
	})
}
