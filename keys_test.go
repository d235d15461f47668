package forms_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/forms"
)

func TestKeyString(t *testing.T) {
	for _, tc := range []struct {
		name     string
		input    forms.Key
		expected string
	}{
		{"Zero-Value", forms.Key(""), "forms context key: "},
		{"IpAddr", forms.IpAddrKey, "forms context key: IpAddrKey"},
		{"RequestID", forms.RequestIDKey, "forms context key: RequestIDKey"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, tc.input.String())
		})
	}
}
