package signpost_test

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/signpost"
)

func TestEnvironmentValid(t *testing.T) {
	for _, tc := range []struct {
		name string
		env  signpost.Environment
		err  error
	}{
		{"Development", signpost.Development, nil},
		{"Production", signpost.Production, nil},
		{"Review", signpost.Review, nil},
		{"Staging", signpost.Staging, nil},
		{"Testing", signpost.Testing, nil},
		{"Zero-Value", "", signpost.ErrNotValid},
		{"Lower-Case", "testing", signpost.ErrNotValid},
	} {
		t.Run(tc.name, func(t *testing.T) {
			require.ErrorIs(t, tc.env.Valid(), tc.err)
		})
	}
}

func TestEnvVarOrBool(t *testing.T) {
	for _, tc := range []struct {
		name     string
		val      string
		def      bool
		expected bool
	}{
		{"Unset", "", true, true},
		{"True", "TRUE", false, true},
		{"False", "false", true, false},
		{"Garbage", "yes", false, false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			t.Setenv("SIGNPOST_TEST_BOOL", tc.val)

			// Act
			actual := signpost.EnvVarOrBool("SIGNPOST_TEST_BOOL", tc.def)

			// Assert
			require.Equal(t, tc.expected, actual)
		})
	}
}

func TestEnvVarOrDuration(t *testing.T) {
	for _, tc := range []struct {
		name     string
		val      string
		expected time.Duration
	}{
		{"Unset", "", time.Second},
		{"Valid", "90s", 90 * time.Second},
		{"Not-A-Duration", "90", time.Second},
	} {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			t.Setenv("SIGNPOST_TEST_DURATION", tc.val)

			// Act
			actual := signpost.EnvVarOrDuration("SIGNPOST_TEST_DURATION", time.Second)

			// Assert
			require.Equal(t, tc.expected, actual)
		})
	}
}

func TestEnvVarOrEnv(t *testing.T) {
	for _, tc := range []struct {
		name     string
		val      string
		expected signpost.Environment
	}{
		{"Unset", "", signpost.Development},
		{"Upper-Cased", "staging", signpost.Staging},
		{"Unknown", "LOCAL", signpost.Development},
	} {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			t.Setenv("SIGNPOST_TEST_ENV", tc.val)

			// Act
			actual := signpost.EnvVarOrEnv("SIGNPOST_TEST_ENV", signpost.Development)

			// Assert
			require.Equal(t, tc.expected, actual)
		})
	}
}

func TestEnvVarOrInt(t *testing.T) {
	t.Setenv("SIGNPOST_TEST_INT", "42")
	require.Equal(t, 42, signpost.EnvVarOrInt("SIGNPOST_TEST_INT", 1))

	t.Setenv("SIGNPOST_TEST_INT", "forty-two")
	require.Equal(t, 1, signpost.EnvVarOrInt("SIGNPOST_TEST_INT", 1))
}

func TestEnvVarOrString(t *testing.T) {
	t.Setenv("SIGNPOST_TEST_STRING", "")
	require.Equal(t, "def", signpost.EnvVarOrString("SIGNPOST_TEST_STRING", "def"))

	t.Setenv("SIGNPOST_TEST_STRING", "val")
	require.Equal(t, "val", signpost.EnvVarOrString("SIGNPOST_TEST_STRING", "def"))
}

func TestEnvVarOrURL(t *testing.T) {
	def := "http://localhost:3000"
	defURL, err := url.ParseRequestURI(def)
	require.Nil(t, err)

	for _, tc := range []struct {
		name     string
		val      string
		def      string
		expected *url.URL
	}{
		{"Unset", "", def, defURL},
		{"Valid", "https://example.com", def, &url.URL{Scheme: "https", Host: "example.com"}},
		{"Not-A-URL", "example", def, defURL},
		{"Neither", "example", "example", nil},
	} {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			t.Setenv("SIGNPOST_TEST_URL", tc.val)

			// Act
			actual := signpost.EnvVarOrURL("SIGNPOST_TEST_URL", tc.def)

			// Assert
			require.Equal(t, tc.expected, actual)
		})
	}
}
