package logger_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/signpost/logger"
)

func TestLogContextMarshalText(t *testing.T) {
	tcs := []struct {
		name     string
		lc       logger.LogContext
		expected string
	}{
		{"Zero-Value", logger.LogContext{}, `{}`},
		{"Caller-Hidden", logger.LogContext{Caller: "main.go:1"}, `{}`},
		{"Data", logger.LogContext{Data: map[string]any{"test": "data"}}, `{"data":{"test":"data"}}`},
		{"Error", logger.LogContext{Error: errors.New("test")}, `{"error":"test"}`},
		{
			"Request",
			logger.LogContext{Request: httptest.NewRequest(http.MethodGet, "https://example.com/home?id=5", nil)},
			`{"request":{"method":"GET","url":"https://example.com/home?id=5"}}`,
		},
		{"Zero-Route", logger.LogContext{Route: &logger.LogRoute{}}, `{}`},
		{
			"Route",
			logger.LogContext{Route: &logger.LogRoute{Name: "default", Path: "/{controller}"}},
			`{"route":{"name":"default","path":"/{controller}"}}`,
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Act
			b, err := tc.lc.MarshalText()

			// Assert
			require.Nil(t, err)
			require.Equal(t, tc.expected, string(b))
			require.Equal(t, tc.expected, tc.lc.String())
		})
	}
}

func TestLogContextMarshalTextBadData(t *testing.T) {
	// Arrange
	lc := logger.LogContext{Data: map[string]any{"fn": func() {}}}

	// Act
	_, err := lc.MarshalText()

	// Assert
	require.NotNil(t, err)
	require.Contains(t, lc.String(), `"error"`)
}

func TestCurrentCaller(t *testing.T) {
	var caller string
	func() {
		caller = logger.CurrentCaller()
	}()

	require.Contains(t, caller, "logger/context_test.go:")
}
