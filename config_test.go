package signpost_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/signpost"
)

func TestNewConfig(t *testing.T) {
	// Arrange
	for _, key := range []string{"BASE_URL", "ENVIRONMENT", "LOG_LEVEL", "PORT", "SENTRY_DSN"} {
		t.Setenv(key, "")
	}

	// Act
	cfg, err := signpost.NewConfig(filepath.Join(t.TempDir(), "missing.env"))

	// Assert
	require.Nil(t, err)
	require.Equal(t, signpost.DefaultBaseURL, cfg.BaseURL.String())
	require.Equal(t, signpost.Development, cfg.Env)
	require.Equal(t, "INFO", cfg.LogLevel)
	require.Equal(t, signpost.DefaultPort, cfg.Port)
	require.Equal(t, "", cfg.SentryDSN)
}

func TestNewConfigFromFile(t *testing.T) {
	// Arrange
	for _, key := range []string{"BASE_URL", "ENVIRONMENT", "LOG_LEVEL", "PORT", "SENTRY_DSN"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	fp := filepath.Join(t.TempDir(), "test.env")
	contents := "BASE_URL=https://example.com\nENVIRONMENT=staging\nLOG_LEVEL=DEBUG\nPORT=8080\n"
	require.Nil(t, os.WriteFile(fp, []byte(contents), 0o600))

	// Act
	cfg, err := signpost.NewConfig(fp)

	// Assert
	require.Nil(t, err)
	require.Equal(t, "https://example.com", cfg.BaseURL.String())
	require.Equal(t, signpost.Staging, cfg.Env)
	require.Equal(t, "DEBUG", cfg.LogLevel)
	require.Equal(t, "8080", cfg.Port)
}

func TestNewConfigMalformedFile(t *testing.T) {
	// Arrange
	fp := filepath.Join(t.TempDir(), "bad.env")
	require.Nil(t, os.WriteFile(fp, []byte("BASE_URL='https://example.com\n"), 0o600))

	// Act
	_, err := signpost.NewConfig(fp)

	// Assert
	require.ErrorIs(t, err, signpost.ErrBadConfig)
}
