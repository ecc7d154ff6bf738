package signpost

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"

	"github.com/joho/godotenv"
)

const (
	DefaultBaseURL = "http://localhost:3000"
	DefaultPort    = "3000"

	baseURLEnvVar   = "BASE_URL"
	envEnvVar       = "ENVIRONMENT"
	logLevelEnvVar  = "LOG_LEVEL"
	portEnvVar      = "PORT"
	sentryDSNEnvVar = "SENTRY_DSN"
)

// A Config holds the settings a signpost app reads from its environment.
type Config struct {
	// BaseURL is the root URL absolute links are generated against
	// when a link does not name its own protocol or host.
	BaseURL *url.URL

	Env       Environment
	LogLevel  string
	Port      string
	SentryDSN string
}

// NewConfig loads the provided .env files into the environment,
// then reads a Config out of environment variables.
//
// Without any files, NewConfig attempts ".env" in the working directory.
// Missing files are not an error; malformed ones are.
//
// Here are the available environment variables:
//   - BASE_URL: the root URL of the app; default: http://localhost:3000
//   - ENVIRONMENT: one of DEVELOPMENT, TESTING, REVIEW, STAGING, PRODUCTION; default: DEVELOPMENT
//   - LOG_LEVEL: one of DEBUG, INFO, WARN, ERROR, FATAL; default: INFO
//   - PORT: the port the app listens on; default: 3000
//   - SENTRY_DSN: when set, errors are shipped to Sentry
func NewConfig(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("%w: loading env files: %s", ErrBadConfig, err)
	}

	cfg := Config{
		BaseURL:   EnvVarOrURL(baseURLEnvVar, DefaultBaseURL),
		Env:       EnvVarOrEnv(envEnvVar, Development),
		LogLevel:  EnvVarOrString(logLevelEnvVar, "INFO"),
		Port:      EnvVarOrString(portEnvVar, DefaultPort),
		SentryDSN: EnvVarOrString(sentryDSNEnvVar, ""),
	}

	if cfg.BaseURL == nil {
		return Config{}, fmt.Errorf("%w: %s is not a valid URL", ErrBadConfig, baseURLEnvVar)
	}

	return cfg, nil
}
