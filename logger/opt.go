package logger

import "log"

// loggerConfig carries settings that outlive construction of the *StdLogger.
type loggerConfig struct {
	l         *StdLogger
	sentryDSN string
}

// A LoggerOptFn is a functional option configuring a Logger when constructing a new one.
type LoggerOptFn func(*loggerConfig)

// WithEnv sets the environment the Logger is operating in.
func WithEnv(env string) LoggerOptFn {
	return func(c *loggerConfig) {
		c.l.env = env
	}
}

// WithLevel sets the log level the Logger uses.
// LogLevelUnk leaves the default in place.
func WithLevel(level LogLevel) LoggerOptFn {
	return func(c *loggerConfig) {
		if level == LogLevelUnk {
			return
		}
		c.l.ll = level
	}
}

// WithLogger sets the log.Logger the Logger prints through.
func WithLogger(log *log.Logger) LoggerOptFn {
	return func(c *loggerConfig) {
		c.l.l = log
	}
}

// WithSentry sets the DSN errors are reported to.
// An empty dsn disables reporting.
func WithSentry(dsn string) LoggerOptFn {
	return func(c *loggerConfig) {
		c.sentryDSN = dsn
	}
}

// WithSkip sets the number of frames in the call stack
// to skip in order to log the desired file and line number
// of the calling code.
func WithSkip(skip int) LoggerOptFn {
	return func(c *loggerConfig) {
		c.l.skip = skip
	}
}
