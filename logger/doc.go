/*
Package logger provides logging functionality to a signpost app by defining the required behavior in [Logger]
and providing an implementation of it with [StdLogger].

# Overview

The Logger interface outputs messages at certain levels of importance.
LogLevel is the type to use to represent those levels.
An implementation of Logger may be initialized at a certain [LogLevel]
and only emit messages at or above that level of importance.
For example, [StdLogger] initialized with [LogLevelWarn]
only produces messages from [*StdLogger.Warn], [*StdLogger.Error], and [*StdLogger.Fatal].

# StdLogger

Log messages emitted by [StdLogger] are composed of a few parts:
  - timestamp
  - log level
  - call site
  - message
  - log context

Here's an example:

	2024/04/28 15:55:21 [DEBUG] router/router.go:143 'bound route' log_context: {"route":{"action":"Index","controller":"Home","path":"/"}}

The log context is a JSON-encoded [LogContext].
It carries data inessential to the message proper,
such as the route a link was generated for.

# SentryLogger

When [New] is given a DSN with [WithSentry],
warnings and errors carrying a [LogContext.Error] are also reported to Sentry.
*/
package logger
