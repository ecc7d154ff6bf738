/*
Package ranger initializes and manages a signpost app with sane defaults.

# Ranger

The main entrypoint to package ranger is the [Ranger] type.
A [Ranger] ought to be constructed with [New].
It embeds the [*router.Router] routes are registered with
and exposes a [*link.Helper] rendering links to them as Links.

[*Ranger.Guide] begins a signpost app's web server.
By default, [*Ranger.Guide] listens on PORT (3000).

Upon calling [*Ranger.Guide], all routes configured up to that point are now active.
Stop that web server with [*Ranger.Shutdown],
call the context.CancelFunc returned by [*Ranger.Cancel],
or send a signal [*Ranger.Guide] listens for.

# Templates

Templates parsed by a [Ranger] can call the link functions of [link.Helper.Funcs]:

	{{ actionLink "Details" .DetailsCall }}

[*Ranger.Check] type-checks templates against the data they render,
catching a link function called with the wrong arguments before any request is served.

# Configuration

A developer configures a signpost app through environment variables;
cf. [signpost.NewConfig] for those it reads.
Environment variables ought to be set in a file called ".env"
found at the same directory the application is executed from.

These additional environment variables configure the web server:
  - SERVER_IDLE_TIMEOUT: the timeout - as understood by [time.ParseDuration] - for idling between requests when using keep-alives; default: 120s
  - SERVER_READ_TIMEOUT: the timeout - as understood by [time.ParseDuration] - for reading HTTP requests; default: 5s
  - SERVER_WRITE_TIMEOUT: the timeout - as understood by [time.ParseDuration] - for writing HTTP responses; default: 5s
*/
package ranger
