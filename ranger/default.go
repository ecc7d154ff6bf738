package ranger

import (
	"context"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/xy-planning-network/signpost"
	"github.com/xy-planning-network/signpost/http/link"
	"github.com/xy-planning-network/signpost/http/middleware"
	"github.com/xy-planning-network/signpost/http/router"
	"github.com/xy-planning-network/signpost/http/template"
	"github.com/xy-planning-network/signpost/logger"
)

const (
	// Default HTML template files
	defaultTmplDir   = "tmpl"
	defaultMaintTmpl = defaultTmplDir + "/maintenance.tmpl"

	// Web server defaults
	serverReadTimeoutEnvVar   = "SERVER_READ_TIMEOUT"
	DefaultServerReadTimeout  = 5 * time.Second
	serverIdleTimeoutEnvVar   = "SERVER_IDLE_TIMEOUT"
	DefaultServerIdleTimeout  = 120 * time.Second
	serverWriteTimeoutEnvVar  = "SERVER_WRITE_TIMEOUT"
	DefaultServerWriteTimeout = 5 * time.Second

	maintRetryAfter = "600"
)

// defaultOpts are the RangerOptions every *Ranger is constructed with
// before those passed to New.
func defaultOpts() []RangerOption {
	return []RangerOption{
		defaultConfig,
		defaultContext,
		setup,
	}
}

// defaultConfig reads a signpost.Config from the environment,
// loading a ".env" file in the working directory if there is one.
func defaultConfig(rng *Ranger) (OptFollowup, error) {
	cfg, err := signpost.NewConfig()
	if err != nil {
		return nil, err
	}

	rng.cfg = cfg
	return nil, nil
}

func defaultContext(rng *Ranger) (OptFollowup, error) {
	rng.ctx, rng.cancel = context.WithCancel(context.Background())
	return nil, nil
}

// setup follows up by building whatever components the options passed to New did not supply,
// in the order each depends on the last: logger, router, parser, server.
func setup(rng *Ranger) (OptFollowup, error) {
	return func() error {
		if rng.l == nil {
			rng.l = defaultLogger(rng.cfg)
		}

		rng.Router = defaultRouter(rng.cfg, rng.l)
		rng.Links = link.New(rng.Router)
		rng.p = defaultParser(rng)

		if rng.srv == nil {
			rng.srv = defaultServer(rng.ctx, rng.cfg)
		}
		rng.srv.Handler = rng.Router

		if rng.maint {
			rng.l.Warn("maintenance mode on", nil)
			rng.Router.CatchAll(MaintModeHandler(rng.p, rng.l))
		}

		return nil
	}, nil
}

// defaultLogger constructs a logger.Logger configured by cfg.
func defaultLogger(cfg signpost.Config) logger.Logger {
	l := logger.New(
		logger.WithEnv(cfg.Env.String()),
		logger.WithLevel(logger.NewLogLevel(cfg.LogLevel)),
		logger.WithSentry(cfg.SentryDSN),
	)
	l.Debug("setting up app logger", nil)

	return l
}

// defaultRouter constructs a *router.Router linking against cfg.BaseURL
// and applying this middleware stack to every request:
//
//   - RateLimit
//   - ForceHTTPS, outside of development and testing
//   - InjectIPAddress
//   - RequestID
//   - LogRequest
//   - CORS, allowing cfg.BaseURL's origin
func defaultRouter(cfg signpost.Config, l logger.Logger) *router.Router {
	logReq := middleware.LogRequest(l)
	r := router.New(cfg.Env, logReq, router.WithLogger(l), router.WithRootURL(cfg.BaseURL))

	mws := []middleware.Adapter{middleware.RateLimit(middleware.NewVisitors())}
	if !cfg.Env.IsDevelopment() && !cfg.Env.IsTesting() {
		mws = append(mws, middleware.ForceHTTPS(cfg.Env))
	}

	mws = append(
		mws,
		middleware.InjectIPAddress(),
		middleware.RequestID(),
		logReq,
		middleware.CORS(cfg.BaseURL.Scheme+"://"+cfg.BaseURL.Host),
	)
	r.OnEveryRequest(mws...)

	return r
}

// defaultParser constructs a template.Parser
// for rendering HTML with [*Ranger.Html].
//
// defaultParser makes available these functions in an HTML template:
//
//   - "actionLink", "actionLinkWith", "routeLink", "routeLinkWith"; cf. [link.Helper.Funcs]
//   - "env"
//   - "isDevelopment"
//   - "nonce"
//   - "rootURL"
func defaultParser(rng *Ranger) template.Parser {
	opts := []template.ParserOptFn{
		template.WithFuncs(rng.Links.Funcs()),
		template.WithFn(template.Env(rng.cfg.Env)),
		template.WithFn("isDevelopment", rng.cfg.Env.IsDevelopment),
		template.WithFn(template.Nonce()),
		template.WithFn(template.RootURL(rng.cfg.BaseURL)),
	}

	if rng.files != nil {
		opts = append(opts, template.WithFS(rng.files))
	}

	return template.NewParser(append(opts, rng.parserOpts...)...)
}

// defaultServer constructs a default [*http.Server].
func defaultServer(ctx context.Context, cfg signpost.Config) *http.Server {
	port := cfg.Port
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	srv := &http.Server{
		Addr:         port,
		IdleTimeout:  signpost.EnvVarOrDuration(serverIdleTimeoutEnvVar, DefaultServerIdleTimeout),
		ReadTimeout:  signpost.EnvVarOrDuration(serverReadTimeoutEnvVar, DefaultServerReadTimeout),
		WriteTimeout: signpost.EnvVarOrDuration(serverWriteTimeoutEnvVar, DefaultServerWriteTimeout),
	}
	if ctx != nil {
		srv.BaseContext = func(_ net.Listener) context.Context { return ctx }
	}

	return srv
}

// MaintModeHandler responds to every request with 503 Service Unavailable,
// rendering "tmpl/maintenance.tmpl" when p can parse it.
func MaintModeHandler(p template.Parser, l logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", maintRetryAfter)

		tmpl, err := p.Parse(defaultMaintTmpl)
		if err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusServiceUnavailable)
		if err := tmpl.Execute(w, nil); err != nil {
			l.Error(err.Error(), &logger.LogContext{Error: err, Request: r})
		}
	}
}
