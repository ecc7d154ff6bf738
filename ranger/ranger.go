package ranger

import (
	"context"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/xy-planning-network/signpost"
	"github.com/xy-planning-network/signpost/http/link"
	"github.com/xy-planning-network/signpost/http/router"
	"github.com/xy-planning-network/signpost/http/template"
	"github.com/xy-planning-network/signpost/logger"
)

// A Ranger manages and exposes all components of a signpost app to one another.
type Ranger struct {
	*router.Router

	// Links renders links to the actions registered with Router.
	Links *link.Helper

	cfg        signpost.Config
	ctx        context.Context
	cancel     context.CancelFunc
	files      fs.FS
	l          logger.Logger
	maint      bool
	p          template.Parser
	parserOpts []template.ParserOptFn
	srv        *http.Server
}

// New constructs a Ranger from the provided options.
// Default options are applied first followed by the options passed into New.
// Options supplied to New overwrite default configurations.
func New(opts ...RangerOption) (*Ranger, error) {
	r := new(Ranger)
	followups := make([]OptFollowup, 0)

	// NOTE(dlk): calling an option configures the *Ranger under construction.
	// Some options require data from other options.
	// These options, therefore, must delay configuring the *Ranger
	// until either (1) user supplied RangerOptions or (2) default RangerOptions
	// configure the *Ranger first.
	// They return an OptFollowup to be called after the initial set of options are run.
	for _, opt := range append(defaultOpts(), opts...) {
		fn, err := opt(r)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", signpost.ErrBadConfig, err)
		}

		if fn != nil {
			followups = append(followups, fn)
		}
	}

	for _, fn := range followups {
		if err := fn(); err != nil {
			return nil, fmt.Errorf("%w: %s", signpost.ErrBadConfig, err)
		}
	}

	return r, nil
}

// Cancel returns the context.CancelFunc stopping Guide.
func (r *Ranger) Cancel() context.CancelFunc { return r.cancel }

func (r *Ranger) EmitConfig() signpost.Config  { return r.cfg }
func (r *Ranger) EmitContext() context.Context { return r.ctx }
func (r *Ranger) EmitLogger() logger.Logger    { return r.l }
func (r *Ranger) EmitParser() template.Parser  { return r.p }
func (r *Ranger) EmitServer() *http.Server     { return r.srv }

// Check parses tmpls and type-checks them as though executed with data,
// so templates calling the link functions with the wrong arguments
// fail at startup instead of when rendered.
func (r *Ranger) Check(data any, tmpls ...string) error {
	tmpl, err := r.p.Parse(tmpls...)
	if err != nil {
		return err
	}

	return r.p.Check(tmpl, data)
}

// Html parses tmpls and renders the first with data.
// When parsing or rendering fails, the error is logged
// and 500 Internal Server Error is responded with.
func (r *Ranger) Html(w http.ResponseWriter, req *http.Request, data any, tmpls ...string) {
	tmpl, err := r.p.Parse(tmpls...)
	if err == nil {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		err = tmpl.Execute(w, data)
	}

	if err != nil {
		r.l.Error(err.Error(), &logger.LogContext{Error: err, Request: req})
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

// Guide begins the web server.
//
// These, and (*Ranger).Shutdown, stop Guide:
//
// - os.Interrupt
// - syscall.SIGHUP
// - syscall.SIGINT
// - syscall.SIGQUIT
// - syscall.SIGTERM
// - the context.CancelFunc Cancel returns
func (r *Ranger) Guide() error {
	ch := make(chan os.Signal, 1)
	signal.Notify(
		ch,
		os.Interrupt,
		syscall.SIGHUP,
		syscall.SIGINT,
		syscall.SIGQUIT,
		syscall.SIGTERM,
	)
	defer signal.Stop(ch)

	go func() {
		select {
		case s := <-ch:
			r.l.Info(fmt.Sprint("received shutdown signal: ", s), nil)
			r.cancel()
		case <-r.ctx.Done():
		}
	}()

	go func() {
		r.l.Info(fmt.Sprintf("running web server at %s", r.srv.Addr), nil)
		if err := r.srv.ListenAndServe(); err != http.ErrServerClosed {
			err = fmt.Errorf("could not listen: %w", err)
			r.l.Error(err.Error(), nil)
			r.cancel()
		}
	}()

	<-r.ctx.Done()
	return r.Shutdown()
}

// Shutdown shutdowns the web server.
func (r *Ranger) Shutdown() error {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	r.l.Info("shutting down web server", nil)
	err := r.srv.Shutdown(shutdownCtx)
	if err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("could not shutdown: %w", err)
	}

	r.l.Info("web server shutdown successfully", nil)
	return nil
}
