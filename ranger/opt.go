package ranger

import (
	"context"
	"fmt"
	"io/fs"
	"net/http"

	"github.com/xy-planning-network/signpost"
	"github.com/xy-planning-network/signpost/http/template"
	"github.com/xy-planning-network/signpost/logger"
)

// A RangerOption configures a *Ranger either (1) directly, immediately upon being called
// or (2) in the OptFollowup it returns.
// Some RangerOptions require data in others and thus an OptFollowup can be returned
// in order to be called at a later time when that data is available.
//
// WithConfig is an example of the first.
// An unexported field on the passed in *Ranger is updated with the enclosed value.
//
// WithMaintenanceMode is an example of the second.
// The router it registers a handler with exists only once default options follow up.
type RangerOption func(rng *Ranger) (OptFollowup, error)

// An OptFollowup completes a RangerOption once every RangerOption has been called.
type OptFollowup func() error

// WithConfig exposes the provided signpost.Config to the signpost app,
// in place of the one read from the environment.
func WithConfig(cfg signpost.Config) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		if cfg.BaseURL == nil {
			return nil, fmt.Errorf("%w: Config.BaseURL", signpost.ErrMissingData)
		}

		rng.cfg = cfg
		return nil, nil
	}
}

// WithContext exposes the provided context.Context to the signpost app.
// Canceling ctx stops Guide.
func WithContext(ctx context.Context) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		rng.ctx, rng.cancel = context.WithCancel(ctx)
		return nil, nil
	}
}

// WithFS sets the filesystem templates are read from.
func WithFS(files fs.FS) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		rng.files = files
		return nil, nil
	}
}

// WithLogger exposes the provided logger.Logger to the signpost app.
func WithLogger(l logger.Logger) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		rng.l = l
		return nil, nil
	}
}

// WithMaintenanceMode routes every request to MaintModeHandler
// when on is true.
func WithMaintenanceMode(on bool) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		rng.maint = on
		return nil, nil
	}
}

// WithParserOpts adds opts to those the template.Parser is constructed with.
func WithParserOpts(opts ...template.ParserOptFn) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		rng.parserOpts = append(rng.parserOpts, opts...)
		return nil, nil
	}
}

// WithServer exposes the *http.Server to the signpost app.
// Its Handler is replaced by the Ranger's router.
func WithServer(s *http.Server) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		rng.srv = s
		return nil, nil
	}
}
