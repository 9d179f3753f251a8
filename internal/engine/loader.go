package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/errgroup"

	"github.com/tonhe/poewatch/internal/api"
)

// ErrOrchestration marks a cycle that broke down as a whole rather than one
// resource failing. Only this error demotes connectivity in the default mode.
var ErrOrchestration = errors.New("refresh orchestration failed")

// ErrAllResourcesFailed is reported in strict mode when every fetch failed.
var ErrAllResourcesFailed = errors.New("all resources failed")

// Source is the part of the backend client the loader fetches from.
// *api.Client satisfies it.
type Source interface {
	Health(ctx context.Context) (*api.Health, error)
	Stats(ctx context.Context) (*api.Stats, error)
	ExchangeRates(ctx context.Context) (*api.ExchangeRates, error)
	Bases(ctx context.Context, limit int) (*api.Bases, error)
	ProfitOpportunities(ctx context.Context, limit int) (*api.Opportunities, error)
	SchedulerStatus(ctx context.Context) (*api.SchedulerStatus, error)
}

// Refresher runs one refresh cycle. The scheduler depends on this rather than
// on *Loader so tests can drive it directly.
type Refresher interface {
	Refresh(ctx context.Context) (Cycle, error)
}

// LoaderOptions tunes a Loader. Zero values select defaults.
type LoaderOptions struct {
	BasesLimit         int
	OpportunitiesLimit int
	Logger             *slog.Logger
	Clock              clockwork.Clock
}

// Loader issues all resource fetches of a cycle concurrently and collects
// one Result per resource.
type Loader struct {
	src        Source
	basesLimit int
	oppsLimit  int
	log        *slog.Logger
	clock      clockwork.Clock
}

func NewLoader(src Source, opts LoaderOptions) *Loader {
	if opts.BasesLimit <= 0 {
		opts.BasesLimit = 500
	}
	if opts.OpportunitiesLimit <= 0 {
		opts.OpportunitiesLimit = api.DefaultOpportunitiesLimit
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Clock == nil {
		opts.Clock = clockwork.NewRealClock()
	}
	return &Loader{
		src:        src,
		basesLimit: opts.BasesLimit,
		oppsLimit:  opts.OpportunitiesLimit,
		log:        opts.Logger,
		clock:      opts.Clock,
	}
}

// Refresh fetches every resource in parallel and waits for all of them.
// Individual failures are recorded in the returned Cycle and never abort the
// others. A non-nil error means the cycle itself failed and wraps
// ErrOrchestration.
func (l *Loader) Refresh(ctx context.Context) (Cycle, error) {
	var c Cycle
	c.StartedAt = l.clock.Now()

	// A plain Group: one failed fetch must not cancel its siblings.
	var g errgroup.Group
	fetch(&g, l.log, ResourceHealth, &c.Health, func() (*api.Health, error) {
		return l.src.Health(ctx)
	})
	fetch(&g, l.log, ResourceStats, &c.Stats, func() (*api.Stats, error) {
		return l.src.Stats(ctx)
	})
	fetch(&g, l.log, ResourceExchangeRates, &c.ExchangeRates, func() (*api.ExchangeRates, error) {
		return l.src.ExchangeRates(ctx)
	})
	fetch(&g, l.log, ResourceBases, &c.Bases, func() (*api.Bases, error) {
		return l.src.Bases(ctx, l.basesLimit)
	})
	fetch(&g, l.log, ResourceOpportunities, &c.Opportunities, func() (*api.Opportunities, error) {
		return l.src.ProfitOpportunities(ctx, l.oppsLimit)
	})
	fetch(&g, l.log, ResourceScheduler, &c.SchedulerStatus, func() (*api.SchedulerStatus, error) {
		return l.src.SchedulerStatus(ctx)
	})

	err := g.Wait()
	c.Duration = l.clock.Since(c.StartedAt)
	if err != nil {
		l.log.Error("refresh cycle failed", "err", err)
		return c, err
	}
	l.log.Debug("refresh cycle complete", "duration", c.Duration, "failed", c.Failed())
	return c, nil
}

// fetch runs fn on g and stores its outcome in dst. Fetch errors are data;
// only a panic is returned to the group.
func fetch[T any](g *errgroup.Group, log *slog.Logger, r Resource, dst *Result[T], fn func() (T, error)) {
	g.Go(func() (err error) {
		defer func() {
			if p := recover(); p != nil {
				err = fmt.Errorf("%w: %s fetch panicked: %v", ErrOrchestration, r, p)
				*dst = Fail[T](err)
			}
		}()
		v, ferr := fn()
		if ferr != nil {
			log.Warn("resource fetch failed", "resource", r.String(), "err", ferr)
			*dst = Fail[T](ferr)
			return nil
		}
		*dst = Ok(v)
		return nil
	})
}
