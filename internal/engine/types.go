package engine

import (
	"time"

	"github.com/tonhe/poewatch/internal/api"
)

// Resource identifies one backend resource fetched in every refresh cycle.
type Resource int

const (
	ResourceHealth Resource = iota
	ResourceStats
	ResourceExchangeRates
	ResourceBases
	ResourceOpportunities
	ResourceScheduler
	resourceCount
)

// Resources lists every resource of a refresh cycle in display order.
var Resources = []Resource{
	ResourceHealth,
	ResourceStats,
	ResourceExchangeRates,
	ResourceBases,
	ResourceOpportunities,
	ResourceScheduler,
}

func (r Resource) String() string {
	switch r {
	case ResourceHealth:
		return "health"
	case ResourceStats:
		return "stats"
	case ResourceExchangeRates:
		return "exchange-rates"
	case ResourceBases:
		return "bases"
	case ResourceOpportunities:
		return "profit-opportunities"
	case ResourceScheduler:
		return "scheduler-status"
	default:
		return "unknown"
	}
}

// Result is the outcome of a single resource fetch. A failed fetch carries
// Err; a successful one may still hold an empty payload.
type Result[T any] struct {
	Value T
	Err   error
}

func Ok[T any](v T) Result[T] { return Result[T]{Value: v} }

func Fail[T any](err error) Result[T] { return Result[T]{Err: err} }

// Ok reports whether the fetch succeeded.
func (r Result[T]) Ok() bool { return r.Err == nil }

// Snapshot is the latest known value of every resource. A nil field means
// the resource has never been fetched successfully.
type Snapshot struct {
	Health          *api.Health
	Stats           *api.Stats
	ExchangeRates   *api.ExchangeRates
	Bases           *api.Bases
	Opportunities   *api.Opportunities
	SchedulerStatus *api.SchedulerStatus

	// UpdatedAt holds the completion time of the last successful fetch
	// per resource, indexed by Resource.
	UpdatedAt [resourceCount]time.Time
}

// Has reports whether the snapshot holds a value for r.
func (s Snapshot) Has(r Resource) bool {
	switch r {
	case ResourceHealth:
		return s.Health != nil
	case ResourceStats:
		return s.Stats != nil
	case ResourceExchangeRates:
		return s.ExchangeRates != nil
	case ResourceBases:
		return s.Bases != nil
	case ResourceOpportunities:
		return s.Opportunities != nil
	case ResourceScheduler:
		return s.SchedulerStatus != nil
	default:
		return false
	}
}

// Updated returns when r was last fetched successfully.
func (s Snapshot) Updated(r Resource) time.Time {
	if r < 0 || r >= resourceCount {
		return time.Time{}
	}
	return s.UpdatedAt[r]
}

// Cycle collects the per-resource results of one refresh cycle.
type Cycle struct {
	Health          Result[*api.Health]
	Stats           Result[*api.Stats]
	ExchangeRates   Result[*api.ExchangeRates]
	Bases           Result[*api.Bases]
	Opportunities   Result[*api.Opportunities]
	SchedulerStatus Result[*api.SchedulerStatus]

	StartedAt time.Time
	Duration  time.Duration
}

// Err returns the error of resource r in this cycle, or nil.
func (c Cycle) Err(r Resource) error {
	switch r {
	case ResourceHealth:
		return c.Health.Err
	case ResourceStats:
		return c.Stats.Err
	case ResourceExchangeRates:
		return c.ExchangeRates.Err
	case ResourceBases:
		return c.Bases.Err
	case ResourceOpportunities:
		return c.Opportunities.Err
	case ResourceScheduler:
		return c.SchedulerStatus.Err
	default:
		return nil
	}
}

// Errors returns the per-resource errors indexed by Resource.
func (c Cycle) Errors() [resourceCount]error {
	var errs [resourceCount]error
	for _, r := range Resources {
		errs[r] = c.Err(r)
	}
	return errs
}

// Failed counts the resources that failed in this cycle.
func (c Cycle) Failed() int {
	n := 0
	for _, r := range Resources {
		if c.Err(r) != nil {
			n++
		}
	}
	return n
}

// AllFailed reports whether no resource succeeded.
func (c Cycle) AllFailed() bool {
	return c.Failed() == len(Resources)
}

// Merge folds a cycle into the previous snapshot. Successful results replace
// their field; failed results leave the previous value in place.
func Merge(prev Snapshot, c Cycle, at time.Time) Snapshot {
	next := prev
	if c.Health.Ok() {
		next.Health = c.Health.Value
		next.UpdatedAt[ResourceHealth] = at
	}
	if c.Stats.Ok() {
		next.Stats = c.Stats.Value
		next.UpdatedAt[ResourceStats] = at
	}
	if c.ExchangeRates.Ok() {
		next.ExchangeRates = c.ExchangeRates.Value
		next.UpdatedAt[ResourceExchangeRates] = at
	}
	if c.Bases.Ok() {
		next.Bases = c.Bases.Value
		next.UpdatedAt[ResourceBases] = at
	}
	if c.Opportunities.Ok() {
		next.Opportunities = c.Opportunities.Value
		next.UpdatedAt[ResourceOpportunities] = at
	}
	if c.SchedulerStatus.Ok() {
		next.SchedulerStatus = c.SchedulerStatus.Value
		next.UpdatedAt[ResourceScheduler] = at
	}
	return next
}

// Connectivity is the coarse up/down signal shown to the operator.
type Connectivity int

const (
	Disconnected Connectivity = iota
	Connected
)

func (c Connectivity) String() string {
	if c == Connected {
		return "CONNECTED"
	}
	return "DISCONNECTED"
}

// Phase is the scheduler's position in its IDLE/FETCHING state machine.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseFetching
)

func (p Phase) String() string {
	if p == PhaseFetching {
		return "FETCHING"
	}
	return "IDLE"
}

// CycleSample records the timing of one completed cycle.
type CycleSample struct {
	At       time.Time
	Duration time.Duration
	Failed   int
}

// State is everything the views need to render. It is replaced as a whole
// when a cycle completes, so a copy is always internally consistent.
type State struct {
	Snapshot     Snapshot
	Connectivity Connectivity
	Phase        Phase
	LastRefresh  time.Time
	LastErr      error
	// Failures holds the per-resource errors of the last completed cycle.
	Failures   [resourceCount]error
	CycleCount int
	ErrorCount int
	History    []CycleSample
}

// Loading reports whether a cycle is in flight.
func (s State) Loading() bool {
	return s.Phase == PhaseFetching
}

// PanelLoading reports whether the panel for r should show a loading
// placeholder: a cycle is in flight and there is nothing to show yet.
func (s State) PanelLoading(r Resource) bool {
	return s.Loading() && !s.Snapshot.Has(r)
}

// Failure returns the error of r in the last completed cycle.
func (s State) Failure(r Resource) error {
	if r < 0 || r >= resourceCount {
		return nil
	}
	return s.Failures[r]
}

// HealthyCount returns how many resources hold a value and did not fail in
// the last cycle.
func (s State) HealthyCount() int {
	n := 0
	for _, r := range Resources {
		if s.Snapshot.Has(r) && s.Failures[r] == nil {
			n++
		}
	}
	return n
}

// Event is emitted to subscribers after every state change.
type Event struct {
	State State
}
