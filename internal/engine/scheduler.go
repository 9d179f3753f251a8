package engine

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// DefaultInterval is the automatic refresh period.
const DefaultInterval = 30 * time.Second

// Options configures a Scheduler. Zero values select defaults.
type Options struct {
	Interval time.Duration
	// StrictConnectivity also reports DISCONNECTED when every resource of a
	// cycle failed.
	StrictConnectivity bool
	MaxHistory         int
	Clock              clockwork.Clock
	Logger             *slog.Logger
}

type outcome struct {
	cycle Cycle
	err   error
}

// Scheduler drives refresh cycles: one immediately on Start, then one per
// interval, plus manual triggers. At most one cycle is in flight. A tick that
// lands during a cycle is dropped; a manual trigger is queued and runs once
// the current cycle settles.
type Scheduler struct {
	mu          sync.RWMutex
	refresher   Refresher
	interval    time.Duration
	strict      bool
	clock       clockwork.Clock
	log         *slog.Logger
	state       State
	history     *RingBuffer[CycleSample]
	subscribers []chan Event
	closed      bool

	ctx       context.Context
	cancel    context.CancelFunc
	triggerCh chan struct{}
	stopCh    chan struct{}
	doneCh    chan struct{}
	startOnce sync.Once
	stopOnce  sync.Once
	started   bool
}

func NewScheduler(refresher Refresher, opts Options) *Scheduler {
	if opts.Interval <= 0 {
		opts.Interval = DefaultInterval
	}
	if opts.Clock == nil {
		opts.Clock = clockwork.NewRealClock()
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		refresher: refresher,
		interval:  opts.Interval,
		strict:    opts.StrictConnectivity,
		clock:     opts.Clock,
		log:       opts.Logger,
		history:   NewRingBuffer[CycleSample](opts.MaxHistory),
		ctx:       ctx,
		cancel:    cancel,
		triggerCh: make(chan struct{}, 1),
		stopCh:    make(chan struct{}),
		doneCh:    make(chan struct{}),
	}
}

// Interval returns the automatic refresh period.
func (s *Scheduler) Interval() time.Duration {
	return s.interval
}

// Start launches the refresh loop and the first cycle. Calling it again has
// no effect.
func (s *Scheduler) Start() {
	if s.stopped() {
		return
	}
	s.startOnce.Do(func() {
		s.mu.Lock()
		s.started = true
		s.mu.Unlock()
		go s.run()
	})
}

// Stop halts the timer, cancels any in-flight cycle and discards its result.
// Subscriber channels are closed. It is safe to call more than once.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		close(s.stopCh)
		s.cancel()
		s.mu.RLock()
		started := s.started
		s.mu.RUnlock()
		if started {
			<-s.doneCh
		}
		s.closeSubscribers()
	})
}

// Trigger requests a manual refresh. Repeated triggers while one is already
// pending collapse into it. It never blocks.
func (s *Scheduler) Trigger() {
	select {
	case s.triggerCh <- struct{}{}:
	default:
	}
}

func (s *Scheduler) run() {
	defer close(s.doneCh)

	ticker := s.clock.NewTicker(s.interval)
	defer ticker.Stop()

	results := make(chan outcome, 1)
	inFlight := false
	queued := false

	begin := func(reason string) {
		inFlight = true
		s.setPhase(PhaseFetching)
		s.log.Debug("refresh cycle started", "reason", reason)
		go func() {
			defer func() {
				if p := recover(); p != nil {
					results <- outcome{err: fmt.Errorf("%w: %v", ErrOrchestration, p)}
				}
			}()
			c, err := s.refresher.Refresh(s.ctx)
			results <- outcome{cycle: c, err: err}
		}()
	}

	begin("start")
	for {
		select {
		case <-ticker.Chan():
			if inFlight {
				s.log.Debug("tick dropped, cycle in flight")
				continue
			}
			begin("timer")
		case <-s.triggerCh:
			if inFlight {
				queued = true
				continue
			}
			begin("manual")
		case out := <-results:
			inFlight = false
			if s.stopped() {
				return
			}
			s.complete(out)
			if queued {
				queued = false
				begin("manual")
			}
		case <-s.stopCh:
			return
		}
	}
}

func (s *Scheduler) stopped() bool {
	select {
	case <-s.stopCh:
		return true
	default:
		return false
	}
}

func (s *Scheduler) setPhase(p Phase) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Phase = p
	s.notify()
}

// complete applies a settled cycle to the state.
func (s *Scheduler) complete(out outcome) {
	now := s.clock.Now()
	s.history.Add(CycleSample{At: now, Duration: out.cycle.Duration, Failed: out.cycle.Failed()})

	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.state
	st.Phase = PhaseIdle
	st.CycleCount++
	switch {
	case out.err != nil:
		st.Connectivity = Disconnected
		st.LastErr = out.err
		st.ErrorCount++
		s.log.Error("refresh cycle aborted", "err", out.err)
	default:
		st.Snapshot = Merge(st.Snapshot, out.cycle, now)
		st.Failures = out.cycle.Errors()
		st.LastRefresh = now
		st.LastErr = nil
		st.Connectivity = Connected
		if s.strict && out.cycle.AllFailed() {
			st.Connectivity = Disconnected
			st.LastErr = ErrAllResourcesFailed
			st.ErrorCount++
		}
	}
	st.History = s.history.All()
	s.state = st
	s.notify()
}

// State returns a copy of the current state. Safe from any goroutine.
func (s *Scheduler) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Subscribe returns a channel that receives the latest state after every
// change. A slow reader only ever sees the newest event. The channel is
// closed by Stop.
func (s *Scheduler) Subscribe() <-chan Event {
	ch := make(chan Event, 1)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		close(ch)
		return ch
	}
	s.subscribers = append(s.subscribers, ch)
	return ch
}

// notify must be called with s.mu held for writing.
func (s *Scheduler) notify() {
	ev := Event{State: s.state}
	for _, ch := range s.subscribers {
		select {
		case ch <- ev:
		default:
			// Replace the stale event.
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- ev:
			default:
			}
		}
	}
}

func (s *Scheduler) closeSubscribers() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, ch := range s.subscribers {
		close(ch)
	}
	s.subscribers = nil
	s.closed = true
}
