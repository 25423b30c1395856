// Package dashboard keeps a labor dashboard snapshot refreshed and renders it
// either as an interactive terminal board or as plain text.
package dashboard

import (
	"context"
	"sync"
	"time"
)

const (
	MinInterval     = 5 * time.Second
	MaxInterval     = 60 * time.Second
	DefaultInterval = 10 * time.Second
	IntervalStep    = 5 * time.Second
)

// ClampInterval keeps d within [MinInterval, MaxInterval].
func ClampInterval(d time.Duration) time.Duration {
	if d < MinInterval {
		return MinInterval
	}
	if d > MaxInterval {
		return MaxInterval
	}
	return d
}

// FetchFunc is called once per tick. It must deliver its own result.
type FetchFunc func(ctx context.Context)

// Subscription runs a fetch immediately and then every interval until it is
// stopped. Paused subscriptions keep ticking but skip the fetch.
type Subscription struct {
	fetch FetchFunc
	wait  func(time.Duration) <-chan time.Time

	mu       sync.Mutex
	interval time.Duration
	paused   bool
	cancel   context.CancelFunc
	done     chan struct{}

	refresh chan struct{}
	reset   chan struct{}
}

func NewSubscription(interval time.Duration, fetch FetchFunc) *Subscription {
	return &Subscription{
		fetch:    fetch,
		wait:     time.After,
		interval: ClampInterval(interval),
		refresh:  make(chan struct{}, 1),
		reset:    make(chan struct{}, 1),
	}
}

// Start launches the polling loop. Calling Start twice is a no-op.
func (s *Subscription) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		return
	}
	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.done = make(chan struct{})
	go s.run(ctx, s.done)
}

// Stop cancels the loop and waits for an in-flight fetch to return.
func (s *Subscription) Stop() {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.mu.Unlock()
	if cancel == nil {
		return
	}
	cancel()
	<-done
}

func (s *Subscription) Interval() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.interval
}

// SetInterval applies the clamped interval starting from the next tick and
// returns it.
func (s *Subscription) SetInterval(d time.Duration) time.Duration {
	s.mu.Lock()
	s.interval = ClampInterval(d)
	d = s.interval
	s.mu.Unlock()
	signal(s.reset)
	return d
}

func (s *Subscription) Pause() {
	s.mu.Lock()
	s.paused = true
	s.mu.Unlock()
}

// Resume re-enables ticking and fetches right away.
func (s *Subscription) Resume() {
	s.mu.Lock()
	s.paused = false
	s.mu.Unlock()
	s.Refresh()
}

func (s *Subscription) Paused() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.paused
}

// Refresh asks for an out-of-band fetch and restarts the interval.
func (s *Subscription) Refresh() {
	signal(s.refresh)
}

func (s *Subscription) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	s.fetch(ctx)
	for {
		tick := s.wait(s.Interval())
		select {
		case <-ctx.Done():
			return
		case <-s.reset:
		case <-s.refresh:
			s.fetch(ctx)
		case <-tick:
			if !s.Paused() {
				s.fetch(ctx)
			}
		}
	}
}

func signal(ch chan struct{}) {
	select {
	case ch <- struct{}{}:
	default:
	}
}
