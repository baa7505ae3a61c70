package adapter

import "time"

// Clock is the time seam. The verifier stamps scan events, the emitter
// spaces cursor saves and the ledger client paces receipt polls through
// it, so tests can drive time deterministically.
//
//go:generate mockgen -source=clock.go -destination=../mocks/clock.go -package=mocks -mock_names=Clock=MockClock
type Clock interface {
	Now() time.Time
	Since(t time.Time) time.Duration
	Sleep(d time.Duration)
	After(d time.Duration) <-chan time.Time
}

type systemClock struct{}

// NewClock returns a Clock backed by the time package
func NewClock() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time { return time.Now() }

func (systemClock) Since(t time.Time) time.Duration { return time.Since(t) }

func (systemClock) Sleep(d time.Duration) { time.Sleep(d) }

func (systemClock) After(d time.Duration) <-chan time.Time { return time.After(d) }
