package session

import "time"

// Delayer stands in for the round-trip of a remote auth call.
type Delayer interface {
	Delay()
}

// FixedDelay sleeps for a constant duration.
type FixedDelay time.Duration

func (d FixedDelay) Delay() {
	time.Sleep(time.Duration(d))
}

// NoDelay resolves immediately. Tests use it.
type NoDelay struct{}

func (NoDelay) Delay() {}

// DelayFunc adapts a plain function to Delayer.
type DelayFunc func()

func (f DelayFunc) Delay() {
	f()
}
