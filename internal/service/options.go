package service

import "time"

// Option configures a service.
type Option func(*options)

type options struct {
	clock func() time.Time
}

// WithClock replaces the wall clock used to decide which cards are due and
// to date reviews. A nil clock is ignored.
func WithClock(clock func() time.Time) Option {
	return func(o *options) {
		if clock != nil {
			o.clock = clock
		}
	}
}

func newOptions(opts []Option) options {
	o := options{clock: func() time.Time { return time.Now().UTC() }}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
