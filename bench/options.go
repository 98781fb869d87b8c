package bench

import (
	"time"

	"go.uber.org/zap"
)

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the logger; nil keeps the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.log = l
		}
	}
}

// WithClock replaces time.Now as the time source for measurements.
func WithClock(now func() time.Time) Option {
	return func(r *Runner) {
		if now != nil {
			r.now = now
		}
	}
}
