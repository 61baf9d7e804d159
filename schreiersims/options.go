package schreiersims

import (
	"context"

	"github.com/dkrylov/bsgs/point"
)

// Option configures BuildDeterministic/BuildRandomized.
type Option func(*Options)

// Options holds the resolved configuration for a build.
type Options struct {
	// Ctx allows cancellation between outer-loop passes; defaults to
	// context.Background().
	Ctx context.Context

	// BaseHint, if non-empty, seeds the chain's base prefix with these
	// points before construction discovers any further levels.
	BaseHint []point.Point

	// MaxRandomTrials bounds BuildRandomized's sample loop so a biased
	// oracle cannot hang the caller forever (§4.G's documented failure
	// mode: "if the oracle is biased, termination is not guaranteed").
	MaxRandomTrials int
}

// DefaultOptions returns the baseline configuration: background
// context, no base hint, a generous but finite random-trial budget.
func DefaultOptions() Options {
	return Options{
		Ctx:             context.Background(),
		BaseHint:        nil,
		MaxRandomTrials: 100000,
	}
}

// WithContext sets the cancellation context. A nil ctx has no effect,
// and a non-nil ctx passed directly to BuildDeterministic or
// BuildRandomized takes precedence over it.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithBaseHint seeds the chain's base prefix with pts.
func WithBaseHint(pts []point.Point) Option {
	return func(o *Options) {
		o.BaseHint = pts
	}
}

// WithMaxRandomTrials overrides the randomized build's trial budget.
func WithMaxRandomTrials(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.MaxRandomTrials = n
		}
	}
}

func resolveOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return o
}
