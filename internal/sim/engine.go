package sim

import "github.com/preston-bernstein/nha-sim-service/internal/domain/league"

// DefaultBestOf is the playoff series length.
const DefaultBestOf = 9

// DefaultPlayoffTeams is the number of seeds each conference sends to the playoffs.
const DefaultPlayoffTeams = 8

// Engine resolves games, series, seasons, and playoffs from a single random stream.
// An Engine is not safe for concurrent use; give each goroutine its own.
type Engine struct {
	rng        Source
	classifier *league.Classifier
	bestOf     int
}

// Option customizes an Engine.
type Option func(*Engine)

// WithClassifier sets the tier classifier used for win probabilities.
func WithClassifier(c *league.Classifier) Option {
	return func(e *Engine) {
		if c != nil {
			e.classifier = c
		}
	}
}

// WithBestOf sets the playoff series length. Invalid lengths surface as errors when a
// series is played.
func WithBestOf(n int) Option {
	return func(e *Engine) {
		e.bestOf = n
	}
}

// New builds an Engine drawing from rng. A nil rng falls back to a time-seeded stream.
func New(rng Source, opts ...Option) *Engine {
	if rng == nil {
		rng = NewSource(TimeSeed())
	}
	e := &Engine{
		rng:        rng,
		classifier: league.DefaultClassifier(),
		bestOf:     DefaultBestOf,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// NewSeeded is shorthand for New(NewSource(seed), opts...).
func NewSeeded(seed uint64, opts ...Option) *Engine {
	return New(NewSource(seed), opts...)
}

// Classifier returns the engine's tier classifier.
func (e *Engine) Classifier() *league.Classifier {
	return e.classifier
}

// BestOf returns the configured playoff series length.
func (e *Engine) BestOf() int {
	return e.bestOf
}
