package metrics

import (
	"sync"
	"time"
)

type simulationStats struct {
	runs         int
	errors       int
	lastDuration time.Duration
}

// Recorder captures lightweight, in-memory metrics about simulations and mirrors them
// to OpenTelemetry instruments when configured.
type Recorder struct {
	mu       sync.Mutex
	stats    map[string]*simulationStats
	betsWon  int
	betsLost int
	mcRuns   int
	otel     *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*simulationStats),
		otel:  otel,
	}
}

// RecordSimulation counts a simulation of the given kind and stores its latency.
func (r *Recorder) RecordSimulation(kind string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStats(kind)
	stats.runs++
	stats.lastDuration = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordSimulation(kind, duration, err)
	}
}

// RecordMonteCarloRuns adds completed Monte Carlo iterations.
func (r *Recorder) RecordMonteCarloRuns(runs int) {
	if r == nil || runs <= 0 {
		return
	}
	r.mu.Lock()
	r.mcRuns += runs
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordMonteCarloRuns(runs)
	}
}

// RecordBetSettled counts a settled bet by outcome.
func (r *Recorder) RecordBetSettled(won bool) {
	if r == nil {
		return
	}
	r.mu.Lock()
	if won {
		r.betsWon++
	} else {
		r.betsLost++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordBet(won)
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// Snapshot is a copy of the stats recorded for one simulation kind.
type Snapshot struct {
	Runs         int
	Errors       int
	LastDuration time.Duration
}

// Snapshot returns a copy of the current stats for kind.
func (r *Recorder) Snapshot(kind string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[kind]
	if !ok {
		return Snapshot{}
	}
	return Snapshot{
		Runs:         stats.runs,
		Errors:       stats.errors,
		LastDuration: stats.lastDuration,
	}
}

// Simulations returns how many simulations of kind were recorded.
func (r *Recorder) Simulations(kind string) int {
	return r.Snapshot(kind).Runs
}

// SimulationErrors returns how many simulations of kind failed.
func (r *Recorder) SimulationErrors(kind string) int {
	return r.Snapshot(kind).Errors
}

// MonteCarloRuns returns the total Monte Carlo iterations recorded.
func (r *Recorder) MonteCarloRuns() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.mcRuns
}

// BetsSettled returns won and lost bet counts.
func (r *Recorder) BetsSettled() (won, lost int) {
	if r == nil {
		return 0, 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.betsWon, r.betsLost
}

// ensureStats must be called with r.mu held.
func (r *Recorder) ensureStats(kind string) *simulationStats {
	stats, ok := r.stats[kind]
	if !ok {
		stats = &simulationStats{}
		r.stats[kind] = stats
	}
	return stats
}
