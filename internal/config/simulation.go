package config

import (
	"os"
	"runtime"
	"strconv"
)

// SimulationConfig controls engine parameters and session limits.
type SimulationConfig struct {
	Seed         uint64 // 0 picks a time-based seed per simulation
	BestOf       int
	PlayoffTeams int
	MaxSessions  int
	Workers      int // Monte Carlo parallelism
	MaxRuns      int // upper bound on a single Monte Carlo request
}

// RateLimitConfig controls per-client limits on simulation endpoints.
type RateLimitConfig struct {
	RPS   float64
	Burst int
}

func loadSimulation() SimulationConfig {
	return SimulationConfig{
		Seed:         uint64EnvOrDefault(envSeed, 0),
		BestOf:       oddIntEnvOrDefault(envBestOf, defaultBestOf),
		PlayoffTeams: intEnvOrDefault(envPlayoffTeams, defaultPlayoffTeams),
		MaxSessions:  intEnvOrDefault(envMaxSessions, defaultMaxSessions),
		Workers:      intEnvOrDefault(envMCWorkers, runtime.GOMAXPROCS(0)),
		MaxRuns:      intEnvOrDefault(envMCMaxRuns, defaultMCMaxRuns),
	}
}

func loadRateLimit() RateLimitConfig {
	return RateLimitConfig{
		RPS:   floatEnvOrDefault(envRateLimitRPS, defaultRateLimitRPS),
		Burst: intEnvOrDefault(envRateLimitBurst, defaultRateLimitBurst),
	}
}

func uint64EnvOrDefault(key string, defaultValue uint64) uint64 {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	val, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return defaultValue
	}
	return val
}

// oddIntEnvOrDefault rejects even series lengths, which cannot produce a majority.
func oddIntEnvOrDefault(key string, defaultValue int) int {
	val := intEnvOrDefault(key, defaultValue)
	if val%2 == 0 {
		return defaultValue
	}
	return val
}

func floatEnvOrDefault(key string, defaultValue float64) float64 {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	val, err := strconv.ParseFloat(raw, 64)
	if err != nil || val <= 0 {
		return defaultValue
	}
	return val
}
