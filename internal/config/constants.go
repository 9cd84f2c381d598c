package config

import "time"

const (
	envPort           = "PORT"
	envLeagueProvider = "LEAGUE_PROVIDER"
	envLeagueFile     = "LEAGUE_FILE"
	envSeed           = "SIM_SEED"
	envBestOf         = "SERIES_BEST_OF"
	envPlayoffTeams   = "PLAYOFF_TEAMS"
	envMaxSessions    = "MAX_SESSIONS"
	envMCWorkers      = "MONTECARLO_WORKERS"
	envMCMaxRuns      = "MONTECARLO_MAX_RUNS"
	envRateLimitRPS   = "RATE_LIMIT_RPS"
	envRateLimitBurst = "RATE_LIMIT_BURST"
	envRequestTimeout = "REQUEST_TIMEOUT"
	envMetricsPort    = "METRICS_PORT"
	envMetricsOn      = "METRICS_ENABLED"
	envOtelEndpoint   = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService    = "OTEL_SERVICE_NAME"
	envOtelInsecure   = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort           = "4000"
	defaultLeagueProvider = "fixture"
	defaultBestOf         = 9
	defaultPlayoffTeams   = 8
	defaultMaxSessions    = 1000
	defaultMCMaxRuns      = 100000
	defaultRateLimitRPS   = 5
	defaultRateLimitBurst = 10
	defaultMetricsPort    = "9090"
	// Monte Carlo requests are the slowest; leave room for the largest allowed batch.
	defaultRequestTimeout = 30 * Duration(time.Second)
)
