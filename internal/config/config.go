package config

// Config holds runtime configuration for the server and CLI.
type Config struct {
	Port           string
	LeagueProvider string
	LeagueFile     string
	RequestTimeout Duration
	Simulation     SimulationConfig
	RateLimit      RateLimitConfig
	Metrics        MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:           envOrDefault(envPort, defaultPort),
		LeagueProvider: envOrDefault(envLeagueProvider, defaultLeagueProvider),
		LeagueFile:     envOrDefault(envLeagueFile, ""),
		RequestTimeout: durationEnvOrDefault(envRequestTimeout, defaultRequestTimeout),
		Simulation:     loadSimulation(),
		RateLimit:      loadRateLimit(),
		Metrics:        loadMetrics(),
	}
}
