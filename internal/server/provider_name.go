package server

import (
	"fmt"
	"strings"

	"github.com/preston-bernstein/nha-sim-service/internal/providers"
)

// normalizeProviderName lower-cases the configured name, or derives one from the provider type.
func normalizeProviderName(raw string, provider providers.LeagueProvider) string {
	if raw != "" {
		return strings.ToLower(raw)
	}
	if provider != nil {
		return strings.ToLower(fmt.Sprintf("%T", provider))
	}
	return "provider"
}
