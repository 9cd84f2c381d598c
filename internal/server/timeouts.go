package server

import "time"

const (
	readTimeout  = 10 * time.Second
	idleTimeout  = 60 * time.Second
	writeGrace   = 5 * time.Second
	minRequestTO = time.Second
)

// shutdownTimeout remains a var for tests to override.
var shutdownTimeout = 10 * time.Second

// writeTimeoutFor leaves room for the request timeout handler to write its own 503.
func writeTimeoutFor(requestTimeout time.Duration) time.Duration {
	if requestTimeout < minRequestTO {
		requestTimeout = minRequestTO
	}
	return requestTimeout + writeGrace
}
