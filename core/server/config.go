package server

import "time"

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API. Empty disables auth.
	ApiKey string `mapstructure:"api_key" default:""`
	// BodyLimitMB caps the size of an upload request.
	BodyLimitMB int `mapstructure:"body_limit_mb" default:"16"`
	// SessionTTLMinutes is how long an idle session keeps its IFC mapping.
	SessionTTLMinutes int `mapstructure:"session_ttl_minutes" default:"120"`
}

const (
	defaultBodyLimitMB       = 16
	defaultSessionTTLMinutes = 120
)

// BodyLimit returns the request body limit in bytes.
func (c Config) BodyLimit() int {
	mb := c.BodyLimitMB
	if mb <= 0 {
		mb = defaultBodyLimitMB
	}
	return mb * 1024 * 1024
}

// SessionTTL returns the idle expiry of a session.
func (c Config) SessionTTL() time.Duration {
	minutes := c.SessionTTLMinutes
	if minutes <= 0 {
		minutes = defaultSessionTTLMinutes
	}
	return time.Duration(minutes) * time.Minute
}
