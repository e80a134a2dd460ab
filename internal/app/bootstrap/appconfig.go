// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables (ALUMNI_*), configuration
// files, or command-line flags (loaded in LoadConfig). WAFFLE's CoreConfig
// covers the framework-level settings: ports, TLS, logging level and
// request timeouts.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64
	MongoMinPoolSize uint64

	// List endpoints
	DefaultPageSize int // page size when ?limit is absent
	MaxPageSize     int // larger ?limit values are capped to this

	// Audit logging: "all" (db+log), "db", "log" or "off"
	AuditLogMentorship string
	AuditLogAdmin      string

	// /api protection
	RateLimitPerMinute int      // requests per client IP per minute; 0 disables
	CORSAllowedOrigins []string // empty means "*"

	// Store call deadlines (see system/timeouts)
	TimeoutShort  time.Duration
	TimeoutMedium time.Duration
}
