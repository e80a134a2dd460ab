// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"strings"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/encodersih/alumni-connect/internal/app/system/auditlog"
	"github.com/encodersih/alumni-connect/internal/app/system/paging"
	"github.com/encodersih/alumni-connect/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for Alumni Connect.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, default_page_size, etc.
//   - Environment variables: ALUMNI_MONGO_URI, ALUMNI_DEFAULT_PAGE_SIZE, etc.
//   - Command-line flags: --mongo_uri, --default_page_size, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "alumni_connect", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size (default: 100)"},
	{Name: "mongo_min_pool_size", Default: 10, Desc: "MongoDB min connection pool size (default: 10)"},

	// Paging
	{Name: "default_page_size", Default: paging.DefaultPageSize, Desc: "Page size used when ?limit is absent"},
	{Name: "max_page_size", Default: paging.MaxPageSize, Desc: "Upper bound for ?limit"},

	// Audit logging settings
	{Name: "audit_log_mentorship", Default: "all", Desc: "Mentorship event logging: 'all' (db+log), 'db', 'log', or 'off'"},
	{Name: "audit_log_admin", Default: "all", Desc: "Admin event logging: 'all' (db+log), 'db', 'log', or 'off'"},

	// API protection
	{Name: "rate_limit_per_minute", Default: 120, Desc: "Requests per client IP per minute on /api (0 disables)"},
	{Name: "cors_allowed_origins", Default: "*", Desc: "Comma-separated origins allowed to call /api"},

	// Store timeouts
	{Name: "timeout_short", Default: timeouts.DefaultShort.String(), Desc: "Deadline for single-document reads and writes"},
	{Name: "timeout_medium", Default: timeouts.DefaultMedium.String(), Desc: "Deadline for collection snapshots"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// WAFFLE's config.LoadWithAppConfig merges, in order of precedence:
// flags > env (WAFFLE_* for core, ALUMNI_* for app) > files > defaults.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "ALUMNI", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),

		DefaultPageSize: appValues.Int("default_page_size"),
		MaxPageSize:     appValues.Int("max_page_size"),

		AuditLogMentorship: strings.ToLower(strings.TrimSpace(appValues.String("audit_log_mentorship"))),
		AuditLogAdmin:      strings.ToLower(strings.TrimSpace(appValues.String("audit_log_admin"))),

		RateLimitPerMinute: appValues.Int("rate_limit_per_minute"),
		CORSAllowedOrigins: splitOrigins(appValues.String("cors_allowed_origins")),

		TimeoutShort:  appValues.Duration("timeout_short", timeouts.DefaultShort),
		TimeoutMedium: appValues.Duration("timeout_medium", timeouts.DefaultMedium),
	}

	return coreCfg, appCfg, nil
}

// splitOrigins parses a comma-separated origin list, dropping blanks.
func splitOrigins(s string) []string {
	var out []string
	for _, o := range strings.Split(s, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
// The MongoDB URI format is checked here to catch configuration errors
// before attempting to connect.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}
	return validateAppConfig(appCfg)
}

// validateAppConfig checks the values that do not need WAFFLE.
func validateAppConfig(appCfg AppConfig) error {
	if strings.TrimSpace(appCfg.MongoDatabase) == "" {
		return fmt.Errorf("mongo_database must be set")
	}
	if appCfg.MongoMinPoolSize > appCfg.MongoMaxPoolSize {
		return fmt.Errorf("mongo_min_pool_size (%d) exceeds mongo_max_pool_size (%d)", appCfg.MongoMinPoolSize, appCfg.MongoMaxPoolSize)
	}
	if appCfg.DefaultPageSize < 1 {
		return fmt.Errorf("default_page_size must be at least 1, got %d", appCfg.DefaultPageSize)
	}
	if appCfg.MaxPageSize < appCfg.DefaultPageSize {
		return fmt.Errorf("max_page_size (%d) is smaller than default_page_size (%d)", appCfg.MaxPageSize, appCfg.DefaultPageSize)
	}
	if !auditlog.IsValidDest(appCfg.AuditLogMentorship) {
		return fmt.Errorf("audit_log_mentorship must be all, db, log or off, got %q", appCfg.AuditLogMentorship)
	}
	if !auditlog.IsValidDest(appCfg.AuditLogAdmin) {
		return fmt.Errorf("audit_log_admin must be all, db, log or off, got %q", appCfg.AuditLogAdmin)
	}
	if appCfg.RateLimitPerMinute < 0 {
		return fmt.Errorf("rate_limit_per_minute must not be negative")
	}
	if appCfg.TimeoutShort < 0 || appCfg.TimeoutMedium < 0 {
		return fmt.Errorf("timeouts must not be negative")
	}
	return nil
}
