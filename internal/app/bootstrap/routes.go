// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"
	"time"

	"github.com/dalemusser/waffle/config"
	adminanalyticsfeature "github.com/encodersih/alumni-connect/internal/app/features/adminanalytics"
	adminusersfeature "github.com/encodersih/alumni-connect/internal/app/features/adminusers"
	alumnifeature "github.com/encodersih/alumni-connect/internal/app/features/alumni"
	healthfeature "github.com/encodersih/alumni-connect/internal/app/features/health"
	mentorshipfeature "github.com/encodersih/alumni-connect/internal/app/features/mentorship"
	alumnistore "github.com/encodersih/alumni-connect/internal/app/store/alumni"
	"github.com/encodersih/alumni-connect/internal/app/store/audit"
	requeststore "github.com/encodersih/alumni-connect/internal/app/store/mentorshiprequests"
	studentstore "github.com/encodersih/alumni-connect/internal/app/store/students"
	userstore "github.com/encodersih/alumni-connect/internal/app/store/users"
	"github.com/encodersih/alumni-connect/internal/app/system/auditlog"
	"github.com/encodersih/alumni-connect/internal/app/system/metrics"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// the Startup hook have completed.
//
//	/health     Mongo ping
//	/metrics    Prometheus
//	/api/...    JSON API, behind CORS and a per-IP rate limit
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return buildRouter(appCfg, deps, reg, logger), nil
}

// buildRouter wires stores, features and middleware. reg receives the app
// metrics and is served on /metrics.
func buildRouter(appCfg AppConfig, deps DBDeps, reg *prometheus.Registry, logger *zap.Logger) chi.Router {
	db := deps.MongoDatabase
	rec := metrics.NewCollector(reg)

	users := userstore.New(db)
	students := studentstore.New(db)
	alumni := alumnistore.New(db)
	requests := requeststore.New(db)
	auditStore := audit.New(db)

	auditLog := auditlog.New(auditStore, logger, auditlog.Config{
		Mentorship: appCfg.AuditLogMentorship,
		Admin:      appCfg.AuditLogAdmin,
	})

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(rec.Middleware)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	r.Handle("/metrics", metrics.Handler(reg))

	r.Route("/api", func(api chi.Router) {
		api.Use(cors.Handler(corsOptions(appCfg.CORSAllowedOrigins)))
		if appCfg.RateLimitPerMinute > 0 {
			api.Use(httprate.LimitByIP(appCfg.RateLimitPerMinute, time.Minute))
		}

		// Matching and mentorship requests
		mh := mentorshipfeature.NewHandler(students, alumni, requests, auditLog, rec, logger)
		mh.DefaultPageSize, mh.MaxPageSize = appCfg.DefaultPageSize, appCfg.MaxPageSize
		api.Mount("/mentorship", mentorshipfeature.Routes(mh))

		// Alumni directory
		ah := alumnifeature.NewHandler(alumni, rec, logger)
		ah.DefaultPageSize, ah.MaxPageSize = appCfg.DefaultPageSize, appCfg.MaxPageSize
		api.Mount("/alumni", alumnifeature.Routes(ah))

		// Administration
		uh := adminusersfeature.NewHandler(users, auditLog, rec, logger)
		uh.DefaultPageSize, uh.MaxPageSize = appCfg.DefaultPageSize, appCfg.MaxPageSize
		api.Mount("/admin/users", adminusersfeature.Routes(uh))

		sh := adminanalyticsfeature.NewHandler(users, alumni, requests, auditStore, logger)
		api.Mount("/admin/analytics", adminanalyticsfeature.Routes(sh))
	})

	return r
}

func corsOptions(origins []string) cors.Options {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"X-Ratelimit-Limit", "X-Ratelimit-Remaining", "X-Ratelimit-Reset"},
		MaxAge:         300,
	}
}
