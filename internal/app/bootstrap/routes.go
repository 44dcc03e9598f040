// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	authfeature "github.com/Sajid788/Volunteer-Hours-Tracker/internal/app/features/auth"
	healthfeature "github.com/Sajid788/Volunteer-Hours-Tracker/internal/app/features/health"
	hoursfeature "github.com/Sajid788/Volunteer-Hours-Tracker/internal/app/features/hours"
	organizationsfeature "github.com/Sajid788/Volunteer-Hours-Tracker/internal/app/features/organizations"
	"github.com/Sajid788/Volunteer-Hours-Tracker/internal/app/store/audit"
	"github.com/Sajid788/Volunteer-Hours-Tracker/internal/app/system/auditlog"
	"github.com/Sajid788/Volunteer-Hours-Tracker/internal/app/system/auth"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. The service is a JSON API for a browser
// SPA: CORS first, then the global bearer-token middleware, then the
// feature routers under /api.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	tokens, err := auth.NewTokenManager(appCfg.JWTKey, appCfg.JWTTTL)
	if err != nil {
		logger.Error("token manager init failed", zap.Error(err))
		return nil, err
	}
	mw := auth.NewMiddleware(tokens, logger)

	auditLogger := auditlog.New(audit.New(deps.MongoDatabase), logger, auditlog.Config{
		Auth:  appCfg.AuditLogAuth,
		Hours: appCfg.AuditLogHours,
	})

	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: appCfg.CORSOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	// Global auth middleware: loads the bearer-token user into context.
	// Protected groups enforce presence via RequireSignedIn.
	r.Use(mw.LoadTokenUser)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Registration, login, and current-user lookup
	authHandler := authfeature.NewHandler(deps.MongoDatabase, tokens, auditLogger, appCfg.BcryptCost, logger)
	r.Mount("/api/auth", authfeature.Routes(authHandler, mw))

	// Organization directory
	orgHandler := organizationsfeature.NewHandler(deps.MongoDatabase, logger)
	r.Mount("/api/organizations", organizationsfeature.Routes(orgHandler, mw))

	// Volunteer-hour records
	hoursHandler := hoursfeature.NewHandler(deps.MongoDatabase, auditLogger, logger)
	r.Mount("/api/hours", hoursfeature.Routes(hoursHandler, mw))

	return r, nil
}
