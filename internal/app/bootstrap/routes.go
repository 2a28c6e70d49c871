// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"
	"time"

	eventsfeature "github.com/dalemusser/redlight/internal/app/features/events"
	healthfeature "github.com/dalemusser/redlight/internal/app/features/health"
	usersfeature "github.com/dalemusser/redlight/internal/app/features/users"
	"github.com/dalemusser/redlight/internal/app/lifecycle"
	eventstore "github.com/dalemusser/redlight/internal/app/store/events"
	registrationstore "github.com/dalemusser/redlight/internal/app/store/registrations"
	userstore "github.com/dalemusser/redlight/internal/app/store/users"
	"github.com/dalemusser/redlight/internal/app/system/auth"
	"github.com/dalemusser/redlight/internal/app/system/clock"
	"github.com/dalemusser/redlight/internal/app/system/ratelimit"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/storage"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this
// WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup,
// and any Startup hooks have completed. Redlight applies session
// middleware and mounts the health and events feature routers.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	sessionMgr, err := auth.NewSessionManager(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, secure, logger)
	if err != nil {
		logger.Error("session manager init failed", zap.Error(err))
		return nil, err
	}

	files, err := storage.NewLocal(storage.LocalConfig{BasePath: appCfg.StorageLocalPath})
	if err != nil {
		logger.Error("photo storage init failed", zap.Error(err))
		return nil, err
	}

	svc := lifecycle.New(
		eventstore.New(deps.MongoDatabase),
		registrationstore.New(deps.MongoDatabase),
		userstore.New(deps.MongoDatabase),
		dispatcher,
		clock.System{},
		logger,
	)

	r := chi.NewRouter()

	// Global auth middleware: loads SessionUser into context if logged in.
	r.Use(sessionMgr.LoadSessionUser)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Uploaded event photos served from local storage
	r.Handle(appCfg.StorageLocalURL+"/*", fileserver.Handler(appCfg.StorageLocalURL, appCfg.StorageLocalPath))

	users := userstore.New(deps.MongoDatabase)

	// Events API; write endpoints are rate limited per client IP.
	writeLimiter := ratelimit.New(60, time.Minute)
	eventsHandler := eventsfeature.NewHandler(svc, users, files, logger)
	r.Mount("/events", eventsfeature.Routes(eventsHandler, writeLimiter))

	// User administration and profile photos.
	usersHandler := usersfeature.NewHandler(users, files, logger)
	r.Mount("/users", usersfeature.Routes(usersHandler))

	return r, nil
}
