// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/csrf"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	adsfeature "github.com/geolearnhq/geolearn/internal/app/features/ads"
	dashboardfeature "github.com/geolearnhq/geolearn/internal/app/features/dashboard"
	donatefeature "github.com/geolearnhq/geolearn/internal/app/features/donate"
	errorsfeature "github.com/geolearnhq/geolearn/internal/app/features/errors"
	healthfeature "github.com/geolearnhq/geolearn/internal/app/features/health"
	libraryfeature "github.com/geolearnhq/geolearn/internal/app/features/library"
	loginfeature "github.com/geolearnhq/geolearn/internal/app/features/login"
	logoutfeature "github.com/geolearnhq/geolearn/internal/app/features/logout"
	profilefeature "github.com/geolearnhq/geolearn/internal/app/features/profile"
	reportsfeature "github.com/geolearnhq/geolearn/internal/app/features/reports"
	signupfeature "github.com/geolearnhq/geolearn/internal/app/features/signup"
	termsfeature "github.com/geolearnhq/geolearn/internal/app/features/terms"
	usermgmtfeature "github.com/geolearnhq/geolearn/internal/app/features/usermgmt"
	videomgmtfeature "github.com/geolearnhq/geolearn/internal/app/features/videomgmt"
	"github.com/geolearnhq/geolearn/internal/app/system/auth"
	"github.com/geolearnhq/geolearn/internal/app/system/metrics"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, the flat-file store, and the
// Startup hook have completed. It creates the session manager, boots the
// template engine, registers the Prometheus counters, and mounts feature
// routers for every part of the application: the library, auth flows,
// profile, donations, ads, and the admin area.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Create the session manager using app config.
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	sessionMgr, err := auth.NewSessionManager(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, secure, logger)
	if err != nil {
		logger.Error("session manager init failed", zap.Error(err))
		return nil, err
	}

	// Initialize and boot the template engine once at startup.
	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	metrics.Register()

	// Create error logger for handlers.
	errLog := errorsfeature.NewErrorLogger(logger)

	r := chi.NewRouter()

	// CSRF protection for every form post; the JSON endpoints send the
	// token in the X-CSRF-Token header.
	r.Use(csrf.Protect([]byte(appCfg.CSRFKey), csrf.Secure(secure), csrf.Path("/")))

	// Global auth middleware: loads SessionUser into context if logged in.
	// This makes the current user available to all handlers via auth.CurrentUser(r).
	r.Use(sessionMgr.LoadSessionUser)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.Files, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Prometheus metrics
	r.Handle("/metrics", promhttp.Handler())

	// Static assets with pre-compressed file support (gzip/brotli)
	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	// Landing page, library, and video pages
	libraryHandler := libraryfeature.NewHandler(deps.Files, errLog, logger)
	r.Mount("/", libraryfeature.Routes(libraryHandler, sessionMgr))

	// Authentication
	signupHandler := signupfeature.NewHandler(deps.Files, errLog, logger)
	r.Mount("/signup", signupfeature.Routes(signupHandler))

	loginHandler := loginfeature.NewHandler(deps.Files, sessionMgr, errLog, logger)
	r.Mount("/login", loginfeature.Routes(loginHandler))

	logoutHandler := logoutfeature.NewHandler(sessionMgr, logger)
	r.Mount("/logout", logoutfeature.Routes(logoutHandler))

	// Error pages
	errorsHandler := errorsfeature.NewHandler()
	r.Get("/forbidden", errorsHandler.Forbidden)
	r.Get("/unauthorized", errorsHandler.Unauthorized)

	// Member pages
	profileHandler := profilefeature.NewHandler(deps.Files, errLog, logger)
	r.Mount("/profile", profilefeature.Routes(profileHandler, sessionMgr))

	donateHandler := donatefeature.NewHandler(deps.Files, errLog, logger)
	r.Mount("/donate", donatefeature.Routes(donateHandler))

	adsHandler := adsfeature.NewHandler(deps.Files, errLog, logger)
	r.Mount("/ads", adsfeature.Routes(adsHandler, sessionMgr))

	// Legal pages
	termsHandler := termsfeature.NewHandler()
	r.Get("/terms", termsHandler.ServeTerms)
	r.Get("/privacy", termsHandler.ServePrivacy)

	// Admin area: dashboard, chart APIs, and management pages
	dashboardHandler := dashboardfeature.NewHandler(deps.Files, errLog, logger)
	videomgmtHandler := videomgmtfeature.NewHandler(deps.Files, errLog, logger)
	usermgmtHandler := usermgmtfeature.NewHandler(deps.Files, errLog, logger)
	reportsHandler := reportsfeature.NewHandler(deps.Files, errLog, logger)

	r.Route("/admin", func(ar chi.Router) {
		ar.Use(sessionMgr.RequireRole(auth.RoleAdmin))
		ar.Mount("/", dashboardfeature.Routes(dashboardHandler))
		ar.Mount("/videos", videomgmtfeature.Routes(videomgmtHandler))
		ar.Mount("/users", usermgmtfeature.Routes(usermgmtHandler))
		ar.Mount("/ads", adsfeature.AdminRoutes(adsHandler))
		ar.Mount("/enrollments", reportsfeature.Routes(reportsHandler))
	})

	return r, nil
}
