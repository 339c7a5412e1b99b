// internal/app/bootstrap/appconfig.go
package bootstrap

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). They represent *app-level*
// configuration, not WAFFLE core configuration.
//
// WAFFLE's CoreConfig handles framework-level settings like HTTP/HTTPS
// ports, TLS, logging level, and request limits. AppConfig is everything
// specific to GeoLearn.
type AppConfig struct {
	// Flat-file storage configuration
	DataDir string // Directory holding the JSON collection files (e.g., ./data)

	// Session management configuration
	SessionKey    string // Secret key for signing session cookies (must be strong in production)
	SessionName   string // Cookie name for sessions (default: geolearn-session)
	SessionDomain string // Cookie domain (blank means current host)

	// CSRF protection
	CSRFKey string // 32-byte secret for CSRF token signing

	// Base URL for absolute links
	BaseURL string // e.g., "https://geolearn.example.com" or "http://localhost:3000"

	// Admin bootstrap: if both are set and no account with that email
	// exists, an admin account is created at startup.
	AdminEmail    string
	AdminPassword string
}
