// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). They represent *app-level*
// configuration, not WAFFLE core configuration: WAFFLE's CoreConfig
// handles framework-level settings like HTTP ports, TLS, logging level
// and request limits.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Max connection pool size
	MongoMinPoolSize uint64 // Min connection pool size

	// Session management configuration
	SessionKey    string // Secret key for signing session cookies (must be strong in production)
	SessionName   string // Cookie name for sessions (default: redlight-session)
	SessionDomain string // Cookie domain (blank means current host)

	// File storage configuration for event photos
	StorageLocalPath string // Local storage path (e.g., "./uploads/events")
	StorageLocalURL  string // URL prefix for serving local files (e.g., "/files/events")

	// Email/SMTP configuration
	MailEnabled  bool   // When false, notification emails are logged but not sent
	MailSMTPHost string // SMTP server host (e.g., localhost for Mailpit)
	MailSMTPPort int    // SMTP server port (e.g., 1025 for Mailpit, 587 for SES)
	MailSMTPUser string // SMTP username (empty means no auth)
	MailSMTPPass string // SMTP password
	MailFrom     string // From email address (e.g., noreply@redlight.app)
	MailFromName string // From display name (e.g., Redlight)

	// SweepInterval is how often the background worker completes
	// planned events whose scheduled time has passed.
	SweepInterval time.Duration

	// Base URL for links in notification emails
	BaseURL string // e.g., "https://redlight.app" or "http://localhost:3000"
}
