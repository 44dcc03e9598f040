// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// WAFFLE's CoreConfig handles framework-level settings (HTTP/HTTPS ports,
// TLS, logging level and format, request limits). AppConfig is everything
// specific to the volunteer-hours service: the MongoDB connection, token
// signing, password hashing cost, CORS origins for the SPA, and audit
// logging switches.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Max connection pool size
	MongoMinPoolSize uint64 // Min connection pool size

	// Bearer-token configuration
	JWTKey string        // HMAC signing key (must be strong in production)
	JWTTTL time.Duration // Token lifetime (e.g., 720h for 30 days)

	// Password hashing
	BcryptCost int // bcrypt cost factor (default 10)

	// CORS configuration for the browser SPA
	CORSOrigins []string // Allowed origins; ["*"] means any

	// Audit logging settings ("all", "db", "log", or "off")
	AuditLogAuth  string // register/login events
	AuditLogHours string // approval decisions and deletions

	// AdminEmail, when set, promotes the matching user to admin on startup.
	// Registration never hands out the admin role; this is the only path.
	AdminEmail string
}
