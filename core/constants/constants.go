package constants

// Server defaults
const (
	DefaultServerPort      = 7070
	ServerShutdownTimeout  = 10 // seconds
	RequestBodyLimit       = "2M"
	ContextRequestID       = "request_id"
	RequestIDHeader        = "X-Request-ID"
	RequestIDLength        = 12
)

// Database defaults
const (
	DatabaseSSLMode         = "disable"
	DatabaseMaxOpenConns    = 25
	DatabaseMaxIdleConns    = 5
	DatabaseConnMaxLifetime = 30 // minutes
)

// Cache defaults
const (
	ConflictCacheTTL = 300 // seconds
)
