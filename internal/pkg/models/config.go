package models

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NATS     NATSConfig
	JWT      JWTConfig
	Logger   LoggerConfig
	Escrow   EscrowConfig
	Gateway  GatewayConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// LoggerConfig contains structured logging configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}

// EscrowConfig contains settlement engine configuration
type EscrowConfig struct {
	// AutoReleaseWindowHours is how long after shipping a held hold waits for
	// buyer action before the sweep force-releases it
	AutoReleaseWindowHours int
	// SweepIntervalMinutes drives the optional in-process sweep ticker;
	// zero disables it and leaves sweeping to the HTTP endpoint
	SweepIntervalMinutes int
	ConfirmationCodeLen  int
	DefaultCurrency      string
}

// GatewayConfig contains payment gateway and verification service
// configuration. WebhookSecret verifies inbound callbacks; APIKey
// authenticates outbound calls.
type GatewayConfig struct {
	URL             string
	APIKey          string
	WebhookSecret   string
	TimeoutSeconds  int
	VerificationURL string
}
