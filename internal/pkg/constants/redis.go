package constants

// Redis key formats
const (
	// Rate Limiting
	KeyRateLimit = "rate:limit" // Prefix: rate:limit:{path}:{identifier}
)
