package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// HTTP Headers
	HeaderContentType   = "Content-Type"
	HeaderAuthorization = "Authorization"
	HeaderXPrincipal    = "X-Principal"
	HeaderXRequestID    = "X-Request-ID"

	// Content Types
	ContentTypeJSON = "application/json"

	// Context keys
	ContextKeyPrincipal = "principal"
	ContextKeyRequestID = "request_id"

	// Database table names
	TableTiers           = "tiers"
	TableSubscriptions   = "subscriptions"
	TableTokenOwnerships = "token_ownerships"
	TableEngineState     = "engine_state"
)

// Chain and engine limits. Heights are counted in blocks; tier durations are
// configured in days and converted at BlocksPerDay blocks per day.
const (
	// BlocksPerDay converts a day count into a block-height delta.
	BlocksPerDay uint64 = 144

	// MaxTierPrice bounds the price of a tier in atomic ledger units.
	MaxTierPrice uint64 = 1_000_000_000_000

	// MinDurationDays and MaxDurationDays bound a tier's validity duration.
	MinDurationDays uint32 = 1
	MaxDurationDays uint32 = 365

	// MaxRenewalsCap bounds a tier's declared renewal limit.
	MaxRenewalsCap uint32 = 100

	// MaxFeatures bounds the feature list carried by one subscription.
	MaxFeatures = 10
)
