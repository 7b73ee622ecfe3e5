package config

// EnvPrefix is applied by envconfig when resolving unprefixed struct fields.
const EnvPrefix = "orbya"

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

// Canonical env var names referenced outside struct tags (tests, error text).
const (
	EnvAppEnv        = "ORBYA_APP_ENV"
	EnvPort          = "ORBYA_APP_PORT"
	EnvDBDSN         = "ORBYA_DB_DSN"
	EnvDBDriver      = "ORBYA_DB_DRIVER"
	EnvAdminPassword = "ORBYA_ADMIN_PASSWORD"
	EnvJWTSecret     = "ORBYA_JWT_SECRET"
	EnvJWTIssuer     = "ORBYA_JWT_ISSUER"
	EnvJWTExpMins    = "ORBYA_JWT_EXPIRATION_MINUTES"
	EnvMediaRoot     = "ORBYA_MEDIA_ROOT"
	EnvRedisURL      = "ORBYA_REDIS_URL"
)
