package config

// EnvPrefix namespaces the nested database sections (SHOPADMIN_ADMIN_DB_*, SHOPADMIN_USERS_DB_*).
const EnvPrefix = "SHOPADMIN"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

const (
	EnvAppEnv       = "SHOPADMIN_APP_ENV"
	EnvPort         = "SHOPADMIN_APP_PORT"
	EnvLogLevel     = "SHOPADMIN_LOG_LEVEL"
	EnvLogWarnStack = "SHOPADMIN_LOG_WARN_STACK"

	EnvAdminDBDSN      = "SHOPADMIN_ADMIN_DB_DSN"
	EnvAdminDBDriver   = "SHOPADMIN_ADMIN_DB_DRIVER"
	EnvAdminDBHost     = "SHOPADMIN_ADMIN_DB_HOST"
	EnvAdminDBUser     = "SHOPADMIN_ADMIN_DB_USER"
	EnvAdminDBPassword = "SHOPADMIN_ADMIN_DB_PASSWORD"
	EnvAdminDBName     = "SHOPADMIN_ADMIN_DB_NAME"
	EnvAdminDBMaxOpen  = "SHOPADMIN_ADMIN_DB_MAX_OPEN_CONNS"

	EnvUsersDBDSN  = "SHOPADMIN_USERS_DB_DSN"
	EnvUsersDBHost = "SHOPADMIN_USERS_DB_HOST"

	EnvBcryptCost = "SHOPADMIN_BCRYPT_COST"

	EnvJWTSecret  = "SHOPADMIN_JWT_SECRET"
	EnvJWTIssuer  = "SHOPADMIN_JWT_ISSUER"
	EnvJWTExpMins = "SHOPADMIN_JWT_EXPIRATION_MINUTES"

	EnvRedisURL = "SHOPADMIN_REDIS_URL"

	EnvAutoMigrate = "SHOPADMIN_AUTO_MIGRATE"
	EnvRequireAuth = "SHOPADMIN_REQUIRE_AUTH"

	EnvCORSAllowedOrigins = "SHOPADMIN_CORS_ALLOWED_ORIGINS"
)
