package config

// EnvPrefix scopes every environment variable read by envconfig.
const EnvPrefix = "AYURNEST"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

const (
	EnvDBDSN  = "AYURNEST_DB_DSN"
	EnvDBHost = "AYURNEST_DB_HOST"
	EnvDBUser = "AYURNEST_DB_USER"
	EnvDBName = "AYURNEST_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
