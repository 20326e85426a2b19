package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
)

type Config struct {
	App           AppConfig
	DB            DBConfig
	Redis         RedisConfig
	JWT           JWTConfig
	Password      PasswordConfig
	AuthRateLimit AuthRateLimitConfig
	FeatureFlags  FeatureFlagsConfig
	Checkout      CheckoutConfig
	Cron          CronConfig
	GoogleMaps    GoogleMapsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	if err := cfg.Checkout.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"AYURNEST_APP_ENV" required:"true"`
	Port         string `envconfig:"AYURNEST_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"AYURNEST_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"AYURNEST_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"AYURNEST_DB_DSN"`
	Driver string `envconfig:"AYURNEST_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"AYURNEST_DB_HOST"`
	LegacyPort     int    `envconfig:"AYURNEST_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"AYURNEST_DB_USER"`
	LegacyPassword string `envconfig:"AYURNEST_DB_PASSWORD"`
	LegacyName     string `envconfig:"AYURNEST_DB_NAME"`
	LegacySSLMode  string `envconfig:"AYURNEST_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"AYURNEST_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"AYURNEST_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"AYURNEST_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"AYURNEST_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"AYURNEST_REDIS_URL" required:"true"`
	Address      string        `envconfig:"AYURNEST_REDIS_ADDR"`
	Password     string        `envconfig:"AYURNEST_REDIS_PASSWORD"`
	DB           int           `envconfig:"AYURNEST_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"AYURNEST_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"AYURNEST_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"AYURNEST_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"AYURNEST_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"AYURNEST_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret                 string `envconfig:"AYURNEST_JWT_SECRET" required:"true"`
	Issuer                 string `envconfig:"AYURNEST_JWT_ISSUER" required:"true"`
	ExpirationMinutes      int    `envconfig:"AYURNEST_JWT_EXPIRATION_MINUTES" required:"true"`
	RefreshTokenTTLMinutes int    `envconfig:"AYURNEST_REFRESH_TOKEN_TTL_MINUTES" default:"43200"`
}

// RefreshTokenTTL returns the refresh token TTL configured in minutes.
func (j JWTConfig) RefreshTokenTTL() time.Duration {
	if j.RefreshTokenTTLMinutes <= 0 {
		return 0
	}
	return time.Duration(j.RefreshTokenTTLMinutes) * time.Minute
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"AYURNEST_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"AYURNEST_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"AYURNEST_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"AYURNEST_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"AYURNEST_ARGON_KEY_LEN" default:"32"`

	ResetTokenTTL time.Duration `envconfig:"AYURNEST_PASSWORD_RESET_TTL" default:"30m"`
}

type AuthRateLimitConfig struct {
	LoginWindow        time.Duration `envconfig:"AYURNEST_AUTH_RATE_LIMIT_LOGIN_WINDOW" default:"1m"`
	LoginEmailLimit    int           `envconfig:"AYURNEST_AUTH_RATE_LIMIT_LOGIN_EMAIL_LIMIT" default:"5"`
	LoginIPLimit       int           `envconfig:"AYURNEST_AUTH_RATE_LIMIT_LOGIN_IP_LIMIT" default:"20"`
	RegisterWindow     time.Duration `envconfig:"AYURNEST_AUTH_RATE_LIMIT_REGISTER_WINDOW" default:"5m"`
	RegisterEmailLimit int           `envconfig:"AYURNEST_AUTH_RATE_LIMIT_REGISTER_EMAIL_LIMIT" default:"3"`
	RegisterIPLimit    int           `envconfig:"AYURNEST_AUTH_RATE_LIMIT_REGISTER_IP_LIMIT" default:"20"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"AYURNEST_AUTO_MIGRATE" default:"false"`
}

/// CheckoutConfig carries the order pricing knobs: a flat shipping fee and a
// percentage tax applied to the cart subtotal.
type CheckoutConfig struct {
	ShippingFee string `envconfig:"AYURNEST_CHECKOUT_SHIPPING_FEE" default:"50"`
	TaxPercent  string `envconfig:"AYURNEST_CHECKOUT_TAX_PERCENT" default:"5"`
}

func (c CheckoutConfig) validate() error {
	if _, err := decimal.NewFromString(c.ShippingFee); err != nil {
		return fmt.Errorf("invalid shipping fee %q: %w", c.ShippingFee, err)
	}
	if _, err := decimal.NewFromString(c.TaxPercent); err != nil {
		return fmt.Errorf("invalid tax percent %q: %w", c.TaxPercent, err)
	}
	return nil
}

// ShippingFeeAmount returns the parsed flat shipping fee.
func (c CheckoutConfig) ShippingFeeAmount() decimal.Decimal {
	fee, err := decimal.NewFromString(c.ShippingFee)
	if err != nil {
		return decimal.Zero
	}
	return fee
}

// TaxRate returns the tax percentage as a fraction (5 -> 0.05).
func (c CheckoutConfig) TaxRate() decimal.Decimal {
	percent, err := decimal.NewFromString(c.TaxPercent)
	if err != nil {
		return decimal.Zero
	}
	return percent.Div(decimal.NewFromInt(100))
}

type CronConfig struct {
	Interval                  time.Duration `envconfig:"AYURNEST_CRON_INTERVAL" default:"1h"`
	NotificationRetentionDays int           `envconfig:"AYURNEST_CRON_NOTIFICATION_RETENTION_DAYS" default:"30"`
}

type GoogleMapsConfig struct {
	APIKey string `envconfig:"AYURNEST_GOOGLE_MAPS_API_KEY"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
