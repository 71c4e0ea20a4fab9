package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App           AppConfig
	AdminDB       DBConfig `envconfig:"ADMIN_DB"`
	UsersDB       DBConfig `envconfig:"USERS_DB"`
	Redis         RedisConfig
	JWT           JWTConfig
	Password      PasswordConfig
	AuthRateLimit AuthRateLimitConfig
	FeatureFlags  FeatureFlagsConfig
	CORS          CORSConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.AdminDB.ensureDSN(EnvAdminDBDSN); err != nil {
		return nil, err
	}
	if cfg.UsersDB.isUnset() {
		cfg.UsersDB = cfg.AdminDB
	} else if err := cfg.UsersDB.ensureDSN(EnvUsersDBDSN); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"SHOPADMIN_APP_ENV" required:"true"`
	Port         string `envconfig:"SHOPADMIN_APP_PORT" default:"3000"`
	LogLevel     string `envconfig:"SHOPADMIN_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"SHOPADMIN_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// DBConfig describes one logical database. Keys are derived from the parent
// field (SHOPADMIN_ADMIN_DB_HOST, SHOPADMIN_USERS_DB_MAX_OPEN_CONNS, ...).
type DBConfig struct {
	DSN    string `split_words:"true"`
	Driver string `split_words:"true" default:"postgres"`

	Host     string `split_words:"true"`
	Port     int    `split_words:"true" default:"5432"`
	User     string `split_words:"true"`
	Password string `split_words:"true"`
	Name     string `split_words:"true"`
	SSLMode  string `split_words:"true" default:"disable"`

	MaxOpenConns    int           `split_words:"true" default:"10"`
	MaxIdleConns    int           `split_words:"true" default:"5"`
	ConnMaxLifetime time.Duration `split_words:"true" default:"1h"`
	ConnMaxIdleTime time.Duration `split_words:"true" default:"10m"`
}

// IsSQLite reports whether the sqlite dialector should be used.
func (db DBConfig) IsSQLite() bool {
	return strings.EqualFold(strings.TrimSpace(db.Driver), DriverSQLite)
}

// SameTarget reports whether both configs point at the same database.
func (db DBConfig) SameTarget(other DBConfig) bool {
	return strings.EqualFold(db.Driver, other.Driver) && db.DSN == other.DSN
}

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type RedisConfig struct {
	URL          string        `envconfig:"SHOPADMIN_REDIS_URL"`
	Address      string        `envconfig:"SHOPADMIN_REDIS_ADDR"`
	Password     string        `envconfig:"SHOPADMIN_REDIS_PASSWORD"`
	DB           int           `envconfig:"SHOPADMIN_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"SHOPADMIN_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"SHOPADMIN_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"SHOPADMIN_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"SHOPADMIN_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"SHOPADMIN_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// Enabled reports whether a redis endpoint was configured.
func (r RedisConfig) Enabled() bool {
	return strings.TrimSpace(r.URL) != "" || strings.TrimSpace(r.Address) != ""
}

type JWTConfig struct {
	Secret            string `envconfig:"SHOPADMIN_JWT_SECRET"`
	Issuer            string `envconfig:"SHOPADMIN_JWT_ISSUER" default:"shopadmin"`
	ExpirationMinutes int    `envconfig:"SHOPADMIN_JWT_EXPIRATION_MINUTES" default:"60"`
}

// Enabled reports whether access tokens can be minted.
func (j JWTConfig) Enabled() bool {
	return j.Secret != ""
}

// TTL returns the access token lifetime.
func (j JWTConfig) TTL() time.Duration {
	if j.ExpirationMinutes <= 0 {
		return 0
	}
	return time.Duration(j.ExpirationMinutes) * time.Minute
}

type PasswordConfig struct {
	BcryptCost int `envconfig:"SHOPADMIN_BCRYPT_COST" default:"12"`
}

type AuthRateLimitConfig struct {
	LoginWindow        time.Duration `envconfig:"SHOPADMIN_AUTH_RATE_LIMIT_LOGIN_WINDOW" default:"1m"`
	LoginIPLimit       int           `envconfig:"SHOPADMIN_AUTH_RATE_LIMIT_LOGIN_IP_LIMIT" default:"20"`
	LoginUsernameLimit int           `envconfig:"SHOPADMIN_AUTH_RATE_LIMIT_LOGIN_USERNAME_LIMIT" default:"5"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"SHOPADMIN_AUTO_MIGRATE" default:"false"`
	RequireAuth bool `envconfig:"SHOPADMIN_REQUIRE_AUTH" default:"false"`
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"SHOPADMIN_CORS_ALLOWED_ORIGINS" default:"http://localhost:3000"`
	MaxAge         int      `envconfig:"SHOPADMIN_CORS_MAX_AGE" default:"300"`
}

func (db DBConfig) isUnset() bool {
	return db.DSN == "" && db.Host == ""
}

func (db *DBConfig) ensureDSN(dsnEnv string) error {
	if db.DSN != "" {
		return nil
	}

	if db.IsSQLite() {
		if db.Name == "" {
			return fmt.Errorf("%s is required for the sqlite driver", dsnEnv)
		}
		db.DSN = db.Name
		return nil
	}

	missing := []string{}
	if db.Host == "" {
		missing = append(missing, "HOST")
	}
	if db.User == "" {
		missing = append(missing, "USER")
	}
	if db.Name == "" {
		missing = append(missing, "NAME")
	}
	if len(missing) > 0 {
		prefix := strings.TrimSuffix(dsnEnv, "DSN")
		for i, m := range missing {
			missing[i] = prefix + m
		}
		return fmt.Errorf("either %s or %s are required", dsnEnv, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.User)
	if db.Password != "" {
		userInfo = url.UserPassword(db.User, db.Password)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.Host, db.Port),
		Path:   db.Name,
	}

	if db.SSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.SSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
