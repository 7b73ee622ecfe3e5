package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App           App
	DB            DBConfig
	Redis         RedisConfig
	JWT           JWTConfig
	Admin         AdminConfig
	Password      PasswordConfig
	AuthRateLimit AuthRateLimitConfig
	Media         MediaConfig
	Resume        ResumeConfig
	CORS          CORSConfig
	FeatureFlags  FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type App struct {
	Env          string `envconfig:"ORBYA_APP_ENV" required:"true"`
	Port         string `envconfig:"ORBYA_APP_PORT" default:"8001"`
	LogLevel     string `envconfig:"ORBYA_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"ORBYA_LOG_WARN_STACK" default:"false"`
}

func (a App) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a App) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"ORBYA_DB_DSN"`
	Driver string `envconfig:"ORBYA_DB_DRIVER" default:"sqlite"`

	MaxOpenConns    int           `envconfig:"ORBYA_DB_MAX_OPEN_CONNS" default:"10"`
	MaxIdleConns    int           `envconfig:"ORBYA_DB_MAX_IDLE_CONNS" default:"5"`
	ConnMaxLifetime time.Duration `envconfig:"ORBYA_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"ORBYA_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	// defaultSQLitePath keeps the single-operator default self-contained.
	defaultSQLitePath = "data/portfolio.db"
)

func (db *DBConfig) validate() error {
	driver := strings.ToLower(strings.TrimSpace(db.Driver))
	switch driver {
	case DriverPostgres:
		if db.DSN == "" {
			return fmt.Errorf("%s is required when %s is postgres", EnvDBDSN, EnvDBDriver)
		}
	case DriverSQLite:
		if db.DSN == "" {
			db.DSN = defaultSQLitePath
		}
	default:
		return fmt.Errorf("unsupported db driver %q", db.Driver)
	}
	db.Driver = driver
	return nil
}

// RedisConfig is optional: when URL is empty, auth rate limiting is disabled.
type RedisConfig struct {
	URL          string        `envconfig:"ORBYA_REDIS_URL"`
	PoolSize     int           `envconfig:"ORBYA_REDIS_POOL_SIZE" default:"5"`
	MinIdleConns int           `envconfig:"ORBYA_REDIS_MIN_IDLE_CONNS" default:"1"`
	DialTimeout  time.Duration `envconfig:"ORBYA_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"ORBYA_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"ORBYA_REDIS_WRITE_TIMEOUT" default:"5s"`
}

func (r RedisConfig) Enabled() bool {
	return strings.TrimSpace(r.URL) != ""
}

type JWTConfig struct {
	Secret            string `envconfig:"ORBYA_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"ORBYA_JWT_ISSUER" default:"orbya-portfolio"`
	ExpirationMinutes int    `envconfig:"ORBYA_JWT_EXPIRATION_MINUTES" default:"120"`
}

// TokenTTL returns the admin session lifetime.
func (j JWTConfig) TokenTTL() time.Duration {
	if j.ExpirationMinutes <= 0 {
		return 0
	}
	return time.Duration(j.ExpirationMinutes) * time.Minute
}

type AdminConfig struct {
	// Seed password for the credential row on first boot. Never read again
	// once a credential exists.
	Password          string `envconfig:"ORBYA_ADMIN_PASSWORD" default:"orbya2024"`
	MinPasswordLength int    `envconfig:"ORBYA_ADMIN_MIN_PASSWORD_LENGTH" default:"4"`
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"ORBYA_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"ORBYA_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"ORBYA_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"ORBYA_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"ORBYA_ARGON_KEY_LEN" default:"32"`
}

type AuthRateLimitConfig struct {
	Window  time.Duration `envconfig:"ORBYA_AUTH_RATE_LIMIT_WINDOW" default:"1m"`
	IPLimit int           `envconfig:"ORBYA_AUTH_RATE_LIMIT_IP_LIMIT" default:"10"`
}

type MediaConfig struct {
	// Root directory holding uploads/images and uploads/videos.
	Root        string `envconfig:"ORBYA_MEDIA_ROOT" default:"uploads"`
	PublicBase  string `envconfig:"ORBYA_MEDIA_PUBLIC_BASE" default:"/uploads"`
	MaxUploadMB int    `envconfig:"ORBYA_MEDIA_MAX_UPLOAD_MB" default:"100"`
}

// MaxUploadBytes converts the configured ceiling to bytes.
func (m MediaConfig) MaxUploadBytes() int64 {
	return int64(m.MaxUploadMB) * 1024 * 1024
}

type ResumeConfig struct {
	Path     string `envconfig:"ORBYA_RESUME_PATH" default:"static/ORBYA_Resume.pdf"`
	FileName string `envconfig:"ORBYA_RESUME_FILENAME" default:"ORBYA_Resume.pdf"`
}

type CORSConfig struct {
	Origins []string `envconfig:"ORBYA_CORS_ORIGINS" default:"*"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"ORBYA_AUTO_MIGRATE" default:"true"`
}
