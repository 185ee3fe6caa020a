package configs

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog/log"
)

// =======================
// CONFIG TYPES
// =======================

type Config struct {
	App      AppConfig      `koanf:"app"`
	Server   ServerConfig   `koanf:"server"`
	Database DatabaseConfig `koanf:"database"`
	Auth     AuthConfig     `koanf:"auth"`
	Storage  StorageConfig  `koanf:"storage"`
	Image    ImageConfig    `koanf:"image"`
	Log      LogConfig      `koanf:"log"`
	CORS     CORSConfig     `koanf:"cors"`
	Seed     SeedConfig     `koanf:"seed"`
}

type AppConfig struct {
	Name string `koanf:"name"`
	Env  string `koanf:"env"`
}

type ServerConfig struct {
	Port           string        `koanf:"port"`
	BodyLimitMB    int           `koanf:"body_limit_mb"`
	ReadTimeout    time.Duration `koanf:"read_timeout"`
	WriteTimeout   time.Duration `koanf:"write_timeout"`
	IdleTimeout    time.Duration `koanf:"idle_timeout"`
	RequestTimeout time.Duration `koanf:"request_timeout"`
	RateLimitMax   int           `koanf:"rate_limit_max"`
}

// DatabaseConfig selects the storage backend explicitly via Driver.
type DatabaseConfig struct {
	Driver          string        `koanf:"driver"` // postgres | mysql
	URL             string        `koanf:"url"`
	Host            string        `koanf:"host"`
	Port            string        `koanf:"port"`
	User            string        `koanf:"user"`
	Password        string        `koanf:"password"`
	Name            string        `koanf:"name"`
	SSLMode         string        `koanf:"sslmode"`
	MaxOpenConns    int           `koanf:"max_open_conns"`
	MaxIdleConns    int           `koanf:"max_idle_conns"`
	ConnMaxIdleTime time.Duration `koanf:"conn_max_idle_time"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime"`
	SlowThreshold   time.Duration `koanf:"slow_threshold"`
	AutoMigrate     bool          `koanf:"auto_migrate"`
}

type AuthConfig struct {
	JWTSecret        string        `koanf:"jwt_secret"`
	SessionTTL       time.Duration `koanf:"session_ttl"`
	AdminUsername    string        `koanf:"admin_username"`
	AdminPassword    string        `koanf:"admin_password"`
	BlacklistCleanup string        `koanf:"blacklist_cleanup"` // cron spec
}

// StorageConfig configures the object store used for uploads.
type StorageConfig struct {
	Driver          string `koanf:"driver"` // inline | s3 | gcs | oss
	Bucket          string `koanf:"bucket"`
	Region          string `koanf:"region"`
	Endpoint        string `koanf:"endpoint"`
	AccessKeyID     string `koanf:"access_key_id"`
	AccessKeySecret string `koanf:"access_key_secret"`
	PublicBaseURL   string `koanf:"public_base_url"`
	Prefix          string `koanf:"prefix"`
}

type ImageConfig struct {
	MaxWidth    int     `koanf:"max_width"`
	MaxHeight   int     `koanf:"max_height"`
	Quality     float64 `koanf:"quality"`
	MaxSizeMB   float64 `koanf:"max_size_mb"`
	MaxUploadMB float64 `koanf:"max_upload_mb"`
}

type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"` // console | json
}

type CORSConfig struct {
	AllowOrigins string `koanf:"allow_origins"`
}

type SeedConfig struct {
	Enabled bool `koanf:"enabled"`
}

func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.App.Env, "production")
}

// =======================
// DEFAULTS
// =======================

func defaultConfig() Config {
	return Config{
		App: AppConfig{Name: "azadi", Env: "development"},
		Server: ServerConfig{
			Port:           "3000",
			BodyLimitMB:    25,
			ReadTimeout:    15 * time.Second,
			WriteTimeout:   30 * time.Second,
			IdleTimeout:    90 * time.Second,
			RequestTimeout: 10 * time.Second,
			RateLimitMax:   120,
		},
		Database: DatabaseConfig{
			Driver:          "postgres",
			SSLMode:         "require",
			MaxOpenConns:    20,
			MaxIdleConns:    10,
			ConnMaxIdleTime: 60 * time.Second,
			ConnMaxLifetime: 10 * time.Minute,
			SlowThreshold:   200 * time.Millisecond,
			AutoMigrate:     true,
		},
		Auth: AuthConfig{
			SessionTTL:       12 * time.Hour,
			AdminUsername:    "azadi",
			BlacklistCleanup: "@every 24h",
		},
		Storage: StorageConfig{Driver: "inline", Prefix: "uploads"},
		Image: ImageConfig{
			MaxWidth:    800,
			MaxHeight:   800,
			Quality:     0.7,
			MaxSizeMB:   5,
			MaxUploadMB: 20,
		},
		Log:  LogConfig{Level: "info", Format: "console"},
		CORS: CORSConfig{AllowOrigins: "*"},
		Seed: SeedConfig{Enabled: true},
	}
}

// =======================
// ENV LOADER
// =======================

// LoadEnv loads .env into the process environment when running outside production.
func LoadEnv() {
	if strings.EqualFold(os.Getenv("APP_ENV"), "production") {
		log.Info().Msg("🚀 production mode, using system environment")
		return
	}
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg("⚠️ .env not found, using system environment")
		return
	}
	log.Info().Msg("✅ .env loaded")
}

// envMappings maps flat environment names to koanf paths.
var envMappings = map[string]string{
	"app_env":  "app.env",
	"app_name": "app.name",

	"port":            "server.port",
	"body_limit_mb":   "server.body_limit_mb",
	"request_timeout": "server.request_timeout",
	"rate_limit_max":  "server.rate_limit_max",

	"db_driver":          "database.driver",
	"database_url":       "database.url",
	"db_host":            "database.host",
	"db_port":            "database.port",
	"db_user":            "database.user",
	"db_password":        "database.password",
	"db_name":            "database.name",
	"db_sslmode":         "database.sslmode",
	"db_max_open_conns":  "database.max_open_conns",
	"db_max_idle_conns":  "database.max_idle_conns",
	"db_slow_threshold":  "database.slow_threshold",
	"db_auto_migrate":    "database.auto_migrate",
	"mysql_host":         "database.host",
	"mysql_port":         "database.port",
	"mysql_user":         "database.user",
	"mysql_password":     "database.password",
	"mysql_database":     "database.name",
	"jwt_secret":         "auth.jwt_secret",
	"session_ttl":        "auth.session_ttl",
	"admin_username":     "auth.admin_username",
	"admin_password":     "auth.admin_password",
	"blacklist_cleanup":  "auth.blacklist_cleanup",
	"storage_driver":     "storage.driver",
	"storage_bucket":     "storage.bucket",
	"storage_region":     "storage.region",
	"storage_endpoint":   "storage.endpoint",
	"storage_prefix":     "storage.prefix",
	"image_max_width":    "image.max_width",
	"image_max_height":   "image.max_height",
	"image_quality":      "image.quality",
	"image_max_size_mb":  "image.max_size_mb",
	"log_level":          "log.level",
	"log_format":         "log.format",
	"cors_allow_origins": "cors.allow_origins",
	"seed_enabled":       "seed.enabled",

	"storage_access_key_id":     "storage.access_key_id",
	"storage_access_key_secret": "storage.access_key_secret",
	"storage_public_base_url":   "storage.public_base_url",
	"image_max_upload_mb":       "image.max_upload_mb",
}

// envTransformFunc returns "" for unknown variables so koanf skips them.
func envTransformFunc(key string) string {
	if path, ok := envMappings[strings.ToLower(key)]; ok {
		return path
	}
	return ""
}

// Load builds the config from defaults, then environment variables.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.normalize()

	if cfg.Auth.JWTSecret == "" && !cfg.IsProduction() {
		cfg.Auth.JWTSecret = strings.ReplaceAll(uuid.NewString()+uuid.NewString(), "-", "")
		log.Warn().Msg("⚠️ JWT_SECRET not set, using an ephemeral secret (sessions reset on restart)")
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func (c *Config) normalize() {
	c.Database.Driver = strings.ToLower(strings.TrimSpace(c.Database.Driver))
	c.Storage.Driver = strings.ToLower(strings.TrimSpace(c.Storage.Driver))
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	if c.Database.Driver == "mysql" && c.Database.Port == "" {
		c.Database.Port = "3306"
	}
	if c.Database.Driver == "postgres" && c.Database.Port == "" {
		c.Database.Port = "5432"
	}
}

// =======================
// VALIDATION
// =======================

func (c *Config) Validate() error {
	var errs []error

	switch c.Database.Driver {
	case "postgres":
		if c.Database.URL == "" && c.Database.Host == "" {
			errs = append(errs, errors.New("database: postgres needs DATABASE_URL or DB_HOST"))
		}
	case "mysql":
		if c.Database.Host == "" || c.Database.User == "" || c.Database.Name == "" {
			errs = append(errs, errors.New("database: mysql needs host, user and database name"))
		}
	default:
		errs = append(errs, fmt.Errorf("database: unknown driver %q (want postgres or mysql)", c.Database.Driver))
	}

	switch c.Storage.Driver {
	case "inline":
	case "s3", "gcs", "oss":
		if c.Storage.Bucket == "" {
			errs = append(errs, fmt.Errorf("storage: %s driver needs a bucket", c.Storage.Driver))
		}
		if c.Storage.Driver == "oss" && c.Storage.Endpoint == "" {
			errs = append(errs, errors.New("storage: oss driver needs an endpoint"))
		}
	default:
		errs = append(errs, fmt.Errorf("storage: unknown driver %q", c.Storage.Driver))
	}

	if c.IsProduction() && len(c.Auth.JWTSecret) < 32 {
		errs = append(errs, errors.New("auth: JWT_SECRET must be at least 32 characters in production"))
	}
	if c.Auth.SessionTTL <= 0 {
		errs = append(errs, errors.New("auth: session ttl must be positive"))
	}
	if c.Image.Quality <= 0 || c.Image.Quality > 1 {
		errs = append(errs, errors.New("image: quality must be in (0, 1]"))
	}

	return errors.Join(errs...)
}
