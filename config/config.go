package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

type Config struct {
	// Server Settings
	AppPort string `toml:"port"`
	HOST    string `toml:"host"`

	// Storage Settings
	StoreDriver string `toml:"store_driver"` // memory, file, gorm, redis
	StoreDSN    string `toml:"store_dsn"`    // gorm: postgres:// URL or sqlite file
	StoreDir    string `toml:"store_dir"`    // file driver
	RedisURL    string `toml:"redis_url"`
	RedisPrefix string `toml:"redis_prefix"`

	// Catalog Settings
	CatalogSource  string `toml:"catalog_source"` // http(s) URL or local .json/.yaml file
	CatalogTimeout string `toml:"catalog_timeout"`

	// JWT Settings
	JWTSecret     string `toml:"jwt_secret"`
	JWTExpiration string `toml:"jwt_expires_in"`

	SeedDemoUsers bool `toml:"seed_demo_users"`

	// CORS Settings
	CORSAllowOrigins []string `toml:"cors_allow_origins"`
	CORSAllowMethods []string `toml:"cors_allow_methods"`
	CORSAllowHeaders []string `toml:"cors_allow_headers"`
}

// LoadConfig layers defaults, the optional TOML file at path, a .env file and
// the process environment, in that order.
func LoadConfig(path string) (*Config, error) {
	cfg := Defaults()

	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("config parse failed (%s): %w", path, err)
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config .env load failed: %w", err)
	}
	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	setString(&cfg.AppPort, "PORT")
	setString(&cfg.HOST, "HOST")
	setString(&cfg.StoreDriver, "STORE_DRIVER")
	setString(&cfg.StoreDSN, "DATABASE_URL")
	setString(&cfg.StoreDSN, "STORE_DSN")
	setString(&cfg.StoreDir, "STORE_DIR")
	setString(&cfg.RedisURL, "REDIS_URL")
	setString(&cfg.RedisPrefix, "REDIS_PREFIX")
	setString(&cfg.CatalogSource, "CATALOG_SOURCE")
	setString(&cfg.CatalogTimeout, "CATALOG_TIMEOUT")
	setString(&cfg.JWTSecret, "JWT_SECRET")
	setString(&cfg.JWTExpiration, "JWT_EXPIRES_IN")

	if v, err := strconv.ParseBool(os.Getenv("SEED_DEMO_USERS")); err == nil {
		cfg.SeedDemoUsers = v
	}
	if v := os.Getenv("CORS_ALLOW_ORIGINS"); v != "" {
		cfg.CORSAllowOrigins = splitList(v)
	}
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		*dst = strings.TrimSpace(v)
	}
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Validate checks the settings the server cannot start without.
func (c *Config) Validate() error {
	var errs []error
	switch c.StoreDriver {
	case DriverMemory:
	case DriverFile:
		if c.StoreDir == "" {
			errs = append(errs, errors.New("store_dir is required for the file driver"))
		}
	case DriverGorm:
		if c.StoreDSN == "" {
			errs = append(errs, errors.New("store_dsn is required for the gorm driver"))
		}
	case DriverRedis:
		if c.RedisURL == "" {
			errs = append(errs, errors.New("redis_url is required for the redis driver"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown store driver %q", c.StoreDriver))
	}
	if c.CatalogSource == "" {
		errs = append(errs, errors.New("catalog_source is required"))
	}
	if c.JWTSecret == "" {
		errs = append(errs, errors.New("jwt_secret is required"))
	}
	if _, err := time.ParseDuration(c.CatalogTimeout); err != nil {
		errs = append(errs, fmt.Errorf("catalog_timeout: %w", err))
	}
	if _, err := time.ParseDuration(c.JWTExpiration); err != nil {
		errs = append(errs, fmt.Errorf("jwt_expires_in: %w", err))
	}
	return errors.Join(errs...)
}

func (c *Config) Addr() string {
	return c.HOST + ":" + c.AppPort
}

// CatalogFetchTimeout is only meaningful after Validate.
func (c *Config) CatalogFetchTimeout() time.Duration {
	d, _ := time.ParseDuration(c.CatalogTimeout)
	return d
}

func (c *Config) TokenTTL() time.Duration {
	d, _ := time.ParseDuration(c.JWTExpiration)
	return d
}

// CatalogIsFile reports whether the catalog is read from disk, in which case
// the server also publishes it as a static document.
func (c *Config) CatalogIsFile() bool {
	return !strings.HasPrefix(c.CatalogSource, "http://") && !strings.HasPrefix(c.CatalogSource, "https://")
}
