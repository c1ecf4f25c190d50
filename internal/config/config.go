package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	timex "github.com/ferdiebergado/gatekeep/internal/pkg/time"
	"github.com/kelseyhightower/envconfig"
)

const (
	EnvProduction = "production"

	// FallbackJWTSecret is used outside production when JWT_SECRET is not set.
	FallbackJWTSecret = "your-secret-key"

	StoreMemory   = "memory"
	StorePostgres = "postgres"
)

var ErrMissingSecret = errors.New("config: JWT_SECRET must be set in production")

type App struct {
	Env      string `json:"env,omitempty"`
	LogLevel string `json:"log_level,omitempty"`
}

type Server struct {
	URL             string         `json:"url,omitempty"`
	Port            int            `json:"port,omitempty"`
	ReadTimeout     timex.Duration `json:"read_timeout,omitempty"`
	WriteTimeout    timex.Duration `json:"write_timeout,omitempty"`
	IdleTimeout     timex.Duration `json:"idle_timeout,omitempty"`
	ShutdownTimeout timex.Duration `json:"shutdown_timeout,omitempty"`
	MaxBodyBytes    int64          `json:"max_body_bytes,omitempty"`
}

type Store struct {
	Driver string `json:"driver,omitempty"`
	DSN    string `json:"-"`
}

type DB struct {
	Driver          string         `json:"driver,omitempty"`
	MaxOpenConns    int            `json:"max_open_conns,omitempty"`
	MaxIdleConns    int            `json:"max_idle_conns,omitempty"`
	ConnMaxIdleTime timex.Duration `json:"conn_max_idle_time,omitempty"`
	ConnMaxLifetime timex.Duration `json:"conn_max_lifetime,omitempty"`
	PingTimeout     timex.Duration `json:"ping_timeout,omitempty"`
	Migrate         bool           `json:"migrate,omitempty"`
}

type JWT struct {
	Issuer string         `json:"issuer,omitempty"`
	TTL    timex.Duration `json:"ttl,omitempty"`
	Secret string         `json:"-"`
}

type Bcrypt struct {
	Cost int `json:"cost,omitempty"`
}

type CORS struct {
	AllowedOrigin string `json:"allowed_origin,omitempty"`
}

type Config struct {
	App    *App    `json:"app,omitempty"`
	Server *Server `json:"server,omitempty"`
	Store  *Store  `json:"store,omitempty"`
	DB     *DB     `json:"db,omitempty"`
	JWT    *JWT    `json:"jwt,omitempty"`
	Bcrypt *Bcrypt `json:"bcrypt,omitempty"`
	CORS   *CORS   `json:"cors,omitempty"`
}

func (c *Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("app", c.App),
		slog.Any("server", c.Server),
		slog.String("store", c.Store.Driver),
		slog.Any("db", c.DB),
		slog.String("jwt_issuer", c.JWT.Issuer),
		slog.Duration("jwt_ttl", c.JWT.TTL.Duration),
		slog.Any("bcrypt", c.Bcrypt),
		slog.Any("cors", c.CORS),
	)
}

// IsProduction reports whether the application runs in production.
func (c *Config) IsProduction() bool {
	return c != nil && c.App != nil && c.App.Env == EnvProduction
}

// envOverrides lists the environment variables that take precedence over the config file.
type envOverrides struct {
	AppEnv      string `envconfig:"APP_ENV"`
	LogLevel    string `envconfig:"LOG_LEVEL"`
	URL         string `envconfig:"URL"`
	Port        int    `envconfig:"PORT"`
	JWTSecret   string `envconfig:"JWT_SECRET"`
	StoreDriver string `envconfig:"STORE_DRIVER"`
	DatabaseURL string `envconfig:"DATABASE_URL"`
	CORSOrigin  string `envconfig:"CORS_ORIGIN"`
}

// Load reads the JSON config file, applies environment overrides and fills defaults.
func Load(cfgFile string) (*Config, error) {
	slog.Info("Loading config...")
	cfg, err := parseCfgFile(cfgFile)
	if err != nil {
		return nil, err
	}

	if err := overrideWithEnv(cfg); err != nil {
		return nil, err
	}

	if err := cfg.finalize(); err != nil {
		return nil, err
	}

	slog.Info("Config loaded.", "config_file", cfgFile, slog.Any("config", cfg))
	return cfg, nil
}

func parseCfgFile(cfgFile string) (*Config, error) {
	cfgFile = filepath.Clean(cfgFile)
	configFile, err := os.ReadFile(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("read config file %s: %w", cfgFile, err)
	}

	var cfg Config
	if err := json.Unmarshal(configFile, &cfg); err != nil {
		return nil, fmt.Errorf("decode json config %s: %w", cfgFile, err)
	}

	cfg.ensureSections()
	return &cfg, nil
}

func overrideWithEnv(cfg *Config) error {
	var env envOverrides
	if err := envconfig.Process("", &env); err != nil {
		return fmt.Errorf("process env: %w", err)
	}

	cfg.ensureSections()

	if env.AppEnv != "" {
		cfg.App.Env = env.AppEnv
	}
	if env.LogLevel != "" {
		cfg.App.LogLevel = env.LogLevel
	}
	if env.URL != "" {
		cfg.Server.URL = env.URL
	}
	if env.Port != 0 {
		cfg.Server.Port = env.Port
	}
	if env.JWTSecret != "" {
		cfg.JWT.Secret = env.JWTSecret
	}
	if env.StoreDriver != "" {
		cfg.Store.Driver = env.StoreDriver
	}
	if env.DatabaseURL != "" {
		cfg.Store.DSN = env.DatabaseURL
	}
	if env.CORSOrigin != "" {
		cfg.CORS.AllowedOrigin = env.CORSOrigin
	}
	return nil
}

func (c *Config) ensureSections() {
	if c.App == nil {
		c.App = &App{}
	}
	if c.Server == nil {
		c.Server = &Server{}
	}
	if c.Store == nil {
		c.Store = &Store{}
	}
	if c.DB == nil {
		c.DB = &DB{}
	}
	if c.JWT == nil {
		c.JWT = &JWT{}
	}
	if c.Bcrypt == nil {
		c.Bcrypt = &Bcrypt{}
	}
	if c.CORS == nil {
		c.CORS = &CORS{}
	}
}

func (c *Config) finalize() error {
	c.ensureSections()

	if c.App.Env == "" {
		c.App.Env = "development"
	}
	if c.Store.Driver == "" {
		c.Store.Driver = StoreMemory
	}
	if c.Store.Driver != StoreMemory && c.Store.Driver != StorePostgres {
		return fmt.Errorf("config: unknown store driver %q", c.Store.Driver)
	}
	if c.Store.Driver == StorePostgres && c.Store.DSN == "" {
		return errors.New("config: DATABASE_URL must be set for the postgres store")
	}
	if c.DB.Driver == "" {
		c.DB.Driver = "pgx"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 5000
	}
	if c.Server.MaxBodyBytes == 0 {
		c.Server.MaxBodyBytes = 1 << 20
	}
	if c.JWT.TTL.Duration == 0 {
		c.JWT.TTL = timex.Duration{Duration: time.Hour}
	}
	if c.Bcrypt.Cost == 0 {
		c.Bcrypt.Cost = 12
	}
	if c.CORS.AllowedOrigin == "" {
		c.CORS.AllowedOrigin = "*"
	}

	if c.JWT.Secret == "" {
		if c.IsProduction() {
			return ErrMissingSecret
		}
		slog.Warn("JWT_SECRET is not set, using the fallback signing secret. Do not use this outside development.")
		c.JWT.Secret = FallbackJWTSecret
	}

	return nil
}
