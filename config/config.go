package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

var ErrMissingEnvironmentVariables = errors.New("missing required environment variables")

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env             string        `mapstructure:"env"`
	Port            string        `mapstructure:"port" validate:"required"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	DB              DB            `mapstructure:"database"`
	JWT             JWT           `mapstructure:"jwt"`
	Cookie          Cookie        `mapstructure:"cookie"`
	CORS            CORS          `mapstructure:"cors"`
}

// DB contains database-related configuration parameters.
type DB struct {
	Driver          string        `mapstructure:"driver" validate:"oneof=postgres sqlite"`
	URL             string        `mapstructure:"url" validate:"required"`
	MaxConnections  int           `mapstructure:"max_connections" validate:"min=1"`
	MaxConnLifetime time.Duration `mapstructure:"max_conn_lifetime"`
}

// SQLXDriverName returns the driver name sqlx uses to pick a bind style.
func (db DB) SQLXDriverName() string {
	if db.Driver == "sqlite" {
		return "sqlite3"
	}
	return db.Driver
}

// JWT configures the session tokens issued on login.
type JWT struct {
	SecretKey string        `mapstructure:"secret_key" validate:"required"`
	Issuer    string        `mapstructure:"issuer" validate:"required"`
	Audience  string        `mapstructure:"audience" validate:"required"`
	TTL       time.Duration `mapstructure:"ttl"`
}

type CORS struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// IsProduction reports whether the service runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Load reads configuration from config files and environment variables.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")

	v.SetDefault("env", "local")
	v.SetDefault("port", "8080")
	v.SetDefault("shutdown_timeout", "10s")
	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.max_connections", 20)
	v.SetDefault("database.max_conn_lifetime", "30m")
	v.SetDefault("jwt.issuer", "vocabook-api")
	v.SetDefault("jwt.audience", "vocabook")
	v.SetDefault("jwt.ttl", "24h")
	v.SetDefault("cors.allowed_origins", []string{"http://localhost:3000"})

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	_ = v.BindEnv("env", "APP_ENV")
	_ = v.BindEnv("port", "PORT")
	_ = v.BindEnv("shutdown_timeout", "SHUTDOWN_TIMEOUT")
	_ = v.BindEnv("database.driver", "DATABASE_DRIVER")
	_ = v.BindEnv("database.url", "DATABASE_URL")
	_ = v.BindEnv("jwt.secret_key", "JWT_SECRET_KEY")
	_ = v.BindEnv("jwt.issuer", "JWT_ISSUER")
	_ = v.BindEnv("jwt.audience", "JWT_AUDIENCE")
	_ = v.BindEnv("jwt.ttl", "JWT_TTL")
	_ = v.BindEnv("cookie.domain", "COOKIE_DOMAIN")
	_ = v.BindEnv("cors.allowed_origins", "CORS_ALLOWED_ORIGINS")

	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	// CORS_ALLOWED_ORIGINS arrives as a single comma separated string.
	if raw := v.GetString("cors.allowed_origins"); raw != "" {
		cfg.CORS.AllowedOrigins = splitList(raw)
	}

	cfg.Cookie = NewCookie(cfg.Cookie.Domain)

	if err := validator.New().Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return nil, fmt.Errorf("%w: %s", ErrMissingEnvironmentVariables, verrs.Error())
		}
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
