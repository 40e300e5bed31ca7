package config

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Config holds the application configuration.
type Config struct {
	Port        string `mapstructure:"PORT"`
	DatabaseURL string `mapstructure:"DATABASE_URL"`
	StoreDriver string `mapstructure:"STORE_DRIVER"`
	JWTSecret   string `mapstructure:"JWT_SECRET"`

	RoomMaxMembers int `mapstructure:"ROOM_MAX_MEMBERS"`

	RedisAddr     string        `mapstructure:"REDIS_ADDR"`
	RedisPassword string        `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int           `mapstructure:"REDIS_DB"`
	UserCacheTTL  time.Duration `mapstructure:"USER_CACHE_TTL"`

	PurgeSchedule  string        `mapstructure:"PURGE_SCHEDULE"`
	PurgeRetention time.Duration `mapstructure:"PURGE_RETENTION"`

	LogLevel    string `mapstructure:"LOG_LEVEL"`
	CORSOrigins string `mapstructure:"CORS_ORIGINS"`
	GinMode     string `mapstructure:"GIN_MODE"`
}

var defaults = map[string]any{
	"PORT":             "8080",
	"DATABASE_URL":     "",
	"STORE_DRIVER":     DriverPostgres,
	"JWT_SECRET":       "",
	"ROOM_MAX_MEMBERS": 4,
	"REDIS_ADDR":       "",
	"REDIS_PASSWORD":   "",
	"REDIS_DB":         0,
	"USER_CACHE_TTL":   "10m",
	"PURGE_SCHEDULE":   "@hourly",
	"PURGE_RETENTION":  "24h",
	"LOG_LEVEL":        "info",
	"CORS_ORIGINS":     "",
	"GIN_MODE":         "release",
}

// Load reads the configuration from a .env file in the working directory, if
// any, and from environment variables, which take precedence.
func Load() (*Config, error) {
	return load(".")
}

func load(path string) (*Config, error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	// Every key needs a default so AutomaticEnv picks it up on Unmarshal
	for k, val := range defaults {
		v.SetDefault(k, val)
	}
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
		log.Println("Warning: .env file not found, loading from environment variables")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the settings that have no usable default.
func (c *Config) Validate() error {
	switch c.StoreDriver {
	case DriverPostgres:
		if c.DatabaseURL == "" {
			return errors.New("config: DATABASE_URL is required for the postgres store")
		}
	case DriverMemory:
	default:
		return fmt.Errorf("config: unknown STORE_DRIVER %q", c.StoreDriver)
	}
	if c.JWTSecret == "" {
		return errors.New("config: JWT_SECRET is required")
	}
	if c.RoomMaxMembers <= 0 {
		return fmt.Errorf("config: ROOM_MAX_MEMBERS must be positive, got %d", c.RoomMaxMembers)
	}
	return nil
}

// Origins splits CORS_ORIGINS into its entries.
func (c *Config) Origins() []string {
	var out []string
	for _, o := range strings.Split(c.CORSOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
