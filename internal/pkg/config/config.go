package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port         string `env:"PORT,          default=8080"`
	Env          string `env:"ENV,           default=development"`
	LogLevel     string `env:"LOG_LEVEL,     default=info"`
	ClientOrigin string `env:"CLIENT_ORIGIN, default=http://localhost:5173"`

	Token TokenConfig
	Mongo MongoConfig
	Redis RedisConfig
	Admin AdminConfig
}

type TokenConfig struct {
	AccessSecret  string        `env:"JWT_ACCESS_SECRET,  required"`
	RefreshSecret string        `env:"JWT_REFRESH_SECRET, required"`
	AccessTTL     time.Duration `env:"ACCESS_TOKEN_TTL,   default=15m"`
	RefreshTTL    time.Duration `env:"REFRESH_TOKEN_TTL,  default=168h"`
	// AdminRefresh lets admin sessions fall back to the refresh cookie.
	AdminRefresh bool `env:"ADMIN_REFRESH_ENABLED, default=false"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=user_management"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR,     default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,       default=0"`
}

// AdminConfig describes the optional bootstrap administrator.
type AdminConfig struct {
	Name     string `env:"ADMIN_NAME,  default=Admin"`
	Email    string `env:"ADMIN_EMAIL"`
	Password string `env:"ADMIN_PASSWORD"`
	Image    string `env:"ADMIN_IMAGE, default=https://ui-avatars.com/api/admin.png"`
}

// Enabled reports whether a bootstrap admin should be seeded.
func (a AdminConfig) Enabled() bool {
	return a.Email != "" && a.Password != ""
}

// IsProduction reports whether cookies must carry the Secure attribute.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	cfg, err := LoadWith(context.Background(), envconfig.OsLookuper())
	if err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return cfg
}

// LoadWith reads configuration from the given lookuper.
func LoadWith(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: l,
	}); err != nil {
		return nil, err
	}
	return &cfg, nil
}
