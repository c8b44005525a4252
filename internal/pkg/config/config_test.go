package config

import (
	"context"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
)

func TestLoadWith_Defaults(t *testing.T) {
	cfg, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{
		"JWT_ACCESS_SECRET":  "a",
		"JWT_REFRESH_SECRET": "r",
	}))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Port != "8080" || cfg.Env != "development" || cfg.ClientOrigin != "http://localhost:5173" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.Token.AccessTTL != 15*time.Minute || cfg.Token.RefreshTTL != 7*24*time.Hour {
		t.Fatalf("unexpected token ttls: %+v", cfg.Token)
	}
	if cfg.Token.AdminRefresh {
		t.Fatalf("admin refresh must default to off")
	}
	if cfg.Admin.Enabled() {
		t.Fatalf("bootstrap admin must be disabled without credentials")
	}
	if cfg.IsProduction() {
		t.Fatalf("development is not production")
	}
}

func TestLoadWith_RequiresSecrets(t *testing.T) {
	if _, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{})); err == nil {
		t.Fatalf("expected error when JWT secrets are missing")
	}
}

func TestLoadWith_Overrides(t *testing.T) {
	cfg, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{
		"JWT_ACCESS_SECRET":     "a",
		"JWT_REFRESH_SECRET":    "r",
		"ENV":                   "production",
		"ACCESS_TOKEN_TTL":      "5m",
		"ADMIN_REFRESH_ENABLED": "true",
		"ADMIN_EMAIL":           "root@example.com",
		"ADMIN_PASSWORD":        "Adm1n!pass",
		"REDIS_DB":              "2",
	}))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if !cfg.IsProduction() || cfg.Token.AccessTTL != 5*time.Minute || !cfg.Token.AdminRefresh {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if !cfg.Admin.Enabled() || cfg.Redis.DB != 2 {
		t.Fatalf("unexpected admin/redis config: %+v %+v", cfg.Admin, cfg.Redis)
	}
}
