package database

import (
	"strings"
	"testing"
	"time"

	"gorm.io/gorm/logger"
)

func TestBuildDSNPrefersDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://app:secret@db:5432/pmquest")

	if got := buildDSN(); got != "postgres://app:secret@db:5432/pmquest" {
		t.Errorf("buildDSN = %q, want DATABASE_URL verbatim", got)
	}
}

func TestBuildDSNFallbackParameters(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DB_HOST", "pg.internal")
	t.Setenv("DB_NAME", "")

	dsn := buildDSN()
	if !strings.Contains(dsn, "host=pg.internal") {
		t.Errorf("dsn missing host override: %q", dsn)
	}
	if !strings.Contains(dsn, "dbname=pmquest") {
		t.Errorf("dsn missing default db name: %q", dsn)
	}
}

func TestGormLogLevel(t *testing.T) {
	tests := []struct {
		envLevel string
		appEnv   string
		want     logger.LogLevel
	}{
		{"silent", "", logger.Silent},
		{"warn", "", logger.Warn},
		{"", "production", logger.Error},
		{"", "development", logger.Info},
		{"info", "production", logger.Info}, // explicit level wins
	}

	for _, tt := range tests {
		t.Setenv("DB_LOG_LEVEL", tt.envLevel)
		t.Setenv("APP_ENV", tt.appEnv)
		if got := gormLogLevel(); got != tt.want {
			t.Errorf("gormLogLevel(level=%q env=%q) = %v, want %v", tt.envLevel, tt.appEnv, got, tt.want)
		}
	}
}

func TestConnMaxLifetime(t *testing.T) {
	t.Setenv("DB_CONN_MAX_LIFETIME_MIN", "")
	if got := connMaxLifetime(); got != defaultConnMaxLifetime {
		t.Errorf("default lifetime = %v, want %v", got, defaultConnMaxLifetime)
	}

	t.Setenv("DB_CONN_MAX_LIFETIME_MIN", "15")
	if got := connMaxLifetime(); got != 15*time.Minute {
		t.Errorf("lifetime = %v, want 15m", got)
	}

	t.Setenv("DB_CONN_MAX_LIFETIME_MIN", "-3")
	if got := connMaxLifetime(); got != defaultConnMaxLifetime {
		t.Errorf("negative lifetime = %v, want default", got)
	}
}
