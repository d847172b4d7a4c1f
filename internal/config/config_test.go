package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestDecodeAppliesDefaults(t *testing.T) {
	cfg, err := Decode(viper.New())
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if cfg.Database.Driver != "sqlite" || cfg.Database.DSN != "./db/orders.db" {
		t.Fatalf("unexpected database defaults: %+v", cfg.Database)
	}
	if cfg.Admin.Role != "staff" {
		t.Fatalf("unexpected admin role default: %s", cfg.Admin.Role)
	}
	if !cfg.Order.HistoryAudit.Enabled || cfg.Order.HistoryAudit.IntervalSeconds != 300 {
		t.Fatalf("unexpected history audit defaults: %+v", cfg.Order.HistoryAudit)
	}
	if cfg.Database.SlowQueryDuration() != 200*time.Millisecond {
		t.Fatalf("unexpected slow query threshold: %s", cfg.Database.SlowQueryDuration())
	}
	if cfg.Queue.Queues["default"] != 10 {
		t.Fatalf("unexpected queue weights: %+v", cfg.Queue.Queues)
	}
}

func TestDecodeReadsEnvironmentOverrides(t *testing.T) {
	t.Setenv("DATABASE_DRIVER", "postgres")
	t.Setenv("ADMIN_ROLE", "auditor")
	t.Setenv("ORDER_HISTORY_AUDIT_BATCH_SIZE", "50")

	cfg, err := Decode(viper.New())
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if cfg.Database.Driver != "postgres" {
		t.Fatalf("env should override driver, got=%s", cfg.Database.Driver)
	}
	if cfg.Admin.Role != "auditor" {
		t.Fatalf("env should override admin role, got=%s", cfg.Admin.Role)
	}
	if cfg.Order.HistoryAudit.BatchSize != 50 {
		t.Fatalf("env should override batch size, got=%d", cfg.Order.HistoryAudit.BatchSize)
	}
}

func TestLogConfigToLoggerOptions(t *testing.T) {
	options := LogConfig{Level: "warn", Dir: "/tmp/logs", Console: true}.ToLoggerOptions()
	if options.Level != "warn" || options.Dir != "/tmp/logs" || !options.Console {
		t.Fatalf("unexpected logger options: %+v", options)
	}
}
