package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	cfg, err := Load(Options{})
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Database.Driver != DriverPostgres || cfg.Database.Name != "cms_db" || cfg.Database.Port != 5432 {
		t.Fatalf("unexpected defaults: %+v", cfg.Database)
	}
	if got := cfg.Database.DSN(); got != "postgres://postgres:@localhost:5432/cms_db?sslmode=disable" {
		t.Fatalf("unexpected DSN: %s", got)
	}
	if cfg.Log.Level != "info" || cfg.Addr != ":8080" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadDatabaseURLFallback(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://app:secret@db:5432/tracker")

	cfg, err := Load(Options{})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Database.DSN() != "postgres://app:secret@db:5432/tracker" {
		t.Fatalf("expected DATABASE_URL to be used, got %s", cfg.Database.DSN())
	}
}

func TestLoadDatabaseURLIgnoredForSQLite(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://app:secret@db:5432/tracker")
	t.Setenv("EMPTRACK_DATABASE_DRIVER", "sqlite")

	cfg, err := Load(Options{})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Database.URL != "" {
		t.Fatalf("expected DATABASE_URL to be ignored for sqlite, got %s", cfg.Database.URL)
	}
	if got := cfg.Database.DSN(); got != "cms_db.db?_foreign_keys=on" {
		t.Fatalf("unexpected sqlite DSN: %s", got)
	}
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	t.Setenv("EMPTRACK_DATABASE_HOST", "db.internal")
	t.Setenv("EMPTRACK_LOG_LEVEL", "debug")

	cfg, err := Load(Options{})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Database.Host != "db.internal" || cfg.Log.Level != "debug" {
		t.Fatalf("expected env overrides, got %+v", cfg)
	}
}

func TestLoadConfigFileAndFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "emptrack.yaml")
	content := "database:\n  driver: sqlite\n  url: /tmp/from-file.db\nlog:\n  level: warn\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("db-url", "", "")
	flags.String("log-level", "info", "")
	if err := flags.Parse([]string{"--db-url", "/tmp/from-flag.db"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}

	cfg, err := Load(Options{ConfigFile: path, Flags: flags})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Database.Driver != DriverSQLite {
		t.Fatalf("expected driver from file, got %s", cfg.Database.Driver)
	}
	if cfg.Database.URL != "/tmp/from-flag.db" {
		t.Fatalf("expected flag to win over file, got %s", cfg.Database.URL)
	}
	if cfg.Log.Level != "warn" {
		t.Fatalf("expected unchanged flag to leave file value, got %s", cfg.Log.Level)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(Options{ConfigFile: filepath.Join(t.TempDir(), "missing.yaml")})
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestLoadRejectsUnknownDriver(t *testing.T) {
	t.Setenv("EMPTRACK_DATABASE_DRIVER", "oracle")

	if _, err := Load(Options{}); err == nil || !strings.Contains(err.Error(), "unsupported") {
		t.Fatalf("expected unsupported driver error, got %v", err)
	}
}

func TestSQLiteDSN(t *testing.T) {
	cases := map[string]string{
		"":                         "cms_db.db?_foreign_keys=on",
		"/data/app.db":             "/data/app.db?_foreign_keys=on",
		"file:app.db?cache=shared": "file:app.db?cache=shared&_foreign_keys=on",
		"app.db?_foreign_keys=off": "app.db?_foreign_keys=off",
	}
	for url, want := range cases {
		d := Database{Driver: DriverSQLite, URL: url, Name: "cms_db"}
		if got := d.DSN(); got != want {
			t.Errorf("DSN(%q) = %q, want %q", url, got, want)
		}
	}
}
