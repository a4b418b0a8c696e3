package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-sql-driver/mysql"
)

func TestNew(t *testing.T) {
	cfg := New()

	if cfg.ProjectPath != DefaultProjectPath {
		t.Errorf("expected ProjectPath %s, got %s", DefaultProjectPath, cfg.ProjectPath)
	}

	if cfg.Processors != DefaultProcessors {
		t.Errorf("expected Processors %d, got %d", DefaultProcessors, cfg.Processors)
	}

	if cfg.MySQLDSN != "" {
		t.Errorf("expected MySQL sink disabled by default, got %s", cfg.MySQLDSN)
	}
}

func TestConfig_ApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		flags    Flags
		expected int
	}{
		{"zero keeps default", Flags{}, DefaultProcessors},
		{"positive overrides", Flags{Processors: 3}, 3},
		{"negative ignored", Flags{Processors: -2}, DefaultProcessors},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := New()
			cfg.ApplyFlags(tt.flags)
			if cfg.Processors != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, cfg.Processors)
			}
		})
	}
}

func TestConfig_GetOutputPath(t *testing.T) {
	dir := t.TempDir()
	cfg := New()
	cfg.ProjectPath = dir

	expected := filepath.Join(dir, DefaultOutputJSONDir, DefaultOutputJSONFile)
	if got := cfg.GetOutputPath(); got != expected {
		t.Errorf("expected %s, got %s", expected, got)
	}
}

// unsetenv clears key for the duration of the test, including values set by godotenv
func unsetenv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		prev, had := os.LookupEnv(key)
		os.Unsetenv(key)
		t.Cleanup(func() {
			if had {
				os.Setenv(key, prev)
			} else {
				os.Unsetenv(key)
			}
		})
	}
}

func TestConfig_LoadEnv(t *testing.T) {
	unsetenv(t, EnvProcessors, EnvOutputDir, EnvMySQLDSN, EnvMySQLEnabled,
		"DB_HOST", "DB_PORT", "DB_USERNAME", "DB_PASSWORD", "DB_DATABASE")

	dir := t.TempDir()
	env := "FIBTEST_PROCESSORS=3\nFIBTEST_OUTPUT_DIR=out\nFIBTEST_MYSQL=true\nDB_DATABASE=fibtest\nDB_USERNAME=ci\n"
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte(env), 0644); err != nil {
		t.Fatalf("failed to write .env: %v", err)
	}

	cfg := New()
	cfg.ProjectPath = dir
	cfg.LoadEnv()

	if cfg.Processors != 3 {
		t.Errorf("expected 3 processors from .env, got %d", cfg.Processors)
	}
	if cfg.OutputJSONDir != "out" {
		t.Errorf("expected output dir out, got %s", cfg.OutputJSONDir)
	}

	mc, err := mysql.ParseDSN(cfg.MySQLDSN)
	if err != nil {
		t.Fatalf("invalid DSN %q: %v", cfg.MySQLDSN, err)
	}
	if mc.User != "ci" || mc.DBName != "fibtest" || mc.Addr != "127.0.0.1:3306" {
		t.Errorf("unexpected DSN fields: user=%s db=%s addr=%s", mc.User, mc.DBName, mc.Addr)
	}
}

func TestConfig_LoadEnvExplicitDSN(t *testing.T) {
	unsetenv(t, EnvProcessors, EnvOutputDir, "DB_DATABASE")
	t.Setenv(EnvMySQLDSN, "user:pw@tcp(db:3306)/runs")

	cfg := New()
	cfg.ProjectPath = t.TempDir()
	cfg.LoadEnv()

	if cfg.MySQLDSN != "user:pw@tcp(db:3306)/runs" {
		t.Errorf("expected explicit DSN, got %s", cfg.MySQLDSN)
	}
	if cfg.Processors != DefaultProcessors {
		t.Errorf("expected default processors without env, got %d", cfg.Processors)
	}
}

func TestConfig_LoadEnvIgnoresDatabaseWithoutOptIn(t *testing.T) {
	unsetenv(t, EnvMySQLDSN, EnvMySQLEnabled, "DB_DATABASE", "DB_USERNAME")

	dir := t.TempDir()
	env := "DB_DATABASE=laravel\nDB_USERNAME=app\n"
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte(env), 0644); err != nil {
		t.Fatalf("failed to write .env: %v", err)
	}

	cfg := New()
	cfg.ProjectPath = dir
	cfg.LoadEnv()

	if cfg.MySQLDSN != "" {
		t.Errorf("expected MySQL sink disabled without %s, got %s", EnvMySQLEnabled, cfg.MySQLDSN)
	}
}

func TestConfig_LoadEnvWithoutDatabase(t *testing.T) {
	unsetenv(t, EnvMySQLDSN, EnvMySQLEnabled, "DB_DATABASE")

	cfg := New()
	cfg.ProjectPath = t.TempDir()
	cfg.LoadEnv()

	if cfg.MySQLDSN != "" {
		t.Errorf("expected empty DSN, got %s", cfg.MySQLDSN)
	}
}
