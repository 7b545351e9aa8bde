package config

import (
	"os"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"SIMCORE_PORT", "SIMCORE_DB_HOST", "SIMCORE_DB_PORT", "SIMCORE_DB_USER",
		"SIMCORE_DB_PASSWORD", "SIMCORE_DB_NAME", "SIMCORE_WORKERS",
		"SIMCORE_SIMULATION_RUNS", "SIMCORE_SEASON_RULESET",
	} {
		os.Unsetenv(key)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if cfg.Port != "8081" {
		t.Errorf("Port = %q, want 8081", cfg.Port)
	}
	if cfg.SeasonRuleset != 14 {
		t.Errorf("SeasonRuleset = %d, want 14", cfg.SeasonRuleset)
	}
	if cfg.Workers <= 0 {
		t.Errorf("Workers = %d, want > 0", cfg.Workers)
	}
}

func TestLoadRejectsOutOfRangeSeason(t *testing.T) {
	os.Setenv("SIMCORE_SEASON_RULESET", "99")
	defer os.Unsetenv("SIMCORE_SEASON_RULESET")

	if _, err := Load(); err == nil {
		t.Fatal("Load() with season_ruleset=99 should have failed")
	}
}

func TestDSN(t *testing.T) {
	cfg := &Config{
		DBUser: "u", DBPassword: "p", DBHost: "h", DBPort: "5432", DBName: "d",
	}
	want := "postgresql://u:p@h:5432/d"
	if got := cfg.DSN(); got != want {
		t.Errorf("DSN() = %q, want %q", got, want)
	}
}
