// Package config loads environment-driven configuration for the driver
// layers (cmd/simulate, httpapi). The core packages take plain Go values and
// never read config themselves.
package config

import (
	"fmt"
	"runtime"

	"github.com/spf13/viper"
)

// Config is the environment-driven configuration shared by the CLI and HTTP
// drivers, upgraded from main.go's NewConfig/getEnv pattern to viper per
// SPEC_FULL.md's AMBIENT STACK.
type Config struct {
	Port string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	Workers        int
	SimulationRuns int
	SeasonRuleset  uint8
}

// Load reads configuration from the environment (prefix SIMCORE_), falling
// back to the teacher's defaults for any unset variable.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("SIMCORE")
	v.AutomaticEnv()

	v.SetDefault("port", "8081")
	v.SetDefault("db_host", "localhost")
	v.SetDefault("db_port", "5432")
	v.SetDefault("db_user", "baseball_user")
	v.SetDefault("db_password", "baseball_pass")
	v.SetDefault("db_name", "baseball_sim")
	v.SetDefault("workers", runtime.NumCPU())
	v.SetDefault("simulation_runs", 1000)
	v.SetDefault("season_ruleset", 14)

	season := v.GetUint32("season_ruleset")
	if season < 11 || season > 23 {
		return nil, fmt.Errorf("config: season_ruleset %d out of supported range 11-23", season)
	}

	return &Config{
		Port:           v.GetString("port"),
		DBHost:         v.GetString("db_host"),
		DBPort:         v.GetString("db_port"),
		DBUser:         v.GetString("db_user"),
		DBPassword:     v.GetString("db_password"),
		DBName:         v.GetString("db_name"),
		Workers:        v.GetInt("workers"),
		SimulationRuns: v.GetInt("simulation_runs"),
		SeasonRuleset:  uint8(season),
	}, nil
}

// DSN builds a postgres connection string from the configured DB fields.
func (c *Config) DSN() string {
	return fmt.Sprintf("postgresql://%s:%s@%s:%s/%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName)
}
