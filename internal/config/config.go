// Package config provides layered configuration for the keeper CLI and
// web server. Precedence (highest to lowest): flags > env vars >
// config file > defaults.
package config

import "path/filepath"

// Config holds all runtime configuration.
type Config struct {
	DataDir       string `koanf:"data_dir"`
	DraftFile     string `koanf:"draft_file"`
	RankingsFile  string `koanf:"rankings_file"`
	Port          int    `koanf:"port"`
	Watch         bool   `koanf:"watch"`
	SessionSecret string `koanf:"session_secret"`
	Verbose       bool   `koanf:"verbose"`
	OutputFormat  string `koanf:"output"`
}

// Default configuration values.
const (
	DefaultDataDir      = "data"
	DefaultDraftFile    = "draft_results.json"
	DefaultRankingsFile = "fantasy_pros.csv"
	DefaultPort         = 5001
	DefaultOutput       = "auto" // Auto-detect: TTY=text, non-TTY=markdown
)

// DraftPath returns the full path of the draft results file.
func (c *Config) DraftPath() string {
	return filepath.Join(c.DataDir, c.DraftFile)
}

// RankingsPath returns the full path of the rankings CSV.
func (c *Config) RankingsPath() string {
	return filepath.Join(c.DataDir, c.RankingsFile)
}
