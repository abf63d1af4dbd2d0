// Package config loads application configuration from environment variables.
package config

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the application configuration loaded from environment variables.
type Config struct {
	ListenAddr     string
	GitHubUsername string
	GitHubToken    string
	OwnerName      string
	CacheFile      string
	ExclusionFile  string
	MessageLogFile string
	StaticDir      string
	LogLevel       slog.Level
	LogJSON        bool
	SMTP           SMTPConfig
}

// SMTPConfig holds mail relay settings. Username and Password are both
// required for mail delivery; without them contact messages are logged.
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	Recipient string
}

// HasMailCredentials returns true when both SMTP username and password are
// set. The contact relay falls back to the message log otherwise.
func (c *Config) HasMailCredentials() bool {
	return c.SMTP.Username != "" && c.SMTP.Password != ""
}

var defaults = map[string]string{
	"PORTFOLIO_LISTEN_ADDR":     "0.0.0.0:5000",
	"PORTFOLIO_GITHUB_USERNAME": "JatinNirwann",
	"PORTFOLIO_OWNER_NAME":      "Jatin Nirwann",
	"PORTFOLIO_CACHE_FILE":      "repo.txt",
	"PORTFOLIO_EXCLUSION_FILE":  "ignored_repos.txt",
	"PORTFOLIO_MESSAGE_LOG":     "messages.json",
	"PORTFOLIO_STATIC_DIR":      "dist",
	"PORTFOLIO_LOG_LEVEL":       "info",
	"PORTFOLIO_LOG_FORMAT":      "text",
	"SMTP_SERVER":               "smtp.gmail.com",
	"SMTP_PORT":                 "587",
	"RECIPIENT_EMAIL":           "jatinbuilds@outlook.com",
}

// Load reads configuration from environment variables and returns a validated Config.
// Everything is optional. SMTP_EMAIL and SMTP_PASSWORD enable mail delivery;
// PORTFOLIO_GITHUB_TOKEN raises the GitHub rate limit but is not required.
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	for key, val := range defaults {
		v.SetDefault(key, val)
	}

	port, err := strconv.Atoi(strings.TrimSpace(v.GetString("SMTP_PORT")))
	if err != nil || port <= 0 {
		return nil, fmt.Errorf("SMTP_PORT has invalid port %q", v.GetString("SMTP_PORT"))
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(v.GetString("PORTFOLIO_LOG_LEVEL"))); err != nil {
		return nil, fmt.Errorf("PORTFOLIO_LOG_LEVEL has invalid level %q: %w", v.GetString("PORTFOLIO_LOG_LEVEL"), err)
	}

	return &Config{
		ListenAddr:     v.GetString("PORTFOLIO_LISTEN_ADDR"),
		GitHubUsername: v.GetString("PORTFOLIO_GITHUB_USERNAME"),
		GitHubToken:    v.GetString("PORTFOLIO_GITHUB_TOKEN"),
		OwnerName:      v.GetString("PORTFOLIO_OWNER_NAME"),
		CacheFile:      v.GetString("PORTFOLIO_CACHE_FILE"),
		ExclusionFile:  v.GetString("PORTFOLIO_EXCLUSION_FILE"),
		MessageLogFile: v.GetString("PORTFOLIO_MESSAGE_LOG"),
		StaticDir:      v.GetString("PORTFOLIO_STATIC_DIR"),
		LogLevel:       level,
		LogJSON:        strings.EqualFold(v.GetString("PORTFOLIO_LOG_FORMAT"), "json"),
		SMTP: SMTPConfig{
			Host:      v.GetString("SMTP_SERVER"),
			Port:      port,
			Username:  v.GetString("SMTP_EMAIL"),
			Password:  v.GetString("SMTP_PASSWORD"),
			Recipient: v.GetString("RECIPIENT_EMAIL"),
		},
	}, nil
}

// NewLogger builds the process logger from the configured level and format.
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.LogLevel}
	if c.LogJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
