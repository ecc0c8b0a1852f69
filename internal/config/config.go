package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultTimeout bounds every endpoint call. The backend is a spreadsheet
// script that can take a while on cold starts, so we use the generous end
// of the range.
const DefaultTimeout = 30 * time.Second

// Placeholder markers that mean "somebody copied the sample config and
// never filled it in". An endpoint containing one of these is treated the
// same as no endpoint at all.
var placeholderMarkers = []string{"YOUR_GAS", "YOUR_WEB_APP_URL"}

// Config holds everything bundy reads from the environment.
type Config struct {
	Endpoint string
	Timeout  time.Duration
	LogFile  string
}

// Load reads configuration from .env (if present) and the environment.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		Endpoint: strings.TrimSpace(os.Getenv("BUNDY_ENDPOINT")),
		Timeout:  DefaultTimeout,
		LogFile:  os.Getenv("BUNDY_LOG_FILE"),
	}

	if raw := os.Getenv("BUNDY_TIMEOUT_SECONDS"); raw != "" {
		if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
			cfg.Timeout = time.Duration(secs) * time.Second
		}
	}

	if cfg.LogFile == "" {
		cfg.LogFile = defaultLogPath()
	}

	return cfg
}

// Configured reports whether a usable endpoint is set. A missing or
// placeholder endpoint is a setup error the UI must surface, never a crash.
func (c Config) Configured() bool {
	if c.Endpoint == "" {
		return false
	}
	for _, marker := range placeholderMarkers {
		if strings.Contains(c.Endpoint, marker) {
			return false
		}
	}
	return true
}

// defaultLogPath returns the log file location under the user's home
// directory, falling back to the working directory if home is unknown.
func defaultLogPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "bundy.log"
	}
	return filepath.Join(homeDir, ".bundy", "bundy.log")
}
