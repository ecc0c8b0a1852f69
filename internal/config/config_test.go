package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("BUNDY_ENDPOINT", "")
	t.Setenv("BUNDY_TIMEOUT_SECONDS", "")
	t.Setenv("BUNDY_LOG_FILE", "")

	cfg := Load()
	assert.Equal(t, DefaultTimeout, cfg.Timeout)
	assert.NotEmpty(t, cfg.LogFile)
	assert.False(t, cfg.Configured())
}

func TestLoadTimeoutOverride(t *testing.T) {
	t.Setenv("BUNDY_TIMEOUT_SECONDS", "5")
	cfg := Load()
	assert.Equal(t, 5*time.Second, cfg.Timeout)
}

func TestLoadTimeoutIgnoresGarbage(t *testing.T) {
	for _, raw := range []string{"abc", "-3", "0"} {
		t.Setenv("BUNDY_TIMEOUT_SECONDS", raw)
		cfg := Load()
		assert.Equal(t, DefaultTimeout, cfg.Timeout, "raw=%q", raw)
	}
}

func TestConfigured(t *testing.T) {
	cases := []struct {
		endpoint string
		want     bool
	}{
		{"", false},
		{"   ", false},
		{"https://script.example.com/macros/s/abc/exec", true},
		{"https://script.example.com/macros/s/YOUR_GAS_ID/exec", false},
		{"YOUR_WEB_APP_URL", false},
	}
	for _, tc := range cases {
		t.Setenv("BUNDY_ENDPOINT", tc.endpoint)
		cfg := Load()
		assert.Equal(t, tc.want, cfg.Configured(), "endpoint=%q", tc.endpoint)
	}
}
