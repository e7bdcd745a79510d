package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {

	// Test cases
	tests := []struct {
		expected  *Config
		name      string
		args      []string
		expectErr bool
	}{
		{name: "all flags", args: []string{
			"-a", "127.0.0.1:9090", "-w", "127.0.0.1:8080", "-d", "db", "-k", "sqlite", "-s", "secret",
			"-t", "15", "-b", "12", "-o", "https://app.example", "-l", "warn",
		},
			expected: &Config{
				EndpointAddrGRPC:            "127.0.0.1:9090",
				EndpointAddrHTTP:            "127.0.0.1:8080",
				DatabaseDSN:                 "db",
				DatabaseDriver:              "sqlite",
				SecretKey:                   "secret",
				AccessTokenValidityDuration: 15 * time.Minute,
				BcryptCost:                  12,
				CORSOrigin:                  "https://app.example",
				LogLevel:                    "warn",
			}},
		{name: "foreign flags are ignored", args: []string{"-c", "cfg.json", "-x", "1", "-s=abc"},
			expected: &Config{SecretKey: "abc"}},
		{name: "bad int", args: []string{"-b", "many"}, expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := &Config{}
			err := parseFlags(config, tt.args)

			if tt.expectErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)

			if diff := cmp.Diff(tt.expected, config); diff != "" {
				t.Errorf("config mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseFlags_KeepsSubMinuteDurationWithoutT(t *testing.T) {
	config := &Config{AccessTokenValidityDuration: 30 * time.Second}
	require.NoError(t, parseFlags(config, []string{"-s", "x"}))
	assert.Equal(t, 30*time.Second, config.AccessTokenValidityDuration)
}
