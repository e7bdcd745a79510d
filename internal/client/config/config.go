package config

import (
	"os"
	"path/filepath"
	"time"
)

// Config holds runtime settings for the gophauth CLI.
//
// Fields:
//   - ServerEndpointAddr: host:port of the backend gRPC endpoint.
//   - TokenFile: where the session token is kept between invocations.
//   - RequestTimeout: deadline applied to each server call.
type Config struct {
	ServerEndpointAddr string
	TokenFile          string
	RequestTimeout     time.Duration
}

// userConfigDir is a seam for os.UserConfigDir.
var userConfigDir = os.UserConfigDir

// DefaultTokenFile returns <user config dir>/gophauth/token, falling back to
// the working directory when the user config dir is unknown.
func DefaultTokenFile() string {
	dir, err := userConfigDir()
	if err != nil || dir == "" {
		return filepath.Join(".gophauth", "token")
	}
	return filepath.Join(dir, "gophauth", "token")
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.TokenFile = DefaultTokenFile()
	c.RequestTimeout = 10 * time.Second
}

// LoadConfig constructs a Config from args (without the program name),
// applying defaults, then JSON (if present) and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	return cfg, nil
}
