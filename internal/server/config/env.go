package config

import (
	"fmt"
	"strconv"
)

// parseEnv applies the environment variables the service has always honoured:
//
//	PORT             HTTP port (binds ":<PORT>")
//	JWT_SECRET       session token secret
//	DATABASE_DSN     database connection string
//	DATABASE_DRIVER  pgx or sqlite
func parseEnv(config *Config, lookupEnv func(string) (string, bool)) error {
	if v, ok := lookupEnv("PORT"); ok && v != "" {
		if _, err := strconv.ParseUint(v, 10, 16); err != nil {
			return fmt.Errorf("invalid PORT %q", v)
		}
		config.EndpointAddrHTTP = ":" + v
	}
	if v, ok := lookupEnv("JWT_SECRET"); ok && v != "" {
		config.SecretKey = v
	}
	if v, ok := lookupEnv("DATABASE_DSN"); ok && v != "" {
		config.DatabaseDSN = v
	}
	if v, ok := lookupEnv("DATABASE_DRIVER"); ok && v != "" {
		config.DatabaseDriver = v
	}
	return nil
}
