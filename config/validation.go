package config

import (
	"fmt"
	"strings"
)

// ValidateConfig rejects configurations that cannot possibly start.
func ValidateConfig(cfg *Config) error {
	var missing []string
	if cfg.DBHost == "" {
		missing = append(missing, "db_host")
	}
	if cfg.DBUser == "" {
		missing = append(missing, "db_user")
	}
	if cfg.DBName == "" {
		missing = append(missing, "db_name")
	}
	if cfg.JWTSecret == "" {
		missing = append(missing, "jwt_secret")
	}
	if cfg.RedisHost == "" && cfg.RedisURL == "" {
		missing = append(missing, "redis_host")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}
	return nil
}
