package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

type Config struct {
	HTTPListenAddr string
	DatabaseURL    string
	MigrationsDir  string
	LogLevel       string
	// APIKey, when set, is required in the X-API-Key header of every /api/v1 request.
	APIKey        string
	PluginVersion string
	ServiceName   string

	CMAPIURL   string
	CMUsername string
	CMPassword string
	CMTimeout  time.Duration

	CMTLSCert       string
	CMTLSKey        string
	CMTLSCACert     string
	CMTLSServerName string
}

func Load() (*Config, error) {
	cfg := &Config{
		HTTPListenAddr:  getEnv("HTTP_LISTEN_ADDR", ":8090"),
		DatabaseURL:     getEnv("DATABASE_URL", ""),
		MigrationsDir:   getEnv("MIGRATIONS_DIR", "migrations/core"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		APIKey:          getEnv("API_KEY", ""),
		PluginVersion:   getEnv("PLUGIN_VERSION", "5.11.0"),
		ServiceName:     getEnv("SERVICE_NAME", "cdh-validator"),
		CMAPIURL:        getEnv("CM_API_URL", ""),
		CMUsername:      getEnv("CM_USERNAME", "admin"),
		CMPassword:      getEnv("CM_PASSWORD", ""),
		CMTLSCert:       getEnv("CM_TLS_CERT", ""),
		CMTLSKey:        getEnv("CM_TLS_KEY", ""),
		CMTLSCACert:     getEnv("CM_TLS_CA_CERT", ""),
		CMTLSServerName: getEnv("CM_TLS_SERVER_NAME", ""),
	}

	timeout, err := time.ParseDuration(getEnv("CM_TIMEOUT", "30s"))
	if err != nil {
		return nil, fmt.Errorf("parse CM_TIMEOUT: %w", err)
	}
	cfg.CMTimeout = timeout

	return cfg, nil
}

// Validate checks that every setting the named component needs is present.
func (c *Config) Validate(component string) error {
	var missing []string
	need := func(value, key string) {
		if value == "" {
			missing = append(missing, key)
		}
	}

	switch component {
	case "validator-api":
		need(c.DatabaseURL, "DATABASE_URL")
		need(c.HTTPListenAddr, "HTTP_LISTEN_ADDR")
		need(c.PluginVersion, "PLUGIN_VERSION")
	case "cdhctl-cm":
		need(c.CMAPIURL, "CM_API_URL")
		need(c.CMUsername, "CM_USERNAME")
		need(c.CMPassword, "CM_PASSWORD")
	default:
		return fmt.Errorf("unknown component %q", component)
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required config for %s: %s", component, strings.Join(missing, ", "))
	}
	if (c.CMTLSCert == "") != (c.CMTLSKey == "") {
		return fmt.Errorf("CM_TLS_CERT and CM_TLS_KEY must both be set")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
