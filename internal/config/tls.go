package config

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"os"
)

// CMTLS builds the *tls.Config for the cluster manager API client.
// Returns nil, nil if nothing TLS-related is configured.
func (c *Config) CMTLS() (*tls.Config, error) {
	if c.CMTLSCert == "" && c.CMTLSKey == "" && c.CMTLSCACert == "" && c.CMTLSServerName == "" {
		return nil, nil
	}

	tlsConfig := &tls.Config{MinVersion: tls.VersionTLS12}

	if c.CMTLSCert != "" || c.CMTLSKey != "" {
		cert, err := tls.LoadX509KeyPair(c.CMTLSCert, c.CMTLSKey)
		if err != nil {
			return nil, fmt.Errorf("load cluster manager client cert: %w", err)
		}
		tlsConfig.Certificates = []tls.Certificate{cert}
	}

	if c.CMTLSCACert != "" {
		caPEM, err := os.ReadFile(c.CMTLSCACert)
		if err != nil {
			return nil, fmt.Errorf("read cluster manager CA cert: %w", err)
		}
		pool := x509.NewCertPool()
		if !pool.AppendCertsFromPEM(caPEM) {
			return nil, fmt.Errorf("failed to parse cluster manager CA cert")
		}
		tlsConfig.RootCAs = pool
	}

	if c.CMTLSServerName != "" {
		tlsConfig.ServerName = c.CMTLSServerName
	}

	return tlsConfig, nil
}
