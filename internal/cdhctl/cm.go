package cdhctl

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/edvin/cdhplugin/internal/cmapi"
	"github.com/edvin/cdhplugin/internal/config"
)

// NewCMClient builds a cluster manager client from the CM_* settings.
func NewCMClient(cfg *config.Config, logger zerolog.Logger) (*cmapi.Client, error) {
	if err := cfg.Validate("cdhctl-cm"); err != nil {
		return nil, err
	}
	client := cmapi.NewClient(cfg.CMAPIURL, cfg.CMUsername, cfg.CMPassword, cfg.CMTimeout, logger)

	tlsCfg, err := cfg.CMTLS()
	if err != nil {
		return nil, err
	}
	if tlsCfg != nil {
		client.HTTPClient = &http.Client{
			Timeout:   cfg.CMTimeout,
			Transport: &http.Transport{TLSClientConfig: tlsCfg},
		}
	}
	return client, nil
}

// CMClusters prints the cluster manager version and the clusters it manages.
func CMClusters(ctx context.Context, cfg *config.Config, out io.Writer, logger zerolog.Logger) error {
	client, err := NewCMClient(cfg, logger)
	if err != nil {
		return err
	}

	version, err := client.Version(ctx)
	if err != nil {
		return fmt.Errorf("cluster manager version: %w", err)
	}
	clusters, err := client.Clusters(ctx)
	if err != nil {
		return fmt.Errorf("list clusters: %w", err)
	}

	fmt.Fprintf(out, "cluster manager %s at %s\n", version.Version, cfg.CMAPIURL)
	if len(clusters) == 0 {
		fmt.Fprintln(out, "  no clusters")
		return nil
	}
	for _, c := range clusters {
		fmt.Fprintf(out, "  %-24s %-32s %s\n", c.Name, c.DisplayName, c.FullVersion)
	}
	return nil
}
