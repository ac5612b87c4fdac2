package cmapi

import (
	"context"
	"encoding/json"
	"fmt"
)

// ClusterInfo is the subset of an API cluster object cdhctl reports on.
type ClusterInfo struct {
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
	Version     string `json:"version"`
	FullVersion string `json:"fullVersion"`
}

// VersionInfo describes the cluster manager build.
type VersionInfo struct {
	Version   string `json:"version"`
	BuildUser string `json:"buildUser"`
	BuildDate string `json:"buildTimestamp"`
	GitHash   string `json:"gitHash"`
}

// Clusters lists the clusters known to the cluster manager.
func (c *Client) Clusters(ctx context.Context) ([]ClusterInfo, error) {
	resp, err := c.Resource("clusters").Get(ctx, "", nil)
	if err != nil {
		return nil, err
	}
	var page struct {
		Items []ClusterInfo `json:"items"`
	}
	if err := json.Unmarshal(resp.Body, &page); err != nil {
		return nil, fmt.Errorf("parse clusters response: %w", err)
	}
	return page.Items, nil
}

// Version returns the cluster manager version.
func (c *Client) Version(ctx context.Context) (*VersionInfo, error) {
	resp, err := c.Resource("cm").Get(ctx, "version", nil)
	if err != nil {
		return nil, err
	}
	var v VersionInfo
	if err := json.Unmarshal(resp.Body, &v); err != nil {
		return nil, fmt.Errorf("parse version response: %w", err)
	}
	return &v, nil
}
