package cdhctl

import "github.com/edvin/cdhplugin/internal/model"

// ClusterFile is a cluster definition as written by operators. APIURL and
// APIKey are only read by the remote command.
type ClusterFile struct {
	APIURL  string        `yaml:"api_url"`
	APIKey  string        `yaml:"api_key"`
	Cluster model.Cluster `yaml:"cluster"`
}
