package model

// Cluster is a read-only view of a CDH cluster as supplied by the orchestrator.
// The validation engine never mutates it.
type Cluster struct {
	ID             string      `json:"id" yaml:"id"`
	Name           string      `json:"name" yaml:"name"`
	PluginVersion  string      `json:"plugin_version" yaml:"plugin_version"`
	NodeGroups     []NodeGroup `json:"node_groups" yaml:"node_groups"`
	ClusterConfigs Configs     `json:"cluster_configs,omitempty" yaml:"cluster_configs,omitempty"`
	AntiAffinity   []string    `json:"anti_affinity,omitempty" yaml:"anti_affinity,omitempty"`
}

// NodeGroup returns the node group with the given ID.
func (c *Cluster) NodeGroup(id string) (*NodeGroup, bool) {
	for i := range c.NodeGroups {
		if c.NodeGroups[i].ID == id {
			return &c.NodeGroups[i], true
		}
	}
	return nil, false
}

// HasAntiAffinity reports whether process is in the cluster's anti-affinity list.
func (c *Cluster) HasAntiAffinity(process string) bool {
	for _, p := range c.AntiAffinity {
		if p == process {
			return true
		}
	}
	return false
}
