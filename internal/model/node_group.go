package model

// NodeGroup is a named group of homogeneous instances running the same processes.
type NodeGroup struct {
	ID             string     `json:"id" yaml:"id"`
	Name           string     `json:"name" yaml:"name"`
	FlavorID       string     `json:"flavor_id,omitempty" yaml:"flavor_id,omitempty"`
	NodeProcesses  []string   `json:"node_processes" yaml:"node_processes"`
	Count          int        `json:"count" yaml:"count"`
	VolumesPerNode int        `json:"volumes_per_node,omitempty" yaml:"volumes_per_node,omitempty"`
	VolumesSize    int        `json:"volumes_size,omitempty" yaml:"volumes_size,omitempty"` // GB per volume
	NodeConfigs    Configs    `json:"node_configs,omitempty" yaml:"node_configs,omitempty"`
	Instances      []Instance `json:"instances,omitempty" yaml:"instances,omitempty"`
}

type Instance struct {
	ID           string `json:"id" yaml:"id"`
	Name         string `json:"name" yaml:"name"`
	ManagementIP string `json:"management_ip,omitempty" yaml:"management_ip,omitempty"`
	InternalIP   string `json:"internal_ip,omitempty" yaml:"internal_ip,omitempty"`
}

// Runs reports whether the node group runs process.
func (ng *NodeGroup) Runs(process string) bool {
	for _, p := range ng.NodeProcesses {
		if p == process {
			return true
		}
	}
	return false
}
