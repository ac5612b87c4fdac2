package request

import (
	"encoding/json"

	"github.com/edvin/cdhplugin/internal/model"
)

type NodeGroup struct {
	ID             string           `json:"id" validate:"required,max=255"`
	Name           string           `json:"name" validate:"required,max=255"`
	FlavorID       string           `json:"flavor_id"`
	NodeProcesses  []string         `json:"node_processes" validate:"dive,process"`
	Count          int              `json:"count" validate:"min=0"`
	VolumesPerNode int              `json:"volumes_per_node" validate:"min=0"`
	VolumesSize    int              `json:"volumes_size" validate:"min=0"`
	NodeConfigs    model.Configs    `json:"node_configs"`
	Instances      []model.Instance `json:"instances"`
}

type Cluster struct {
	ID             string        `json:"id" validate:"max=255"`
	Name           string        `json:"name" validate:"required,max=255"`
	PluginVersion  string        `json:"plugin_version" validate:"omitempty,semver"`
	NodeGroups     []NodeGroup   `json:"node_groups" validate:"required,min=1,dive"`
	ClusterConfigs model.Configs `json:"cluster_configs"`
	AntiAffinity   []string      `json:"anti_affinity" validate:"dive,process"`
}

type ValidateCluster struct {
	Cluster *Cluster `json:"cluster" validate:"required"`
}

type ValidateScaling struct {
	Cluster    *Cluster       `json:"cluster" validate:"required"`
	NodeGroups map[string]int `json:"node_groups" validate:"required,min=1,dive,keys,required,endkeys,min=0"`
}

// Model converts the payload into the topology model. Numeric config values
// decoded as json.Number become int64 or float64.
func (c *Cluster) Model() *model.Cluster {
	out := &model.Cluster{
		ID:             c.ID,
		Name:           c.Name,
		PluginVersion:  c.PluginVersion,
		ClusterConfigs: normalizeConfigs(c.ClusterConfigs),
		AntiAffinity:   c.AntiAffinity,
	}
	for _, ng := range c.NodeGroups {
		out.NodeGroups = append(out.NodeGroups, model.NodeGroup{
			ID:             ng.ID,
			Name:           ng.Name,
			FlavorID:       ng.FlavorID,
			NodeProcesses:  ng.NodeProcesses,
			Count:          ng.Count,
			VolumesPerNode: ng.VolumesPerNode,
			VolumesSize:    ng.VolumesSize,
			NodeConfigs:    normalizeConfigs(ng.NodeConfigs),
			Instances:      ng.Instances,
		})
	}
	return out
}

func normalizeConfigs(in model.Configs) model.Configs {
	if in == nil {
		return nil
	}
	out := make(model.Configs, len(in))
	for service, opts := range in {
		m := make(map[string]any, len(opts))
		for k, v := range opts {
			if n, ok := v.(json.Number); ok {
				if i, err := n.Int64(); err == nil {
					v = i
				} else if f, err := n.Float64(); err == nil {
					v = f
				}
			}
			m[k] = v
		}
		out[service] = m
	}
	return out
}
