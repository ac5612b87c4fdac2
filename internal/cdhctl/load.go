package cdhctl

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/edvin/cdhplugin/internal/model"
	"github.com/edvin/cdhplugin/internal/platform"
)

// LoadCluster reads a cluster definition. Node groups without an ID get a
// generated one, and instances are synthesized from the count when the file
// lists none.
func LoadCluster(path string) (*ClusterFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read cluster definition: %w", err)
	}

	var f ClusterFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	c := &f.Cluster
	if c.Name == "" {
		return nil, fmt.Errorf("%s: cluster.name is required", path)
	}
	if len(c.NodeGroups) == 0 {
		return nil, fmt.Errorf("%s: cluster %s has no node groups", path, c.Name)
	}

	for i := range c.NodeGroups {
		ng := &c.NodeGroups[i]
		if ng.Name == "" {
			return nil, fmt.Errorf("%s: node group %d has no name", path, i)
		}
		if ng.ID == "" {
			ng.ID = platform.NewNodeGroupID()
		}
		if len(ng.Instances) == 0 {
			for j := 1; j <= ng.Count; j++ {
				ng.Instances = append(ng.Instances, instance(c.Name, ng.Name, j))
			}
		}
	}
	return &f, nil
}

func instance(clusterName, groupName string, index int) model.Instance {
	return model.Instance{
		ID:   platform.NewID(),
		Name: platform.InstanceHostname(clusterName, groupName, index),
	}
}
