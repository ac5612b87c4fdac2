package validation

import (
	"fmt"
	"sort"
	"strings"

	"github.com/edvin/cdhplugin/internal/model"
)

// ValidateAdditionalNGScaling checks a request to bring newly added node groups
// up to the given instance counts.
func (v *Validator) ValidateAdditionalNGScaling(c *model.Cluster, additional map[string]int) error {
	if err := checkStructure(c); err != nil {
		return err
	}
	groups, err := v.scaledGroups(c, additional)
	if err != nil {
		return err
	}
	current := newTopology(c, nil)
	for _, ng := range groups {
		for _, r := range v.rules.ScalingMasters {
			if ng.Runs(r.Process) && current.count(r.Master) == 0 {
				return &NodeGroupCannotBeScaledError{
					NodeGroup: ng.Name,
					Reason:    fmt.Sprintf("%s has no %s running in the cluster", r.Process, r.Master),
				}
			}
		}
	}
	return v.revalidate(newTopology(c, additional))
}

// ValidateExistingNGScaling checks a request to resize node groups already in
// the cluster to the given instance counts.
func (v *Validator) ValidateExistingNGScaling(c *model.Cluster, existing map[string]int) error {
	if err := checkStructure(c); err != nil {
		return err
	}
	if _, err := v.scaledGroups(c, existing); err != nil {
		return err
	}
	projected := newTopology(c, existing)

	if v.rules.ReplicatedProcess != "" {
		replicas, ok, err := c.ClusterConfigs.Int(v.rules.Replication.Service, v.rules.Replication.Name)
		if err != nil {
			return err
		}
		if ok && projected.count(v.rules.ReplicatedProcess) < replicas {
			return &ClusterCannotBeScaledError{
				Cluster: c.Name,
				Reason: fmt.Sprintf("number of %s instances (%d) must be not less than %s (%d)",
					v.rules.ReplicatedProcess, projected.count(v.rules.ReplicatedProcess), v.rules.Replication.Name, replicas),
			}
		}
	}
	return v.revalidate(projected)
}

// scaledGroups resolves the node groups named in targets, rejecting unknown
// IDs, negative counts and groups that run a process outside the scalable set.
func (v *Validator) scaledGroups(c *model.Cluster, targets map[string]int) ([]*model.NodeGroup, error) {
	ids := make([]string, 0, len(targets))
	for id := range targets {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		if _, ok := c.NodeGroup(id); !ok {
			return nil, &NodeGroupCannotBeScaledError{NodeGroup: id, Reason: "node group not found"}
		}
		if targets[id] < 0 {
			return nil, &NodeGroupCannotBeScaledError{NodeGroup: id, Reason: "instance count must not be negative"}
		}
	}

	scalable := make(map[string]bool, len(v.rules.Scalable))
	for _, p := range v.rules.Scalable {
		scalable[p] = true
	}

	var groups []*model.NodeGroup
	for i := range c.NodeGroups {
		ng := &c.NodeGroups[i]
		if _, ok := targets[ng.ID]; !ok {
			continue
		}
		for _, p := range ng.NodeProcesses {
			if !scalable[p] {
				return nil, &NodeGroupCannotBeScaledError{
					NodeGroup: ng.Name,
					Reason:    "cannot scale node group with processes: " + strings.Join(ng.NodeProcesses, " "),
				}
			}
		}
		groups = append(groups, ng)
	}
	return groups, nil
}

// revalidate re-runs the rules that depend on instance counts but not on the
// creation-time minimums against a projected topology.
func (v *Validator) revalidate(t topology) error {
	phases := []func(topology) error{
		v.checkDependencies,
		v.checkAntiAffinity,
		v.checkColocation,
	}
	for _, phase := range phases {
		if err := phase(t); err != nil {
			return err
		}
	}
	return nil
}
