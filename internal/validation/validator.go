package validation

import (
	"fmt"

	"github.com/edvin/cdhplugin/internal/model"
)

// Validator checks cluster topologies against one RuleSet. It holds no mutable
// state and is safe for concurrent use.
type Validator struct {
	rules *RuleSet
}

func NewValidator(rules *RuleSet) *Validator {
	return &Validator{rules: rules}
}

// Version returns the plugin version of the rule table.
func (v *Validator) Version() string {
	return v.rules.Version
}

// NodeProcesses returns the service → processes catalog of the rule table.
func (v *Validator) NodeProcesses() map[string][]string {
	out := make(map[string][]string, len(v.rules.Services))
	for _, s := range v.rules.Services {
		out[s.Name] = append([]string{}, s.Processes...)
	}
	return out
}

// ValidateClusterCreating returns the first violation found in c, checking
// structure, counts, volumes, dependencies, anti-affinity and colocation in
// that order. It returns nil when c can be built.
func (v *Validator) ValidateClusterCreating(c *model.Cluster) error {
	if err := checkStructure(c); err != nil {
		return err
	}
	t := newTopology(c, nil)
	phases := []func(topology) error{
		v.checkCounts,
		v.checkVolumes,
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

func checkStructure(c *model.Cluster) error {
	seen := make(map[string]bool, len(c.NodeGroups))
	for _, ng := range c.NodeGroups {
		if seen[ng.ID] {
			return &InvalidClusterTopologyError{Reason: fmt.Sprintf("duplicate node group id %q", ng.ID)}
		}
		seen[ng.ID] = true
		if ng.Count < 0 {
			return &InvalidClusterTopologyError{Reason: fmt.Sprintf("node group %s has a negative instance count", ng.Name)}
		}
	}
	return nil
}

func (v *Validator) checkCounts(t topology) error {
	for _, r := range v.rules.Counts {
		n := t.count(r.Process)
		if r.WhenPresent && n == 0 {
			continue
		}
		rng := r.Range
		if r.MinFrom != nil {
			floor, ok, err := t.cluster.ClusterConfigs.Int(r.MinFrom.Service, r.MinFrom.Name)
			if err != nil {
				return err
			}
			if ok {
				rng.Min = floor
			}
		}
		if !rng.Contains(n) {
			return &InvalidComponentCountError{Process: r.Process, Expected: rng, Actual: n, Reason: r.Reason}
		}
	}
	return nil
}

func (v *Validator) checkVolumes(t topology) error {
	for _, r := range v.rules.Volumes {
		for i := range t.cluster.NodeGroups {
			ng := &t.cluster.NodeGroups[i]
			if ng.VolumesSize == 0 || !ng.Runs(r.Process) {
				continue
			}
			reserved, err := reservedBytes(t.cluster, ng, r)
			if err != nil {
				return err
			}
			reservedGB := reserved / gib
			if float64(ng.VolumesSize) < reservedGB {
				return &InvalidVolumeSizeError{NodeGroup: ng.Name, VolumeSize: ng.VolumesSize, Reserved: reservedGB}
			}
		}
	}
	return nil
}

// reservedBytes resolves the reserved space for ng: node group override first,
// then the cluster-wide value, then the rule default.
func reservedBytes(c *model.Cluster, ng *model.NodeGroup, r VolumeRule) (float64, error) {
	if v, ok, err := ng.NodeConfigs.Float(r.Reserved.Service, r.Reserved.Name); err != nil || ok {
		return v, err
	}
	if v, ok, err := c.ClusterConfigs.Float(r.Reserved.Service, r.Reserved.Name); err != nil || ok {
		return v, err
	}
	return float64(r.DefaultReserved), nil
}

func (v *Validator) checkDependencies(t topology) error {
	for _, r := range v.rules.Dependencies {
		if t.count(r.Dependent) == 0 || t.count(r.Required) > 0 {
			continue
		}
		if r.AsCount {
			return &InvalidComponentCountError{
				Process:  r.Required,
				Expected: Range{Min: 1, Max: Unbounded},
				Actual:   0,
				Reason:   "required by " + r.requiredBy(),
			}
		}
		return &RequiredServiceMissingError{Process: r.Required, RequiredBy: r.requiredBy()}
	}
	return nil
}

func (v *Validator) checkAntiAffinity(t topology) error {
	required, ok, err := t.cluster.ClusterConfigs.Bool(v.rules.RequireAntiAffinity.Service, v.rules.RequireAntiAffinity.Name)
	if err != nil {
		return err
	}
	if !ok {
		required = v.rules.DefaultAntiAffinity
	}
	if !required {
		return nil
	}
	for _, r := range v.rules.AntiAffinity {
		if t.count(r.Trigger) == 0 {
			continue
		}
		for _, p := range r.Processes {
			if !t.cluster.HasAntiAffinity(p) {
				return r.Kind.error(p)
			}
		}
	}
	return nil
}

func (v *Validator) checkColocation(t topology) error {
	for _, r := range v.rules.Colocations {
		triggered := false
		for _, p := range r.Triggers {
			if t.count(p) > 0 {
				triggered = true
				break
			}
		}
		if !triggered || len(r.Processes) == 0 {
			continue
		}
		base := t.groupsRunning(r.Processes[0])
		for _, p := range r.Processes[1:] {
			if !sameGroups(base, t.groupsRunning(p)) {
				return &InvalidClusterTopologyError{Reason: r.Reason, Processes: r.Processes}
			}
		}
	}
	return nil
}
