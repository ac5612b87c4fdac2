package validation

import "github.com/edvin/cdhplugin/internal/model"

// topology is the derived, per-call view the rules run against. It is rebuilt
// on every validation so no tally outlives a call.
type topology struct {
	cluster *model.Cluster
	counts  map[string]int
	groups  map[string][]string
}

// newTopology derives process counts and placements from c. targets, when
// non-nil, replaces the instance count of the listed node groups without
// touching c.
func newTopology(c *model.Cluster, targets map[string]int) topology {
	t := topology{
		cluster: c,
		counts:  make(map[string]int),
		groups:  make(map[string][]string),
	}
	for i := range c.NodeGroups {
		ng := &c.NodeGroups[i]
		count := ng.Count
		if n, ok := targets[ng.ID]; ok {
			count = n
		}
		seen := make(map[string]bool, len(ng.NodeProcesses))
		for _, p := range ng.NodeProcesses {
			if seen[p] {
				continue
			}
			seen[p] = true
			t.counts[p] += count
			if count > 0 {
				t.groups[p] = append(t.groups[p], ng.ID)
			}
		}
	}
	return t
}

// count is the ProcessCount of p: the summed size of every node group running it.
func (t topology) count(p string) int {
	return t.counts[p]
}

// groupsRunning lists the IDs of non-empty node groups running p, in cluster order.
func (t topology) groupsRunning(p string) []string {
	return t.groups[p]
}

func sameGroups(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	set := make(map[string]bool, len(a))
	for _, id := range a {
		set[id] = true
	}
	for _, id := range b {
		if !set[id] {
			return false
		}
	}
	return true
}
