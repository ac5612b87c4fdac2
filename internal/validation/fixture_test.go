package validation

import (
	"fmt"
	"sort"

	"github.com/edvin/cdhplugin/internal/model"
)

// ---------- Fixture ----------

type fakeGroup struct {
	name        string
	processes   []string
	count       int
	volumesSize int
	nodeConfigs model.Configs
}

type clusterOption func(*model.Cluster)

func withClusterConfigs(cfg model.Configs) clusterOption {
	return func(c *model.Cluster) { c.ClusterConfigs = cfg }
}

func withAntiAffinity(processes ...string) clusterOption {
	return func(c *model.Cluster) { c.AntiAffinity = processes }
}

func withoutAntiAffinity() clusterOption {
	return withClusterConfigs(model.Configs{
		model.ConfigServiceGeneral: {model.ConfigRequireAntiAffinity: false},
	})
}

// fakeCluster builds the default three-group cluster (manager, master, workers)
// adjusted by processes: a zero count removes the process from the default
// groups, a positive count for a manager or master process adds count-1 extra
// instances in a service group, and any other positive count adds a service
// group of that size. provided groups are appended last.
func fakeCluster(processes map[string]int, provided []fakeGroup, opts ...clusterOption) *model.Cluster {
	remaining := make(map[string]int, len(processes))
	for p, n := range processes {
		remaining[p] = n
	}

	manager := fakeGroup{name: "manager_ng", processes: []string{model.ProcessClouderaManager}, count: 1}
	master := fakeGroup{name: "master_ng", processes: []string{
		model.ProcessNameNode, model.ProcessSecondaryNameNode,
		model.ProcessResourceManager, model.ProcessJobHistory,
	}, count: 1}
	workers := fakeGroup{name: "worker_ng", processes: []string{
		model.ProcessDataNode, model.ProcessNodeManager,
	}, count: 3}

	manager.processes = adjust(manager.processes, remaining, true)
	master.processes = adjust(master.processes, remaining, true)
	workers.processes = adjust(workers.processes, remaining, false)

	var groups []fakeGroup
	for _, g := range []fakeGroup{manager, master, workers} {
		if len(g.processes) > 0 {
			groups = append(groups, g)
		}
	}

	extra := make([]string, 0, len(remaining))
	for p, n := range remaining {
		if n > 0 {
			extra = append(extra, p)
		}
	}
	sort.Strings(extra)
	for i, p := range extra {
		groups = append(groups, fakeGroup{
			name:      fmt.Sprintf("service_ng%d", i),
			processes: []string{p},
			count:     remaining[p],
		})
	}
	groups = append(groups, provided...)

	c := &model.Cluster{
		ID:            "cluster-1",
		Name:          "test_cluster",
		PluginVersion: DefaultVersion,
	}
	inst := 0
	for i, g := range groups {
		ng := model.NodeGroup{
			ID:            fmt.Sprintf("ng_id%d", i),
			Name:          g.name,
			FlavorID:      "1",
			NodeProcesses: append([]string{}, g.processes...),
			Count:         g.count,
			VolumesSize:   g.volumesSize,
			NodeConfigs:   g.nodeConfigs,
		}
		for j := 0; j < g.count; j++ {
			ng.Instances = append(ng.Instances, model.Instance{
				ID:           fmt.Sprintf("id%d", inst),
				Name:         fmt.Sprintf("fake_inst%d", inst),
				ManagementIP: fmt.Sprintf("1.2.3.%d", inst),
			})
			inst++
		}
		c.NodeGroups = append(c.NodeGroups, ng)
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// adjust drops processes requested with a zero count. When consume is set, a
// positive request is satisfied by one instance of the default group.
func adjust(processes []string, remaining map[string]int, consume bool) []string {
	var out []string
	for _, p := range processes {
		n, ok := remaining[p]
		if !ok {
			out = append(out, p)
			continue
		}
		if n == 0 {
			delete(remaining, p)
			continue
		}
		if consume {
			remaining[p] = n - 1
		}
		out = append(out, p)
	}
	return out
}

func workerWithImpala() fakeGroup {
	return fakeGroup{
		name:      "worker_ng",
		processes: []string{model.ProcessDataNode, model.ProcessNodeManager, model.ProcessImpalaDaemon},
		count:     3,
	}
}

func newTestValidator() *Validator {
	rules, err := RulesFor(DefaultVersion)
	if err != nil {
		panic(err)
	}
	return NewValidator(rules)
}
