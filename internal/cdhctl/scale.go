package cdhctl

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/edvin/cdhplugin/internal/model"
	"github.com/edvin/cdhplugin/internal/validation"
)

const (
	ModeAdditional = "additional"
	ModeExisting   = "existing"
)

// ParseCounts parses "<node group>=<count>" arguments.
func ParseCounts(args []string) (map[string]int, error) {
	counts := make(map[string]int, len(args))
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid node group count %q: want <id>=<count>", arg)
		}
		n, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("invalid count in %q: %w", arg, err)
		}
		counts[key] = n
	}
	return counts, nil
}

// resolveTargets maps node group names to IDs so definitions without explicit
// IDs can still be scaled. Keys matching neither are passed through and
// rejected by the engine.
func resolveTargets(c *model.Cluster, counts map[string]int) map[string]int {
	out := make(map[string]int, len(counts))
	for key, n := range counts {
		if _, ok := c.NodeGroup(key); ok {
			out[key] = n
			continue
		}
		resolved := key
		for _, ng := range c.NodeGroups {
			if ng.Name == key {
				resolved = ng.ID
				break
			}
		}
		out[resolved] = n
	}
	return out
}

// Scale checks a scaling request against the cluster in path.
func Scale(path, mode string, counts map[string]int, out io.Writer) error {
	if len(counts) == 0 {
		return fmt.Errorf("no node group counts given")
	}
	if mode != ModeAdditional && mode != ModeExisting {
		return fmt.Errorf("unknown scaling mode %q: want %s or %s", mode, ModeAdditional, ModeExisting)
	}

	f, err := LoadCluster(path)
	if err != nil {
		return err
	}
	rules, err := validation.RulesFor(f.Cluster.PluginVersion)
	if err != nil {
		return err
	}
	v := validation.NewValidator(rules)

	targets := resolveTargets(&f.Cluster, counts)
	if mode == ModeAdditional {
		err = v.ValidateAdditionalNGScaling(&f.Cluster, targets)
	} else {
		err = v.ValidateExistingNGScaling(&f.Cluster, targets)
	}
	if err != nil {
		fmt.Fprintf(out, "FAIL  %s (%s): %s\n", path, f.Cluster.Name, describe(err))
		return fmt.Errorf("%s scaling of %s rejected", mode, f.Cluster.Name)
	}
	fmt.Fprintf(out, "ok    %s (%s): %s scaling allowed\n", path, f.Cluster.Name, mode)
	return nil
}
