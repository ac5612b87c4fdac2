package cdhctl

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/edvin/cdhplugin/internal/validation"
)

// Processes prints the node processes of every service for a plugin version.
func Processes(version string, out io.Writer) error {
	rules, err := validation.RulesFor(version)
	if err != nil {
		return err
	}
	v := validation.NewValidator(rules)
	catalog := v.NodeProcesses()

	services := make([]string, 0, len(catalog))
	for s := range catalog {
		services = append(services, s)
	}
	sort.Strings(services)

	fmt.Fprintf(out, "plugin version %s\n", v.Version())
	for _, s := range services {
		fmt.Fprintf(out, "  %-12s %s\n", s, strings.Join(catalog[s], ", "))
	}
	return nil
}
