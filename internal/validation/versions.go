package validation

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnsupportedVersion is returned by RulesFor for unknown plugin versions.
var ErrUnsupportedVersion = errors.New("unsupported plugin version")

// DefaultVersion is the plugin version used when a cluster does not name one.
const DefaultVersion = "5.11.0"

// ruleBuilders return a fresh RuleSet on every call so no caller can alias
// another caller's tables.
var ruleBuilders = map[string]func() *RuleSet{
	"5.11.0": cdh5110Rules,
}

// Versions lists the supported plugin versions in ascending order.
func Versions() []string {
	versions := make([]string, 0, len(ruleBuilders))
	for v := range ruleBuilders {
		versions = append(versions, v)
	}
	sort.Strings(versions)
	return versions
}

// RulesFor builds the rule table for a plugin version.
func RulesFor(version string) (*RuleSet, error) {
	if version == "" {
		version = DefaultVersion
	}
	build, ok := ruleBuilders[version]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnsupportedVersion, version)
	}
	return build(), nil
}
