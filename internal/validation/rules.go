package validation

import (
	"fmt"
	"strconv"
)

// Unbounded marks a Range without an upper limit.
const Unbounded = -1

// Range is an inclusive bound on a process count.
type Range struct {
	Min int  `json:"min"`
	Max int  `json:"max"`
	Odd bool `json:"odd,omitempty"`
}

// Contains reports whether n satisfies the range.
func (r Range) Contains(n int) bool {
	if n < r.Min {
		return false
	}
	if r.Max != Unbounded && n > r.Max {
		return false
	}
	if r.Odd && n%2 == 0 {
		return false
	}
	return true
}

func (r Range) String() string {
	var s string
	switch {
	case r.Max == Unbounded && r.Min <= 0:
		s = "any number of"
	case r.Max == Unbounded:
		s = "not less than " + strconv.Itoa(r.Min)
	case r.Min == r.Max:
		s = strconv.Itoa(r.Min)
	case r.Max == r.Min+1:
		s = fmt.Sprintf("%d or %d", r.Min, r.Max)
	default:
		s = fmt.Sprintf("%d to %d", r.Min, r.Max)
	}
	if r.Odd {
		s = "an odd number, " + s + ","
	}
	return s
}

// ConfigKey addresses one option in the cluster-wide configuration.
type ConfigKey struct {
	Service string
	Name    string
}

func (k ConfigKey) String() string { return k.Service + "." + k.Name }

// CountRule bounds the total instance count of a process across the cluster.
type CountRule struct {
	Process string
	Range   Range
	// WhenPresent skips the rule when the process has no instances.
	WhenPresent bool
	// MinFrom, when set and present in the cluster configs, replaces Range.Min.
	MinFrom *ConfigKey
	Reason  string
}

// DependencyRule states that Dependent requires at least one instance of Required.
type DependencyRule struct {
	Dependent string
	Required  string
	// RequiredBy names the requiring feature in the error; defaults to Dependent.
	RequiredBy string
	// AsCount reports the violation as an InvalidComponentCountError.
	AsCount bool
}

func (r DependencyRule) requiredBy() string {
	if r.RequiredBy != "" {
		return r.RequiredBy
	}
	return r.Dependent
}

// HAKind selects the error raised by an AntiAffinityRule.
type HAKind int

const (
	HANameNode HAKind = iota
	HAResourceManager
)

func (k HAKind) error(process string) error {
	if k == HAResourceManager {
		return &ResourceManagerHAConfigurationError{Process: process}
	}
	return &NameNodeHAConfigurationError{Process: process}
}

// AntiAffinityRule requires Processes to be anti-affine once Trigger runs.
type AntiAffinityRule struct {
	Trigger   string
	Processes []string
	Kind      HAKind
}

// ColocationRule requires every process in Processes to run on exactly the
// same node groups once any of Triggers is present.
type ColocationRule struct {
	Triggers  []string
	Processes []string
	Reason    string
}

// VolumeRule requires node groups running Process to have volumes at least as
// large as the reserved space read from Reserved (bytes).
type VolumeRule struct {
	Process         string
	Reserved        ConfigKey
	DefaultReserved int64
}

// ScalingMasterRule forbids scaling a node group running Process while Master
// has no instances.
type ScalingMasterRule struct {
	Process string
	Master  string
}

// Service groups the processes a cluster-manager service offers.
type Service struct {
	Name      string   `json:"name"`
	Processes []string `json:"processes"`
}

// RuleSet is the immutable rule table for one plugin version. Rules of each
// kind run in declaration order.
type RuleSet struct {
	Version  string
	Services []Service

	Counts       []CountRule
	Volumes      []VolumeRule
	Dependencies []DependencyRule
	AntiAffinity []AntiAffinityRule
	Colocations  []ColocationRule

	// RequireAntiAffinity toggles the AntiAffinity rules; DefaultAntiAffinity
	// applies when the option is unset.
	RequireAntiAffinity ConfigKey
	DefaultAntiAffinity bool

	Scalable       []string
	ScalingMasters []ScalingMasterRule
	// ReplicatedProcess may not shrink below the configured Replication value.
	ReplicatedProcess string
	Replication       ConfigKey
}
