package validation

import (
	"errors"
	"fmt"
	"strings"
)

// Error is implemented by every validation failure. Code is a stable identifier
// suitable for API responses and metrics labels.
type Error interface {
	error
	Code() string
}

const (
	CodeInvalidComponentCount   = "invalid_component_count"
	CodeRequiredServiceMissing  = "required_service_missing"
	CodeInvalidClusterTopology  = "invalid_cluster_topology"
	CodeNameNodeHAConfiguration = "namenode_ha_configuration"
	CodeRMHAConfiguration       = "resourcemanager_ha_configuration"
	CodeNodeGroupCannotBeScaled = "node_group_cannot_be_scaled"
	CodeClusterCannotBeScaled   = "cluster_cannot_be_scaled"
	CodeInvalidVolumeSize       = "invalid_volume_size"
)

// CodeOf returns the code of the validation error wrapped in err, or "" when
// err is not a validation failure.
func CodeOf(err error) string {
	var verr Error
	if errors.As(err, &verr) {
		return verr.Code()
	}
	return ""
}

// InvalidComponentCountError reports a process whose total instance count is
// outside its declared range.
type InvalidComponentCountError struct {
	Process  string `json:"process"`
	Expected Range  `json:"expected"`
	Actual   int    `json:"actual"`
	Reason   string `json:"reason,omitempty"`
}

func (e *InvalidComponentCountError) Error() string {
	msg := fmt.Sprintf("cluster should contain %s %s component(s), actual count is %d",
		e.Expected, e.Process, e.Actual)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

func (e *InvalidComponentCountError) Code() string { return CodeInvalidComponentCount }

// RequiredServiceMissingError reports a present process whose dependency has
// zero instances.
type RequiredServiceMissingError struct {
	Process    string `json:"process"`
	RequiredBy string `json:"required_by"`
}

func (e *RequiredServiceMissingError) Error() string {
	return fmt.Sprintf("cluster is missing a service: %s, required by %s", e.Process, e.RequiredBy)
}

func (e *RequiredServiceMissingError) Code() string { return CodeRequiredServiceMissing }

// InvalidClusterTopologyError reports a structural placement violation.
type InvalidClusterTopologyError struct {
	Reason    string   `json:"reason"`
	Processes []string `json:"processes,omitempty"`
}

func (e *InvalidClusterTopologyError) Error() string {
	return "invalid cluster topology: " + e.Reason
}

func (e *InvalidClusterTopologyError) Code() string { return CodeInvalidClusterTopology }

// NameNodeHAConfigurationError reports a NameNode HA role missing from the
// cluster's anti-affinity list.
type NameNodeHAConfigurationError struct {
	Process string `json:"process"`
}

func (e *NameNodeHAConfigurationError) Error() string {
	return fmt.Sprintf("NameNode High Availability: %s should be enabled in anti_affinity", e.Process)
}

func (e *NameNodeHAConfigurationError) Code() string { return CodeNameNodeHAConfiguration }

// ResourceManagerHAConfigurationError reports a ResourceManager HA role missing
// from the cluster's anti-affinity list.
type ResourceManagerHAConfigurationError struct {
	Process string `json:"process"`
}

func (e *ResourceManagerHAConfigurationError) Error() string {
	return fmt.Sprintf("ResourceManager High Availability: %s should be enabled in anti_affinity", e.Process)
}

func (e *ResourceManagerHAConfigurationError) Code() string { return CodeRMHAConfiguration }

// NodeGroupCannotBeScaledError reports a scaling request that touches a node
// group which cannot change size.
type NodeGroupCannotBeScaledError struct {
	NodeGroup string `json:"node_group"`
	Reason    string `json:"reason"`
}

func (e *NodeGroupCannotBeScaledError) Error() string {
	return fmt.Sprintf("chosen node group %s cannot be scaled: %s", e.NodeGroup, e.Reason)
}

func (e *NodeGroupCannotBeScaledError) Code() string { return CodeNodeGroupCannotBeScaled }

// ClusterCannotBeScaledError reports a scaling request that would break a
// cluster-wide invariant.
type ClusterCannotBeScaledError struct {
	Cluster string `json:"cluster"`
	Reason  string `json:"reason"`
}

func (e *ClusterCannotBeScaledError) Error() string {
	return fmt.Sprintf("cluster %s cannot be scaled: %s", e.Cluster, e.Reason)
}

func (e *ClusterCannotBeScaledError) Code() string { return CodeClusterCannotBeScaled }

// InvalidVolumeSizeError reports a node group whose volumes are smaller than
// the space the DataNode reserves.
type InvalidVolumeSizeError struct {
	NodeGroup  string  `json:"node_group"`
	VolumeSize int     `json:"volume_size_gb"`
	Reserved   float64 `json:"reserved_gb"`
}

func (e *InvalidVolumeSizeError) Error() string {
	return fmt.Sprintf("node group %s: volume size %d GB must be not less than reserved size %s GB",
		e.NodeGroup, e.VolumeSize, strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", e.Reserved), "0"), "."))
}

func (e *InvalidVolumeSizeError) Code() string { return CodeInvalidVolumeSize }
