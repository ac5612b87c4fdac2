package platform

import "fmt"

// InstanceHostname generates the hostname of the index-th instance of a node
// group. Example: analytics-worker-003
func InstanceHostname(clusterName, groupName string, index int) string {
	return fmt.Sprintf("%s-%s-%03d", clusterName, groupName, index)
}
