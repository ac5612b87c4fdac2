package request

import (
	"bytes"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const clusterBody = `{
	"cluster": {
		"name": "analytics",
		"plugin_version": "5.11.0",
		"cluster_configs": {"HDFS": {"dfs_replication": 3}, "general": {"Require Anti Affinity": false}},
		"node_groups": [
			{"id": "ng-1", "name": "master", "node_processes": ["HDFS_NAMENODE"], "count": 1},
			{"id": "ng-2", "name": "worker", "node_processes": ["HDFS_DATANODE"], "count": 3, "volumes_size": 22,
			 "node_configs": {"DATANODE": {"dfs_datanode_du_reserved": 22548578304.5}}}
		]
	}
}`

func decodeBody(t *testing.T, body string, v any) error {
	t.Helper()
	r, err := http.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body))
	require.NoError(t, err)
	return Decode(r, v)
}

func TestValidateCluster_Decode(t *testing.T) {
	var req ValidateCluster
	require.NoError(t, decodeBody(t, clusterBody, &req))

	c := req.Cluster.Model()
	assert.Equal(t, "analytics", c.Name)
	require.Len(t, c.NodeGroups, 2)
	assert.Equal(t, 3, c.NodeGroups[1].Count)

	replicas, ok, err := c.ClusterConfigs.Int("HDFS", "dfs_replication")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 3, replicas)
	assert.Equal(t, int64(3), c.ClusterConfigs["HDFS"]["dfs_replication"])

	aa, ok, err := c.ClusterConfigs.Bool("general", "Require Anti Affinity")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.False(t, aa)

	reserved, ok, err := c.NodeGroups[1].NodeConfigs.Float("DATANODE", "dfs_datanode_du_reserved")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 22548578304.5, reserved)
}

func TestValidateCluster_MissingCluster(t *testing.T) {
	var req ValidateCluster
	err := decodeBody(t, `{}`, &req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation error")
}

func TestValidateCluster_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"no node groups", `{"cluster":{"name":"c","node_groups":[]}}`},
		{"no name", `{"cluster":{"node_groups":[{"id":"1","name":"a","count":1}]}}`},
		{"lowercase process", `{"cluster":{"name":"c","node_groups":[{"id":"1","name":"a","count":1,"node_processes":["hdfs_namenode"]}]}}`},
		{"negative count", `{"cluster":{"name":"c","node_groups":[{"id":"1","name":"a","count":-1}]}}`},
		{"bad version", `{"cluster":{"name":"c","plugin_version":"five","node_groups":[{"id":"1","name":"a","count":1}]}}`},
		{"bad anti-affinity", `{"cluster":{"name":"c","anti_affinity":["nn"],"node_groups":[{"id":"1","name":"a","count":1}]}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req ValidateCluster
			err := decodeBody(t, tt.body, &req)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "validation error")
		})
	}
}

func TestValidateScaling_Decode(t *testing.T) {
	body := `{"cluster":{"name":"c","node_groups":[{"id":"ng-1","name":"w","count":3}]},"node_groups":{"ng-1":4}}`

	var req ValidateScaling
	require.NoError(t, decodeBody(t, body, &req))
	assert.Equal(t, map[string]int{"ng-1": 4}, req.NodeGroups)
}

func TestValidateScaling_Invalid(t *testing.T) {
	cluster := `"cluster":{"name":"c","node_groups":[{"id":"ng-1","name":"w","count":3}]}`
	tests := []struct {
		name string
		body string
	}{
		{"no targets", `{` + cluster + `}`},
		{"empty targets", `{` + cluster + `,"node_groups":{}}`},
		{"negative target", `{` + cluster + `,"node_groups":{"ng-1":-2}}`},
		{"empty id", `{` + cluster + `,"node_groups":{"":2}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req ValidateScaling
			err := decodeBody(t, tt.body, &req)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "validation error")
		})
	}
}
