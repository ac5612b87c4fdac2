package request

import (
	"bytes"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequireID_Valid(t *testing.T) {
	result, err := RequireID("550e8400-e29b-41d4-a716-446655440000")
	require.NoError(t, err)
	assert.Equal(t, "550e8400-e29b-41d4-a716-446655440000", result)
}

func TestRequireID_ShortID(t *testing.T) {
	result, err := RequireID("abc1234xyz")
	require.NoError(t, err)
	assert.Equal(t, "abc1234xyz", result)
}

func TestRequireID_Empty(t *testing.T) {
	_, err := RequireID("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required ID")
}

type testGroupPayload struct {
	Name      string   `json:"name" validate:"required"`
	Processes []string `json:"processes" validate:"required,dive,process"`
	Count     int      `json:"count" validate:"min=0"`
}

func decodeGroup(t *testing.T, body string) (testGroupPayload, error) {
	t.Helper()
	r, err := http.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body))
	require.NoError(t, err)
	var payload testGroupPayload
	return payload, Decode(r, &payload)
}

func TestDecode_ValidJSON(t *testing.T) {
	payload, err := decodeGroup(t, `{"name":"worker","processes":["HDFS_DATANODE","YARN_NODEMANAGER"],"count":3}`)
	require.NoError(t, err)
	assert.Equal(t, "worker", payload.Name)
	assert.Equal(t, []string{"HDFS_DATANODE", "YARN_NODEMANAGER"}, payload.Processes)
	assert.Equal(t, 3, payload.Count)
}

func TestDecode_InvalidJSON(t *testing.T) {
	_, err := decodeGroup(t, `{not valid json}`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid JSON")
}

func TestDecode_ValidationFails(t *testing.T) {
	tests := map[string]string{
		"missing name":     `{"processes":["HDFS_DATANODE"],"count":1}`,
		"bad process name": `{"name":"worker","processes":["hdfs datanode"],"count":1}`,
		"negative count":   `{"name":"worker","processes":["HDFS_DATANODE"],"count":-2}`,
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := decodeGroup(t, body)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "validation error")
		})
	}
}

func TestProcessValidation_Valid(t *testing.T) {
	valid := []string{"HDFS_NAMENODE", "KMS", "IMPALAD", "YARN_STANDBYRM", "HUE_SERVER2"}
	for _, p := range valid {
		t.Run(p, func(t *testing.T) {
			assert.True(t, processRegex.MatchString(p), "expected process %q to be valid", p)
		})
	}
}

func TestProcessValidation_Invalid(t *testing.T) {
	invalid := []string{
		"hdfs_namenode",          // lowercase
		"HDFS NAMENODE",          // space
		"_LEADING",               // must start with a letter
		"2NN",                    // must start with a letter
		"",                       // empty
		strings.Repeat("A", 64), // too long (max 63 chars)
	}
	for _, p := range invalid {
		t.Run(p, func(t *testing.T) {
			assert.False(t, processRegex.MatchString(p), "expected process %q to be invalid", p)
		})
	}
}
