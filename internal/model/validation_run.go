package model

import (
	"encoding/json"
	"time"
)

// ValidationRun records the verdict of one validation call.
type ValidationRun struct {
	ID            string          `json:"id" db:"id"`
	ClusterName   string          `json:"cluster_name" db:"cluster_name"`
	Operation     string          `json:"operation" db:"operation"`
	PluginVersion string          `json:"plugin_version" db:"plugin_version"`
	Result        string          `json:"result" db:"result"`
	ErrorCode     *string         `json:"error_code,omitempty" db:"error_code"`
	ErrorMessage  *string         `json:"error_message,omitempty" db:"error_message"`
	Request       json.RawMessage `json:"request" db:"request"`
	CreatedAt     time.Time       `json:"created_at" db:"created_at"`
}
