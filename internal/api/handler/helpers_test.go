package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/go-chi/chi/v5"
)

// newRequest creates a new HTTP request with an optional JSON body.
func newRequest(method, target string, body any) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	r := httptest.NewRequest(method, target, &buf)
	r.Header.Set("Content-Type", "application/json")
	return r
}

// newRequestRaw creates a new HTTP request with a raw string body.
func newRequestRaw(method, target, body string) *http.Request {
	r := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	r.Header.Set("Content-Type", "application/json")
	return r
}

// withChiURLParam adds a chi URL parameter to the request context.
func withChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// decodeErrorResponse parses the JSON error response body into a map.
func decodeErrorResponse(rec *httptest.ResponseRecorder) map[string]any {
	var body map[string]any
	json.Unmarshal(rec.Body.Bytes(), &body)
	return body
}

// clusterPayload is a minimal constructible cluster in request form.
func clusterPayload() map[string]any {
	return map[string]any{
		"name": "analytics",
		"node_groups": []map[string]any{
			{"id": "ng-manager", "name": "manager", "node_processes": []string{"CLOUDERA_MANAGER"}, "count": 1},
			{"id": "ng-master", "name": "master", "node_processes": []string{
				"HDFS_NAMENODE", "HDFS_SECONDARYNAMENODE", "YARN_RESOURCEMANAGER", "YARN_JOBHISTORY",
			}, "count": 1},
			{"id": "ng-worker", "name": "worker", "node_processes": []string{"HDFS_DATANODE", "YARN_NODEMANAGER"}, "count": 3},
		},
	}
}

const validID = "test-id-1"
