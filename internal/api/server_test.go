package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edvin/cdhplugin/internal/config"
)

type fakePool struct {
	pingErr error
	execs   int
}

func (p *fakePool) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	p.execs++
	return pgconn.CommandTag{}, nil
}

func (p *fakePool) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, errors.New("not implemented")
}

func (p *fakePool) QueryRow(context.Context, string, ...any) pgx.Row {
	return nil
}

func (p *fakePool) Ping(context.Context) error { return p.pingErr }

const clusterBody = `{"cluster":{"name":"analytics","node_groups":[
	{"id":"ng-1","name":"manager","node_processes":["CLOUDERA_MANAGER"],"count":1},
	{"id":"ng-2","name":"master","node_processes":["HDFS_NAMENODE","HDFS_SECONDARYNAMENODE","YARN_RESOURCEMANAGER","YARN_JOBHISTORY"],"count":1},
	{"id":"ng-3","name":"worker","node_processes":["HDFS_DATANODE","YARN_NODEMANAGER"],"count":3}
]}}`

func newTestServer(pool *fakePool, apiKey string) *Server {
	return NewServer(zerolog.Nop(), pool, &config.Config{APIKey: apiKey})
}

func TestServer_Healthz(t *testing.T) {
	srv := newTestServer(&fakePool{}, "")

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestServer_HealthzDatabaseDown(t *testing.T) {
	srv := newTestServer(&fakePool{pingErr: errors.New("down")}, "")

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestServer_Metrics(t *testing.T) {
	srv := newTestServer(&fakePool{}, "")

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestServer_ValidateClusterRoute(t *testing.T) {
	pool := &fakePool{}
	srv := newTestServer(pool, "secret")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/validations/cluster", strings.NewReader(clusterBody))
	req.Header.Set("X-API-Key", "secret")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, 1, pool.execs)
}

func TestServer_RequiresAPIKey(t *testing.T) {
	pool := &fakePool{}
	srv := newTestServer(pool, "secret")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/validations/cluster", strings.NewReader(clusterBody))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Zero(t, pool.execs)
}

func TestServer_Versions(t *testing.T) {
	srv := newTestServer(&fakePool{}, "")

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/versions/5.11.0/processes", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "HDFS_NAMENODE")

	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/versions/1.0.0/processes", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
