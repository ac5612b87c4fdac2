package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPool_InvalidURL(t *testing.T) {
	pool, err := NewPool(context.Background(), "postgres://%zz", 4)
	require.Error(t, err)
	assert.Nil(t, pool)
	assert.Contains(t, err.Error(), "parse db config")
}

func TestRunMigrations_MissingDir(t *testing.T) {
	err := RunMigrations("postgres://localhost:1/none?connect_timeout=1", t.TempDir()+"/missing")
	require.Error(t, err)
}
