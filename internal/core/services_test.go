package core

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServices(t *testing.T) {
	db := &mockDB{}

	svcs := NewServices(db, "5.11.0", zerolog.Nop())

	require.NotNil(t, svcs)
	require.NotNil(t, svcs.Validation)
	assert.Equal(t, db, svcs.Validation.db)
	assert.Equal(t, "5.11.0", svcs.Validation.defaultVersion)
}
