package utils

import (
	"sort"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRunID(t *testing.T) {
	id := NewRunID()

	require.True(t, strings.HasPrefix(id, RunIDPrefix))
	parsed, err := uuid.Parse(strings.TrimPrefix(id, RunIDPrefix))
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
	assert.NotEqual(t, id, NewRunID())
}

func TestNewRunID_Sortable(t *testing.T) {
	ids := make([]string, 50)
	for i := range ids {
		ids[i] = NewRunID()
	}

	assert.True(t, sort.StringsAreSorted(ids), "run IDs must sort in creation order")
}
