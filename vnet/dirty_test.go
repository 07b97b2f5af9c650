package vnet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirtyFlagManagerMarkAllDirty(t *testing.T) {
	d := NewDirtyFlagManager()
	d.Register("v1")
	d.Register("v2")

	require.Equal(t, 0, d.GetDirtyCount())
	d.MarkAllDirty()
	assert.Equal(t, 2, d.GetDirtyCount())
	assert.ElementsMatch(t, []string{"v1", "v2"}, d.GetDirty())
}

func TestDirtyFlagManagerMarkAndClear(t *testing.T) {
	d := NewDirtyFlagManager()
	d.Register("v1")

	d.MarkDirty("v1")
	assert.True(t, d.IsDirty("v1"))

	d.ClearDirty("v1")
	assert.False(t, d.IsDirty("v1"))
	assert.Equal(t, 0, d.GetDirtyCount())
}

func TestDirtyFlagManagerBatchOperations(t *testing.T) {
	d := NewDirtyFlagManager()
	d.MarkDirtyBatch([]string{"v1", "v2", "v3"})
	assert.Equal(t, 3, d.GetDirtyCount())

	d.ClearDirtyBatch([]string{"v1", "v2"})
	assert.Equal(t, 1, d.GetDirtyCount())
	assert.True(t, d.IsDirty("v3"))
}

func TestDirtyFlagManagerReset(t *testing.T) {
	d := NewDirtyFlagManager()
	d.Register("v1")
	d.MarkAllDirty()
	d.Reset()
	assert.Equal(t, 0, d.GetDirtyCount())
	assert.False(t, d.IsDirty("v1"))
}
