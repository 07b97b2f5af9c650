package vnet

import (
	"testing"

	"github.com/katalvlaran/relaysim/state"
	"github.com/stretchr/testify/assert"
)

func TestNewVNETIsFloatAndEmpty(t *testing.T) {
	v := NewVNET("v1", "pg1")
	assert.Equal(t, state.FLOAT, v.State())
	assert.Empty(t, v.TabIDs())
	assert.Empty(t, v.LinkNames())
	assert.False(t, v.HasTab("t1"))
}

func TestVNETAddTabAndHasTab(t *testing.T) {
	v := NewVNET("v1", "pg1")
	v.addTab("t1")
	assert.True(t, v.HasTab("t1"))
	assert.ElementsMatch(t, []string{"t1"}, v.TabIDs())
}

func TestVNETLinkNameMutation(t *testing.T) {
	v := NewVNET("v1", "pg1")
	assert.True(t, v.addLinkNameLocked("bus"))
	assert.False(t, v.addLinkNameLocked("bus"))
	assert.True(t, v.HasLinkName("bus"))

	assert.True(t, v.removeLinkNameLocked("bus"))
	assert.False(t, v.removeLinkNameLocked("bus"))
	assert.False(t, v.HasLinkName("bus"))
}
