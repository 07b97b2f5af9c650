package vnet

import (
	"testing"

	"github.com/katalvlaran/relaysim/bridge"
	"github.com/katalvlaran/relaysim/model"
	"github.com/katalvlaran/relaysim/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registerVnetWithTab(mgr *Manager, vnetID, pageID, tabID string, driven state.PinState) *VNET {
	pin := model.NewPin(tabID+".pin", "C")
	tab := model.NewTab(tabID, model.Point{})
	pin.AddTab(tab)
	pin.Set(driven)

	v := NewVNET(vnetID, pageID)
	v.addTab(tabID)
	mgr.Register(v)
	mgr.RegisterTab(tabID, tab)
	return v
}

func TestEvaluatorFloatOnEmptyVnet(t *testing.T) {
	mgr := NewManager()
	v := NewVNET("v1", "pg1")
	mgr.Register(v)

	eval := NewEvaluator(mgr, nil)
	assert.Equal(t, state.FLOAT, eval.Eval("v1"))
}

func TestEvaluatorUnknownVnetIsFloat(t *testing.T) {
	mgr := NewManager()
	eval := NewEvaluator(mgr, nil)
	assert.Equal(t, state.FLOAT, eval.Eval("does-not-exist"))
}

func TestEvaluatorHighFromOwnTab(t *testing.T) {
	mgr := NewManager()
	registerVnetWithTab(mgr, "v1", "pg1", "t1", state.HIGH)

	eval := NewEvaluator(mgr, nil)
	assert.Equal(t, state.HIGH, eval.Eval("v1"))
}

func TestEvaluatorTransitiveThroughLinkName(t *testing.T) {
	mgr := NewManager()
	registerVnetWithTab(mgr, "v1", "pg1", "t1", state.FLOAT)
	registerVnetWithTab(mgr, "v2", "pg2", "t2", state.HIGH)

	mgr.AddLinkName("v1", "bus")
	mgr.AddLinkName("v2", "bus")

	eval := NewEvaluator(mgr, nil)
	assert.Equal(t, state.HIGH, eval.Eval("v1"))
}

func TestEvaluatorTransitiveThroughBridge(t *testing.T) {
	mgr := NewManager()
	registerVnetWithTab(mgr, "v1", "pg1", "t1", state.FLOAT)
	registerVnetWithTab(mgr, "v2", "pg1", "t2", state.HIGH)

	bm := bridge.NewManager(mgr.Dirty)
	_, err := bm.CreateBridge("v1", "v2", "R1")
	require.NoError(t, err)

	eval := NewEvaluator(mgr, bm)
	assert.Equal(t, state.HIGH, eval.Eval("v1"))
}

func TestEvaluatorCycleThroughLinksTerminates(t *testing.T) {
	mgr := NewManager()
	registerVnetWithTab(mgr, "v1", "pg1", "t1", state.FLOAT)
	registerVnetWithTab(mgr, "v2", "pg1", "t2", state.FLOAT)

	mgr.AddLinkName("v1", "bus")
	mgr.AddLinkName("v2", "bus")

	eval := NewEvaluator(mgr, nil)
	assert.Equal(t, state.FLOAT, eval.Eval("v1"))
}

func TestEvalManyEvaluatesEachIndependently(t *testing.T) {
	mgr := NewManager()
	registerVnetWithTab(mgr, "v1", "pg1", "t1", state.HIGH)
	registerVnetWithTab(mgr, "v2", "pg1", "t2", state.FLOAT)

	eval := NewEvaluator(mgr, nil)
	got := eval.EvalMany([]string{"v1", "v2"})
	assert.Equal(t, map[string]state.PinState{"v1": state.HIGH, "v2": state.FLOAT}, got)
}
