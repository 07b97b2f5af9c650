package vnet

import (
	"testing"

	"github.com/katalvlaran/relaysim/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func vnetContaining(t *testing.T, vnets []*VNET, tabID string) *VNET {
	t.Helper()
	for _, v := range vnets {
		if v.HasTab(tabID) {
			return v
		}
	}
	require.Fail(t, "no vnet contains tab "+tabID)
	return nil
}

func newPageWithTabs(pageID string, tabIDs ...string) (*model.Page, *model.Pin) {
	page := model.NewPage(pageID, pageID)
	pin := model.NewPin(pageID+".P", "C1")
	for _, id := range tabIDs {
		pin.AddTab(model.NewTab(id, model.Point{}))
	}
	comp := &testComponent{id: "C1", pageID: pageID, pins: []*model.Pin{pin}}
	page.AddComponent(comp)
	return page, pin
}

func TestBuilderSingletonsForUnwiredTabs(t *testing.T) {
	page, _ := newPageWithTabs("pg1", "t1", "t2")
	b := NewBuilder()
	vnets := b.BuildPage(page)

	require.Len(t, vnets, 2)
	v1 := vnetContaining(t, vnets, "t1")
	v2 := vnetContaining(t, vnets, "t2")
	assert.NotEqual(t, v1.ID(), v2.ID())
	assert.Len(t, v1.TabIDs(), 1)
}

func TestBuilderMergesDirectlyWiredTabs(t *testing.T) {
	page, _ := newPageWithTabs("pg1", "t1", "t2", "t3")
	page.AddWire(&model.Wire{ID: "w1", StartTabID: "t1", EndTabID: "t2"})
	b := NewBuilder()
	vnets := b.BuildPage(page)

	require.Len(t, vnets, 2)
	merged := vnetContaining(t, vnets, "t1")
	assert.True(t, merged.HasTab("t2"))
	assert.ElementsMatch(t, []string{"t1", "t2"}, merged.TabIDs())

	solo := vnetContaining(t, vnets, "t3")
	assert.NotEqual(t, merged.ID(), solo.ID())
}

func TestBuilderFusesThroughJunctionChildren(t *testing.T) {
	page, _ := newPageWithTabs("pg1", "t1", "t2", "t3")
	page.AddJunction(&model.Junction{ID: "j1", ChildWireIDs: []string{"w2"}})
	page.AddWire(&model.Wire{ID: "w2", StartTabID: "t2", ParentJunctionID: "j1"})
	page.AddWire(&model.Wire{ID: "w1", StartTabID: "t1", EndTabID: "t3", JunctionIDs: []string{"j1"}})

	b := NewBuilder()
	vnets := b.BuildPage(page)

	require.Len(t, vnets, 1)
	all := vnets[0]
	assert.ElementsMatch(t, []string{"t1", "t2", "t3"}, all.TabIDs())
}

func TestBuilderHandlesCyclicWiresWithoutHanging(t *testing.T) {
	page, _ := newPageWithTabs("pg1", "t1", "t2", "t3")
	page.AddWire(&model.Wire{ID: "w1", StartTabID: "t1", EndTabID: "t2"})
	page.AddWire(&model.Wire{ID: "w2", StartTabID: "t2", EndTabID: "t3"})
	page.AddWire(&model.Wire{ID: "w3", StartTabID: "t3", EndTabID: "t1"})

	b := NewBuilder()
	vnets := b.BuildPage(page)

	require.Len(t, vnets, 1)
	assert.ElementsMatch(t, []string{"t1", "t2", "t3"}, vnets[0].TabIDs())
}

func TestBuilderWireWithoutEndTabStillReachesJunctions(t *testing.T) {
	page, _ := newPageWithTabs("pg1", "t1", "t2")
	page.AddJunction(&model.Junction{ID: "j1", ChildWireIDs: []string{"w2"}})
	page.AddWire(&model.Wire{ID: "w2", StartTabID: "t2", ParentJunctionID: "j1"})
	page.AddWire(&model.Wire{ID: "w1", StartTabID: "t1", JunctionIDs: []string{"j1"}})

	b := NewBuilder()
	vnets := b.BuildPage(page)

	require.Len(t, vnets, 1)
	assert.ElementsMatch(t, []string{"t1", "t2"}, vnets[0].TabIDs())
}

// testComponent is a minimal model.Component double shared by the
// vnet package's tests.
type testComponent struct {
	id       string
	pageID   string
	linkName string
	pins     []*model.Pin
}

func (c *testComponent) ID() string                        { return c.id }
func (c *testComponent) Type() string                       { return "Test" }
func (c *testComponent) PageID() string                     { return c.pageID }
func (c *testComponent) LinkName() string                   { return c.linkName }
func (c *testComponent) Pins() []*model.Pin                 { return c.pins }
func (c *testComponent) Properties() map[string]interface{} { return nil }
func (c *testComponent) Position() model.Point              { return model.Point{} }
func (c *testComponent) Rotation() int                       { return 0 }
func (c *testComponent) FlipHorizontal() bool                { return false }
func (c *testComponent) FlipVertical() bool                  { return false }
func (c *testComponent) SimStart(model.VnetAccess, model.BridgeAccess)      {}
func (c *testComponent) SimulateLogic(model.VnetAccess, model.BridgeAccess) {}
func (c *testComponent) SimStop()                                          {}
func (c *testComponent) Interact(string, map[string]interface{}) (bool, error) {
	return false, nil
}
func (c *testComponent) VisualState() model.VisualState { return model.VisualState{Type: "Test"} }
