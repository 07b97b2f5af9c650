package components

import (
	"github.com/katalvlaran/relaysim/bridge"
	"github.com/katalvlaran/relaysim/model"
	"github.com/katalvlaran/relaysim/vnet"
)

// buildSingle puts comp alone on a one-page document and runs the
// real vnet construction pipeline over it, returning a ready
// (vnet.Manager, bridge.Manager) pair — exactly what the engine hands
// a component at SimStart, grounded on vnet's own BuildDocument tests.
func buildSingle(comp model.Component) (*vnet.Manager, *bridge.Manager) {
	page := model.NewPage("pg1", "Page 1")
	page.AddComponent(comp)

	doc := model.NewDocument("1.0")
	doc.Pages = append(doc.Pages, page)

	mgr, _ := vnet.BuildDocument(doc)
	bm := bridge.NewManager(mgr.Dirty)
	return mgr, bm
}

// newPinWithTabs builds a pin with n tabs, named the way the document
// schema does ("{componentID}.{pinName}.tabN").
func newPinWithTabs(pinID, componentID string, n int) *model.Pin {
	pin := model.NewPin(pinID, componentID)
	for i := 0; i < n; i++ {
		tab := model.NewTab(tabIDFor(pinID, i), model.Point{})
		pin.AddTab(tab)
	}
	return pin
}

func tabIDFor(pinID string, i int) string {
	return pinID + ".tab" + string(rune('0'+i))
}
