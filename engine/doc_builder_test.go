package engine_test

import (
	"testing"

	"github.com/katalvlaran/relaysim/components"
	"github.com/katalvlaran/relaysim/model"
	"github.com/katalvlaran/relaysim/timer"
)

// pin builds a pin with n tabs, named the way the document schema does
// ("{componentID}.{pinName}.tabN"), mirroring components' own test
// helper but defined at package scope for scenario construction.
func pin(componentID, name string, n int) *model.Pin {
	p := model.NewPin(componentID+"."+name, componentID)
	for i := 0; i < n; i++ {
		t := model.NewTab(componentID+"."+name+".tab"+itoa(i), model.Point{})
		p.AddTab(t)
	}
	return p
}

func itoa(i int) string {
	digits := "0123456789"
	if i < 10 {
		return string(digits[i])
	}
	return string(digits[i/10]) + string(digits[i%10])
}

func switchSpec(id, pageID, linkName string) model.ComponentSpec {
	return model.ComponentSpec{
		ID:         id,
		Type:       "Switch",
		PageID:     pageID,
		LinkName:   linkName,
		Properties: map[string]interface{}{},
		Pins:       map[string]*model.Pin{"SW": pin(id, "SW", 4)},
	}
}

func indicatorSpec(id, pageID, linkName string) model.ComponentSpec {
	return model.ComponentSpec{
		ID:         id,
		Type:       "Indicator",
		PageID:     pageID,
		LinkName:   linkName,
		Properties: map[string]interface{}{},
		Pins:       map[string]*model.Pin{"LED": pin(id, "LED", 4)},
	}
}

func vccSpec(id, pageID string) model.ComponentSpec {
	return model.ComponentSpec{
		ID:         id,
		Type:       "VCC",
		PageID:     pageID,
		Properties: map[string]interface{}{},
		Pins:       map[string]*model.Pin{"OUT": pin(id, "OUT", 1)},
	}
}

func relaySpec(id, pageID string) model.ComponentSpec {
	pins := make(map[string]*model.Pin, 7)
	for _, name := range []string{"COIL", "COM1", "NO1", "NC1", "COM2", "NO2", "NC2"} {
		pins[name] = pin(id, name, 4)
	}
	return model.ComponentSpec{
		ID:         id,
		Type:       "DPDTRelay",
		PageID:     pageID,
		Properties: map[string]interface{}{},
		Pins:       pins,
	}
}

// wire connects the first tab of a's pin to the first tab of b's pin.
func wire(id string, a, b *model.Pin) *model.Wire {
	return &model.Wire{ID: id, StartTabID: a.Tabs()[0].ID(), EndTabID: b.Tabs()[0].ID()}
}

// junctionFanOut wires src's pin to a junction with one child wire per
// dst pin (spec.md S3), returning the trunk wire plus every child wire
// and the junction itself, ready for page.AddWire/AddJunction.
func junctionFanOut(trunkID, junctionID string, src *model.Pin, dsts ...*model.Pin) (*model.Wire, *model.Junction, []*model.Wire) {
	childIDs := make([]string, len(dsts))
	children := make([]*model.Wire, len(dsts))
	for i, d := range dsts {
		childIDs[i] = trunkID + ".child" + itoa(i)
		children[i] = &model.Wire{
			ID:               childIDs[i],
			EndTabID:         d.Tabs()[0].ID(),
			ParentJunctionID: junctionID,
		}
	}
	j := &model.Junction{ID: junctionID, ChildWireIDs: childIDs}
	trunk := &model.Wire{ID: trunkID, StartTabID: src.Tabs()[0].ID(), JunctionIDs: []string{junctionID}}
	return trunk, j, children
}

// buildComponent constructs a component of the named type through the
// real components.Registry, grounding scenario construction in the
// same factory the document loader would use.
func buildComponent(t *testing.T, reg *components.Registry, spec model.ComponentSpec) model.Component {
	t.Helper()
	c, err := reg.Build(spec)
	if err != nil {
		t.Fatalf("build %s: %v", spec.ID, err)
	}
	return c
}

func newRegistry() (*components.Registry, *timer.Scheduler) {
	sched := timer.NewScheduler()
	return components.NewRegistry(sched), sched
}
