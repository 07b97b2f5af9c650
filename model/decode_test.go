package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDoc = `{
  "version": "2.0",
  "pages": [
    {
      "page_id": "pg1",
      "name": "Page 1",
      "components": [
        {
          "component_id": "SW1",
          "component_type": "Switch",
          "position": {"x": 0, "y": 0},
          "rotation": 0,
          "pins": [
            {"pin_id": "SW1.P", "tabs": [
              {"tab_id": "SW1.P.tab0", "position": {"x": 0, "y": -20}},
              {"tab_id": "SW1.P.tab1", "position": {"x": 20, "y": 0}}
            ]}
          ],
          "properties": {"mode": "toggle"}
        },
        {
          "component_id": "LED1",
          "component_type": "Indicator",
          "position": {"x": 40, "y": 0},
          "rotation": 0,
          "pins": [
            {"pin_id": "LED1.P", "tabs": [
              {"tab_id": "LED1.P.tab0", "position": {"x": -20, "y": 0}}
            ]}
          ]
        }
      ],
      "wires": [
        {"wire_id": "W1", "start_tab_id": "SW1.P.tab1", "end_tab_id": "LED1.P.tab0"}
      ]
    }
  ]
}`

type stubFactory struct{}

func (stubFactory) Build(spec ComponentSpec) (Component, error) {
	return newFakeComponentFromSpec(spec), nil
}

type fakeComponentFromSpec struct {
	spec ComponentSpec
	pins []*Pin
}

func newFakeComponentFromSpec(spec ComponentSpec) *fakeComponentFromSpec {
	pins := make([]*Pin, 0, len(spec.Pins))
	for _, p := range spec.Pins {
		pins = append(pins, p)
	}
	return &fakeComponentFromSpec{spec: spec, pins: pins}
}

func (f *fakeComponentFromSpec) ID() string                        { return f.spec.ID }
func (f *fakeComponentFromSpec) Type() string                       { return f.spec.Type }
func (f *fakeComponentFromSpec) PageID() string                     { return f.spec.PageID }
func (f *fakeComponentFromSpec) LinkName() string                   { return f.spec.LinkName }
func (f *fakeComponentFromSpec) Pins() []*Pin                       { return f.pins }
func (f *fakeComponentFromSpec) Properties() map[string]interface{} { return f.spec.Properties }
func (f *fakeComponentFromSpec) Position() Point                    { return f.spec.Position }
func (f *fakeComponentFromSpec) Rotation() int                      { return f.spec.Rotation }
func (f *fakeComponentFromSpec) FlipHorizontal() bool                { return f.spec.FlipH }
func (f *fakeComponentFromSpec) FlipVertical() bool                  { return f.spec.FlipV }
func (f *fakeComponentFromSpec) SimStart(VnetAccess, BridgeAccess)    {}
func (f *fakeComponentFromSpec) SimulateLogic(VnetAccess, BridgeAccess) {}
func (f *fakeComponentFromSpec) SimStop()                            {}
func (f *fakeComponentFromSpec) Interact(string, map[string]interface{}) (bool, error) {
	return false, nil
}
func (f *fakeComponentFromSpec) VisualState() VisualState { return VisualState{Type: f.spec.Type} }

func TestDecodeAndBuildRoundTrip(t *testing.T) {
	dto, err := Decode(strings.NewReader(sampleDoc))
	require.NoError(t, err)

	doc, err := Build(dto, stubFactory{})
	require.NoError(t, err)
	require.Len(t, doc.Pages, 1)

	page := doc.Pages[0]
	assert.Len(t, page.Components, 2)
	assert.Len(t, page.Wires, 1)
	_, ok := page.Tab("SW1.P.tab1")
	assert.True(t, ok)
}

func TestDecodeRejectsIncompatibleVersion(t *testing.T) {
	doc := strings.Replace(sampleDoc, `"version": "2.0"`, `"version": "3.0"`, 1)
	_, err := Decode(strings.NewReader(doc))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrIncompatibleVersion)
}

func TestDecodeRejectsDuplicateIDs(t *testing.T) {
	doc := strings.Replace(sampleDoc, `"component_id": "LED1"`, `"component_id": "SW1"`, 1)
	_, err := Decode(strings.NewReader(doc))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateID)
}

func TestDecodeRejectsDanglingWireReference(t *testing.T) {
	doc := strings.Replace(sampleDoc, `"end_tab_id": "LED1.P.tab0"`, `"end_tab_id": "NOPE"`, 1)
	_, err := Decode(strings.NewReader(doc))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDanglingReference)
}

func TestBuildRejectsUnconnectableLink(t *testing.T) {
	doc := strings.Replace(sampleDoc,
		`"component_type": "Indicator",`,
		`"component_type": "Indicator",
          "link_name": "ORPHAN",`, 1)
	doc = strings.Replace(doc, `"pins": [
            {"pin_id": "LED1.P", "tabs": [
              {"tab_id": "LED1.P.tab0", "position": {"x": -20, "y": 0}}
            ]}
          ]`, `"pins": []`, 1)
	// Remove the now-dangling wire reference to LED1.P.tab0 so this
	// test isolates the unconnectable-link check.
	doc = strings.Replace(doc,
		`{"wire_id": "W1", "start_tab_id": "SW1.P.tab1", "end_tab_id": "LED1.P.tab0"}`,
		`{"wire_id": "W1", "start_tab_id": "SW1.P.tab1"}`, 1)

	dto, err := Decode(strings.NewReader(doc))
	require.NoError(t, err)

	_, err = Build(dto, stubFactory{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingPin)
}
