package components

import (
	"testing"

	"github.com/katalvlaran/relaysim/model"
	"github.com/katalvlaran/relaysim/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func indicatorSpec(id string) model.ComponentSpec {
	return model.ComponentSpec{
		ID:         id,
		Type:       "Indicator",
		PageID:     "pg1",
		Properties: map[string]interface{}{},
		Pins:       map[string]*model.Pin{"LED": newPinWithTabs(id+".LED", id, 4)},
	}
}

func TestIndicatorVisualStateReflectsPin(t *testing.T) {
	spec := indicatorSpec("LED1")
	led, err := NewIndicator(spec)
	require.NoError(t, err)

	vs := led.VisualState()
	assert.Equal(t, "OFF", vs.Extra["indicator_state"])

	spec.Pins["LED"].Set(state.HIGH)
	vs = led.VisualState()
	assert.Equal(t, "ON", vs.Extra["indicator_state"])
}

func TestIndicatorNeverDrives(t *testing.T) {
	spec := indicatorSpec("LED1")
	led, err := NewIndicator(spec)
	require.NoError(t, err)

	mgr, bm := buildSingle(led)
	led.SimStart(mgr, bm)
	led.SimulateLogic(mgr, bm)

	assert.Equal(t, state.FLOAT, spec.Pins["LED"].State())
}
