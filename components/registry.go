package components

import (
	"github.com/katalvlaran/relaysim/model"
	"github.com/katalvlaran/relaysim/timer"
)

// Registry implements model.ComponentFactory, dispatching
// construction by ComponentSpec.Type. It is the single place that
// knows every concrete component type, mirroring the teacher's single
// NewMixedGraph entry point that folds every construction concern
// (core/api.go) behind one call.
type Registry struct {
	scheduler *timer.Scheduler
}

// NewRegistry creates a Registry. scheduler is shared by every
// DPDTRelay instance the registry builds — one per simulation run, so
// a relay's delayed transition is cancelled en masse on
// scheduler.Shutdown at sim_stop.
func NewRegistry(scheduler *timer.Scheduler) *Registry {
	return &Registry{scheduler: scheduler}
}

// Build constructs a concrete Component for spec.Type. Returns
// ErrUnknownType for any type this registry has no constructor for.
func (r *Registry) Build(spec model.ComponentSpec) (model.Component, error) {
	switch spec.Type {
	case "VCC":
		return NewVCC(spec)
	case "Switch":
		return NewSwitch(spec)
	case "Indicator":
		return NewIndicator(spec)
	case "DPDTRelay":
		return NewDPDTRelay(spec, r.scheduler)
	case "SubCircuit":
		return NewSubCircuit(spec)
	default:
		return nil, ErrUnknownType
	}
}
