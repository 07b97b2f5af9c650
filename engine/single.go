package engine

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/katalvlaran/relaysim/model"
	"github.com/katalvlaran/relaysim/state"
)

// SingleEngine runs every phase of the fixed-point loop on the
// caller's goroutine (spec.md §4.7). It is the reference
// implementation PooledEngine's parallel phases must match in
// functional outcome.
type SingleEngine struct {
	rt  *runtime
	cfg Config

	mu    sync.Mutex
	st    State
	stopRequested int32
}

// NewSingleEngine builds a SingleEngine over doc. doc's components
// must already be constructed (via model.Build + a
// model.ComponentFactory, typically components.Registry).
func NewSingleEngine(doc *model.Document, cfg Config) *SingleEngine {
	return &SingleEngine{rt: newRuntime(doc), cfg: cfg, st: Stopped}
}

// Warnings returns the dangling-link warnings produced when this
// engine's vnet topology was built (spec.md §4.2 rule 1).
func (e *SingleEngine) Warnings() []string { return e.rt.warnings }

func (e *SingleEngine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.st
}

func (e *SingleEngine) setState(s State) {
	e.mu.Lock()
	e.st = s
	e.mu.Unlock()
}

// Initialize resets the engine for a fresh run: sim_start on every
// component in document order, then marks every VNET dirty (spec.md
// §4.7 initialize()).
func (e *SingleEngine) Initialize() error {
	e.mu.Lock()
	if e.st != Stopped {
		e.mu.Unlock()
		return ErrWrongState
	}
	e.st = Initializing
	e.mu.Unlock()

	for _, id := range e.rt.componentOrder {
		e.rt.components[id].SimStart(e.rt.vnets, e.rt.bridges)
	}
	e.rt.vnets.Dirty.MarkAllDirty()

	for _, w := range e.rt.warnings {
		e.cfg.Logger.Warn().Msg(w)
	}

	e.setState(Stopped)
	return nil
}

// Run executes the fixed-point loop (spec.md §4.7 run()) until
// STABLE, OSCILLATING, TIMEOUT, or a Stop request.
func (e *SingleEngine) Run() (Statistics, error) {
	e.mu.Lock()
	if e.st != Stopped && e.st != Stable {
		e.mu.Unlock()
		return Statistics{}, ErrWrongState
	}
	e.st = Running
	e.mu.Unlock()

	atomic.StoreInt32(&e.stopRequested, 0)

	var stats Statistics
	start := time.Now()

	for {
		dirty := e.rt.vnets.Dirty.GetDirty()
		if len(dirty) == 0 {
			stats.Stable = true
			stats.TimeToStability = time.Since(start)
			e.setState(Stable)
			break
		}

		changed := make(map[string]state.PinState, len(dirty))
		for _, id := range dirty {
			newState := e.rt.eval.Eval(id)
			if v, ok := e.rt.vnets.Get(id); ok && v.State() != newState {
				changed[id] = newState
			}
		}

		e.rt.vnets.Dirty.ClearDirtyBatch(dirty)
		e.rt.coord.QueueForVnets(dirty)

		for id, newState := range changed {
			e.cfg.Logger.Debug().Str("vnet_id", id).Str("new_state", newState.String()).Msg("propagating vnet state change")
			e.rt.prop.Propagate(id, newState)
		}

		e.rt.coord.StartUpdates()
		for _, id := range e.rt.coord.PendingComponents() {
			comp, ok := e.rt.components[id]
			if ok {
				if err := runComponentSafely(comp, e.rt.vnets, e.rt.bridges); err != nil {
					stats.ComponentErrors++
					e.cfg.Logger.Error().Err(err).Str("component_id", id).Msg("simulate_logic failed")
				} else {
					stats.SuccessfulComponents++
				}
				stats.ComponentsUpdated++
			}
			e.rt.coord.MarkComplete(id)
		}

		if err := e.rt.coord.WaitUntilComplete(e.cfg.UpdateWaitTimeout); err != nil {
			e.setState(Error)
			stats.TotalTime = time.Since(start)
			e.cfg.Logger.Error().Err(err).Int("iteration", stats.Iterations).Msg("update coordinator wait timed out")
			return stats, ErrBarrierTimeout
		}

		stats.Iterations++
		if stats.Iterations >= e.cfg.MaxIterations {
			stats.MaxIterationsReached = true
			e.setState(Oscillating)
			e.cfg.Logger.Warn().Int("iteration", stats.Iterations).Msg("reached max_iterations without stabilizing")
			break
		}
		if time.Since(start) >= e.cfg.TimeoutSeconds {
			stats.TimeoutReached = true
			e.setState(Timeout)
			e.cfg.Logger.Warn().Dur("elapsed", time.Since(start)).Msg("run exceeded timeout_seconds")
			break
		}
		if atomic.LoadInt32(&e.stopRequested) != 0 {
			e.setState(Stopped)
			break
		}
	}

	stats.TotalTime = time.Since(start)
	return stats, nil
}

// Stop requests the loop terminate at its next iteration boundary.
func (e *SingleEngine) Stop() {
	atomic.StoreInt32(&e.stopRequested, 1)
}

// Shutdown resets the update coordinator, calls SimStop on every
// component, and leaves the engine STOPPED. It does not wait for
// in-flight delayed component effects and timeout is unused: those run
// on the *timer.Scheduler owned by whoever built the document's
// component registry, not by the engine, and that owner shuts it down.
func (e *SingleEngine) Shutdown(timeout time.Duration) error {
	e.rt.coord.Reset()
	for _, id := range e.rt.componentOrder {
		e.rt.components[id].SimStop()
	}
	e.setState(Stopped)
	return nil
}

// Interact forwards a user action to one component. An effective
// change marks every VNET touching the component's pins dirty, so the
// change is picked up on the next Run pass (spec.md §6 step 2: "an
// immediate pin state change that will be picked up on the next
// iteration") — the component itself has no VnetAccess at Interact
// time, so this bookkeeping is the engine's job, not the component's.
func (e *SingleEngine) Interact(componentID, action string, params map[string]interface{}) (bool, error) {
	comp, ok := e.rt.components[componentID]
	if !ok {
		return false, fmt.Errorf("engine: unknown component %q", componentID)
	}
	changed, err := comp.Interact(action, params)
	if err != nil {
		return false, err
	}
	if changed {
		markComponentDirty(e.rt, comp)
	}
	return changed, nil
}

// VisualState returns one component's GUI-facing snapshot.
func (e *SingleEngine) VisualState(componentID string) (model.VisualState, bool) {
	comp, ok := e.rt.components[componentID]
	if !ok {
		return model.VisualState{}, false
	}
	return comp.VisualState(), true
}

// markComponentDirty marks dirty every VNET currently containing a tab
// of one of comp's pins.
func markComponentDirty(rt *runtime, comp model.Component) {
	for _, pin := range comp.Pins() {
		for _, tab := range pin.Tabs() {
			rt.vnets.MarkTabDirty(tab.ID())
		}
	}
}

// runComponentSafely calls comp.SimulateLogic, recovering a panic into
// an error (spec.md §7 TransientComponentError — "simulate_logic
// threw. Caught, counted ..., the loop continues"). Component
// lifecycle methods return no error in this module's Component
// interface, so a panic is the only channel a component has to signal
// failure; the engine is the designated recoverer.
func runComponentSafely(comp model.Component, vnets model.VnetAccess, bridges model.BridgeAccess) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &ComponentError{ComponentID: comp.ID(), Err: fmt.Errorf("%v", r)}
		}
	}()
	comp.SimulateLogic(vnets, bridges)
	return nil
}
