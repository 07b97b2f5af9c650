package engine

import (
	"context"
	"fmt"
	goruntime "runtime"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/katalvlaran/relaysim/model"
	"github.com/katalvlaran/relaysim/state"
)

// PooledEngine runs each phase of the fixed-point loop (spec.md §4.7)
// across a bounded worker pool (spec.md §4.8): evaluation, propagation,
// and component-logic calls within one pass are each fanned out, but
// the phases themselves stay strictly sequential — a pass's propagate
// phase never starts before every vnet in that pass has been evaluated,
// and component-logic never starts before every changed vnet has been
// propagated. The functional outcome of a run must not depend on which
// engine ran it, only its timing; see single.go for the sequential
// reference the parallel phases here must agree with.
type PooledEngine struct {
	rt  *runtime
	cfg Config

	mu sync.Mutex
	st State

	stopRequested int32
}

// NewPooledEngine builds a PooledEngine over doc.
func NewPooledEngine(doc *model.Document, cfg Config) *PooledEngine {
	return &PooledEngine{rt: newRuntime(doc), cfg: cfg, st: Stopped}
}

func (e *PooledEngine) Warnings() []string { return e.rt.warnings }

func (e *PooledEngine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.st
}

func (e *PooledEngine) setState(s State) {
	e.mu.Lock()
	e.st = s
	e.mu.Unlock()
}

func (e *PooledEngine) Initialize() error {
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

func (e *PooledEngine) workerWeight() int64 {
	n := e.cfg.WorkerCount
	if n <= 0 {
		n = goruntime.NumCPU()
	}
	return int64(n)
}

// Run executes the fixed-point loop, parallelizing each phase's inner
// work across e.cfg.WorkerCount workers bounded by a weighted
// semaphore, each phase bounded by e.cfg.PhaseBarrierTimeout.
func (e *PooledEngine) Run() (Statistics, error) {
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
	weight := e.workerWeight()

	for {
		dirty := e.rt.vnets.Dirty.GetDirty()
		if len(dirty) == 0 {
			stats.Stable = true
			stats.TimeToStability = time.Since(start)
			e.setState(Stable)
			break
		}

		changed, err := e.evaluatePhase(dirty, weight)
		if err != nil {
			e.setState(Error)
			stats.TotalTime = time.Since(start)
			e.cfg.Logger.Error().Err(err).Msg("evaluate phase failed")
			return stats, err
		}
		stats.VnetsProcessedParallel += len(dirty)

		e.rt.vnets.Dirty.ClearDirtyBatch(dirty)
		e.rt.coord.QueueForVnets(dirty)

		if err := e.propagatePhase(changed, weight); err != nil {
			e.setState(Error)
			stats.TotalTime = time.Since(start)
			e.cfg.Logger.Error().Err(err).Msg("propagate phase failed")
			return stats, err
		}

		e.rt.coord.StartUpdates()
		pending := e.rt.coord.PendingComponents()
		updated, succeeded, failed, err := e.componentPhase(pending, weight)
		if err != nil {
			e.setState(Error)
			stats.TotalTime = time.Since(start)
			e.cfg.Logger.Error().Err(err).Msg("component phase failed")
			return stats, err
		}
		stats.ComponentsUpdated += updated
		stats.SuccessfulComponents += succeeded
		stats.ComponentErrors += failed
		stats.ComponentsProcessedParallel += len(pending)
		if failed > 0 {
			e.cfg.Logger.Error().Int("failed", failed).Msg("simulate_logic failed for one or more components")
		}

		if err := e.rt.coord.WaitUntilComplete(e.cfg.UpdateWaitTimeout); err != nil {
			e.setState(Error)
			stats.TotalTime = time.Since(start)
			e.cfg.Logger.Error().Err(err).Msg("update coordinator wait timed out")
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

// evaluatePhase evaluates every dirty vnet in parallel, returning the
// subset whose state actually changed.
func (e *PooledEngine) evaluatePhase(dirty []string, weight int64) (map[string]state.PinState, error) {
	ctx, cancel := context.WithTimeout(context.Background(), e.cfg.PhaseBarrierTimeout)
	defer cancel()

	sem := semaphore.NewWeighted(weight)
	g, gctx := errgroup.WithContext(ctx)

	var mu sync.Mutex
	changed := make(map[string]state.PinState, len(dirty))

	for _, id := range dirty {
		id := id
		if err := sem.Acquire(gctx, 1); err != nil {
			return nil, fmt.Errorf("engine: evaluate phase: %w", ErrBarrierTimeout)
		}
		g.Go(func() error {
			defer sem.Release(1)
			newState := e.rt.eval.Eval(id)
			if v, ok := e.rt.vnets.Get(id); ok && v.State() != newState {
				mu.Lock()
				changed[id] = newState
				mu.Unlock()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("engine: evaluate phase: %w", ErrBarrierTimeout)
	}
	return changed, nil
}

// propagatePhase applies every changed vnet's new state in parallel.
func (e *PooledEngine) propagatePhase(changed map[string]state.PinState, weight int64) error {
	ctx, cancel := context.WithTimeout(context.Background(), e.cfg.PhaseBarrierTimeout)
	defer cancel()

	sem := semaphore.NewWeighted(weight)
	g, gctx := errgroup.WithContext(ctx)

	for id, newState := range changed {
		id, newState := id, newState
		if err := sem.Acquire(gctx, 1); err != nil {
			return fmt.Errorf("engine: propagate phase: %w", ErrBarrierTimeout)
		}
		g.Go(func() error {
			defer sem.Release(1)
			e.cfg.Logger.Debug().Str("vnet_id", id).Str("new_state", newState.String()).Msg("propagating vnet state change")
			e.rt.prop.Propagate(id, newState)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("engine: propagate phase: %w", ErrBarrierTimeout)
	}
	return nil
}

// componentPhase calls SimulateLogic on every pending component in
// parallel, recovering per-component panics without aborting the pass
// (spec.md §7 TransientComponentError).
func (e *PooledEngine) componentPhase(pending []string, weight int64) (updated, succeeded, failed int, err error) {
	ctx, cancel := context.WithTimeout(context.Background(), e.cfg.PhaseBarrierTimeout)
	defer cancel()

	sem := semaphore.NewWeighted(weight)
	g, gctx := errgroup.WithContext(ctx)

	var updatedCt, succeededCt, failedCt int64

	for _, id := range pending {
		id := id
		comp, ok := e.rt.components[id]
		if !ok {
			e.rt.coord.MarkComplete(id)
			continue
		}
		if acqErr := sem.Acquire(gctx, 1); acqErr != nil {
			return 0, 0, 0, fmt.Errorf("engine: component phase: %w", ErrBarrierTimeout)
		}
		g.Go(func() error {
			defer sem.Release(1)
			defer e.rt.coord.MarkComplete(id)
			atomic.AddInt64(&updatedCt, 1)
			if runErr := runComponentSafely(comp, e.rt.vnets, e.rt.bridges); runErr != nil {
				atomic.AddInt64(&failedCt, 1)
				e.cfg.Logger.Error().Err(runErr).Str("component_id", id).Msg("simulate_logic failed")
			} else {
				atomic.AddInt64(&succeededCt, 1)
			}
			return nil
		})
	}
	if waitErr := g.Wait(); waitErr != nil {
		return 0, 0, 0, fmt.Errorf("engine: component phase: %w", ErrBarrierTimeout)
	}
	return int(updatedCt), int(succeededCt), int(failedCt), nil
}

// Stop requests the loop terminate at its next pass boundary.
func (e *PooledEngine) Stop() {
	atomic.StoreInt32(&e.stopRequested, 1)
}

// Shutdown mirrors SingleEngine.Shutdown: the scheduler that owns any
// in-flight delayed component effect is shut down by the document's
// loader alongside this call, not by the engine itself.
func (e *PooledEngine) Shutdown(timeout time.Duration) error {
	e.rt.coord.Reset()
	for _, id := range e.rt.componentOrder {
		e.rt.components[id].SimStop()
	}
	e.setState(Stopped)
	return nil
}

// Interact forwards a user action to one component; see
// SingleEngine.Interact for why the engine, not the component, marks
// the resulting VNETs dirty.
func (e *PooledEngine) Interact(componentID, action string, params map[string]interface{}) (bool, error) {
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
func (e *PooledEngine) VisualState(componentID string) (model.VisualState, bool) {
	comp, ok := e.rt.components[componentID]
	if !ok {
		return model.VisualState{}, false
	}
	return comp.VisualState(), true
}
