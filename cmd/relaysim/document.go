package main

import (
	"fmt"
	"os"
	"time"

	"github.com/katalvlaran/relaysim/components"
	"github.com/katalvlaran/relaysim/config"
	"github.com/katalvlaran/relaysim/engine"
	"github.com/katalvlaran/relaysim/model"
	"github.com/katalvlaran/relaysim/timer"
)

// loadedEngine bundles the engine with the scheduler its registry was
// built with, so close can shut the scheduler down before the engine:
// scheduler.Shutdown waits up to the timeout for a relay transition
// already running (transitions not yet fired are abandoned), and only
// then does engine.Shutdown call SimStop.
type loadedEngine struct {
	eng       engine.Engine
	scheduler *timer.Scheduler
}

// buildEngine decodes docPath, builds the in-memory Document via
// components.Registry, and wires an engine.Engine over it sized by
// engine.New's component-count threshold.
func buildEngine(docPath string, cfg config.FileConfig) (*loadedEngine, error) {
	f, err := os.Open(docPath)
	if err != nil {
		return nil, fmt.Errorf("opening document: %w", err)
	}
	defer f.Close()

	dto, err := model.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding document: %w", err)
	}

	scheduler := timer.NewScheduler()
	registry := components.NewRegistry(scheduler)

	doc, err := model.Build(dto, registry)
	if err != nil {
		scheduler.Shutdown(0)
		return nil, fmt.Errorf("building document: %w", err)
	}

	eng := engine.New(doc, cfg.EngineConfig())
	return &loadedEngine{eng: eng, scheduler: scheduler}, nil
}

func (le *loadedEngine) close(timeout time.Duration) {
	_ = le.scheduler.Shutdown(timeout)
	_ = le.eng.Shutdown(timeout)
}
