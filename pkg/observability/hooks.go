// Package observability provides hook points for instrumenting the
// formatting pipeline and the width planner without coupling them to a
// metrics or tracing backend. Consumers register implementations at
// startup; the defaults are no-ops so uninstrumented runs pay only an
// interface call.
package observability

import (
	"context"
	"sync"
)

// PipelineHooks receives stage-level notifications from a pipeline run.
type PipelineHooks interface {
	// OnStageStart is called before a pipeline stage begins.
	OnStageStart(ctx context.Context, stage string)

	// OnStageEnd is called after a pipeline stage finishes. err is nil
	// on success.
	OnStageEnd(ctx context.Context, stage string, err error)
}

// PlannerHooks receives notifications from the width search. The
// planner is a tight pure loop, so these carry no context.
type PlannerHooks interface {
	// OnColumnPlanned is called once per undecided column after its DP
	// layer is complete. evals is the cumulative number of cost
	// evaluations so far.
	OnColumnPlanned(colIdx, evals int)

	// OnBisectFallback is called when a bisection step could not verify
	// its candidate and fell back to a local scan. scanned is the number
	// of additional splits probed.
	OnBisectFallback(colIdx, budget, scanned int)
}

// NoopPipelineHooks is a PipelineHooks that does nothing.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnStageStart(context.Context, string)      {}
func (NoopPipelineHooks) OnStageEnd(context.Context, string, error) {}

// NoopPlannerHooks is a PlannerHooks that does nothing.
type NoopPlannerHooks struct{}

func (NoopPlannerHooks) OnColumnPlanned(int, int)       {}
func (NoopPlannerHooks) OnBisectFallback(int, int, int) {}

var (
	mu       sync.RWMutex
	pipeline PipelineHooks = NoopPipelineHooks{}
	planner  PlannerHooks  = NoopPlannerHooks{}
)

// RegisterPipelineHooks installs h as the active pipeline hooks.
// Passing nil restores the no-op implementation.
func RegisterPipelineHooks(h PipelineHooks) {
	mu.Lock()
	defer mu.Unlock()
	if h == nil {
		pipeline = NoopPipelineHooks{}
		return
	}
	pipeline = h
}

// RegisterPlannerHooks installs h as the active planner hooks.
// Passing nil restores the no-op implementation.
func RegisterPlannerHooks(h PlannerHooks) {
	mu.Lock()
	defer mu.Unlock()
	if h == nil {
		planner = NoopPlannerHooks{}
		return
	}
	planner = h
}

// Pipeline returns the active pipeline hooks.
func Pipeline() PipelineHooks {
	mu.RLock()
	defer mu.RUnlock()
	return pipeline
}

// Planner returns the active planner hooks.
func Planner() PlannerHooks {
	mu.RLock()
	defer mu.RUnlock()
	return planner
}

// Reset restores all hooks to their no-op defaults. Intended for tests.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	pipeline = NoopPipelineHooks{}
	planner = NoopPlannerHooks{}
}
