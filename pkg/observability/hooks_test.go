package observability

import (
	"context"
	"testing"
)

type recordingHooks struct {
	stages    []string
	fallbacks int
	columns   int
}

func (r *recordingHooks) OnStageStart(_ context.Context, stage string) {
	r.stages = append(r.stages, stage)
}

func (r *recordingHooks) OnStageEnd(context.Context, string, error) {}

func (r *recordingHooks) OnColumnPlanned(int, int) { r.columns++ }

func (r *recordingHooks) OnBisectFallback(int, int, int) { r.fallbacks++ }

func TestRegisterAndReset(t *testing.T) {
	t.Cleanup(Reset)

	rec := &recordingHooks{}
	RegisterPipelineHooks(rec)
	RegisterPlannerHooks(rec)

	Pipeline().OnStageStart(context.Background(), "read")
	Planner().OnColumnPlanned(0, 10)
	Planner().OnBisectFallback(1, 5, 3)

	if len(rec.stages) != 1 || rec.stages[0] != "read" {
		t.Errorf("stages = %v, want [read]", rec.stages)
	}
	if rec.columns != 1 || rec.fallbacks != 1 {
		t.Errorf("columns = %d, fallbacks = %d, want 1 and 1", rec.columns, rec.fallbacks)
	}

	Reset()
	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Pipeline() after Reset is not the no-op implementation")
	}
	if _, ok := Planner().(NoopPlannerHooks); !ok {
		t.Error("Planner() after Reset is not the no-op implementation")
	}
}

func TestRegisterNilRestoresNoop(t *testing.T) {
	t.Cleanup(Reset)

	RegisterPipelineHooks(&recordingHooks{})
	RegisterPipelineHooks(nil)
	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Pipeline() after RegisterPipelineHooks(nil) is not the no-op implementation")
	}

	RegisterPlannerHooks(&recordingHooks{})
	RegisterPlannerHooks(nil)
	if _, ok := Planner().(NoopPlannerHooks); !ok {
		t.Error("Planner() after RegisterPlannerHooks(nil) is not the no-op implementation")
	}
}
