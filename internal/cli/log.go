package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tabwrap/tabwrap/pkg/observability"
)

// newLogger creates a new logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion
// with the elapsed duration.
type progress struct {
	logger *log.Logger
	start  time.Time
}

// newProgress creates a progress tracker that captures the current time
// as start.
func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
// The duration is rounded to the nearest millisecond.
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

// logHooks forwards observability events to the logger at debug level.
// It is registered only in verbose mode so non-verbose runs keep the
// no-op hooks.
type logHooks struct {
	logger *log.Logger
}

func (h logHooks) OnStageStart(_ context.Context, stage string) {
	h.logger.Debug("stage start", "stage", stage)
}

func (h logHooks) OnStageEnd(_ context.Context, stage string, err error) {
	if err != nil {
		h.logger.Debug("stage failed", "stage", stage, "err", err)
	}
}

func (h logHooks) OnColumnPlanned(colIdx, evals int) {
	h.logger.Debug("column planned", "column", colIdx+1, "cost_evals", evals)
}

func (h logHooks) OnBisectFallback(colIdx, budget, scanned int) {
	h.logger.Debug("bisection fell back to local scan",
		"column", colIdx+1, "budget", budget, "scanned", scanned)
}

// registerLogHooks wires the observability hook points to l.
func registerLogHooks(l *log.Logger) {
	h := logHooks{logger: l}
	observability.RegisterPipelineHooks(h)
	observability.RegisterPlannerHooks(h)
}
