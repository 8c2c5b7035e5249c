package engine

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"rgadiag/internal/catalog"
	"rgadiag/internal/diagnosis"
	"rgadiag/internal/logging"
	"rgadiag/internal/spectrum"
)

// Options configures an Engine.
type Options struct {
	// Workers bounds concurrent detector calls. Zero or less uses GOMAXPROCS.
	Workers int
	Logger  *slog.Logger
}

// Fault records a detector whose verdict was discarded.
type Fault struct {
	Type   diagnosis.Type `json:"type" yaml:"type"`
	Reason string         `json:"reason" yaml:"reason"`
}

// Report is the outcome of one run.
type Report struct {
	Results []diagnosis.Result `json:"results" yaml:"results"`
	Summary Summary            `json:"summary" yaml:"summary"`
	Faults  []Fault            `json:"faults,omitempty" yaml:"faults,omitempty"`
}

// Engine evaluates a fixed catalog. It is safe for concurrent use.
type Engine struct {
	catalog *catalog.Catalog
	workers int
	logger  *slog.Logger
}

// New binds an engine to cat.
func New(cat *catalog.Catalog, opts Options) *Engine {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Engine{
		catalog: cat,
		workers: workers,
		logger:  logging.NewComponentLogger(logger, "engine"),
	}
}

// Catalog returns the catalog the engine evaluates.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

type outcome struct {
	result *diagnosis.Result
	fault  *Fault
}

// Run evaluates every detector against in. Detectors see a private copy of
// the input. Cancelling ctx skips detectors that have not started yet; they
// are reported as faults.
func (e *Engine) Run(ctx context.Context, in spectrum.Input) Report {
	entries := e.catalog.Entries()
	outcomes := make([]outcome, len(entries))
	logger := logging.WithContext(ctx, e.logger)
	started := time.Now()

	var g errgroup.Group
	g.SetLimit(e.workers)
	for i, entry := range entries {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				outcomes[i] = outcome{fault: &Fault{Type: entry.Type, Reason: err.Error()}}
				return nil
			}
			outcomes[i] = evaluate(entry, in.Clone())
			return nil
		})
	}
	_ = g.Wait()

	report := Report{Results: make([]diagnosis.Result, 0, len(outcomes))}
	for _, o := range outcomes {
		if o.fault != nil {
			report.Faults = append(report.Faults, *o.fault)
			logging.WarnWithContext(logger, "detector verdict discarded", "detector_fault",
				logging.String(logging.FieldDiagnosis, string(o.fault.Type)),
				logging.String("reason", o.fault.Reason),
				logging.String(logging.FieldImpact, "diagnosis omitted from the report"),
				logging.String(logging.FieldErrorHint, "report this spectrum with the detector name"),
			)
			continue
		}
		if o.result != nil {
			report.Results = append(report.Results, *o.result)
		}
	}
	report.Summary = Summarize(report.Results, in.Metadata)

	logger.Debug("diagnosis run complete",
		logging.String(logging.FieldEventType, "run_complete"),
		logging.Int("detectors", len(entries)),
		logging.Int("results", len(report.Results)),
		logging.Int("faults", len(report.Faults)),
		logging.String("status", string(report.Summary.Status)),
		logging.String("state", string(report.Summary.State)),
		logging.Duration("elapsed", time.Since(started)),
	)
	return report
}

func evaluate(entry catalog.Entry, in spectrum.Input) (out outcome) {
	defer func() {
		if r := recover(); r != nil {
			out = outcome{fault: &Fault{Type: entry.Type, Reason: fmt.Sprintf("panic: %v", r)}}
		}
	}()
	result := entry.Detect(in)
	if result == nil {
		return outcome{}
	}
	if result.Type != entry.Type {
		return outcome{fault: &Fault{
			Type:   entry.Type,
			Reason: fmt.Sprintf("detector reported type %s", result.Type),
		}}
	}
	if err := diagnosis.Validate(result); err != nil {
		return outcome{fault: &Fault{Type: entry.Type, Reason: err.Error()}}
	}
	return outcome{result: result}
}
