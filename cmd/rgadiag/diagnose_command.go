package main

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"rgadiag/internal/engine"
	"rgadiag/internal/i18n"
	"rgadiag/internal/logging"
	"rgadiag/internal/services"
	"rgadiag/internal/spectrum"
	"rgadiag/internal/spectrumfile"
)

type diagnoseOptions struct {
	pressure      float64
	baked         bool
	lang          string
	format        string
	normalize     bool
	referenceMass int
}

// diagnoseOutput is the machine-readable form of one run.
type diagnoseOutput struct {
	RunID         string            `json:"run_id" yaml:"run_id"`
	Label         string            `json:"label,omitempty" yaml:"label,omitempty"`
	Baked         bool              `json:"baked" yaml:"baked"`
	TotalPressure *float64          `json:"total_pressure_mbar,omitempty" yaml:"total_pressure_mbar,omitempty"`
	Language      string            `json:"language" yaml:"language"`
	Summary       engine.Summary    `json:"summary" yaml:"summary"`
	Findings      []renderedFinding `json:"findings" yaml:"findings"`
	Faults        []engine.Fault    `json:"faults,omitempty" yaml:"faults,omitempty"`
}

// renderedFinding pairs a result with its localized text.
type renderedFinding struct {
	Type           string   `json:"type" yaml:"type"`
	Variant        string   `json:"variant,omitempty" yaml:"variant,omitempty"`
	Name           string   `json:"name" yaml:"name"`
	Severity       string   `json:"severity" yaml:"severity"`
	Confidence     float64  `json:"confidence" yaml:"confidence"`
	Description    string   `json:"description" yaml:"description"`
	Recommendation string   `json:"recommendation" yaml:"recommendation"`
	AffectedMasses []int    `json:"affected_masses" yaml:"affected_masses"`
	Evidence       []string `json:"evidence" yaml:"evidence"`
	Against        []string `json:"against,omitempty" yaml:"against,omitempty"`
}

func newDiagnoseCommand(ctx *commandContext) *cobra.Command {
	var opts diagnoseOptions

	cmd := &cobra.Command{
		Use:   "diagnose FILE",
		Short: "Diagnose a normalized peak spectrum",
		Long: "Load a normalized peak map (TOML, JSON or YAML), run every enabled detector\n" +
			"and report the findings with their evidence.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiagnose(cmd, ctx, args[0], opts)
		},
	}

	cmd.Flags().Float64Var(&opts.pressure, "pressure", 0, "Total pressure in mbar (overrides the file)")
	cmd.Flags().BoolVar(&opts.baked, "baked", false, "Mark the system as baked out (overrides the file)")
	cmd.Flags().StringVar(&opts.lang, "lang", "", "Report language (en, de)")
	cmd.Flags().StringVarP(&opts.format, "format", "o", "", "Output format: table, json, yaml")
	cmd.Flags().BoolVar(&opts.normalize, "normalize", false, "Rescale peaks to the reference mass before diagnosing")
	cmd.Flags().IntVar(&opts.referenceMass, "reference-mass", 0, "Reference mass used by --normalize")
	return cmd
}

func runDiagnose(cmd *cobra.Command, ctx *commandContext, path string, opts diagnoseOptions) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}

	in, err := spectrumfile.Load(path)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("pressure") {
		if math.IsNaN(opts.pressure) || opts.pressure < 0 {
			return services.Wrap(services.ErrValidation, "cli", "diagnose", "--pressure must be a non-negative mbar value", nil)
		}
		in = in.WithPressure(opts.pressure)
	}
	if flags.Changed("baked") {
		in = in.WithBaked(opts.baked)
	}

	normalize := cfg.Spectrum.Normalize
	if flags.Changed("normalize") {
		normalize = opts.normalize
	}
	reference := cfg.Spectrum.ReferenceMass
	if flags.Changed("reference-mass") {
		if opts.referenceMass < 1 {
			return services.Wrap(services.ErrValidation, "cli", "diagnose", "--reference-mass must be a positive mass", nil)
		}
		reference = opts.referenceMass
	}
	if normalize {
		in.Peaks = in.Peaks.Normalize(reference)
	}

	format := cfg.Output.Format
	if flags.Changed("format") {
		format = strings.ToLower(strings.TrimSpace(opts.format))
	}
	lang := cfg.Output.Language
	if flags.Changed("lang") {
		lang = opts.lang
	}
	renderer := i18n.New(lang)

	cat, err := ctx.catalog()
	if err != nil {
		return err
	}
	logger, closeLog, err := ctx.logger(cmd)
	if err != nil {
		return err
	}
	defer closeLog.Close()

	runID := uuid.NewString()
	runCtx := services.WithRunID(services.WithCommand(cmd.Context(), "diagnose"), runID)
	runLogger := logging.WithContext(runCtx, logger)
	runLogger.Info("diagnosis started",
		logging.String(logging.FieldEventType, "diagnose_start"),
		logging.String("spectrum", path),
		logging.Int("peaks", len(in.Peaks.Masses())),
		logging.Int("detectors", cat.Len()),
		logging.Bool("normalized", normalize),
	)

	started := time.Now()
	report := engine.New(cat, engine.Options{Workers: cfg.Engine.Workers, Logger: logger}).Run(runCtx, in)
	if err := runCtx.Err(); err != nil {
		return err
	}

	runLogger.Info("diagnosis finished",
		logging.String(logging.FieldEventType, "diagnose_complete"),
		logging.String("status", string(report.Summary.Status)),
		logging.String("state", string(report.Summary.State)),
		logging.Int("findings", len(report.Results)),
		logging.Duration("elapsed", time.Since(started)),
	)

	out := buildDiagnoseOutput(runID, in, report, renderer)
	if handled, err := writeStructured(cmd, format, out); handled {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), renderDiagnosis(out, renderer, newPalette(useColor(cmd, cfg.Output.Color))))
	return nil
}

func buildDiagnoseOutput(runID string, in spectrum.Input, report engine.Report, r *i18n.Renderer) diagnoseOutput {
	out := diagnoseOutput{
		RunID:    runID,
		Label:    in.Metadata.Label,
		Baked:    in.Metadata.Baked,
		Language: r.Language(),
		Summary:  report.Summary,
		Findings: make([]renderedFinding, 0, len(report.Results)),
		Faults:   report.Faults,
	}
	if mbar, ok := in.Pressure(); ok {
		out.TotalPressure = &mbar
	}
	for _, res := range report.Results {
		f := renderedFinding{
			Type:           string(res.Type),
			Variant:        res.Variant,
			Name:           r.Name(res.Type),
			Severity:       string(res.Severity),
			Confidence:     res.Confidence,
			Description:    r.Description(res),
			Recommendation: r.Recommendation(res),
			AffectedMasses: res.AffectedMasses,
		}
		for _, ev := range res.Evidence {
			if ev.Supports {
				f.Evidence = append(f.Evidence, r.Evidence(ev))
			} else {
				f.Against = append(f.Against, r.Evidence(ev))
			}
		}
		out.Findings = append(out.Findings, f)
	}
	return out
}
