package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"rgadiag/internal/catalog"
	"rgadiag/internal/diagnosis"
	"rgadiag/internal/i18n"
	"rgadiag/internal/services"
)

// detectorView is the machine-readable form of a catalog entry.
type detectorView struct {
	Type           string             `json:"type" yaml:"type"`
	Name           string             `json:"name" yaml:"name"`
	Description    string             `json:"description" yaml:"description"`
	Recommendation string             `json:"recommendation" yaml:"recommendation"`
	Display        catalog.Display    `json:"display" yaml:"display"`
	Validation     catalog.Validation `json:"validation" yaml:"validation"`
}

type categoryView struct {
	Category  string   `json:"category" yaml:"category"`
	Name      string   `json:"name" yaml:"name"`
	Detectors []string `json:"detectors" yaml:"detectors"`
}

type detectorsOptions struct {
	lang   string
	format string
}

func newDetectorsCommand(ctx *commandContext) *cobra.Command {
	var opts detectorsOptions

	detectorsCmd := &cobra.Command{
		Use:     "detectors",
		Aliases: []string{"detector"},
		Short:   "Inspect the built-in detector catalog",
	}
	detectorsCmd.PersistentFlags().StringVar(&opts.lang, "lang", "", "Output language (en, de)")
	detectorsCmd.PersistentFlags().StringVarP(&opts.format, "format", "o", "", "Output format: table, json, yaml")

	detectorsCmd.AddCommand(newDetectorsListCommand(ctx, &opts))
	detectorsCmd.AddCommand(newDetectorsShowCommand(ctx, &opts))
	detectorsCmd.AddCommand(newDetectorsCategoriesCommand(ctx, &opts))
	return detectorsCmd
}

// resolve applies flag overrides to the configured language and format.
func (o *detectorsOptions) resolve(cmd *cobra.Command, ctx *commandContext) (*i18n.Renderer, string, error) {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return nil, "", err
	}
	lang := cfg.Output.Language
	if cmd.Flags().Changed("lang") {
		lang = o.lang
	}
	format := cfg.Output.Format
	if cmd.Flags().Changed("format") {
		format = strings.ToLower(strings.TrimSpace(o.format))
	}
	return i18n.New(lang), format, nil
}

func newDetectorsListCommand(ctx *commandContext, opts *detectorsOptions) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List enabled detectors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, format, err := opts.resolve(cmd, ctx)
			if err != nil {
				return err
			}
			cat, err := ctx.catalog()
			if err != nil {
				return err
			}
			entries := cat.Entries()
			if category = strings.ToLower(strings.TrimSpace(category)); category != "" {
				entries = cat.InCategory(catalog.Category(category))
				if entries == nil {
					return services.Wrap(services.ErrNotFound, "cli", "detectors list",
						fmt.Sprintf("no enabled detectors in category %q", category), nil)
				}
			}

			views := make([]detectorView, 0, len(entries))
			for _, e := range entries {
				views = append(views, newDetectorView(e, r))
			}
			if handled, err := writeStructured(cmd, format, views); handled {
				return err
			}

			rows := make([][]string, 0, len(entries))
			for _, e := range entries {
				rows = append(rows, []string{
					e.Display.Icon,
					string(e.Type),
					r.Name(e.Type),
					r.Category(e.Display.Category),
					strconv.Itoa(e.Display.Priority),
					r.Method(e.Validation.Method),
				})
			}
			headers := []string{"", r.Label("type"), r.Label("diagnosis"), r.Label("category"), r.Label("priority"), r.Label("method")}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(r.Label("detectors", len(entries)), headers, rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignRight, alignLeft}))
			return nil
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "Only list detectors of this category")
	return cmd
}

func newDetectorsShowCommand(ctx *commandContext, opts *detectorsOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show TYPE",
		Short: "Describe one detector",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, format, err := opts.resolve(cmd, ctx)
			if err != nil {
				return err
			}
			cat, err := ctx.catalog()
			if err != nil {
				return err
			}
			name := strings.ToUpper(strings.TrimSpace(args[0]))
			entry, ok := cat.Lookup(diagnosis.Type(name))
			if !ok {
				return services.Wrap(services.ErrNotFound, "cli", "detectors show",
					fmt.Sprintf("unknown or disabled detector %q", args[0]), nil)
			}
			view := newDetectorView(entry, r)
			if handled, err := writeStructured(cmd, format, view); handled {
				return err
			}
			writeDetectorDetail(cmd.OutOrStdout(), view, r)
			return nil
		},
	}
}

func newDetectorsCategoriesCommand(ctx *commandContext, opts *detectorsOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List detector categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, format, err := opts.resolve(cmd, ctx)
			if err != nil {
				return err
			}
			cat, err := ctx.catalog()
			if err != nil {
				return err
			}
			groups := cat.ByCategory()
			views := make([]categoryView, 0, len(groups))
			for _, g := range groups {
				v := categoryView{Category: string(g.Category), Name: r.Category(g.Category)}
				for _, e := range g.Entries {
					v.Detectors = append(v.Detectors, string(e.Type))
				}
				views = append(views, v)
			}
			if handled, err := writeStructured(cmd, format, views); handled {
				return err
			}
			rows := make([][]string, 0, len(views))
			for _, v := range views {
				rows = append(rows, []string{v.Category, v.Name, strconv.Itoa(len(v.Detectors))})
			}
			headers := []string{"ID", r.Label("category"), r.Label("detectors", len(cat.Types()))}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable("", headers, rows, []columnAlignment{alignLeft, alignLeft, alignRight}))
			return nil
		},
	}
}

func newDetectorView(e catalog.Entry, r *i18n.Renderer) detectorView {
	base := diagnosis.Result{Type: e.Type}
	return detectorView{
		Type:           string(e.Type),
		Name:           r.Name(e.Type),
		Description:    r.Description(base),
		Recommendation: r.Recommendation(base),
		Display:        e.Display,
		Validation:     e.Validation,
	}
}

func writeDetectorDetail(w io.Writer, v detectorView, r *i18n.Renderer) {
	fmt.Fprintf(w, "%s %s (%s)\n", v.Display.Icon, v.Name, v.Type)
	fmt.Fprintf(w, "  %s\n", v.Description)
	fmt.Fprintf(w, "  → %s\n\n", v.Recommendation)
	fmt.Fprintf(w, "%s: %s\n", r.Label("category"), r.Category(v.Display.Category))
	fmt.Fprintf(w, "%s: %d\n", r.Label("priority"), v.Display.Priority)
	fmt.Fprintf(w, "%s: %s\n", r.Label("method"), r.Method(v.Validation.Method))
	if v.Validation.CrossValidation != "" {
		fmt.Fprintf(w, "%s: %s\n", r.Label("cross_validation"), v.Validation.CrossValidation)
	}
	if len(v.Validation.FixesApplied) > 0 {
		fmt.Fprintf(w, "%s:\n", r.Label("fixes"))
		for _, fix := range v.Validation.FixesApplied {
			fmt.Fprintf(w, "  - %s\n", fix)
		}
	}
	if len(v.Validation.Sources) > 0 {
		fmt.Fprintf(w, "%s:\n", r.Label("sources"))
		for _, src := range v.Validation.Sources {
			fmt.Fprintf(w, "  - %s\n", src)
		}
	}
}
