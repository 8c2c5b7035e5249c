package main

import (
	"strconv"
	"strings"

	"rgadiag/internal/diagnosis"
	"rgadiag/internal/i18n"
)

func renderDiagnosis(out diagnoseOutput, r *i18n.Renderer, pal palette) string {
	var b strings.Builder
	title := r.Label("spectrum")
	if out.Label != "" {
		title += ": " + out.Label
	}
	for _, line := range pal.section(title) {
		b.WriteString(line + "\n")
	}
	b.WriteString(pal.muted.Sprint(r.Label("run")+" "+out.RunID) + "\n")
	b.WriteString(r.Label("status") + ": " + pal.status(out.Summary.Status, r.Status(out.Summary.Status)))
	b.WriteString("  " + r.Label("state") + ": " + r.State(out.Summary.State) + "\n")
	b.WriteString(r.Label("counts", out.Summary.Critical, out.Summary.Warning, out.Summary.Info) + "\n\n")

	if len(out.Findings) == 0 {
		b.WriteString(r.Label("no_findings") + "\n")
	} else {
		rows := make([][]string, 0, len(out.Findings))
		for _, f := range out.Findings {
			sev := diagnosis.Severity(f.Severity)
			rows = append(rows, []string{
				severityIcon(sev),
				f.Name,
				pal.severity(sev, r.Severity(sev)),
				r.Number(f.Confidence*100, 0) + " %",
				joinInts(f.AffectedMasses),
			})
		}
		headers := []string{"", r.Label("diagnosis"), r.Label("severity"), r.Label("confidence"), r.Label("masses")}
		b.WriteString(renderTable("", headers, rows, []columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignLeft}))
		b.WriteString("\n")

		for _, f := range out.Findings {
			b.WriteString("\n")
			for _, line := range pal.section(severityIcon(diagnosis.Severity(f.Severity)) + " " + f.Name) {
				b.WriteString(line + "\n")
			}
			b.WriteString("  " + f.Description + "\n")
			for _, ev := range f.Evidence {
				b.WriteString("  " + r.Label("supports") + " " + ev + "\n")
			}
			for _, ev := range f.Against {
				b.WriteString(pal.muted.Sprint("  "+r.Label("against")+" "+ev) + "\n")
			}
			b.WriteString("  → " + f.Recommendation + "\n")
		}
	}

	if len(out.Faults) > 0 {
		b.WriteString("\n" + pal.warning.Sprint(r.Label("faults")) + "\n")
		for _, f := range out.Faults {
			b.WriteString("  " + string(f.Type) + ": " + f.Reason + "\n")
		}
	}
	return b.String()
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ", ")
}
