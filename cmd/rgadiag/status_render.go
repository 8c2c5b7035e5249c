package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"rgadiag/internal/diagnosis"
	"rgadiag/internal/engine"
)

// palette colors report text. A disabled palette returns text unchanged.
type palette struct {
	critical *color.Color
	warning  *color.Color
	info     *color.Color
	clean    *color.Color
	heading  *color.Color
	muted    *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		critical: color.New(color.FgRed, color.Bold),
		warning:  color.New(color.FgYellow, color.Bold),
		info:     color.New(color.FgCyan),
		clean:    color.New(color.FgGreen, color.Bold),
		heading:  color.New(color.FgBlue, color.Bold),
		muted:    color.New(color.Faint),
	}
	for _, c := range []*color.Color{p.critical, p.warning, p.info, p.clean, p.heading, p.muted} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(s diagnosis.Severity, text string) string {
	switch s {
	case diagnosis.SeverityCritical:
		return p.critical.Sprint(text)
	case diagnosis.SeverityWarning:
		return p.warning.Sprint(text)
	default:
		return p.info.Sprint(text)
	}
}

func (p palette) status(s engine.Status, text string) string {
	if s == engine.StatusClean {
		return p.clean.Sprint(text)
	}
	return p.severity(diagnosis.Severity(s), text)
}

func (p palette) section(title string) []string {
	line := fmt.Sprintf("== %s ==", strings.TrimSpace(title))
	return []string{p.heading.Sprint(line)}
}

func severityIcon(s diagnosis.Severity) string {
	switch s {
	case diagnosis.SeverityCritical:
		return "🔴"
	case diagnosis.SeverityWarning:
		return "🟡"
	default:
		return "🔵"
	}
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
