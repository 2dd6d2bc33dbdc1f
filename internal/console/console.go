// Package console renders the post-run terminal summary.
package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/storefront-qa/plangen/pkg/results"
)

// Theme defines colors and icons for the summary.
type Theme struct {
	Success lipgloss.Style
	Error   lipgloss.Style
	Muted   lipgloss.Style
	Bold    lipgloss.Style
	Icons   ThemeIcons
}

// ThemeIcons defines the icon set for a theme.
type ThemeIcons struct {
	Pass string
	Fail string
	Info string
}

// DefaultTheme returns the colored theme.
func DefaultTheme() Theme {
	return Theme{
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("34")),  // green
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")), // red
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("242")), // gray
		Bold:    lipgloss.NewStyle().Bold(true),
		Icons:   ThemeIcons{Pass: "✓", Fail: "✗", Info: "●"},
	}
}

// MonoTheme returns a theme with no color or styling, for non-TTY output
// and NO_COLOR runs.
func MonoTheme() Theme {
	plain := lipgloss.NewStyle()
	return Theme{
		Success: plain,
		Error:   plain,
		Muted:   plain,
		Bold:    plain,
		Icons:   ThemeIcons{Pass: "+", Fail: "x", Info: "-"},
	}
}

// metric is one summary line, keyed by a lower-case label.
type metric struct {
	label string
	value string
	icon  string
	style lipgloss.Style
}

var titleCaser = cases.Title(language.English)

// Summary writes the confirmation line and pass/fail metrics for the run.
func Summary(w io.Writer, theme Theme, stats results.Stats, outputPath string) {
	fmt.Fprintf(w, "%s %s\n", theme.Bold.Render("Test plan generated successfully:"), outputPath)

	metrics := []metric{
		{label: "passed", value: fmt.Sprintf("%d/%d tests", stats.Passed, stats.Total), icon: theme.Icons.Pass, style: theme.Success},
		{label: "failed", value: fmt.Sprintf("%d/%d tests", stats.Failed, stats.Total), icon: theme.Icons.Fail, style: theme.Error},
		{label: "rows", value: fmt.Sprintf("%d", stats.Total), icon: theme.Icons.Info, style: theme.Muted},
	}

	width := 0
	for _, m := range metrics {
		if lw := runewidth.StringWidth(m.label); lw > width {
			width = lw
		}
	}
	for _, m := range metrics {
		label := titleCaser.String(m.label)
		pad := strings.Repeat(" ", width-runewidth.StringWidth(m.label))
		fmt.Fprintf(w, "  %s\n", m.style.Render(m.icon+" "+label+":"+pad+" "+m.value))
	}
}
