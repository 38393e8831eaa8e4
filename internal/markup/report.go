package markup

import (
	"fmt"
	"io"
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// Terminal styles for import reporting. Lipgloss degrades colors based
// on terminal capabilities.
var (
	StyleCyan   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	StyleGreen  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	StyleYellow = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	StyleGray   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// RenderStyle applies a lipgloss style to text when colors are
// enabled; otherwise the text passes through unmodified.
func RenderStyle(style lipgloss.Style, text string, useColors bool) string {
	if !useColors {
		return text
	}
	return style.Render(text)
}

// WriteReport prints a per-file summary of scan findings: how many
// styled elements were found and how many of their tokens the styling
// vocabulary recognized.
func WriteReport(w io.Writer, findings []Finding, stats ScanStats, useColors bool) {
	perFile := make(map[string][]Finding)
	for _, f := range findings {
		perFile[f.File] = append(perFile[f.File], f)
	}

	files := make([]string, 0, len(perFile))
	for file := range perFile {
		files = append(files, file)
	}
	sort.Strings(files)

	for _, file := range files {
		fmt.Fprintln(w, RenderStyle(StyleCyan, file, useColors))
		for _, f := range perFile[file] {
			recognized := 0
			for _, cat := range f.Design {
				if cat.IsActive {
					recognized += len(cat.Properties)
				}
			}
			fmt.Fprintf(w, "  %s %s %s\n",
				RenderStyle(StyleGreen, "<"+f.Tag+">", useColors),
				fmt.Sprintf("%d classes", len(f.Classes)),
				RenderStyle(StyleGray, fmt.Sprintf("(%d properties recognized)", recognized), useColors),
			)
		}
	}

	fmt.Fprintf(w, "%s %d styled elements across %d files (%d skipped)\n",
		RenderStyle(StyleGreen, "✓", useColors),
		len(findings), stats.FilesScanned, stats.FilesSkipped)
}
