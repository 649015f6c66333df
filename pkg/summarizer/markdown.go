package summarizer

import (
	"fmt"
	"strings"
)

// Formatter converts a Summary to text.
type Formatter interface {
	Format(summary *Summary) string
}

// FormatFunc is a function adapter for the Formatter interface.
type FormatFunc func(summary *Summary) string

// Format implements the Formatter interface.
func (f FormatFunc) Format(summary *Summary) string {
	return f(summary)
}

// MarkdownFormatter renders a Summary as a Markdown document.
type MarkdownFormatter struct {
	translate func(string) string
	version   string
}

// MarkdownOption configures a MarkdownFormatter.
type MarkdownOption func(*MarkdownFormatter)

// WithTranslator translates headings and labels, e.g. with l10n.T.
func WithTranslator(translate func(string) string) MarkdownOption {
	return func(f *MarkdownFormatter) {
		f.translate = translate
	}
}

// WithVersion adds the tool version to the footer.
func WithVersion(version string) MarkdownOption {
	return func(f *MarkdownFormatter) {
		f.version = version
	}
}

// NewMarkdownFormatter creates a MarkdownFormatter.
func NewMarkdownFormatter(opts ...MarkdownOption) *MarkdownFormatter {
	f := &MarkdownFormatter{
		translate: func(s string) string { return s },
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Format implements Formatter.
func (f *MarkdownFormatter) Format(s *Summary) string {
	t := f.translate
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", t("Development Summary"))
	fmt.Fprintf(&b, "%s: %s\n\n", t("Generated at"), s.GeneratedAt.Format("2006-01-02 15:04:05"))

	fmt.Fprintf(&b, "## %s\n\n", t("Settings"))
	fmt.Fprintf(&b, "| %s | %s |\n|---|---|\n", t("Item"), t("Value"))
	row := func(label, value string) {
		fmt.Fprintf(&b, "| %s | %s |\n", t(label), escapeCell(value))
	}
	row("Input", s.Settings.InputDir)
	row("Output", s.Settings.OutputDir)
	row("Painter", s.Settings.Painter)
	position := s.Settings.Position
	if position == "" {
		position = t("default")
	}
	row("Position", position)
	row("Padding", yesNo(t, s.Settings.PadAround))
	row("Format", s.Settings.Format)
	if s.Settings.Format != "png" {
		row("Quality", fmt.Sprintf("%d", s.Settings.Quality))
	}
	if s.Settings.Workers > 0 {
		row("Workers", fmt.Sprintf("%d", s.Settings.Workers))
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "## %s\n\n", t("Photos"))
	if len(s.Photos) == 0 {
		fmt.Fprintf(&b, "%s\n\n", t("No photos were developed."))
	} else {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s |\n|---|---|---|---|---|---|\n",
			t("Source"), t("Output"), t("Size"), t("Camera"), t("Parameters"), t("Time"))
		for _, p := range s.Photos {
			if p.Failed() {
				fmt.Fprintf(&b, "| %s | %s | | | %s | %d ms |\n",
					escapeCell(p.Source), t("Failed"), escapeCell(p.Error), p.DurationMs)
				continue
			}
			fmt.Fprintf(&b, "| %s | %s | %dx%d (%s) | %s | %s | %d ms |\n",
				escapeCell(p.Source), escapeCell(p.Output), p.Width, p.Height, formatBytes(p.FileSize),
				escapeCell(cameraCell(p)), escapeCell(p.Parameters), p.DurationMs)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "## %s\n\n", t("Totals"))
	fmt.Fprintf(&b, "- %s: %d\n", t("Photos"), s.Totals.Photos)
	fmt.Fprintf(&b, "- %s: %d\n", t("Succeeded"), s.Totals.Succeeded)
	fmt.Fprintf(&b, "- %s: %d\n", t("Failed"), s.Totals.Failed)
	fmt.Fprintf(&b, "- %s: %s\n", t("Output size"), formatBytes(s.Totals.TotalBytes))
	fmt.Fprintf(&b, "- %s: %d ms\n", t("Elapsed"), s.Totals.DurationMs)

	if f.version != "" {
		fmt.Fprintf(&b, "\n---\n\n%s film %s\n", t("Generated by"), f.version)
	}
	return b.String()
}

func cameraCell(p PhotoInfo) string {
	switch {
	case p.Camera != "" && p.Lens != "":
		return p.Camera + " / " + p.Lens
	case p.Camera != "":
		return p.Camera
	default:
		return p.Lens
	}
}

func yesNo(t func(string) string, v bool) string {
	if v {
		return t("yes")
	}
	return t("no")
}

// escapeCell keeps a value inside one Markdown table cell.
func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "|", "\\|")
	return strings.ReplaceAll(s, "\n", " ")
}

// formatBytes renders a byte count with binary units.
func formatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit && exp < 2; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.2f %cB", float64(n)/float64(div), "KMG"[exp])
}

// Ensure MarkdownFormatter implements Formatter
var _ Formatter = (*MarkdownFormatter)(nil)
