package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/runoshun/backlog/internal/domain"
)

// colors is the terminal palette for progress output.
var colors = struct {
	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color
	Muted   lipgloss.Color
	Primary lipgloss.Color
}{
	Success: lipgloss.Color("#00B894"), // Green
	Warning: lipgloss.Color("#FDCB6E"), // Yellow
	Error:   lipgloss.Color("#D63031"), // Red
	Muted:   lipgloss.Color("#636E72"), // Gray
	Primary: lipgloss.Color("#6C5CE7"), // Purple
}

// consoleReporter prints publishing progress.
// Styles are bound to a renderer for w, so non-terminal writers get plain text.
type consoleReporter struct {
	w       io.Writer
	success lipgloss.Style
	warning lipgloss.Style
	failure lipgloss.Style
	muted   lipgloss.Style
	heading lipgloss.Style
}

func newConsoleReporter(w io.Writer) *consoleReporter {
	r := lipgloss.NewRenderer(w)
	return &consoleReporter{
		w:       w,
		success: r.NewStyle().Foreground(colors.Success),
		warning: r.NewStyle().Foreground(colors.Warning),
		failure: r.NewStyle().Foreground(colors.Error),
		muted:   r.NewStyle().Foreground(colors.Muted),
		heading: r.NewStyle().Foreground(colors.Primary).Bold(true),
	}
}

func (r *consoleReporter) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(r.w, format, args...)
}

// Parsing announces the input file.
func (r *consoleReporter) Parsing(path string) {
	r.printf("Parsing %s...\n", path)
}

// Parsed implements domain.Reporter.
func (r *consoleReporter) Parsed(count int, snapshotPath string) {
	r.printf("Found %d issues\n", count)
	if snapshotPath != "" {
		r.printf("Saved issues to %s\n", snapshotPath)
	}
}

// LabelsPlanned implements domain.Reporter.
func (r *consoleReporter) LabelsPlanned(labels []string) {
	r.printf("\nFound %d unique labels: %s\n", len(labels), strings.Join(labels, ", "))
	r.printf("%s\n", r.heading.Render("Creating labels..."))
}

// LabelResult implements domain.Reporter.
func (r *consoleReporter) LabelResult(name string, outcome domain.LabelOutcome, err error) {
	switch {
	case err != nil:
		r.printf("  %s\n", r.failure.Render(fmt.Sprintf("✗ Error creating label '%s': %v", name, err)))
	case outcome == domain.LabelExisted:
		r.printf("  %s\n", r.warning.Render(fmt.Sprintf("⚠ Label '%s': %s", name, outcome)))
	default:
		r.printf("  %s\n", r.success.Render("✓ Created label: "+name))
	}
}

// IssuesPlanned implements domain.Reporter.
func (r *consoleReporter) IssuesPlanned(total int) {
	r.printf("\n%s\n", r.heading.Render(fmt.Sprintf("Creating %d issues...", total)))
}

// IssueStarted implements domain.Reporter.
func (r *consoleReporter) IssueStarted(index, total int, title string) {
	r.printf("\n%s Creating: %s\n", r.muted.Render(fmt.Sprintf("[%d/%d]", index, total)), title)
}

// IssueResult implements domain.Reporter.
func (r *consoleReporter) IssueResult(_ int, ref string, err error) {
	if err != nil {
		r.printf("  %s\n", r.failure.Render(fmt.Sprintf("✗ Failed: %v", err)))
		return
	}
	r.printf("  %s\n", r.success.Render("✓ Created: "+ref))
}

// Done prints the final summary.
func (r *consoleReporter) Done(created, failed int) {
	r.printf("\n%s\n", strings.Repeat("=", 50))
	r.printf("Done! Created: %d, Failed: %d\n", created, failed)
}

// Preflight prints a preflight failure with its remediation hints.
func (r *consoleReporter) Preflight(err error) {
	var pe *domain.PreflightError
	if !errors.As(err, &pe) {
		r.printf("\n%s\n", r.warning.Render("⚠ "+err.Error()))
		return
	}
	r.printf("\n%s\n", r.warning.Render("⚠ "+pe.Err.Error()))
	for _, hint := range pe.Hints {
		r.printf("%s\n", hint)
	}
}

// LabelsDone prints the label summary.
func (r *consoleReporter) LabelsDone(created, existed, failed int) {
	r.printf("\n%s\n", strings.Repeat("=", 50))
	r.printf("Done! Labels created: %d, existed: %d, failed: %d\n", created, existed, failed)
}
