// Package controller provides output adapters for displaying scaffolding results.
package controller

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "viewstrap.dev/pkg/viewstrap/internal/model"
)

// ReportFormat selects how a run report is rendered.
type ReportFormat string

// Available ReportFormat values.
const (
	ReportNone ReportFormat = ""
	ReportText ReportFormat = "text"
	ReportYAML ReportFormat = "yaml"
)

// ParseReportFormat validates a --report value.
func ParseReportFormat(value string) (ReportFormat, bool) {
	switch ReportFormat(value) {
	case ReportNone, ReportText, ReportYAML:
		return ReportFormat(value), true
	}

	return ReportNone, false
}

// UI defines how workflow results reach the user.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	// DisplayText writes a rewritten buffer to standard output.
	DisplayText(ctx context.Context, text string) error
	// DisplayDiff shows a unified diff; an empty diff means nothing changed.
	DisplayDiff(ctx context.Context, diff string) error
	// DisplayReport summarizes a scaffolding run.
	DisplayReport(ctx context.Context, report m.Report, format ReportFormat) error
	// DisplayStatus renders the scaffolding state of many files.
	DisplayStatus(ctx context.Context, statuses []m.FileStatus) error
	// Confirm shows the pending diff for path and asks whether to apply it.
	Confirm(ctx context.Context, path m.Path, diff string) (bool, error)
}

// NewUI returns a TUI when attached to a terminal and a SimpleUI otherwise.
func NewUI(cmd *cobra.Command, tty bool) UI {
	if tty {
		return NewTUI(cmd)
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}
