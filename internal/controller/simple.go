package controller

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	m "viewstrap.dev/pkg/viewstrap/internal/model"
)

// SimpleUI implements UI using the cobra command's streams. Rewritten text
// goes to stdout; diagnostics and reports go to stderr.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayText prints the buffer unchanged.
func (s *SimpleUI) DisplayText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, err := fmt.Fprint(s.cmd.OutOrStdout(), text)

	return err
}

// DisplayDiff prints the diff, or a note on stderr when there is none.
func (s *SimpleUI) DisplayDiff(ctx context.Context, diff string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if diff == "" {
		s.errorf("no changes\n")
		return nil
	}

	_, err := fmt.Fprint(s.cmd.OutOrStdout(), diff)

	return err
}

// DisplayReport prints the run report in the requested format.
func (s *SimpleUI) DisplayReport(ctx context.Context, report m.Report, format ReportFormat) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	switch format {
	case ReportNone:
		return nil
	case ReportYAML:
		out, err := yaml.Marshal(report)
		if err != nil {
			return fmt.Errorf("marshal report: %w", err)
		}

		s.errorf("%s", out)
	case ReportText:
		s.errorf("%s", renderReportText(report))
	default:
		return fmt.Errorf("unknown report format %q", format)
	}

	return nil
}

func renderReportText(report m.Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s:\n", displayPath(report.Path))

	if report.RegionCreated {
		b.WriteString("  created view hierarchy construction region\n")
	}

	fmt.Fprintf(&b, "  registered: %s\n", joinOrNone(report.Registered))
	fmt.Fprintf(&b, "  skipped:    %s\n", joinOrNone(report.Skipped))

	if len(report.MissingStubs) > 0 {
		kinds := make([]string, 0, len(report.MissingStubs))
		for _, kind := range report.MissingStubs {
			kinds = append(kinds, string(kind))
		}

		fmt.Fprintf(&b, "  missing stubs: %s\n", strings.Join(kinds, ", "))
	}

	return b.String()
}

func joinOrNone(names []string) string {
	if len(names) == 0 {
		return "none"
	}

	return strings.Join(names, ", ")
}

func displayPath(path m.Path) string {
	if path.IsStdio() {
		return "<stdin>"
	}

	return string(path)
}

// DisplayStatus prints a table with one row per file.
func (s *SimpleUI) DisplayStatus(ctx context.Context, statuses []m.FileStatus) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if len(statuses) == 0 {
		s.printf("No source files found\n")
		return nil
	}

	s.printf("%s", renderStatusTable(statuses))

	return nil
}

func renderStatusTable(statuses []m.FileStatus) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Region", "Sections", "Pending"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_LEFT,
	})

	totalSections := 0
	totalPending := 0

	for _, status := range statuses {
		region := "-"
		if status.HasRegion {
			region = fmt.Sprintf("line %d", status.RegionLine)
		}

		table.Append([]string{
			string(status.Path),
			region,
			fmt.Sprintf("%d", status.Sections),
			joinOrNone(status.Pending),
		})

		totalSections += status.Sections
		totalPending += len(status.Pending)
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(statuses)),
		"",
		fmt.Sprintf("%d", totalSections),
		fmt.Sprintf("%d pending", totalPending),
	})

	table.Render()

	return tableBuffer.String()
}

// Confirm prints the diff and reads a y/N answer from the command's input.
func (s *SimpleUI) Confirm(ctx context.Context, path m.Path, diff string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	s.errorf("%s", diff)
	s.errorf("Apply changes to %s? [y/N] ", displayPath(path))

	answer, err := bufio.NewReader(s.cmd.InOrStdin()).ReadString('\n')
	if err != nil && answer == "" {
		return false, nil
	}

	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true, nil
	}

	return false, nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func (s *SimpleUI) errorf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.ErrOrStderr(), format, args...)
}
