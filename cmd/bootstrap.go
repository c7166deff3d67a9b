package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"viewstrap.dev/pkg/viewstrap/internal/controller"
	"viewstrap.dev/pkg/viewstrap/internal/domain"
	m "viewstrap.dev/pkg/viewstrap/internal/model"
)

var bootstrapSelectFlag []string
var bootstrapOutputFlag string
var bootstrapWriteFlag bool
var bootstrapDiffFlag bool
var bootstrapInteractiveFlag bool
var bootstrapReportFlag string

// bootstrapCmd represents the bootstrap command.
var bootstrapCmd = newBootstrapCmd()

func newBootstrapCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "bootstrap <file>",
		Aliases: []string{"b"},
		Short:   "Scaffold the selected view declarations of a file",
		Long:    bootstrapLongDescription,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			selections, err := parseSelections(bootstrapSelectFlag)
			if err != nil {
				return err
			}

			report, ok := controller.ParseReportFormat(viper.GetString(reportConfigKey))
			if !ok {
				return fmt.Errorf("invalid --%s value %q: want text or yaml", reportFlagName, viper.GetString(reportConfigKey))
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			return workflow.Bootstrap(ctx, domain.BootstrapArgs{
				Path:        m.Path(args[0]),
				Selections:  selections,
				Output:      m.Path(viper.GetString(outputConfigKey)),
				Write:       viper.GetBool(writeConfigKey),
				Diff:        viper.GetBool(diffConfigKey),
				Interactive: viper.GetBool(interactiveConfigKey),
				Report:      report,
			})
		},
	}

	configureBootstrapFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(bootstrapCmd)
}

func configureBootstrapFlags(cmd *cobra.Command) {
	cmd.Flags().StringArrayVarP(&bootstrapSelectFlag, selectFlagName, "s", nil, "selection as L, L1-L2 or L1:C1-L2:C2 (can be repeated, the last one is the anchor)")
	cobra.CheckErr(cmd.MarkFlagRequired(selectFlagName))

	cmd.Flags().StringVarP(&bootstrapOutputFlag, outputFlagName, "o", viper.GetString(outputConfigKey), `destination of the rewritten text ("-" is stdout)`)
	bindFlagToConfig(cmd.Flags().Lookup(outputFlagName), outputConfigKey)

	cmd.Flags().BoolVarP(&bootstrapWriteFlag, writeFlagName, "w", viper.GetBool(writeConfigKey), "rewrite the file in place")
	bindFlagToConfig(cmd.Flags().Lookup(writeFlagName), writeConfigKey)

	cmd.Flags().BoolVarP(&bootstrapDiffFlag, diffFlagName, "d", viper.GetBool(diffConfigKey), "print a unified diff instead of the rewritten text")
	bindFlagToConfig(cmd.Flags().Lookup(diffFlagName), diffConfigKey)

	cmd.Flags().BoolVarP(&bootstrapInteractiveFlag, interactiveFlagName, "i", viper.GetBool(interactiveConfigKey), "preview the diff and ask before writing")
	bindFlagToConfig(cmd.Flags().Lookup(interactiveFlagName), interactiveConfigKey)

	cmd.Flags().StringVarP(&bootstrapReportFlag, reportFlagName, "r", viper.GetString(reportConfigKey), "print a run report to stderr (text or yaml)")
	bindFlagToConfig(cmd.Flags().Lookup(reportFlagName), reportConfigKey)
}

func parseSelections(values []string) ([]m.Selection, error) {
	selections := make([]m.Selection, 0, len(values))

	for _, value := range values {
		selection, err := parseSelection(value)
		if err != nil {
			return nil, err
		}

		selections = append(selections, selection)
	}

	return selections, nil
}

// parseSelection converts a 1-based L, L1-L2 or L1:C1-L2:C2 value into a
// 0-based selection.
func parseSelection(value string) (m.Selection, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return m.Selection{}, fmt.Errorf("invalid selection %q: empty", value)
	}

	startText, endText, isRange := strings.Cut(value, "-")
	if !isRange {
		endText = startText
	}

	start, err := parsePosition(startText)
	if err != nil {
		return m.Selection{}, fmt.Errorf("invalid selection %q: %w", value, err)
	}

	end, err := parsePosition(endText)
	if err != nil {
		return m.Selection{}, fmt.Errorf("invalid selection %q: %w", value, err)
	}

	if end.Line < start.Line || (end.Line == start.Line && end.Column < start.Column) {
		return m.Selection{}, fmt.Errorf("invalid selection %q: end before start", value)
	}

	return m.Selection{Start: start, End: end}, nil
}

func parsePosition(text string) (m.Position, error) {
	lineText, columnText, hasColumn := strings.Cut(text, ":")

	line, err := parseOneBased(lineText, "line")
	if err != nil {
		return m.Position{}, err
	}

	column := 1
	if hasColumn {
		column, err = parseOneBased(columnText, "column")
		if err != nil {
			return m.Position{}, err
		}
	}

	return m.Position{Line: line - 1, Column: column - 1}, nil
}

func parseOneBased(text, what string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, fmt.Errorf("%s %q is not a number", what, text)
	}

	if n < 1 {
		return 0, fmt.Errorf("%s must be at least 1, got %d", what, n)
	}

	return n, nil
}
