package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"viewstrap.dev/pkg/viewstrap/internal/domain"
)

var statusParallelFlag int
var statusExtensionsFlag []string

// statusCmd represents the status command.
var statusCmd = newStatusCmd()

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status [paths...]",
		Short: "Show the scaffolding state of source files",
		Long:  statusLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			return workflow.Status(ctx, domain.StatusArgs{
				Paths:      parsePaths(args),
				Exclude:    viper.GetStringSlice(excludeConfigKey),
				Extensions: viper.GetStringSlice(extensionsConfigKey),
				Threads:    viper.GetInt(parallelConfigKey),
			})
		},
	}

	configureStatusFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func configureStatusFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&statusParallelFlag, parallelFlagName, "p", viper.GetInt(parallelConfigKey), "number of files scanned in parallel")
	bindFlagToConfig(cmd.Flags().Lookup(parallelFlagName), parallelConfigKey)

	cmd.Flags().StringSliceVar(&statusExtensionsFlag, extensionFlagName, viper.GetStringSlice(extensionsConfigKey), "file extensions to scan")
	bindFlagToConfig(cmd.Flags().Lookup(extensionFlagName), extensionsConfigKey)
}
