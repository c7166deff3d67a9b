// Package cmd provides the root command and CLI setup for viewstrap.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"viewstrap.dev/pkg/viewstrap/internal/adapter"
	"viewstrap.dev/pkg/viewstrap/internal/controller"
	"viewstrap.dev/pkg/viewstrap/internal/domain"
	m "viewstrap.dev/pkg/viewstrap/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var diffAdapter adapter.DiffAdapter
var editor domain.ScaffoldEditor
var workflow domain.Workflow
var ui controller.UI

// excludePatterns is a root-level flag that filters files for applicable commands.
var excludePatterns []string

var verboseFlag bool
var logFileFlag string

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	diffAdapter = adapter.NewLocalDiffAdapter()
	editor = domain.NewScaffoldEditor()
	workflow = domain.NewWorkflow(
		fsAdapter,
		diffAdapter,
		ui,
		editor,
	)
}

const pathPatternsHelp = `Supports Go-style path patterns:
  - ./...              recursively scan current directory
  - ./Sources/...      recursively scan Sources directory
  - ./App ./Widgets    scan multiple directories`

const selectionHelp = `Selections are 1-based, as shown by editors:
  - 12                 line 12
  - 12-18              lines 12 to 18
  - 12:5-18:30         line 12 column 5 to line 18 column 30
The last --select is the anchor used to find the class and its lifecycle methods.`

const rootLongDescription = `Viewstrap scaffolds the boilerplate of programmatic view classes.

Select the subview declarations of a view class (lines such as
"let titleLabel = UILabel()") and viewstrap registers each one in the
initializeViews, assembleViews and constrainViews methods and gives it its
own section inside a generated region at the bottom of the class. Running it
again on the same selection changes nothing.

` + pathPatternsHelp

const bootstrapLongDescription = `Scaffold the selected declarations of a single source file.

The rewritten text goes to standard output unless --write, --diff,
--interactive or --output say otherwise. Use "-" as the file to read stdin.

` + selectionHelp

const statusLongDescription = `Report, for every matching file, whether the generated region exists,
how many sections it holds and which declarations still lack one.

` + pathPatternsHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "viewstrap",
		Short: "Programmatic view scaffolding tool",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringArrayVarP(&excludePatterns, excludeFlagName, "x", viper.GetStringSlice(excludeConfigKey), "exclude files matching regex (can be repeated)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(excludeFlagName), excludeConfigKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "path of the rotating log file")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}
