// Package cli implements the robot-planning command line.
package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/Marius-Juston/Robot-Planning/internal/config"
	"github.com/Marius-Juston/Robot-Planning/internal/observability"
)

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"json", "csv"}

// RootOptions holds global flags and the state prepared before any command runs.
type RootOptions struct {
	ConfigFile string
	Format     string
	Verbose    bool

	Config *config.Config
	Logger *zap.Logger
}

// NewRootCommand creates the root command.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "robot-planning",
		Short:         "Minimum-time trapezoidal motion profiles",
		Long:          "Builds bang-coast-bang motion profiles from velocity and acceleration limits and samples them.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			cfg, err := config.Load(viper.New(), opts.ConfigFile)
			if err != nil {
				return err
			}
			if opts.Verbose {
				cfg.Logger.Level = "debug"
			}
			opts.Config = cfg
			opts.Logger = observability.New(cfg.Logger, zapStderr(cmd))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.Logger != nil {
				_ = opts.Logger.Sync()
			}
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.ConfigFile, "config", "c", "", "config file (default is ./config.yaml)")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "json", "output format (json|csv)")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "debug logging")

	cmd.AddCommand(NewPlanCommand(opts))
	cmd.AddCommand(NewProfileCommand(opts))

	return cmd
}
