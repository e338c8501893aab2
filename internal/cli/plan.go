package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Marius-Juston/Robot-Planning/internal/engine"
	"github.com/Marius-Juston/Robot-Planning/internal/move"
)

// NewPlanCommand creates the plan command.
func NewPlanCommand(root *RootOptions) *cobra.Command {
	var inputFormat string

	cmd := &cobra.Command{
		Use:   "plan [file]",
		Short: "Run a multi-move plan and print its sampled trajectory",
		Long: `Reads a plan (JSON or YAML) from the file argument or stdin, builds every move,
chains them end to end, and prints the plan log (json) or the trajectory (csv).`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, name, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			input, err := decodePlan(data, inputFormat, name)
			if err != nil {
				return err
			}

			cfg := root.Config
			e, err := engine.New(input, engine.Options{
				SampleCount: cfg.Sampling.Count,
				Workers:     cfg.Sampling.Workers,
				Defaults:    move.Limits{VMax: cfg.Limits.VMax, AMax: cfg.Limits.AMax},
				Logger:      root.Logger,
			})
			if err != nil {
				return err
			}
			planLog, err := e.Run()
			if err != nil {
				return err
			}

			if root.Format == "csv" {
				return writeSamplesCSV(cmd.OutOrStdout(), planLog.Trajectory)
			}
			return writeJSON(cmd.OutOrStdout(), planLog)
		},
	}

	cmd.Flags().StringVar(&inputFormat, "input", "", "input format (json|yaml); inferred from the file extension when empty")
	return cmd
}

// readInput returns the contents of the named file, or stdin when no file is
// given, along with the name used for format detection.
func readInput(cmd *cobra.Command, args []string) ([]byte, string, error) {
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return nil, "", fmt.Errorf("error reading input: %w", err)
		}
		return data, args[0], nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return nil, "", fmt.Errorf("error reading input: %w", err)
	}
	return data, "", nil
}

func decodePlan(data []byte, format, name string) (engine.PlanInput, error) {
	if format == "" {
		switch strings.ToLower(filepath.Ext(name)) {
		case ".yaml", ".yml":
			format = "yaml"
		default:
			format = "json"
		}
	}
	switch format {
	case "json":
		return engine.DecodeJSON(data)
	case "yaml":
		return engine.DecodeYAML(data)
	default:
		return engine.PlanInput{}, fmt.Errorf("invalid input format %q: must be json or yaml", format)
	}
}
