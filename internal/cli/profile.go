package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Marius-Juston/Robot-Planning/internal/kinematics"
	"github.com/Marius-Juston/Robot-Planning/internal/profile"
)

// ProfileOptions holds the flags of the profile command.
type ProfileOptions struct {
	Kind   string
	S0, S1 float64
	V0, V1 float64
	VMax   float64
	AMax   float64
	At     float64
	Count  int
	Strict bool
}

// profileOutput is the JSON shape of a sampled single profile.
type profileOutput struct {
	Kind         profile.Kind         `json:"kind"`
	Shape        profile.Shape        `json:"shape,omitempty"`
	Duration     float64              `json:"duration"`
	PeakVelocity float64              `json:"peak_velocity"`
	Segments     []kinematics.Segment `json:"segments,omitempty"`
	Samples      profile.Samples      `json:"samples"`
}

// pointOutput is the JSON shape of a single query.
type pointOutput struct {
	Time float64 `json:"time"`
	profile.State
}

// NewProfileCommand creates the profile command.
func NewProfileCommand(root *RootOptions) *cobra.Command {
	opts := &ProfileOptions{}

	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Build one profile and sample it or query a single time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			cfg := root.Config
			if !flags.Changed("v-max") {
				opts.VMax = cfg.Limits.VMax
			}
			if !flags.Changed("a-max") {
				opts.AMax = cfg.Limits.AMax
			}
			if !flags.Changed("count") {
				opts.Count = cfg.Sampling.Count
			}
			if !flags.Changed("strict") {
				opts.Strict = cfg.Sampling.Strict
			}

			kind, err := profile.ParseKind(opts.Kind)
			if err != nil {
				return err
			}
			p, err := profile.New(kind, opts.S0, opts.S1, opts.V0, opts.V1, opts.VMax, opts.AMax)
			if err != nil {
				return err
			}
			root.Logger.Debug("Built profile",
				zap.String("kind", string(p.Kind())),
				zap.Float64("duration", p.Duration()))

			if flags.Changed("at") {
				return writePoint(cmd, root, p, opts)
			}
			return writeProfile(cmd, root, p, opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.Kind, "kind", string(profile.KindTrapezoidal), "profile kind")
	f.Float64Var(&opts.S0, "s0", 0, "initial position")
	f.Float64Var(&opts.S1, "s1", 0, "final position")
	f.Float64Var(&opts.V0, "v0", 0, "initial velocity")
	f.Float64Var(&opts.V1, "v1", 0, "final velocity")
	f.Float64Var(&opts.VMax, "v-max", 0, "velocity limit (default from config)")
	f.Float64Var(&opts.AMax, "a-max", 0, "acceleration limit (default from config)")
	f.Float64Var(&opts.At, "at", 0, "evaluate at this time instead of sampling")
	f.IntVar(&opts.Count, "count", 0, "number of samples (default from config)")
	f.BoolVar(&opts.Strict, "strict", false, "reject --at outside the profile duration instead of clamping")

	return cmd
}

func writePoint(cmd *cobra.Command, root *RootOptions, p profile.Profile, opts *ProfileOptions) error {
	var (
		st  profile.State
		err error
	)
	if opts.Strict {
		st, err = p.EvaluateStrict(opts.At)
		if err != nil {
			return err
		}
	} else {
		st = p.Evaluate(opts.At)
	}

	if root.Format == "csv" {
		return writeSamplesCSV(cmd.OutOrStdout(), profile.Samples{
			Time:         []float64{opts.At},
			Position:     []float64{st.Position},
			Velocity:     []float64{st.Velocity},
			Acceleration: []float64{st.Acceleration},
		})
	}
	return writeJSON(cmd.OutOrStdout(), pointOutput{Time: opts.At, State: st})
}

func writeProfile(cmd *cobra.Command, root *RootOptions, p profile.Profile, opts *ProfileOptions) error {
	times, err := profile.Linspace(0, p.Duration(), opts.Count)
	if err != nil {
		return err
	}
	samples, err := profile.SampleConcurrent(p, times, root.Config.Sampling.Workers)
	if err != nil {
		return err
	}

	if root.Format == "csv" {
		return writeSamplesCSV(cmd.OutOrStdout(), samples)
	}
	out := profileOutput{Kind: p.Kind(), Duration: p.Duration(), Samples: samples}
	if t, ok := p.(*profile.Trapezoidal); ok {
		out.Shape = t.Shape()
		out.PeakVelocity = t.PeakVelocity()
		out.Segments = t.Segments()
	}
	return writeJSON(cmd.OutOrStdout(), out)
}
