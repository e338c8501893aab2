package cli

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"

	"github.com/Marius-Juston/Robot-Planning/internal/profile"
)

// zapStderr routes log output to the command's error stream so stdout only
// carries results.
func zapStderr(cmd *cobra.Command) zapcore.WriteSyncer {
	return zapcore.AddSync(cmd.ErrOrStderr())
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

var samplesHeader = []string{"time", "position", "velocity", "acceleration"}

// writeSamplesCSV writes one row per sample.
func writeSamplesCSV(w io.Writer, s profile.Samples) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(samplesHeader); err != nil {
		return err
	}
	for i := range s.Time {
		if err := cw.Write([]string{
			formatFloat(s.Time[i]),
			formatFloat(s.Position[i]),
			formatFloat(s.Velocity[i]),
			formatFloat(s.Acceleration[i]),
		}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
