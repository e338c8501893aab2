// Package engine runs a motion plan: an ordered list of moves, each built as
// its own profile and then chained end to end into one sampled trajectory.
//
// Every move is planned relative to where the previous one ended, starting at
// the plan's initial position. Continuity of velocity between moves is the
// plan author's responsibility.
package engine

import (
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/Marius-Juston/Robot-Planning/internal/kinematics"
	"github.com/Marius-Juston/Robot-Planning/internal/profile"
)

var validate = validator.New()

// New validates input and builds the profile of every move.
func New(input PlanInput, opts Options) (*Engine, error) {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if err := validate.Struct(input); err != nil {
		return nil, fmt.Errorf("invalid plan: %w: %w", kinematics.ErrInvalidParameter, err)
	}

	defaults := input.Defaults.Or(opts.Defaults)
	profiles := make([]profile.Profile, 0, len(input.Moves))
	for i, m := range input.Moves {
		p, err := m.Build(defaults)
		if err != nil {
			return nil, fmt.Errorf("building move %d: %w", i, err)
		}
		fields := []zap.Field{
			zap.String("plan_id", input.Meta.PlanID),
			zap.String("move_id", m.ID),
			zap.String("kind", string(p.Kind())),
			zap.Float64("distance", m.Distance),
			zap.Float64("duration", p.Duration()),
		}
		if d, ok := p.(describer); ok {
			fields = append(fields, zap.String("shape", string(d.Shape())), zap.Float64("peak_velocity", d.PeakVelocity()))
		}
		opts.Logger.Debug("Built move profile", fields...)
		profiles = append(profiles, p)
	}

	return &Engine{
		meta:     input.Meta,
		initial:  input.InitialPosition,
		moves:    input.Moves,
		profiles: profiles,
		opts:     opts,
	}, nil
}

// Profiles returns the built profile of each move in plan order.
func (e *Engine) Profiles() []profile.Profile {
	out := make([]profile.Profile, len(e.profiles))
	copy(out, e.profiles)
	return out
}

// Run samples every move and chains them into the plan log.
func (e *Engine) Run() (PlanLog, error) {
	count := e.meta.SampleCount
	if count == 0 {
		count = e.opts.SampleCount
	}

	sampler := func(p profile.Profile, times []float64) (profile.Samples, error) {
		return profile.SampleConcurrent(p, times, e.opts.Workers)
	}
	trajectory, err := profile.ChainWith(e.profiles, count, sampler)
	if err != nil {
		return PlanLog{}, fmt.Errorf("plan %q: %w", e.meta.PlanID, err)
	}

	log := PlanLog{
		Meta:       e.meta,
		Moves:      make([]MoveLog, len(e.profiles)),
		Trajectory: trajectory.Shift(0, e.initial),
	}
	pos := e.initial
	for i, p := range e.profiles {
		row := MoveLog{
			MoveID:        e.moves[i].ID,
			Kind:          p.Kind(),
			StartTime:     log.Duration,
			Duration:      p.Duration(),
			StartPosition: pos,
			EndPosition:   pos + p.FinalPosition(),
		}
		if d, ok := p.(describer); ok {
			row.Shape = d.Shape()
			row.PeakVelocity = d.PeakVelocity()
			row.Segments = d.Segments()
		}
		log.Moves[i] = row
		log.Duration += p.Duration()
		pos = row.EndPosition
	}

	e.opts.Logger.Info("Plan sampled",
		zap.String("plan_id", e.meta.PlanID),
		zap.Int("moves", len(e.profiles)),
		zap.Int("samples", log.Trajectory.Len()),
		zap.Float64("duration", log.Duration))
	return log, nil
}

// DecodeJSON parses a JSON-encoded PlanInput.
func DecodeJSON(data []byte) (PlanInput, error) {
	var input PlanInput
	if err := json.Unmarshal(data, &input); err != nil {
		return PlanInput{}, fmt.Errorf("invalid input JSON: %w", err)
	}
	return input, nil
}

// DecodeYAML parses a YAML-encoded PlanInput.
func DecodeYAML(data []byte) (PlanInput, error) {
	var input PlanInput
	if err := yaml.Unmarshal(data, &input); err != nil {
		return PlanInput{}, fmt.Errorf("invalid input YAML: %w", err)
	}
	return input, nil
}

// RunJSON is the shared entry point for the CLI and WASM targets. It accepts a
// JSON-encoded PlanInput, runs it with DefaultOptions, and returns a
// JSON-encoded PlanLog.
func RunJSON(jsonInput string) (string, error) {
	input, err := DecodeJSON([]byte(jsonInput))
	if err != nil {
		return "", err
	}
	return run(input)
}

// RunYAML is RunJSON for a YAML-encoded PlanInput. The output is still JSON.
func RunYAML(yamlInput []byte) (string, error) {
	input, err := DecodeYAML(yamlInput)
	if err != nil {
		return "", err
	}
	return run(input)
}

func run(input PlanInput) (string, error) {
	e, err := New(input, DefaultOptions())
	if err != nil {
		return "", err
	}

	planLog, err := e.Run()
	if err != nil {
		return "", err
	}

	out, err := json.Marshal(planLog)
	if err != nil {
		return "", fmt.Errorf("marshaling output: %w", err)
	}
	return string(out), nil
}
