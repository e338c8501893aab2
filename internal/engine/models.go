package engine

import (
	"go.uber.org/zap"

	"github.com/Marius-Juston/Robot-Planning/internal/kinematics"
	"github.com/Marius-Juston/Robot-Planning/internal/move"
	"github.com/Marius-Juston/Robot-Planning/internal/observability"
	"github.com/Marius-Juston/Robot-Planning/internal/profile"
)

// PlanMeta holds the identity and sampling parameters for a plan.
type PlanMeta struct {
	PlanID      string `json:"plan_id" yaml:"plan_id" validate:"required"`
	SampleCount int    `json:"sample_count,omitempty" yaml:"sample_count,omitempty" validate:"gte=0"` // points per move; 0 uses Options
}

// PlanInput is the JSON/YAML input to the engine.
type PlanInput struct {
	Meta            PlanMeta    `json:"plan_meta" yaml:"plan_meta"`
	InitialPosition float64     `json:"initial_position" yaml:"initial_position"`
	Defaults        move.Limits `json:"defaults" yaml:"defaults"`
	Moves           []move.Move `json:"moves" yaml:"moves" validate:"required,min=1,dive"`
}

// MoveLog summarises one built move within the plan.
type MoveLog struct {
	MoveID        string               `json:"move_id"`
	Kind          profile.Kind         `json:"kind"`
	Shape         profile.Shape        `json:"shape,omitempty"`
	StartTime     float64              `json:"start_time"` // seconds from plan start
	Duration      float64              `json:"duration"`
	StartPosition float64              `json:"start_position"`
	EndPosition   float64              `json:"end_position"`
	PeakVelocity  float64              `json:"peak_velocity"`
	Segments      []kinematics.Segment `json:"segments,omitempty"`
}

// PlanLog is the complete output of a plan run.
type PlanLog struct {
	Meta       PlanMeta        `json:"plan_meta"`
	Duration   float64         `json:"duration"` // seconds
	Moves      []MoveLog       `json:"moves"`
	Trajectory profile.Samples `json:"trajectory"`
}

// Options carry settings that come from configuration rather than the plan.
type Options struct {
	SampleCount int         // used when the plan does not set one
	Workers     int         // sampling goroutines; 0 means GOMAXPROCS
	Defaults    move.Limits // used when neither move nor plan sets a limit
	Logger      *zap.Logger
}

// DefaultOptions returns sequential sampling at 1000 points per move with no
// fallback limits and the global logger.
func DefaultOptions() Options {
	return Options{SampleCount: 1000, Workers: 1, Logger: observability.GetLogger()}
}

// describer is implemented by profiles that can report how they were built.
type describer interface {
	Shape() profile.Shape
	PeakVelocity() float64
	Segments() []kinematics.Segment
}

// Engine holds a validated plan with every move already built.
type Engine struct {
	meta     PlanMeta
	initial  float64
	moves    []move.Move
	profiles []profile.Profile
	opts     Options
}
