// Package profile builds time-parameterised motion profiles and evaluates them.
//
// A profile is constructed once from its boundary conditions and limits and is
// immutable afterwards, so a built profile may be shared between goroutines
// without synchronisation. Adding a new profile kind only requires implementing
// Profile and registering the kind in New.
package profile

import (
	"errors"
	"fmt"
)

// Kind names a profile family.
type Kind string

const (
	// KindTrapezoidal is the bang-coast-bang profile built by Build.
	KindTrapezoidal Kind = "trapezoidal"
	// KindSCurve is the jerk-limited profile. It is recognised but not built.
	KindSCurve Kind = "s_curve"
)

var (
	// ErrNotImplemented is returned when a recognised kind has no builder yet.
	ErrNotImplemented = errors.New("profile kind not implemented")
	// ErrUnknownKind is returned for kind names that are not recognised at all.
	ErrUnknownKind = errors.New("unknown profile kind")
)

// ParseKind validates a kind name.
func ParseKind(name string) (Kind, error) {
	switch k := Kind(name); k {
	case KindTrapezoidal, KindSCurve:
		return k, nil
	default:
		return "", fmt.Errorf("%q: %w", name, ErrUnknownKind)
	}
}

// State is the kinematic state of a profile at one instant.
type State struct {
	Position     float64 `json:"position"`
	Velocity     float64 `json:"velocity"`
	Acceleration float64 `json:"acceleration"`
}

// Profile is the query contract every profile kind satisfies.
// Times are in seconds measured from the start of the profile.
type Profile interface {
	// Kind reports the profile family.
	Kind() Kind

	// Duration returns the total time the profile takes. It is 0 when no motion
	// is required.
	Duration() float64

	// InitialPosition and FinalPosition return the boundary positions.
	InitialPosition() float64
	FinalPosition() float64

	// Evaluate returns the state at time t. Times before 0 give the initial state
	// and times after Duration give the final state.
	Evaluate(t float64) State

	// EvaluateStrict is Evaluate without clamping: times outside [0, Duration]
	// return kinematics.ErrOutOfDomain.
	EvaluateStrict(t float64) (State, error)
}

// New builds a profile of the given kind.
func New(kind Kind, s0, s1, v0, v1, vMax, aMax float64) (Profile, error) {
	switch kind {
	case KindTrapezoidal:
		p, err := Build(s0, s1, v0, v1, vMax, aMax)
		if err != nil {
			return nil, err
		}
		return p, nil
	case KindSCurve:
		return nil, fmt.Errorf("%s: %w", kind, ErrNotImplemented)
	default:
		return nil, fmt.Errorf("%q: %w", kind, ErrUnknownKind)
	}
}
