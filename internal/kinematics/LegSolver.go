package kinematics

import (
	"fmt"
	"math"
)

// SolveLeg returns the constant-acceleration leg that takes the velocity from
// vFrom to vTo at the acceleration magnitude aMax.
// Equal velocities give a zero-duration leg with zero acceleration.
func SolveLeg(vFrom, vTo, aMax float64) (Segment, error) {
	if !(aMax > 0) {
		return Segment{}, fmt.Errorf("acceleration limit %v must be positive: %w", aMax, ErrInvalidParameter)
	}
	deltaV := vTo - vFrom
	if deltaV == 0 {
		return Segment{Velocity: vFrom}, nil
	}
	a := math.Copysign(aMax, deltaV)
	return Segment{
		Duration:     deltaV / a,
		Distance:     (vTo*vTo - vFrom*vFrom) / (2 * a),
		Velocity:     vFrom,
		Acceleration: a,
	}, nil
}

// SolveCruise returns the constant-velocity leg covering remaining at vMax.
// The duration is negative when remaining and vMax disagree in sign; the caller
// decides whether that is acceptable.
func SolveCruise(remaining, vMax float64) (Segment, error) {
	if vMax == 0 || math.IsNaN(vMax) {
		return Segment{}, fmt.Errorf("cruise velocity %v must be non-zero: %w", vMax, ErrInvalidParameter)
	}
	return Segment{
		Duration: remaining / vMax,
		Distance: remaining,
		Velocity: vMax,
	}, nil
}
