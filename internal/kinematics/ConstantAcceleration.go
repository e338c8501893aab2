// Package kinematics holds the constant-acceleration building blocks of a motion
// profile: the closed-form motion equations, the solvers for a single
// accelerate/decelerate leg and a cruise leg, and the peak-velocity resolver used
// when the cruise velocity cannot be reached.
//
// All distances are in position units, velocities in units/s, and time in seconds.
// Nothing in this package holds state.
package kinematics

// Position returns the position reached after t seconds from s at velocity v
// under constant acceleration a.
func Position(s, v, a, t float64) float64 {
	return s + v*t + t*t/2*a
}

// Velocity returns the velocity reached after t seconds from v under constant
// acceleration a.
func Velocity(v, a, t float64) float64 {
	return v + a*t
}

// Segment is a single constant-acceleration phase of a profile.
type Segment struct {
	Duration     float64 `json:"duration"`     // seconds, ≥ 0
	Distance     float64 `json:"distance"`     // signed displacement covered by the segment
	Velocity     float64 `json:"velocity"`     // velocity at the start of the segment
	Acceleration float64 `json:"acceleration"` // signed; 0 while cruising
}

// FinalVelocity is the velocity at the end of the segment.
func (s Segment) FinalVelocity() float64 {
	return Velocity(s.Velocity, s.Acceleration, s.Duration)
}

// PositionAt returns the position tau seconds into the segment when the segment
// starts at origin.
func (s Segment) PositionAt(origin, tau float64) float64 {
	return Position(origin, s.Velocity, s.Acceleration, tau)
}

// VelocityAt returns the velocity tau seconds into the segment.
func (s Segment) VelocityAt(tau float64) float64 {
	return Velocity(s.Velocity, s.Acceleration, tau)
}

// IsCruise reports whether the segment holds a constant velocity.
func (s Segment) IsCruise() bool { return s.Acceleration == 0 }
