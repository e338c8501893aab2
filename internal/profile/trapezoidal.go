package profile

import (
	"fmt"
	"math"
	"sort"

	"github.com/Marius-Juston/Robot-Planning/internal/kinematics"
)

// Shape records which construction case produced a trapezoidal profile.
type Shape string

const (
	ShapeStationary  Shape = "stationary"  // no motion required
	ShapeExact       Shape = "exact"       // legs meet exactly at the cruise velocity
	ShapeTriangular  Shape = "triangular"  // cruise velocity unreachable, legs meet at a reduced peak
	ShapeTrapezoidal Shape = "trapezoidal" // accelerate, cruise, decelerate
)

// knot is one row of the boundary table: where a segment starts in time and
// space.
type knot struct {
	start    float64
	position float64
	seg      kinematics.Segment
}

// Trapezoidal is a minimum-time profile under velocity and acceleration limits.
// It is immutable once built.
type Trapezoidal struct {
	s0, s1 float64
	v0, v1 float64 // clipped to [-|vMax|, |vMax|]
	vMax   float64 // signed by the direction of travel
	aMax   float64
	peak   float64 // velocity where the first leg ends
	shape  Shape

	segments []kinematics.Segment
	knots    []knot
	duration float64
}

// Build constructs the trapezoidal profile moving from (s0, v0) to (s1, v1).
// vMax and aMax are magnitudes and must be positive; v0 and v1 are clipped into
// [-vMax, vMax].
func Build(s0, s1, v0, v1, vMax, aMax float64) (*Trapezoidal, error) {
	if !(vMax > 0) {
		return nil, fmt.Errorf("velocity limit %v must be positive: %w", vMax, kinematics.ErrInvalidParameter)
	}
	if !(aMax > 0) {
		return nil, fmt.Errorf("acceleration limit %v must be positive: %w", aMax, kinematics.ErrInvalidParameter)
	}
	if math.IsNaN(s0) || math.IsNaN(s1) || math.IsNaN(v0) || math.IsNaN(v1) {
		return nil, fmt.Errorf("boundary conditions must be numbers: %w", kinematics.ErrInvalidParameter)
	}

	p := &Trapezoidal{
		s0:   s0,
		s1:   s1,
		v0:   clip(v0, vMax),
		v1:   clip(v1, vMax),
		aMax: aMax,
	}
	deltaS := s1 - s0
	if deltaS != 0 {
		p.vMax = math.Copysign(vMax, deltaS)
	}

	var (
		segs []kinematics.Segment
		err  error
	)
	switch {
	case deltaS == 0 && p.v0 == p.v1:
		p.shape = ShapeStationary
		p.peak = p.v0
	case deltaS == 0:
		// Zero net displacement with a velocity change still needs an out-and-back move.
		segs, err = p.triangular(deltaS)
	default:
		segs, err = p.segment(deltaS)
	}
	if err != nil {
		return nil, err
	}

	for _, s := range segs {
		if s.Duration > 0 {
			p.segments = append(p.segments, s)
			p.duration += s.Duration
		}
	}
	p.buildKnots()
	return p, nil
}

// segment runs the case analysis for a non-zero displacement.
func (p *Trapezoidal) segment(deltaS float64) ([]kinematics.Segment, error) {
	accel, err := kinematics.SolveLeg(p.v0, p.vMax, p.aMax)
	if err != nil {
		return nil, err
	}
	decel, err := kinematics.SolveLeg(p.vMax, p.v1, p.aMax)
	if err != nil {
		return nil, err
	}
	legs := accel.Distance + decel.Distance

	switch {
	case math.Abs(legs-deltaS) <= slack(deltaS, p.aMax, accel, decel):
		p.shape = ShapeExact
		p.peak = p.vMax
		return []kinematics.Segment{accel, decel}, nil

	case math.Abs(legs) > math.Abs(deltaS):
		return p.triangular(deltaS)

	default:
		cruise, err := kinematics.SolveCruise(deltaS-legs, p.vMax)
		if err != nil {
			return nil, err
		}
		if cruise.Duration < 0 {
			return nil, fmt.Errorf("cruise of %v at %v runs backwards in time: %w",
				cruise.Distance, p.vMax, kinematics.ErrInfeasible)
		}
		p.shape = ShapeTrapezoidal
		p.peak = p.vMax
		return []kinematics.Segment{accel, cruise, decel}, nil
	}
}

// triangular joins the two legs at the reduced peak velocity.
func (p *Trapezoidal) triangular(deltaS float64) ([]kinematics.Segment, error) {
	peak, err := kinematics.ResolvePeak(deltaS, p.v0, p.v1, p.aMax)
	if err != nil {
		return nil, err
	}
	accel, err := kinematics.SolveLeg(p.v0, peak, p.aMax)
	if err != nil {
		return nil, err
	}
	decel, err := kinematics.SolveLeg(peak, p.v1, p.aMax)
	if err != nil {
		return nil, err
	}
	if miss := accel.Distance + decel.Distance - deltaS; math.Abs(miss) > slack(deltaS, p.aMax, accel, decel) {
		return nil, fmt.Errorf("peak velocity %v misses Δs=%v by %v: %w", peak, deltaS, miss, kinematics.ErrInfeasible)
	}
	p.shape = ShapeTriangular
	p.peak = peak
	return []kinematics.Segment{accel, decel}, nil
}

// slack is the displacement tolerance for legs at aMax. It grows with the
// distances actually covered, and never drops below the rounding error of the
// v²/2a terms, so a real cruise is never mistaken for an exact fit.
func slack(deltaS, aMax float64, legs ...kinematics.Segment) float64 {
	scale := math.Max(1, math.Abs(deltaS))
	var energy float64
	for _, l := range legs {
		scale = math.Max(scale, math.Abs(l.Distance))
		v := math.Max(math.Abs(l.Velocity), math.Abs(l.FinalVelocity()))
		energy = math.Max(energy, v*v/aMax)
	}
	return math.Max(kinematics.Tolerance*scale, roundingUlps*epsilon*energy)
}

const (
	epsilon      = 0x1p-52
	roundingUlps = 16
)

// buildKnots lays the segments out on the time axis. Positions are walked back
// from the known final position so rounding does not pile up towards the end.
func (p *Trapezoidal) buildKnots() {
	p.knots = make([]knot, len(p.segments))
	t, s := p.duration, p.s1
	for i := len(p.segments) - 1; i >= 0; i-- {
		seg := p.segments[i]
		t -= seg.Duration
		s -= seg.Distance
		p.knots[i] = knot{start: t, position: s, seg: seg}
	}
}

func (p *Trapezoidal) Kind() Kind               { return KindTrapezoidal }
func (p *Trapezoidal) Duration() float64        { return p.duration }
func (p *Trapezoidal) InitialPosition() float64 { return p.s0 }
func (p *Trapezoidal) FinalPosition() float64   { return p.s1 }

// InitialVelocity and FinalVelocity return the clipped boundary velocities.
func (p *Trapezoidal) InitialVelocity() float64 { return p.v0 }
func (p *Trapezoidal) FinalVelocity() float64   { return p.v1 }

// MaxVelocity is the cruise velocity signed by the direction of travel.
func (p *Trapezoidal) MaxVelocity() float64 { return p.vMax }

// MaxAcceleration is the acceleration magnitude limit.
func (p *Trapezoidal) MaxAcceleration() float64 { return p.aMax }

// PeakVelocity is the velocity at which the first leg ends.
func (p *Trapezoidal) PeakVelocity() float64 { return p.peak }

// Shape reports which construction case produced the profile.
func (p *Trapezoidal) Shape() Shape { return p.shape }

// Segments returns a copy of the ordered, pruned segments.
func (p *Trapezoidal) Segments() []kinematics.Segment {
	out := make([]kinematics.Segment, len(p.segments))
	copy(out, p.segments)
	return out
}

// Evaluate returns the state at t, clamped to [0, Duration]. A NaN t yields the
// initial state.
func (p *Trapezoidal) Evaluate(t float64) State {
	if len(p.knots) == 0 {
		return State{Position: p.s1, Velocity: p.v1}
	}
	if !(t > 0) {
		return State{Position: p.s0, Velocity: p.v0, Acceleration: p.knots[0].seg.Acceleration}
	}
	if t >= p.duration {
		return State{Position: p.s1, Velocity: p.v1, Acceleration: p.knots[len(p.knots)-1].seg.Acceleration}
	}

	// Last segment starting at or before t.
	i := sort.Search(len(p.knots), func(i int) bool { return p.knots[i].start > t }) - 1
	if i < 0 {
		i = 0
	}
	k := p.knots[i]
	tau := t - k.start
	return State{
		Position:     k.seg.PositionAt(k.position, tau),
		Velocity:     k.seg.VelocityAt(tau),
		Acceleration: k.seg.Acceleration,
	}
}

// EvaluateStrict returns the state at t or kinematics.ErrOutOfDomain when t lies
// outside [0, Duration].
func (p *Trapezoidal) EvaluateStrict(t float64) (State, error) {
	if !(t >= 0 && t <= p.duration) {
		return State{}, fmt.Errorf("t=%v outside [0, %v]: %w", t, p.duration, kinematics.ErrOutOfDomain)
	}
	return p.Evaluate(t), nil
}

func clip(v, limit float64) float64 {
	return math.Max(-limit, math.Min(limit, v))
}
