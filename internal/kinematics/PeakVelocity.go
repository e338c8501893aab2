package kinematics

import (
	"fmt"
	"math"
)

// Tolerance is the absolute slack allowed when comparing displacements.
const Tolerance = 1e-9

// ResolvePeak returns the junction velocity vp for which the two legs
// v0 -> vp and vp -> v1 at aMax together cover exactly deltaS.
//
// A negative deltaS is mirrored onto the positive case. There, the legs either
// rise to a peak above both end velocities,
//
//	vp = +sqrt((v0² + v1² + 2·aMax·d) / 2),
//
// or, when one end velocity is already too fast to be reached or shed within d,
// dip to a valley below both of them,
//
//	vp = -sqrt((v0² + v1² - 2·aMax·d) / 2).
//
// The valley is needed iff v0 > 0 with v0² - v1² > 2·aMax·d, or v1 > 0 with
// v1² - v0² > 2·aMax·d. Both cannot hold at once for d ≥ 0.
func ResolvePeak(deltaS, v0, v1, aMax float64) (float64, error) {
	if !(aMax > 0) {
		return 0, fmt.Errorf("acceleration limit %v must be positive: %w", aMax, ErrInvalidParameter)
	}

	dir := 1.0
	if deltaS < 0 {
		dir = -1
	}
	d, u0, u1 := dir*deltaS, dir*v0, dir*v1
	reach := 2 * aMax * d

	valley := (u0 > 0 && u0*u0-u1*u1 > reach) || (u1 > 0 && u1*u1-u0*u0 > reach)

	var radicand, sign float64
	if valley {
		radicand, sign = (u0*u0+u1*u1-reach)/2, -1
	} else {
		radicand, sign = (u0*u0+u1*u1+reach)/2, 1
	}

	if radicand < 0 {
		// Rounding can leave a tiny negative where the exact value is zero.
		if radicand < -Tolerance {
			return 0, fmt.Errorf("no real peak velocity for Δs=%v, v0=%v, v1=%v, a=%v: %w",
				deltaS, v0, v1, aMax, ErrInfeasible)
		}
		radicand = 0
	}
	if math.IsNaN(radicand) || math.IsInf(radicand, 0) {
		return 0, fmt.Errorf("peak velocity radicand %v for Δs=%v: %w", radicand, deltaS, ErrInfeasible)
	}

	return dir * sign * math.Sqrt(radicand), nil
}
