package kinematics

import "errors"

// Error kinds returned by the solvers and the profile builder. Callers match them
// with errors.Is; they are always wrapped with the offending values.
var (
	// ErrInvalidParameter is returned for non-positive limits.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrInfeasible is returned when no real peak velocity joins the two legs.
	// Retrying with the same inputs cannot succeed.
	ErrInfeasible = errors.New("infeasible profile")

	// ErrOutOfDomain is returned by strict queries outside [0, duration].
	ErrOutOfDomain = errors.New("query time out of domain")
)
