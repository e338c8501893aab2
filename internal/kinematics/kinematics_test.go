package kinematics

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVelocity(t *testing.T) {
	tests := []struct {
		v, a, t, want float64
	}{
		{0, 0, 0, 0},
		{0, 1, 1, 1},
		{-1, 0, 2, -1},
		{-1000, 1000, 1000, 1000*1000 - 1000},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Velocity(tt.v, tt.a, tt.t), "Velocity(%v, %v, %v)", tt.v, tt.a, tt.t)
	}
}

func TestPosition(t *testing.T) {
	tests := []struct {
		s, v, a, t, want float64
	}{
		{0, 0, 0, 0, 0},
		{-1, 0, 0, 0, -1},
		{1, 0, 0, 0, 1},
		{1, 1, 0, 1, 2},
		{-1, 1, 2, 1, 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Position(tt.s, tt.v, tt.a, tt.t), "Position(%v, %v, %v, %v)", tt.s, tt.v, tt.a, tt.t)
	}
}

func TestSolveLeg(t *testing.T) {
	t.Run("accelerate", func(t *testing.T) {
		leg, err := SolveLeg(0, 2, 1)
		require.NoError(t, err)
		assert.Equal(t, Segment{Duration: 2, Distance: 2, Velocity: 0, Acceleration: 1}, leg)
		assert.Equal(t, 2.0, leg.FinalVelocity())
	})

	t.Run("decelerate", func(t *testing.T) {
		leg, err := SolveLeg(2, 0, 1)
		require.NoError(t, err)
		assert.Equal(t, Segment{Duration: 2, Distance: 2, Velocity: 2, Acceleration: -1}, leg)
	})

	t.Run("through zero", func(t *testing.T) {
		leg, err := SolveLeg(1, -3, 1)
		require.NoError(t, err)
		assert.Equal(t, 4.0, leg.Duration)
		assert.Equal(t, -4.0, leg.Distance)
		assert.Equal(t, -1.0, leg.Acceleration)
		assert.InDelta(t, leg.Distance, leg.PositionAt(0, leg.Duration), 1e-12)
	})

	t.Run("equal velocities", func(t *testing.T) {
		leg, err := SolveLeg(1.5, 1.5, 3)
		require.NoError(t, err)
		assert.Zero(t, leg.Duration)
		assert.Zero(t, leg.Distance)
		assert.Zero(t, leg.Acceleration)
		assert.Equal(t, 1.5, leg.Velocity)
	})

	t.Run("invalid limit", func(t *testing.T) {
		for _, a := range []float64{0, -1, math.NaN()} {
			_, err := SolveLeg(0, 1, a)
			assert.ErrorIs(t, err, ErrInvalidParameter, "a=%v", a)
		}
	})
}

func TestSolveCruise(t *testing.T) {
	leg, err := SolveCruise(6, 2)
	require.NoError(t, err)
	assert.Equal(t, Segment{Duration: 3, Distance: 6, Velocity: 2}, leg)
	assert.True(t, leg.IsCruise())

	leg, err = SolveCruise(-6, 2)
	require.NoError(t, err)
	assert.Negative(t, leg.Duration)

	_, err = SolveCruise(1, 0)
	assert.True(t, errors.Is(err, ErrInvalidParameter))
}

func legSum(t *testing.T, v0, vp, v1, a float64) float64 {
	t.Helper()
	first, err := SolveLeg(v0, vp, a)
	require.NoError(t, err)
	second, err := SolveLeg(vp, v1, a)
	require.NoError(t, err)
	return first.Distance + second.Distance
}

func TestResolvePeak(t *testing.T) {
	tests := []struct {
		name         string
		d, v0, v1, a float64
		want         float64
	}{
		{"rest to rest", 1, 0, 0, 1, 1},
		{"rest to rest backwards", -1, 0, 0, 1, -1},
		{"overshoot then return", 1, 3, 0, 1, -math.Sqrt(3.5)},
		{"run up backwards", 1, 0, 3, 1, -math.Sqrt(3.5)},
		{"reversal", -0.25, 1, 3, 1, -math.Sqrt(5.25)},
		{"no displacement", 0, 1, 0, 1, -math.Sqrt(0.5)},
		{"no displacement from reverse", 0, -1, 0, 1, math.Sqrt(0.5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vp, err := ResolvePeak(tt.d, tt.v0, tt.v1, tt.a)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, vp, 1e-12)
			assert.InDelta(t, tt.d, legSum(t, tt.v0, vp, tt.v1, tt.a), Tolerance)
		})
	}
}

func TestResolvePeakCoversDisplacement(t *testing.T) {
	velocities := []float64{-3, -2, -0.5, 0, 0.5, 2, 3}
	displacements := []float64{-10, -1, -0.25, -1e-3, 0, 1e-3, 0.25, 1, 10}
	for _, a := range []float64{0.5, 1, 4} {
		for _, d := range displacements {
			for _, v0 := range velocities {
				for _, v1 := range velocities {
					vp, err := ResolvePeak(d, v0, v1, a)
					require.NoError(t, err)
					got := legSum(t, v0, vp, v1, a)
					assert.InDelta(t, d, got, Tolerance, "d=%v v0=%v v1=%v a=%v vp=%v", d, v0, v1, a, vp)
				}
			}
		}
	}
}

func TestResolvePeakInvalid(t *testing.T) {
	_, err := ResolvePeak(1, 0, 0, 0)
	assert.ErrorIs(t, err, ErrInvalidParameter)

	_, err = ResolvePeak(math.Inf(1), 0, 0, 1)
	assert.ErrorIs(t, err, ErrInfeasible)
}
