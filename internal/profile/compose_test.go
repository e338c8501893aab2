package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShift(t *testing.T) {
	s := Samples{
		Time:         []float64{0, 1},
		Position:     []float64{0, 0.5},
		Velocity:     []float64{0, 1},
		Acceleration: []float64{1, 1},
	}
	got := s.Shift(2, 10)
	assert.Equal(t, []float64{2, 3}, got.Time)
	assert.Equal(t, []float64{10, 10.5}, got.Position)
	assert.Equal(t, s.Velocity, got.Velocity)
	assert.Equal(t, s.Acceleration, got.Acceleration)
	assert.Equal(t, []float64{0, 1}, s.Time, "input is not modified")
}

func TestJoin(t *testing.T) {
	a := Samples{Time: []float64{0}, Position: []float64{1}, Velocity: []float64{2}, Acceleration: []float64{3}}
	b := Samples{Time: []float64{4}, Position: []float64{5}, Velocity: []float64{6}, Acceleration: []float64{7}}

	got := Join(a, b)
	assert.Equal(t, Samples{
		Time:         []float64{0, 4},
		Position:     []float64{1, 5},
		Velocity:     []float64{2, 6},
		Acceleration: []float64{3, 7},
	}, got)

	got.Time[0] = 99
	assert.Equal(t, 0.0, a.Time[0])
}

func TestConcatenate(t *testing.T) {
	out, err := Build(0, 0.2, 0, 0, 3, 1)
	require.NoError(t, err)
	back, err := Build(0, -0.2, 0, 0, 2, 1)
	require.NoError(t, err)

	s, err := Concatenate(out, back, 50)
	require.NoError(t, err)
	require.Equal(t, 100, s.Len())

	assert.Equal(t, out.Duration(), s.Time[49])
	assert.Equal(t, out.Duration(), s.Time[50])
	assert.Equal(t, 0.2, s.Position[49])
	assert.Equal(t, 0.2, s.Position[50])
	assert.InDelta(t, out.Duration()+back.Duration(), s.Time[99], 1e-12)
	assert.InDelta(t, 0, s.Position[99], 1e-12)

	for i := 1; i < s.Len(); i++ {
		assert.GreaterOrEqual(t, s.Time[i], s.Time[i-1], "time is non-decreasing at %d", i)
	}
}

func TestChain(t *testing.T) {
	var profiles []Profile
	for _, d := range []float64{1, 2, -3} {
		p, err := Build(0, d, 0, 0, 2, 1)
		require.NoError(t, err)
		profiles = append(profiles, p)
	}

	s, err := Chain(profiles, 10)
	require.NoError(t, err)
	require.Equal(t, 30, s.Len())
	assert.InDelta(t, 0, s.Position[29], 1e-12)
	assert.InDelta(t, 3, s.Position[19], 1e-12)

	var total float64
	for _, p := range profiles {
		total += p.Duration()
	}
	assert.InDelta(t, total, s.Time[29], 1e-12)

	_, err = Chain(profiles, 0)
	assert.Error(t, err)

	empty, err := Chain(nil, 10)
	require.NoError(t, err)
	assert.Zero(t, empty.Len())
}

func TestChainWithConcurrentSampler(t *testing.T) {
	var profiles []Profile
	for _, d := range []float64{5, -2.5, 0.1} {
		p, err := Build(0, d, 0, 0, 2, 1)
		require.NoError(t, err)
		profiles = append(profiles, p)
	}

	want, err := Chain(profiles, 700)
	require.NoError(t, err)
	got, err := ChainWith(profiles, 700, func(p Profile, times []float64) (Samples, error) {
		return SampleConcurrent(p, times, 4)
	})
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
