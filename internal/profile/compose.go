package profile

import "fmt"

// Shift returns a copy of s moved by dt in time and ds in position.
func (s Samples) Shift(dt, ds float64) Samples {
	out := newSamples(s.Len())
	for i := range s.Time {
		out.Time[i] = s.Time[i] + dt
		out.Position[i] = s.Position[i] + ds
	}
	copy(out.Velocity, s.Velocity)
	copy(out.Acceleration, s.Acceleration)
	return out
}

// Join returns a followed by b. Neither input is modified and no continuity
// check is made.
func Join(a, b Samples) Samples {
	out := newSamples(0)
	out.Time = append(append(out.Time, a.Time...), b.Time...)
	out.Position = append(append(out.Position, a.Position...), b.Position...)
	out.Velocity = append(append(out.Velocity, a.Velocity...), b.Velocity...)
	out.Acceleration = append(append(out.Acceleration, a.Acceleration...), b.Acceleration...)
	return out
}

// Concatenate samples a and b with count points each and places b after a:
// b's times are shifted by a's duration and its positions by a's final
// position. b is expected to start at position 0.
func Concatenate(a, b Profile, count int) (Samples, error) {
	return Chain([]Profile{a, b}, count)
}

// Sampler evaluates a profile over a time grid.
type Sampler func(p Profile, times []float64) (Samples, error)

func sequential(p Profile, times []float64) (Samples, error) {
	return Sample(p, times), nil
}

// Chain generalises Concatenate to any number of profiles. Each profile after
// the first is offset by the accumulated durations and final positions of
// those before it.
func Chain(profiles []Profile, count int) (Samples, error) {
	return ChainWith(profiles, count, sequential)
}

// ChainWith is Chain with a caller-supplied sampler, e.g. one built on
// SampleConcurrent.
func ChainWith(profiles []Profile, count int, sample Sampler) (Samples, error) {
	out := newSamples(0)
	var dt, ds float64
	for i, p := range profiles {
		times, err := Linspace(0, p.Duration(), count)
		if err != nil {
			return Samples{}, fmt.Errorf("sampling profile %d: %w", i, err)
		}
		s, err := sample(p, times)
		if err != nil {
			return Samples{}, fmt.Errorf("sampling profile %d: %w", i, err)
		}
		out = Join(out, s.Shift(dt, ds))
		dt += p.Duration()
		ds += p.FinalPosition()
	}
	return out, nil
}
