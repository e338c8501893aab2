package profile

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/Marius-Juston/Robot-Planning/internal/kinematics"
)

// minChunk is the smallest number of times handed to one sampling goroutine.
const minChunk = 256

// Samples holds a profile evaluated over a sequence of times as parallel slices.
type Samples struct {
	Time         []float64 `json:"time"`
	Position     []float64 `json:"position"`
	Velocity     []float64 `json:"velocity"`
	Acceleration []float64 `json:"acceleration"`
}

func newSamples(n int) Samples {
	return Samples{
		Time:         make([]float64, n),
		Position:     make([]float64, n),
		Velocity:     make([]float64, n),
		Acceleration: make([]float64, n),
	}
}

// Len returns the number of samples.
func (s Samples) Len() int { return len(s.Time) }

// At returns the state of sample i.
func (s Samples) At(i int) State {
	return State{Position: s.Position[i], Velocity: s.Velocity[i], Acceleration: s.Acceleration[i]}
}

func (s Samples) set(i int, t float64, st State) {
	s.Time[i] = t
	s.Position[i] = st.Position
	s.Velocity[i] = st.Velocity
	s.Acceleration[i] = st.Acceleration
}

// Linspace returns count evenly spaced values from start to stop inclusive.
// A single value is start.
func Linspace(start, stop float64, count int) ([]float64, error) {
	if count < 1 {
		return nil, fmt.Errorf("sample count %d must be at least 1: %w", count, kinematics.ErrInvalidParameter)
	}
	out := make([]float64, count)
	if count == 1 {
		out[0] = start
		return out, nil
	}
	step := (stop - start) / float64(count-1)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	out[count-1] = stop
	return out, nil
}

// Sample evaluates p at each of times. The times slice is copied, not retained.
func Sample(p Profile, times []float64) Samples {
	out := newSamples(len(times))
	for i, t := range times {
		out.set(i, t, p.Evaluate(t))
	}
	return out
}

// SampleN evaluates p over count evenly spaced times covering [0, Duration].
func SampleN(p Profile, count int) (Samples, error) {
	times, err := Linspace(0, p.Duration(), count)
	if err != nil {
		return Samples{}, err
	}
	return Sample(p, times), nil
}

// SampleConcurrent is Sample split across at most workers goroutines. Zero
// workers means GOMAXPROCS. The result is identical to Sample.
func SampleConcurrent(p Profile, times []float64, workers int) (Samples, error) {
	if workers < 0 {
		return Samples{}, fmt.Errorf("worker count %d must not be negative: %w", workers, kinematics.ErrInvalidParameter)
	}
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	out := newSamples(len(times))
	chunk := (len(times) + workers - 1) / workers
	if chunk < minChunk {
		chunk = minChunk
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for lo := 0; lo < len(times); lo += chunk {
		lo, hi := lo, min(lo+chunk, len(times))
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				out.set(i, times[i], p.Evaluate(times[i]))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Samples{}, err
	}
	return out, nil
}
