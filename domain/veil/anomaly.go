package veil

import (
	"math"
	"math/rand"
)

// Shape is a closed enumeration of anomaly envelope kinds. Each variant
// carries its own envelope synthesis; SpikeTrain is the only one that draws
// from the generator.
type Shape int

const (
	// Bump is a symmetric parabolic swell, zero at both window edges.
	Bump Shape = iota
	// Dip is an inverted Bump.
	Dip
	// Tilted runs linearly from -1 to +1 across the window.
	Tilted
	// Ramp rises linearly from 0 to 1.
	Ramp
	// AsymBump rises quickly and decays exponentially.
	AsymBump
	// SpikeTrain gates a Bump envelope with an intermittent random mask.
	SpikeTrain
	// Block is a soft-edged plateau.
	Block
	// Notch is an inverted Block, a signal-drop region.
	Notch
)

var shapeNames = map[Shape]string{
	Bump:       "bump",
	Dip:        "dip",
	Tilted:     "tilted",
	Ramp:       "ramp",
	AsymBump:   "asym_bump",
	SpikeTrain: "spike_train",
	Block:      "block",
	Notch:      "notch",
}

func (s Shape) String() string {
	if name, ok := shapeNames[s]; ok {
		return name
	}
	return "unknown"
}

// Envelope synthesizes the shape over a window of n samples. Values are
// unitless; callers multiply by an amplitude before applying.
func (s Shape) Envelope(rng *rand.Rand, n int) []float64 {
	base := rampBase(n)
	env := make([]float64, n)
	switch s {
	case Bump, Block:
		for i, b := range base {
			env[i] = b * (1 - b) * 4
		}
	case Dip, Notch:
		for i, b := range base {
			env[i] = -b * (1 - b) * 4
		}
	case Tilted:
		for i, b := range base {
			env[i] = (b - 0.5) * 2
		}
	case Ramp:
		copy(env, base)
	case AsymBump:
		for i, b := range base {
			env[i] = b * math.Exp(-2*b)
		}
	case SpikeTrain:
		for i, b := range base {
			if rng.Float64() > 0.6 {
				env[i] = b * (1 - b) * 4
			}
		}
	}
	return env
}

// rampBase is a 0..1 ramp over n samples; a single-sample window sits at 0.
func rampBase(n int) []float64 {
	out := make([]float64, n)
	if n < 2 {
		return out
	}
	for i := range out {
		out[i] = float64(i) / float64(n-1)
	}
	return out
}

// window is one anomaly's half-open [Start,End) index range.
type window struct {
	Start int
	End   int
}

// Len returns the window length in samples.
func (w window) Len() int { return w.End - w.Start }

// drawWindow picks a center index in [5, max(6, n-5)) and a length in
// [minLen, maxLen), truncated at the sequence end. Ok is false when the
// window degenerates to zero length; callers skip such events silently.
func drawWindow(rng *rand.Rand, n, minLen, maxLen int) (window, bool) {
	center := 5 + rng.Intn(max(6, n-5)-5)
	length := minLen + rng.Intn(maxLen-minLen)
	end := min(n, center+length)
	if end <= center {
		return window{}, false
	}
	return window{Start: center, End: end}, true
}

// eventCount draws the number of anomaly events for one veil call: linear in
// strength plus a small uniform jitter, never less than one.
func eventCount(rng *rand.Rand, base, strength float64, jitter int) int {
	count := int(base*strength) + rng.Intn(jitter)
	if count < 1 {
		count = 1
	}
	return count
}

// pickShape selects uniformly from the sensor's shape set.
func pickShape(rng *rand.Rand, shapes []Shape) Shape {
	return shapes[rng.Intn(len(shapes))]
}
