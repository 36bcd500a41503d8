package veil

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"
)

// driftSpec parameterizes the multi-frequency drift curve for one sensor.
// Freqs and Weights must have equal length, two or three entries. The third
// harmonic, when present, is modulated by a secondary cosine so the curve is
// not a finite sum of independent sinusoids.
type driftSpec struct {
	Freqs     []float64
	Weights   []float64
	Skew      float64
	ModRatio  float64
	StepSigma float64
}

// driftCurve builds the unitless drift sequence: weighted harmonics at
// strength-scaled frequencies with independently drawn phases, plus a
// cumulative Gaussian random walk. Callers scale the result by a span-derived
// factor before adding it to a channel.
func driftCurve(rng *rand.Rand, tNorm []float64, spec driftSpec, strength float64) []float64 {
	n := len(tNorm)
	drift := make([]float64, n)

	phases := make([]float64, len(spec.Freqs))
	for i := range phases {
		phases[i] = rng.Float64() * 2 * math.Pi
	}

	for i, f := range spec.Freqs {
		freq := f * strength
		w := spec.Weights[i]
		for j, tn := range tNorm {
			angle := 2*math.Pi*freq*tn + phases[i]
			switch i {
			case 0:
				drift[j] += w * math.Sin(angle)
			case 1:
				drift[j] += w * math.Cos(angle)
			default:
				drift[j] += w * math.Sin(angle+spec.Skew) * math.Cos(spec.ModRatio*angle)
			}
		}
	}

	sigma := spec.StepSigma * strength
	walk := 0.0
	for j := range drift {
		walk += rng.NormFloat64() * sigma
		drift[j] += walk
	}
	return drift
}

// driftCurve3 builds three correlated drift curves for a 3-axis channel. Each
// harmonic draws one unit-norm weight vector shared across axes, so the axes
// stay environmentally correlated, while each axis gets a distinct waveform
// and its own cumulative walk.
func driftCurve3(rng *rand.Rand, tNorm []float64, freqs []float64, stepSigma, strength float64) [3][]float64 {
	n := len(tNorm)
	var out [3][]float64
	for a := range out {
		out[a] = make([]float64, n)
	}

	phases := make([]float64, len(freqs))
	for i := range phases {
		phases[i] = rng.Float64() * 2 * math.Pi
	}

	for i, f := range freqs {
		freq := f * strength
		w := unitVector3(rng)
		for j, tn := range tNorm {
			angle := 2*math.Pi*freq*tn + phases[i]
			out[0][j] += w[0] * math.Sin(angle)
			out[1][j] += w[1] * math.Cos(angle)
			out[2][j] += w[2] * math.Sin(angle+0.5)
		}
	}

	sigma := stepSigma * strength
	var walk [3]float64
	for j := 0; j < n; j++ {
		for a := 0; a < 3; a++ {
			walk[a] += rng.NormFloat64() * sigma
			out[a][j] += walk[a]
		}
	}
	return out
}

// normalizeTime maps the time axis onto [0,1]. The denominator is floored so
// constant or single-sample time axes do not divide by zero.
func normalizeTime(t []float64) []float64 {
	n := len(t)
	out := make([]float64, n)
	if n == 0 {
		return out
	}
	t0 := t[0]
	span := t[n-1] - t0
	if span < 1e-6 {
		span = 1e-6
	}
	for i, v := range t {
		out[i] = (v - t0) / span
	}
	return out
}

// unitVector3 draws a random direction in 3-space, normalized to unit length.
func unitVector3(rng *rand.Rand) [3]float64 {
	var v [3]float64
	for i := range v {
		v[i] = rng.NormFloat64()
	}
	norm := floats.Norm(v[:], 2)
	if norm < 1e-6 {
		norm = 1e-6
	}
	for i := range v {
		v[i] /= norm
	}
	return v
}
