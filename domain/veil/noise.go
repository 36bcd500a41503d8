package veil

import (
	"math"
	"math/rand"
)

// envelopeSpec parameterizes the slow variance envelope of adaptive noise.
// The envelope is Offset + Amp*sin(2*pi*Freq*tNorm + phase); Rectified takes
// the absolute value of the sine so the envelope never dips below Offset.
type envelopeSpec struct {
	Offset    float64
	Amp       float64
	Freq      float64
	Rectified bool
}

// noiseSeries draws heteroscedastic Gaussian noise: per-sample sigma is the
// base sigma modulated by a slowly varying envelope with one random phase per
// call. The variance visibly drifts over the series instead of staying flat.
func noiseSeries(rng *rand.Rand, tNorm []float64, sigma float64, env envelopeSpec) []float64 {
	phase := rng.Float64() * 2 * math.Pi
	out := make([]float64, len(tNorm))
	for i, tn := range tNorm {
		s := math.Sin(2*math.Pi*env.Freq*tn + phase)
		if env.Rectified {
			s = math.Abs(s)
		}
		out[i] = rng.NormFloat64() * sigma * (env.Offset + env.Amp*s)
	}
	return out
}
