package veil

import (
	"math"
	"math/rand"
	"sort"

	"github.com/IoTIVP/data-veil/domain/core"
	"github.com/IoTIVP/data-veil/domain/sensor"
)

// latentSet holds the shared stochastic sequences behind one fusion call: a
// cumulative random walk, a two-term weighted sinusoid, and smoothed white
// noise. All streams in the call mix the same three sequences, which is what
// makes their distortions correlate.
type latentSet struct {
	Walk     []float64
	Sinusoid []float64
	Smoothed []float64
}

func newLatentSet(rng *rand.Rand, n int, strength float64) latentSet {
	walk := make([]float64, n)
	sigma := 0.05 * strength
	acc := 0.0
	for i := range walk {
		acc += rng.NormFloat64() * sigma
		walk[i] = acc
	}

	t := rampBase(n)
	f1 := 0.3 * strength
	f2 := 0.8 * strength
	phase1 := rng.Float64() * 2 * math.Pi
	phase2 := rng.Float64() * 2 * math.Pi
	sinusoid := make([]float64, n)
	for i, tn := range t {
		sinusoid[i] = 0.7*math.Sin(2*math.Pi*f1*tn+phase1) + 0.5*math.Cos(2*math.Pi*f2*tn+phase2)
	}

	raw := make([]float64, n)
	for i := range raw {
		raw[i] = rng.NormFloat64()
	}

	return latentSet{Walk: walk, Sinusoid: sinusoid, Smoothed: movingAverage(raw, 5)}
}

// movingAverage smooths x with a centered box kernel of odd width k, treating
// samples outside the series as zero.
func movingAverage(x []float64, k int) []float64 {
	n := len(x)
	out := make([]float64, n)
	half := k / 2
	for i := range out {
		sum := 0.0
		for j := i - half; j <= i+half; j++ {
			if j >= 0 && j < n {
				sum += x[j]
			}
		}
		out[i] = sum / float64(k)
	}
	return out
}

// Fusion applies correlated distortions across aligned 1-D streams. All
// streams are truncated to the shortest length, one latentSet is built for
// the call, and each stream adds its own unit-norm mixture of the shared
// latents scaled by its own span/std blend and the global strength. Residuals
// of every stream in one call therefore share statistical structure even when
// the underlying data is unrelated.
//
// Streams are processed in sorted name order so a fixed seed yields identical
// draws regardless of map iteration order.
func Fusion(rng *rand.Rand, streams map[string][]float64, strength float64) (map[string][]float64, error) {
	if err := checkStrength(strength); err != nil {
		return nil, err
	}
	if len(streams) == 0 {
		return nil, core.ErrEmptyStreamSet
	}

	n := -1
	for _, s := range streams {
		if n < 0 || len(s) < n {
			n = len(s)
		}
	}

	out := make(map[string][]float64, len(streams))
	if n == 0 {
		for name := range streams {
			out[name] = []float64{}
		}
		return out, nil
	}

	latents := newLatentSet(rng, n, strength)

	names := make([]string, 0, len(streams))
	for name := range streams {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		veiled := make([]float64, n)
		copy(veiled, streams[name][:n])

		st := sensor.SeriesStats(veiled)
		w := unitVector3(rng)
		scale := (0.2*st.Span + 0.8*st.Std) * strength
		for i := range veiled {
			mix := w[0]*latents.Walk[i] + w[1]*latents.Sinusoid[i] + w[2]*latents.Smoothed[i]
			veiled[i] += scale * mix
		}
		out[name] = veiled
	}
	return out, nil
}
