package veil

import (
	"math/rand"

	"gonum.org/v1/gonum/floats"

	"github.com/IoTIVP/data-veil/domain/sensor"
)

// Barometer veils a pressure series with weather-like multi-frequency drift,
// transient altitude illusions, and adaptive noise, so altitude or pressure
// reconstruction from the output is unreliable while the series stays
// physically plausible.
func Barometer(rng *rand.Rand, in sensor.Barometer, strength float64) (sensor.Barometer, error) {
	if err := checkStrength(strength); err != nil {
		return sensor.Barometer{}, err
	}
	if err := in.Validate(); err != nil {
		return sensor.Barometer{}, err
	}

	out := in.Clone()
	n := out.Len()
	if n == 0 {
		return out, nil
	}

	p := out.Pressure
	st := sensor.SeriesStats(p)
	tNorm := normalizeTime(out.T)

	drift := driftCurve(rng, tNorm, driftSpec{
		Freqs:     []float64{0.1, 0.25, 0.45},
		Weights:   []float64{0.6, 0.4, 0.3},
		Skew:      0.7,
		ModRatio:  0.5,
		StepSigma: 0.002,
	}, strength)
	floats.AddScaled(p, 0.03*st.Span, drift)

	shapes := []Shape{Bump, Dip, Tilted}
	count := eventCount(rng, 3, strength, 3)
	for i := 0; i < count; i++ {
		w, ok := drawWindow(rng, n, 15, 60)
		if !ok {
			continue
		}
		env := pickShape(rng, shapes).Envelope(rng, w.Len())
		amp := (0.5 + 0.8*rng.Float64()) * st.Std * strength
		floats.AddScaled(p[w.Start:w.End], amp, env)
	}

	noise := noiseSeries(rng, tNorm, 0.01*st.Span*strength, envelopeSpec{Offset: 0.5, Amp: 0.5, Freq: 0.05})
	floats.Add(p, noise)

	clipLower(p, 0)

	return out, nil
}

// BarometerChannels adapts Barometer to the interchange form used by the
// registry and transports. Channels beyond the barometer schema pass through
// untouched.
func BarometerChannels(rng *rand.Rand, ch sensor.Channels, strength float64) (sensor.Channels, error) {
	in, err := sensor.BarometerFromChannels(ch)
	if err != nil {
		return nil, err
	}
	out, err := Barometer(rng, in, strength)
	if err != nil {
		return nil, err
	}
	return mergeExtras(ch, out.Channels()), nil
}
