package veil

import (
	"math/rand"

	"gonum.org/v1/gonum/floats"

	"github.com/IoTIVP/data-veil/domain/sensor"
)

// RF veils an RF power series with multi-frequency baseline warping,
// interference-like bursts, and noise with time-varying variance, so the
// output is useless for localization or interference analysis while still
// looking like real spectrum activity.
func RF(rng *rand.Rand, in sensor.RF, strength float64) (sensor.RF, error) {
	if err := checkStrength(strength); err != nil {
		return sensor.RF{}, err
	}
	if err := in.Validate(); err != nil {
		return sensor.RF{}, err
	}

	out := in.Clone()
	n := out.Len()
	if n == 0 {
		return out, nil
	}

	power := out.Power
	st := sensor.SeriesStats(power)
	tNorm := normalizeTime(out.T)

	warp := driftCurve(rng, tNorm, driftSpec{
		Freqs:     []float64{0.15, 0.4, 0.8},
		Weights:   []float64{0.7, 0.5, 0.4},
		Skew:      0.6,
		ModRatio:  0.4,
		StepSigma: 0.01,
	}, strength)
	floats.AddScaled(power, 0.2*st.Span, warp)

	shapes := []Shape{SpikeTrain, Block, Notch}
	count := eventCount(rng, 3, strength, 4)
	for i := 0; i < count; i++ {
		w, ok := drawWindow(rng, n, 15, 80)
		if !ok {
			continue
		}
		env := pickShape(rng, shapes).Envelope(rng, w.Len())
		amp := (1.0 + 1.5*rng.Float64()) * st.Std * strength
		floats.AddScaled(power[w.Start:w.End], amp, env)
	}

	noise := noiseSeries(rng, tNorm, 0.05*st.Span*strength, envelopeSpec{Offset: 0.4, Amp: 0.6, Freq: 0.07, Rectified: true})
	floats.Add(power, noise)

	return out, nil
}

// RFChannels adapts RF to the interchange form.
func RFChannels(rng *rand.Rand, ch sensor.Channels, strength float64) (sensor.Channels, error) {
	in, err := sensor.RFFromChannels(ch)
	if err != nil {
		return nil, err
	}
	out, err := RF(rng, in, strength)
	if err != nil {
		return nil, err
	}
	return mergeExtras(ch, out.Channels()), nil
}
