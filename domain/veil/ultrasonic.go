package veil

import (
	"math/rand"

	"gonum.org/v1/gonum/floats"

	"github.com/IoTIVP/data-veil/domain/sensor"
)

// rangeEvent is the kind of localized range distortion: readings pinned
// toward max range (nothing detected), pinned toward a near obstacle, or a
// phantom band of shorter-than-usual ranges.
type rangeEvent int

const (
	deadMax rangeEvent = iota
	deadMin
	phantom
)

// Ultrasonic veils a range series with subtle baseline warping, dead zones,
// phantom obstacles, and adaptive jitter. Unlike the additive sensors, range
// events blend the signal toward a target distance under a bump envelope, so
// the series glides into and out of each event. Output is clamped to
// non-negative, plausibly bounded distances.
func Ultrasonic(rng *rand.Rand, in sensor.Ultrasonic, strength float64) (sensor.Ultrasonic, error) {
	if err := checkStrength(strength); err != nil {
		return sensor.Ultrasonic{}, err
	}
	if err := in.Validate(); err != nil {
		return sensor.Ultrasonic{}, err
	}

	out := in.Clone()
	n := out.Len()
	if n == 0 {
		return out, nil
	}

	r := out.Range
	st := sensor.SeriesStats(r)
	tNorm := normalizeTime(out.T)

	baseline := driftCurve(rng, tNorm, driftSpec{
		Freqs:     []float64{0.2, 0.5},
		Weights:   []float64{0.7, 0.5},
		StepSigma: 0.005,
	}, strength)
	floats.AddScaled(r, 0.1*st.Span, baseline)

	count := eventCount(rng, 3, strength, 3)
	for i := 0; i < count; i++ {
		w, ok := drawWindow(rng, n, 10, 60)
		if !ok {
			continue
		}
		env := Bump.Envelope(rng, w.Len())

		var target float64
		switch rangeEvent(rng.Intn(3)) {
		case deadMax:
			target = st.Max + 0.1*st.Span
		case deadMin:
			target = max(st.Min-0.1*st.Span, 0)
		case phantom:
			target = st.Min + 0.2*st.Span
		}
		for j := w.Start; j < w.End; j++ {
			e := env[j-w.Start]
			r[j] = r[j]*(1-e) + target*e
		}
	}

	noise := noiseSeries(rng, tNorm, 0.02*st.Span*strength, envelopeSpec{Offset: 0.6, Amp: 0.4, Freq: 0.08})
	floats.Add(r, noise)

	clip(r, 0, st.Max+0.5*st.Span)

	return out, nil
}

// UltrasonicChannels adapts Ultrasonic to the interchange form.
func UltrasonicChannels(rng *rand.Rand, ch sensor.Channels, strength float64) (sensor.Channels, error) {
	in, err := sensor.UltrasonicFromChannels(ch)
	if err != nil {
		return nil, err
	}
	out, err := Ultrasonic(rng, in, strength)
	if err != nil {
		return nil, err
	}
	return mergeExtras(ch, out.Channels()), nil
}
