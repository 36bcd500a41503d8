package veil

import (
	"math/rand"

	"gonum.org/v1/gonum/floats"

	"github.com/IoTIVP/data-veil/domain/sensor"
)

// Magnetometer veils a 3-axis field with soft-iron style bias drift, local
// magnetic ghosts (fake machinery, cables, motors), and per-axis jitter. The
// three axes share drift and anomaly draws through unit-norm direction
// vectors, so the distortion stays environmentally correlated across axes
// instead of looking like three independent corruptions.
func Magnetometer(rng *rand.Rand, in sensor.Magnetometer, strength float64) (sensor.Magnetometer, error) {
	if err := checkStrength(strength); err != nil {
		return sensor.Magnetometer{}, err
	}
	if err := in.Validate(); err != nil {
		return sensor.Magnetometer{}, err
	}

	out := in.Clone()
	n := out.Len()
	if n == 0 {
		return out, nil
	}

	axes := [3][]float64{out.MX, out.MY, out.MZ}
	st := sensor.StackedStats(out.MX, out.MY, out.MZ)
	tNorm := normalizeTime(out.T)

	drift := driftCurve3(rng, tNorm, []float64{0.3, 0.7, 1.3}, 0.01, strength)
	for a := range axes {
		floats.AddScaled(axes[a], 0.05*st.Span, drift[a])
	}

	shapes := []Shape{Bump, Ramp, AsymBump}
	count := eventCount(rng, 4, strength, 3)
	for i := 0; i < count; i++ {
		w, ok := drawWindow(rng, n, 8, 40)
		if !ok {
			continue
		}
		env := pickShape(rng, shapes).Envelope(rng, w.Len())
		dir := unitVector3(rng)
		amp := (0.5 + 0.5*rng.Float64()) * st.Std * strength
		for a := range axes {
			floats.AddScaled(axes[a][w.Start:w.End], dir[a]*amp, env)
		}
	}

	jitter := 0.05 * st.Std * strength
	axisScale := [3]float64{1.0, 1.2, 0.8}
	for a := range axes {
		sigma := jitter * axisScale[a]
		for j := range axes[a] {
			axes[a][j] += rng.NormFloat64() * sigma
		}
	}

	return out, nil
}

// MagnetometerChannels adapts Magnetometer to the interchange form.
func MagnetometerChannels(rng *rand.Rand, ch sensor.Channels, strength float64) (sensor.Channels, error) {
	in, err := sensor.MagnetometerFromChannels(ch)
	if err != nil {
		return nil, err
	}
	out, err := Magnetometer(rng, in, strength)
	if err != nil {
		return nil, err
	}
	return mergeExtras(ch, out.Channels()), nil
}
