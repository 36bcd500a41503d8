package veil

import (
	"math/rand"

	"gonum.org/v1/gonum/floats"

	"github.com/IoTIVP/data-veil/domain/sensor"
)

// impactAccelFactor scales impact amplitudes for the accelerometer group
// relative to the gyro group; impacts hit accelerometers harder.
const impactAccelFactor = 4.0

// IMU veils gyro and accelerometer channels with slow correlated drift, fake
// impact spikes, and adaptive jitter. The gyro trio and the accel trio are
// treated as two 3-axis groups: each group gets its own stacked statistics,
// drift curves, and per-event direction vector, while every event shares one
// window and amplitude draw across both groups so a fake impact shows up in
// rates and accelerations at the same instant.
func IMU(rng *rand.Rand, in sensor.IMU, strength float64) (sensor.IMU, error) {
	if err := checkStrength(strength); err != nil {
		return sensor.IMU{}, err
	}
	if err := in.Validate(); err != nil {
		return sensor.IMU{}, err
	}

	out := in.Clone()
	n := out.Len()
	if n == 0 {
		return out, nil
	}

	gyro := [3][]float64{out.GX, out.GY, out.GZ}
	accel := [3][]float64{out.AX, out.AY, out.AZ}
	stG := sensor.StackedStats(out.GX, out.GY, out.GZ)
	stA := sensor.StackedStats(out.AX, out.AY, out.AZ)
	tNorm := normalizeTime(out.T)

	freqs := []float64{0.08, 0.3, 0.9}
	driftG := driftCurve3(rng, tNorm, freqs, 0.008, strength)
	driftA := driftCurve3(rng, tNorm, freqs, 0.008, strength)
	for a := 0; a < 3; a++ {
		floats.AddScaled(gyro[a], 0.04*stG.Span, driftG[a])
		floats.AddScaled(accel[a], 0.04*stA.Span, driftA[a])
	}

	shapes := []Shape{SpikeTrain, Bump}
	count := eventCount(rng, 6, strength, 3)
	for i := 0; i < count; i++ {
		w, ok := drawWindow(rng, n, 3, 12)
		if !ok {
			continue
		}
		env := pickShape(rng, shapes).Envelope(rng, w.Len())
		dirG := unitVector3(rng)
		dirA := unitVector3(rng)
		base := (0.6 + 0.6*rng.Float64()) * strength
		ampG := base * stG.Std
		ampA := base * stA.Std * impactAccelFactor
		for a := 0; a < 3; a++ {
			floats.AddScaled(gyro[a][w.Start:w.End], dirG[a]*ampG, env)
			floats.AddScaled(accel[a][w.Start:w.End], dirA[a]*ampA, env)
		}
	}

	jitterEnv := envelopeSpec{Offset: 0.5, Amp: 0.5, Freq: 0.1}
	for a := 0; a < 3; a++ {
		floats.Add(gyro[a], noiseSeries(rng, tNorm, 0.05*stG.Std*strength, jitterEnv))
	}
	for a := 0; a < 3; a++ {
		floats.Add(accel[a], noiseSeries(rng, tNorm, 0.2*stA.Std*strength, jitterEnv))
	}

	return out, nil
}

// IMUChannels adapts IMU to the interchange form.
func IMUChannels(rng *rand.Rand, ch sensor.Channels, strength float64) (sensor.Channels, error) {
	in, err := sensor.IMUFromChannels(ch)
	if err != nil {
		return nil, err
	}
	out, err := IMU(rng, in, strength)
	if err != nil {
		return nil, err
	}
	return mergeExtras(ch, out.Channels()), nil
}
