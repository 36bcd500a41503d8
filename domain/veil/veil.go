// Package veil implements the distortion engines that turn trusted sensor
// time-series into statistically corrupted but plausible-looking variants.
// Each engine composes a smooth drift curve, localized anomaly events, and
// heteroscedastic noise, all scaled to the channel's own dynamic range and a
// caller-supplied strength. Every operation takes an explicit *rand.Rand so
// callers control determinism; nothing in this package touches process-wide
// generator state, performs I/O, or mutates its input.
package veil

import (
	"math/rand"

	"github.com/IoTIVP/data-veil/domain/core"
	"github.com/IoTIVP/data-veil/domain/sensor"
)

// Apply dispatches the interchange form to the veil for the given kind.
func Apply(rng *rand.Rand, kind sensor.Kind, ch sensor.Channels, strength float64) (sensor.Channels, error) {
	switch kind {
	case sensor.KindBarometer:
		return BarometerChannels(rng, ch, strength)
	case sensor.KindMagnetometer:
		return MagnetometerChannels(rng, ch, strength)
	case sensor.KindRF:
		return RFChannels(rng, ch, strength)
	case sensor.KindUltrasonic:
		return UltrasonicChannels(rng, ch, strength)
	case sensor.KindIMU:
		return IMUChannels(rng, ch, strength)
	default:
		return nil, core.NewUnknownSensorError(string(kind), kindNames())
	}
}

func kindNames() []string {
	kinds := sensor.Kinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = string(k)
	}
	return names
}

func checkStrength(strength float64) error {
	if strength < 0 {
		return core.NewStrengthError(strength)
	}
	return nil
}

// mergeExtras carries channels outside the veiled schema through to the
// output, copied so the result never aliases the input.
func mergeExtras(in, veiled sensor.Channels) sensor.Channels {
	for name, series := range in {
		if _, ok := veiled[name]; ok {
			continue
		}
		dup := make([]float64, len(series))
		copy(dup, series)
		veiled[name] = dup
	}
	return veiled
}

// clip bounds every element of x to [lo, hi].
func clip(x []float64, lo, hi float64) {
	for i, v := range x {
		if v < lo {
			x[i] = lo
		} else if v > hi {
			x[i] = hi
		}
	}
}

// clipLower bounds every element of x below by lo.
func clipLower(x []float64, lo float64) {
	for i, v := range x {
		if v < lo {
			x[i] = lo
		}
	}
}
