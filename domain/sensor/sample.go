package sensor

import (
	"github.com/IoTIVP/data-veil/domain/core"
)

// Channels is the untyped interchange form of a sample: channel name to
// series. It is what file readers, HTTP payloads and registry plugins speak;
// the typed records below are what the veil engines consume.
type Channels map[string][]float64

// Clone deep-copies the map and every series.
func (c Channels) Clone() Channels {
	out := make(Channels, len(c))
	for name, series := range c {
		out[name] = copySeries(series)
	}
	return out
}

// Barometer is a barometric pressure sample.
type Barometer struct {
	T        []float64
	Pressure []float64
}

// Magnetometer is a 3-axis magnetic field sample.
type Magnetometer struct {
	T  []float64
	MX []float64
	MY []float64
	MZ []float64
}

// RF is an RF power sample.
type RF struct {
	T     []float64
	Power []float64
}

// Ultrasonic is an ultrasonic range sample.
type Ultrasonic struct {
	T     []float64
	Range []float64
}

// IMU is a 6-axis inertial sample: gyro rates plus accelerations.
type IMU struct {
	T  []float64
	GX []float64
	GY []float64
	GZ []float64
	AX []float64
	AY []float64
	AZ []float64
}

// BarometerFromChannels builds a typed sample from the interchange form,
// copying every series. Missing channels produce a schema error naming
// exactly the absent keys; series whose length disagrees with t are rejected.
func BarometerFromChannels(ch Channels) (Barometer, error) {
	got, err := pick("barometer", ch, requiredChannels[KindBarometer])
	if err != nil {
		return Barometer{}, err
	}
	return Barometer{T: got[ChanTime], Pressure: got[ChanPressure]}, nil
}

// MagnetometerFromChannels builds a typed sample from the interchange form.
func MagnetometerFromChannels(ch Channels) (Magnetometer, error) {
	got, err := pick("magnetometer", ch, requiredChannels[KindMagnetometer])
	if err != nil {
		return Magnetometer{}, err
	}
	return Magnetometer{T: got[ChanTime], MX: got[ChanMagX], MY: got[ChanMagY], MZ: got[ChanMagZ]}, nil
}

// RFFromChannels builds a typed sample from the interchange form.
func RFFromChannels(ch Channels) (RF, error) {
	got, err := pick("rf", ch, requiredChannels[KindRF])
	if err != nil {
		return RF{}, err
	}
	return RF{T: got[ChanTime], Power: got[ChanPower]}, nil
}

// UltrasonicFromChannels builds a typed sample from the interchange form.
func UltrasonicFromChannels(ch Channels) (Ultrasonic, error) {
	got, err := pick("ultrasonic", ch, requiredChannels[KindUltrasonic])
	if err != nil {
		return Ultrasonic{}, err
	}
	return Ultrasonic{T: got[ChanTime], Range: got[ChanRange]}, nil
}

// IMUFromChannels builds a typed sample from the interchange form.
func IMUFromChannels(ch Channels) (IMU, error) {
	got, err := pick("imu", ch, requiredChannels[KindIMU])
	if err != nil {
		return IMU{}, err
	}
	return IMU{
		T:  got[ChanTime],
		GX: got[ChanGyroX], GY: got[ChanGyroY], GZ: got[ChanGyroZ],
		AX: got[ChanAccelX], AY: got[ChanAccelY], AZ: got[ChanAccelZ],
	}, nil
}

// Len returns the sample length N.
func (s Barometer) Len() int    { return len(s.T) }
func (s Magnetometer) Len() int { return len(s.T) }
func (s RF) Len() int           { return len(s.T) }
func (s Ultrasonic) Len() int   { return len(s.T) }
func (s IMU) Len() int          { return len(s.T) }

// Clone deep-copies the sample.
func (s Barometer) Clone() Barometer {
	return Barometer{T: copySeries(s.T), Pressure: copySeries(s.Pressure)}
}

func (s Magnetometer) Clone() Magnetometer {
	return Magnetometer{T: copySeries(s.T), MX: copySeries(s.MX), MY: copySeries(s.MY), MZ: copySeries(s.MZ)}
}

func (s RF) Clone() RF {
	return RF{T: copySeries(s.T), Power: copySeries(s.Power)}
}

func (s Ultrasonic) Clone() Ultrasonic {
	return Ultrasonic{T: copySeries(s.T), Range: copySeries(s.Range)}
}

func (s IMU) Clone() IMU {
	return IMU{
		T:  copySeries(s.T),
		GX: copySeries(s.GX), GY: copySeries(s.GY), GZ: copySeries(s.GZ),
		AX: copySeries(s.AX), AY: copySeries(s.AY), AZ: copySeries(s.AZ),
	}
}

// Channels converts the sample back to the interchange form, copying each
// series so callers cannot alias the sample's storage.
func (s Barometer) Channels() Channels {
	return Channels{ChanTime: copySeries(s.T), ChanPressure: copySeries(s.Pressure)}
}

func (s Magnetometer) Channels() Channels {
	return Channels{
		ChanTime: copySeries(s.T),
		ChanMagX: copySeries(s.MX), ChanMagY: copySeries(s.MY), ChanMagZ: copySeries(s.MZ),
	}
}

func (s RF) Channels() Channels {
	return Channels{ChanTime: copySeries(s.T), ChanPower: copySeries(s.Power)}
}

func (s Ultrasonic) Channels() Channels {
	return Channels{ChanTime: copySeries(s.T), ChanRange: copySeries(s.Range)}
}

func (s IMU) Channels() Channels {
	return Channels{
		ChanTime:   copySeries(s.T),
		ChanGyroX:  copySeries(s.GX),
		ChanGyroY:  copySeries(s.GY),
		ChanGyroZ:  copySeries(s.GZ),
		ChanAccelX: copySeries(s.AX),
		ChanAccelY: copySeries(s.AY),
		ChanAccelZ: copySeries(s.AZ),
	}
}

// Validate re-checks the schema for samples built as struct literals, where
// the constructor guarantee does not apply. A nil series counts as a missing
// channel; every series must match the time axis length. A zero-length sample
// with non-nil series is valid.
func (s Barometer) Validate() error {
	return validateFields("barometer", s.T, []field{{ChanPressure, s.Pressure}})
}

func (s Magnetometer) Validate() error {
	return validateFields("magnetometer", s.T, []field{
		{ChanMagX, s.MX}, {ChanMagY, s.MY}, {ChanMagZ, s.MZ},
	})
}

func (s RF) Validate() error {
	return validateFields("rf", s.T, []field{{ChanPower, s.Power}})
}

func (s Ultrasonic) Validate() error {
	return validateFields("ultrasonic", s.T, []field{{ChanRange, s.Range}})
}

func (s IMU) Validate() error {
	return validateFields("imu", s.T, []field{
		{ChanGyroX, s.GX}, {ChanGyroY, s.GY}, {ChanGyroZ, s.GZ},
		{ChanAccelX, s.AX}, {ChanAccelY, s.AY}, {ChanAccelZ, s.AZ},
	})
}

type field struct {
	name   string
	series []float64
}

func validateFields(op string, t []float64, fields []field) error {
	var missing []string
	if t == nil {
		missing = append(missing, ChanTime)
	}
	for _, f := range fields {
		if f.series == nil {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return core.NewMissingChannelsError(op, missing)
	}
	for _, f := range fields {
		if len(f.series) != len(t) {
			return core.NewLengthMismatchError(op, f.name, len(f.series), len(t))
		}
	}
	return nil
}

// pick extracts and copies the required channels out of the interchange form.
func pick(op string, ch Channels, required []string) (map[string][]float64, error) {
	var missing []string
	for _, name := range required {
		if _, ok := ch[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, core.NewMissingChannelsError(op, missing)
	}

	n := len(ch[ChanTime])
	got := make(map[string][]float64, len(required))
	for _, name := range required {
		series := ch[name]
		if len(series) != n {
			return nil, core.NewLengthMismatchError(op, name, len(series), n)
		}
		got[name] = copySeries(series)
	}
	return got, nil
}

func copySeries(x []float64) []float64 {
	if x == nil {
		return nil
	}
	out := make([]float64, len(x))
	copy(out, x)
	return out
}
