package testkit

import (
	"math"
	"math/rand"

	"github.com/IoTIVP/data-veil/domain/core"
	"github.com/IoTIVP/data-veil/domain/sensor"
)

// SensorGeneratorConfig configures the trusted-log generator
type SensorGeneratorConfig struct {
	Samples int     `json:"samples"`
	Rate    float64 `json:"rate_hz"`
	Seed    int64   `json:"seed"`
}

// DefaultSensorConfig returns sensible defaults for trusted-log generation
func DefaultSensorConfig() SensorGeneratorConfig {
	return SensorGeneratorConfig{
		Samples: 600,
		Rate:    10.0,
		Seed:    42,
	}
}

// SensorDataGenerator produces clean, plausible sensor logs to veil in tests
// and demos. The output mimics a calm bench capture: slow trends, mild
// periodic motion, and small measurement noise.
type SensorDataGenerator struct {
	config SensorGeneratorConfig
	rng    *rand.Rand
}

// NewSensorDataGenerator creates a new trusted-log generator
func NewSensorDataGenerator(config SensorGeneratorConfig) *SensorDataGenerator {
	return &SensorDataGenerator{
		config: config,
		rng:    rand.New(rand.NewSource(config.Seed)),
	}
}

// Generate builds a clean log for one sensor kind.
func (g *SensorDataGenerator) Generate(kind sensor.Kind) (sensor.Channels, error) {
	t := g.timeBase()

	switch kind {
	case sensor.KindBarometer:
		return sensor.Channels{sensor.ChanTime: t, sensor.ChanPressure: g.barometerTrace(t)}, nil
	case sensor.KindMagnetometer:
		mx, my, mz := g.magnetometerTrace(t)
		return sensor.Channels{sensor.ChanTime: t, sensor.ChanMagX: mx, sensor.ChanMagY: my, sensor.ChanMagZ: mz}, nil
	case sensor.KindRF:
		return sensor.Channels{sensor.ChanTime: t, sensor.ChanPower: g.rfTrace(t)}, nil
	case sensor.KindUltrasonic:
		return sensor.Channels{sensor.ChanTime: t, sensor.ChanRange: g.ultrasonicTrace(t)}, nil
	case sensor.KindIMU:
		gx, gy, gz, ax, ay, az := g.imuTrace(t)
		return sensor.Channels{
			sensor.ChanTime:  t,
			sensor.ChanGyroX: gx, sensor.ChanGyroY: gy, sensor.ChanGyroZ: gz,
			sensor.ChanAccelX: ax, sensor.ChanAccelY: ay, sensor.ChanAccelZ: az,
		}, nil
	default:
		return nil, core.NewUnknownSensorError(string(kind), kindNames())
	}
}

// GenerateAll builds one clean log per registered sensor kind.
func (g *SensorDataGenerator) GenerateAll() (map[sensor.Kind]sensor.Channels, error) {
	logs := make(map[sensor.Kind]sensor.Channels, len(sensor.Kinds()))
	for _, kind := range sensor.Kinds() {
		ch, err := g.Generate(kind)
		if err != nil {
			return nil, err
		}
		logs[kind] = ch
	}
	return logs, nil
}

func (g *SensorDataGenerator) timeBase() []float64 {
	t := make([]float64, g.config.Samples)
	for i := range t {
		t[i] = float64(i) / g.config.Rate
	}
	return t
}

// barometerTrace is station pressure in hPa with a slow weather trend.
func (g *SensorDataGenerator) barometerTrace(t []float64) []float64 {
	p := make([]float64, len(t))
	for i, ti := range t {
		p[i] = 1013.25 + 1.2*math.Sin(2*math.Pi*ti/300.0) + g.rng.NormFloat64()*0.05
	}
	return p
}

// magnetometerTrace is an earth-field reading in microtesla with a slow
// heading wobble on the horizontal components.
func (g *SensorDataGenerator) magnetometerTrace(t []float64) (mx, my, mz []float64) {
	mx = make([]float64, len(t))
	my = make([]float64, len(t))
	mz = make([]float64, len(t))
	for i, ti := range t {
		wobble := 2 * math.Pi * 0.01 * ti
		mx[i] = 21.3 + 1.5*math.Sin(wobble) + g.rng.NormFloat64()*0.15
		my[i] = 4.8 + 1.5*math.Cos(wobble) + g.rng.NormFloat64()*0.15
		mz[i] = 42.9 + 0.4*math.Sin(2*math.Pi*0.004*ti) + g.rng.NormFloat64()*0.2
	}
	return mx, my, mz
}

// rfTrace is received power in dBm under slow multipath fading.
func (g *SensorDataGenerator) rfTrace(t []float64) []float64 {
	p := make([]float64, len(t))
	for i, ti := range t {
		fade := 6.0 * math.Abs(math.Sin(2*math.Pi*0.05*ti))
		p[i] = -58.0 - fade + g.rng.NormFloat64()*0.8
	}
	return p
}

// ultrasonicTrace is a target slowly drifting between roughly one and three
// meters of the transducer.
func (g *SensorDataGenerator) ultrasonicTrace(t []float64) []float64 {
	r := make([]float64, len(t))
	for i, ti := range t {
		r[i] = 1.8 + 0.9*math.Sin(2*math.Pi*0.02*ti) + g.rng.NormFloat64()*0.01
		if r[i] < 0.04 {
			r[i] = 0.04
		}
	}
	return r
}

// imuTrace is a gently rocking platform: gyro rates near zero, accel
// dominated by gravity on the z axis plus a little vibration.
func (g *SensorDataGenerator) imuTrace(t []float64) (gx, gy, gz, ax, ay, az []float64) {
	n := len(t)
	gx = make([]float64, n)
	gy = make([]float64, n)
	gz = make([]float64, n)
	ax = make([]float64, n)
	ay = make([]float64, n)
	az = make([]float64, n)
	for i, ti := range t {
		rock := 2 * math.Pi * 0.3 * ti
		gx[i] = 0.02*math.Sin(rock) + g.rng.NormFloat64()*0.005
		gy[i] = 0.015*math.Cos(rock) + g.rng.NormFloat64()*0.005
		gz[i] = g.rng.NormFloat64() * 0.004
		ax[i] = 0.3*math.Sin(2*math.Pi*1.2*ti) + g.rng.NormFloat64()*0.02
		ay[i] = 0.25*math.Cos(2*math.Pi*1.2*ti) + g.rng.NormFloat64()*0.02
		az[i] = 9.81 + g.rng.NormFloat64()*0.03
	}
	return gx, gy, gz, ax, ay, az
}

func kindNames() []string {
	kinds := sensor.Kinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = string(k)
	}
	return names
}
