package sensor

// Kind identifies one of the supported sensor families.
type Kind string

const (
	KindBarometer    Kind = "barometer"
	KindMagnetometer Kind = "magnetometer"
	KindRF           Kind = "rf"
	KindUltrasonic   Kind = "ultrasonic"
	KindIMU          Kind = "imu"
)

// Channel names shared across the sensor schemas.
const (
	ChanTime     = "t"
	ChanPressure = "pressure"
	ChanMagX     = "mx"
	ChanMagY     = "my"
	ChanMagZ     = "mz"
	ChanPower    = "power"
	ChanRange    = "range"
	ChanGyroX    = "gx"
	ChanGyroY    = "gy"
	ChanGyroZ    = "gz"
	ChanAccelX   = "ax"
	ChanAccelY   = "ay"
	ChanAccelZ   = "az"
)

var requiredChannels = map[Kind][]string{
	KindBarometer:    {ChanTime, ChanPressure},
	KindMagnetometer: {ChanTime, ChanMagX, ChanMagY, ChanMagZ},
	KindRF:           {ChanTime, ChanPower},
	KindUltrasonic:   {ChanTime, ChanRange},
	KindIMU:          {ChanTime, ChanGyroX, ChanGyroY, ChanGyroZ, ChanAccelX, ChanAccelY, ChanAccelZ},
}

// Required returns the channel names a sample of this kind must carry.
func (k Kind) Required() []string {
	return append([]string(nil), requiredChannels[k]...)
}

// Valid reports whether k names a supported sensor family.
func (k Kind) Valid() bool {
	_, ok := requiredChannels[k]
	return ok
}

// String returns the sensor name used in profiles, the registry and logs.
func (k Kind) String() string {
	return string(k)
}

// Kinds returns the supported sensor families in a stable order.
func Kinds() []Kind {
	return []Kind{KindBarometer, KindMagnetometer, KindRF, KindUltrasonic, KindIMU}
}
