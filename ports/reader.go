package ports

import (
	"github.com/IoTIVP/data-veil/domain/sensor"
)

// SampleReader loads channel data from a sensor log file. The first row
// carries channel names; every following row is one sample.
type SampleReader interface {
	Read(path string) (sensor.Channels, error)
}

// SampleWriter exports channel data for veiled dataset delivery.
type SampleWriter interface {
	Write(path string, ch sensor.Channels) error
}
