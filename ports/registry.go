package ports

import (
	"math/rand"

	"github.com/IoTIVP/data-veil/domain/sensor"
)

// VeilFunc is the registry-facing form of a veil operation: interchange
// channels in, veiled channels out.
type VeilFunc func(rng *rand.Rand, ch sensor.Channels, strength float64) (sensor.Channels, error)

// VeilRegistry is the name-to-operation table consumed by transports and the
// CLI. Plugins may register additional sensors or overwrite built-ins.
type VeilRegistry interface {
	// Register binds a veil function to a sensor name. Empty names and nil
	// functions are rejected.
	Register(name string, fn VeilFunc) error

	// Lookup returns the veil function for a sensor name, if registered.
	Lookup(name string) (VeilFunc, bool)

	// Names returns the sorted registered sensor names.
	Names() []string
}
