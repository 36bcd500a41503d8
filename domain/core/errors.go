package core

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Domain errors - centralized error definitions
var (
	// Schema errors: the input does not satisfy a sensor's channel contract.
	ErrSchema          = errors.New("sample schema invalid")
	ErrMissingChannels = fmt.Errorf("%w: missing channels", ErrSchema)
	ErrLengthMismatch  = fmt.Errorf("%w: channel lengths differ", ErrSchema)
	ErrEmptyStreamSet  = fmt.Errorf("%w: stream set is empty", ErrSchema)

	// Lookup errors
	ErrNotFound       = errors.New("resource not found")
	ErrUnknownProfile = fmt.Errorf("%w: profile", ErrNotFound)
	ErrUnknownSensor  = fmt.Errorf("%w: sensor", ErrNotFound)

	// Parameter errors
	ErrStrength = errors.New("strength must be non-negative")
)

// Error constructors with context

// MissingChannelsError carries the exact set of channels absent from an
// input sample, so callers can report them structurally.
type MissingChannelsError struct {
	Op   string
	Keys []string
}

func (e *MissingChannelsError) Error() string {
	return fmt.Sprintf("%s: %v: [%s]", e.Op, ErrMissingChannels, strings.Join(e.Keys, ", "))
}

func (e *MissingChannelsError) Unwrap() error {
	return ErrMissingChannels
}

// NewMissingChannelsError reports the exact set of channels absent from an
// input sample. The missing names are sorted so the message is deterministic.
func NewMissingChannelsError(op string, missing []string) error {
	keys := append([]string(nil), missing...)
	sort.Strings(keys)
	return &MissingChannelsError{Op: op, Keys: keys}
}

// NewLengthMismatchError reports a channel whose length disagrees with the
// sample's time axis.
func NewLengthMismatchError(op, channel string, got, want int) error {
	return fmt.Errorf("%s: %w: channel %q has %d samples, want %d", op, ErrLengthMismatch, channel, got, want)
}

// NewUnknownProfileError reports an unresolvable profile name along with the
// set of valid names.
func NewUnknownProfileError(profile string, valid []string) error {
	names := append([]string(nil), valid...)
	sort.Strings(names)
	return fmt.Errorf("%w %q, valid profiles: [%s]", ErrUnknownProfile, profile, strings.Join(names, ", "))
}

// NewUnknownSensorError reports an unregistered sensor name along with the
// registered names.
func NewUnknownSensorError(sensor string, registered []string) error {
	names := append([]string(nil), registered...)
	sort.Strings(names)
	return fmt.Errorf("%w %q, registered sensors: [%s]", ErrUnknownSensor, sensor, strings.Join(names, ", "))
}

// NewStrengthError reports a negative strength value.
func NewStrengthError(strength float64) error {
	return fmt.Errorf("%w: got %g", ErrStrength, strength)
}

// Error checking helpers

// IsSchemaError reports whether err is any schema violation.
func IsSchemaError(err error) bool {
	return errors.Is(err, ErrSchema)
}

// IsNotFoundError reports whether err is an unknown-profile or unknown-sensor
// lookup failure.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}
