package models

import (
	"time"

	"github.com/google/uuid"
)

// VeilRun is the audit record of one veil operation: which sensor was
// veiled, under which profile and strength, how many samples, and how far
// the output moved from the trusted input. Sensor payloads are never stored.
type VeilRun struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Sensor    string    `json:"sensor" db:"sensor"`
	Profile   string    `json:"profile,omitempty" db:"profile"`
	Strength  float64   `json:"strength" db:"strength"`
	Seed      *int64    `json:"seed,omitempty" db:"seed"`
	Samples   int       `json:"samples" db:"samples"`
	Residual  float64   `json:"residual" db:"residual"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// NewVeilRun stamps a new audit record for a completed veil operation.
// Residual is the mean absolute difference across veiled channels.
func NewVeilRun(sensor, profile string, strength float64, samples int, residual float64) VeilRun {
	return VeilRun{
		ID:        uuid.New(),
		Sensor:    sensor,
		Profile:   profile,
		Strength:  strength,
		Samples:   samples,
		Residual:  residual,
		CreatedAt: time.Now().UTC(),
	}
}
