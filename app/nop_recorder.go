package app

import (
	"context"

	"github.com/IoTIVP/data-veil/models"
	"github.com/IoTIVP/data-veil/ports"
)

// NopRecorder discards audit rows. It keeps the service usable when no
// database or in-memory store is wired.
type NopRecorder struct{}

// Record drops the run.
func (NopRecorder) Record(ctx context.Context, run models.VeilRun) error {
	return nil
}

// Recent always reports an empty history.
func (NopRecorder) Recent(ctx context.Context, limit int) ([]models.VeilRun, error) {
	return []models.VeilRun{}, nil
}

var _ ports.RunRecorder = NopRecorder{}
