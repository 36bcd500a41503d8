package ports

import (
	"context"

	"github.com/IoTIVP/data-veil/models"
)

// RunRecorder persists veil-run audit records so operators can review what
// was veiled, with which profile and seed, without retaining sensor payloads.
type RunRecorder interface {
	// Record stores one completed veil run.
	Record(ctx context.Context, run models.VeilRun) error

	// Recent returns the newest runs, most recent first.
	Recent(ctx context.Context, limit int) ([]models.VeilRun, error)
}
