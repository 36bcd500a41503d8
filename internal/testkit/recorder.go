package testkit

import (
	"context"
	"sync"

	"github.com/IoTIVP/data-veil/models"
	"github.com/IoTIVP/data-veil/ports"
)

// InMemoryRecorder implements ports.RunRecorder with in-memory storage. It
// stands in for the Postgres adapter in tests and when no database is
// configured.
type InMemoryRecorder struct {
	runs []models.VeilRun
	mu   sync.RWMutex
}

// NewInMemoryRecorder creates a new in-memory run recorder
func NewInMemoryRecorder() *InMemoryRecorder {
	return &InMemoryRecorder{}
}

// Record appends the run to the in-memory log.
func (r *InMemoryRecorder) Record(ctx context.Context, run models.VeilRun) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.runs = append(r.runs, run)
	return nil
}

// Recent returns up to limit runs, newest first.
func (r *InMemoryRecorder) Recent(ctx context.Context, limit int) ([]models.VeilRun, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if limit <= 0 {
		limit = 50
	}
	if limit > len(r.runs) {
		limit = len(r.runs)
	}

	out := make([]models.VeilRun, 0, limit)
	for i := len(r.runs) - 1; i >= len(r.runs)-limit; i-- {
		out = append(out, r.runs[i])
	}
	return out, nil
}

// Len reports how many runs have been recorded.
func (r *InMemoryRecorder) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.runs)
}

var _ ports.RunRecorder = (*InMemoryRecorder)(nil)
