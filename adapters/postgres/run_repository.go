package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // postgres driver

	"github.com/IoTIVP/data-veil/models"
	"github.com/IoTIVP/data-veil/ports"
)

// RunRepositoryImpl implements RunRecorder for PostgreSQL
type RunRepositoryImpl struct {
	db *sqlx.DB
}

// NewRunRepository creates a new PostgreSQL run recorder
func NewRunRepository(db *sqlx.DB) ports.RunRecorder {
	return &RunRepositoryImpl{db: db}
}

// Connect opens a PostgreSQL pool and verifies connectivity.
func Connect(databaseURL string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}
	return db, nil
}

// EnsureSchema creates the audit table when it does not exist yet.
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS veil_runs (
			id UUID PRIMARY KEY,
			sensor TEXT NOT NULL,
			profile TEXT NOT NULL DEFAULT '',
			strength DOUBLE PRECISION NOT NULL,
			seed BIGINT,
			samples INTEGER NOT NULL,
			residual DOUBLE PRECISION NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`)
	if err != nil {
		return fmt.Errorf("failed to create veil_runs table: %w", err)
	}
	return nil
}

// Record stores one completed veil run.
func (r *RunRepositoryImpl) Record(ctx context.Context, run models.VeilRun) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO veil_runs (id, sensor, profile, strength, seed, samples, residual, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, run.ID, run.Sensor, run.Profile, run.Strength, run.Seed, run.Samples, run.Residual, run.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to record veil run: %w", err)
	}
	return nil
}

// Recent returns the newest runs, most recent first.
func (r *RunRepositoryImpl) Recent(ctx context.Context, limit int) ([]models.VeilRun, error) {
	if limit <= 0 {
		limit = 50
	}
	runs := []models.VeilRun{}
	err := r.db.SelectContext(ctx, &runs, `
		SELECT id, sensor, profile, strength, seed, samples, residual, created_at
		FROM veil_runs
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list veil runs: %w", err)
	}
	return runs, nil
}
