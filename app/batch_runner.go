package app

import (
	"context"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/IoTIVP/data-veil/domain/core"
	"github.com/IoTIVP/data-veil/domain/sensor"
	"github.com/IoTIVP/data-veil/models"
)

// BatchRequest veils several sensor logs in one call. Streams map sensor
// names to their channels; every entry draws from its own derived stream,
// so results are deterministic per name for a fixed seed regardless of
// scheduling order.
type BatchRequest struct {
	Streams  map[string]sensor.Channels
	Strength *float64
	Profile  string
	Seed     int64
	Parallel int // max concurrent workers, defaults to 4
}

// BatchResult contains the corrupted logs and one audit row per entry
type BatchResult struct {
	Veiled    map[string]sensor.Channels
	Runs      []models.VeilRun
	RuntimeMs int64
}

// VeilBatch corrupts every entry concurrently. The first failing entry
// cancels the batch.
func (s *VeilService) VeilBatch(ctx context.Context, req BatchRequest) (*BatchResult, error) {
	startTime := time.Now()

	if len(req.Streams) == 0 {
		return nil, core.ErrEmptyStreamSet
	}

	names := make([]string, 0, len(req.Streams))
	for name := range req.Streams {
		names = append(names, name)
	}
	sort.Strings(names)

	parallel := req.Parallel
	if parallel <= 0 {
		parallel = 4
	}

	veiled := make([]sensor.Channels, len(names))
	runs := make([]models.VeilRun, len(names))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(parallel)

	for i, name := range names {
		group.Go(func() error {
			fn, ok := s.registry.Lookup(name)
			if !ok {
				return core.NewUnknownSensorError(name, s.registry.Names())
			}
			strength, profile, err := s.resolveStrength(req.Strength, req.Profile, name)
			if err != nil {
				return err
			}

			in := req.Streams[name]
			out, err := fn(s.source.Stream(name, req.Seed), in, strength)
			if err != nil {
				return err
			}

			seed := req.Seed
			run := models.NewVeilRun(name, profile, strength, sampleCount(in), channelResidual(in, out))
			run.Seed = &seed
			s.record(groupCtx, run)

			veiled[i] = out
			runs[i] = run
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	result := &BatchResult{
		Veiled:    make(map[string]sensor.Channels, len(names)),
		Runs:      runs,
		RuntimeMs: time.Since(startTime).Milliseconds(),
	}
	for i, name := range names {
		result.Veiled[name] = veiled[i]
	}

	s.logger.Info("veiled batch of %d sensors with seed %d in %dms", len(names), req.Seed, result.RuntimeMs)
	return result, nil
}
