package app

import (
	"context"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/IoTIVP/data-veil/domain/core"
	"github.com/IoTIVP/data-veil/domain/sensor"
	"github.com/IoTIVP/data-veil/domain/veil"
	"github.com/IoTIVP/data-veil/internal"
	"github.com/IoTIVP/data-veil/models"
	"github.com/IoTIVP/data-veil/ports"
)

// VeilService orchestrates veiling: it resolves strength from profiles, runs
// the registered veil on the shared generator, and records an audit row per
// run.
type VeilService struct {
	registry       ports.VeilRegistry
	profiles       ports.StrengthResolver
	source         ports.RandomSource
	recorder       ports.RunRecorder
	logger         *internal.Logger
	defaultProfile string
}

// VeilRequest defines inputs for one veil run
type VeilRequest struct {
	Sensor   string
	Channels sensor.Channels
	Strength *float64 // explicit strength wins over Profile
	Profile  string
	Seed     *int64 // fixed seed veils on a derived stream instead of the shared generator
}

// VeilResult contains the corrupted channels with the audit row
type VeilResult struct {
	Channels  sensor.Channels
	Run       models.VeilRun
	RuntimeMs int64
}

// FusionRequest defines inputs for one cross-sensor fusion run
type FusionRequest struct {
	Streams  map[string][]float64
	Strength *float64
	Profile  string
	Seed     *int64
}

// FusionResult contains the jointly corrupted streams with the audit row
type FusionResult struct {
	Streams   map[string][]float64
	Run       models.VeilRun
	RuntimeMs int64
}

// NewVeilService creates a veil service
func NewVeilService(registry ports.VeilRegistry, profiles ports.StrengthResolver, source ports.RandomSource, recorder ports.RunRecorder, logger *internal.Logger, defaultProfile string) *VeilService {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	if recorder == nil {
		recorder = NopRecorder{}
	}
	if defaultProfile == "" {
		defaultProfile = "privacy"
	}
	return &VeilService{
		registry:       registry,
		profiles:       profiles,
		source:         source,
		recorder:       recorder,
		logger:         logger,
		defaultProfile: defaultProfile,
	}
}

// Veil corrupts one sensor log and records the run.
func (s *VeilService) Veil(ctx context.Context, req VeilRequest) (*VeilResult, error) {
	startTime := time.Now()

	name := strings.ToLower(strings.TrimSpace(req.Sensor))
	fn, ok := s.registry.Lookup(name)
	if !ok {
		return nil, core.NewUnknownSensorError(name, s.registry.Names())
	}

	strength, profile, err := s.resolveStrength(req.Strength, req.Profile, name)
	if err != nil {
		return nil, err
	}

	veiled, err := s.runVeil(name, req.Seed, func(rng *rand.Rand) (sensor.Channels, error) {
		return fn(rng, req.Channels, strength)
	})
	if err != nil {
		return nil, err
	}

	run := models.NewVeilRun(name, profile, strength, sampleCount(req.Channels), channelResidual(req.Channels, veiled))
	run.Seed = req.Seed
	s.record(ctx, run)

	runtimeMs := time.Since(startTime).Milliseconds()
	s.logger.Info("veiled %s: strength=%.3f profile=%q samples=%d residual=%.4f in %dms",
		name, strength, profile, run.Samples, run.Residual, runtimeMs)

	return &VeilResult{Channels: veiled, Run: run, RuntimeMs: runtimeMs}, nil
}

// FuseStreams corrupts aligned streams jointly and records the run.
func (s *VeilService) FuseStreams(ctx context.Context, req FusionRequest) (*FusionResult, error) {
	startTime := time.Now()

	strength, profile, err := s.resolveStrength(req.Strength, req.Profile, "fusion")
	if err != nil {
		return nil, err
	}

	var veiled map[string][]float64
	if req.Seed != nil {
		veiled, err = veil.Fusion(s.source.Stream("fusion", *req.Seed), req.Streams, strength)
	} else {
		err = s.source.Atomic(func(rng *rand.Rand) error {
			var inner error
			veiled, inner = veil.Fusion(rng, req.Streams, strength)
			return inner
		})
	}
	if err != nil {
		return nil, err
	}

	run := models.NewVeilRun("fusion", profile, strength, fusionSampleCount(veiled), streamResidual(req.Streams, veiled))
	run.Seed = req.Seed
	s.record(ctx, run)

	runtimeMs := time.Since(startTime).Milliseconds()
	s.logger.Info("fused %d streams: strength=%.3f profile=%q samples=%d residual=%.4f in %dms",
		len(veiled), strength, profile, run.Samples, run.Residual, runtimeMs)

	return &FusionResult{Streams: veiled, Run: run, RuntimeMs: runtimeMs}, nil
}

// RecentRuns returns the latest audit rows, newest first.
func (s *VeilService) RecentRuns(ctx context.Context, limit int) ([]models.VeilRun, error) {
	return s.recorder.Recent(ctx, limit)
}

// Sensors returns the registered sensor names.
func (s *VeilService) Sensors() []string {
	return s.registry.Names()
}

// Profiles returns the known profile names.
func (s *VeilService) Profiles() []string {
	return s.profiles.Profiles()
}

// ProfileStrength resolves one profile for one sensor.
func (s *VeilService) ProfileStrength(profile, sensorName string) (float64, error) {
	return s.profiles.Strength(profile, sensorName)
}

// resolveStrength applies the precedence: explicit strength, then the
// requested profile, then the service default profile.
func (s *VeilService) resolveStrength(explicit *float64, profile, sensorName string) (float64, string, error) {
	if explicit != nil {
		if *explicit < 0 {
			return 0, "", core.NewStrengthError(*explicit)
		}
		return *explicit, "", nil
	}
	if profile == "" {
		profile = s.defaultProfile
	}
	strength, err := s.profiles.Strength(profile, sensorName)
	if err != nil {
		return 0, "", err
	}
	return strength, profile, nil
}

// runVeil executes fn on a derived stream when the seed is fixed, otherwise
// atomically on the shared generator so the draw sequence stays contiguous.
func (s *VeilService) runVeil(name string, seed *int64, fn func(*rand.Rand) (sensor.Channels, error)) (sensor.Channels, error) {
	if seed != nil {
		return fn(s.source.Stream(name, *seed))
	}
	var out sensor.Channels
	err := s.source.Atomic(func(rng *rand.Rand) error {
		var inner error
		out, inner = fn(rng)
		return inner
	})
	return out, err
}

// record persists the audit row. Audit failures never fail the veil; the
// corrupted data is the product, so they only warn.
func (s *VeilService) record(ctx context.Context, run models.VeilRun) {
	if err := s.recorder.Record(ctx, run); err != nil {
		s.logger.Warn("failed to record veil run %s: %v", run.ID, err)
	}
}

func sampleCount(ch sensor.Channels) int {
	n := 0
	for _, series := range ch {
		if len(series) > n {
			n = len(series)
		}
	}
	return n
}

func fusionSampleCount(streams map[string][]float64) int {
	for _, series := range streams {
		return len(series)
	}
	return 0
}

// channelResidual is the mean absolute difference pooled over every
// non-time channel both sides share.
func channelResidual(in, out sensor.Channels) float64 {
	sum, count := 0.0, 0
	for name, before := range in {
		if name == sensor.ChanTime {
			continue
		}
		after, ok := out[name]
		if !ok {
			continue
		}
		n := min(len(before), len(after))
		for i := 0; i < n; i++ {
			sum += math.Abs(after[i] - before[i])
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}

func streamResidual(in, out map[string][]float64) float64 {
	sum, count := 0.0, 0
	for name, before := range in {
		after, ok := out[name]
		if !ok {
			continue
		}
		n := min(len(before), len(after))
		for i := 0; i < n; i++ {
			sum += math.Abs(after[i] - before[i])
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}
