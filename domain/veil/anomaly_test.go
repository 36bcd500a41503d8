package veil

import (
	"math"
	"math/rand"
	"testing"
)

func TestShapeEnvelopes(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	const n = 21

	tests := []struct {
		shape Shape
		check func(t *testing.T, env []float64)
	}{
		{Bump, func(t *testing.T, env []float64) {
			if env[0] != 0 || env[n-1] != 0 {
				t.Fatal("bump should be zero at window edges")
			}
			if math.Abs(env[n/2]-1) > 1e-12 {
				t.Fatalf("bump peak should be 1 at center, got %g", env[n/2])
			}
		}},
		{Dip, func(t *testing.T, env []float64) {
			for i, v := range env {
				if v > 0 {
					t.Fatalf("dip should never be positive, env[%d]=%g", i, v)
				}
			}
		}},
		{Tilted, func(t *testing.T, env []float64) {
			if env[0] != -1 || env[n-1] != 1 {
				t.Fatalf("tilted should run -1..1, got %g..%g", env[0], env[n-1])
			}
		}},
		{Ramp, func(t *testing.T, env []float64) {
			if env[0] != 0 || env[n-1] != 1 {
				t.Fatalf("ramp should run 0..1, got %g..%g", env[0], env[n-1])
			}
		}},
		{AsymBump, func(t *testing.T, env []float64) {
			for i, v := range env {
				if v < 0 {
					t.Fatalf("asym_bump should never be negative, env[%d]=%g", i, v)
				}
			}
			if env[0] != 0 {
				t.Fatalf("asym_bump should start at zero, got %g", env[0])
			}
			// The decay tail never returns to zero; that is the asymmetry.
			if env[n-1] <= 0 {
				t.Fatalf("asym_bump tail should stay above zero, got %g", env[n-1])
			}
		}},
		{Block, func(t *testing.T, env []float64) {
			if env[0] != 0 || env[n-1] != 0 {
				t.Fatal("block should have soft edges at zero")
			}
		}},
		{Notch, func(t *testing.T, env []float64) {
			if env[n/2] >= 0 {
				t.Fatalf("notch center should drop below zero, got %g", env[n/2])
			}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.shape.String(), func(t *testing.T) {
			env := tt.shape.Envelope(rng, n)
			if len(env) != n {
				t.Fatalf("expected %d samples, got %d", n, len(env))
			}
			tt.check(t, env)
		})
	}
}

func TestSpikeTrainEnvelope_Intermittent(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	env := SpikeTrain.Envelope(rng, 200)

	zeros, actives := 0, 0
	for _, v := range env {
		if v == 0 {
			zeros++
		} else {
			actives++
		}
	}
	// The gate passes with probability 0.4; both states must show up.
	if zeros < 50 || actives < 20 {
		t.Fatalf("spike train should be intermittent, zeros=%d actives=%d", zeros, actives)
	}
}

func TestRampBase_Degenerate(t *testing.T) {
	if got := rampBase(0); len(got) != 0 {
		t.Fatalf("rampBase(0) should be empty, got %v", got)
	}
	if got := rampBase(1); got[0] != 0 {
		t.Fatalf("rampBase(1) should be [0], got %v", got)
	}
	if got := rampBase(2); got[0] != 0 || got[1] != 1 {
		t.Fatalf("rampBase(2) should be [0 1], got %v", got)
	}
}

func TestDrawWindow_Bounds(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	const n = 500

	for i := 0; i < 1000; i++ {
		w, ok := drawWindow(rng, n, 15, 60)
		if !ok {
			continue
		}
		if w.Start < 5 {
			t.Fatalf("window start %d below minimum center", w.Start)
		}
		if w.End > n {
			t.Fatalf("window end %d beyond sequence", w.End)
		}
		if w.Len() < 1 {
			t.Fatalf("accepted window has non-positive length %d", w.Len())
		}
	}
}

func TestDrawWindow_ShortSequenceDegenerates(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	// With n=4 every center lands at or past the end; all windows are skipped.
	for i := 0; i < 100; i++ {
		if _, ok := drawWindow(rng, 4, 15, 60); ok {
			t.Fatal("window on a 4-sample series should degenerate")
		}
	}
}

func TestEventCount(t *testing.T) {
	rng := rand.New(rand.NewSource(9))

	for i := 0; i < 100; i++ {
		if c := eventCount(rng, 3, 0, 3); c < 1 {
			t.Fatalf("count must floor at 1, got %d", c)
		}
	}

	const trials = 200
	sumLow, sumHigh := 0, 0
	for i := 0; i < trials; i++ {
		sumLow += eventCount(rng, 3, 0.5, 3)
		sumHigh += eventCount(rng, 3, 2.0, 3)
	}
	if sumHigh <= sumLow {
		t.Fatalf("expected counts to grow with strength, low=%d high=%d", sumLow, sumHigh)
	}
}
