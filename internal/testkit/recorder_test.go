package testkit

import (
	"context"
	"testing"

	"github.com/IoTIVP/data-veil/models"
)

func TestInMemoryRecorder_RecentNewestFirst(t *testing.T) {
	recorder := NewInMemoryRecorder()
	ctx := context.Background()

	for _, name := range []string{"barometer", "rf", "imu"} {
		run := models.NewVeilRun(name, "privacy", 1.0, 500, 0.25)
		if err := recorder.Record(ctx, run); err != nil {
			t.Fatalf("Record failed: %v", err)
		}
	}

	recent, err := recorder.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("Got %d runs, want 2", len(recent))
	}
	if recent[0].Sensor != "imu" || recent[1].Sensor != "rf" {
		t.Fatalf("Runs out of order: %s, %s", recent[0].Sensor, recent[1].Sensor)
	}

	if recorder.Len() != 3 {
		t.Fatalf("Len = %d, want 3", recorder.Len())
	}
}

func TestInMemoryRecorder_DefaultLimit(t *testing.T) {
	recorder := NewInMemoryRecorder()
	ctx := context.Background()

	run := models.NewVeilRun("ultrasonic", "", 0.8, 100, 0.1)
	if err := recorder.Record(ctx, run); err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	recent, err := recorder.Recent(ctx, 0)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(recent) != 1 {
		t.Fatalf("Got %d runs, want 1", len(recent))
	}
	if recent[0].ID != run.ID {
		t.Fatal("Recorded run not returned")
	}
}
