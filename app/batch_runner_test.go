package app

import (
	"context"
	"testing"

	"github.com/IoTIVP/data-veil/domain/core"
	"github.com/IoTIVP/data-veil/domain/sensor"
	"github.com/IoTIVP/data-veil/internal/testkit"
)

func batchStreams(t *testing.T) map[string]sensor.Channels {
	t.Helper()
	config := testkit.DefaultSensorConfig()
	config.Samples = 250
	logs, err := testkit.NewSensorDataGenerator(config).GenerateAll()
	if err != nil {
		t.Fatalf("failed to generate trusted logs: %v", err)
	}
	streams := make(map[string]sensor.Channels, len(logs))
	for kind, ch := range logs {
		streams[string(kind)] = ch
	}
	return streams
}

func TestVeilBatch_AllSensors(t *testing.T) {
	recorder := testkit.NewInMemoryRecorder()
	svc := newTestService(recorder)

	streams := batchStreams(t)
	res, err := svc.VeilBatch(context.Background(), BatchRequest{
		Streams: streams,
		Profile: "privacy",
		Seed:    7,
	})
	if err != nil {
		t.Fatalf("VeilBatch failed: %v", err)
	}

	if len(res.Veiled) != len(streams) {
		t.Fatalf("veiled %d entries, want %d", len(res.Veiled), len(streams))
	}
	for name, in := range streams {
		out, ok := res.Veiled[name]
		if !ok {
			t.Fatalf("entry %q missing from batch result", name)
		}
		if len(out) != len(in) {
			t.Fatalf("entry %q: got %d channels, want %d", name, len(out), len(in))
		}
	}

	if len(res.Runs) != len(streams) {
		t.Fatalf("got %d audit rows, want %d", len(res.Runs), len(streams))
	}
	if recorder.Len() != len(streams) {
		t.Fatalf("recorded %d runs, want %d", recorder.Len(), len(streams))
	}
	for i := 1; i < len(res.Runs); i++ {
		if res.Runs[i-1].Sensor > res.Runs[i].Sensor {
			t.Fatalf("runs not sorted by sensor: %s before %s", res.Runs[i-1].Sensor, res.Runs[i].Sensor)
		}
	}
}

func TestVeilBatch_DeterministicPerEntry(t *testing.T) {
	streams := batchStreams(t)
	req := BatchRequest{Streams: streams, Profile: "ghost", Seed: 1234, Parallel: 3}

	a, err := newTestService(testkit.NewInMemoryRecorder()).VeilBatch(context.Background(), req)
	if err != nil {
		t.Fatalf("first batch failed: %v", err)
	}
	b, err := newTestService(testkit.NewInMemoryRecorder()).VeilBatch(context.Background(), req)
	if err != nil {
		t.Fatalf("second batch failed: %v", err)
	}

	for name, chA := range a.Veiled {
		chB := b.Veiled[name]
		for channel, seriesA := range chA {
			seriesB := chB[channel]
			for i := range seriesA {
				if seriesA[i] != seriesB[i] {
					t.Fatalf("%s/%s sample %d differs between identically seeded batches", name, channel, i)
				}
			}
		}
	}
}

func TestVeilBatch_SingleEntryMatchesSeededVeil(t *testing.T) {
	streams := batchStreams(t)
	in := streams["barometer"]

	batch, err := newTestService(testkit.NewInMemoryRecorder()).VeilBatch(context.Background(), BatchRequest{
		Streams: map[string]sensor.Channels{"barometer": in},
		Seed:    55,
	})
	if err != nil {
		t.Fatalf("batch failed: %v", err)
	}

	single, err := newTestService(testkit.NewInMemoryRecorder()).Veil(context.Background(), VeilRequest{
		Sensor:   "barometer",
		Channels: in,
		Seed:     seedPtr(55),
	})
	if err != nil {
		t.Fatalf("seeded veil failed: %v", err)
	}

	batched := batch.Veiled["barometer"][sensor.ChanPressure]
	direct := single.Channels[sensor.ChanPressure]
	for i := range batched {
		if batched[i] != direct[i] {
			t.Fatalf("sample %d differs between batch and seeded single run", i)
		}
	}
}

func TestVeilBatch_EmptyRejected(t *testing.T) {
	svc := newTestService(testkit.NewInMemoryRecorder())

	_, err := svc.VeilBatch(context.Background(), BatchRequest{Streams: map[string]sensor.Channels{}})
	if !core.IsSchemaError(err) {
		t.Fatalf("expected schema error, got: %v", err)
	}
}

func TestVeilBatch_UnknownEntryFailsBatch(t *testing.T) {
	svc := newTestService(testkit.NewInMemoryRecorder())

	streams := batchStreams(t)
	streams["thermal"] = sensor.Channels{"t": {0, 1}, "temp": {20, 21}}

	_, err := svc.VeilBatch(context.Background(), BatchRequest{Streams: streams, Seed: 9})
	if !core.IsNotFoundError(err) {
		t.Fatalf("expected not-found error, got: %v", err)
	}
}
