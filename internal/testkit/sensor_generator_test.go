package testkit

import (
	"math"
	"testing"

	"github.com/IoTIVP/data-veil/domain/core"
	"github.com/IoTIVP/data-veil/domain/sensor"
)

func TestSensorDataGenerator_AllKindsComplete(t *testing.T) {
	config := SensorGeneratorConfig{
		Samples: 120, // Small for testing
		Rate:    10.0,
		Seed:    42,
	}

	generator := NewSensorDataGenerator(config)
	logs, err := generator.GenerateAll()
	if err != nil {
		t.Fatalf("Failed to generate logs: %v", err)
	}

	if len(logs) != len(sensor.Kinds()) {
		t.Fatalf("Generated %d kinds, want %d", len(logs), len(sensor.Kinds()))
	}

	for kind, ch := range logs {
		required := kind.Required()
		if len(ch) != len(required) {
			t.Errorf("%s: got %d channels, want %d", kind, len(ch), len(required))
		}
		for _, name := range required {
			series, ok := ch[name]
			if !ok {
				t.Errorf("%s: missing channel %q", kind, name)
				continue
			}
			if len(series) != config.Samples {
				t.Errorf("%s: channel %q has %d samples, want %d", kind, name, len(series), config.Samples)
			}
		}
	}
}

func TestSensorDataGenerator_Deterministic(t *testing.T) {
	config := DefaultSensorConfig()
	config.Samples = 200

	a, err := NewSensorDataGenerator(config).Generate(sensor.KindBarometer)
	if err != nil {
		t.Fatalf("Failed to generate log: %v", err)
	}
	b, err := NewSensorDataGenerator(config).Generate(sensor.KindBarometer)
	if err != nil {
		t.Fatalf("Failed to generate log: %v", err)
	}

	for i := range a[sensor.ChanPressure] {
		if a[sensor.ChanPressure][i] != b[sensor.ChanPressure][i] {
			t.Fatalf("Sample %d differs between identically seeded generators", i)
		}
	}
}

func TestSensorDataGenerator_PlausibleLevels(t *testing.T) {
	config := DefaultSensorConfig()
	generator := NewSensorDataGenerator(config)

	baro, err := generator.Generate(sensor.KindBarometer)
	if err != nil {
		t.Fatalf("Failed to generate barometer log: %v", err)
	}
	if m := mean(baro[sensor.ChanPressure]); math.Abs(m-1013.25) > 5.0 {
		t.Errorf("Barometer mean %f is not near station pressure", m)
	}

	sonic, err := generator.Generate(sensor.KindUltrasonic)
	if err != nil {
		t.Fatalf("Failed to generate ultrasonic log: %v", err)
	}
	for i, r := range sonic[sensor.ChanRange] {
		if r < 0.04 {
			t.Errorf("Range sample %d = %f is below the transducer floor", i, r)
		}
	}

	imu, err := generator.Generate(sensor.KindIMU)
	if err != nil {
		t.Fatalf("Failed to generate IMU log: %v", err)
	}
	if m := mean(imu[sensor.ChanAccelZ]); math.Abs(m-9.81) > 0.5 {
		t.Errorf("Vertical accel mean %f is not near gravity", m)
	}
}

func TestSensorDataGenerator_UnknownKind(t *testing.T) {
	generator := NewSensorDataGenerator(DefaultSensorConfig())

	_, err := generator.Generate(sensor.Kind("thermal"))
	if err == nil {
		t.Fatal("Expected error for unknown kind")
	}
	if !core.IsNotFoundError(err) {
		t.Fatalf("Expected not-found error, got: %v", err)
	}
}

func mean(x []float64) float64 {
	sum := 0.0
	for _, v := range x {
		sum += v
	}
	return sum / float64(len(x))
}
