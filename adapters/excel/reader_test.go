package excel

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/IoTIVP/data-veil/domain/sensor"
)

func testLog() sensor.Channels {
	n := 40
	t := make([]float64, n)
	p := make([]float64, n)
	for i := 0; i < n; i++ {
		t[i] = float64(i) * 0.1
		p[i] = 1013.25 + 3.0*math.Sin(float64(i)/7.0)
	}
	return sensor.Channels{"t": t, "pressure": p}
}

func assertSameChannels(t *testing.T, got, want sensor.Channels) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d channels, want %d", len(got), len(want))
	}
	for name, w := range want {
		g, ok := got[name]
		if !ok {
			t.Fatalf("channel %q missing after round trip", name)
		}
		if len(g) != len(w) {
			t.Fatalf("channel %q has %d samples, want %d", name, len(g), len(w))
		}
		for i := range w {
			if math.Abs(g[i]-w[i]) > 1e-9 {
				t.Fatalf("channel %q sample %d = %v, want %v", name, i, g[i], w[i])
			}
		}
	}
}

func TestCSVRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.csv")
	want := testLog()

	if err := NewWriter().Write(path, want); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	got, err := NewReader().Read(path)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	assertSameChannels(t, got, want)
}

func TestXLSXRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.xlsx")
	want := testLog()

	if err := NewWriter().Write(path, want); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	got, err := NewReader().Read(path)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	assertSameChannels(t, got, want)
}

func TestWriteOrdersTimeColumnFirst(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.csv")
	ch := sensor.Channels{
		"power": {1, 2},
		"t":     {0, 0.1},
		"agc":   {5, 5},
	}
	if err := NewWriter().Write(path, ch); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("readback failed: %v", err)
	}
	header := strings.SplitN(string(raw), "\n", 2)[0]
	if strings.TrimSpace(header) != "t,agc,power" {
		t.Fatalf("header = %q, want t,agc,power", header)
	}
}

func TestReadHeaderOnlyYieldsEmptyChannels(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	if err := os.WriteFile(path, []byte("t,range\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	ch, err := NewReader().Read(path)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if len(ch) != 2 {
		t.Fatalf("got %d channels, want 2", len(ch))
	}
	for name, series := range ch {
		if series == nil || len(series) != 0 {
			t.Fatalf("channel %q = %v, want empty", name, series)
		}
	}
}

func TestReadRejectsBlankCell(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blank.csv")
	if err := os.WriteFile(path, []byte("t,power\n0.0,\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := NewReader().Read(path); err == nil {
		t.Fatal("expected error for blank cell")
	} else if !strings.Contains(err.Error(), "power") {
		t.Fatalf("error should name the channel, got: %v", err)
	}
}

func TestReadRejectsRaggedRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ragged.csv")
	if err := os.WriteFile(path, []byte("t,power\n0.0,1.0\n0.1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := NewReader().Read(path); err == nil {
		t.Fatal("expected error for ragged row")
	}
}

func TestReadRejectsDuplicateHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dup.csv")
	if err := os.WriteFile(path, []byte("t,t\n0.0,0.1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := NewReader().Read(path); err == nil {
		t.Fatal("expected error for duplicate channel name")
	}
}

func TestReadMissingFile(t *testing.T) {
	_, err := NewReader().Read(filepath.Join(t.TempDir(), "nope.xlsx"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !strings.Contains(err.Error(), "not found") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestWriteRejectsLengthMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.csv")
	ch := sensor.Channels{"t": {0, 0.1}, "range": {4.2}}

	if err := NewWriter().Write(path, ch); err == nil {
		t.Fatal("expected error for uneven channels")
	}
}
