package sensor

import (
	"strings"
	"testing"

	"github.com/IoTIVP/data-veil/domain/core"
)

func TestBarometerFromChannels_MissingKeys(t *testing.T) {
	tests := []struct {
		name    string
		ch      Channels
		mention []string
	}{
		{
			name:    "missing pressure",
			ch:      Channels{"t": {0, 1, 2}},
			mention: []string{"pressure"},
		},
		{
			name:    "missing everything",
			ch:      Channels{},
			mention: []string{"t", "pressure"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BarometerFromChannels(tt.ch)
			if err == nil {
				t.Fatal("expected schema error, got nil")
			}
			if !core.IsSchemaError(err) {
				t.Fatalf("expected schema error, got %v", err)
			}
			for _, key := range tt.mention {
				if !strings.Contains(err.Error(), key) {
					t.Errorf("error %q does not name missing key %q", err, key)
				}
			}
		})
	}
}

func TestIMUFromChannels_NamesAllMissingKeys(t *testing.T) {
	ch := Channels{
		"t":  {0, 1},
		"gx": {0, 0},
		"gy": {0, 0},
		"gz": {0, 0},
		"ax": {0, 0},
	}
	_, err := IMUFromChannels(ch)
	if err == nil {
		t.Fatal("expected schema error, got nil")
	}
	for _, key := range []string{"ay", "az"} {
		if !strings.Contains(err.Error(), key) {
			t.Errorf("error %q does not name missing key %q", err, key)
		}
	}
	if strings.Contains(err.Error(), "gx") {
		t.Errorf("error %q names a key that is present", err)
	}
}

func TestFromChannels_LengthMismatch(t *testing.T) {
	_, err := RFFromChannels(Channels{
		"t":     {0, 1, 2},
		"power": {-40, -41},
	})
	if err == nil {
		t.Fatal("expected schema error, got nil")
	}
	if !core.IsSchemaError(err) {
		t.Fatalf("expected schema error, got %v", err)
	}
	if !strings.Contains(err.Error(), "power") {
		t.Errorf("error %q does not name the offending channel", err)
	}
}

func TestFromChannels_EmptySampleIsValid(t *testing.T) {
	s, err := UltrasonicFromChannels(Channels{"t": {}, "range": {}})
	if err != nil {
		t.Fatalf("empty sample should be valid, got %v", err)
	}
	if s.Len() != 0 {
		t.Fatalf("expected length 0, got %d", s.Len())
	}
	if s.T == nil || s.Range == nil {
		t.Fatal("empty channels should stay non-nil")
	}
}

func TestFromChannels_CopiesInput(t *testing.T) {
	ch := Channels{"t": {0, 1, 2}, "pressure": {1000, 1001, 1002}}
	s, err := BarometerFromChannels(ch)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ch["pressure"][0] = -1
	if s.Pressure[0] != 1000 {
		t.Fatal("sample aliases the input series")
	}

	out := s.Channels()
	out["pressure"][1] = -1
	if s.Pressure[1] != 1001 {
		t.Fatal("Channels() aliases the sample storage")
	}
}

func TestClone_Independent(t *testing.T) {
	s := Magnetometer{
		T:  []float64{0, 1},
		MX: []float64{1, 2},
		MY: []float64{3, 4},
		MZ: []float64{5, 6},
	}
	c := s.Clone()
	c.MX[0] = 99
	if s.MX[0] != 1 {
		t.Fatal("clone aliases the original")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		sample  IMU
		wantErr bool
	}{
		{
			name: "valid",
			sample: IMU{
				T:  []float64{0, 1},
				GX: []float64{0, 0}, GY: []float64{0, 0}, GZ: []float64{0, 0},
				AX: []float64{0, 0}, AY: []float64{0, 0}, AZ: []float64{0, 0},
			},
		},
		{
			name: "valid empty",
			sample: IMU{
				T:  []float64{},
				GX: []float64{}, GY: []float64{}, GZ: []float64{},
				AX: []float64{}, AY: []float64{}, AZ: []float64{},
			},
		},
		{
			name: "nil axis is missing",
			sample: IMU{
				T:  []float64{0, 1},
				GX: []float64{0, 0}, GY: []float64{0, 0}, GZ: []float64{0, 0},
				AX: []float64{0, 0}, AY: []float64{0, 0},
			},
			wantErr: true,
		},
		{
			name: "length mismatch",
			sample: IMU{
				T:  []float64{0, 1},
				GX: []float64{0}, GY: []float64{0, 0}, GZ: []float64{0, 0},
				AX: []float64{0, 0}, AY: []float64{0, 0}, AZ: []float64{0, 0},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.sample.Validate()
			if tt.wantErr && err == nil {
				t.Fatal("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.wantErr && !core.IsSchemaError(err) {
				t.Fatalf("expected schema error, got %v", err)
			}
		})
	}
}

func TestKindRequired(t *testing.T) {
	for _, k := range Kinds() {
		req := k.Required()
		if len(req) == 0 {
			t.Fatalf("kind %s has no required channels", k)
		}
		if req[0] != ChanTime {
			t.Fatalf("kind %s should list %q first, got %q", k, ChanTime, req[0])
		}
	}
	if Kind("thermal").Valid() {
		t.Fatal("unregistered kind should not be valid")
	}

	// Required returns a copy; mutating it must not corrupt the schema table.
	req := KindBarometer.Required()
	req[0] = "corrupted"
	if KindBarometer.Required()[0] != ChanTime {
		t.Fatal("Required exposes internal schema storage")
	}
}
