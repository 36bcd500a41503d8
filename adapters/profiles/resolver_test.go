package profiles

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IoTIVP/data-veil/domain/core"
	"github.com/IoTIVP/data-veil/internal"
)

func quietLogger() *internal.Logger {
	return internal.NewLogger(internal.LogLevelError)
}

func TestResolver_BuiltinStrengths(t *testing.T) {
	r := NewResolver("", quietLogger())

	tests := []struct {
		profile string
		sensor  string
		want    float64
	}{
		{"light", "barometer", 0.5},
		{"privacy", "rf", 1.0},
		{"ghost", "rf", 1.5 * 1.1},
		{"ghost", "lidar", 1.5 * 1.2},
		{"chaos", "ultrasonic", 2.0 * 0.9},
		{"chaos", "magnetometer", 2.0},
		{" GHOST ", "RF", 1.5 * 1.1},
	}

	for _, tt := range tests {
		got, err := r.Strength(tt.profile, tt.sensor)
		require.NoError(t, err, "profile %q sensor %q", tt.profile, tt.sensor)
		assert.InDelta(t, tt.want, got, 1e-12, "profile %q sensor %q", tt.profile, tt.sensor)
	}
}

func TestResolver_UnknownProfile(t *testing.T) {
	r := NewResolver("", quietLogger())

	_, err := r.Strength("stealth", "rf")
	require.Error(t, err)
	assert.True(t, core.IsNotFoundError(err))
	assert.Contains(t, err.Error(), "stealth")
	assert.Contains(t, err.Error(), "privacy") // valid names listed
}

func TestResolver_YAMLOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profiles.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
profiles:
  privacy:
    base: 1.4
    sensors:
      default: 1.0
      rf: 2.0
  paranoid:
    base: 3.0
`), 0o644))

	r := NewResolver(path, quietLogger())

	// Configured profile fully replaces the built-in of the same name,
	// including its sensor tweaks.
	got, err := r.Strength("privacy", "rf")
	require.NoError(t, err)
	assert.InDelta(t, 1.4*2.0, got, 1e-12)

	got, err = r.Strength("privacy", "barometer")
	require.NoError(t, err)
	assert.InDelta(t, 1.4, got, 1e-12)

	// New profile defined only in YAML, no sensors table.
	got, err = r.Strength("paranoid", "rf")
	require.NoError(t, err)
	assert.InDelta(t, 3.0, got, 1e-12)

	// Built-ins not mentioned in the file still resolve.
	got, err = r.Strength("chaos", "ultrasonic")
	require.NoError(t, err)
	assert.InDelta(t, 1.8, got, 1e-12)

	assert.Equal(t, []string{"chaos", "ghost", "light", "paranoid", "privacy"}, r.Profiles())
}

func TestResolver_MissingFileFallsBack(t *testing.T) {
	r := NewResolver(filepath.Join(t.TempDir(), "nope.yaml"), quietLogger())

	got, err := r.Strength("privacy", "barometer")
	require.NoError(t, err)
	assert.Equal(t, 1.0, got)
}

func TestResolver_UnparsableFileFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profiles.yaml")
	require.NoError(t, os.WriteFile(path, []byte("profiles: [not: a: map"), 0o644))

	r := NewResolver(path, quietLogger())

	got, err := r.Strength("ghost", "rf")
	require.NoError(t, err)
	assert.InDelta(t, 1.5*1.1, got, 1e-12)
	assert.Equal(t, []string{"chaos", "ghost", "light", "privacy"}, r.Profiles())
}
