package profiles

import (
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/IoTIVP/data-veil/domain/core"
	"github.com/IoTIVP/data-veil/internal"
	"github.com/IoTIVP/data-veil/ports"
)

// Built-in base profile multipliers.
var baseProfiles = map[string]float64{
	"light":   0.5,
	"privacy": 1.0,
	"ghost":   1.5,
	"chaos":   2.0,
}

// Per-sensor tweak multipliers on top of the built-in base. LiDAR and RF
// tolerate stronger distortion; ultrasonic is more sensitive.
var sensorTweaks = map[string]map[string]float64{
	"lidar":      {"ghost": 1.2, "chaos": 1.3},
	"rf":         {"ghost": 1.1, "chaos": 1.3},
	"ultrasonic": {"chaos": 0.9},
}

// profileFile mirrors the profiles.yaml layout:
//
//	profiles:
//	  privacy:
//	    base: 1.0
//	    sensors:
//	      default: 1.0
//	      rf: 1.1
type profileFile struct {
	Profiles map[string]profileConfig `yaml:"profiles"`
}

type profileConfig struct {
	Base    *float64           `yaml:"base"`
	Sensors map[string]float64 `yaml:"sensors"`
}

// Resolver implements ports.StrengthResolver over built-in defaults with
// optional YAML overrides. A configured profile takes full precedence over
// the built-in of the same name.
type Resolver struct {
	logger   *internal.Logger
	external map[string]profileConfig
}

// NewResolver loads overrides from path when the file exists. A missing or
// unparsable file falls back to built-ins without surfacing an error; the
// fallback is logged at WARN and nothing else.
func NewResolver(path string, logger *internal.Logger) ports.StrengthResolver {
	r := &Resolver{logger: logger, external: map[string]profileConfig{}}

	if path == "" {
		return r
	}
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Warn("profiles: cannot read %s, using built-ins: %v", path, err)
		return r
	}

	var file profileFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		logger.Warn("profiles: cannot parse %s, using built-ins: %v", path, err)
		return r
	}
	if file.Profiles != nil {
		r.external = file.Profiles
		logger.Info("profiles: loaded %d override(s) from %s", len(file.Profiles), path)
	}
	return r
}

// Strength resolves the multiplier for one profile/sensor pair. Profile and
// sensor names are case-insensitive.
func (r *Resolver) Strength(profile, sensor string) (float64, error) {
	p := strings.ToLower(strings.TrimSpace(profile))
	s := strings.ToLower(strings.TrimSpace(sensor))

	if cfg, ok := r.external[p]; ok {
		base := 1.0
		if builtin, ok := baseProfiles[p]; ok {
			base = builtin
		}
		if cfg.Base != nil {
			base = *cfg.Base
		}
		factor := 1.0
		if f, ok := cfg.Sensors[s]; ok {
			factor = f
		} else if f, ok := cfg.Sensors["default"]; ok {
			factor = f
		}
		return base * factor, nil
	}

	base, ok := baseProfiles[p]
	if !ok {
		return 0, core.NewUnknownProfileError(profile, r.Profiles())
	}
	factor := 1.0
	if tweaks, ok := sensorTweaks[s]; ok {
		if f, ok := tweaks[p]; ok {
			factor = f
		}
	}
	return base * factor, nil
}

// Profiles returns the sorted union of built-in and configured names.
func (r *Resolver) Profiles() []string {
	seen := make(map[string]bool, len(baseProfiles)+len(r.external))
	for name := range baseProfiles {
		seen[name] = true
	}
	for name := range r.external {
		seen[name] = true
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
