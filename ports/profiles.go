package ports

// StrengthResolver maps a named veil profile and a sensor name to a numeric
// strength multiplier. External configuration takes precedence over built-in
// defaults; an unknown profile is a not-found error naming the valid set.
type StrengthResolver interface {
	// Strength resolves the multiplier for one profile/sensor pair.
	Strength(profile, sensor string) (float64, error)

	// Profiles returns the sorted union of built-in and configured names.
	Profiles() []string
}
