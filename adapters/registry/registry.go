package registry

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"sync"

	"github.com/IoTIVP/data-veil/domain/sensor"
	"github.com/IoTIVP/data-veil/domain/veil"
	"github.com/IoTIVP/data-veil/ports"
)

// Registry implements ports.VeilRegistry as a mutex-guarded in-memory table.
type Registry struct {
	mu    sync.RWMutex
	funcs map[string]ports.VeilFunc
}

// NewRegistry returns a registry with the built-in sensor veils registered.
// Plugins may overwrite a built-in or add new names.
func NewRegistry() ports.VeilRegistry {
	r := &Registry{funcs: map[string]ports.VeilFunc{}}
	for _, kind := range sensor.Kinds() {
		r.funcs[string(kind)] = func(rng *rand.Rand, ch sensor.Channels, strength float64) (sensor.Channels, error) {
			return veil.Apply(rng, kind, ch, strength)
		}
	}
	return r
}

// Register binds a veil function to a sensor name.
func (r *Registry) Register(name string, fn ports.VeilFunc) error {
	key := strings.TrimSpace(name)
	if key == "" {
		return fmt.Errorf("registry: sensor name must be non-empty")
	}
	if fn == nil {
		return fmt.Errorf("registry: veil function must be non-nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.funcs[key] = fn
	return nil
}

// Lookup returns the veil function registered under name.
func (r *Registry) Lookup(name string) (ports.VeilFunc, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.funcs[strings.TrimSpace(name)]
	return fn, ok
}

// Names returns the sorted registered sensor names.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.funcs))
	for name := range r.funcs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
