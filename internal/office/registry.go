package office

import (
	"fmt"
	"sort"
	"sync"
)

// Registry catalogues the devices of an installation by ID.
//
// All public methods are thread-safe.
type Registry struct {
	units  map[string]Unit
	mu     sync.RWMutex
	logger Logger
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		units:  make(map[string]Unit),
		logger: noopLogger{},
	}
}

// SetLogger sets the logger for the registry.
func (r *Registry) SetLogger(logger Logger) {
	r.logger = logger
}

// Add registers a device. Returns ErrInvalidDevice for a nil device or empty
// ID and ErrDeviceExists if the ID is taken.
func (r *Registry) Add(u Unit) error {
	if u == nil || u.ID() == "" {
		return ErrInvalidDevice
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.units[u.ID()]; ok {
		return fmt.Errorf("%w: %s", ErrDeviceExists, u.ID())
	}
	r.units[u.ID()] = u

	r.logger.Info("device registered", "id", u.ID(), "name", u.Name(), "kind", string(u.Kind()))
	return nil
}

// Remove unregisters a device. Returns ErrDeviceNotFound if the ID is unknown.
func (r *Registry) Remove(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.units[id]; !ok {
		return fmt.Errorf("%w: %s", ErrDeviceNotFound, id)
	}
	delete(r.units, id)

	r.logger.Info("device removed", "id", id)
	return nil
}

// Get returns the device with the given ID.
func (r *Registry) Get(id string) (Unit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.units[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrDeviceNotFound, id)
	}
	return u, nil
}

// Copier returns the copier with the given ID. Returns ErrWrongKind if the
// device exists but is not a copier.
func (r *Registry) Copier(id string) (*Copier, error) {
	u, err := r.Get(id)
	if err != nil {
		return nil, err
	}
	c, ok := u.(*Copier)
	if !ok {
		return nil, fmt.Errorf("%w: %s is a %s", ErrWrongKind, id, u.Kind())
	}
	return c, nil
}

// List returns all devices ordered by ID.
func (r *Registry) List() []Unit {
	r.mu.RLock()
	defer r.mu.RUnlock()

	units := make([]Unit, 0, len(r.units))
	for _, u := range r.units {
		units = append(units, u)
	}
	sort.Slice(units, func(i, j int) bool {
		return units[i].ID() < units[j].ID()
	})
	return units
}

// ListByKind returns the devices of one kind ordered by ID.
func (r *Registry) ListByKind(kind Kind) []Unit {
	var units []Unit
	for _, u := range r.List() {
		if u.Kind() == kind {
			units = append(units, u)
		}
	}
	return units
}

// Count returns the number of registered devices.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.units)
}

// Stats summarises usage across the registry.
type Stats struct {
	TotalDevices int
	ByKind       map[Kind]int
	ByState      map[PowerState]int
	PowerCycles  int
	Prints       int
	Scans        int
}

// GetStats returns current registry statistics.
func (r *Registry) GetStats() Stats {
	stats := Stats{
		ByKind:  make(map[Kind]int),
		ByState: make(map[PowerState]int),
	}

	for _, u := range r.List() {
		stats.TotalDevices++
		stats.ByKind[u.Kind()]++
		stats.ByState[u.State()]++
		stats.PowerCycles += u.Counter()

		if p, ok := u.(interface{ PrintCounter() int }); ok {
			stats.Prints += p.PrintCounter()
		}
		if s, ok := u.(interface{ ScanCounter() int }); ok {
			stats.Scans += s.ScanCounter()
		}
	}

	return stats
}
