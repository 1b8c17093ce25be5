package service

import (
	"errors"
	"fmt"
	"log"
	"slices"
	"sync"
)

var (
	ErrDuplicate         = errors.New("service already registered")
	ErrMissingDependency = errors.New("dependency not registered")
	ErrCycle             = errors.New("dependency cycle")
)

// Hub owns the program's services and runs their lifecycle in dependency order
type Hub struct {
	mu       sync.RWMutex
	services map[string]Service
	order    []string // registration order; breaks ties between independent services
	resolved []string // dependency order, computed lazily
	running  []string // services whose Start succeeded
}

// NewHub creates an empty service hub
func NewHub() *Hub {
	return &Hub{services: make(map[string]Service)}
}

// Register adds svc; names are unique
func (h *Hub) Register(svc Service) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	name := svc.Name()
	if _, dup := h.services[name]; dup {
		return fmt.Errorf("%s: %w", name, ErrDuplicate)
	}
	h.services[name] = svc
	h.order = append(h.order, name)
	h.resolved = nil
	return nil
}

// Get looks a service up by name
func (h *Hub) Get(name string) (Service, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	svc, ok := h.services[name]
	return svc, ok
}

// MustGet returns the named service as T
// Panics when the service is missing or has another type; both are wiring bugs
func MustGet[T any](h *Hub, name string) T {
	svc, ok := h.Get(name)
	if !ok {
		panic(fmt.Sprintf("service %q not registered", name))
	}
	typed, ok := svc.(T)
	if !ok {
		panic(fmt.Sprintf("service %q is %T", name, svc))
	}
	return typed
}

// InitAll initializes every service after its dependencies
// A failure stops the already initialized services, newest first
func (h *Hub) InitAll() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.resolved == nil {
		order, err := h.resolve()
		if err != nil {
			return err
		}
		h.resolved = order
	}

	for i, name := range h.resolved {
		if err := h.services[name].Init(); err != nil {
			h.stopReverse(h.resolved[:i])
			return fmt.Errorf("init %s: %w", name, err)
		}
	}
	return nil
}

// StartAll starts services in dependency order, stopping the started ones on failure
func (h *Hub) StartAll() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.running = h.running[:0]
	for _, name := range h.resolved {
		if err := h.services[name].Start(); err != nil {
			h.stopReverse(h.running)
			h.running = nil
			return fmt.Errorf("start %s: %w", name, err)
		}
		h.running = append(h.running, name)
	}
	return nil
}

// StopAll stops running services in reverse dependency order; Stop errors are logged
func (h *Hub) StopAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.stopReverse(h.running)
	h.running = nil
}

func (h *Hub) stopReverse(names []string) {
	for i := len(names) - 1; i >= 0; i-- {
		if err := h.services[names[i]].Stop(); err != nil {
			log.Printf("service: stop %s: %v", names[i], err)
		}
	}
}

// resolve orders services so each follows its dependencies (Kahn's algorithm)
func (h *Hub) resolve() ([]string, error) {
	pending := make(map[string]int, len(h.order))
	users := make(map[string][]string)
	for _, name := range h.order {
		deps := h.services[name].Dependencies()
		for _, dep := range deps {
			if _, ok := h.services[dep]; !ok {
				return nil, fmt.Errorf("%s needs %s: %w", name, dep, ErrMissingDependency)
			}
			users[dep] = append(users[dep], name)
		}
		pending[name] = len(deps)
	}

	var ready, out []string
	for _, name := range h.order {
		if pending[name] == 0 {
			ready = append(ready, name)
		}
	}
	for len(ready) > 0 {
		name := ready[0]
		ready = ready[1:]
		out = append(out, name)
		for _, u := range users[name] {
			if pending[u]--; pending[u] == 0 {
				ready = append(ready, u)
			}
		}
	}

	if len(out) < len(h.order) {
		var stuck []string
		for _, name := range h.order {
			if !slices.Contains(out, name) {
				stuck = append(stuck, name)
			}
		}
		return nil, fmt.Errorf("%v: %w", stuck, ErrCycle)
	}
	return out, nil
}

// Names returns registered service names in registration order
func (h *Hub) Names() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return slices.Clone(h.order)
}
