// Package registry implements the process-wide component registry consumed by
// the rendering pipeline. The registry is populated during the application's
// setup phase (theme enhancement) and frozen before any content is rendered;
// after the freeze it is read-only.
package registry

import (
	"errors"
	"sync"
	"time"

	"github.com/scribedocs/scribe/internal/types"
)

// ErrRegistryFrozen is returned by Register and Remove once the registry has
// been frozen by the application bootstrap.
var ErrRegistryFrozen = errors.New("component registry is frozen")

// ComponentRegistry manages all globally registered display components
type ComponentRegistry struct {
	components map[string]*types.ComponentInfo
	frozen     bool
	mutex      sync.RWMutex
	watchers   []chan types.ComponentEvent
}

// NewComponentRegistry creates a new, unfrozen component registry
func NewComponentRegistry() *ComponentRegistry {
	return &ComponentRegistry{
		components: make(map[string]*types.ComponentInfo),
		watchers:   make([]chan types.ComponentEvent, 0),
	}
}

// Register adds or updates a component binding. Names are unique within the
// registry; registering an existing name overwrites the prior binding
// (last-write-wins, in call order). Registration fails once the registry has
// been frozen.
func (r *ComponentRegistry) Register(component *types.ComponentInfo) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if r.frozen {
		return ErrRegistryFrozen
	}

	eventType := types.EventTypeAdded
	if _, exists := r.components[component.Name]; exists {
		eventType = types.EventTypeUpdated
	}

	if component.RegisteredAt.IsZero() {
		component.RegisteredAt = time.Now()
	}
	r.components[component.Name] = component

	r.notify(types.ComponentEvent{
		Type:      eventType,
		Component: component,
		Timestamp: time.Now(),
	})

	return nil
}

// Get retrieves a component by name
func (r *ComponentRegistry) Get(name string) (*types.ComponentInfo, bool) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	component, exists := r.components[name]
	return component, exists
}

// GetAll returns a copy of all registered components
func (r *ComponentRegistry) GetAll() map[string]*types.ComponentInfo {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	result := make(map[string]*types.ComponentInfo, len(r.components))
	for name, component := range r.components {
		result[name] = component
	}
	return result
}

// Remove removes a component from the registry. Removal fails once the
// registry has been frozen.
func (r *ComponentRegistry) Remove(name string) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if r.frozen {
		return ErrRegistryFrozen
	}

	component, exists := r.components[name]
	if !exists {
		return nil
	}

	delete(r.components, name)

	r.notify(types.ComponentEvent{
		Type:      types.EventTypeRemoved,
		Component: component,
		Timestamp: time.Now(),
	})

	return nil
}

// Freeze transitions the registry to its read-only state. Freezing is
// one-way and idempotent; it is performed by the application bootstrap after
// the theme's enhance hook has run.
func (r *ComponentRegistry) Freeze() {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.frozen = true
}

// Frozen reports whether the registry has been frozen
func (r *ComponentRegistry) Frozen() bool {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	return r.frozen
}

// Watch returns a channel that receives component events
func (r *ComponentRegistry) Watch() <-chan types.ComponentEvent {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	ch := make(chan types.ComponentEvent, 100)
	r.watchers = append(r.watchers, ch)
	return ch
}

// UnWatch removes a watcher channel and closes it
func (r *ComponentRegistry) UnWatch(ch <-chan types.ComponentEvent) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	for i, watcher := range r.watchers {
		if watcher == ch {
			close(watcher)
			r.watchers = append(r.watchers[:i], r.watchers[i+1:]...)
			break
		}
	}
}

// Count returns the number of registered components
func (r *ComponentRegistry) Count() int {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	return len(r.components)
}

// notify delivers an event to all watchers without blocking. Callers must
// hold the write lock.
func (r *ComponentRegistry) notify(event types.ComponentEvent) {
	for _, watcher := range r.watchers {
		select {
		case watcher <- event:
		default:
			// Skip if channel is full
		}
	}
}
