// Package types provides common type definitions shared across the Scribe
// packages. This package contains shared types to avoid circular dependencies
// between the registry, theme, and rendering packages.
package types

import (
	"time"

	"github.com/a-h/templ"
)

// Component is a renderable unit bound to a name in the registry. It is
// instantiated once per reference in rendered content, with the attributes
// and children of the referencing element.
type Component func(attrs map[string]string, children templ.Component) templ.Component

// ComponentInfo describes a globally registered display component: the
// renderable implementation plus the metadata the registry and the list
// command expose for it.
type ComponentInfo struct {
	// Name is the identifier content files use to reference the component
	// (e.g., "ShowL", "ShowS")
	Name string
	// Description provides human-readable documentation for the component
	Description string
	// Origin names the theme or extension that registered the component
	Origin string
	// Impl is the renderable implementation bound to Name
	Impl Component
	// RegisteredAt records when the binding was made, for diagnostics
	RegisteredAt time.Time
}

// EventType represents the type of component registry change event.
type EventType string

const (
	EventTypeAdded   EventType = "added"
	EventTypeUpdated EventType = "updated"
	EventTypeRemoved EventType = "removed"
)

// ComponentEvent represents a change in the component registry, delivered to
// watchers such as the development server.
type ComponentEvent struct {
	// Type indicates the kind of change (added, updated, removed)
	Type EventType
	// Component contains the component information (may be nil for removed events)
	Component *ComponentInfo
	// Timestamp records when the event occurred for ordering and filtering
	Timestamp time.Time
}
