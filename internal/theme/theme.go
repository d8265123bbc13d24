// Package theme defines the theme contract consumed by the rendering
// pipeline and the extension seam through which a site augments a base theme
// with global component registrations.
//
// A theme supplies named layout templates and the site navigation. A theme
// that also implements Enhancer is given the application handle once during
// bootstrap, before any content is rendered, and may register display
// components that content files can then reference by name.
package theme

import (
	"fmt"
	"html/template"

	"github.com/scribedocs/scribe/internal/config"
	"github.com/scribedocs/scribe/internal/logging"
	"github.com/scribedocs/scribe/internal/registry"
)

// Theme is the capability set the rendering pipeline requires of a theme.
type Theme interface {
	// Name returns the theme identifier
	Name() string
	// Layout returns the named layout template
	Layout(name string) (*template.Template, error)
	// LayoutNames returns the names of all available layouts
	LayoutNames() []string
	// Nav returns the site navigation rendered into every layout
	Nav() []config.NavItem
}

// Enhancer is the optional setup hook a theme may implement. The application
// bootstrap invokes Enhance exactly once, during the designated setup phase,
// with a transient context that must not be retained beyond the call.
type Enhancer interface {
	Enhance(ctx *EnhanceContext) error
}

// AppHandle is the slice of the application an enhance hook may act on.
type AppHandle interface {
	// Components returns the application's component registry
	Components() *registry.ComponentRegistry
	// Site returns the site configuration
	Site() config.SiteConfig
	// Logger returns the application logger
	Logger() logging.Logger
}

// EnhanceContext is passed once to a theme's enhance hook. It is owned by the
// application for the duration of the setup call.
type EnhanceContext struct {
	App AppHandle
}

// LayoutData is the data handed to layout templates.
type LayoutData struct {
	Site    config.SiteConfig
	Title   string
	Content template.HTML
}

// ErrUnknownLayout is wrapped by Layout when the requested layout does not
// exist in the theme or any of its bases.
var ErrUnknownLayout = fmt.Errorf("unknown layout")
