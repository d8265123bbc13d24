package theme

import (
	"fmt"
	"html/template"

	"github.com/scribedocs/scribe/internal/config"
)

// Extension composes a base theme with overrides. Every capability not
// overridden falls through to the base unchanged, so an extension retains the
// full behavior of the theme it extends.
//
// EnhanceApp, when set, is invoked exactly once by the application bootstrap
// during the setup phase. The hook performs no validation and no recovery of
// its own: any error from the registry propagates unchanged to the bootstrap,
// which aborts startup.
type Extension struct {
	// Base is the theme being extended
	Base Theme
	// ThemeName overrides the base theme's name when non-empty
	ThemeName string
	// Layouts overrides or adds named layouts; lookups fall through to Base
	Layouts map[string]*template.Template
	// NavItems overrides the base navigation when non-nil
	NavItems []config.NavItem
	// EnhanceApp is the optional setup hook run once at bootstrap
	EnhanceApp func(ctx *EnhanceContext) error
}

var (
	_ Theme    = (*Extension)(nil)
	_ Enhancer = (*Extension)(nil)
)

// Extend wraps a base theme in an empty extension for the caller to populate.
func Extend(base Theme) *Extension {
	return &Extension{Base: base}
}

func (e *Extension) Name() string {
	if e.ThemeName != "" {
		return e.ThemeName
	}
	return e.Base.Name()
}

func (e *Extension) Layout(name string) (*template.Template, error) {
	if tmpl, ok := e.Layouts[name]; ok {
		return tmpl, nil
	}
	return e.Base.Layout(name)
}

func (e *Extension) LayoutNames() []string {
	names := e.Base.LayoutNames()
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		seen[name] = true
	}
	for name := range e.Layouts {
		if !seen[name] {
			names = append(names, name)
		}
	}
	return names
}

func (e *Extension) Nav() []config.NavItem {
	if e.NavItems != nil {
		return e.NavItems
	}
	return e.Base.Nav()
}

// Enhance runs the extension's own hook, if any, after the base theme's. A
// base that is itself an Enhancer is enhanced first, so registrations made by
// the outermost extension win on name collisions.
func (e *Extension) Enhance(ctx *EnhanceContext) error {
	if enhancer, ok := e.Base.(Enhancer); ok {
		if err := enhancer.Enhance(ctx); err != nil {
			return fmt.Errorf("enhancing base theme %q: %w", e.Base.Name(), err)
		}
	}
	if e.EnhanceApp != nil {
		return e.EnhanceApp(ctx)
	}
	return nil
}
