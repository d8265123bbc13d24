// Package app wires the application together: configuration, logging, the
// component registry, and the theme. Bootstrap runs the theme's enhance hook
// exactly once and freezes the registry before any content is rendered.
package app

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/scribedocs/scribe/internal/config"
	"github.com/scribedocs/scribe/internal/logging"
	"github.com/scribedocs/scribe/internal/registry"
	"github.com/scribedocs/scribe/internal/theme"
)

// ErrAlreadyConfigured is returned by Bootstrap when the app has already been
// bootstrapped.
var ErrAlreadyConfigured = errors.New("application already configured")

// App owns the component registry and the theme for one site.
type App struct {
	cfg      *config.Config
	logger   logging.Logger
	registry *registry.ComponentRegistry
	theme    theme.Theme

	mu         sync.Mutex
	configured bool
}

// New creates an unconfigured application around the given theme. A nil
// logger falls back to a no-op logger.
func New(cfg *config.Config, logger logging.Logger, th theme.Theme) *App {
	if logger == nil {
		logger = logging.Nop()
	}
	return &App{
		cfg:      cfg,
		logger:   logger.WithComponent("app"),
		registry: registry.NewComponentRegistry(),
		theme:    th,
	}
}

// Components returns the application's component registry
func (a *App) Components() *registry.ComponentRegistry {
	return a.registry
}

// Site returns the site configuration
func (a *App) Site() config.SiteConfig {
	return a.cfg.Site
}

// Logger returns the application logger
func (a *App) Logger() logging.Logger {
	return a.logger
}

// Theme returns the application's theme
func (a *App) Theme() theme.Theme {
	return a.theme
}

// Configured reports whether Bootstrap has completed
func (a *App) Configured() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.configured
}

// Bootstrap runs the one-way unconfigured → configured transition: if the
// theme implements theme.Enhancer, its hook is invoked with a transient
// enhance context, then the registry is frozen. Any error from the hook
// aborts startup and propagates to the caller.
func (a *App) Bootstrap(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.configured {
		return ErrAlreadyConfigured
	}

	if enhancer, ok := a.theme.(theme.Enhancer); ok {
		ectx := &theme.EnhanceContext{App: a}
		if err := enhancer.Enhance(ectx); err != nil {
			return fmt.Errorf("theme enhancement failed: %w", err)
		}
	}

	a.registry.Freeze()
	a.configured = true

	a.logger.Info(ctx, "application configured",
		"theme", a.theme.Name(),
		"components", a.registry.Count(),
	)
	return nil
}
