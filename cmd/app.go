package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/viper"

	"github.com/scribedocs/scribe/internal/app"
	"github.com/scribedocs/scribe/internal/config"
	"github.com/scribedocs/scribe/internal/logging"
	"github.com/scribedocs/scribe/internal/site"
	"github.com/scribedocs/scribe/internal/theme"
)

// bootstrapApp loads configuration, assembles the themed application, and
// runs the one-time bootstrap (theme enhancement, registry freeze). Every
// command that touches content goes through here so the registry is always
// configured before rendering starts.
func bootstrapApp(ctx context.Context) (*app.App, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("loading configuration: %w", err)
	}

	logger := logging.NewLogger(&logging.LoggerConfig{
		Level:  logging.ParseLevel(viper.GetString("log-level")),
		Format: "text",
	})

	base, err := theme.Default(cfg.Site)
	if err != nil {
		return nil, nil, fmt.Errorf("constructing base theme: %w", err)
	}

	a := app.New(cfg, logger, site.Theme(base))
	if err := a.Bootstrap(ctx); err != nil {
		return nil, nil, err
	}
	return a, cfg, nil
}
