package cmd

import (
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/scribedocs/scribe/internal/build"
	"github.com/scribedocs/scribe/internal/content"
	"github.com/scribedocs/scribe/internal/render"
	"github.com/scribedocs/scribe/internal/server"
	"github.com/scribedocs/scribe/internal/watcher"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the development server with live reload",
	Long: `Build the site, serve it locally, and rebuild on content or
configuration changes, pushing a reload to connected browsers.

Examples:
  scribe serve                     # Serve on the configured host/port
  scribe serve -p 3000             # Serve on port 3000`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().IntP("port", "p", 8080, "Port to serve on")
	serveCmd.Flags().String("host", "localhost", "Host to bind to")
	addFlagValidation(serveCmd, "port", validatePort)

	_ = viper.BindPFlag("server.port", serveCmd.Flags().Lookup("port"))
	_ = viper.BindPFlag("server.host", serveCmd.Flags().Lookup("host"))
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, cfg, err := bootstrapApp(ctx)
	if err != nil {
		return err
	}

	scanner := content.NewScanner(cfg.Content.Roots, cfg.Content.ExcludePatterns)
	renderer := render.NewRenderer(a.Components(), a.Theme(), cfg.Site)
	pipeline := build.NewPipeline(cfg.Build, renderer, a.Logger())

	rebuild := func() error {
		pages, err := scanner.Scan()
		if err != nil {
			return fmt.Errorf("scanning content: %w", err)
		}
		_, err = pipeline.Build(ctx, pages)
		return err
	}

	if err := rebuild(); err != nil {
		return err
	}

	srv := server.New(cfg.Server, cfg.Build.OutputDir, a.Logger())

	fw, err := watcher.NewFileWatcher(300 * time.Millisecond)
	if err != nil {
		return fmt.Errorf("creating file watcher: %w", err)
	}
	defer func() { _ = fw.Stop() }()

	fw.AddFilter(watcher.NoGitFilter)
	fw.AddFilter(func(path string) bool {
		return watcher.MarkdownFilter(path) || watcher.ConfigFilter(path)
	})
	fw.AddHandler(func(events []watcher.ChangeEvent) error {
		a.Logger().Info(ctx, "content changed, rebuilding", "files", len(events))
		if err := rebuild(); err != nil {
			a.Logger().Error(ctx, err, "rebuild failed")
			return nil
		}
		srv.NotifyReload()
		return nil
	})

	for _, root := range cfg.Content.Roots {
		if err := fw.AddRecursive(root); err != nil {
			a.Logger().Warn(ctx, err, "cannot watch content root", "root", root)
		}
	}

	if err := fw.Start(ctx); err != nil {
		return fmt.Errorf("starting file watcher: %w", err)
	}

	return srv.Start(ctx)
}
