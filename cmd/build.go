package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/scribedocs/scribe/internal/build"
	"github.com/scribedocs/scribe/internal/content"
	"github.com/scribedocs/scribe/internal/render"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the static site",
	Long: `Render every non-draft Markdown page through the theme into the
output directory.

Examples:
  scribe build                     # Build into the configured output dir
  scribe build -o public           # Build into ./public
  scribe build --no-clean          # Keep existing output files`,
	RunE: runBuild,
}

func init() {
	rootCmd.AddCommand(buildCmd)

	buildCmd.Flags().StringP("output", "o", "", "Output directory (overrides config)")
	buildCmd.Flags().Bool("no-clean", false, "Don't remove the output directory first")

	_ = viper.BindPFlag("build.output_dir", buildCmd.Flags().Lookup("output"))
}

func runBuild(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	a, cfg, err := bootstrapApp(ctx)
	if err != nil {
		return err
	}

	if noClean, _ := cmd.Flags().GetBool("no-clean"); noClean {
		cfg.Build.Clean = false
	}

	scanner := content.NewScanner(cfg.Content.Roots, cfg.Content.ExcludePatterns)
	pages, err := scanner.Scan()
	if err != nil {
		return fmt.Errorf("scanning content: %w", err)
	}

	renderer := render.NewRenderer(a.Components(), a.Theme(), cfg.Site)
	pipeline := build.NewPipeline(cfg.Build, renderer, a.Logger())

	metrics, err := pipeline.Build(ctx, pages)
	if err != nil {
		return err
	}

	fmt.Printf("Built %d page(s) (%d skipped) in %s → %s\n",
		metrics.Pages, metrics.Skipped, metrics.Duration.Round(time.Millisecond), cfg.Build.OutputDir)
	return nil
}
