// Package build implements static site generation: every non-draft page the
// scanner discovered is rendered through the theme and written under the
// output directory, mirroring the content tree.
package build

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/scribedocs/scribe/internal/config"
	"github.com/scribedocs/scribe/internal/errors"
	"github.com/scribedocs/scribe/internal/logging"
	"github.com/scribedocs/scribe/internal/render"
	"github.com/scribedocs/scribe/internal/types"
)

// Metrics summarizes a completed build.
type Metrics struct {
	Pages    int
	Skipped  int
	Bytes    int64
	Duration time.Duration
	Errors   int
}

// Pipeline renders pages to the output directory.
type Pipeline struct {
	cfg      config.BuildConfig
	renderer *render.Renderer
	logger   logging.Logger
}

// NewPipeline creates a build pipeline for the given output configuration.
func NewPipeline(cfg config.BuildConfig, renderer *render.Renderer, logger logging.Logger) *Pipeline {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Pipeline{
		cfg:      cfg,
		renderer: renderer,
		logger:   logger.WithComponent("build"),
	}
}

// Build renders all pages. Per-page failures are collected rather than
// aborting the build; the collected report is returned as the error when any
// page failed.
func (p *Pipeline) Build(ctx context.Context, pages []*types.PageInfo) (*Metrics, error) {
	start := time.Now()
	metrics := &Metrics{}
	collector := errors.NewErrorCollector()

	if p.cfg.Clean {
		if err := os.RemoveAll(p.cfg.OutputDir); err != nil {
			return nil, fmt.Errorf("cleaning output dir: %w", err)
		}
	}
	if err := os.MkdirAll(p.cfg.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output dir: %w", err)
	}

	for _, page := range pages {
		if err := ctx.Err(); err != nil {
			return metrics, err
		}
		if page.Meta.Draft {
			metrics.Skipped++
			continue
		}

		written, err := p.buildPage(ctx, page)
		if err != nil {
			collector.Add(errors.NewPageError(page.Path, "render", "page build failed", err))
			p.logger.Error(ctx, err, "page build failed", "page", page.Path)
			continue
		}

		metrics.Pages++
		metrics.Bytes += written
		p.logger.Debug(ctx, "page built", "page", page.Path, "bytes", written)
	}

	metrics.Duration = time.Since(start)
	metrics.Errors = collector.Count()

	p.logger.Info(ctx, "build finished",
		"pages", metrics.Pages,
		"skipped", metrics.Skipped,
		"errors", metrics.Errors,
		"duration", metrics.Duration.String(),
	)

	if collector.HasErrors() {
		return metrics, fmt.Errorf("%s", collector.Summary())
	}
	return metrics, nil
}

func (p *Pipeline) buildPage(ctx context.Context, page *types.PageInfo) (int64, error) {
	doc, err := p.renderer.RenderPage(ctx, page)
	if err != nil {
		return 0, err
	}

	outPath := filepath.Join(p.cfg.OutputDir, OutputPath(page.Path))
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return 0, err
	}
	if err := os.WriteFile(outPath, []byte(doc), 0o644); err != nil {
		return 0, err
	}
	return int64(len(doc)), nil
}

// OutputPath maps a content-relative source path to its output location:
// "index.md" stays "index.html" in place, every other page becomes a
// directory index ("chapters/one.md" → "chapters/one/index.html").
func OutputPath(rel string) string {
	rel = filepath.ToSlash(rel)
	stem := strings.TrimSuffix(rel, ".md")
	if stem == "index" || strings.HasSuffix(stem, "/index") {
		return filepath.FromSlash(stem + ".html")
	}
	return filepath.FromSlash(stem + "/index.html")
}
