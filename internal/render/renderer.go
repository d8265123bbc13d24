// Package render turns Markdown pages into full HTML documents: Markdown is
// compiled with goldmark, component references in the resulting fragment are
// expanded against the (frozen) component registry, and the fragment is
// wrapped in the theme layout the page selects.
package render

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	goldmarkhtml "github.com/yuin/goldmark/renderer/html"

	"github.com/scribedocs/scribe/internal/config"
	"github.com/scribedocs/scribe/internal/registry"
	"github.com/scribedocs/scribe/internal/theme"
	"github.com/scribedocs/scribe/internal/types"
)

// Renderer renders pages for one site.
type Renderer struct {
	registry *registry.ComponentRegistry
	theme    theme.Theme
	site     config.SiteConfig
	md       goldmark.Markdown
}

// NewRenderer creates a renderer over the given registry and theme. Raw HTML
// is passed through the Markdown compiler so content can reference registered
// components as elements.
func NewRenderer(reg *registry.ComponentRegistry, th theme.Theme, site config.SiteConfig) *Renderer {
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithRendererOptions(goldmarkhtml.WithUnsafe()),
	)
	return &Renderer{
		registry: reg,
		theme:    th,
		site:     site,
		md:       md,
	}
}

// RenderMarkdown compiles a Markdown body to an HTML fragment.
func (r *Renderer) RenderMarkdown(body []byte) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert(body, &buf); err != nil {
		return "", fmt.Errorf("markdown: %w", err)
	}
	return buf.String(), nil
}

// RenderPage renders a discovered page to a complete HTML document.
func (r *Renderer) RenderPage(ctx context.Context, page *types.PageInfo) (string, error) {
	fragment, err := r.RenderMarkdown(page.Body)
	if err != nil {
		return "", err
	}

	expanded, err := r.ExpandComponents(ctx, fragment)
	if err != nil {
		return "", fmt.Errorf("expanding components: %w", err)
	}

	layoutName := page.Meta.Layout
	if layoutName == "" {
		layoutName = "page"
	}
	layout, err := r.theme.Layout(layoutName)
	if err != nil {
		return "", err
	}

	var out bytes.Buffer
	data := theme.LayoutData{
		Site:    r.site,
		Title:   page.Meta.Title,
		Content: template.HTML(expanded),
	}
	if err := layout.Execute(&out, data); err != nil {
		return "", fmt.Errorf("layout %q: %w", layoutName, err)
	}

	return out.String(), nil
}
