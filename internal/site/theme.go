// Package site provides this repository's theme: the default theme extended
// with the globally registered ShowL and ShowS display components.
package site

import (
	"github.com/scribedocs/scribe/internal/components"
	"github.com/scribedocs/scribe/internal/theme"
	"github.com/scribedocs/scribe/internal/types"
)

const themeName = "default+show"

// Theme extends the given base theme with an enhance hook that registers the
// ShowL and ShowS components, in that order. The hook performs no validation:
// a registry rejection propagates unchanged to the bootstrap.
func Theme(base theme.Theme) *theme.Extension {
	ext := theme.Extend(base)
	ext.ThemeName = themeName
	ext.EnhanceApp = enhanceApp
	return ext
}

func enhanceApp(ctx *theme.EnhanceContext) error {
	reg := ctx.App.Components()

	if err := reg.Register(&types.ComponentInfo{
		Name:        "ShowL",
		Description: "Block-level excerpt panel with title and source attribution",
		Origin:      themeName,
		Impl:        components.ShowLTag,
	}); err != nil {
		return err
	}

	return reg.Register(&types.ComponentInfo{
		Name:        "ShowS",
		Description: "Inline highlighted snippet",
		Origin:      themeName,
		Impl:        components.ShowSTag,
	})
}
