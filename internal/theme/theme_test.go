package theme

import (
	"bytes"
	"html/template"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scribedocs/scribe/internal/config"
)

func testSite() config.SiteConfig {
	return config.SiteConfig{
		Title:       "Test Site",
		Description: "A test site",
		Nav: []config.NavItem{
			{Text: "Home", Link: "/"},
			{Text: "Chapters", Link: "/chapters/"},
		},
	}
}

func TestDefaultTheme(t *testing.T) {
	th, err := Default(testSite())
	require.NoError(t, err)

	assert.Equal(t, "default", th.Name())
	assert.ElementsMatch(t, []string{"page", "home"}, th.LayoutNames())
	assert.Equal(t, testSite().Nav, th.Nav())

	_, err = th.Layout("missing")
	assert.ErrorIs(t, err, ErrUnknownLayout)
}

func TestDefaultTheme_RenderPageLayout(t *testing.T) {
	th, err := Default(testSite())
	require.NoError(t, err)

	layout, err := th.Layout("page")
	require.NoError(t, err)

	var buf bytes.Buffer
	err = layout.Execute(&buf, LayoutData{
		Site:    testSite(),
		Title:   "Chapter One",
		Content: template.HTML("<p>hello</p>"),
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "<title>Chapter One - Test Site</title>")
	assert.Contains(t, out, "<p>hello</p>")
	assert.Contains(t, out, `<a href="/chapters/">Chapters</a>`)
}

func TestExtension_Delegation(t *testing.T) {
	base, err := Default(testSite())
	require.NoError(t, err)

	ext := Extend(base)

	// Every base capability invoked through the extension produces the
	// same result as invoking it directly on the base theme.
	assert.Equal(t, base.Name(), ext.Name())
	assert.ElementsMatch(t, base.LayoutNames(), ext.LayoutNames())
	assert.Equal(t, base.Nav(), ext.Nav())

	baseLayout, err := base.Layout("page")
	require.NoError(t, err)
	extLayout, err := ext.Layout("page")
	require.NoError(t, err)
	assert.Same(t, baseLayout, extLayout)

	_, err = ext.Layout("missing")
	assert.ErrorIs(t, err, ErrUnknownLayout)
}

func TestExtension_Overrides(t *testing.T) {
	base, err := Default(testSite())
	require.NoError(t, err)

	custom := template.Must(template.New("chapter").Parse("{{.Title}}"))
	nav := []config.NavItem{{Text: "Only", Link: "/only/"}}

	ext := Extend(base)
	ext.ThemeName = "custom"
	ext.Layouts = map[string]*template.Template{"chapter": custom}
	ext.NavItems = nav

	assert.Equal(t, "custom", ext.Name())
	assert.Equal(t, nav, ext.Nav())

	got, err := ext.Layout("chapter")
	require.NoError(t, err)
	assert.Same(t, custom, got)

	// Non-overridden layouts still fall through to the base
	_, err = ext.Layout("page")
	assert.NoError(t, err)

	assert.ElementsMatch(t, []string{"page", "home", "chapter"}, ext.LayoutNames())
}

func TestExtension_EnhanceOrder(t *testing.T) {
	base, err := Default(testSite())
	require.NoError(t, err)

	var order []string

	inner := Extend(base)
	inner.EnhanceApp = func(ctx *EnhanceContext) error {
		order = append(order, "inner")
		return nil
	}

	outer := Extend(inner)
	outer.EnhanceApp = func(ctx *EnhanceContext) error {
		order = append(order, "outer")
		return nil
	}

	require.NoError(t, outer.Enhance(&EnhanceContext{}))
	assert.Equal(t, []string{"inner", "outer"}, order)
}

func TestExtension_EnhanceWithoutHook(t *testing.T) {
	base, err := Default(testSite())
	require.NoError(t, err)

	ext := Extend(base)
	assert.NoError(t, ext.Enhance(&EnhanceContext{}))
}
