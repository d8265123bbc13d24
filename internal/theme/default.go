package theme

import (
	"fmt"
	"html/template"

	"github.com/scribedocs/scribe/internal/config"
)

// defaultLayouts are the base theme's built-in layout templates. Layouts
// receive a LayoutData value.
var defaultLayouts = map[string]string{
	"page": `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}} - {{.Site.Title}}</title>
</head>
<body>
<nav>{{range .Site.Nav}}<a href="{{.Link}}">{{.Text}}</a> {{end}}</nav>
<main>
<h1>{{.Title}}</h1>
{{.Content}}
</main>
<footer>{{.Site.Description}}</footer>
</body>
</html>
`,
	"home": `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Site.Title}}</title>
</head>
<body>
<nav>{{range .Site.Nav}}<a href="{{.Link}}">{{.Text}}</a> {{end}}</nav>
<header><h1>{{.Site.Title}}</h1><p>{{.Site.Description}}</p></header>
<main>
{{.Content}}
</main>
</body>
</html>
`,
}

// defaultTheme is the built-in base theme. It provides the "page" and "home"
// layouts and takes its navigation from the site configuration.
type defaultTheme struct {
	site    config.SiteConfig
	layouts map[string]*template.Template
}

// Default constructs the built-in base theme for the given site
// configuration.
func Default(site config.SiteConfig) (Theme, error) {
	layouts := make(map[string]*template.Template, len(defaultLayouts))
	for name, src := range defaultLayouts {
		tmpl, err := template.New(name).Parse(src)
		if err != nil {
			return nil, fmt.Errorf("parsing layout %q: %w", name, err)
		}
		layouts[name] = tmpl
	}
	return &defaultTheme{site: site, layouts: layouts}, nil
}

func (t *defaultTheme) Name() string { return "default" }

func (t *defaultTheme) Layout(name string) (*template.Template, error) {
	tmpl, ok := t.layouts[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLayout, name)
	}
	return tmpl, nil
}

func (t *defaultTheme) LayoutNames() []string {
	names := make([]string, 0, len(t.layouts))
	for name := range t.layouts {
		names = append(names, name)
	}
	return names
}

func (t *defaultTheme) Nav() []config.NavItem {
	return t.site.Nav
}
