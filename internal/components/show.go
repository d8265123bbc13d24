// Package components provides the display components the site theme registers
// globally: ShowL, a block-level excerpt panel, and ShowS, an inline snippet.
// Both are plain templ components; content files reference them by their
// registered names.
package components

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// ShowL renders a block-level excerpt panel with a title and an attribution
// footer. The body is any renderable; Raw or Text can be used for simple
// cases.
func ShowL(title, source string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<section class="show-l"><header class="show-l-title">%s</header><div class="show-l-body">`,
			templ.EscapeString(title)); err != nil {
			return err
		}
		if body != nil {
			if err := body.Render(ctx, w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, `</div><footer class="show-l-source">%s</footer></section>`,
			templ.EscapeString(source)); err != nil {
			return err
		}
		return nil
	})
}

// ShowS renders a short inline highlighted snippet.
func ShowS(text string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<mark class="show-s">%s</mark>`, templ.EscapeString(text))
		return err
	})
}

// ShowLTag adapts ShowL to the registry's component shape. Content elements
// supply the title and source as attributes and the panel body as children.
func ShowLTag(attrs map[string]string, children templ.Component) templ.Component {
	return ShowL(attrs["title"], attrs["source"], children)
}

// ShowSTag adapts ShowS to the registry's component shape. A "text" attribute
// wins over children; with neither the snippet is empty.
func ShowSTag(attrs map[string]string, children templ.Component) templ.Component {
	if text, ok := attrs["text"]; ok {
		return ShowS(text)
	}
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<mark class="show-s">`); err != nil {
			return err
		}
		if children != nil {
			if err := children.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</mark>`)
		return err
	})
}

// Text renders escaped plain text, for use as a ShowL body.
func Text(s string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, templ.EscapeString(s))
		return err
	})
}
