package render

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/scribedocs/scribe/internal/types"
)

// voidElements never carry children and are serialized without a closing tag.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"param": true, "source": true, "track": true, "wbr": true,
}

// ExpandComponents parses an HTML fragment and replaces every element whose
// tag name matches a registered component (case-insensitively) with that
// component's rendered output. The element's attributes become the component
// attrs and its expanded children become the component children. Unregistered
// custom tags pass through untouched. The registry is only read here; by the
// time content renders it has been frozen.
func (r *Renderer) ExpandComponents(ctx context.Context, fragment string) (string, error) {
	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(fragment), body)
	if err != nil {
		return "", fmt.Errorf("parsing fragment: %w", err)
	}

	// Case-insensitive lookup: the HTML parser lowercases tag names.
	lookup := make(map[string]componentBinding)
	for name, info := range r.registry.GetAll() {
		lookup[strings.ToLower(name)] = componentBinding{name: name, impl: info.Impl}
	}

	var buf bytes.Buffer
	for _, node := range nodes {
		if err := r.renderNode(ctx, &buf, node, lookup); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}

type componentBinding struct {
	name string
	impl types.Component
}

func (r *Renderer) renderNode(ctx context.Context, w io.Writer, n *html.Node, lookup map[string]componentBinding) error {
	switch n.Type {
	case html.TextNode:
		_, err := io.WriteString(w, html.EscapeString(n.Data))
		return err

	case html.CommentNode:
		_, err := fmt.Fprintf(w, "<!--%s-->", n.Data)
		return err

	case html.ElementNode:
		if binding, ok := lookup[strings.ToLower(n.Data)]; ok {
			return r.renderComponent(ctx, w, n, binding, lookup)
		}
		return r.renderElement(ctx, w, n, lookup)

	default:
		return r.renderChildren(ctx, w, n, lookup)
	}
}

// renderComponent instantiates a registered component for one referencing
// element. Children are expanded first so nested component references work.
func (r *Renderer) renderComponent(ctx context.Context, w io.Writer, n *html.Node, binding componentBinding, lookup map[string]componentBinding) error {
	attrs := make(map[string]string, len(n.Attr))
	for _, attr := range n.Attr {
		attrs[attr.Key] = attr.Val
	}

	var inner bytes.Buffer
	if err := r.renderChildren(ctx, &inner, n, lookup); err != nil {
		return err
	}

	component := binding.impl(attrs, templ.Raw(inner.String()))
	if err := component.Render(ctx, w); err != nil {
		return fmt.Errorf("rendering component %q: %w", binding.name, err)
	}
	return nil
}

func (r *Renderer) renderElement(ctx context.Context, w io.Writer, n *html.Node, lookup map[string]componentBinding) error {
	if _, err := io.WriteString(w, "<"+n.Data); err != nil {
		return err
	}
	for _, attr := range n.Attr {
		if _, err := fmt.Fprintf(w, ` %s="%s"`, attr.Key, html.EscapeString(attr.Val)); err != nil {
			return err
		}
	}
	if voidElements[n.Data] {
		_, err := io.WriteString(w, "/>")
		return err
	}
	if _, err := io.WriteString(w, ">"); err != nil {
		return err
	}
	if err := r.renderChildren(ctx, w, n, lookup); err != nil {
		return err
	}
	_, err := io.WriteString(w, "</"+n.Data+">")
	return err
}

func (r *Renderer) renderChildren(ctx context.Context, w io.Writer, n *html.Node, lookup map[string]componentBinding) error {
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if err := r.renderNode(ctx, w, child, lookup); err != nil {
			return err
		}
	}
	return nil
}
