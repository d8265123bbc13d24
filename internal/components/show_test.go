package components

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowL(t *testing.T) {
	var buf bytes.Buffer
	c := ShowL("The Go Scheduler", "Chapter 6", Text("goroutines are cheap"))
	require.NoError(t, c.Render(context.Background(), &buf))
	out := buf.String()

	assert.Contains(t, out, `<section class="show-l">`)
	assert.Contains(t, out, `<header class="show-l-title">The Go Scheduler</header>`)
	assert.Contains(t, out, `goroutines are cheap`)
	assert.Contains(t, out, `<footer class="show-l-source">Chapter 6</footer>`)
}

func TestShowL_EscapesText(t *testing.T) {
	var buf bytes.Buffer
	c := ShowL(`<script>alert("x")</script>`, "src & co", nil)
	require.NoError(t, c.Render(context.Background(), &buf))
	out := buf.String()

	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "&lt;script&gt;")
	assert.Contains(t, out, "src &amp; co")
}

func TestShowS(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ShowS("SELECT 1").Render(context.Background(), &buf))
	assert.Equal(t, `<mark class="show-s">SELECT 1</mark>`, buf.String())
}

func TestShowLTag(t *testing.T) {
	var buf bytes.Buffer
	c := ShowLTag(map[string]string{"title": "T", "source": "S"}, Text("body"))
	require.NoError(t, c.Render(context.Background(), &buf))
	out := buf.String()

	assert.Contains(t, out, ">T</header>")
	assert.Contains(t, out, ">S</footer>")
	assert.Contains(t, out, "body")
}

func TestShowSTag(t *testing.T) {
	var buf bytes.Buffer
	c := ShowSTag(map[string]string{"text": "attr wins"}, Text("children"))
	require.NoError(t, c.Render(context.Background(), &buf))
	assert.Contains(t, buf.String(), "attr wins")
	assert.NotContains(t, buf.String(), "children")

	buf.Reset()
	c = ShowSTag(nil, Text("children"))
	require.NoError(t, c.Render(context.Background(), &buf))
	assert.Equal(t, `<mark class="show-s">children</mark>`, buf.String())
}
