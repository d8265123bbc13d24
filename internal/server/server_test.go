package server

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scribedocs/scribe/internal/config"
)

func newTestSite(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "chapters", "one"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"),
		[]byte("<html><body><h1>Home</h1></body></html>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "chapters", "one", "index.html"),
		[]byte("<html><body><p>one</p></body></html>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "style.css"),
		[]byte("body{}"), 0o644))
	return dir
}

func newTestServer(t *testing.T) (*Server, *httptest.Server) {
	t.Helper()
	s := New(config.ServerConfig{Host: "localhost", Port: 0}, newTestSite(t), nil)

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.HandleFunc("/", s.handleStatic)

	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)
	return s, ts
}

func get(t *testing.T, url string) (int, string) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestServer_ServesIndexWithReloadScript(t *testing.T) {
	_, ts := newTestServer(t)

	code, body := get(t, ts.URL+"/")
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, "<h1>Home</h1>")
	assert.Contains(t, body, "full_reload")
	// Script lands before the closing body tag
	assert.Less(t, strings.Index(body, "full_reload"), strings.Index(body, "</body>"))
}

func TestServer_ServesDirectoryIndex(t *testing.T) {
	_, ts := newTestServer(t)

	code, body := get(t, ts.URL+"/chapters/one/")
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, "<p>one</p>")
}

func TestServer_ServesNonHTMLUnmodified(t *testing.T) {
	_, ts := newTestServer(t)

	code, body := get(t, ts.URL+"/style.css")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "body{}", body)
}

func TestServer_NotFound(t *testing.T) {
	_, ts := newTestServer(t)

	code, _ := get(t, ts.URL+"/missing/")
	assert.Equal(t, http.StatusNotFound, code)
}

func TestServer_NotifyReloadWithoutClients(t *testing.T) {
	s := New(config.ServerConfig{}, t.TempDir(), nil)
	assert.Equal(t, 0, s.ClientCount())
	s.NotifyReload() // must not panic or block
}

func TestServer_WebSocketReload(t *testing.T) {
	s, ts := newTestServer(t)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.Dial(ctx, wsURL, nil)
	require.NoError(t, err)
	defer conn.Close(websocket.StatusNormalClosure, "")

	// The client registers asynchronously with the upgrade
	require.Eventually(t, func() bool {
		return s.ClientCount() == 1
	}, 2*time.Second, 10*time.Millisecond)

	s.NotifyReload()

	_, data, err := conn.Read(ctx)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"full_reload"}`, string(data))
}
