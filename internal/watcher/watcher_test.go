package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilters(t *testing.T) {
	assert.True(t, MarkdownFilter("content/page.md"))
	assert.False(t, MarkdownFilter("content/page.txt"))

	assert.True(t, ConfigFilter(".scribe.yml"))
	assert.True(t, ConfigFilter("config.yaml"))
	assert.False(t, ConfigFilter("page.md"))

	assert.True(t, NoGitFilter("content/page.md"))
	assert.False(t, NoGitFilter(".git/HEAD"))
	assert.False(t, NoGitFilter("repo/.git/config"))
}

func TestDebouncer_CoalescesEvents(t *testing.T) {
	d := &Debouncer{
		delay:   20 * time.Millisecond,
		events:  make(chan ChangeEvent, 100),
		output:  make(chan []ChangeEvent, 10),
		pending: make([]ChangeEvent, 0),
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go d.start(ctx)

	// Rapid burst against two paths must flush as one deduplicated batch
	for i := 0; i < 10; i++ {
		d.events <- ChangeEvent{Type: EventTypeModified, Path: "a.md"}
		d.events <- ChangeEvent{Type: EventTypeModified, Path: "b.md"}
	}

	select {
	case events := <-d.output:
		assert.Len(t, events, 2)
	case <-time.After(2 * time.Second):
		t.Fatal("debouncer did not flush")
	}
}

func TestFileWatcher_DeliversChangeBatches(t *testing.T) {
	dir := t.TempDir()

	fw, err := NewFileWatcher(30 * time.Millisecond)
	require.NoError(t, err)
	defer func() { _ = fw.Stop() }()

	fw.AddFilter(MarkdownFilter)

	var mu sync.Mutex
	var got []ChangeEvent
	done := make(chan struct{}, 1)
	fw.AddHandler(func(events []ChangeEvent) error {
		mu.Lock()
		got = append(got, events...)
		mu.Unlock()
		select {
		case done <- struct{}{}:
		default:
		}
		return nil
	})

	require.NoError(t, fw.AddRecursive(dir))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, fw.Start(ctx))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "page.md"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ignored.txt"), []byte("x"), 0o644))

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("no change batch delivered")
	}

	mu.Lock()
	defer mu.Unlock()
	require.NotEmpty(t, got)
	for _, event := range got {
		assert.Equal(t, ".md", filepath.Ext(event.Path))
	}
}

func TestEventType_String(t *testing.T) {
	assert.Equal(t, "created", EventTypeCreated.String())
	assert.Equal(t, "modified", EventTypeModified.String())
	assert.Equal(t, "deleted", EventTypeDeleted.String())
	assert.Equal(t, "renamed", EventTypeRenamed.String())
}
