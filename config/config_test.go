package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 100, cfg.History.MaxEntries)
	assert.Equal(t, 50, cfg.Editor.PasteOffset)
	assert.Equal(t, 250*time.Millisecond, cfg.Editor.DeleteDelay)
	assert.Equal(t, 5*time.Second, cfg.Editor.AutosaveInterval)
	assert.Equal(t, 0.1, cfg.Editor.ZoomMin)
	assert.Equal(t, 5.0, cfg.Editor.ZoomMax)
	assert.Equal(t, 32, cfg.Editor.TileSize)
	assert.Equal(t, "file", cfg.Storage.Driver)
	assert.Equal(t, 800.0, cfg.Preview.Gravity)

	home, err := homedir.Dir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".leveleditor"), cfg.Storage.Path)
}

func TestLoadOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "editor.yaml")
	require.NoError(t, os.WriteFile(path, []byte("editor:\n  paste_offset: 2\n  delete_delay: 1s\nstorage:\n  driver: sqlite\n  path: /tmp/levels.db\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Editor.PasteOffset)
	assert.Equal(t, time.Second, cfg.Editor.DeleteDelay)
	assert.Equal(t, "sqlite", cfg.Storage.Driver)
	assert.Equal(t, "/tmp/levels.db", cfg.Storage.Path)
	assert.Equal(t, 100, cfg.History.MaxEntries, "untouched keys keep defaults")
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"zero history", "history:\n  max_entries: 0\n"},
		{"negative offset", "editor:\n  paste_offset: -1\n"},
		{"inverted zoom", "editor:\n  zoom_min: 2\n  zoom_max: 1\n"},
		{"bad duration", "editor:\n  delete_delay: soon\n"},
		{"not yaml", "editor: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestWatcher(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "editor.yaml")
	other := filepath.Join(dir, "other.yaml")
	require.NoError(t, os.WriteFile(path, []byte("history:\n  max_entries: 5\n"), 0o644))

	w, err := NewWatcher(path)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(other, []byte("x: 1\n"), 0o644))
	require.NoError(t, os.WriteFile(path, []byte("history:\n  max_entries: 6\n"), 0o644))

	select {
	case got := <-w.Events:
		abs, _ := filepath.Abs(path)
		assert.Equal(t, abs, got)
	case <-time.After(5 * time.Second):
		t.Fatal("no event for watched file")
	}

	require.NoError(t, w.Close())
	require.NoError(t, w.Close())
}
