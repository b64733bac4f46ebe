package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/leveleditor/config"
	"github.com/milk9111/leveleditor/levels"
	"github.com/milk9111/leveleditor/logger"
	"github.com/milk9111/leveleditor/storage"
)

// sharedStore keeps one memory store alive across commands that each close it.
type sharedStore struct {
	storage.Store
}

func (sharedStore) Close() error { return nil }

func newRunContext(t *testing.T) (*runContext, *bytes.Buffer, storage.Store) {
	t.Helper()
	out := &bytes.Buffer{}
	mem := storage.NewMemoryStore()
	rc := &runContext{
		out: out,
		log: logger.Discard(),
		cfg: config.Default(),
		openStore: func(driver, path string) (storage.Store, error) {
			return sharedStore{mem}, nil
		},
	}
	return rc, out, mem
}

func writeLevel(t *testing.T, l *levels.Level) string {
	t.Helper()
	text, err := levels.Serialize(l)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), levels.FileName(l))
	require.NoError(t, os.WriteFile(path, []byte(text), 0o644))
	return path
}

func TestValidate(t *testing.T) {
	rc, out, _ := newRunContext(t)
	path := writeLevel(t, levels.CreateDefaultLevel("Checked"))

	require.NoError(t, (&validateCmd{File: path}).Run(rc))
	assert.Contains(t, out.String(), "Checked")
	assert.Contains(t, out.String(), "60x30")
	assert.Regexp(t, `tiles:\s+10`, out.String())
}

func TestValidateRejectsBadDocument(t *testing.T) {
	rc, _, _ := newRunContext(t)
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"levelName":"x"}`), 0o644))

	err := (&validateCmd{File: path}).Run(rc)
	assert.ErrorIs(t, err, levels.ErrMissingFields)
}

func TestNew(t *testing.T) {
	rc, out, _ := newRunContext(t)
	path := filepath.Join(t.TempDir(), "cave.json")

	require.NoError(t, (&newCmd{Name: "Cave", Output: path}).Run(rc))
	assert.Equal(t, path+"\n", out.String())
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lvl, err := levels.Deserialize(string(data))
	require.NoError(t, err)
	assert.Equal(t, "Cave", lvl.LevelName)

	assert.Error(t, (&newCmd{Name: "Cave", Output: path}).Run(rc), "refuses to overwrite")
	assert.NoError(t, (&newCmd{Name: "Cave", Output: path, Force: true}).Run(rc))
}

func TestImportExportList(t *testing.T) {
	rc, out, mem := newRunContext(t)

	first := writeLevel(t, levels.CreateDefaultLevel("One"))
	second := writeLevel(t, levels.CreateDefaultLevel("Two"))
	require.NoError(t, (&importCmd{File: first}).Run(rc))
	require.NoError(t, (&importCmd{File: second}).Run(rc))
	assert.Contains(t, out.String(), `imported "Two" as level 1`)

	data, ok, err := mem.Get(storage.KeyLevels)
	require.NoError(t, err)
	require.True(t, ok)
	list, err := levels.DeserializeAll(string(data))
	require.NoError(t, err)
	require.Len(t, list, 2)

	out.Reset()
	require.NoError(t, (&listCmd{}).Run(rc))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[1], "One")
	assert.Contains(t, lines[2], "Two")

	out.Reset()
	require.NoError(t, (&exportCmd{Index: 1}).Run(rc))
	lvl, err := levels.Deserialize(out.String())
	require.NoError(t, err)
	assert.Equal(t, "Two", lvl.LevelName)

	assert.Error(t, (&exportCmd{Index: 2}).Run(rc))
}

func TestImportRefusesCorruptStore(t *testing.T) {
	rc, _, mem := newRunContext(t)
	require.NoError(t, mem.Set(storage.KeyLevels, []byte("[{")))
	path := writeLevel(t, levels.CreateDefaultLevel("One"))

	assert.Error(t, (&importCmd{File: path}).Run(rc))
	data, _, _ := mem.Get(storage.KeyLevels)
	assert.Equal(t, "[{", string(data))
}

func TestStoreFlagsFallBackToConfig(t *testing.T) {
	rc, _, _ := newRunContext(t)
	var gotDriver, gotPath string
	rc.openStore = func(driver, path string) (storage.Store, error) {
		gotDriver, gotPath = driver, path
		return storage.NewMemoryStore(), nil
	}

	_, err := StoreFlags{}.open(rc)
	require.NoError(t, err)
	assert.Equal(t, rc.cfg.Storage.Driver, gotDriver)
	assert.Equal(t, rc.cfg.Storage.Path, gotPath)

	_, err = StoreFlags{Driver: storage.DriverSQLite, Store: "/tmp/x.db"}.open(rc)
	require.NoError(t, err)
	assert.Equal(t, storage.DriverSQLite, gotDriver)
	assert.Equal(t, "/tmp/x.db", gotPath)
}

func TestRaster(t *testing.T) {
	tests := []struct {
		name string
		cmd  rasterCmd
		want string
	}{
		{"line", rasterCmd{Shape: "line", X1: 2, Y1: 1}, "0 0\n1 0\n2 1\n"},
		{"filled rect", rasterCmd{Shape: "rect", X1: 1, Y1: 1, Filled: true}, "0 0\n1 0\n0 1\n1 1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rc, out, _ := newRunContext(t)
			require.NoError(t, tt.cmd.Run(rc))
			assert.Equal(t, tt.want, out.String())
		})
	}
}
