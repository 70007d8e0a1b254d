package combine

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscover(t *testing.T) {
	t.Run("returns matching files sorted by name", func(t *testing.T) {
		dir := t.TempDir()
		writeFiles(t, dir, map[string]string{
			"zeta.mdc":  "z",
			"alpha.mdc": "a",
			"mid.mdc":   "m",
		})

		fragments, err := Discover(dir)

		require.NoError(t, err)
		require.Len(t, fragments, 3)
		assert.Equal(t, "alpha.mdc", fragments[0].Name)
		assert.Equal(t, "mid.mdc", fragments[1].Name)
		assert.Equal(t, "zeta.mdc", fragments[2].Name)
		assert.Equal(t, filepath.Join(dir, "alpha.mdc"), fragments[0].Path)
		assert.Equal(t, "alpha", fragments[0].Stem)
	})

	t.Run("ignores other extensions and does not recurse", func(t *testing.T) {
		dir := t.TempDir()
		writeFiles(t, dir, map[string]string{
			"rule.mdc":   "keep",
			"notes.md":   "skip",
			"rule.mdc.b": "skip",
			"README":     "skip",
		})
		require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0o755))
		writeFiles(t, filepath.Join(dir, "nested"), map[string]string{"deep.mdc": "skip"})

		fragments, err := Discover(dir)

		require.NoError(t, err)
		require.Len(t, fragments, 1)
		assert.Equal(t, "rule.mdc", fragments[0].Name)
	})

	t.Run("lists a directory whose name matches", func(t *testing.T) {
		dir := t.TempDir()
		writeFiles(t, dir, map[string]string{"rule.mdc": "keep"})
		require.NoError(t, os.Mkdir(filepath.Join(dir, "folder.mdc"), 0o755))

		fragments, err := Discover(dir)

		require.NoError(t, err)
		require.Len(t, fragments, 2)
		assert.Equal(t, "folder.mdc", fragments[0].Name)
		assert.Equal(t, "rule.mdc", fragments[1].Name)
	})

	t.Run("empty directory yields no fragments and no error", func(t *testing.T) {
		fragments, err := Discover(t.TempDir())

		require.NoError(t, err)
		assert.Empty(t, fragments)
	})

	t.Run("missing directory", func(t *testing.T) {
		_, err := Discover(filepath.Join(t.TempDir(), "missing"))

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("parent is a regular file", func(t *testing.T) {
		dir := t.TempDir()
		writeFiles(t, dir, map[string]string{"file": "x"})

		_, err := Discover(filepath.Join(dir, "file", "rules"))

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNotFound)
		assert.NotErrorIs(t, err, ErrUnexpected)
	})

	t.Run("symlink loop", func(t *testing.T) {
		dir := t.TempDir()
		loop := filepath.Join(dir, "loop")
		require.NoError(t, os.Symlink(loop, loop))

		_, err := Discover(loop)

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("invalid path is unexpected", func(t *testing.T) {
		_, err := Discover("bad\x00dir")

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnexpected)
	})

	t.Run("path is a file", func(t *testing.T) {
		dir := t.TempDir()
		writeFiles(t, dir, map[string]string{"file.mdc": "x"})

		_, err := Discover(filepath.Join(dir, "file.mdc"))

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNotADirectory)
	})
}

func TestStem(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"rule.mdc", "rule"},
		{"api.v2.mdc", "api.v2"},
		{".mdc", ".mdc"},
		{"no-extension", "no-extension"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stem(tt.name))
		})
	}
}
