package catalog

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteNamesOrder(t *testing.T) {
	cat := New(Options{})
	cat.AddName("Zebra Crossing")
	cat.AddName("Moonlight")
	cat.AddName("Abba Gold")

	var buf bytes.Buffer
	require.NoError(t, cat.WriteNames(&buf))

	// trie walk order follows letter values, not insertion order
	want := "abba gold\nmoonlight\nzebra crossing\n"
	assert.Equal(t, want, buf.String())
}

func TestReadNamesSkipsBlanks(t *testing.T) {
	cat := New(Options{})
	input := "blue moon\r\n\n   \nNight Train!\n\nlast one"
	require.NoError(t, cat.ReadNames(strings.NewReader(input)))

	assert.True(t, cat.ContainsName("blue moon"))
	assert.True(t, cat.ContainsName("night train"), "lines are re-normalized on import")
	assert.True(t, cat.ContainsName("last one"))
	assert.Equal(t, 3, cat.NameCount())
}

func TestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "library.txt")
	names := []string{"Blue Moon", "Night Train", "The Song", "Abba Gold"}

	cat := New(Options{})
	for _, name := range names {
		cat.AddName(name)
	}
	cat.RecordPlay("Blue Moon")
	require.NoError(t, cat.SaveFile(path))

	cat.Reset()
	for _, name := range names {
		require.False(t, cat.ContainsName(name))
	}

	require.NoError(t, cat.LoadFile(path))
	for _, name := range names {
		assert.True(t, cat.ContainsName(name), "name %q lost in round-trip", name)
	}
	assert.Equal(t, "", cat.TopName(), "play counts are not persisted")
}

func TestLoadFileMissing(t *testing.T) {
	cat := New(Options{})
	err := cat.LoadFile(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err, "unreadable source is the reportable fault class")
	assert.Equal(t, 0, cat.NameCount())
}

func TestSaveFileBadDestination(t *testing.T) {
	cat := New(Options{})
	cat.AddName("one")
	err := cat.SaveFile(filepath.Join(t.TempDir(), "missing", "dir", "library.txt"))
	require.Error(t, err)
}

func TestSaveFileEmptyCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "library.txt")
	cat := New(Options{})
	require.NoError(t, cat.SaveFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestLoadAddsWithoutReplacing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "library.txt")
	require.NoError(t, os.WriteFile(path, []byte("from file\n"), 0644))

	cat := New(Options{})
	cat.AddName("already here")
	require.NoError(t, cat.LoadFile(path))

	assert.True(t, cat.ContainsName("already here"))
	assert.True(t, cat.ContainsName("from file"))
}
