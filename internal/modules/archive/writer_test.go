package archive

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileWriterWrite(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "itineraries")
	w := NewFileWriter(dir)

	path, err := w.Write("itinerary_lisbon.txt", "# Day 1: Arrival")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "itinerary_lisbon.txt"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# Day 1: Arrival", string(data))
}

func TestFileWriterOverwrites(t *testing.T) {
	w := NewFileWriter(t.TempDir())

	_, err := w.Write("itinerary_a.txt", "first")
	require.NoError(t, err)
	path, err := w.Write("itinerary_a.txt", "second")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))
}

func TestFileWriterRejectsPathyNames(t *testing.T) {
	w := NewFileWriter(t.TempDir())

	for _, name := range []string{"", "../escape.txt", "sub/dir.txt"} {
		_, err := w.Write(name, "x")
		assert.Error(t, err, "name %q", name)
	}
}
