// README: Plain-text itinerary files on local disk.
package archive

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileWriter writes itineraries under a single output directory. Filenames
// must be bare names; anything carrying a path separator is rejected so a
// caller can never escape the directory.
type FileWriter struct {
	dir string
}

func NewFileWriter(dir string) *FileWriter {
	return &FileWriter{dir: dir}
}

// Write stores content as <dir>/<filename> and returns the full path. The
// directory is created on first use.
func (w *FileWriter) Write(filename, content string) (string, error) {
	if filename == "" || filepath.Base(filename) != filename {
		return "", fmt.Errorf("invalid itinerary filename %q", filename)
	}
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	path := filepath.Join(w.dir, filename)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("write itinerary: %w", err)
	}
	return path, nil
}
