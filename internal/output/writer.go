// Package output writes the normalized program directory and the diagnostics report.
package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"erap/internal/models"
)

// Default artifact locations, relative to the working directory.
const (
	DefaultDir          = "output"
	DefaultProgramsFile = "erap.json"
	DefaultErrorsFile   = "errors.txt"
)

// Writer writes run artifacts into a directory.
type Writer struct {
	Dir          string
	ProgramsFile string
	ErrorsFile   string
}

// NewWriter creates a writer using the default file names in dir.
func NewWriter(dir string) *Writer {
	return &Writer{
		Dir:          dir,
		ProgramsFile: DefaultProgramsFile,
		ErrorsFile:   DefaultErrorsFile,
	}
}

// EncodePrograms renders the result set as JSON indented with one space.
// HTML escaping is off so query strings in links stay readable.
func EncodePrograms(rs models.ResultSet) ([]byte, error) {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", " ")

	if err := enc.Encode(rs); err != nil {
		return nil, fmt.Errorf("failed to marshal programs: %w", err)
	}

	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// WritePrograms writes the program directory and returns its path and contents.
func (w *Writer) WritePrograms(rs models.ResultSet) (string, []byte, error) {
	data, err := EncodePrograms(rs)
	if err != nil {
		return "", nil, err
	}

	path := filepath.Join(w.Dir, w.ProgramsFile)
	if err := w.write(path, data); err != nil {
		return "", nil, err
	}

	return path, data, nil
}

// WriteErrors writes the diagnostics report. Nothing is written for an empty
// report; the boolean says whether a file was written.
func (w *Writer) WriteErrors(text string) (string, bool, error) {
	if text == "" {
		return "", false, nil
	}

	path := filepath.Join(w.Dir, w.ErrorsFile)
	if err := w.write(path, []byte(text)); err != nil {
		return "", false, err
	}

	return path, true, nil
}

func (w *Writer) write(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}
