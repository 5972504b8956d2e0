// Package logging configures the standard logger for casebook processes.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

// Init points the standard logger at console, plus path when path is non-empty.
// The returned close function releases the log file and is safe to call
// when no file was opened. A file that cannot be opened is reported and
// logging continues on the console.
func Init(console io.Writer, path string) (io.Writer, func() error) {
	noop := func() error { return nil }

	if path == "" {
		log.SetOutput(console)
		return console, noop
	}

	file, err := OpenFile(path)
	if err != nil {
		log.SetOutput(console)
		log.Printf("Warning: %v", err)
		return console, noop
	}

	w := io.MultiWriter(console, file)
	log.SetOutput(w)
	return w, file.Close
}

// OpenFile opens path for appending, creating its directory if needed.
func OpenFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return file, nil
}
