// Package logdoc loads a test/run log into memory and exposes bounded
// context windows around individual lines.
package logdoc

import (
	"fmt"
	"os"
	"strings"
)

// Document is a fully materialised log: the raw text plus its line
// decomposition. Line indices are 0-based internally; reporting code
// converts to 1-based line numbers. A Document is immutable once built.
type Document struct {
	text  string
	lines []string
}

// Load reads the log at path into a Document. The file handle is released
// as soon as the text is in memory; analysis never touches the filesystem
// again.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read log document %s: %w", path, err)
	}
	return FromString(string(data)), nil
}

// FromString builds a Document from an in-memory log. An empty string
// yields a zero-line document.
func FromString(text string) *Document {
	d := &Document{text: text}
	if text == "" {
		return d
	}
	lines := strings.Split(text, "\n")
	// A trailing newline is a line terminator, not an extra empty line.
	if lines[len(lines)-1] == "" && strings.HasSuffix(text, "\n") {
		lines = lines[:len(lines)-1]
	}
	d.lines = lines
	return d
}

// Text returns the raw log text.
func (d *Document) Text() string { return d.text }

// Lines returns the line decomposition. Callers must not mutate it.
func (d *Document) Lines() []string { return d.lines }

// LineCount returns the number of lines in the document.
func (d *Document) LineCount() int { return len(d.lines) }
