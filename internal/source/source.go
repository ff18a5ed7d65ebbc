// Package source loads a monolithic source file into an ordered line
// sequence while keeping the original bytes addressable, so extents copied
// back out are byte-identical to the input (line endings included).
package source

import (
	"fmt"
	"os"
	"strings"
)

// File is an immutable, line-indexed view over one loaded source file.
// Line indices are 0-based throughout.
type File struct {
	path    string
	raw     string
	offsets []int // byte offset where each line starts; len == line count
	lines   []string
}

// Load reads the file at path once and indexes its lines.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read source: %w", err)
	}
	f := &File{path: path, raw: string(data)}
	f.index()
	return f, nil
}

// FromString builds a File from in-memory content. Used by tests and by
// callers that already hold the source text.
func FromString(path, content string) *File {
	f := &File{path: path, raw: content}
	f.index()
	return f
}

func (f *File) index() {
	start := 0
	for i := 0; i < len(f.raw); i++ {
		if f.raw[i] == '\n' {
			f.offsets = append(f.offsets, start)
			line := f.raw[start:i]
			f.lines = append(f.lines, strings.TrimSuffix(line, "\r"))
			start = i + 1
		}
	}
	if start < len(f.raw) {
		// Final line without a trailing newline.
		f.offsets = append(f.offsets, start)
		f.lines = append(f.lines, strings.TrimSuffix(f.raw[start:], "\r"))
	}
}

// Path returns the path the file was loaded from.
func (f *File) Path() string { return f.path }

// Len returns the number of lines.
func (f *File) Len() int { return len(f.lines) }

// Line returns line i without its terminator. Panics if out of range.
func (f *File) Line(i int) string { return f.lines[i] }

// Lines returns all lines without terminators. The slice is shared; callers
// must not mutate it.
func (f *File) Lines() []string { return f.lines }

// Slice returns the exact original text of lines [start, end), terminators
// included. end is exclusive and may equal Len().
func (f *File) Slice(start, end int) string {
	if start < 0 || end < start || end > len(f.offsets) {
		return ""
	}
	if start == end {
		return ""
	}
	from := f.offsets[start]
	if end == len(f.offsets) {
		return f.raw[from:]
	}
	return f.raw[from:f.offsets[end]]
}
