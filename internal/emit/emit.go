// Package emit renders partitions and the reduced core file and writes them
// to disk. Function bodies are copied byte-for-byte from the loaded source;
// only the surrounding wrapper (header comment, includes, namespace markers)
// is generated. All writes go through an atomic temp-file-plus-rename path.
package emit

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"srcsplit/internal/partition"
	"srcsplit/internal/scan"
	"srcsplit/internal/source"
)

// Layout is the fixed wrapper written around emitted functions.
type Layout struct {
	Namespace string
	Includes  []string
	// Headers maps each category to its leading comment line.
	Headers map[partition.Category]string
}

func (l Layout) header(cat partition.Category) string {
	if h, ok := l.Headers[cat]; ok {
		return h
	}
	return fmt.Sprintf("// %s functions", cat)
}

// PartitionPath derives the destination path for one category.
// pattern is a fmt string with one %s verb, e.g. "codegen_%s.cpp".
func PartitionPath(dir, pattern string, cat partition.Category) string {
	return filepath.Join(dir, fmt.Sprintf(pattern, cat))
}

// RenderPartition produces the full content of one partition file. Functions
// appear in group order (source order), each followed by one blank line.
func RenderPartition(src *source.File, g partition.Group, l Layout) string {
	var b strings.Builder
	b.WriteString(l.header(g.Category))
	b.WriteString("\n")
	for _, inc := range l.Includes {
		b.WriteString(inc)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString("namespace " + l.Namespace + " {\n\n")
	for _, fn := range g.Functions {
		b.WriteString(src.Slice(fn.StartLine, fn.EndLine))
		b.WriteString("\n")
	}
	b.WriteString("} // namespace " + l.Namespace + "\n")
	return b.String()
}

// RenderReduced produces the reduced core file: the verbatim preamble, then
// the kept functions in allow-list order (not source order), then the closing
// namespace marker. The marker is appended unconditionally because the
// preamble's own namespace open is never closed by the copied extents.
// Returns the content and the allow-list names that had no scanned match.
func RenderReduced(src *source.File, res scan.Result, keep []string, l Layout) (string, []string) {
	var b strings.Builder
	b.WriteString(src.Slice(0, res.PreambleEnd))

	var misses []string
	for _, name := range keep {
		found := false
		for _, fn := range res.Functions {
			if fn.Name != name {
				continue
			}
			b.WriteString(src.Slice(fn.StartLine, fn.EndLine))
			b.WriteString("\n")
			found = true
		}
		if !found {
			misses = append(misses, name)
		}
	}

	b.WriteString("} // namespace " + l.Namespace + "\n")
	return b.String(), misses
}

// WriteFile atomically writes content to path, creating parent directories
// as needed.
func WriteFile(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := writeFileAtomic(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
