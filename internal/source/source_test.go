package source

import (
	"os"
	"path/filepath"
	"testing"
)

// TestLoad_SliceIsByteIdentical tests that extents copied back out match the
// original bytes, including line terminators.
func TestLoad_SliceIsByteIdentical(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "in.cpp")
	content := "line0\nline1\nline2\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	f, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if f.Len() != 3 {
		t.Errorf("Expected 3 lines, got %d", f.Len())
	}
	if got := f.Slice(0, 3); got != content {
		t.Errorf("Full slice mismatch: %q", got)
	}
	if got := f.Slice(1, 2); got != "line1\n" {
		t.Errorf("Middle slice mismatch: %q", got)
	}
	if got := f.Slice(1, 1); got != "" {
		t.Errorf("Empty slice should be empty, got %q", got)
	}
}

func TestLoad_CRLFPreserved(t *testing.T) {
	f := FromString("win.cpp", "a\r\nb\r\n")

	// Scanning sees clean lines
	if f.Line(0) != "a" || f.Line(1) != "b" {
		t.Errorf("Lines not stripped: %q %q", f.Line(0), f.Line(1))
	}
	// Copied extents keep the CRLF bytes
	if got := f.Slice(0, 1); got != "a\r\n" {
		t.Errorf("CRLF not preserved: %q", got)
	}
}

func TestLoad_NoFinalNewline(t *testing.T) {
	f := FromString("x.cpp", "a\nb")

	if f.Len() != 2 {
		t.Fatalf("Expected 2 lines, got %d", f.Len())
	}
	if got := f.Slice(1, 2); got != "b" {
		t.Errorf("Final line slice mismatch: %q", got)
	}
	if got := f.Slice(0, 2); got != "a\nb" {
		t.Errorf("Full slice mismatch: %q", got)
	}
}

func TestLoad_Missing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.cpp")); err == nil {
		t.Error("Expected error for missing file")
	}
}
