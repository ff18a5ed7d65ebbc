package splitter

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/goleak"
	"go.uber.org/zap"

	"srcsplit/internal/config"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// testConfig builds a config over a temp workspace with a small table.
func testConfig(t *testing.T, sourceContent string) *config.Config {
	t.Helper()
	dir := t.TempDir()
	srcPath := filepath.Join(dir, "codegen.cpp")
	if err := os.WriteFile(srcPath, []byte(sourceContent), 0644); err != nil {
		t.Fatalf("Failed to write source: %v", err)
	}

	cfg := config.DefaultConfig()
	cfg.Split.Source = srcPath
	cfg.Split.OutputDir = filepath.Join(dir, "out")
	return cfg
}

const sample = `#include "codegen.h"
#include <iostream>

namespace pawc {

void CodeGenerator::generateStmt(Stmt* s) {
    emit(s);
}

llvm::Value* CodeGenerator::generateExpr(Expr* e) {
    return nullptr;
}

void CodeGenerator::printIR() {
    std::cout << "{}";
}

void CodeGenerator::helperNotMapped() {
}
`

func TestRun_EndToEnd(t *testing.T) {
	cfg := testConfig(t, sample)

	report, err := Run(cfg, zap.NewNop(), Options{})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if report.FunctionsFound != 4 {
		t.Errorf("FunctionsFound = %d, want 4", report.FunctionsFound)
	}

	stmtFile := filepath.Join(cfg.Split.OutputDir, "codegen_stmt.cpp")
	exprFile := filepath.Join(cfg.Split.OutputDir, "codegen_expr.cpp")
	reduced := filepath.Join(cfg.Split.OutputDir, "codegen_new.cpp")

	stmt := readFile(t, stmtFile)
	expr := readFile(t, exprFile)

	// Each classified function lands in exactly one partition, with no
	// trace of the other.
	if !strings.Contains(stmt, "generateStmt") || strings.Contains(stmt, "generateExpr") {
		t.Errorf("stmt partition wrong:\n%s", stmt)
	}
	if !strings.Contains(expr, "generateExpr") || strings.Contains(expr, "generateStmt") {
		t.Errorf("expr partition wrong:\n%s", expr)
	}

	// Unclassified symbols appear in no partition file.
	for name, content := range map[string]string{"stmt": stmt, "expr": expr} {
		if strings.Contains(content, "helperNotMapped") {
			t.Errorf("unclassified symbol leaked into %s partition", name)
		}
	}
	want := []string{"helperNotMapped", "printIR"}
	if len(report.Unclassified) != 2 {
		t.Errorf("Unclassified = %v, want %v", report.Unclassified, want)
	}

	// printIR is unclassified but allow-listed: present in the reduced file
	// because the allow-list is checked against the full scan result.
	red := readFile(t, reduced)
	if !strings.Contains(red, "printIR") {
		t.Errorf("reduced file missing allow-listed printIR:\n%s", red)
	}
	if strings.Contains(red, "helperNotMapped") {
		t.Errorf("reduced file contains non-allow-listed symbol:\n%s", red)
	}

	// Preamble is byte-identical to everything before the first header.
	preamble := "#include \"codegen.h\"\n#include <iostream>\n\nnamespace pawc {\n\n"
	if !strings.HasPrefix(red, preamble) {
		t.Errorf("reduced preamble not verbatim:\n%s", red)
	}
	if !strings.HasSuffix(red, "} // namespace pawc\n") {
		t.Errorf("reduced file missing closing marker")
	}

	// saveIR, compileToObject, generate are allow-listed but absent.
	if len(report.AllowMisses) != 3 {
		t.Errorf("AllowMisses = %v, want 3 entries", report.AllowMisses)
	}

	// Empty categories produce no file.
	for _, cat := range []string{"match", "type", "struct"} {
		p := filepath.Join(cfg.Split.OutputDir, "codegen_"+cat+".cpp")
		if _, err := os.Stat(p); !os.IsNotExist(err) {
			t.Errorf("empty category %s emitted a file", cat)
		}
	}
}

func TestRun_PartitionsPairwiseDisjoint(t *testing.T) {
	cfg := testConfig(t, sample)

	report, err := Run(cfg, zap.NewNop(), Options{})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	bodies := make(map[string]string)
	for _, p := range report.Written {
		if filepath.Base(p) == cfg.Split.ReducedFile {
			continue
		}
		bodies[p] = readFile(t, p)
	}
	for _, fn := range report.Functions {
		if fn.Category == "" {
			continue
		}
		hits := 0
		for _, content := range bodies {
			if strings.Contains(content, fn.Name) {
				hits++
			}
		}
		if hits != 1 {
			t.Errorf("function %s appears in %d partition files, want 1", fn.Name, hits)
		}
	}
}

func TestRun_Idempotent(t *testing.T) {
	cfg := testConfig(t, sample)

	first, err := Run(cfg, zap.NewNop(), Options{})
	if err != nil {
		t.Fatalf("First run failed: %v", err)
	}
	snapshot := make(map[string]string)
	for _, p := range first.Written {
		snapshot[p] = readFile(t, p)
	}

	second, err := Run(cfg, zap.NewNop(), Options{})
	if err != nil {
		t.Fatalf("Second run failed: %v", err)
	}
	for _, p := range second.Written {
		if got := readFile(t, p); got != snapshot[p] {
			t.Errorf("re-run changed %s", p)
		}
	}
}

func TestRun_DryRunWritesNothing(t *testing.T) {
	cfg := testConfig(t, sample)

	report, err := Run(cfg, zap.NewNop(), Options{DryRun: true})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(report.Written) == 0 {
		t.Fatal("dry run should still report target paths")
	}
	if _, err := os.Stat(cfg.Split.OutputDir); !os.IsNotExist(err) {
		t.Errorf("dry run created the output directory")
	}
}

func TestRun_TruncatedExtentIsWarningNotError(t *testing.T) {
	cfg := testConfig(t, "void CodeGenerator::generateStmt(Stmt* s) {\n    int x = 1;\n")

	report, err := Run(cfg, zap.NewNop(), Options{})
	if err != nil {
		t.Fatalf("Run should succeed on truncated extent: %v", err)
	}
	if len(report.Truncated) != 1 || report.Truncated[0] != "generateStmt" {
		t.Errorf("Truncated = %v, want [generateStmt]", report.Truncated)
	}
	// The truncated extent still lands in its partition, running to EOF.
	content := readFile(t, filepath.Join(cfg.Split.OutputDir, "codegen_stmt.cpp"))
	if !strings.Contains(content, "int x = 1;") {
		t.Errorf("truncated extent body missing:\n%s", content)
	}
}

func TestRun_MissingSourceIsFatal(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Split.Source = filepath.Join(t.TempDir(), "absent.cpp")
	cfg.Split.OutputDir = t.TempDir()

	if _, err := Run(cfg, zap.NewNop(), Options{}); err == nil {
		t.Fatal("Expected error for missing source file")
	}
}

func TestReport_Render(t *testing.T) {
	cfg := testConfig(t, sample)
	report, err := Run(cfg, zap.NewNop(), Options{})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	var b strings.Builder
	report.Render(&b)
	out := b.String()

	for _, frag := range []string{"4 functions", "stmt", "expr", "Unclassified", "Allow-list misses", "codegen_new.cpp"} {
		if !strings.Contains(out, frag) {
			t.Errorf("summary missing %q:\n%s", frag, out)
		}
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read %s: %v", path, err)
	}
	return string(data)
}
