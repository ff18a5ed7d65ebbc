// Package scan locates function-definition extents in a flat line sequence
// by matching qualified definition headers and tracking brace depth with a
// literal- and comment-aware lexer. It performs no I/O and never mutates its
// input.
package scan

import (
	"fmt"
	"regexp"
	"strings"
)

// Function is one textual function-definition occurrence.
// Extents are 0-based, end-exclusive, and never overlap.
type Function struct {
	Name      string
	StartLine int
	EndLine   int
	// Truncated marks an extent that ran to end of input before its braces
	// balanced. The extent is still usable; callers should warn.
	Truncated bool
}

// Result is the outcome of one scan pass.
type Result struct {
	Functions []Function
	// PreambleEnd is the index of the first recognized definition header,
	// or the line count when no function was found. Everything before it is
	// the file's preamble.
	PreambleEnd int
}

// Recognizer matches qualified function-definition headers such as
// "llvm::Value* CodeGenerator::generateExpr(". Return-type alternatives are
// regex fragments; the owner qualifier is matched literally.
type Recognizer struct {
	header *regexp.Regexp
}

// NewRecognizer compiles a header matcher. With no return-type alternatives
// the header is just "Owner::name(".
func NewRecognizer(returnTypes []string, owner string) (*Recognizer, error) {
	if owner == "" {
		return nil, fmt.Errorf("owner qualifier required")
	}
	pat := "^"
	if len(returnTypes) > 0 {
		pat += "(?:" + strings.Join(returnTypes, "|") + `)\s+`
	}
	pat += regexp.QuoteMeta(owner) + `::(\w+)\s*\(`
	re, err := regexp.Compile(pat)
	if err != nil {
		return nil, fmt.Errorf("invalid header pattern: %w", err)
	}
	return &Recognizer{header: re}, nil
}

// Match tests whether line begins a definition header and returns the
// function name on success.
func (r *Recognizer) Match(line string) (string, bool) {
	m := r.header.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// Scan walks lines once, producing Function records in source order. After
// each recognized extent the walk resumes past its end, so a consumed body
// is never re-entered.
func Scan(lines []string, rec *Recognizer) Result {
	res := Result{PreambleEnd: len(lines)}
	seenHeader := false

	i := 0
	for i < len(lines) {
		name, ok := rec.Match(lines[i])
		if !ok {
			i++
			continue
		}
		if !seenHeader {
			res.PreambleEnd = i
			seenHeader = true
		}
		fn := scanExtent(lines, i)
		fn.Name = name
		res.Functions = append(res.Functions, fn)
		i = fn.EndLine
	}
	return res
}

// scanExtent computes the extent starting at the header line. Depth counting
// begins at the first structural '{' at paren depth zero, which tolerates
// multi-line signatures and brace text inside default arguments.
func scanExtent(lines []string, start int) Function {
	var lx lexer
	for j := start; j < len(lines); j++ {
		lx.feed(lines[j])
		if lx.closed() {
			return Function{StartLine: start, EndLine: j + 1}
		}
	}
	return Function{StartLine: start, EndLine: len(lines), Truncated: true}
}
