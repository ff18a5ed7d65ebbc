// Package partition classifies scanned functions against a symbol-to-category
// table and groups them into ordered partitions. Categories are a closed set;
// unknown or duplicate table entries are rejected when the table is built, and
// classification always reports unclassified symbols explicitly instead of
// dropping them.
package partition

import (
	"fmt"

	"srcsplit/internal/scan"
)

// Category is a partition key. The set is closed; values outside Categories()
// never enter a Table.
type Category string

const (
	CategoryMatch  Category = "match"
	CategoryType   Category = "type"
	CategoryStruct Category = "struct"
	CategoryStmt   Category = "stmt"
	CategoryExpr   Category = "expr"
)

// Categories returns all valid categories in canonical emission order.
func Categories() []Category {
	return []Category{CategoryMatch, CategoryType, CategoryStruct, CategoryStmt, CategoryExpr}
}

// ParseCategory validates a raw category string.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories() {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", s)
}

// Entry maps one symbol name to its category.
type Entry struct {
	Symbol   string
	Category Category
}

// Table is the read-only classification table for one run.
type Table struct {
	entries []Entry
	byName  map[string]Category
}

// NewTable validates entries and builds the lookup. Duplicate symbols are
// rejected even when they agree, so a conflicting edit is caught at load time
// rather than resolved silently.
func NewTable(entries []Entry) (*Table, error) {
	t := &Table{byName: make(map[string]Category, len(entries))}
	for _, e := range entries {
		if e.Symbol == "" {
			return nil, fmt.Errorf("classification entry with empty symbol")
		}
		if _, err := ParseCategory(string(e.Category)); err != nil {
			return nil, fmt.Errorf("symbol %q: %w", e.Symbol, err)
		}
		if prev, dup := t.byName[e.Symbol]; dup {
			return nil, fmt.Errorf("duplicate classification for %q (%s and %s)", e.Symbol, prev, e.Category)
		}
		t.byName[e.Symbol] = e.Category
		t.entries = append(t.entries, e)
	}
	return t, nil
}

// Lookup returns the category for an exact, case-sensitive symbol match.
func (t *Table) Lookup(symbol string) (Category, bool) {
	c, ok := t.byName[symbol]
	return c, ok
}

// Len returns the number of entries.
func (t *Table) Len() int { return len(t.entries) }

// Group is one non-empty partition: functions of a category in discovery
// order.
type Group struct {
	Category  Category
	Functions []scan.Function
}

// Classified is the full outcome of classifying a scan result. Unclassified
// holds every scanned function with no table entry; callers decide what to do
// with them (the splitter warns and omits them from output).
type Classified struct {
	Groups       []Group
	Unclassified []scan.Function
}

// Classify assigns each function to its category, preserving source order
// within each group. Duplicate names are independent records and are never
// merged. Groups come back in canonical category order with empty categories
// omitted.
func Classify(fns []scan.Function, t *Table) Classified {
	byCat := make(map[Category][]scan.Function)
	var out Classified
	for _, fn := range fns {
		cat, ok := t.Lookup(fn.Name)
		if !ok {
			out.Unclassified = append(out.Unclassified, fn)
			continue
		}
		byCat[cat] = append(byCat[cat], fn)
	}
	for _, cat := range Categories() {
		if members := byCat[cat]; len(members) > 0 {
			out.Groups = append(out.Groups, Group{Category: cat, Functions: members})
		}
	}
	return out
}
