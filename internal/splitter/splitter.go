// Package splitter runs the split pipeline: load the monolithic source, scan
// function extents, classify them against the table, emit one file per
// non-empty category, and emit the reduced core file. One pass, strictly
// sequential, no state kept between runs.
package splitter

import (
	"fmt"
	"io"
	"path/filepath"

	"go.uber.org/zap"

	"srcsplit/internal/config"
	"srcsplit/internal/emit"
	"srcsplit/internal/partition"
	"srcsplit/internal/scan"
	"srcsplit/internal/source"
)

// Options tunes a single run.
type Options struct {
	// DryRun scans and classifies but writes nothing.
	DryRun bool
}

// FunctionSummary describes one scanned function for reporting.
type FunctionSummary struct {
	Name      string
	StartLine int    // 1-based for display
	EndLine   int    // inclusive for display
	Category  string // empty when unclassified
	Truncated bool
}

// CategoryCount is the number of functions emitted for one category.
type CategoryCount struct {
	Category partition.Category
	Count    int
}

// Report is the human-facing outcome of a run. Anomalies recorded here
// (unclassified symbols, allow-list misses, truncated extents) never affect
// the process exit status; only I/O failures do.
type Report struct {
	Source         string
	FunctionsFound int
	Functions      []FunctionSummary
	PerCategory    []CategoryCount
	Unclassified   []string
	AllowMisses    []string
	Truncated      []string
	Written        []string
	DryRun         bool
}

// Run executes the full pipeline. The returned error is always an I/O or
// configuration failure; everything else degrades into Report warnings.
func Run(cfg *config.Config, logger *zap.Logger, opts Options) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	table, err := cfg.Table()
	if err != nil {
		return nil, err
	}
	rec, err := cfg.NewRecognizer()
	if err != nil {
		return nil, err
	}

	src, err := source.Load(cfg.Split.Source)
	if err != nil {
		return nil, err
	}

	res := scan.Scan(src.Lines(), rec)
	cls := partition.Classify(res.Functions, table)

	report := &Report{
		Source:         src.Path(),
		FunctionsFound: len(res.Functions),
		DryRun:         opts.DryRun,
	}

	for _, fn := range res.Functions {
		summary := FunctionSummary{
			Name:      fn.Name,
			StartLine: fn.StartLine + 1,
			EndLine:   fn.EndLine,
			Truncated: fn.Truncated,
		}
		if cat, ok := table.Lookup(fn.Name); ok {
			summary.Category = string(cat)
		}
		report.Functions = append(report.Functions, summary)

		logger.Debug("found function",
			zap.String("name", fn.Name),
			zap.Int("start", fn.StartLine+1),
			zap.Int("end", fn.EndLine),
			zap.String("category", summary.Category))

		if fn.Truncated {
			report.Truncated = append(report.Truncated, fn.Name)
			logger.Warn("extent truncated at end of file",
				zap.String("name", fn.Name),
				zap.Int("start", fn.StartLine+1))
		}
	}

	for _, fn := range cls.Unclassified {
		report.Unclassified = append(report.Unclassified, fn.Name)
		logger.Warn("unclassified symbol dropped from partition output",
			zap.String("name", fn.Name),
			zap.Int("start", fn.StartLine+1))
	}

	layout := emit.Layout{
		Namespace: cfg.Recognizer.Namespace,
		Includes:  cfg.Recognizer.Includes,
		Headers:   categoryHeaders(cfg),
	}

	for _, g := range cls.Groups {
		report.PerCategory = append(report.PerCategory, CategoryCount{
			Category: g.Category,
			Count:    len(g.Functions),
		})
		path := emit.PartitionPath(cfg.Split.OutputDir, cfg.Split.FilePattern, g.Category)
		if !opts.DryRun {
			content := emit.RenderPartition(src, g, layout)
			if err := emit.WriteFile(path, content); err != nil {
				return report, err
			}
		}
		report.Written = append(report.Written, path)
	}

	reducedPath := filepath.Join(cfg.Split.OutputDir, cfg.Split.ReducedFile)
	content, misses := emit.RenderReduced(src, res, cfg.Reduce.Keep, layout)
	for _, name := range misses {
		report.AllowMisses = append(report.AllowMisses, name)
		logger.Warn("allow-list symbol not found in source", zap.String("name", name))
	}
	if !opts.DryRun {
		if err := emit.WriteFile(reducedPath, content); err != nil {
			return report, err
		}
	}
	report.Written = append(report.Written, reducedPath)

	return report, nil
}

func categoryHeaders(cfg *config.Config) map[partition.Category]string {
	headers := make(map[partition.Category]string, len(cfg.Headers))
	for cat, h := range cfg.Headers {
		headers[partition.Category(cat)] = h
	}
	return headers
}

// Render writes the human-readable run summary.
func (r *Report) Render(w io.Writer) {
	fmt.Fprintf(w, "Scanned %s: %d functions\n", r.Source, r.FunctionsFound)
	for _, cc := range r.PerCategory {
		fmt.Fprintf(w, "  %-8s %d\n", cc.Category, cc.Count)
	}
	if len(r.Truncated) > 0 {
		fmt.Fprintf(w, "Truncated extents (%d): %v\n", len(r.Truncated), r.Truncated)
	}
	if len(r.Unclassified) > 0 {
		fmt.Fprintf(w, "Unclassified symbols (%d): %v\n", len(r.Unclassified), r.Unclassified)
	}
	if len(r.AllowMisses) > 0 {
		fmt.Fprintf(w, "Allow-list misses (%d): %v\n", len(r.AllowMisses), r.AllowMisses)
	}
	verb := "Generated"
	if r.DryRun {
		verb = "Would generate"
	}
	fmt.Fprintf(w, "%s %d files:\n", verb, len(r.Written))
	for _, p := range r.Written {
		fmt.Fprintf(w, "  %s\n", p)
	}
}
