package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"srcsplit/internal/config"
	"srcsplit/internal/splitter"
)

var (
	// Global flags
	verbose    bool
	configPath string
	sourcePath string
	outputDir  string

	// Logger
	logger *zap.Logger
)

const version = "1.1.0"

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "srcsplit",
	Short: "srcsplit - partition a monolithic C++ source file by function category",
	Long: `srcsplit scans a monolithic source file for qualified function
definitions, classifies each one against a symbol-to-category table, and
emits one file per non-empty category plus a reduced core file that keeps
only an allow-listed subset of functions.

The default configuration reproduces the paw compiler's codegen.cpp split;
supply --config to apply the tool to other sources.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Initialize logger
		cfg := zap.NewProductionConfig()
		cfg.Encoding = "console"
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		if verbose {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = cfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// splitCmd runs the full pipeline and writes the output files
var splitCmd = &cobra.Command{
	Use:   "split",
	Short: "Scan, classify, and emit partition files plus the reduced core file",
	Long: `Runs the full pipeline once:
  1. Load the monolithic source into a line sequence
  2. Scan function-definition extents via brace-depth tracking
  3. Classify each function against the configured symbol table
  4. Emit one file per non-empty category and the reduced core file

Unclassified symbols, allow-list misses, and truncated extents are reported
as warnings and do not fail the run; only I/O errors do.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSplit(splitter.Options{})
	},
}

// checkCmd is a dry run: scan and classify, write nothing
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Dry run: report what split would do without writing any file",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSplit(splitter.Options{DryRun: true})
	},
}

// versionCmd prints the version
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the srcsplit version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("srcsplit %s\n", version)
	},
}

func runSplit(opts splitter.Options) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if sourcePath != "" {
		cfg.Split.Source = sourcePath
	}
	if outputDir != "" {
		cfg.Split.OutputDir = outputDir
	}

	report, err := splitter.Run(cfg, logger, opts)
	if report != nil {
		if opts.DryRun {
			for _, fn := range report.Functions {
				cat := fn.Category
				if cat == "" {
					cat = "(unclassified)"
				}
				fmt.Printf("Found %s: lines %d-%d -> %s\n", fn.Name, fn.StartLine, fn.EndLine, cat)
			}
		}
		report.Render(os.Stdout)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "srcsplit.yaml", "Path to the YAML configuration file")
	rootCmd.PersistentFlags().StringVar(&sourcePath, "source", "", "Override the source file path")
	rootCmd.PersistentFlags().StringVar(&outputDir, "out", "", "Override the output directory")

	rootCmd.AddCommand(splitCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
