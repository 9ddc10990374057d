package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/reviewlens/reviewlens/internal/analyze"
	"github.com/reviewlens/reviewlens/internal/config"
	"github.com/reviewlens/reviewlens/internal/corpus"
	"github.com/reviewlens/reviewlens/internal/nlp"
	"github.com/reviewlens/reviewlens/internal/report"
	"github.com/reviewlens/reviewlens/internal/sentiment"
	"github.com/reviewlens/reviewlens/internal/server"
)

var version = "dev"

var (
	verbose    bool
	configPath string
	inputPath  string
	cfg        *config.Config
	logger     zerolog.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:     "reviewlens",
	Short:   "Deterministic review corpus analytics",
	Long:    "ReviewLens ingests a CSV of dated customer reviews and produces corpus-level word-pattern, POS, entity, and monthly sentiment statistics.",
	Version: version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip config loading for init and version
		if cmd.Name() == "init" || cmd.Name() == "version" {
			logger = newLogger("INFO")
			return nil
		}

		path, err := config.ResolveConfigPath(configPath)
		if err != nil {
			return err
		}
		cfg, err = config.Load(path)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		level := cfg.Logging.Level
		if verbose {
			level = "DEBUG"
		}
		logger = newLogger(level)
		return nil
	},
}

func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		Level(lvl).With().Timestamp().Logger()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file")
	rootCmd.PersistentFlags().StringVarP(&inputPath, "input", "i", "", "Path to the review CSV (overrides config)")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(serveCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("reviewlens", version)
	},
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize configuration in ~/.config/reviewlens/",
	RunE: func(cmd *cobra.Command, args []string) error {
		target := filepath.Join(config.ConfigDir(), "config.yaml")
		if _, err := os.Stat(target); err == nil {
			fmt.Printf("Config already exists: %s\n", target)
			return nil
		}

		if err := os.MkdirAll(config.ConfigDir(), 0o755); err != nil {
			return fmt.Errorf("creating config directory: %w", err)
		}

		if err := os.WriteFile(target, config.DefaultConfigYAML, 0o644); err != nil {
			return fmt.Errorf("writing config: %w", err)
		}

		fmt.Printf("Created config: %s\n", target)
		fmt.Println("Edit it to point at your review CSV and tune the sentiment keywords.")
		return nil
	},
}

// --- analyze command ---

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run the analysis pipeline and print a summary",
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := runPipeline(cmd)
		if err != nil {
			return err
		}

		for i, step := range result.Steps {
			fmt.Printf("\nStep %d/%d: %s\n", i+1, len(result.Steps), step.Name)
			fmt.Printf("  %s\n", step.Summary)
		}

		fmt.Printf("\nTop %d word patterns:\n", cfg.Analysis.TopK)
		for _, e := range result.Tables.NGrams.TopK(cfg.Analysis.TopK) {
			fmt.Printf("  %-30s %d\n", e.Item, e.Count)
		}

		fmt.Printf("\nTop %d named entities:\n", cfg.Analysis.TopK)
		for _, e := range result.Tables.Entities.TopK(cfg.Analysis.TopK) {
			fmt.Printf("  %-30s %d\n", e.Item, e.Count)
		}

		fmt.Println("\nSentiment totals:")
		for _, label := range sentiment.Labels() {
			fmt.Printf("  %-10s %d\n", label, result.Tables.Sentiments.Count(string(label)))
		}

		fmt.Println("\nRun 'reviewlens report' for the full report, or 'reviewlens serve' to view it in a browser.")
		return nil
	},
}

// --- report command ---

var reportOut string

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Run the pipeline and write the markdown report",
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := runPipeline(cmd)
		if err != nil {
			return err
		}

		md := report.Compose(result, cfg.Analysis.TopK)

		out := reportOut
		if out == "" {
			out = cfg.Output.ReportPath
		}
		if out == "" {
			fmt.Print(md)
			return nil
		}

		if err := os.WriteFile(out, []byte(md), 0o644); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
		fmt.Printf("Report written to %s\n", out)
		return nil
	},
}

func init() {
	reportCmd.Flags().StringVarP(&reportOut, "out", "o", "", "Report output path (default: stdout)")
}

// --- serve command ---

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the pipeline and serve the report locally",
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := runPipeline(cmd)
		if err != nil {
			return err
		}

		md := report.Compose(result, cfg.Analysis.TopK)

		port := servePort
		if port == 0 {
			port = cfg.Server.Port
		}
		fmt.Printf("Starting server at http://localhost:%d\n", port)
		fmt.Println("Press Ctrl+C to stop")
		return server.Serve(md, port, logger)
	},
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "Port to run server on (default from config)")
}

// runPipeline loads the corpus and runs the full analysis over it.
func runPipeline(cmd *cobra.Command) (*analyze.Result, error) {
	path := inputPath
	if path == "" {
		path = cfg.Input.Path
	}
	if path == "" {
		return nil, fmt.Errorf("no input CSV configured; set input.path or pass --input")
	}

	loader := corpus.NewLoader(cfg.Input.TextColumn, cfg.Input.DateColumn, logger)
	reviews, _, err := loader.Load(path)
	if err != nil {
		return nil, err
	}

	pipe := analyze.New(cfg, nlp.NewProseProvider(), logger)
	return pipe.Run(cmd.Context(), reviews)
}
