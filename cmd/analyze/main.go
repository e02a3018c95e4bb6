package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"go.uber.org/zap"

	"salary-lab/internal/config"
	"salary-lab/internal/logging"
	"salary-lab/internal/pipeline"
)

func main() {
	// Parse flags
	configPath := flag.String("config", "", "Path to YAML config file (defaults are used when empty)")
	dataDir := flag.String("data-dir", "", "Directory holding the input CSV files (overrides config)")
	outputDir := flag.String("output-dir", "", "Output directory for generated files (overrides config)")
	verbose := flag.Bool("verbose", false, "Enable debug logging")
	useFixtures := flag.Bool("use-fixtures", false, "Generate a synthetic dataset into the data directory and analyze it")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if *dataDir != "" {
		cfg.Input.DataDir = *dataDir
	}
	if *outputDir != "" {
		cfg.Output.Dir = *outputDir
	}
	if *verbose {
		cfg.Logging.Level = "debug"
	}
	if *useFixtures {
		if *dataDir == "" {
			cfg.Input.DataDir = filepath.Join(cfg.Output.Dir, "fixtures")
		}
		cfg.Analysis.CorrelationSeason = pipeline.FixtureCorrelationSeason
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error validating config: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.Logging.Level, cfg.Logging.Development)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if *useFixtures {
		if err := pipeline.WriteFixtures(cfg.Input.DataDir, cfg.Input); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing fixtures: %v\n", err)
			os.Exit(1)
		}
		logger.Info("fixtures written", zap.String("dir", cfg.Input.DataDir))
	}

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Warn("received signal, stopping after current stage", zap.String("signal", sig.String()))
		cancel()
	}()

	res, err := pipeline.New(cfg).WithLogger(logger).Run(ctx)
	if err != nil {
		_ = logger.Sync()
		fmt.Fprintf(os.Stderr, "Error running pipeline: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Salary analysis generated successfully:")
	for _, f := range res.Files {
		fmt.Printf("  - %s\n", f)
	}
}
