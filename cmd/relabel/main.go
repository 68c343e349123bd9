// Package main provides the batch worker that reads a label list, runs the
// normalization pipeline over it and exports the corrected pairs.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"relabel/internal/batch"
	"relabel/internal/config"
	"relabel/internal/export"
	"relabel/internal/input"
	"relabel/internal/logger"
	"relabel/internal/models"
	"relabel/internal/normalizer"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML config (optional, defaults apply)")
	inputPath := flag.String("input", "", "Path to labels file, one label per line")
	outputPath := flag.String("output", "", "Path to output file (overrides config)")
	format := flag.String("format", "", "Output format: tsv, csv or json (overrides config)")
	initConfig := flag.String("init-config", "", "Write the default config to this path and exit")
	flag.Parse()

	if *initConfig != "" {
		if err := config.Default().Save(*initConfig); err != nil {
			fmt.Fprintf(os.Stderr, "❌ Failed to write config: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("✅ Default config written to %s\n", *initConfig)

		return
	}

	// Load configuration (built-in defaults when no file is given).
	cfg := config.Default()

	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "❌ %v\n", err)
			os.Exit(1)
		}

		cfg = loaded
	}

	if *outputPath != "" {
		cfg.Output.Path = *outputPath
	}

	if *format != "" {
		cfg.Output.Format = *format
	}

	log := logger.NewStderr(cfg.Logging.Level)

	if *inputPath == "" {
		log.Error("Please provide a labels file with -input")
		flag.PrintDefaults()
		os.Exit(1)
	}

	writer, err := export.NewWriter(cfg.Output.Format, cfg.Output.IncludeHeader)
	if err != nil {
		log.Error(fmt.Sprintf("❌ %v", err))
		os.Exit(1)
	}

	// Ctrl-C abandons the batch; records finished so far are still exported.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	log.Info("🚀 Starting label worker")
	log.Info(fmt.Sprintf("📍 Source: %s", *inputPath))
	log.Info(fmt.Sprintf("🎯 Target: %s (%s)", cfg.Output.Path, cfg.Output.Format))

	// Phase 1: Ingestion
	log.Info("Phase 1: Reading labels...")

	startTime := time.Now()

	labels, err := input.ReadLabelsFile(*inputPath)
	if err != nil {
		log.Error(fmt.Sprintf("❌ %v", err))
		os.Exit(1)
	}

	log.Info(fmt.Sprintf("✅ Read %d labels in %v", len(labels), time.Since(startTime)))

	// Phase 2: Normalization
	log.Info("Phase 2: Normalizing...")

	processStart := time.Now()

	pipeline := normalizer.NewPipeline(normalizer.Catalog(cfg.Pipeline.Brands))

	pacer := batch.NoDelay
	if cfg.Pacing.Enabled {
		pacer = batch.RandomDelay(cfg.Pacing.MinDelay(), cfg.Pacing.MaxDelay())
	}

	var onProgress batch.ProgressFunc
	if cfg.Logging.ShowProgress {
		onProgress = func(records []models.LabelRecord, index int) {
			rec := records[index]
			if rec.Processing {
				log.Debug("label in flight", "index", index, "original", rec.Original)
			} else {
				log.Debug("label done", "index", index, "corrected", rec.Corrected)
			}
		}
	}

	runner := batch.NewRunner(pipeline, pacer)

	records, runErr := runner.Run(ctx, labels, onProgress)
	if runErr != nil {
		log.Warn(fmt.Sprintf("⚠️  Batch abandoned: %v (exporting completed records)", runErr))
	}

	log.Info(fmt.Sprintf("✅ Normalized %d labels in %v", len(records), time.Since(processStart)))

	// Phase 3: Export
	log.Info("Phase 3: Exporting...")

	if err := writer.WriteFile(cfg.Output.Path, records); err != nil {
		log.Error(fmt.Sprintf("❌ Export failed: %v", err))
		os.Exit(1)
	}

	log.Info("✨ Pipeline Complete!")

	fmt.Println("\n------------------------------------------------")
	fmt.Printf("📊 Summary Report\n")
	fmt.Println("------------------------------------------------")
	fmt.Printf("Labels Processed: %d\n", len(records))
	fmt.Printf("Output: %s\n", cfg.Output.Path)
	fmt.Printf("Total Duration: %v\n", time.Since(startTime))
	fmt.Println("------------------------------------------------")

	if cfg.Logging.SampleResults > 0 {
		fmt.Println()
		fmt.Print(export.PreviewTable(records, cfg.Logging.SampleResults))
	}

	if runErr != nil {
		os.Exit(1)
	}
}
