package main

import (
	"fmt"
	"math"
	"os"

	"github.com/yourorg/go-tabular-kit/pkg/config"
	"github.com/yourorg/go-tabular-kit/pkg/csvout"
	"github.com/yourorg/go-tabular-kit/pkg/logging"
	"github.com/yourorg/go-tabular-kit/pkg/tabular"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfigFromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Create logger
	logger, err := logging.NewLogger(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logging.Sync(logger)

	logger.Info("Starting example logger",
		logging.NewField("app", cfg.AppName),
		logging.NewField("output", cfg.CSVOutputPath))

	// Create the CSV output
	opts := []csvout.Option{csvout.WithLogger(logger)}
	if cfg.DisableWarnings {
		opts = append(opts, csvout.DisableWarnings())
	}
	writer, err := csvout.New(cfg.CSVOutputPath, opts...)
	if err != nil {
		logger.WithError(err).Error("Failed to open CSV output")
		os.Exit(1)
	}
	defer func() {
		if err := writer.Close(); err != nil {
			logger.WithError(err).Error("Failed to close CSV output")
		}
	}()

	// Simulate a training-style loop. Validation metrics only appear from
	// epoch 3 on, which grows the CSV header mid-run.
	input := tabular.NewInput()
	for epoch := 1; epoch <= 5; epoch++ {
		input.Set("epoch", epoch)
		input.WithPrefix("train/", func() {
			input.Set("loss", 1.0/float64(epoch))
		})
		if epoch >= 3 {
			input.WithPrefix("val/", func() {
				input.Set("accuracy", 1.0-math.Exp(-float64(epoch)))
			})
		}

		if err := writer.Record(input); err != nil {
			logger.WithError(err).Error("Failed to record row",
				logging.NewField("epoch", epoch))
			os.Exit(1)
		}

		if unrecorded := input.UnrecordedKeys(); len(unrecorded) > 0 {
			logger.Warn("Some keys were never recorded",
				logging.NewField("keys", unrecorded))
		}
		input.Clear()
	}

	logger.Info("Run complete",
		logging.NewField("rewrites", writer.Rewrites()),
		logging.NewField("output", writer.Path()))
}
