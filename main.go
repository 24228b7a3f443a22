package main

import (
	"errors"
	"flag"
	"log"
	"log/slog"
	"os"

	"MySketchPad/internal/config"
	"MySketchPad/internal/logging"
	"MySketchPad/internal/ui"
)

func main() {
	cfg, err := config.FromArgs(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Invalid log level: %v", err)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	logging.SetLogger(logger)

	logger.Info("starting sketchpad",
		"window", []float64{cfg.WindowWidth, cfg.WindowHeight},
		"palette", len(cfg.Palette))
	if err := ui.RunApp(cfg); err != nil {
		logger.Error("sketchpad exited", "err", err)
		os.Exit(1)
	}
}
