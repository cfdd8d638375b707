package main

import (
	"context"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/navsync/internal/config"
	"github.com/jask/navsync/internal/demo"
	"github.com/jask/navsync/internal/telemetry"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	// the terminal belongs to the program; console streams go to a file
	if cfg.Logging.Output == "stderr" || cfg.Logging.Output == "stdout" {
		cfg.Logging.Output = filepath.Join(os.TempDir(), "navsync.log")
	}
	logger, closer, err := telemetry.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer closer.Close()

	metrics, err := telemetry.NewMetrics(cfg.Metrics)
	if err != nil {
		log.Fatalf("metrics: %v", err)
	}
	go func() {
		if err := metrics.Serve(ctx); err != nil {
			logger.Error().Err(err).Str("addr", cfg.Metrics.Addr).Msg("metrics server stopped")
		}
	}()

	app := demo.New(cfg.Navigation, logger, metrics)
	defer app.Close()

	logger.Info().
		Bool("animations", cfg.Navigation.Animations).
		Bool("debug", cfg.Navigation.Debug).
		Msg("starting navsync")
	if _, err := tea.NewProgram(app, tea.WithAltScreen()).Run(); err != nil {
		logger.Error().Err(err).Msg("program exited")
		log.Fatalf("run: %v", err)
	}
}
