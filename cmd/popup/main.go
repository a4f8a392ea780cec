package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"vocabpopup/internal/config"
	"vocabpopup/internal/controller"
	"vocabpopup/internal/hotkey"
	"vocabpopup/internal/overlay"
	"vocabpopup/internal/vocabulary"
)

func main() {
	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting vocabulary popup")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	logger.Info("Configuration loaded",
		zap.String("hotkey", cfg.Hotkey.String()),
		zap.String("vocabulary", cfg.VocabPath),
	)

	// Build the term store once; read-only afterwards
	store := vocabulary.Load(cfg.VocabPath, logger)

	logger.Info("Vocabulary loaded", zap.Int("entries", store.Len()))

	// Wire the controller against the platform bridge and positioner. The
	// binary runs headless with a logging surface; an embedding host window
	// injects its own Surface and window handle instead.
	bridge := hotkey.NewBridge(logger)
	surface := overlay.NewLogSurface(logger)
	positioner := overlay.NewScreenPositioner(logger)

	ctrl := controller.New(store, surface, positioner, bridge, cfg.Hotkey, 0, logger)
	ctrl.Start()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan

	logger.Info("Shutdown signal received, stopping popup...")

	ctrl.Shutdown()

	logger.Info("Popup stopped gracefully")
}
