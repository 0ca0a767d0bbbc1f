package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/invaders/internal/audio"
	"github.com/tomz197/invaders/internal/config"
	"github.com/tomz197/invaders/internal/highscore"
	"github.com/tomz197/invaders/internal/loop"
	"github.com/tomz197/invaders/internal/window"
)

func main() {
	logger := config.NewLogger(os.Stderr, "window")
	if err := run(logger); err != nil {
		logger.Error("window game failed", "err", err)
		os.Exit(1)
	}
}

func run(logger *log.Logger) error {
	settings := config.LoadSettings()

	state := loop.NewState(loop.Options{
		Store:      highscore.NewFileStore(settings.HighScorePath, logger.WithPrefix("highscore")),
		Logger:     logger,
		Rand:       settings.Rand(),
		FirePolicy: settings.FirePolicy(),
	}, time.Now())

	var listener loop.Listener
	if settings.Audio {
		sm := audio.NewSoundManager()
		if err := sm.Initialize(); err != nil {
			logger.Warn("audio disabled", "err", err)
		} else {
			defer sm.Cleanup()
			listener = sm
		}
	}

	if err := window.Run(window.New(state, listener)); err != nil {
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}
