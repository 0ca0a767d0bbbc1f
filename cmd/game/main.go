package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/tomz197/invaders/internal/audio"
	"github.com/tomz197/invaders/internal/config"
	"github.com/tomz197/invaders/internal/highscore"
	"github.com/tomz197/invaders/internal/loop"
	"golang.org/x/term"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Stdout is the game screen, so logs go to a file or nowhere.
	var logOut io.Writer = io.Discard
	if path := config.GetEnv("INVADERS_LOG_FILE", ""); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger := config.NewLogger(logOut, "game")
	settings := config.LoadSettings()

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

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("enable raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	store := highscore.NewFileStore(settings.HighScorePath, logger.WithPrefix("highscore"))
	logger.Info("starting", "highScoreFile", store.Path(), "fireCooldown", settings.FireCooldown)
	reader := bufio.NewReader(os.Stdin)
	return loop.Run(reader, os.Stdout, loop.RunOptions{
		Store:      store,
		Logger:     logger,
		Listener:   listener,
		Rand:       settings.Rand(),
		FirePolicy: settings.FirePolicy(),
	})
}
