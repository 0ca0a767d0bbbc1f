package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/logging"
	"github.com/tomz197/invaders/internal/config"
	"github.com/tomz197/invaders/internal/draw"
	"github.com/tomz197/invaders/internal/highscore"
	"github.com/tomz197/invaders/internal/lobby"
	"github.com/tomz197/invaders/internal/loop"
)

const (
	defaultHost        = "::"
	defaultPort        = "2222"
	defaultHostKeyPath = "/app/keys/host_key"
	defaultMaxSessions = 64
)

func main() {
	logger := config.NewLogger(os.Stderr, "ssh")
	if err := run(logger); err != nil {
		logger.Error("ssh host failed", "err", err)
		os.Exit(1)
	}
}

func run(logger *log.Logger) error {
	host := config.GetEnv("SSH_HOST", defaultHost)
	port := config.GetEnv("SSH_PORT", defaultPort)
	hostKeyPath := config.GetEnv("SSH_HOST_KEY", defaultHostKeyPath)
	settings := config.LoadSettings()
	store := highscore.NewFileStore(settings.HighScorePath, logger.WithPrefix("highscore"))
	logger.Info("ssh config", "host", host, "port", port, "hostKeyPath", hostKeyPath,
		"highScoreFile", store.Path())

	// Every session plays its own game; only the high score file is shared.
	h := &handler{
		settings: settings,
		store:    store,
		lobby:    lobby.New(config.GetEnvInt("SSH_MAX_SESSIONS", defaultMaxSessions), logger.WithPrefix("lobby")),
		log:      logger,
	}

	opts := []ssh.Option{
		wish.WithAddress(net.JoinHostPort(host, port)),
		wish.WithMiddleware(
			h.middleware,
			activeterm.Middleware(),
			logging.MiddlewareWithLogger(logger),
		),
		// Set TCP_NODELAY to reduce latency for game input
		ssh.WrapConn(func(ctx ssh.Context, conn net.Conn) net.Conn {
			if tcpConn, ok := conn.(*net.TCPConn); ok {
				_ = tcpConn.SetNoDelay(true)
			}
			return conn
		}),
	}
	if hostKeyPath != "" {
		opts = append(opts, wish.WithHostKeyPath(hostKeyPath))
	}

	s, err := wish.NewServer(opts...)
	if err != nil {
		return fmt.Errorf("create server: %w", err)
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	serveErr := make(chan error, 1)
	logger.Info("starting ssh server", "addr", net.JoinHostPort(host, port))
	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case err := <-serveErr:
		return fmt.Errorf("serve: %w", err)
	case <-done:
	}
	logger.Info("shutting down", "sessions", h.lobby.Count())
	for _, info := range h.lobby.Sessions() {
		logger.Info("stopping session", "id", info.ID, "user", info.User, "played", time.Since(info.Started).Round(time.Second))
	}

	// Running games save their scores as they stop.
	if !h.lobby.Shutdown(15 * time.Second) {
		for _, info := range h.lobby.Sessions() {
			logger.Warn("session did not stop in time", "id", info.ID, "user", info.User)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// handler runs one game per SSH session.
type handler struct {
	settings config.Settings
	store    highscore.Store
	lobby    *lobby.Lobby
	log      *log.Logger
}

func (h *handler) middleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		pty, winCh, ok := sess.Pty()
		if !ok {
			fmt.Fprintln(sess, "Error: PTY required. Please connect with: ssh -t user@host")
			return
		}

		member, err := h.lobby.Join(sess.User(), time.Now())
		if err != nil {
			fmt.Fprintln(sess, "Server is full, please try again later.")
			return
		}
		defer h.lobby.Leave(member.ID)

		logger := h.log.With("user", sess.User(), "session", member.ID)
		logger.Info("new game session", "term", pty.Term, "width", pty.Window.Width, "height", pty.Window.Height)

		// Create a terminal size tracker that updates on window changes
		sizeTracker := newSizeTracker(pty.Window.Width, pty.Window.Height)
		go func() {
			for win := range winCh {
				sizeTracker.update(win.Width, win.Height)
			}
		}()

		err = loop.Run(bufio.NewReader(sess), sess, loop.RunOptions{
			Store:      h.store,
			Logger:     logger,
			TermSize:   sizeTracker.getSize,
			Rand:       h.settings.Rand(),
			FirePolicy: h.settings.FirePolicy(),
			Done:       member.Done(),
		})
		if err != nil {
			logger.Error("game error", "err", err)
		}

		logger.Info("session ended")
		next(sess)
	}
}

// sizeTracker tracks terminal size from SSH window change events.
type sizeTracker struct {
	mu     sync.RWMutex
	width  int
	height int
}

func newSizeTracker(width, height int) *sizeTracker {
	return &sizeTracker{width: width, height: height}
}

func (s *sizeTracker) update(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.width = width
	s.height = height
}

func (s *sizeTracker) getSize() (int, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.width, s.height, nil
}

// Ensure sizeTracker.getSize satisfies draw.TermSizeFunc
var _ draw.TermSizeFunc = (*sizeTracker)(nil).getSize
