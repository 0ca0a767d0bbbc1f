package main

import (
	_ "embed"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/tomz197/invaders/internal/config"
	"github.com/tomz197/invaders/internal/highscore"
)

const (
	defaultHost = "0.0.0.0"
	defaultPort = "8080"
)

//go:embed index.html
var htmlPage string

func main() {
	logger := config.NewLogger(os.Stderr, "web")
	host := config.GetEnv("WEB_HOST", defaultHost)
	port := config.GetEnv("WEB_PORT", defaultPort)
	sshHost := config.GetEnv("SSH_DISPLAY_HOST", "your-server.com")
	settings := config.LoadSettings()
	store := highscore.NewFileStore(settings.HighScorePath, logger.WithPrefix("highscore"))

	addr := fmt.Sprintf("%s:%s", host, port)
	logger.Info("starting web server", "addr", "http://"+addr, "highScoreFile", store.Path())
	if err := http.ListenAndServe(addr, newMux(sshHost, store)); err != nil {
		logger.Error("server error", "err", err)
		os.Exit(1)
	}
}

// newMux serves the landing page and the current high score.
func newMux(sshHost string, store highscore.Store) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		page := strings.NewReplacer(
			"{{.SSHHost}}", sshHost,
			"{{.HighScore}}", strconv.Itoa(store.Load()),
		).Replace(htmlPage)
		fmt.Fprint(w, page)
	})
	mux.HandleFunc("/highscore", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		fmt.Fprintln(w, store.Load())
	})
	return mux
}
