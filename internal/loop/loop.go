// Package loop provides the game state machine and the terminal frame loop.
package loop

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tomz197/invaders/internal/draw"
	"github.com/tomz197/invaders/internal/highscore"
	"github.com/tomz197/invaders/internal/input"
	"github.com/tomz197/invaders/internal/object"
)

// RunOptions configures a terminal game. Zero values select defaults.
type RunOptions struct {
	Store      highscore.Store
	Logger     *log.Logger
	Listener   Listener          // Receives each frame's events, may be nil
	TermSize   draw.TermSizeFunc // Defaults to draw.DefaultTermSizeFunc
	Rand       *rand.Rand
	FirePolicy object.FirePolicy
	Done       <-chan struct{} // Closing it ends the game as if the player quit
}

// Run starts the main game loop with the standard Input → Update → Draw cycle.
// It returns when the player quits, the input stream closes, or opts.Done
// is closed.
func Run(r *bufio.Reader, w io.Writer, opts RunOptions) error {
	if opts.TermSize == nil {
		opts.TermSize = draw.DefaultTermSizeFunc
	}

	state := NewState(Options{
		Store:      opts.Store,
		Logger:     opts.Logger,
		Rand:       opts.Rand,
		FirePolicy: opts.FirePolicy,
	}, time.Now())
	stream := input.StartStream(r)

	draw.HideCursor(w)
	defer draw.ShowCursor(w)
	draw.ClearScreen(w)

	termWidth, termHeight, err := opts.TermSize()
	if err != nil {
		return fmt.Errorf("terminal size: %w", err)
	}
	surf := newTermSurface(w, termWidth, termHeight)

	for state.Running {
		frameStart := time.Now()

		// ===== INPUT PHASE =====
		in := input.ReadInput(stream, frameStart)
		select {
		case <-opts.Done:
			in.Quit = true
		default:
		}

		// ===== UPDATE PHASE =====
		if width, height, err := opts.TermSize(); err == nil && (width != termWidth || height != termHeight) {
			termWidth, termHeight = width, height
			surf.resize(termWidth, termHeight)
		}

		prev := state.GameState
		state.Step(frameStart, in)
		if state.GameState != prev {
			stream.Reset() // Keys held across a screen change must not leak into it
		}
		if opts.Listener != nil && len(state.Events()) > 0 {
			opts.Listener.Handle(state.Events())
		}
		if !state.Running {
			break
		}

		// ===== DRAW PHASE =====
		surf.begin()
		state.Draw(surf)
		if err := surf.flush(); err != nil {
			return fmt.Errorf("draw frame: %w", err)
		}

		// ===== FRAME TIMING =====
		elapsed := time.Since(frameStart)
		if elapsed < TargetFrameTime {
			time.Sleep(TargetFrameTime - elapsed)
		}
	}

	draw.ClearScreen(w)
	return nil
}
