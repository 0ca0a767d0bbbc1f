// Package input turns raw terminal bytes into per-frame game intents.
package input

import (
	"bufio"
	"time"
)

// keyHoldDuration is how long a key is considered "held" after its last press.
// Terminals only report presses (and auto-repeat), never releases.
const keyHoldDuration = 60 * time.Millisecond

// Input represents the current frame's intents.
// Quit, Confirm and Pause are edge-triggered: true only on the frame the key
// went down. Left, Right and Fire are level-triggered.
type Input struct {
	Quit    bool
	Confirm bool
	Pause   bool
	Left    bool
	Right   bool
	Fire    bool
}

// keyState tracks the last time each key was pressed.
type keyState struct {
	quit    time.Time
	confirm time.Time
	pause   time.Time
	left    time.Time
	right   time.Time
	fire    time.Time
}

// Stream delivers input bytes via a channel and tracks key state between frames.
type Stream struct {
	ch      chan byte
	state   keyState
	prev    Input  // Level state of the edge-triggered keys on the previous frame
	pending []byte // Escape sequence prefix cut off at the end of the last drain
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{ch: make(chan byte, 128)}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// ReadInput drains all available bytes from the stream without blocking.
// A closed stream (EOF on the reader) is reported as Quit.
// An escape sequence split across two drains is completed on the next one.
func ReadInput(s *Stream, now time.Time) Input {
	var buf []byte
	closed := false

drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	// A prefix only survives into a drain that brings more bytes.
	if len(buf) > 0 {
		buf = append(s.pending, buf...)
	}
	s.pending = nil

	for i := 0; i < len(buf); i++ {
		if buf[i] == '\x1b' && !closed && isCSIPrefix(buf[i:]) {
			s.pending = append(s.pending, buf[i:]...)
			break
		}
		// CSI sequence: ESC [ <code>
		if buf[i] == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			switch buf[i+2] {
			case 'A': // Up arrow
				s.state.fire = now
			case 'C': // Right arrow
				s.state.right = now
			case 'D': // Left arrow
				s.state.left = now
			}
			i += 2
			continue
		}
		applyByteToState(&s.state, buf[i], now)
	}

	level := Input{
		Quit:    closed || held(now, s.state.quit),
		Confirm: held(now, s.state.confirm),
		Pause:   held(now, s.state.pause),
		Left:    held(now, s.state.left),
		Right:   held(now, s.state.right),
		Fire:    held(now, s.state.fire),
	}
	out := s.edges(level)
	out.Quit = out.Quit || closed
	return out
}

// isCSIPrefix reports whether b is "ESC" or "ESC [" with nothing after it.
func isCSIPrefix(b []byte) bool {
	return len(b) == 1 || (len(b) == 2 && b[1] == '[')
}

// edges converts the level state of the discrete keys into just-pressed events.
func (s *Stream) edges(level Input) Input {
	out := level
	out.Quit = level.Quit && !s.prev.Quit
	out.Confirm = level.Confirm && !s.prev.Confirm
	out.Pause = level.Pause && !s.prev.Pause
	s.prev = level
	return out
}

// Reset is called on a screen change. Held movement and fire keys are
// forgotten, and the discrete keys count as down until released, so an
// auto-repeated key does not also trigger the next screen.
func (s *Stream) Reset() {
	s.state.left = time.Time{}
	s.state.right = time.Time{}
	s.state.fire = time.Time{}
	s.prev.Quit = true
	s.prev.Confirm = true
	s.prev.Pause = true
}

func held(now, last time.Time) bool {
	return !last.IsZero() && now.Sub(last) < keyHoldDuration
}

// applyByteToState updates the key state timestamps based on the pressed byte.
func applyByteToState(state *keyState, b byte, now time.Time) {
	switch b {
	case 'q', 'Q', '\x03': // q or Ctrl-C
		state.quit = now
	case '\n', '\r':
		state.confirm = now
	case 'p', 'P':
		state.pause = now
	case 'a', 'A', 'h', 'H':
		state.left = now
	case 'd', 'D', 'l', 'L':
		state.right = now
	case ' ', 'w', 'W', 'k', 'K':
		state.fire = now
	}
}
