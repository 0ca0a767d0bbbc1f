package loop

import (
	"image/color"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/tomz197/invaders/internal/highscore"
	"github.com/tomz197/invaders/internal/input"
	"github.com/tomz197/invaders/internal/object"
	"github.com/tomz197/invaders/internal/physics"
)

// recorder is a Surface that keeps what was drawn.
type recorder struct {
	rects []physics.Rect
	texts []string
}

func (r *recorder) FillRect(rect physics.Rect, _ color.Color)  { r.rects = append(r.rects, rect) }
func (r *recorder) DrawText(_, _ int, s string, _ color.Color) { r.texts = append(r.texts, s) }
func (r *recorder) TextWidth(s string) int                     { return 7 * len(s) }

func (r *recorder) hasText(sub string) bool {
	return slices.ContainsFunc(r.texts, func(s string) bool { return strings.Contains(s, sub) })
}

func TestDrawTitle(t *testing.T) {
	s := newTestState(t, highscore.NewMemoryStore(1234))
	var r recorder
	s.Draw(&r)

	if !r.hasText("INVADERS") || !r.hasText("1234") {
		t.Errorf("title texts = %q", r.texts)
	}
	if !r.hasText("175") {
		t.Error("title should list the bonus points")
	}
}

func TestDrawPlayingSkipsDeadUnits(t *testing.T) {
	s := newTestState(t, nil)
	startPlaying(t, s, testStart)

	var full recorder
	s.Draw(&full)
	if !full.hasText("SCORE 0") || !full.hasText("LIVES 3") || !full.hasText("WAVE 1") {
		t.Errorf("HUD texts = %q", full.texts)
	}

	dead := s.Fleet.Units[0]
	deadRects := len(dead.Rects())
	dead.Kill()
	var after recorder
	s.Draw(&after)
	if got, want := len(after.rects), len(full.rects)-deadRects; got != want {
		t.Errorf("drew %d rects, want %d", got, want)
	}
	for _, rect := range after.rects {
		if physics.Intersects(rect, dead.Bounds()) {
			t.Fatalf("dead unit drawn at %+v", rect)
		}
	}
}

func TestDrawPauseAndLost(t *testing.T) {
	s := newTestState(t, highscore.NewMemoryStore(0))
	startPlaying(t, s, testStart)

	s.Step(testStart, input.Input{Pause: true})
	var paused recorder
	s.Draw(&paused)
	if !paused.hasText("PAUSED") || len(paused.rects) == 0 {
		t.Errorf("pause screen texts = %q rects = %d", paused.texts, len(paused.rects))
	}

	s.Step(testStart, input.Input{Pause: true})
	s.Score = 60
	s.Player.Lives = 1
	s.EnemyShots = []*object.Projectile{enemyShotAt(s.Player)}
	s.Step(testStart.Add(time.Millisecond), input.Input{})

	var lost recorder
	s.Draw(&lost)
	if !lost.hasText("GAME OVER") || !lost.hasText("NEW HIGH SCORE") {
		t.Errorf("lost screen texts = %q", lost.texts)
	}
}
