// Package window runs the game in a desktop window using ebiten.
package window

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/tomz197/invaders/internal/input"
	"github.com/tomz197/invaders/internal/loop"
	"github.com/tomz197/invaders/internal/object"
	"github.com/tomz197/invaders/internal/physics"
)

var background = color.RGBA{10, 10, 20, 255}

// Game adapts a loop.State to ebiten.Game.
type Game struct {
	state    *loop.State
	listener loop.Listener
	face     font.Face

	// Overridable for tests.
	now       func() time.Time
	readInput func() input.Input
}

var _ ebiten.Game = (*Game)(nil)

// New creates a window game driving state. listener may be nil.
func New(state *loop.State, listener loop.Listener) *Game {
	return &Game{
		state:     state,
		listener:  listener,
		face:      basicfont.Face7x13,
		now:       time.Now,
		readInput: ReadKeys,
	}
}

// Update runs one frame. It returns ebiten.Termination once the game quits.
func (g *Game) Update() error {
	g.state.Step(g.now(), g.readInput())
	if g.listener != nil && len(g.state.Events()) > 0 {
		g.listener.Handle(g.state.Events())
	}
	if !g.state.Running {
		return ebiten.Termination
	}
	return nil
}

// Draw renders the current state.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	g.state.Draw(&surface{dst: screen, face: g.face})
}

// Layout keeps the logical play field size; ebiten scales it to the window.
func (g *Game) Layout(_, _ int) (int, int) {
	return object.ScreenWidth, object.ScreenHeight
}

// Run opens the window and blocks until the game quits or the window closes.
func Run(g *Game) error {
	ebiten.SetWindowSize(object.ScreenWidth, object.ScreenHeight)
	ebiten.SetWindowTitle("Invaders")
	ebiten.SetTPS(loop.TargetFPS)
	// Closing the window is delivered to Update as a quit, so an unsaved
	// record is persisted before RunGame returns.
	ebiten.SetWindowClosingHandled(true)
	if err := ebiten.RunGame(g); err != nil && err != ebiten.Termination {
		return err
	}
	return nil
}

// ReadKeys samples the keyboard and the window close button.
func ReadKeys() input.Input {
	return Intents(inpututil.IsKeyJustPressed, ebiten.IsKeyPressed, ebiten.IsWindowBeingClosed())
}

// Intents maps key state to game intents. Discrete actions use justPressed,
// movement and fire use pressed. A closing window quits.
func Intents(justPressed, pressed func(ebiten.Key) bool, closing bool) input.Input {
	anyOf := func(f func(ebiten.Key) bool, keys ...ebiten.Key) bool {
		for _, k := range keys {
			if f(k) {
				return true
			}
		}
		return false
	}
	return input.Input{
		Quit:    closing || anyOf(justPressed, ebiten.KeyEscape, ebiten.KeyQ),
		Confirm: anyOf(justPressed, ebiten.KeyEnter, ebiten.KeyNumpadEnter),
		Pause:   anyOf(justPressed, ebiten.KeyP),
		Left:    anyOf(pressed, ebiten.KeyArrowLeft, ebiten.KeyA),
		Right:   anyOf(pressed, ebiten.KeyArrowRight, ebiten.KeyD),
		Fire:    anyOf(pressed, ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW),
	}
}

// surface draws on an ebiten image in logical coordinates.
type surface struct {
	dst  *ebiten.Image
	face font.Face
}

var _ loop.Surface = (*surface)(nil)

func (s *surface) FillRect(r physics.Rect, c color.Color) {
	vector.DrawFilledRect(s.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
}

// DrawText places the top of the text at y; text.Draw takes the baseline.
func (s *surface) DrawText(x, y int, str string, c color.Color) {
	text.Draw(s.dst, str, s.face, x, y+s.face.Metrics().Ascent.Ceil(), c)
}

func (s *surface) TextWidth(str string) int {
	return textWidth(s.face, str)
}

func textWidth(face font.Face, str string) int {
	return font.MeasureString(face, str).Ceil()
}
