package loop

import (
	"fmt"
	"image/color"

	"github.com/tomz197/invaders/internal/object"
)

// Text layout in logical pixels.
const (
	hudMargin  = 10
	lineHeight = 30
)

// Draw renders the current state onto surf.
func (s *State) Draw(surf Surface) {
	switch s.GameState {
	case GameStateTitle:
		s.drawTitle(surf)
	case GameStatePlaying:
		s.drawWorld(surf)
		s.drawHUD(surf)
	case GameStatePause:
		s.drawWorld(surf)
		s.drawHUD(surf)
		s.drawPause(surf)
	case GameStateLost:
		s.drawLost(surf)
	}
}

// drawTitle draws the title screen with the point table.
func (s *State) drawTitle(surf Surface) {
	y := s.Screen.Height / 4
	drawCentered(surf, s.Screen, y, "INVADERS", ColorText)
	drawCentered(surf, s.Screen, y+lineHeight, fmt.Sprintf("HIGH SCORE %d", s.HighScore), ColorDim)

	y += 3 * lineHeight
	rows := []struct {
		sprite *object.SpriteSet
		points int
		color  color.Color
	}{
		{s.sprites.Saucer, object.BonusPoints, ColorBonus},
		{s.sprites.Crab, object.CrabPoints, ColorCrab},
		{s.sprites.Squid, object.SquidPoints, ColorSquid},
	}
	for _, r := range rows {
		label := fmt.Sprintf("= %d POINTS", r.points)
		w := surf.TextWidth(label)
		x := (s.Screen.Width - w) / 2
		drawGrid(surf, r.sprite.Frame(0), x-8*object.PixelSize, y, r.color)
		surf.DrawText(x, y, label, ColorText)
		y += 2 * lineHeight
	}

	drawCentered(surf, s.Screen, s.Screen.Height-4*lineHeight, "PRESS ENTER TO START", ColorText)
	drawCentered(surf, s.Screen, s.Screen.Height-3*lineHeight, "MOVE A/D  FIRE SPACE  PAUSE P  QUIT Q", ColorDim)
}

// drawWorld draws every live entity and projectile.
func (s *State) drawWorld(surf Surface) {
	for _, u := range s.Fleet.Units {
		if !u.Alive {
			continue
		}
		c := ColorSquid
		if u.Sprite == s.sprites.Crab {
			c = ColorCrab
		}
		drawEntity(surf, u, c)
	}
	if b := s.Bonus.Target(); b != nil {
		drawEntity(surf, b, ColorBonus)
	}
	if s.Player.Alive {
		drawEntity(surf, &s.Player.Entity, ColorPlayer)
	}
	for _, p := range s.PlayerShots {
		if p.Alive {
			surf.FillRect(p.Bounds(), ColorShot)
		}
	}
	for _, p := range s.EnemyShots {
		if p.Alive {
			surf.FillRect(p.Bounds(), ColorBolt)
		}
	}
	for _, p := range s.Debris {
		surf.FillRect(p.Bounds(), ColorDebris)
	}
}

// drawHUD draws score, high score, wave and lives along the edges.
func (s *State) drawHUD(surf Surface) {
	surf.DrawText(hudMargin, hudMargin, fmt.Sprintf("SCORE %d", s.Score), ColorText)

	hi := fmt.Sprintf("HI %d", s.HighScore)
	surf.DrawText((s.Screen.Width-surf.TextWidth(hi))/2, hudMargin, hi, ColorText)

	wave := fmt.Sprintf("WAVE %d", s.Wave)
	surf.DrawText(s.Screen.Width-surf.TextWidth(wave)-hudMargin, hudMargin, wave, ColorText)

	lives := fmt.Sprintf("LIVES %d", s.Player.Lives)
	surf.DrawText(hudMargin, s.Screen.Height-lineHeight+hudMargin/2, lives, ColorText)
}

// drawPause overlays the pause menu.
func (s *State) drawPause(surf Surface) {
	y := s.Screen.Height/2 - lineHeight
	drawCentered(surf, s.Screen, y, "PAUSED", ColorText)
	drawCentered(surf, s.Screen, y+lineHeight, "P TO RESUME  ENTER FOR TITLE", ColorDim)
}

// drawLost draws the final score screen.
func (s *State) drawLost(surf Surface) {
	y := s.Screen.Height/2 - 2*lineHeight
	drawCentered(surf, s.Screen, y, "GAME OVER", ColorText)
	drawCentered(surf, s.Screen, y+lineHeight, fmt.Sprintf("SCORE %d  WAVE %d", s.Score, s.Wave), ColorText)
	if s.newRecord {
		drawCentered(surf, s.Screen, y+2*lineHeight, "NEW HIGH SCORE", ColorBonus)
	} else {
		drawCentered(surf, s.Screen, y+2*lineHeight, fmt.Sprintf("HIGH SCORE %d", s.HighScore), ColorDim)
	}
	drawCentered(surf, s.Screen, y+4*lineHeight, "PRESS ENTER", ColorDim)
}

func drawCentered(surf Surface, screen object.Screen, y int, text string, c color.Color) {
	surf.DrawText((screen.Width-surf.TextWidth(text))/2, y, text, c)
}

func drawEntity(surf Surface, e *object.Entity, c color.Color) {
	for _, r := range e.Rects() {
		surf.FillRect(r, c)
	}
}

func drawGrid(surf Surface, g object.Grid, x, y int, c color.Color) {
	for _, r := range g.Rects(x, y, object.PixelSize) {
		surf.FillRect(r, c)
	}
}
