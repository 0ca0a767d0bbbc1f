package loop

import (
	"image/color"
	"time"
)

// Game configuration constants.
// Entity tuning lives next to the entities in the object package.

// Frame timing
const (
	TargetFPS       = 60
	TargetFrameTime = time.Second / TargetFPS
)

// Enemy fire
const (
	EnemyFireInterval = time.Second
)

// Palette. The terminal renderer is monochrome and ignores it.
var (
	ColorText   = color.RGBA{240, 240, 240, 255}
	ColorDim    = color.RGBA{140, 140, 160, 255}
	ColorPlayer = color.RGBA{80, 220, 100, 255}
	ColorSquid  = color.RGBA{230, 230, 230, 255}
	ColorCrab   = color.RGBA{90, 200, 230, 255}
	ColorBonus  = color.RGBA{230, 60, 60, 255}
	ColorShot   = color.RGBA{250, 220, 80, 255}
	ColorBolt   = color.RGBA{250, 120, 60, 255}
	ColorDebris = color.RGBA{200, 200, 120, 255}
)
