package object

// Player tuning.
const (
	PlayerSpeed  = 5   // Pixels per frame while a move key is held
	PlayerY      = 550 // Top edge of the ship
	InitialLives = 3
)

// Player is the ship controlled by the user.
type Player struct {
	Entity
	Lives int
}

// NewPlayer creates a ship centred at the bottom of the screen.
func NewPlayer(sprite *SpriteSet, screen Screen) *Player {
	p := &Player{Entity: Entity{Sprite: sprite}}
	p.Reset(screen)
	return p
}

// Reset restores starting position and lives.
func (p *Player) Reset(screen Screen) {
	w := p.Bounds().W
	p.X = (screen.Width - w) / 2
	p.Y = PlayerY
	p.Alive = true
	p.Lives = InitialLives
	p.SetFrame(0)
}

// Update moves the ship according to the held direction keys and keeps it
// inside the screen.
func (p *Player) Update(in Input, screen Screen) {
	if in.Left && !in.Right {
		p.X -= PlayerSpeed
	}
	if in.Right && !in.Left {
		p.X += PlayerSpeed
	}
	maxX := screen.Width - p.Bounds().W
	p.X = min(max(p.X, 0), maxX)
}

// Muzzle returns the point player shots are fired from: the top centre.
func (p *Player) Muzzle() (x, y int) {
	b := p.Bounds()
	return b.X + b.W/2, b.Y
}

// Hit removes one life and reports whether any remain.
func (p *Player) Hit() bool {
	if p.Lives > 0 {
		p.Lives--
	}
	return p.Lives > 0
}
