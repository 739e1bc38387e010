package object

import (
	"fmt"

	"github.com/tomz197/shootmoop/internal/sprite"
)

// Bullet tuning.
const (
	BulletSpeed      = 15.0 // Distance per tick along the unit velocity
	BulletTTL        = 100  // Ticks before a bullet dies
	BulletFrames     = 4
	SpawnOffsetSteps = 3 // Moves applied at creation to clear the ship sprite
)

// Bullet travels in a straight line and dies after BulletTTL ticks.
type Bullet struct {
	Body
	VX, VY float64 // Unit direction
	Frame  int
}

// NewBullet creates a bullet at (x, y) heading along (vx, vy) on tick. The
// bullet is advanced SpawnOffsetSteps moves (45 units) so it starts clear of
// the ship.
func NewBullet(x, y, vx, vy float64, tick int) *Bullet {
	b := &Bullet{
		Body: Body{
			X:       x,
			Y:       y,
			Sheet:   sprite.SheetPlayer,
			Image:   "bullet_0",
			Created: tick,
		},
		VX: vx,
		VY: vy,
	}
	for range SpawnOffsetSteps {
		b.Move()
	}
	return b
}

// Move advances the bullet by one tick.
func (b *Bullet) Move() {
	b.X += b.VX * BulletSpeed
	b.Y += b.VY * BulletSpeed
}

// Animate cycles frames and kills the bullet once it is older than BulletTTL.
func (b *Bullet) Animate(tick int) {
	age := b.Age(tick)
	b.Frame = floorMod(age, BulletFrames)
	b.Image = fmt.Sprintf("bullet_%d", b.Frame)
	if age > BulletTTL {
		b.Kill()
	}
}
