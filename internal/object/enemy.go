package object

import (
	"fmt"
	"math"
)

// Enemy tuning.
const (
	EnemyLife       = 3  // Not consumed yet; enemies take no damage
	EnemyFrames     = 4  // Animation frames per cycle
	EnemyFrameTicks = 10 // Ticks each frame is shown
	EnemySpin       = -2 // Degrees per tick
	EnemyPathPeriod = 30 // Ticks per unit of path time
)

// Enemy follows a fixed path that depends only on its age.
type Enemy struct {
	Body
	Kind  string // e.g. "small"
	Frame int
	Life  int
}

// NewEnemy creates an enemy of the given kind at (x, y) on tick.
func NewEnemy(x, y float64, kind string, tick int) *Enemy {
	return &Enemy{
		Body: Body{
			X:       x,
			Y:       y,
			Sheet:   kind + "_enemy",
			Image:   kind + "_enemy_0",
			Created: tick,
		},
		Kind: kind,
		Life: EnemyLife,
	}
}

// EnemyPosition returns where an enemy of the given age is on a w x h screen:
// it weaves side to side while descending and climbing back on a slow cycle.
func EnemyPosition(age int, w, h float64) (float64, float64) {
	t := float64(age) / EnemyPathPeriod
	x := w/2 + math.Sin(t)*w/3
	y := h/2 - math.Cos(t/5)*h*0.6 + math.Cos(t*3)*h/15
	return x, y
}

// Move places the enemy on its path for the given tick.
func (e *Enemy) Move(tick int, w, h float64) {
	e.X, e.Y = EnemyPosition(e.Age(tick), w, h)
}

// Animate spins the enemy and cycles its frames.
func (e *Enemy) Animate(tick int) {
	age := e.Age(tick)
	e.Frame = floorMod(age/EnemyFrameTicks, EnemyFrames)
	e.Angle = float64(EnemySpin * age)
	e.Image = fmt.Sprintf("%s_enemy_%d", e.Kind, e.Frame)
}
