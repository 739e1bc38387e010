package object

import (
	"fmt"
	"math"

	"github.com/tomz197/shootmoop/internal/physics"
	"github.com/tomz197/shootmoop/internal/sprite"
)

// Ship tuning.
const (
	ShipDrag       = 0.95 // Velocity kept per tick
	StraightThrust = 2.0  // Thrust for a single-axis direction
	DiagonalThrust = 1.4  // Thrust per axis for a diagonal direction
	TurnStep       = 10.0 // Hull rotation per tick (degrees)
	AimStep        = 9.0  // Weapon rotation per tick (degrees)

	MaxLevel       = 2
	FramesPerLevel = 5   // Level frames needed to finish one upgrade
	FlameFrames    = 5   // Flame animation cycle length
	AnimateEvery   = 3   // Ticks between animation steps
	LevelUpAfter   = 200 // No level ups before this tick
	LevelUpEvery   = 60  // Ticks between level ups

	FireInterval = 12.0 // Ticks between shots at level 0
	InitialLife  = 10
)

// Ship is the player-controlled spaceship with an independently aimed weapon.
type Ship struct {
	Body

	Level      int // 0..MaxLevel, never decreases
	LevelFrame int // Upgrade animation progress, 0..Level*FramesPerLevel
	Flame      int // Flame animation frame, 0..FlameFrames-1

	FlameLeft  bool
	FlameRight bool

	WeaponAngle float64 // Degrees, independent of the hull
	DirX, DirY  float64 // Last requested direction, scaled by thrust
	AimX, AimY  float64 // Aim vector relative to the ship
	VX, VY      float64 // Velocity
	LastShot    int     // Tick of the last shot
	Life        int     // Can go negative
}

// NewShip creates a ship at the given position pointing up.
func NewShip(x, y float64) *Ship {
	return &Ship{
		Body: Body{
			X:     x,
			Y:     y,
			Sheet: sprite.SheetPlayer,
			Image: "ship_0",
		},
		FlameLeft:  true,
		FlameRight: true,
		DirX:       0,
		DirY:       -1,
		AimX:       0,
		AimY:       -100,
		Life:       InitialLife,
	}
}

// Turning reports whether the hull may rotate this tick: the current level's
// upgrade animation has to be finished first.
func (s *Ship) Turning() bool {
	return s.LevelFrame == s.Level*FramesPerLevel
}

// Move steers the ship for one tick. dx and dy are -1, 0 or 1.
func (s *Ship) Move(dx, dy int) {
	steering := dx != 0 || dy != 0
	if steering {
		n := StraightThrust
		if dx != 0 && dy != 0 {
			n = DiagonalThrust
		}
		s.DirX = n * float64(dx)
		s.DirY = n * float64(dy)
	}

	s.FlameLeft = false
	s.FlameRight = false

	target := physics.Heading(s.DirX, s.DirY)
	s.Angle = physics.Unwrap(s.Angle, target)

	if s.Turning() {
		if target > s.Angle {
			s.FlameRight = true
			s.Angle += TurnStep
			s.WeaponAngle += TurnStep
		}
		if target < s.Angle {
			s.FlameLeft = true
			s.Angle -= TurnStep
			s.WeaponAngle -= TurnStep
		}
		// Overshot and came back: already facing the target.
		if s.FlameLeft && s.FlameRight {
			s.FlameLeft = false
			s.FlameRight = false
		}

		if steering && math.Abs(target-s.Angle) < TurnStep {
			s.FlameLeft = true
			s.FlameRight = true
			s.VX += s.DirX
			s.VY += s.DirY
		}
	}

	s.VX, s.VY = physics.Damp(s.VX, s.VY, ShipDrag)
	s.X += s.VX
	s.Y += s.VY
}

// AimTo turns the weapon toward the point (x, y).
func (s *Ship) AimTo(x, y float64) {
	s.AimX = x - s.X
	s.AimY = y - s.Y

	target := physics.Heading(s.AimX, s.AimY)
	s.WeaponAngle = physics.Unwrap(s.WeaponAngle, target)
	s.WeaponAngle = physics.StepToward(s.WeaponAngle, target, AimStep)
}

// FireInterval returns the minimum ticks between shots at the current level.
func (s *Ship) FireInterval() float64 {
	return FireInterval / float64(s.Level+1)
}

// Shoot fires a bullet along the weapon angle if the fire interval has passed.
func (s *Ship) Shoot(tick int) (*Bullet, bool) {
	if float64(tick-s.LastShot) <= s.FireInterval() {
		return nil, false
	}
	s.LastShot = tick
	vx, vy := physics.Direction(s.WeaponAngle)
	return NewBullet(s.X, s.Y, vx, vy, tick), true
}

// Animate advances the upgrade and flame animations and the level.
func (s *Ship) Animate(tick int) {
	if tick%AnimateEvery == 0 {
		if s.LevelFrame < s.Level*FramesPerLevel {
			s.LevelFrame++
		}
		s.Flame++
		if s.Flame >= FlameFrames {
			s.Flame = 0
		}
	}

	if tick > LevelUpAfter && tick%LevelUpEvery == 0 && s.Level < MaxLevel {
		s.Level++
	}

	s.Image = fmt.Sprintf("ship_%d", s.LevelFrame)
}

// Draw renders hull, weapon and the active flames.
func (s *Ship) Draw(ctx DrawContext) error {
	if err := s.DrawSprite(ctx, s.Image, s.Angle); err != nil {
		return err
	}
	if err := s.DrawSprite(ctx, fmt.Sprintf("weapon_%d", s.LevelFrame), s.WeaponAngle); err != nil {
		return err
	}

	flame := s.Level*FramesPerLevel + s.Flame
	if s.FlameRight {
		if err := s.DrawSprite(ctx, fmt.Sprintf("flame_R_%d", flame), s.Angle); err != nil {
			return err
		}
	}
	if s.FlameLeft {
		if err := s.DrawSprite(ctx, fmt.Sprintf("flame_L_%d", flame), s.Angle); err != nil {
			return err
		}
	}
	return nil
}
