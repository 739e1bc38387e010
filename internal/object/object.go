// Package object implements the game entities: the player ship, enemies,
// bullets and the background stars.
package object

import (
	"fmt"
	"math"

	"github.com/tomz197/shootmoop/internal/draw"
	"github.com/tomz197/shootmoop/internal/physics"
	"github.com/tomz197/shootmoop/internal/sprite"
)

// DrawContext provides drawing resources for objects.
type DrawContext struct {
	Canvas *draw.Canvas // Scaled half-block canvas (logical coordinates)
	Bank   *sprite.Bank // Shared read-only sprites
	Scale  float64      // Uniform sprite scale
}

// Entity is an animated, drawable game object owned by a session collection.
type Entity interface {
	// Animate updates animation-dependent state for the given tick.
	Animate(tick int)

	// Draw draws the entity onto ctx.Canvas.
	Draw(ctx DrawContext) error

	// Alive reports whether the entity stays in its collection.
	Alive() bool
}

// Rect is an axis-aligned rectangle in logical coordinates.
type Rect struct {
	X, Y, W, H float64
}

// Center returns the rectangle's center point.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Body is the state every entity shares.
type Body struct {
	X, Y    float64 // Position (sprite center)
	Sheet   string  // Sprite category in the bank
	Image   string  // Current sprite name
	Angle   float64 // Facing in degrees, unbounded
	Created int     // Tick the entity was created on
	dead    bool
}

// Alive reports whether the entity is still live. Once Kill is called it never
// becomes live again.
func (b *Body) Alive() bool {
	return !b.dead
}

// Kill marks the entity for removal on the next collection pass.
func (b *Body) Kill() {
	b.dead = true
}

// Animate is a no-op; entities with animation override it.
func (b *Body) Animate(int) {}

// Age returns the number of ticks since the entity was created.
func (b *Body) Age(tick int) int {
	return tick - b.Created
}

// Draw draws the current image at the body angle.
func (b *Body) Draw(ctx DrawContext) error {
	return b.DrawSprite(ctx, b.Image, b.Angle)
}

// Transform returns the bounding rect of the body's sprite rotated by angle
// degrees and scaled by scale. The unrotated sprite's origin sits half a
// sprite (24*scale) up and left of the position, and rotation keeps the
// sprite's center, so the rect is centered on (X, Y).
func (b *Body) Transform(angle, scale float64) Rect {
	size := sprite.Size * scale
	originX := b.X - sprite.Half*scale
	originY := b.Y - sprite.Half*scale

	sin, cos := math.Sincos(angle * math.Pi / 180)
	rotated := size * (math.Abs(cos) + math.Abs(sin))

	cx := originX + size/2
	cy := originY + size/2
	return Rect{X: cx - rotated/2, Y: cy - rotated/2, W: rotated, H: rotated}
}

// DrawSprite draws the named sprite from the body's sheet, rotated by angle
// degrees around the body position.
func (b *Body) DrawSprite(ctx DrawContext, name string, angle float64) error {
	sp, err := ctx.Bank.Lookup(b.Sheet, name)
	if err != nil {
		return fmt.Errorf("draw %s: %w", name, err)
	}

	cx, cy := b.Transform(angle, ctx.Scale).Center()
	for _, shape := range sp.Shapes {
		points := ctx.Canvas.BorrowPoints(len(shape.Points))
		for i, p := range shape.Points {
			rx, ry := physics.RotatePoint(p.X*ctx.Scale, p.Y*ctx.Scale, angle)
			points[i] = draw.Point{X: cx + rx, Y: cy + ry}
		}
		if len(points) == 2 {
			ctx.Canvas.DrawLine(points[0], points[1])
			continue
		}
		ctx.Canvas.DrawPolygon(points, shape.Filled)
	}
	return nil
}

// floorMod returns a mod n in [0, n).
func floorMod(a, n int) int {
	return ((a % n) + n) % n
}
