package object

import (
	"errors"
	"math"
	"testing"

	"github.com/tomz197/shootmoop/internal/draw"
	"github.com/tomz197/shootmoop/internal/sprite"
)

func TestTransformCenteredOnPosition(t *testing.T) {
	b := Body{X: 300, Y: 200}
	r := b.Transform(0, 3)
	if r.X != 300-72 || r.Y != 200-72 || r.W != 144 || r.H != 144 {
		t.Fatalf("rect = %+v, want 144x144 at (228, 128)", r)
	}

	r = b.Transform(45, 3)
	cx, cy := r.Center()
	if math.Abs(cx-300) > 1e-9 || math.Abs(cy-200) > 1e-9 {
		t.Fatalf("rotated center = (%v, %v), want (300, 200)", cx, cy)
	}
	if want := 144 * math.Sqrt2; math.Abs(r.W-want) > 1e-9 {
		t.Fatalf("rotated width = %v, want %v", r.W, want)
	}
}

func newDrawContext() DrawContext {
	return DrawContext{
		Canvas: draw.NewScaledCanvas(150, 45, 1500, 900),
		Bank:   sprite.NewBank(),
		Scale:  3,
	}
}

func TestDrawEntities(t *testing.T) {
	ctx := newDrawContext()
	s := NewShip(750, 450)
	s.Level = 2
	s.LevelFrame = 10
	s.Flame = 4
	entities := []Entity{
		s,
		NewEnemy(300, 300, "small", 0),
		NewBullet(500, 500, 0, -1, 0),
	}
	for _, e := range entities {
		e.Animate(3)
		if err := e.Draw(ctx); err != nil {
			t.Fatalf("Draw(%T): %v", e, err)
		}
	}
	if !ctx.Canvas.Pixel(75, 45) {
		t.Fatal("ship hull not drawn at its center")
	}
}

func TestDrawMissingSprite(t *testing.T) {
	ctx := newDrawContext()
	e := NewEnemy(300, 300, "boss", 0)
	if err := e.Draw(ctx); !errors.Is(err, sprite.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
