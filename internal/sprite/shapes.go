package sprite

import (
	"fmt"
	"math"

	"github.com/tomz197/shootmoop/internal/draw"
)

// Animation extents. Level frames run 0..MaxLevelFrame, flames 0..MaxFlame.
const (
	MaxLevelFrame = 10
	MaxFlame      = 14
	BulletFrames  = 4
	EnemyFrames   = 4
)

func buildPlayerSheet(s *Sheet) {
	for f := 0; f <= MaxLevelFrame; f++ {
		s.add(shipSprite(f))
		s.add(weaponSprite(f))
	}
	for i := 0; i <= MaxFlame; i++ {
		s.add(flameSprite(fmt.Sprintf("flame_R_%d", i), i, 1))
		s.add(flameSprite(fmt.Sprintf("flame_L_%d", i), i, -1))
	}
	for k := 0; k < BulletFrames; k++ {
		s.add(bulletSprite(k))
	}
}

func buildEnemySheet(s *Sheet, kind string) {
	for k := 0; k < EnemyFrames; k++ {
		s.add(enemySprite(kind, k))
	}
}

// shipSprite grows the hull with the level frame.
func shipSprite(f int) *Sprite {
	g := float64(f)
	hull := []draw.Point{
		{X: 0, Y: -12 - g},
		{X: 8 + g*0.6, Y: 10},
		{X: 0, Y: 6},
		{X: -8 - g*0.6, Y: 10},
	}
	shapes := []Shape{{Points: hull, Filled: true}}
	if f >= 5 {
		// Side pods once the first upgrade is complete.
		for _, side := range []float64{-1, 1} {
			shapes = append(shapes, Shape{Points: []draw.Point{
				{X: side * (10 + g*0.4), Y: 0},
				{X: side * (14 + g*0.4), Y: 8},
				{X: side * (8 + g*0.4), Y: 8},
			}})
		}
	}
	return &Sprite{Name: fmt.Sprintf("ship_%d", f), Shapes: shapes}
}

func weaponSprite(f int) *Sprite {
	length := 10 + float64(f)
	shapes := []Shape{{Points: []draw.Point{{X: 0, Y: 0}, {X: 0, Y: -length}}}}
	if f >= 10 {
		shapes = append(shapes,
			Shape{Points: []draw.Point{{X: -2, Y: 0}, {X: -2, Y: -length + 4}}},
			Shape{Points: []draw.Point{{X: 2, Y: 0}, {X: 2, Y: -length + 4}}},
		)
	}
	return &Sprite{Name: fmt.Sprintf("weapon_%d", f), Shapes: shapes}
}

// flameSprite draws an exhaust plume behind one engine; side is 1 for the
// right engine and -1 for the left one.
func flameSprite(name string, i int, side float64) *Sprite {
	level := float64(i / 5)
	phase := float64(i % 5)
	length := 3 + phase*1.5 + level*2
	x := side * (5 + level)
	return &Sprite{Name: name, Shapes: []Shape{{
		Points: []draw.Point{
			{X: x - 2, Y: 10},
			{X: x + 2, Y: 10},
			{X: x, Y: 10 + length},
		},
		Filled: true,
	}}}
}

func bulletSprite(k int) *Sprite {
	r := 2 + float64(k%2)
	return &Sprite{Name: fmt.Sprintf("bullet_%d", k), Shapes: []Shape{{
		Points: []draw.Point{{X: 0, Y: -r}, {X: r, Y: 0}, {X: 0, Y: r}, {X: -r, Y: 0}},
		Filled: true,
	}}}
}

// enemySprite is a spiked star whose spikes pulse across frames.
func enemySprite(kind string, k int) *Sprite {
	const spikes = 6
	outer := 12 + float64(k%2)*3
	inner := 6 + float64(k/2)
	points := make([]draw.Point, 0, spikes*2)
	for i := 0; i < spikes*2; i++ {
		r := inner
		if i%2 == 0 {
			r = outer
		}
		a := float64(i) * math.Pi / spikes
		points = append(points, draw.Point{X: math.Sin(a) * r, Y: -math.Cos(a) * r})
	}
	return &Sprite{Name: fmt.Sprintf("%s_enemy_%d", kind, k), Shapes: []Shape{{Points: points}}}
}
