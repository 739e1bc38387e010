// Package sprite holds the read-only image bank shared by every game object.
//
// Sprites are authored as vector shapes inside a Size x Size box and looked up
// by category (sheet) and semantic name, e.g. sheet "player", name "flame_R_3".
package sprite

import (
	"errors"
	"fmt"

	"github.com/tomz197/shootmoop/internal/draw"
)

// Size is the edge length of the square every sprite is authored in.
const Size = 48

// Half is the offset from a sprite's corner to its center.
const Half = Size / 2

// ErrNotFound is returned when a sheet or sprite name is not in the bank.
var ErrNotFound = errors.New("sprite not found")

// Shape is a polygon (or a line segment when it has two points) with points
// relative to the sprite center.
type Shape struct {
	Points []draw.Point
	Filled bool
}

// Sprite is a named renderable made of shapes.
type Sprite struct {
	Name   string
	Shapes []Shape
}

// Sheet is one category of sprites.
type Sheet struct {
	name    string
	sprites map[string]*Sprite
}

// Lookup returns the sprite with the given name.
func (s *Sheet) Lookup(name string) (*Sprite, error) {
	sp, ok := s.sprites[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s/%s", ErrNotFound, s.name, name)
	}
	return sp, nil
}

func (s *Sheet) add(sp *Sprite) {
	s.sprites[sp.Name] = sp
}

// Bank maps category names to sheets. It is filled once by NewBank and only
// read afterwards, so a single Bank can back any number of sessions.
type Bank struct {
	sheets map[string]*Sheet
}

// NewBank builds the bank with every sprite the game draws.
func NewBank() *Bank {
	b := &Bank{sheets: make(map[string]*Sheet)}
	buildPlayerSheet(b.sheet(SheetPlayer))
	buildEnemySheet(b.sheet(SheetSmallEnemy), "small")
	return b
}

// Sheet names.
const (
	SheetPlayer     = "player"
	SheetSmallEnemy = "small_enemy"
)

func (b *Bank) sheet(name string) *Sheet {
	s, ok := b.sheets[name]
	if !ok {
		s = &Sheet{name: name, sprites: make(map[string]*Sprite)}
		b.sheets[name] = s
	}
	return s
}

// Sheet returns the sheet for a category.
func (b *Bank) Sheet(name string) (*Sheet, error) {
	s, ok := b.sheets[name]
	if !ok {
		return nil, fmt.Errorf("%w: sheet %s", ErrNotFound, name)
	}
	return s, nil
}

// Lookup returns a sprite by category and name.
func (b *Bank) Lookup(sheet, name string) (*Sprite, error) {
	s, err := b.Sheet(sheet)
	if err != nil {
		return nil, err
	}
	return s.Lookup(name)
}
