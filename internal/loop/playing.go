package loop

import (
	"github.com/tomz197/shootmoop/internal/config"
	"github.com/tomz197/shootmoop/internal/input"
	"github.com/tomz197/shootmoop/internal/object"
)

// Update advances the session by one tick: stars, mode logic, then enemies,
// the ship and bullets, dropping dead entities in the same pass.
func (s *Session) Update(in Input) {
	if s.Mode == ModeTerminated {
		return
	}
	s.Tick++

	if in.Quit {
		s.setMode(ModeTerminated)
		return
	}

	for _, star := range s.Stars {
		star.Move(s.Tick)
	}

	if s.Mode == ModeMenu {
		s.updateMenu(in)
		if s.Mode == ModeTerminated {
			return
		}
	}

	var dx, dy int
	if s.Mode == ModeGame {
		dx, dy = s.updateGame(in)
	}

	s.updateEntities(dx, dy)
}

// updateMenu moves the cursor and handles confirmation.
func (s *Session) updateMenu(in Input) {
	if in.Keys.Has(input.KeyUp) {
		s.Cursor = MenuPlay
	}
	if in.Keys.Has(input.KeyDown) {
		s.Cursor = MenuQuit
	}

	if in.Keys.Has(input.KeyEnter) || in.Keys.Has(input.KeySpace) {
		if s.Cursor == MenuQuit {
			s.setMode(ModeTerminated)
			return
		}
		s.startGame()
	}
}

// startGame enters play. A ship with no life left starts a fresh round;
// otherwise the paused round resumes.
func (s *Session) startGame() {
	if s.Ship.Life <= 0 {
		s.Ship = s.newShip()
		clear(s.Enemies)
		s.Enemies = s.Enemies[:0]
		clear(s.Bullets)
		s.Bullets = s.Bullets[:0]
		s.logger.Debug("new round", "tick", s.Tick)
	}
	s.setMode(ModeGame)
}

// updateGame applies gameplay input and the timed rules, returning the
// requested steering direction.
func (s *Session) updateGame(in Input) (dx, dy int) {
	if in.Keys.Has(input.KeyEscape) {
		s.setMode(ModeMenu)
	}

	if in.Keys.Has(input.KeyW) || in.Keys.Has(input.KeyUp) {
		dy--
	}
	if in.Keys.Has(input.KeyS) || in.Keys.Has(input.KeyDown) {
		dy++
	}
	if in.Keys.Has(input.KeyA) || in.Keys.Has(input.KeyLeft) {
		dx--
	}
	if in.Keys.Has(input.KeyD) || in.Keys.Has(input.KeyRight) {
		dx++
	}

	if in.Pointer {
		s.Ship.AimTo(in.MouseX, in.MouseY)
	}

	if in.MouseDown || in.Keys.Has(input.KeySpace) {
		if b, ok := s.Ship.Shoot(s.Tick); ok {
			s.Bullets = append(s.Bullets, b)
			s.sounds.Shot()
		}
	}

	if s.Tick%config.SpawnInterval == 0 {
		if len(s.Enemies) < config.MaxEnemies {
			e := object.NewEnemy(float64(s.Width/2), config.EnemySpawnY, "small", s.Tick)
			s.Enemies = append(s.Enemies, e)
			s.sounds.Spawn()
		}
		s.Ship.Life -= config.AttritionAmount
	}

	if s.Ship.Life <= 0 {
		s.setMode(ModeMenu)
	}

	return dx, dy
}

// updateEntities moves and animates every entity in processing order.
func (s *Session) updateEntities(dx, dy int) {
	w, h := float64(s.Width), float64(s.Height)

	s.Enemies = advance(s.Enemies, func(e *object.Enemy) {
		e.Move(s.Tick, w, h)
		e.Animate(s.Tick)
	})

	level := s.Ship.Level
	s.Ship.Move(dx, dy)
	s.Ship.Animate(s.Tick)
	if s.Ship.Level > level {
		s.logger.Debug("level up", "level", s.Ship.Level, "tick", s.Tick)
		s.sounds.LevelUp()
	}

	s.Bullets = advance(s.Bullets, func(b *object.Bullet) {
		b.Move()
		b.Animate(s.Tick)
	})
}

// advance runs step on every item and keeps the ones still alive,
// reusing the backing array.
func advance[T object.Entity](items []T, step func(T)) []T {
	kept := items[:0]
	for _, item := range items {
		step(item)
		if item.Alive() {
			kept = append(kept, item)
		}
	}
	clear(items[len(kept):])
	return kept
}
