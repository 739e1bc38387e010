package config

import "time"

// Screen - logical playfield in sprite units.
// Actual rendering scales to fit terminal size.
const (
	ScreenWidth  = 1500
	ScreenHeight = 900
	SpriteScale  = 3.0 // Uniform scale applied to every 48x48 sprite
)

// Timing
const (
	TickRate = 30 // Simulation ticks per second
	TickTime = time.Second / TickRate
)

// Spawning and attrition, both evaluated every SpawnInterval ticks while playing.
const (
	SpawnInterval   = 50
	MaxEnemies      = 6
	EnemySpawnY     = -50
	AttritionAmount = 50
)

// Starfield
const (
	StarCount = 100
)

// Sessions
const (
	IdleTimeout = 5 * time.Minute // Remote sessions end after this long without input
)
