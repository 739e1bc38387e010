package object

import "math/rand"

// Star tuning.
const (
	StarSizeFactor   = 1.2   // Max size relative to the sprite scale
	StarSpeedFactor  = 2.0   // Downward speed per unit of size
	StarRespawnAbove = 100.0 // Stars may respawn this far above the screen
	StarRespawnSpan  = 100.0 // Max ticks added to the respawn threshold
)

// Star is a background dot scrolling down the screen. Stars are recycled in
// place: once the tick passes RespawnAt the star is moved somewhere random.
type Star struct {
	X, Y      float64
	Size      float64
	RespawnAt float64 // Tick after which the star is resampled

	width, height float64
	scale         float64
	rng           *rand.Rand
}

// NewStar creates a star for a w x h screen. It resamples on its first move.
func NewStar(w, h int, scale float64, rng *rand.Rand) *Star {
	return &Star{
		Size:   1,
		width:  float64(w),
		height: float64(h),
		scale:  scale,
		rng:    rng,
	}
}

// Move scrolls the star and resamples it when its threshold has passed.
func (s *Star) Move(tick int) {
	s.Y += s.Size * StarSpeedFactor
	if float64(tick) > s.RespawnAt {
		s.Respawn()
	}
}

// Respawn moves the star to a random spot with a random size and pushes the
// respawn threshold further out by a random amount in (0, StarRespawnSpan].
func (s *Star) Respawn() {
	s.X = float64(int(s.rng.Float64() * s.width))
	s.Y = float64(int(s.rng.Float64()*(s.height+StarRespawnAbove))) - StarRespawnAbove
	s.Size = s.rng.Float64() * s.scale * StarSizeFactor
	s.RespawnAt += (1 - s.rng.Float64()) * StarRespawnSpan
}

// Draw renders the star as a filled square.
func (s *Star) Draw(ctx DrawContext) error {
	ctx.Canvas.FillRect(s.X, s.Y, s.Size, s.Size)
	return nil
}
