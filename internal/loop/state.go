package loop

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tomz197/shootmoop/internal/config"
	"github.com/tomz197/shootmoop/internal/input"
	"github.com/tomz197/shootmoop/internal/object"
)

// Mode is the session's current screen.
type Mode int

const (
	ModeMenu       Mode = iota // Title screen with Play/Quit
	ModeGame                   // Active gameplay
	ModeTerminated             // Session is over
)

func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "menu"
	case ModeGame:
		return "game"
	case ModeTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Menu entries, indexed by Session.Cursor.
const (
	MenuPlay = iota
	MenuQuit
)

// Input is what the session consumes each tick.
type Input struct {
	Keys      input.KeySet
	MouseX    float64 // Pointer position in logical coordinates
	MouseY    float64
	MouseDown bool
	Pointer   bool // A pointer position is known
	Quit      bool // External quit signal
}

// Sounds receives game events that have an audio cue.
type Sounds interface {
	Shot()
	Spawn()
	LevelUp()
}

type nopSounds struct{}

func (nopSounds) Shot()    {}
func (nopSounds) Spawn()   {}
func (nopSounds) LevelUp() {}

// Session holds everything one player's game needs: the mode, the tick
// counter and the entity collections. It is owned by a single goroutine.
type Session struct {
	Mode    Mode
	Tick    int
	Cursor  int
	Ship    *object.Ship
	Enemies []*object.Enemy
	Bullets []*object.Bullet
	Stars   []*object.Star

	Width  int
	Height int

	sounds Sounds
	logger *log.Logger
	rng    *rand.Rand
}

// SessionOptions configures a session. Zero values pick the defaults.
type SessionOptions struct {
	Width, Height int
	Mode          Mode
	Seed          int64 // Star field seed; 0 seeds from the clock
	Sounds        Sounds
	Logger        *log.Logger
}

// NewSession creates a session with the ship centered and a fresh starfield.
func NewSession(opts SessionOptions) *Session {
	if opts.Width == 0 {
		opts.Width = config.ScreenWidth
	}
	if opts.Height == 0 {
		opts.Height = config.ScreenHeight
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if opts.Sounds == nil {
		opts.Sounds = nopSounds{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	s := &Session{
		Mode:   opts.Mode,
		Width:  opts.Width,
		Height: opts.Height,
		sounds: opts.Sounds,
		logger: opts.Logger,
		rng:    rand.New(rand.NewSource(opts.Seed)),
	}
	s.Ship = s.newShip()
	s.Stars = make([]*object.Star, config.StarCount)
	for i := range s.Stars {
		s.Stars[i] = object.NewStar(s.Width, s.Height, config.SpriteScale, s.rng)
	}
	return s
}

func (s *Session) newShip() *object.Ship {
	return object.NewShip(float64(s.Width/2), float64(s.Height/2))
}

// setMode switches mode and logs the transition.
func (s *Session) setMode(m Mode) {
	if s.Mode == m {
		return
	}
	s.logger.Debug("mode change", "from", s.Mode, "to", m, "tick", s.Tick)
	s.Mode = m
}
