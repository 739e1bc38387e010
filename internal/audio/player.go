package audio

import (
	"sync"

	"github.com/gopxl/beep"
)

// Player mixes sound effects triggered by the game. Its mixer is the single
// streamer handed to the output device.
type Player struct {
	lock  sync.Locker
	sr    beep.SampleRate
	mixer *beep.Mixer
}

// NewPlayer creates a player. lock guards the mixer against the output
// device's reader (speaker.Lock/Unlock); nil uses a private mutex.
func NewPlayer(sr beep.SampleRate, lock sync.Locker) *Player {
	if lock == nil {
		lock = &sync.Mutex{}
	}
	return &Player{
		lock:  lock,
		sr:    sr,
		mixer: &beep.Mixer{},
	}
}

// Streamer returns the mixer to plug into the output device.
func (p *Player) Streamer() beep.Streamer {
	return p.mixer
}

// Shot plays the fire effect.
func (p *Player) Shot() {
	p.add(NewShotEffect(p.sr))
}

// Spawn plays the enemy arrival effect.
func (p *Player) Spawn() {
	p.add(NewSpawnEffect(p.sr))
}

// LevelUp plays the upgrade effect.
func (p *Player) LevelUp() {
	p.add(NewLevelUpEffect(p.sr))
}

func (p *Player) add(s beep.Streamer) {
	p.lock.Lock()
	defer p.lock.Unlock()
	p.mixer.Add(s)
}
