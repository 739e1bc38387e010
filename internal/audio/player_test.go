package audio

import (
	"sync"
	"testing"
)

// playing returns how many effects the player's mixer still holds.
func playing(p *Player) int {
	p.lock.Lock()
	defer p.lock.Unlock()
	return p.mixer.Len()
}

func TestPlayerMixesEffects(t *testing.T) {
	p := NewPlayer(SampleRate, nil)
	p.Shot()
	p.Spawn()
	p.LevelUp()
	if got := playing(p); got != 3 {
		t.Fatalf("playing = %d, want 3", got)
	}

	buf := make([][2]float64, 1024)
	for i := 0; i < 100; i++ {
		p.Streamer().Stream(buf)
	}
	if got := playing(p); got != 0 {
		t.Fatalf("playing after playback = %d, want 0", got)
	}
}

type countingLock struct {
	sync.Mutex
	locks int
}

func (l *countingLock) Lock() {
	l.Mutex.Lock()
	l.locks++
}

func TestPlayerUsesGivenLock(t *testing.T) {
	lock := &countingLock{}
	p := NewPlayer(SampleRate, lock)
	p.Shot()
	p.Spawn()
	if lock.locks != 2 {
		t.Fatalf("lock taken %d times, want 2", lock.locks)
	}
}
