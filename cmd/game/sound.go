package main

import (
	"fmt"
	"time"

	"github.com/gopxl/beep/speaker"
	"github.com/tomz197/shootmoop/internal/audio"
)

// speakerLock guards streamers the speaker is currently reading.
type speakerLock struct{}

func (speakerLock) Lock()   { speaker.Lock() }
func (speakerLock) Unlock() { speaker.Unlock() }

// startSound opens the audio device and returns a player feeding it.
func startSound() (*audio.Player, error) {
	sr := audio.SampleRate
	if err := speaker.Init(sr, sr.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	player := audio.NewPlayer(sr, speakerLock{})
	speaker.Play(player.Streamer())
	return player, nil
}
