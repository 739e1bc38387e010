// Package input turns the raw terminal byte stream into per-tick key and mouse state.
package input

import (
	"bufio"
	"time"
)

// keyHoldDuration is how long a key is considered "held" after its last press.
// Terminals only report key repeats, so this bridges the gap between them.
const keyHoldDuration = 80 * time.Millisecond

// Key identifies a key the game reacts to.
type Key uint

const (
	KeyUp Key = iota
	KeyDown
	KeyLeft
	KeyRight
	KeyW
	KeyA
	KeyS
	KeyD
	KeyEscape
	KeyEnter
	KeySpace
	KeyQuit
	keyCount
)

// KeySet is the set of keys pressed this tick.
type KeySet uint32

// Has reports whether k is in the set.
func (ks KeySet) Has(k Key) bool {
	return ks&(1<<k) != 0
}

// With returns the set with k added.
func (ks KeySet) With(k Key) KeySet {
	return ks | 1<<k
}

// Mouse is the last reported pointer state. Col and Row are 1-based terminal
// cells and are only meaningful once Seen is true.
type Mouse struct {
	Col, Row int
	Down     bool
	Seen     bool
}

// Input represents the current frame's input state.
type Input struct {
	Keys    KeySet
	Mouse   Mouse
	Closed  bool   // The input stream ended (client disconnected)
	Pressed []byte // Raw bytes received this frame
}

// Quit reports whether the user asked to leave or the stream ended.
func (in Input) Quit() bool {
	return in.Closed || in.Keys.Has(KeyQuit)
}

// Stream delivers input bytes via a channel and tracks key state for combinations.
type Stream struct {
	ch      chan byte
	pressed [keyCount]time.Time
	mouse   Mouse
	closed  bool
	pending []byte // Partial escape sequence from the previous read
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r *bufio.Reader) *Stream {
	s := newStream()
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

func newStream() *Stream {
	return &Stream{ch: make(chan byte, 128)}
}

// ReadInput drains all available bytes from the stream (non-blocking) and
// returns the keys held at this moment plus the latest mouse state.
func ReadInput(s *Stream) Input {
	now := time.Now()
	var buf []byte

drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	s.apply(buf, now)
	in := s.snapshot(now)
	in.Pressed = buf
	return in
}

// Reset forgets held keys, so a key that started a screen change does not
// also act on the next screen.
func (s *Stream) Reset() {
	s.pressed = [keyCount]time.Time{}
}

// apply parses collected bytes and updates key timestamps and mouse state.
// An escape sequence cut off at the end of buf is held back and completed
// by the next call; if that call does not complete it, its bytes are read
// as plain keys, so a lone ESC still reports Escape one frame later.
func (s *Stream) apply(buf []byte, now time.Time) {
	carried := len(s.pending)
	if carried > 0 {
		buf = append(s.pending, buf...)
		s.pending = nil
	}

	for i := 0; i < len(buf); i++ {
		b := buf[i]

		if b == '\x1b' {
			n := s.applySequence(buf[i:], now)
			if n > 0 {
				i += n - 1
				continue
			}
			if n == incomplete && i >= carried && len(buf)-i <= maxPending {
				s.pending = append([]byte(nil), buf[i:]...)
				return
			}
		}

		if k, ok := keyForByte(b); ok {
			s.pressed[k] = now
		}
	}
}

// incomplete is returned by the sequence parsers when seq ends before the
// sequence does.
const incomplete = -1

// maxPending bounds how many bytes of a partial sequence are carried over.
const maxPending = 32

// applySequence handles a CSI/SS3 sequence at the start of seq and returns
// how many bytes it consumed, 0 if it is not one we know, or incomplete.
func (s *Stream) applySequence(seq []byte, now time.Time) int {
	if len(seq) < 2 {
		return incomplete
	}
	if seq[1] != '[' && seq[1] != 'O' {
		return 0
	}
	if len(seq) < 3 {
		return incomplete
	}
	switch seq[2] {
	case 'A':
		s.pressed[KeyUp] = now
		return 3
	case 'B':
		s.pressed[KeyDown] = now
		return 3
	case 'C':
		s.pressed[KeyRight] = now
		return 3
	case 'D':
		s.pressed[KeyLeft] = now
		return 3
	case '<':
		if seq[1] != '[' {
			return 0
		}
		return s.applyMouse(seq)
	}
	return 0
}

// applyMouse parses an SGR mouse report: ESC [ < button ; col ; row (M|m).
func (s *Stream) applyMouse(seq []byte) int {
	var fields [3]int
	field := 0
	for i := 3; i < len(seq); i++ {
		c := seq[i]
		switch {
		case c >= '0' && c <= '9':
			fields[field] = fields[field]*10 + int(c-'0')
		case c == ';':
			field++
			if field >= len(fields) {
				return 0
			}
		case (c == 'M' || c == 'm') && field == 2:
			button := fields[0]
			s.mouse.Col = fields[1]
			s.mouse.Row = fields[2]
			s.mouse.Seen = true
			if button&64 == 0 && button&3 == 0 {
				// Left button: press or drag reports 'M', release reports 'm'.
				s.mouse.Down = c == 'M'
			} else if button&32 != 0 && button&3 == 3 {
				// Motion with no button held.
				s.mouse.Down = false
			}
			return i + 1
		default:
			return 0
		}
	}
	return incomplete
}

// snapshot builds the input state: keys are pressed if seen within the hold duration.
func (s *Stream) snapshot(now time.Time) Input {
	var keys KeySet
	for k := Key(0); k < keyCount; k++ {
		if !s.pressed[k].IsZero() && now.Sub(s.pressed[k]) < keyHoldDuration {
			keys = keys.With(k)
		}
	}
	return Input{Keys: keys, Mouse: s.mouse, Closed: s.closed}
}

// keyForByte maps a single byte to the key it stands for.
func keyForByte(b byte) (Key, bool) {
	switch b {
	case 'q', 'Q', '\x03':
		return KeyQuit, true
	case 'w', 'W':
		return KeyW, true
	case 'a', 'A':
		return KeyA, true
	case 's', 'S':
		return KeyS, true
	case 'd', 'D':
		return KeyD, true
	case ' ':
		return KeySpace, true
	case '\n', '\r':
		return KeyEnter, true
	case '\x1b':
		return KeyEscape, true
	}
	return 0, false
}
