package input

import (
	"bufio"
	"strings"
	"testing"
	"time"
)

func TestApplyKeys(t *testing.T) {
	s := newStream()
	now := time.Now()
	s.apply([]byte("wD \r"), now)
	in := s.snapshot(now)

	for _, k := range []Key{KeyW, KeyD, KeySpace, KeyEnter} {
		if !in.Keys.Has(k) {
			t.Errorf("key %d not pressed", k)
		}
	}
	for _, k := range []Key{KeyA, KeyS, KeyEscape, KeyQuit, KeyUp} {
		if in.Keys.Has(k) {
			t.Errorf("key %d unexpectedly pressed", k)
		}
	}
}

func TestApplyArrowsAndEscape(t *testing.T) {
	s := newStream()
	now := time.Now()
	s.apply([]byte("\x1b[A\x1b[D\x1bOB"), now)
	in := s.snapshot(now)
	if !in.Keys.Has(KeyUp) || !in.Keys.Has(KeyLeft) || !in.Keys.Has(KeyDown) {
		t.Fatalf("arrows not decoded: %b", in.Keys)
	}
	if in.Keys.Has(KeyEscape) {
		t.Fatal("arrow sequence reported as escape")
	}

	// A trailing ESC may start a sequence; it counts as Escape once the
	// next read does not continue it.
	s.apply([]byte("\x1b"), now)
	if s.snapshot(now).Keys.Has(KeyEscape) {
		t.Fatal("trailing escape decoded before the next read")
	}
	s.apply(nil, now)
	if !s.snapshot(now).Keys.Has(KeyEscape) {
		t.Fatal("lone escape not decoded")
	}
}

func TestSplitMouseReport(t *testing.T) {
	s := newStream()
	now := time.Now()

	s.apply([]byte("\x1b[<35;10"), now)
	if in := s.snapshot(now); in.Keys.Has(KeyEscape) || in.Mouse.Seen {
		t.Fatalf("partial report decoded: escape=%v mouse=%+v", in.Keys.Has(KeyEscape), in.Mouse)
	}

	s.apply([]byte(";5Mw"), now)
	in := s.snapshot(now)
	if in.Keys.Has(KeyEscape) {
		t.Fatal("mouse motion reported as Escape")
	}
	if !in.Mouse.Seen || in.Mouse.Col != 10 || in.Mouse.Row != 5 {
		t.Fatalf("mouse = %+v, want (10,5)", in.Mouse)
	}
	if !in.Keys.Has(KeyW) {
		t.Fatal("byte after completed report lost")
	}
}

func TestSplitArrowSequence(t *testing.T) {
	tests := []struct {
		name  string
		first string
		rest  string
		want  Key
	}{
		{"after escape", "\x1b", "[A", KeyUp},
		{"after bracket", "\x1b[", "D", KeyLeft},
		{"ss3", "\x1bO", "B", KeyDown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newStream()
			now := time.Now()
			s.apply([]byte(tt.first), now)
			s.apply([]byte(tt.rest), now)
			in := s.snapshot(now)
			if !in.Keys.Has(tt.want) {
				t.Fatalf("key %d not decoded: %b", tt.want, in.Keys)
			}
			if in.Keys.Has(KeyEscape) || in.Keys.Has(KeyA) || in.Keys.Has(KeyD) {
				t.Fatalf("sequence bytes leaked as keys: %b", in.Keys)
			}
		})
	}
}

func TestUnfinishedSequenceFallsBackToKeys(t *testing.T) {
	s := newStream()
	now := time.Now()
	s.apply([]byte("\x1b[<35"), now)
	s.apply(nil, now)
	if in := s.snapshot(now); !in.Keys.Has(KeyEscape) || in.Mouse.Seen {
		t.Fatalf("escape=%v mouse=%+v, want Escape and no mouse", in.Keys.Has(KeyEscape), in.Mouse)
	}

	s.apply([]byte("s"), now)
	if !s.snapshot(now).Keys.Has(KeyS) {
		t.Fatal("stream stuck after an unfinished sequence")
	}
}

func TestKeysExpire(t *testing.T) {
	s := newStream()
	now := time.Now()
	s.apply([]byte("a"), now)
	if !s.snapshot(now.Add(keyHoldDuration / 2)).Keys.Has(KeyA) {
		t.Fatal("key released before hold duration")
	}
	if s.snapshot(now.Add(keyHoldDuration)).Keys.Has(KeyA) {
		t.Fatal("key still held after hold duration")
	}

	s.apply([]byte("a"), now)
	s.Reset()
	if s.snapshot(now).Keys.Has(KeyA) {
		t.Fatal("key held after Reset")
	}
}

func TestApplyMouse(t *testing.T) {
	s := newStream()
	now := time.Now()

	s.apply([]byte("\x1b[<35;10;5M"), now) // motion, no button
	in := s.snapshot(now)
	if !in.Mouse.Seen || in.Mouse.Col != 10 || in.Mouse.Row != 5 || in.Mouse.Down {
		t.Fatalf("motion = %+v, want (10,5) up", in.Mouse)
	}

	s.apply([]byte("\x1b[<0;12;6M"), now)
	if m := s.snapshot(now).Mouse; !m.Down || m.Col != 12 || m.Row != 6 {
		t.Fatalf("press = %+v, want (12,6) down", m)
	}

	s.apply([]byte("\x1b[<32;14;7M"), now) // drag
	if m := s.snapshot(now).Mouse; !m.Down || m.Col != 14 {
		t.Fatalf("drag = %+v, want down at col 14", m)
	}

	s.apply([]byte("\x1b[<0;14;7mw"), now)
	in = s.snapshot(now)
	if in.Mouse.Down {
		t.Fatal("release not decoded")
	}
	if !in.Keys.Has(KeyW) {
		t.Fatal("byte after mouse report lost")
	}

	s.apply([]byte("\x1b[<64;1;1M"), now) // wheel
	if m := s.snapshot(now).Mouse; m.Down || m.Col != 1 {
		t.Fatalf("wheel = %+v, want moved but not down", m)
	}
}

func TestQuit(t *testing.T) {
	if (Input{}).Quit() {
		t.Fatal("empty input quits")
	}
	if !(Input{Keys: KeySet(0).With(KeyQuit)}).Quit() {
		t.Fatal("quit key ignored")
	}
	if !(Input{Closed: true}).Quit() {
		t.Fatal("closed stream ignored")
	}
}

func TestReadInputReportsClosedStream(t *testing.T) {
	s := StartStream(bufio.NewReader(strings.NewReader("d")))
	deadline := time.Now().Add(time.Second)
	var in Input
	for time.Now().Before(deadline) {
		in = ReadInput(s)
		if in.Closed {
			break
		}
		time.Sleep(time.Millisecond)
	}
	if !in.Closed {
		t.Fatal("stream never reported closed")
	}
}
