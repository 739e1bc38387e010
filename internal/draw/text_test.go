package draw

import (
	"bytes"
	"testing"
)

func TestTextColumn(t *testing.T) {
	tests := []struct {
		align Align
		want  int
	}{
		{AlignLeft, 40},
		{AlignCenter, 38},
		{AlignRight, 36},
	}
	for _, tt := range tests {
		if got := TextColumn(40, "Play", tt.align); got != tt.want {
			t.Errorf("TextColumn(align=%d) = %d, want %d", tt.align, got, tt.want)
		}
	}
	if got := TextColumn(2, "Shoot Moop", AlignRight); got != 1 {
		t.Errorf("TextColumn clamps to 1, got %d", got)
	}
}

func TestWriteText(t *testing.T) {
	var out bytes.Buffer
	cw := NewChunkWriter(&out)
	WriteText(cw, 10, 3, "Quit", AlignCenter, StyleReverse)
	WriteText(cw, 1, 1, "", AlignLeft, StylePlain)
	if err := cw.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	want := "\033[3;8H\033[7mQuit\033[0m"
	if out.String() != want {
		t.Fatalf("output = %q, want %q", out.String(), want)
	}
}
