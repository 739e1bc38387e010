package draw

import (
	"bytes"
	"strings"
	"testing"
)

func TestSetFloatScales(t *testing.T) {
	c := NewScaledCanvas(150, 45, 1500, 900)
	c.SetFloat(750, 450)
	if !c.Pixel(75, 45) {
		t.Fatal("expected logical (750, 450) to land on pixel (75, 45)")
	}
	c.Clear()
	if c.Pixel(75, 45) {
		t.Fatal("pixel still set after Clear")
	}
}

func TestSetFloatOutsideIsIgnored(t *testing.T) {
	c := NewScaledCanvas(10, 5, 100, 100)
	c.SetFloat(-50, -50)
	c.SetFloat(500, 500)
	var buf bytes.Buffer
	if err := c.Render(&buf); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected empty render, got %q", buf.String())
	}
}

func TestFillRectLightsAtLeastOnePixel(t *testing.T) {
	c := NewScaledCanvas(100, 50, 100, 100)
	c.FillRect(10, 10, 0.1, 0.1)
	if !c.Pixel(10, 10) {
		t.Fatal("tiny rect should light its corner pixel")
	}
	c.FillRect(20, 20, 3, 2)
	for x := 20; x < 23; x++ {
		for y := 20; y < 22; y++ {
			if !c.Pixel(x, y) {
				t.Fatalf("pixel (%d, %d) not filled", x, y)
			}
		}
	}
	if c.Pixel(23, 20) {
		t.Fatal("rect overflowed to the right")
	}
}

func TestDrawPolygonFilled(t *testing.T) {
	c := NewScaledCanvas(40, 20, 40, 40)
	c.DrawPolygon([]Point{{X: 5, Y: 5}, {X: 30, Y: 5}, {X: 30, Y: 30}, {X: 5, Y: 30}}, true)
	if !c.Pixel(15, 15) {
		t.Fatal("interior not filled")
	}
	if c.Pixel(35, 35) {
		t.Fatal("exterior filled")
	}
}

func TestDrawPolygonNeedsThreePoints(t *testing.T) {
	c := NewScaledCanvas(40, 20, 40, 40)
	c.DrawPolygon([]Point{{X: 5, Y: 5}, {X: 30, Y: 5}}, true)
	if c.Pixel(5, 5) {
		t.Fatal("two-point polygon should not draw")
	}
}

func TestRenderHalfBlocks(t *testing.T) {
	c := NewScaledCanvas(4, 2, 4, 4)
	c.setPixel(0, 0) // top half of cell (1,1)
	c.setPixel(1, 1) // bottom half of cell (2,1)
	c.setPixel(2, 0)
	c.setPixel(2, 1) // full cell (3,1)

	var buf bytes.Buffer
	if err := c.Render(&buf); err != nil {
		t.Fatalf("Render: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"\033[1;1H▀", "\033[1;2H▄", "\033[1;3H█"} {
		if !strings.Contains(out, want) {
			t.Errorf("render output missing %q in %q", want, out)
		}
	}
}

func TestFitKeepsAspectAndCenters(t *testing.T) {
	c := NewScaledCanvas(1, 1, 1500, 900)
	c.Fit(200, 48)
	if c.Rows() > 46 {
		t.Fatalf("rows = %d, want room for a border", c.Rows())
	}
	if c.OffsetCol() < 1 || c.OffsetRow() < 1 {
		t.Fatalf("offsets = (%d, %d), want both >= 1", c.OffsetCol(), c.OffsetRow())
	}
	if c.OffsetCol()*2+c.Columns() > 200 {
		t.Fatalf("canvas overflows terminal: offset %d cols %d", c.OffsetCol(), c.Columns())
	}
}

func TestTerminalToLogicalInvertsLogicalToTerminal(t *testing.T) {
	c := NewScaledCanvas(1, 1, 1500, 900)
	c.Fit(162, 50)
	col, row := c.LogicalToTerminal(600, 300)
	x, y := c.TerminalToLogical(col, row)
	cellW := 1500 / float64(c.Columns())
	cellH := 900 / float64(c.Rows())
	if d := x - 600; d > cellW || d < -cellW {
		t.Fatalf("x = %v, want within one cell (%v) of 600", x, cellW)
	}
	if d := y - 300; d > cellH || d < -cellH {
		t.Fatalf("y = %v, want within one cell (%v) of 300", y, cellH)
	}
}

func TestRenderBorderOnlyWithOffset(t *testing.T) {
	c := NewScaledCanvas(10, 5, 10, 10)
	var buf bytes.Buffer
	if err := c.RenderBorder(&buf); err != nil || buf.Len() != 0 {
		t.Fatalf("border without offset: err=%v out=%q", err, buf.String())
	}
	c.SetOffset(2, 2)
	if err := c.RenderBorder(&buf); err != nil {
		t.Fatalf("RenderBorder: %v", err)
	}
	if !strings.Contains(buf.String(), "┌") || !strings.Contains(buf.String(), "┘") {
		t.Fatalf("border missing corners: %q", buf.String())
	}
}
