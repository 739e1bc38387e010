package loop

import (
	"fmt"

	"github.com/tomz197/shootmoop/internal/draw"
)

const (
	title    = "S H O O T   M O O P"
	controls = "WASD/Arrows steer  Mouse/Space shoot  Esc menu  Q quit"
)

var menuItems = [...]string{MenuPlay: "Play", MenuQuit: "Quit"}

// drawUI draws the text overlay on top of the rendered canvas.
func drawUI(s *Session, cw *draw.ChunkWriter, canvas *draw.Canvas) {
	switch s.Mode {
	case ModeMenu:
		drawMenu(s, cw, canvas)
	case ModeGame:
		drawHUD(s, cw, canvas)
	}
}

// drawMenu draws the title and the Play/Quit entries with the cursor highlighted.
func drawMenu(s *Session, cw *draw.ChunkWriter, canvas *draw.Canvas) {
	centerX := float64(s.Width) / 2

	col, row := canvas.LogicalToTerminal(centerX, float64(s.Height)/4)
	draw.WriteText(cw, col, row, title, draw.AlignCenter, draw.StyleBold)

	col, row = canvas.LogicalToTerminal(centerX, float64(s.Height)*3/4)
	for i, item := range menuItems {
		style := draw.StyleDim
		if i == s.Cursor {
			style = draw.StyleReverse
		}
		draw.WriteText(cw, col, row+2*i, " "+item+" ", draw.AlignCenter, style)
	}

	if s.Ship.Life <= 0 {
		_, over := canvas.LogicalToTerminal(centerX, float64(s.Height)*3/8)
		draw.WriteText(cw, col, over, "GAME OVER", draw.AlignCenter, draw.StyleBold)
	}

	bottom := canvas.OffsetRow() + canvas.Rows()
	draw.WriteText(cw, col, bottom, controls, draw.AlignCenter, draw.StyleDim)
}

// drawHUD draws life and level on the top edge of the playfield.
func drawHUD(s *Session, cw *draw.ChunkWriter, canvas *draw.Canvas) {
	top := canvas.OffsetRow() + 1
	left := canvas.OffsetCol() + 2
	right := canvas.OffsetCol() + canvas.Columns() - 1

	draw.WriteText(cw, left, top, fmt.Sprintf("Life: %d", s.Ship.Life), draw.AlignLeft, draw.StylePlain)
	draw.WriteText(cw, right, top, fmt.Sprintf("Level: %d  Tick: %d", s.Ship.Level, s.Tick), draw.AlignRight, draw.StylePlain)
}
