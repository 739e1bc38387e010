// Package loop runs a game session: the per-tick simulation and the
// terminal frame driver around it.
package loop

import (
	"bufio"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tomz197/shootmoop/internal/config"
	"github.com/tomz197/shootmoop/internal/draw"
	"github.com/tomz197/shootmoop/internal/input"
	"github.com/tomz197/shootmoop/internal/object"
	"github.com/tomz197/shootmoop/internal/sprite"
)

// Options configures Run. Zero values pick the defaults.
type Options struct {
	TermSizeFunc draw.TermSizeFunc
	Sounds       Sounds
	Logger       *log.Logger
	Seed         int64
	IdleTimeout  time.Duration // End the session after this long without input; 0 disables
	Bank         *sprite.Bank
}

// Run starts the main game loop with the standard Input → Update → Draw cycle.
// It returns when the player quits, the input stream ends or the session idles out.
func Run(r *bufio.Reader, w io.Writer, opts Options) error {
	if opts.TermSizeFunc == nil {
		opts.TermSizeFunc = draw.DefaultTermSizeFunc
	}
	if opts.Bank == nil {
		opts.Bank = sprite.NewBank()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	session := NewSession(SessionOptions{
		Seed:   opts.Seed,
		Sounds: opts.Sounds,
		Logger: opts.Logger,
	})
	stream := input.StartStream(r)

	draw.HideCursor(w)
	draw.EnableMouse(w)
	defer draw.ShowCursor(w)
	defer draw.DisableMouse(w)
	draw.ClearScreen(w)

	cw := draw.NewChunkWriter(w)
	canvas := draw.NewScaledCanvas(1, 1, float64(session.Width), float64(session.Height))
	ctx := object.DrawContext{Canvas: canvas, Bank: opts.Bank, Scale: config.SpriteScale}

	lastInput := time.Now()

	for session.Mode != ModeTerminated {
		frameStart := time.Now()

		// ===== INPUT PHASE =====
		raw := input.ReadInput(stream)
		if len(raw.Pressed) > 0 {
			lastInput = frameStart
		}
		if opts.IdleTimeout > 0 && frameStart.Sub(lastInput) > opts.IdleTimeout {
			opts.Logger.Info("session idle", "after", opts.IdleTimeout, "tick", session.Tick)
			break
		}

		termWidth, termHeight, err := opts.TermSizeFunc()
		if err != nil {
			return fmt.Errorf("terminal size: %w", err)
		}
		canvas.Fit(termWidth, termHeight)

		// ===== UPDATE PHASE =====
		mode := session.Mode
		session.Update(translateInput(raw, canvas))
		if session.Mode != mode {
			stream.Reset()
		}

		// ===== DRAW PHASE =====
		if err := drawFrame(session, ctx, cw); err != nil {
			return err
		}

		// ===== FRAME TIMING =====
		elapsed := time.Since(frameStart)
		if elapsed < config.TickTime {
			time.Sleep(config.TickTime - elapsed)
		}
	}

	draw.ClearScreen(w)
	return nil
}

// translateInput maps raw terminal input onto the playfield.
func translateInput(raw input.Input, canvas *draw.Canvas) Input {
	in := Input{
		Keys:      raw.Keys,
		MouseDown: raw.Mouse.Down,
		Pointer:   raw.Mouse.Seen,
		Quit:      raw.Quit(),
	}
	if raw.Mouse.Seen {
		in.MouseX, in.MouseY = canvas.TerminalToLogical(raw.Mouse.Col, raw.Mouse.Row)
	}
	return in
}

// drawFrame clears the screen and draws stars, enemies, the ship and bullets,
// then the text overlay, and flushes it all in one write.
func drawFrame(s *Session, ctx object.DrawContext, cw *draw.ChunkWriter) error {
	draw.ClearScreen(cw)
	ctx.Canvas.Clear()

	for _, star := range s.Stars {
		if err := star.Draw(ctx); err != nil {
			return err
		}
	}
	for _, e := range s.Enemies {
		if err := e.Draw(ctx); err != nil {
			return fmt.Errorf("enemy: %w", err)
		}
	}
	if err := s.Ship.Draw(ctx); err != nil {
		return fmt.Errorf("ship: %w", err)
	}
	for _, b := range s.Bullets {
		if err := b.Draw(ctx); err != nil {
			return fmt.Errorf("bullet: %w", err)
		}
	}

	if err := ctx.Canvas.Render(cw); err != nil {
		return err
	}
	if err := ctx.Canvas.RenderBorder(cw); err != nil {
		return err
	}
	drawUI(s, cw, ctx.Canvas)

	return cw.Flush()
}
