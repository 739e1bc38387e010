package draw

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strings"
)

// Canvas is a drawing buffer with 2x vertical resolution using half-block characters.
// Game objects draw in logical coordinates; the canvas scales them to the
// terminal area it was fitted to.
type Canvas struct {
	cols    int    // Terminal columns covered by the canvas
	rows    int    // Terminal rows covered by the canvas
	subRows int    // rows * 2
	pixels  []bool // Flat slice: [y * cols + x]

	logicalWidth  float64
	logicalHeight float64
	scaleX        float64 // cols / logicalWidth
	scaleY        float64 // subRows / logicalHeight

	// 0-based terminal offsets of the canvas' top-left cell.
	offsetCol int
	offsetRow int

	// Reusable buffers to reduce allocations
	renderBuf       strings.Builder
	scaledBuf       []Point
	intersectionBuf []float64
	polygonBuf      []Point
}

// NewScaledCanvas creates a canvas covering cols x rows terminal cells that
// scales from the given logical coordinate space.
func NewScaledCanvas(cols, rows int, logicalWidth, logicalHeight float64) *Canvas {
	c := &Canvas{
		logicalWidth:  logicalWidth,
		logicalHeight: logicalHeight,
	}
	c.Resize(cols, rows)
	return c
}

// Resize updates the canvas for a new cell area while keeping the logical size.
func (c *Canvas) Resize(cols, rows int) {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	if cols != c.cols || rows != c.rows {
		c.pixels = make([]bool, rows*2*cols)
		c.cols = cols
		c.rows = rows
		c.subRows = rows * 2
	}
	c.scaleX = float64(cols) / c.logicalWidth
	c.scaleY = float64(c.subRows) / c.logicalHeight
}

// Fit sizes the canvas to the largest area of a termWidth x termHeight terminal
// that keeps the logical aspect ratio, centered, leaving a one-cell margin for
// the border when there is spare room.
func (c *Canvas) Fit(termWidth, termHeight int) {
	aspect := c.logicalWidth / c.logicalHeight // sub-pixels are square

	cols := termWidth
	rows := int(float64(cols) / aspect / 2)
	if rows > termHeight {
		rows = termHeight
		cols = int(float64(rows*2) * aspect)
	}
	if cols < termWidth-2 || rows < termHeight-2 {
		// Shrink by the border so it never overlaps the playfield.
		if cols > termWidth-2 {
			cols = termWidth - 2
		}
		if rows > termHeight-2 {
			rows = termHeight - 2
		}
	}

	c.Resize(cols, rows)
	c.SetOffset((termWidth-c.cols)/2, (termHeight-c.rows)/2)
}

// SetOffset sets the column and row offset for centering the canvas.
// Offsets are 0-based terminal positions: the canvas starts at (offsetCol+1, offsetRow+1).
func (c *Canvas) SetOffset(col, row int) {
	c.offsetCol = col
	c.offsetRow = row
}

// OffsetCol returns the column offset used for centering.
func (c *Canvas) OffsetCol() int {
	return c.offsetCol
}

// OffsetRow returns the row offset used for centering.
func (c *Canvas) OffsetRow() int {
	return c.offsetRow
}

// Clear resets all pixels in the canvas.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

func (c *Canvas) setPixel(x, y int) {
	if x >= 0 && x < c.cols && y >= 0 && y < c.subRows {
		c.pixels[y*c.cols+x] = true
	}
}

// Pixel reports whether the sub-pixel at pixel coordinates (x, y) is set.
func (c *Canvas) Pixel(x, y int) bool {
	if x < 0 || x >= c.cols || y < 0 || y >= c.subRows {
		return false
	}
	return c.pixels[y*c.cols+x]
}

// SetFloat sets a pixel using float logical coordinates.
func (c *Canvas) SetFloat(x, y float64) {
	c.setPixel(int(math.Round(x*c.scaleX)), int(math.Round(y*c.scaleY)))
}

// FillRect fills an axis-aligned logical rectangle. Rectangles smaller than a
// pixel still light the pixel under their corner.
func (c *Canvas) FillRect(x, y, w, h float64) {
	x0 := int(math.Floor(x * c.scaleX))
	y0 := int(math.Floor(y * c.scaleY))
	x1 := int(math.Ceil((x+w)*c.scaleX)) - 1
	y1 := int(math.Ceil((y+h)*c.scaleY)) - 1
	if x1 < x0 {
		x1 = x0
	}
	if y1 < y0 {
		y1 = y0
	}
	for py := y0; py <= y1; py++ {
		for px := x0; px <= x1; px++ {
			c.setPixel(px, py)
		}
	}
}

// DrawLine draws a line on the canvas using Bresenham's algorithm.
// Coordinates are in logical space and get scaled to pixels.
func (c *Canvas) DrawLine(p1, p2 Point) {
	x1 := int(math.Round(p1.X * c.scaleX))
	y1 := int(math.Round(p1.Y * c.scaleY))
	x2 := int(math.Round(p2.X * c.scaleX))
	y2 := int(math.Round(p2.Y * c.scaleY))

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)
	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy
	for {
		c.setPixel(x1, y1)
		if x1 == x2 && y1 == y2 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// DrawPolygon draws a polygon on the canvas.
// If filled is true, the interior is filled using scanline algorithm.
func (c *Canvas) DrawPolygon(points []Point, filled bool) {
	if len(points) < 3 {
		return
	}
	if filled {
		c.fillPolygon(points)
	}
	n := len(points)
	for i := 0; i < n; i++ {
		c.DrawLine(points[i], points[(i+1)%n])
	}
}

// fillPolygon fills a polygon using scanline algorithm in pixel space.
func (c *Canvas) fillPolygon(points []Point) {
	if cap(c.scaledBuf) < len(points) {
		c.scaledBuf = make([]Point, len(points))
	}
	scaled := c.scaledBuf[:len(points)]
	for i, p := range points {
		scaled[i] = Point{X: p.X * c.scaleX, Y: p.Y * c.scaleY}
	}

	minY, maxY := scaled[0].Y, scaled[0].Y
	for _, p := range scaled {
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}

	for y := int(math.Floor(minY)); y <= int(math.Ceil(maxY)); y++ {
		scanY := float64(y) + 0.5
		hits := c.intersectionBuf[:0]

		n := len(scaled)
		for i := 0; i < n; i++ {
			p1 := scaled[i]
			p2 := scaled[(i+1)%n]
			if (p1.Y <= scanY && p2.Y > scanY) || (p2.Y <= scanY && p1.Y > scanY) {
				t := (scanY - p1.Y) / (p2.Y - p1.Y)
				hits = append(hits, p1.X+t*(p2.X-p1.X))
			}
		}
		c.intersectionBuf = hits

		sort.Float64s(hits)
		for i := 0; i+1 < len(hits); i += 2 {
			for x := int(math.Ceil(hits[i])); x <= int(math.Floor(hits[i+1])); x++ {
				c.setPixel(x, y)
			}
		}
	}
}

// maxChunkSize is the maximum bytes to write at once for smooth SSH transmission.
const maxChunkSize = 1400

// Render outputs the canvas to the writer using half-block characters.
func (c *Canvas) Render(w io.Writer) error {
	c.renderBuf.Reset()
	c.renderBuf.Grow(c.cols * c.rows * 12)

	for row := 0; row < c.rows; row++ {
		top := row * 2 * c.cols
		bottom := (row*2 + 1) * c.cols

		for col := 0; col < c.cols; col++ {
			var ch rune
			switch up, down := c.pixels[top+col], c.pixels[bottom+col]; {
			case up && down:
				ch = BlockFull
			case up:
				ch = BlockUpperHalf
			case down:
				ch = BlockLowerHalf
			default:
				continue
			}
			fmt.Fprintf(&c.renderBuf, "\033[%d;%dH%c", row+1+c.offsetRow, col+1+c.offsetCol, ch)
		}
	}

	return writeChunked(w, c.renderBuf.String())
}

// RenderBorder draws a box around the canvas when it was fitted with spare room.
func (c *Canvas) RenderBorder(w io.Writer) error {
	if c.offsetCol < 1 || c.offsetRow < 1 {
		return nil
	}
	left := c.offsetCol
	right := c.offsetCol + c.cols + 1
	top := c.offsetRow
	bottom := c.offsetRow + c.rows + 1
	line := strings.Repeat("─", c.cols)

	var buf strings.Builder
	fmt.Fprintf(&buf, "\033[%d;%dH┌%s┐", top, left, line)
	fmt.Fprintf(&buf, "\033[%d;%dH└%s┘", bottom, left, line)
	for row := top + 1; row < bottom; row++ {
		fmt.Fprintf(&buf, "\033[%d;%dH│\033[%d;%dH│", row, left, row, right)
	}
	return writeChunked(w, buf.String())
}

// Columns returns the terminal column count covered by the canvas.
func (c *Canvas) Columns() int {
	return c.cols
}

// Rows returns the terminal row count covered by the canvas.
func (c *Canvas) Rows() int {
	return c.rows
}

// LogicalToTerminal converts logical coordinates to a 1-based terminal position (col, row).
func (c *Canvas) LogicalToTerminal(x, y float64) (col, row int) {
	px := int(math.Round(x * c.scaleX))
	py := int(math.Round(y * c.scaleY))
	return px + 1 + c.offsetCol, py/2 + 1 + c.offsetRow
}

// TerminalToLogical converts a 1-based terminal cell to the logical
// coordinates of its center. Used to map mouse reports onto the playfield.
func (c *Canvas) TerminalToLogical(col, row int) (x, y float64) {
	px := float64(col-1-c.offsetCol) + 0.5
	py := float64(row-1-c.offsetRow)*2 + 1
	return px / c.scaleX, py / c.scaleY
}

// BorrowPoints returns a reusable slice of Points with the given length.
// The returned slice is only valid until the next call to BorrowPoints.
func (c *Canvas) BorrowPoints(n int) []Point {
	if cap(c.polygonBuf) < n {
		c.polygonBuf = make([]Point, n)
	}
	return c.polygonBuf[:n]
}

func writeChunked(w io.Writer, data string) error {
	for len(data) > 0 {
		chunk := data
		if len(chunk) > maxChunkSize {
			chunk = data[:maxChunkSize]
		}
		if _, err := io.WriteString(w, chunk); err != nil {
			return err
		}
		data = data[len(chunk):]
	}
	return nil
}
