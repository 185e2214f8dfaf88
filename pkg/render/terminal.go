package render

import (
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/image/colornames"

	"github.com/opd-ai/go-spacewar/pkg/entity"
	"github.com/opd-ai/go-spacewar/pkg/physics"
)

// Canvas is the part of tcell.Screen the terminal renderer draws on.
type Canvas interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

type cell struct {
	r     rune
	style tcell.Style
}

// TerminalRenderer rasterizes the play field onto a grid of character cells.
// One cell covers scaleX by scaleY screen pixels.
type TerminalRenderer struct {
	width  int
	height int
	scaleX float64
	scaleY float64
	buffer [][]cell
}

// NewTerminalRenderer creates a width x height cell grid covering a play
// field of fieldW x fieldH pixels.
func NewTerminalRenderer(width, height int, fieldW, fieldH float64) *TerminalRenderer {
	r := &TerminalRenderer{}
	r.Resize(width, height, fieldW, fieldH)
	return r
}

// Resize changes the grid size, keeping the play field fitted to it.
func (r *TerminalRenderer) Resize(width, height int, fieldW, fieldH float64) {
	width, height = max(width, 1), max(height, 1)
	r.width, r.height = width, height
	r.scaleX = fieldW / float64(width)
	r.scaleY = fieldH / float64(height)
	r.buffer = make([][]cell, height)
	for i := range r.buffer {
		r.buffer[i] = make([]cell, width)
	}
	r.Clear()
}

// Size returns the grid size in cells.
func (r *TerminalRenderer) Size() (int, int) {
	return r.width, r.height
}

// fieldToCell converts play field coordinates to a cell position.
func (r *TerminalRenderer) fieldToCell(pos physics.Vector2D) (int, int) {
	return int(math.Floor(pos.X / r.scaleX)), int(math.Floor(pos.Y / r.scaleY))
}

func (r *TerminalRenderer) set(pos physics.Vector2D, ch rune, style tcell.Style) {
	x, y := r.fieldToCell(pos)
	if x >= 0 && x < r.width && y >= 0 && y < r.height {
		r.buffer[y][x] = cell{r: ch, style: style}
	}
}

// Clear implements entity.Renderer
func (r *TerminalRenderer) Clear() {
	for y := range r.buffer {
		for x := range r.buffer[y] {
			r.buffer[y][x] = cell{r: ' ', style: tcell.StyleDefault}
		}
	}
}

// Present implements entity.Renderer. The grid is kept until Draw copies it
// onto a canvas.
func (r *TerminalRenderer) Present() {}

// Draw copies the grid onto canvas with its top-left corner at (x0, y0).
func (r *TerminalRenderer) Draw(canvas Canvas, x0, y0 int) {
	for y, row := range r.buffer {
		for x, c := range row {
			canvas.SetContent(x0+x, y0+y, c.r, nil, c.style)
		}
	}
}

// Lines returns the grid as text, one string per row.
func (r *TerminalRenderer) Lines() []string {
	lines := make([]string, len(r.buffer))
	var sb strings.Builder
	for y, row := range r.buffer {
		sb.Reset()
		for _, c := range row {
			sb.WriteRune(c.r)
		}
		lines[y] = sb.String()
	}
	return lines
}

// RenderShip implements entity.Renderer
func (r *TerminalRenderer) RenderShip(ship *entity.Ship) {
	r.set(ship.Position, HeadingGlyph(ship.Angle), StyleFor(ship.Color))
}

// RenderProjectile implements entity.Renderer
func (r *TerminalRenderer) RenderProjectile(p *entity.Projectile) {
	ch := '*'
	if p.Kind == entity.KindPhaser {
		ch = BeamGlyph(p.Angle)
	}
	r.set(p.Position, ch, tcell.StyleDefault.Foreground(tcell.ColorYellow))
}

var headingGlyphs = [8]rune{'→', '↘', '↓', '↙', '←', '↖', '↑', '↗'}

// HeadingGlyph returns the arrow closest to a heading in degrees.
// Headings follow screen coordinates, so 90 points down.
func HeadingGlyph(angle float64) rune {
	sector := int(math.Floor(physics.NormalizeDegrees(angle+22.5)/45)) % 8
	return headingGlyphs[sector]
}

// BeamGlyph returns the line character closest to a heading.
func BeamGlyph(angle float64) rune {
	switch int(math.Floor(physics.NormalizeDegrees(angle+22.5)/45)) % 4 {
	case 0:
		return '-'
	case 1:
		return '\\'
	case 2:
		return '|'
	default:
		return '/'
	}
}

// StyleFor returns a foreground style for an SVG colour name or #rrggbb
// value. Unknown colours fall back to the default style.
func StyleFor(name string) tcell.Style {
	c, ok := ParseColor(name)
	if !ok {
		return tcell.StyleDefault
	}
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
}

// ParseColor resolves an SVG colour name or #rrggbb value.
func ParseColor(name string) (color.RGBA, bool) {
	if c, ok := colornames.Map[strings.ToLower(name)]; ok {
		return c, true
	}
	if len(name) != 7 || name[0] != '#' {
		return color.RGBA{}, false
	}
	v, err := strconv.ParseUint(name[1:], 16, 32)
	if err != nil {
		return color.RGBA{}, false
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, true
}
