package render

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/opd-ai/go-spacewar/pkg/entity"
	"github.com/opd-ai/go-spacewar/pkg/physics"
)

func TestNewTerminalRenderer_Dimensions(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		wantW, wantH  int
	}{
		{"small", 10, 5, 10, 5},
		{"standard", 80, 24, 80, 24},
		{"degenerate", 0, -3, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewTerminalRenderer(tt.width, tt.height, 800, 600)
			w, h := r.Size()
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("Size() = %d,%d, want %d,%d", w, h, tt.wantW, tt.wantH)
			}
			lines := r.Lines()
			if len(lines) != tt.wantH {
				t.Fatalf("len(Lines()) = %d, want %d", len(lines), tt.wantH)
			}
			if lines[0] != strings.Repeat(" ", tt.wantW) {
				t.Errorf("Lines()[0] = %q, want blank", lines[0])
			}
		})
	}
}

func TestTerminalRenderer_RenderShip(t *testing.T) {
	r := NewTerminalRenderer(80, 20, 800, 600)
	ship := &entity.Ship{BaseEntity: entity.BaseEntity{Position: physics.Vector2D{X: 405, Y: 301}, Angle: 90}, Color: "red"}

	r.RenderShip(ship)
	lines := r.Lines()
	// 10 x 30 pixels per cell
	if got := []rune(lines[10])[40]; got != '↓' {
		t.Errorf("cell (40,10) = %q, want '↓'", got)
	}

	r.Clear()
	if strings.TrimSpace(strings.Join(r.Lines(), "")) != "" {
		t.Error("Clear() left content behind")
	}
}

func TestTerminalRenderer_OffFieldIgnored(t *testing.T) {
	r := NewTerminalRenderer(10, 10, 100, 100)
	r.RenderProjectile(&entity.Projectile{BaseEntity: entity.BaseEntity{Position: physics.Vector2D{X: -5, Y: 50}}})
	r.RenderProjectile(&entity.Projectile{BaseEntity: entity.BaseEntity{Position: physics.Vector2D{X: 50, Y: 100}}})
	if strings.TrimSpace(strings.Join(r.Lines(), "")) != "" {
		t.Error("off-field projectile drawn")
	}
}

func TestTerminalRenderer_ProjectileGlyphs(t *testing.T) {
	r := NewTerminalRenderer(10, 10, 100, 100)
	r.RenderProjectile(&entity.Projectile{BaseEntity: entity.BaseEntity{Kind: entity.KindTorpedo, Position: physics.Vector2D{X: 15, Y: 15}}})
	r.RenderProjectile(&entity.Projectile{BaseEntity: entity.BaseEntity{Kind: entity.KindPhaser, Position: physics.Vector2D{X: 55, Y: 15}, Angle: 270}})

	row := []rune(r.Lines()[1])
	if row[1] != '*' || row[5] != '|' {
		t.Errorf("row = %q, want torpedo '*' at 1 and phaser '|' at 5", string(row))
	}
}

type recordCanvas map[[2]int]rune

func (c recordCanvas) SetContent(x, y int, primary rune, _ []rune, _ tcell.Style) {
	c[[2]int{x, y}] = primary
}

func TestTerminalRenderer_DrawOffset(t *testing.T) {
	r := NewTerminalRenderer(4, 2, 40, 20)
	r.RenderProjectile(&entity.Projectile{BaseEntity: entity.BaseEntity{Position: physics.Vector2D{X: 35, Y: 15}}})

	canvas := recordCanvas{}
	r.Draw(canvas, 2, 1)
	if len(canvas) != 8 {
		t.Errorf("Draw() set %d cells, want 8", len(canvas))
	}
	if got := canvas[[2]int{5, 2}]; got != '*' {
		t.Errorf("cell (5,2) = %q, want '*'", got)
	}
}

func TestHeadingGlyph(t *testing.T) {
	tests := []struct {
		angle float64
		want  rune
	}{
		{0, '→'},
		{20, '→'},
		{30, '↘'},
		{90, '↓'},
		{180, '←'},
		{270, '↑'},
		{337.5, '→'},
		{-45, '↗'},
	}
	for _, tt := range tests {
		if got := HeadingGlyph(tt.angle); got != tt.want {
			t.Errorf("HeadingGlyph(%v) = %q, want %q", tt.angle, got, tt.want)
		}
	}
}

func TestBeamGlyph(t *testing.T) {
	tests := []struct {
		angle float64
		want  rune
	}{
		{0, '-'},
		{180, '-'},
		{45, '\\'},
		{90, '|'},
		{135, '/'},
		{315, '/'},
	}
	for _, tt := range tests {
		if got := BeamGlyph(tt.angle); got != tt.want {
			t.Errorf("BeamGlyph(%v) = %q, want %q", tt.angle, got, tt.want)
		}
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		name    string
		wantOK  bool
		r, g, b uint8
	}{
		{"dodgerblue", true, 30, 144, 255},
		{"LimeGreen", true, 50, 205, 50},
		{"#ff8000", true, 255, 128, 0},
		{"#FF8000", true, 255, 128, 0},
		{"#ff80", false, 0, 0, 0},
		{"#gg0000", false, 0, 0, 0},
		{"plaid", false, 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ok := ParseColor(tt.name)
			if ok != tt.wantOK {
				t.Fatalf("ParseColor(%q) ok = %v, want %v", tt.name, ok, tt.wantOK)
			}
			if ok && (c.R != tt.r || c.G != tt.g || c.B != tt.b) {
				t.Errorf("ParseColor(%q) = %v, want %d,%d,%d", tt.name, c, tt.r, tt.g, tt.b)
			}
		})
	}
}
