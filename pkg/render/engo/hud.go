// pkg/render/engo/hud.go
package engo

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/opd-ai/go-spacewar/pkg/engine"
	"github.com/opd-ai/go-spacewar/pkg/render"
)

const (
	hudFontURL  = "go.ttf"
	hudFontSize = 14
	hudMargin   = 10
	hudLine     = 18
	hudZ        = 10
)

// LoadHUDFont makes the embedded Go font available to engo's file loader.
func LoadHUDFont() error {
	if err := engo.Files.LoadReaderData(hudFontURL, bytes.NewReader(goregular.TTF)); err != nil {
		return fmt.Errorf("failed to load HUD font: %w", err)
	}
	return nil
}

type hudLabel struct {
	ecs.BasicEntity
	common.RenderComponent
	common.SpaceComponent

	text string
}

// HUDSystem draws one score line per player in the top-left corner and the
// round banner in the middle of the screen.
type HUDSystem struct {
	game    *engine.Game
	system  SpriteSystem
	font    *common.Font
	printer *message.Printer

	lines  []*hudLabel
	banner *hudLabel
}

// NewHUDSystem creates the HUD labels and adds them to system.
func NewHUDSystem(game *engine.Game, system SpriteSystem) (*HUDSystem, error) {
	font := &common.Font{URL: hudFontURL, FG: color.White, Size: hudFontSize}
	if err := font.CreatePreloaded(); err != nil {
		return nil, fmt.Errorf("failed to create HUD font: %w", err)
	}

	hud := &HUDSystem{
		game:    game,
		system:  system,
		font:    font,
		printer: message.NewPrinter(language.English),
	}
	for i := range game.Players {
		hud.lines = append(hud.lines, hud.newLabel(hudMargin, float32(hudMargin+i*hudLine)))
	}
	hud.banner = hud.newLabel(0, 0)
	hud.Update(0)
	return hud, nil
}

func (hud *HUDSystem) newLabel(x, y float32) *hudLabel {
	l := &hudLabel{BasicEntity: ecs.NewBasic()}
	l.RenderComponent = common.RenderComponent{
		Drawable: common.Text{Font: hud.font},
		Scale:    engo.Point{X: 1, Y: 1},
	}
	l.SpaceComponent = common.SpaceComponent{Position: engo.Point{X: x, Y: y}}
	l.RenderComponent.SetZIndex(hudZ)
	hud.system.Add(&l.BasicEntity, &l.RenderComponent, &l.SpaceComponent)
	return l
}

// Update refreshes labels whose text changed.
func (hud *HUDSystem) Update(dt float32) {
	for i, line := range hud.game.Scoreboard() {
		if i >= len(hud.lines) {
			break
		}
		l := hud.lines[i]
		hud.setText(l, ScoreText(hud.printer, line))
		if c, ok := render.ParseColor(line.Color); ok {
			l.RenderComponent.Color = c
		}
	}

	banner := hud.game.Banner()
	hud.setText(hud.banner, banner)
	hud.banner.Hidden = banner == ""
	if banner != "" {
		w, h := float32(hud.game.Config.Screen.Width), float32(hud.game.Config.Screen.Height)
		tw := hud.banner.Drawable.Width()
		hud.banner.SpaceComponent.Position = engo.Point{X: (w - tw) / 2, Y: h / 2}
	}
}

func (hud *HUDSystem) setText(l *hudLabel, text string) {
	if l.text == text {
		return
	}
	l.text = text
	l.Drawable = common.Text{Font: hud.font, Text: text}
}

// Remove satisfies the ecs.System interface
func (hud *HUDSystem) Remove(basic ecs.BasicEntity) {}

// ScoreText formats one player's HUD line.
func ScoreText(p *message.Printer, line engine.ScoreLine) string {
	if !line.Alive {
		return p.Sprintf("%s  destroyed  kills %d  deaths %d", line.Name, line.Kills, line.Deaths)
	}
	return p.Sprintf("%s  hull %d/%d  torpedoes %d/%d  kills %d  deaths %d",
		line.Name, line.Hull, line.MaxHull, line.Torpedoes, line.MaxTorpedoes, line.Kills, line.Deaths)
}
