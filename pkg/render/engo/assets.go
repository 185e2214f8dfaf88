// pkg/render/engo/assets.go
package engo

import (
	"image"
	"image/color"

	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-spacewar/pkg/entity"
	"github.com/opd-ai/go-spacewar/pkg/render"
)

// Sprites are drawn as pixel masks, nose pointing right so that a
// SpaceComponent rotation equals the ship heading. '#' is hull, '+' is a
// darker trim and anything else is transparent.
var (
	shipMask = []string{
		"................",
		"..##............",
		"..####..........",
		"...+#####.......",
		"...++#######....",
		"....+#########..",
		"....++#########.",
		".....+##########",
		".....+##########",
		"....++#########.",
		"....+#########..",
		"...++#######....",
		"...+#####.......",
		"..####..........",
		"..##............",
		"................",
	}

	torpedoMask = []string{
		".##.",
		"####",
		"####",
		".##.",
	}

	phaserMask = []string{
		"########",
		"########",
	}
)

// maskImage paints mask in tint. Trim pixels use half brightness.
func maskImage(mask []string, tint color.Color) *image.NRGBA {
	width := 0
	for _, row := range mask {
		width = max(width, len(row))
	}
	img := image.NewNRGBA(image.Rect(0, 0, width, len(mask)))

	full := color.NRGBAModel.Convert(tint).(color.NRGBA)
	full.A = 0xff
	trim := color.NRGBA{R: full.R / 2, G: full.G / 2, B: full.B / 2, A: 0xff}

	for y, row := range mask {
		for x, ch := range row {
			switch ch {
			case '#':
				img.SetNRGBA(x, y, full)
			case '+':
				img.SetNRGBA(x, y, trim)
			}
		}
	}
	return img
}

// maskSize returns the width and height of a mask in pixels.
func maskSize(mask []string) (float32, float32) {
	width := 0
	for _, row := range mask {
		width = max(width, len(row))
	}
	return float32(width), float32(len(mask))
}

// AssetManager creates sprite textures on first use and caches them, one
// per ship colour. Textures need a GL context, so nothing is built until
// the scene is running.
type AssetManager struct {
	ships       map[string]common.Drawable
	projectiles map[entity.Kind]common.Drawable
}

// NewAssetManager creates an empty asset manager.
func NewAssetManager() *AssetManager {
	return &AssetManager{
		ships:       make(map[string]common.Drawable),
		projectiles: make(map[entity.Kind]common.Drawable),
	}
}

// Ship returns the ship sprite tinted with the named colour.
func (am *AssetManager) Ship(colorName string) common.Drawable {
	if sprite, ok := am.ships[colorName]; ok {
		return sprite
	}
	tint, ok := render.ParseColor(colorName)
	if !ok {
		tint = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	}
	sprite := toTexture(maskImage(shipMask, tint))
	am.ships[colorName] = sprite
	return sprite
}

// Projectile returns the sprite for a torpedo or phaser.
func (am *AssetManager) Projectile(kind entity.Kind) common.Drawable {
	if sprite, ok := am.projectiles[kind]; ok {
		return sprite
	}
	var sprite common.Drawable
	if kind == entity.KindPhaser {
		sprite = toTexture(maskImage(phaserMask, color.RGBA{R: 0xff, G: 0x45, B: 0x00, A: 0xff}))
	} else {
		sprite = toTexture(maskImage(torpedoMask, color.RGBA{R: 0xff, G: 0xff, B: 0x00, A: 0xff}))
	}
	am.projectiles[kind] = sprite
	return sprite
}

func toTexture(img *image.NRGBA) common.Drawable {
	return common.NewTextureSingle(common.NewImageObject(img))
}
