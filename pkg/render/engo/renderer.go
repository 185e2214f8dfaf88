// pkg/render/engo/renderer.go
package engo

import (
	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-spacewar/pkg/entity"
	"github.com/opd-ai/go-spacewar/pkg/physics"
)

// SpriteSystem is the part of common.RenderSystem the renderer feeds.
type SpriteSystem interface {
	Add(basic *ecs.BasicEntity, render *common.RenderComponent, space *common.SpaceComponent)
	Remove(basic ecs.BasicEntity)
}

// SpriteSource supplies drawables for game entities.
type SpriteSource interface {
	Ship(colorName string) common.Drawable
	Projectile(kind entity.Kind) common.Drawable
}

type sprite struct {
	ecs.BasicEntity
	common.RenderComponent
	common.SpaceComponent

	seen bool
}

// EngoRenderer implements entity.Renderer on top of an engo render system.
// Each game entity keeps one ecs entity for as long as it is drawn every
// frame; entities not drawn between Clear and Present are removed.
type EngoRenderer struct {
	system  SpriteSystem
	assets  SpriteSource
	sprites map[entity.ID]*sprite
}

// NewEngoRenderer creates a renderer adding sprites to system.
func NewEngoRenderer(system SpriteSystem, assets SpriteSource) *EngoRenderer {
	return &EngoRenderer{
		system:  system,
		assets:  assets,
		sprites: make(map[entity.ID]*sprite),
	}
}

// Clear implements entity.Renderer
func (r *EngoRenderer) Clear() {
	for _, s := range r.sprites {
		s.seen = false
	}
}

// Present implements entity.Renderer
func (r *EngoRenderer) Present() {
	for id, s := range r.sprites {
		if !s.seen {
			r.system.Remove(s.BasicEntity)
			delete(r.sprites, id)
		}
	}
}

// RenderShip implements entity.Renderer
func (r *EngoRenderer) RenderShip(ship *entity.Ship) {
	s := r.spriteFor(ship.ID, func() common.Drawable { return r.assets.Ship(ship.Color) }, shipMask, 1)
	place(s, ship.Position, ship.Angle, float32(ship.Width), float32(ship.Height))
}

// RenderProjectile implements entity.Renderer
func (r *EngoRenderer) RenderProjectile(p *entity.Projectile) {
	mask := torpedoMask
	if p.Kind == entity.KindPhaser {
		mask = phaserMask
	}
	s := r.spriteFor(p.ID, func() common.Drawable { return r.assets.Projectile(p.Kind) }, mask, 2)
	w, h := maskSize(mask)
	place(s, p.Position, p.Angle, w, h)
}

// Len returns the number of sprites on screen.
func (r *EngoRenderer) Len() int {
	return len(r.sprites)
}

func (r *EngoRenderer) spriteFor(id entity.ID, drawable func() common.Drawable, mask []string, z float32) *sprite {
	if s, ok := r.sprites[id]; ok {
		s.seen = true
		return s
	}

	w, h := maskSize(mask)
	s := &sprite{BasicEntity: ecs.NewBasic(), seen: true}
	s.RenderComponent = common.RenderComponent{
		Drawable: drawable(),
		Scale:    engo.Point{X: 1, Y: 1},
	}
	s.SpaceComponent = common.SpaceComponent{Width: w, Height: h}
	s.RenderComponent.SetZIndex(z)

	r.sprites[id] = s
	r.system.Add(&s.BasicEntity, &s.RenderComponent, &s.SpaceComponent)
	return s
}

// place centres the sprite on pos, scaled to width x height pixels.
func place(s *sprite, pos physics.Vector2D, angle float64, width, height float32) {
	w, h := s.SpaceComponent.Width, s.SpaceComponent.Height
	if tw, th := textureSize(s.Drawable); tw > 0 && th > 0 {
		w, h = tw, th
	}
	if width > 0 && height > 0 && w > 0 && h > 0 {
		s.RenderComponent.Scale = engo.Point{X: width / w, Y: height / h}
		w, h = width, height
	}
	s.SpaceComponent.Width, s.SpaceComponent.Height = w, h
	s.SpaceComponent.Rotation = float32(angle)
	s.SpaceComponent.SetCenter(engo.Point{X: float32(pos.X), Y: float32(pos.Y)})
}

func textureSize(d common.Drawable) (float32, float32) {
	if d == nil {
		return 0, 0
	}
	return d.Width(), d.Height()
}
