package entity

// Renderer draws game entities. Front-ends implement it; entities call back
// into it from Render.
type Renderer interface {
	RenderShip(ship *Ship)
	RenderProjectile(projectile *Projectile)
	Clear()
	Present()
}

// Render implements Entity.
func (s *Ship) Render(r Renderer) {
	r.RenderShip(s)
}

// Render implements Entity.
func (p *Projectile) Render(r Renderer) {
	r.RenderProjectile(p)
}
