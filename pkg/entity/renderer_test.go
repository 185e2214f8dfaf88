package entity

import (
	"testing"

	"github.com/opd-ai/go-spacewar/pkg/physics"
)

// MockRenderer records every call made through the Renderer interface.
type MockRenderer struct {
	Ships        []*Ship
	Projectiles  []*Projectile
	ClearCount   int
	PresentCount int
}

func (m *MockRenderer) RenderShip(ship *Ship) { m.Ships = append(m.Ships, ship) }
func (m *MockRenderer) RenderProjectile(projectile *Projectile) {
	m.Projectiles = append(m.Projectiles, projectile)
}
func (m *MockRenderer) Clear()   { m.ClearCount++ }
func (m *MockRenderer) Present() { m.PresentCount++ }

func TestEntity_RenderDispatch(t *testing.T) {
	r := &MockRenderer{}
	ship := NewShip(1, testSpec(), physics.Vector2D{X: 100, Y: 100}, 0)
	torpedo := ship.FireTorpedo(0)

	entities := []Entity{ship, torpedo, &BaseEntity{}}
	for _, e := range entities {
		e.Render(r)
	}

	if len(r.Ships) != 1 || r.Ships[0] != ship {
		t.Errorf("RenderShip calls = %v, want the ship once", r.Ships)
	}
	if len(r.Projectiles) != 1 || r.Projectiles[0] != torpedo {
		t.Errorf("RenderProjectile calls = %v, want the torpedo once", r.Projectiles)
	}
}
