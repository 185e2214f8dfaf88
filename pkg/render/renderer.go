// pkg/render/renderer.go
package render

import (
	"context"

	"github.com/opd-ai/go-spacewar/pkg/entity"
	"github.com/opd-ai/go-spacewar/pkg/logging"
)

// NullRenderer is an entity.Renderer that draws nothing. It counts what it
// was asked to draw and logs it at debug level, which makes it useful for
// headless runs.
type NullRenderer struct {
	logger *logging.Logger

	Frames      int
	Ships       int
	Projectiles int
}

// NewNullRenderer creates a new NullRenderer logging through logger.
func NewNullRenderer(logger *logging.Logger) *NullRenderer {
	if logger == nil {
		logger = logging.Discard()
	}
	return &NullRenderer{logger: logger}
}

// Clear implements entity.Renderer.
func (d *NullRenderer) Clear() {
	d.Ships = 0
	d.Projectiles = 0
}

// Present implements entity.Renderer.
func (d *NullRenderer) Present() {
	d.Frames++
	d.logger.Debug(context.Background(), "frame presented",
		"frame", d.Frames,
		"ships", d.Ships,
		"projectiles", d.Projectiles,
	)
}

// RenderProjectile implements entity.Renderer.
func (d *NullRenderer) RenderProjectile(projectile *entity.Projectile) {
	if projectile == nil {
		return
	}
	d.Projectiles++
}

// RenderShip implements entity.Renderer.
func (d *NullRenderer) RenderShip(ship *entity.Ship) {
	if ship == nil {
		return
	}
	d.Ships++
}
