// pkg/render/engo/scene.go
package engo

import (
	"time"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-spacewar/pkg/engine"
	"github.com/opd-ai/go-spacewar/pkg/logging"
	"github.com/opd-ai/go-spacewar/pkg/render"
)

// GameScene hosts a match in an engo window.
type GameScene struct {
	game   *engine.Game
	logger *logging.Logger

	renderer *EngoRenderer
	input    *InputSystem
	hud      *HUDSystem
}

// NewGameScene creates a scene for a started game.
func NewGameScene(game *engine.Game, logger *logging.Logger) *GameScene {
	if logger == nil {
		logger = logging.Discard()
	}
	return &GameScene{game: game, logger: logger.With("component", "engo")}
}

// Type returns the scene type (required by Engo)
func (scene *GameScene) Type() string {
	return "SpacewarScene"
}

// Preload is called before the scene starts (required by Engo)
func (scene *GameScene) Preload() {
	if err := LoadHUDFont(); err != nil {
		scene.logger.Error(scene.game.Context(), "preload failed", err)
	}
}

// Setup is called when the scene starts (required by Engo)
func (scene *GameScene) Setup(u engo.Updater) {
	world, _ := u.(*ecs.World)

	if c, ok := render.ParseColor(scene.game.Config.Screen.Background); ok {
		common.SetBackground(c)
	}

	renderSystem := &common.RenderSystem{}
	world.AddSystem(renderSystem)

	scene.renderer = NewEngoRenderer(renderSystem, NewAssetManager())
	world.AddSystem(&GameSystem{game: scene.game, renderer: scene.renderer})

	scene.input = NewInputSystem(scene.game)
	if err := scene.input.RegisterButtons(); err != nil {
		scene.logger.Error(scene.game.Context(), "input setup failed", err)
	}
	world.AddSystem(scene.input)

	hud, err := NewHUDSystem(scene.game, renderSystem)
	if err != nil {
		scene.logger.Error(scene.game.Context(), "HUD disabled", err)
	} else {
		scene.hud = hud
		world.AddSystem(hud)
	}

	scene.logger.Info(scene.game.Context(), "scene ready",
		"keys", len(scene.input.keys),
		"width", scene.game.Config.Screen.Width,
		"height", scene.game.Config.Screen.Height,
	)
}

// Exit is called when the window closes
func (scene *GameScene) Exit() {
	scene.game.Stop()
	scene.logger.Info(scene.game.Context(), "window closed")
}

// GameSystem advances the game one frame per engo update and hands the
// result to the renderer.
type GameSystem struct {
	game     *engine.Game
	renderer *EngoRenderer
}

// Update satisfies the ecs.System interface
func (gs *GameSystem) Update(dt float32) {
	gs.game.Update(frameDuration(dt))
	gs.game.Render(gs.renderer)
}

// Remove satisfies the ecs.System interface
func (gs *GameSystem) Remove(basic ecs.BasicEntity) {}

// frameDuration converts an engo frame delta in seconds.
func frameDuration(dt float32) time.Duration {
	if dt <= 0 {
		return 0
	}
	return time.Duration(float64(dt) * float64(time.Second))
}

// Run opens the window and blocks until it is closed.
func Run(game *engine.Game, logger *logging.Logger) {
	screen := game.Config.Screen
	engo.Run(engo.RunOptions{
		Title:    screen.Title,
		Width:    screen.Width,
		Height:   screen.Height,
		FPSLimit: screen.MaxFPS,
		VSync:    true,
	}, NewGameScene(game, logger))
}
