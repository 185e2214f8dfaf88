// pkg/engine/game.go
package engine

import (
	"context"
	"time"

	"github.com/opd-ai/go-spacewar/pkg/config"
	"github.com/opd-ai/go-spacewar/pkg/control"
	"github.com/opd-ai/go-spacewar/pkg/entity"
	"github.com/opd-ai/go-spacewar/pkg/event"
	"github.com/opd-ai/go-spacewar/pkg/logging"
	"github.com/opd-ai/go-spacewar/pkg/physics"
	"github.com/opd-ai/go-spacewar/pkg/timer"
)

// GameStatus is the phase of the current round.
type GameStatus int

const (
	GameStatusWaiting GameStatus = iota
	GameStatusActive
	GameStatusEnded
)

// String returns a readable name for the status.
func (s GameStatus) String() string {
	switch s {
	case GameStatusWaiting:
		return "waiting"
	case GameStatusActive:
		return "active"
	case GameStatusEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// WinCondition decides when a round is over.
// It returns the winning ship (nil for a draw) and whether the round is decided.
type WinCondition interface {
	CheckWinner(game *Game) (*entity.Ship, bool)
}

// LastShipStanding ends the round once at most one player has a live ship.
type LastShipStanding struct{}

// CheckWinner implements WinCondition.
func (LastShipStanding) CheckWinner(game *Game) (*entity.Ship, bool) {
	var survivor *entity.Ship
	players := make(map[int]bool)
	for _, ship := range game.Ships {
		if ship.Alive() {
			players[ship.PlayerID] = true
			if survivor == nil {
				survivor = ship
			}
		}
	}
	if len(players) > 1 {
		return nil, false
	}
	return survivor, true
}

// Player is a seat in the match: a ship and whoever flies it.
type Player struct {
	ID     int
	Name   string
	Ship   *entity.Ship
	Helm   *control.Helm
	Drone  *control.Drone
	Kills  int
	Deaths int

	spawnPos   physics.Vector2D
	spawnAngle float64
}

// Human reports whether the player is flown from the keyboard.
func (p *Player) Human() bool {
	return p.Drone == nil
}

// Game owns the ships and runs one frame of gameplay per Update.
// It is driven from a single goroutine and does no locking.
type Game struct {
	Config       *config.GameConfig
	Players      []*Player
	Ships        []*entity.Ship
	Bindings     *control.Bindings
	EventBus     *event.Bus
	Clock        *timer.FrameClock
	SpatialIndex *physics.QuadTree
	Logger       *logging.Logger

	Running     bool
	Status      GameStatus
	Winner      *entity.Ship
	CurrentTick uint64
	Round       int
	EndedAt     time.Duration

	CustomWinCondition WinCondition

	ctx context.Context
}

// NewGame builds a match from cfg. The configuration is validated first.
func NewGame(cfg *config.GameConfig, logger *logging.Logger) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, logging.WrapError(err, "invalid game configuration")
	}
	if logger == nil {
		logger = logging.Discard()
	}

	g := &Game{
		Config:   cfg,
		Bindings: control.NewBindings(),
		EventBus: event.NewEventBus(),
		Clock:    timer.NewFrameClock(),
		Logger:   logger.With("component", "engine"),
		Status:   GameStatusWaiting,
		ctx:      context.Background(),
	}

	g.initSpatialIndex()
	if err := g.initPlayers(); err != nil {
		return nil, err
	}
	g.registerEventHandlers()
	return g, nil
}

func (g *Game) initSpatialIndex() {
	w, h := g.screenSize()
	// grown by a hull so ships clamped onto the edge still fit
	bounds := physics.RectAt(physics.Vector2D{X: w / 2, Y: h / 2}, w, h).
		Grow(g.Config.Hull.Width*2, g.Config.Hull.Height*2)
	g.SpatialIndex = physics.NewQuadTree(bounds, 4)
}

func (g *Game) initPlayers() error {
	helmCfg := control.HelmConfig{
		RepeatDelay:  g.Config.Movement.RepeatDelay(),
		RotationStep: g.Config.Movement.RotationStep,
		ThrustStep:   g.Config.Movement.ThrustStep,
	}

	for i, sc := range g.Config.Ships {
		spec := g.Config.ShipSpec(i)
		pos := physics.Vector2D{X: sc.X, Y: sc.Y}
		ship := entity.NewShip(entity.GenerateID(), spec, pos, sc.Angle)

		p := &Player{
			ID:         spec.PlayerID,
			Name:       spec.Name,
			Ship:       ship,
			Helm:       control.NewHelm(ship, helmCfg, g.EventBus),
			spawnPos:   pos,
			spawnAngle: sc.Angle,
		}
		if sc.Pilot == config.PilotDrone {
			p.Drone = control.NewDrone(p.Helm, control.DefaultDroneConfig())
		} else if err := g.Bindings.BindControls(i, sc.Controls); err != nil {
			return logging.WrapError(err, "binding controls for %s", sc.Name)
		}

		g.Players = append(g.Players, p)
		g.Ships = append(g.Ships, ship)
	}
	return nil
}

// Start begins the first round.
func (g *Game) Start(ctx context.Context) {
	g.ctx = logging.WithCorrelationID(ctx, logging.GetCorrelationID(ctx))
	g.Round = 1
	g.Running = true
	g.Status = GameStatusActive
	g.Logger.Info(g.ctx, "match started", "ships", len(g.Ships))
	g.EventBus.Publish(&event.BaseEvent{EventType: event.GameStarted, Source: g, At: g.Clock.Now()})
}

// Context returns the context carrying the match ID.
func (g *Game) Context() context.Context {
	return g.ctx
}

// Reset respawns every ship and starts a new round.
func (g *Game) Reset() {
	for _, p := range g.Players {
		p.Helm.Reset()
		p.Ship.Respawn(p.spawnPos, p.spawnAngle)
	}
	g.Winner = nil
	g.EndedAt = 0
	g.Round++
	g.Status = GameStatusActive

	g.Logger.Info(g.ctx, "round started", "round", g.Round)
	g.EventBus.Publish(&event.BaseEvent{EventType: event.GameStarted, Source: g, At: g.Clock.Now()})
}

// KeyDown routes a key press to the helm bound to it and reports whether
// the key is bound.
func (g *Game) KeyDown(key string) bool {
	b, ok := g.Bindings.Lookup(key)
	if !ok {
		return false
	}
	g.Players[b.Helm].Helm.Press(b.Action, g.Clock.Now())
	return true
}

// KeyUp routes a key release to the helm bound to it.
func (g *Game) KeyUp(key string) bool {
	b, ok := g.Bindings.Lookup(key)
	if !ok {
		return false
	}
	g.Players[b.Helm].Helm.Release(b.Action)
	return true
}

// Update advances the clock by dt and runs one frame. Nothing moves until
// Start has been called or after Stop.
func (g *Game) Update(dt time.Duration) {
	now := g.Clock.Advance(dt)
	g.CurrentTick++

	if !g.Running {
		return
	}
	if g.Status == GameStatusEnded && g.restartDue(now) {
		g.Reset()
	}

	g.updateDrones(now)
	g.updateHelms(now)
	g.updateShips()
	g.resolveShipCollisions()
	g.updateProjectiles(now)
	g.processProjectileHits()
	g.checkWinConditions(now)
}

func (g *Game) restartDue(now time.Duration) bool {
	delay := g.Config.Rules.RestartDelay()
	return delay > 0 && now-g.EndedAt >= delay
}

func (g *Game) updateDrones(now time.Duration) {
	for _, p := range g.Players {
		if p.Drone != nil {
			p.Drone.Think(g.Ships, now)
		}
	}
}

func (g *Game) updateHelms(now time.Duration) {
	for _, p := range g.Players {
		p.Helm.Tick(now)
	}
}

func (g *Game) updateShips() {
	for _, ship := range g.Ships {
		if ship.Alive() {
			ship.Update()
			g.keepOnScreen(ship)
		}
	}
}

func (g *Game) updateProjectiles(now time.Duration) {
	w, h := g.screenSize()
	for _, ship := range g.Ships {
		for _, shot := range ship.Projectiles() {
			shot.Update()
			if g.Config.Screen.Wrap {
				shot.Position = physics.Wrap(shot.Position, w, h)
			} else if !g.onScreen(shot.Position) {
				shot.Active = false
			}
		}
		ship.Prune(now)
	}
}

// keepOnScreen wraps a ship around the screen edges, or stops it against
// them when wrapping is off.
func (g *Game) keepOnScreen(ship *entity.Ship) {
	w, h := g.screenSize()
	if g.Config.Screen.Wrap {
		ship.Position = physics.Wrap(ship.Position, w, h)
		return
	}
	if ship.Position.X < 0 || ship.Position.X > w {
		ship.Position.X = clamp(ship.Position.X, 0, w)
		ship.Velocity.X = 0
	}
	if ship.Position.Y < 0 || ship.Position.Y > h {
		ship.Position.Y = clamp(ship.Position.Y, 0, h)
		ship.Velocity.Y = 0
	}
}

func (g *Game) onScreen(pos physics.Vector2D) bool {
	w, h := g.screenSize()
	return pos.X >= 0 && pos.X <= w && pos.Y >= 0 && pos.Y <= h
}

func (g *Game) screenSize() (float64, float64) {
	return float64(g.Config.Screen.Width), float64(g.Config.Screen.Height)
}

func clamp(v, lo, hi float64) float64 {
	return max(lo, min(v, hi))
}

func (g *Game) checkWinConditions(now time.Duration) {
	if g.Status != GameStatusActive {
		return
	}

	var cond WinCondition = LastShipStanding{}
	if g.CustomWinCondition != nil {
		cond = g.CustomWinCondition
	}
	winner, decided := cond.CheckWinner(g)
	if !decided {
		return
	}
	g.endRound(winner, now)
}

func (g *Game) endRound(winner *entity.Ship, now time.Duration) {
	g.Status = GameStatusEnded
	g.Winner = winner
	g.EndedAt = now

	ended := &event.GameEndedEvent{
		BaseEvent: event.BaseEvent{EventType: event.GameEnded, Source: g, At: now},
		Draw:      winner == nil,
	}
	if winner != nil {
		ended.WinnerID = uint64(winner.ID)
		ended.WinnerName = winner.Name
		g.Logger.Info(g.ctx, "round won", "round", g.Round, "winner", winner.Name)
	} else {
		g.Logger.Info(g.ctx, "round drawn", "round", g.Round)
	}
	g.EventBus.Publish(ended)
}

// Stop ends the match without a winner.
func (g *Game) Stop() {
	if g.Status == GameStatusActive {
		g.endRound(nil, g.Clock.Now())
	}
	g.Running = false
	g.Status = GameStatusEnded
	g.Logger.Info(g.ctx, "match stopped", "rounds", g.Round)
}

// Render draws every live ship and projectile through r. Projectiles go
// first so a shot leaving its ship never hides the ship.
func (g *Game) Render(r entity.Renderer) {
	r.Clear()
	for _, ship := range g.Ships {
		for _, shot := range ship.Projectiles() {
			shot.Render(r)
		}
	}
	for _, ship := range g.Ships {
		if ship.Alive() {
			ship.Render(r)
		}
	}
	r.Present()
}

func (g *Game) playerForShip(id entity.ID) *Player {
	for _, p := range g.Players {
		if p.Ship.ID == id {
			return p
		}
	}
	return nil
}

func (g *Game) registerEventHandlers() {
	g.EventBus.Subscribe(event.ShipDestroyed, g.handleShipDestroyedEvent)
}

func (g *Game) handleShipDestroyedEvent(e event.Event) {
	se, ok := e.(*event.ShipEvent)
	if !ok {
		return
	}
	p := g.playerForShip(entity.ID(se.ShipID))
	if p == nil {
		return
	}
	p.Deaths++
	p.Helm.Reset()
	g.Logger.Info(g.ctx, "ship destroyed", "ship", p.Name, "deaths", p.Deaths)
}
