package engine

// ScoreLine is a read-only snapshot of one player for HUDs.
type ScoreLine struct {
	PlayerID     int
	Name         string
	Color        string
	Hull         int
	MaxHull      int
	Torpedoes    int
	MaxTorpedoes int
	Kills        int
	Deaths       int
	Alive        bool
}

// Scoreboard returns one line per player in seat order.
func (g *Game) Scoreboard() []ScoreLine {
	lines := make([]ScoreLine, 0, len(g.Players))
	for _, p := range g.Players {
		s := p.Ship
		lines = append(lines, ScoreLine{
			PlayerID:     p.ID,
			Name:         p.Name,
			Color:        s.Color,
			Hull:         s.Hull,
			MaxHull:      s.MaxHull,
			Torpedoes:    s.ActiveTorpedoes(),
			MaxTorpedoes: s.MaxTorpedoes,
			Kills:        p.Kills,
			Deaths:       p.Deaths,
			Alive:        s.Alive(),
		})
	}
	return lines
}

// Banner returns the round result line, or "" while a round is running.
func (g *Game) Banner() string {
	if g.Status != GameStatusEnded {
		return ""
	}
	if g.Winner == nil {
		return "Draw"
	}
	return g.Winner.Name + " wins"
}
