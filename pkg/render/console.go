package render

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/opd-ai/go-spacewar/pkg/engine"
	"github.com/opd-ai/go-spacewar/pkg/logging"
)

type command int

const (
	cmdNone command = iota
	cmdQuit
	cmdReset
	cmdPause
)

// keyCommand maps a terminal key to a console command. Terminals report no
// key releases, so ships cannot be flown from here; the console only runs
// drone matches.
func keyCommand(key tcell.Key, r rune) command {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return cmdQuit
	case tcell.KeyRune:
		switch r {
		case 'q', 'Q':
			return cmdQuit
		case 'r', 'R':
			return cmdReset
		case 'p', 'P', ' ':
			return cmdPause
		}
	}
	return cmdNone
}

// Console runs a match in a terminal. The bottom row holds the score line.
type Console struct {
	screen  tcell.Screen
	game    *engine.Game
	view    *TerminalRenderer
	logger  *logging.Logger
	printer *message.Printer
	frame   time.Duration
	paused  bool
}

// NewConsole creates a console on an initialized screen.
func NewConsole(screen tcell.Screen, game *engine.Game, logger *logging.Logger) *Console {
	if logger == nil {
		logger = logging.Discard()
	}
	c := &Console{
		screen:  screen,
		game:    game,
		logger:  logger.With("component", "console"),
		printer: message.NewPrinter(language.English),
		frame:   time.Second / time.Duration(max(game.Config.Screen.MaxFPS, 1)),
	}
	c.view = NewTerminalRenderer(1, 1, 1, 1)
	c.resize()
	return c
}

func (c *Console) resize() {
	w, h := c.screen.Size()
	c.view.Resize(w, h-1, float64(c.game.Config.Screen.Width), float64(c.game.Config.Screen.Height))
}

// Run drives the game at the configured frame rate until the user quits or
// ctx is cancelled.
func (c *Console) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 64)
	done := make(chan struct{})
	defer close(done)

	go func() {
		for {
			ev := c.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(c.frame)
	defer ticker.Stop()
	last := time.Now()

	c.logger.Info(c.game.Context(), "console started", "frame", c.frame.String())
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if !c.HandleEvent(ev) {
				return nil
			}
		case now := <-ticker.C:
			c.Step(now.Sub(last))
			last = now
		}
	}
}

// HandleEvent reacts to a terminal event and reports whether to keep running.
func (c *Console) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch keyCommand(ev.Key(), ev.Rune()) {
		case cmdQuit:
			return false
		case cmdReset:
			c.game.Reset()
		case cmdPause:
			c.paused = !c.paused
		}
	case *tcell.EventResize:
		c.resize()
		c.screen.Sync()
	}
	return true
}

// Step advances the game by dt unless paused and redraws the screen.
func (c *Console) Step(dt time.Duration) {
	if !c.paused {
		c.game.Update(dt)
	}
	c.draw()
}

func (c *Console) draw() {
	c.game.Render(c.view)
	c.view.Draw(c.screen, 0, 0)

	w, h := c.view.Size()
	if banner := c.Banner(); banner != "" {
		c.drawText((w-len([]rune(banner)))/2, h/2, banner, tcell.StyleDefault.Bold(true))
	}
	c.drawStatus(h)
	c.screen.Show()
}

func (c *Console) drawStatus(row int) {
	x := 0
	for _, part := range c.StatusParts() {
		x = c.drawText(x, row, part.Text, StyleFor(part.Color)) + 2
	}
}

// StatusPart is one player's section of the status line.
type StatusPart struct {
	Text  string
	Color string
}

// StatusParts formats the score line, one part per player.
func (c *Console) StatusParts() []StatusPart {
	lines := c.game.Scoreboard()
	parts := make([]StatusPart, 0, len(lines))
	for _, l := range lines {
		parts = append(parts, StatusPart{
			Text:  c.printer.Sprintf("%s hull %d/%d torp %d/%d kills %d", l.Name, l.Hull, l.MaxHull, l.Torpedoes, l.MaxTorpedoes, l.Kills),
			Color: l.Color,
		})
	}
	return parts
}

// Banner returns the centered message: the round result or the pause notice.
func (c *Console) Banner() string {
	if c.paused {
		return "PAUSED"
	}
	return c.game.Banner()
}

// View returns the play field grid.
func (c *Console) View() *TerminalRenderer {
	return c.view
}

func (c *Console) drawText(x, y int, s string, style tcell.Style) int {
	for _, r := range s {
		c.screen.SetContent(x, y, r, nil, style)
		x++
	}
	return x
}
