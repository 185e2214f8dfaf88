// cmd/spacewar/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/opd-ai/go-spacewar/pkg/audio"
	"github.com/opd-ai/go-spacewar/pkg/config"
	"github.com/opd-ai/go-spacewar/pkg/engine"
	"github.com/opd-ai/go-spacewar/pkg/logging"
	"github.com/opd-ai/go-spacewar/pkg/render"
	engorender "github.com/opd-ai/go-spacewar/pkg/render/engo"
)

const (
	rendererEngo     = "engo"
	rendererTerminal = "terminal"
)

type options struct {
	configPath string
	renderer   string
	mute       bool
	drone      bool
	logPath    string
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("spacewar", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.configPath, "config", "config.json", "Path to configuration file (.json, .yaml or .yml)")
	fs.StringVar(&opts.renderer, "renderer", rendererEngo, "Renderer type: 'engo' or 'terminal'")
	fs.BoolVar(&opts.mute, "mute", false, "Disable sound effects")
	fs.BoolVar(&opts.drone, "drone", false, "Replace the last player with a drone")
	fs.StringVar(&opts.logPath, "log", "", "Write logs to this file instead of stdout")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if opts.renderer != rendererEngo && opts.renderer != rendererTerminal {
		return opts, fmt.Errorf("unknown renderer %q", opts.renderer)
	}
	return opts, nil
}

// loadConfig reads path, falling back to the defaults when it does not exist.
func loadConfig(path string) (*config.GameConfig, bool, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return config.DefaultConfig(), false, nil
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, false, err
	}
	return cfg, true, nil
}

// applyOptions adjusts the pilots for the chosen front-end. Terminals report
// no key releases, so every ship is flown by a drone there.
func applyOptions(cfg *config.GameConfig, opts options) {
	if opts.renderer == rendererTerminal {
		for i := range cfg.Ships {
			cfg.Ships[i].Pilot = config.PilotDrone
		}
	} else if opts.drone && len(cfg.Ships) > 1 {
		cfg.Ships[len(cfg.Ships)-1].Pilot = config.PilotDrone
	}
	if opts.mute {
		cfg.Audio.Enabled = false
	}
}

func newLogger(opts options) (*logging.Logger, func(), error) {
	if opts.logPath == "" {
		if opts.renderer == rendererTerminal {
			return logging.Discard(), func() {}, nil
		}
		return logging.NewLogger(), func() {}, nil
	}
	f, err := os.OpenFile(opts.logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return logging.NewLoggerWithWriter(f), func() { f.Close() }, nil
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "spacewar:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	opts, err := parseFlags(args, os.Stderr)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(opts)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, found, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}
	applyOptions(cfg, opts)

	game, err := engine.NewGame(cfg, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var sound audio.Output
	if cfg.Audio.Enabled {
		if speakerOut, err := audio.OpenSpeaker(); err != nil {
			logger.Warn(ctx, "sound disabled", "error", err.Error())
		} else {
			defer speakerOut.Close()
			sound = speakerOut
		}
	}

	detach := startGame(ctx, game, sound, cfg.Audio.Volume)
	defer detach()
	if !found {
		logger.Warn(game.Context(), "configuration file not found, using defaults", "path", opts.configPath)
	}

	switch opts.renderer {
	case rendererTerminal:
		return runTerminal(ctx, game, logger)
	default:
		engorender.Run(game, logger)
		return nil
	}
}

// startGame attaches a sound board playing through out, when there is one,
// and then starts the match so the first round-start effect is heard.
func startGame(ctx context.Context, game *engine.Game, out audio.Output, volume float64) func() {
	detach := func() {}
	if out != nil {
		board := audio.NewSoundBoard(out, volume)
		board.Attach(game.EventBus)
		detach = board.Detach
	}
	game.Start(ctx)
	return detach
}

func runTerminal(ctx context.Context, game *engine.Game, logger *logging.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return logging.WrapError(err, "failed to create terminal screen")
	}
	if err := screen.Init(); err != nil {
		return logging.WrapError(err, "failed to initialize terminal screen")
	}
	defer screen.Fini()

	err = render.NewConsole(screen, game, logger).Run(ctx)
	game.Stop()
	return err
}
