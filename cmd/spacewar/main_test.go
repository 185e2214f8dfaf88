// cmd/spacewar/main_test.go
package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/gopxl/beep"

	"github.com/opd-ai/go-spacewar/pkg/config"
	"github.com/opd-ai/go-spacewar/pkg/engine"
	"github.com/opd-ai/go-spacewar/pkg/event"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    options
		wantErr bool
	}{
		{
			name: "defaults",
			args: nil,
			want: options{configPath: "config.json", renderer: rendererEngo},
		},
		{
			name: "terminal muted",
			args: []string{"-renderer", "terminal", "-mute", "-log", "out.log"},
			want: options{configPath: "config.json", renderer: rendererTerminal, mute: true, logPath: "out.log"},
		},
		{
			name: "drone with yaml config",
			args: []string{"-drone", "-config", "match.yaml"},
			want: options{configPath: "match.yaml", renderer: rendererEngo, drone: true},
		},
		{
			name:    "unknown renderer",
			args:    []string{"-renderer", "sdl"},
			wantErr: true,
		},
		{
			name:    "unknown flag",
			args:    []string{"-server", "localhost"},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseFlags(tt.args, io.Discard)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseFlags() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("parseFlags() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestApplyOptions(t *testing.T) {
	tests := []struct {
		name       string
		opts       options
		wantPilots []string
		wantAudio  bool
	}{
		{"engo", options{renderer: rendererEngo}, []string{config.PilotHuman, config.PilotHuman}, true},
		{"engo drone", options{renderer: rendererEngo, drone: true}, []string{config.PilotHuman, config.PilotDrone}, true},
		{"terminal", options{renderer: rendererTerminal, mute: true}, []string{config.PilotDrone, config.PilotDrone}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			applyOptions(cfg, tt.opts)
			for i, want := range tt.wantPilots {
				if got := cfg.Ships[i].Pilot; got != want {
					t.Errorf("Ships[%d].Pilot = %q, want %q", i, got, want)
				}
			}
			if cfg.Audio.Enabled != tt.wantAudio {
				t.Errorf("Audio.Enabled = %v, want %v", cfg.Audio.Enabled, tt.wantAudio)
			}
		})
	}
}

func TestLoadConfig_Fallback(t *testing.T) {
	cfg, found, err := loadConfig(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if found {
		t.Error("loadConfig() found = true for a missing file")
	}
	if cfg.Screen.Width != config.DefaultConfig().Screen.Width {
		t.Errorf("Screen.Width = %d, want default", cfg.Screen.Width)
	}
}

func TestLoadConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "match.yaml")
	if err := os.WriteFile(path, []byte("screen:\n  width: 1024\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, found, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if !found || cfg.Screen.Width != 1024 {
		t.Errorf("loadConfig() = width %d found %v, want 1024 true", cfg.Screen.Width, found)
	}
}

func TestLoadConfig_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := loadConfig(path); err == nil {
		t.Error("loadConfig() error = nil, want parse error")
	}
}

func TestNewLogger_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spacewar.log")
	logger, closeLog, err := newLogger(options{logPath: path})
	if err != nil {
		t.Fatalf("newLogger() error = %v", err)
	}
	logger.Info(t.Context(), "hello")
	closeLog()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) == 0 {
		t.Error("log file is empty")
	}
}

type countingOutput struct {
	played int
}

func (c *countingOutput) Play(beep.Streamer) { c.played++ }

func TestStartGame_RoundStartSoundPlays(t *testing.T) {
	game, err := engine.NewGame(config.DefaultConfig(), nil)
	if err != nil {
		t.Fatalf("NewGame() error = %v", err)
	}
	out := &countingOutput{}

	detach := startGame(t.Context(), game, out, 0.5)
	if out.played != 1 {
		t.Errorf("played %d sounds on start, want the round-start effect", out.played)
	}
	if game.Status != engine.GameStatusActive {
		t.Errorf("Status = %v, want active", game.Status)
	}

	detach()
	if n := game.EventBus.HandlerCount(event.GameStarted); n != 0 {
		t.Errorf("HandlerCount(GameStarted) = %d after detach, want 0", n)
	}
}

func TestStartGame_WithoutSound(t *testing.T) {
	game, err := engine.NewGame(config.DefaultConfig(), nil)
	if err != nil {
		t.Fatalf("NewGame() error = %v", err)
	}
	detach := startGame(t.Context(), game, nil, 0.5)
	defer detach()
	if !game.Running {
		t.Error("game not running after startGame")
	}
}
