// pkg/config/config.go
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/opd-ai/go-spacewar/pkg/entity"
	"github.com/opd-ai/go-spacewar/pkg/validation"
)

// Pilot kinds a ship can be flown by.
const (
	PilotHuman = "human"
	PilotDrone = "drone"
)

// GameConfig contains configuration for a match
type GameConfig struct {
	Screen   ScreenConfig   `json:"screen" yaml:"screen"`
	Movement MovementConfig `json:"movement" yaml:"movement"`
	Hull     HullConfig     `json:"hull" yaml:"hull"`
	Weapons  WeaponsConfig  `json:"weapons" yaml:"weapons"`
	Ships    []ShipConfig   `json:"ships" yaml:"ships"`
	Rules    RulesConfig    `json:"rules" yaml:"rules"`
	Audio    AudioConfig    `json:"audio" yaml:"audio"`
}

// ScreenConfig describes the play field and frame pacing
type ScreenConfig struct {
	Title      string `json:"title" yaml:"title"`
	Width      int    `json:"width" yaml:"width"`
	Height     int    `json:"height" yaml:"height"`
	MaxFPS     int    `json:"maxFps" yaml:"maxFps"`
	Wrap       bool   `json:"wrap" yaml:"wrap"`
	Background string `json:"background" yaml:"background"`
}

// MovementConfig controls held-key rotation and thrust
type MovementConfig struct {
	RepeatDelayMS int     `json:"repeatDelayMs" yaml:"repeatDelayMs"`
	RotationStep  float64 `json:"rotationStep" yaml:"rotationStep"`
	ThrustStep    float64 `json:"thrustStep" yaml:"thrustStep"`
}

// HullConfig is shared by every ship
type HullConfig struct {
	Width   float64 `json:"width" yaml:"width"`
	Height  float64 `json:"height" yaml:"height"`
	MaxHull int     `json:"maxHull" yaml:"maxHull"`
}

// WeaponConfig describes one weapon type
type WeaponConfig struct {
	CooldownMS int     `json:"cooldownMs" yaml:"cooldownMs"`
	Speed      float64 `json:"speed" yaml:"speed"`
	LifetimeMS int     `json:"lifetimeMs" yaml:"lifetimeMs"`
	Damage     int     `json:"damage" yaml:"damage"`
	Size       float64 `json:"size" yaml:"size"`
}

// WeaponsConfig contains both weapons and the torpedo cap
type WeaponsConfig struct {
	Torpedo             WeaponConfig `json:"torpedo" yaml:"torpedo"`
	Phaser              WeaponConfig `json:"phaser" yaml:"phaser"`
	MaxTorpedoesPerShip int          `json:"maxTorpedoesPerShip" yaml:"maxTorpedoesPerShip"`
}

// ShipConfig contains configuration for one ship
type ShipConfig struct {
	Name     string         `json:"name" yaml:"name"`
	Color    string         `json:"color" yaml:"color"`
	X        float64        `json:"x" yaml:"x"`
	Y        float64        `json:"y" yaml:"y"`
	Angle    float64        `json:"angle" yaml:"angle"`
	Pilot    string         `json:"pilot" yaml:"pilot"`
	Controls ControlsConfig `json:"controls" yaml:"controls"`
}

// ControlsConfig binds a key name to each helm action
type ControlsConfig struct {
	RotateLeft  string `json:"rotateLeft" yaml:"rotateLeft"`
	RotateRight string `json:"rotateRight" yaml:"rotateRight"`
	Thrust      string `json:"thrust" yaml:"thrust"`
	FireTorpedo string `json:"fireTorpedo" yaml:"fireTorpedo"`
	FirePhaser  string `json:"firePhaser" yaml:"firePhaser"`
}

// RulesConfig controls the flow of rounds
type RulesConfig struct {
	// RestartDelayMS is how long the result stays up before the next round.
	// Zero waits for an explicit restart.
	RestartDelayMS int `json:"restartDelayMs" yaml:"restartDelayMs"`
}

// RestartDelay returns the pause between rounds.
func (r RulesConfig) RestartDelay() time.Duration {
	return time.Duration(r.RestartDelayMS) * time.Millisecond
}

// AudioConfig controls synthesized sound effects
type AudioConfig struct {
	Enabled bool    `json:"enabled" yaml:"enabled"`
	Volume  float64 `json:"volume" yaml:"volume"`
}

// RepeatDelay returns the held-key repeat interval.
func (m MovementConfig) RepeatDelay() time.Duration {
	return time.Duration(m.RepeatDelayMS) * time.Millisecond
}

// Spec converts the weapon configuration into entity form.
func (w WeaponConfig) Spec() entity.WeaponSpec {
	return entity.WeaponSpec{
		Cooldown: time.Duration(w.CooldownMS) * time.Millisecond,
		Speed:    w.Speed,
		Lifetime: time.Duration(w.LifetimeMS) * time.Millisecond,
		Damage:   w.Damage,
		Width:    w.Size,
		Height:   w.Size,
	}
}

// ShipSpec builds the entity description of ship i. Player IDs are 1-based.
func (c *GameConfig) ShipSpec(i int) entity.ShipSpec {
	sc := c.Ships[i]
	return entity.ShipSpec{
		Name:         sc.Name,
		PlayerID:     i + 1,
		Color:        sc.Color,
		Width:        c.Hull.Width,
		Height:       c.Hull.Height,
		MaxHull:      c.Hull.MaxHull,
		MaxTorpedoes: c.Weapons.MaxTorpedoesPerShip,
		Torpedo:      c.Weapons.Torpedo.Spec(),
		Phaser:       c.Weapons.Phaser.Spec(),
	}
}

// Bindings returns the controls as a slice in helm action order.
func (cc ControlsConfig) Bindings() []string {
	return []string{cc.RotateLeft, cc.RotateRight, cc.Thrust, cc.FireTorpedo, cc.FirePhaser}
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// LoadConfig loads a configuration from a JSON or YAML file, chosen by
// extension. Fields missing from the file keep their default values.
func LoadConfig(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if isYAML(path) {
		err = yaml.Unmarshal(data, cfg)
	} else {
		err = json.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// SaveConfig saves a configuration to a JSON or YAML file
func SaveConfig(cfg *GameConfig, path string) error {
	if cfg == nil {
		return errors.New("cannot save nil config")
	}

	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(cfg)
	} else {
		data, err = json.MarshalIndent(cfg, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Validate checks the configuration and reports every problem found.
func (c *GameConfig) Validate() error {
	var errs []error
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		add("screen size must be positive, got %dx%d", c.Screen.Width, c.Screen.Height)
	}
	if c.Screen.MaxFPS <= 0 {
		add("maxFps must be positive, got %d", c.Screen.MaxFPS)
	}
	if c.Screen.Background != "" {
		if err := validation.ValidateColor(c.Screen.Background); err != nil {
			add("screen background: %w", err)
		}
	}
	if c.Movement.RepeatDelayMS <= 0 {
		add("repeatDelayMs must be positive, got %d", c.Movement.RepeatDelayMS)
	}
	if c.Hull.Width <= 0 || c.Hull.Height <= 0 || c.Hull.MaxHull <= 0 {
		add("hull width, height and maxHull must be positive")
	}
	if c.Weapons.MaxTorpedoesPerShip < 0 {
		add("maxTorpedoesPerShip cannot be negative, got %d", c.Weapons.MaxTorpedoesPerShip)
	}
	for name, w := range map[string]WeaponConfig{"torpedo": c.Weapons.Torpedo, "phaser": c.Weapons.Phaser} {
		if w.CooldownMS <= 0 || w.LifetimeMS <= 0 {
			add("%s cooldownMs and lifetimeMs must be positive", name)
		}
		if w.Size <= 0 {
			add("%s size must be positive", name)
		}
	}
	if c.Rules.RestartDelayMS < 0 {
		add("restartDelayMs cannot be negative, got %d", c.Rules.RestartDelayMS)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		add("audio volume must be within [0, 1], got %v", c.Audio.Volume)
	}

	if len(c.Ships) < 2 {
		add("at least two ships are required, got %d", len(c.Ships))
	}
	bound := make(map[string]string)
	for i := range c.Ships {
		errs = append(errs, c.validateShip(i, bound)...)
	}

	return errors.Join(errs...)
}

func (c *GameConfig) validateShip(i int, bound map[string]string) []error {
	var errs []error
	sc := &c.Ships[i]

	name, err := validation.ValidatePilotName(sc.Name)
	if err != nil {
		errs = append(errs, fmt.Errorf("ship %d: %w", i+1, err))
	} else {
		sc.Name = name
	}
	if err := validation.ValidateColor(sc.Color); err != nil {
		errs = append(errs, fmt.Errorf("ship %d: %w", i+1, err))
	}

	switch sc.Pilot {
	case PilotDrone:
		return errs
	case PilotHuman, "":
		sc.Pilot = PilotHuman
	default:
		return append(errs, fmt.Errorf("ship %d: unknown pilot %q", i+1, sc.Pilot))
	}

	for _, key := range sc.Controls.Bindings() {
		if err := validation.ValidateKeyName(key); err != nil {
			errs = append(errs, fmt.Errorf("ship %d: %w", i+1, err))
			continue
		}
		canonical, _ := validation.CanonicalKey(key)
		if owner, taken := bound[canonical]; taken {
			errs = append(errs, fmt.Errorf("ship %d: key %q already bound by %s", i+1, canonical, owner))
			continue
		}
		bound[canonical] = fmt.Sprintf("ship %d", i+1)
	}
	return errs
}

// DefaultConfig returns the two-player hot-seat configuration
func DefaultConfig() *GameConfig {
	return &GameConfig{
		Screen: ScreenConfig{
			Title:      "Go Spacewar",
			Width:      800,
			Height:     600,
			MaxFPS:     60,
			Wrap:       true,
			Background: "black",
		},
		Movement: MovementConfig{
			RepeatDelayMS: 100,
			RotationStep:  22.5,
			ThrustStep:    1.0,
		},
		Hull: HullConfig{
			Width:   32,
			Height:  32,
			MaxHull: 100,
		},
		Weapons: WeaponsConfig{
			Torpedo: WeaponConfig{
				CooldownMS: 500,
				Speed:      6,
				LifetimeMS: 2000,
				Damage:     20,
				Size:       6,
			},
			Phaser: WeaponConfig{
				CooldownMS: 150,
				Speed:      14,
				LifetimeMS: 250,
				Damage:     8,
				Size:       4,
			},
			MaxTorpedoesPerShip: 5,
		},
		Ships: []ShipConfig{
			{
				Name:  "Enterprise",
				Color: "dodgerblue",
				X:     200,
				Y:     300,
				Angle: 0,
				Pilot: PilotHuman,
				Controls: ControlsConfig{
					RotateLeft:  "A",
					RotateRight: "D",
					Thrust:      "S",
					FireTorpedo: "E",
					FirePhaser:  "Q",
				},
			},
			{
				Name:  "Warbird",
				Color: "limegreen",
				X:     600,
				Y:     300,
				Angle: 180,
				Pilot: PilotHuman,
				Controls: ControlsConfig{
					RotateLeft:  "J",
					RotateRight: "L",
					Thrust:      "K",
					FireTorpedo: "O",
					FirePhaser:  "U",
				},
			},
		},
		Rules: RulesConfig{
			RestartDelayMS: 3000,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.5,
		},
	}
}
