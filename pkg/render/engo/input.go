// pkg/render/engo/input.go
package engo

import (
	"fmt"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"

	"github.com/opd-ai/go-spacewar/pkg/engine"
)

const (
	buttonQuit  = "quit"
	buttonReset = "reset"
)

// keyCodes maps the key names used in ship controls onto engo keys.
var keyCodes = map[string]engo.Key{
	"A": engo.KeyA, "B": engo.KeyB, "C": engo.KeyC, "D": engo.KeyD,
	"E": engo.KeyE, "F": engo.KeyF, "G": engo.KeyG, "H": engo.KeyH,
	"I": engo.KeyI, "J": engo.KeyJ, "K": engo.KeyK, "L": engo.KeyL,
	"M": engo.KeyM, "N": engo.KeyN, "O": engo.KeyO, "P": engo.KeyP,
	"Q": engo.KeyQ, "R": engo.KeyR, "S": engo.KeyS, "T": engo.KeyT,
	"U": engo.KeyU, "V": engo.KeyV, "W": engo.KeyW, "X": engo.KeyX,
	"Y": engo.KeyY, "Z": engo.KeyZ,

	"0": engo.KeyZero, "1": engo.KeyOne, "2": engo.KeyTwo, "3": engo.KeyThree,
	"4": engo.KeyFour, "5": engo.KeyFive, "6": engo.KeySix, "7": engo.KeySeven,
	"8": engo.KeyEight, "9": engo.KeyNine,

	"Up":    engo.KeyArrowUp,
	"Down":  engo.KeyArrowDown,
	"Left":  engo.KeyArrowLeft,
	"Right": engo.KeyArrowRight,

	"Space":        engo.KeySpace,
	"Enter":        engo.KeyEnter,
	"LeftShift":    engo.KeyLeftShift,
	"RightShift":   engo.KeyRightShift,
	"LeftControl":  engo.KeyLeftControl,
	"RightControl": engo.KeyRightControl,
}

// KeyCode returns the engo key for a control key name.
func KeyCode(name string) (engo.Key, bool) {
	k, ok := keyCodes[name]
	return k, ok
}

// InputSystem turns engo key presses and releases into helm actions. Each
// bound key is registered as a button named after the key.
type InputSystem struct {
	game *engine.Game
	keys []string
}

// NewInputSystem creates an input system for the keys bound in game.
func NewInputSystem(game *engine.Game) *InputSystem {
	return &InputSystem{game: game, keys: game.Bindings.Keys()}
}

// RegisterButtons registers one engo button per bound key plus the quit
// and reset buttons. It must run after engo has created its input manager.
func (is *InputSystem) RegisterButtons() error {
	for _, name := range is.keys {
		key, ok := KeyCode(name)
		if !ok {
			return fmt.Errorf("no engo key for %q", name)
		}
		engo.Input.RegisterButton(name, key)
	}
	engo.Input.RegisterButton(buttonQuit, engo.KeyEscape)
	engo.Input.RegisterButton(buttonReset, engo.KeyF2)
	return nil
}

// Update satisfies the ecs.System interface
func (is *InputSystem) Update(dt float32) {
	if engo.Input.Button(buttonQuit).JustPressed() {
		engo.Exit()
		return
	}
	if engo.Input.Button(buttonReset).JustPressed() {
		is.game.Reset()
	}

	for _, name := range is.keys {
		button := engo.Input.Button(name)
		if button.JustPressed() {
			is.game.KeyDown(name)
		}
		if button.JustReleased() {
			is.game.KeyUp(name)
		}
	}
}

// Remove satisfies the ecs.System interface
func (is *InputSystem) Remove(basic ecs.BasicEntity) {}
