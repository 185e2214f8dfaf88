// Package control turns key presses into ship manoeuvres and weapon fire.
package control

// Action is something a pilot can hold down.
type Action int

const (
	RotateLeft Action = iota
	RotateRight
	Thrust
	FireTorpedo
	FirePhaser
)

// Actions lists every action in binding order.
var Actions = []Action{RotateLeft, RotateRight, Thrust, FireTorpedo, FirePhaser}

// String returns the configuration name of the action.
func (a Action) String() string {
	switch a {
	case RotateLeft:
		return "rotateLeft"
	case RotateRight:
		return "rotateRight"
	case Thrust:
		return "thrust"
	case FireTorpedo:
		return "fireTorpedo"
	case FirePhaser:
		return "firePhaser"
	default:
		return "unknown"
	}
}
