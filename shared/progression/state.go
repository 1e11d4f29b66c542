// Package progression drives the level lifecycle: start, fade, spawn, play,
// end, advance and game completion. It owns no entities; every side effect goes
// through the collaborator interfaces in collaborators.go.
package progression

// State is the level progress state. Exactly one exists per Controller.
type State int

const (
	Inactive State = iota
	FadingOutForEnd
	FadingInForStart
	Active
	FadingOutForCompletion
)

func (s State) String() string {
	switch s {
	case Inactive:
		return "Inactive"
	case FadingOutForEnd:
		return "FadingOutForEnd"
	case FadingInForStart:
		return "FadingInForStart"
	case Active:
		return "Active"
	case FadingOutForCompletion:
		return "FadingOutForCompletion"
	default:
		return "Unknown"
	}
}

// FadeDirection tells which kind of fade just finished.
type FadeDirection int

const (
	DirectionOut FadeDirection = iota // to black
	DirectionIn                       // from black
)

func (d FadeDirection) String() string {
	if d == DirectionIn {
		return "in"
	}
	return "out"
}
