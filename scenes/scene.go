// Package scenes holds the top-level screens and the transitions between
// them.
package scenes

import (
	"time"

	"github.com/automoto/dizzy-ducklings/components"
	cfg "github.com/automoto/dizzy-ducklings/config"
	"github.com/automoto/dizzy-ducklings/input"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Render layers, drawn in increasing order
const (
	layerWorld ecs.LayerID = iota
	layerOverlay
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
	// Quit ends the game after the current update.
	Quit()
}

// frameTimer measures the wall time between updates.
type frameTimer struct {
	last time.Time
}

// Next returns the time since the previous call. The first call returns one
// nominal frame.
func (t *frameTimer) Next() time.Duration {
	now := time.Now()
	if t.last.IsZero() {
		t.last = now
		return time.Second / time.Duration(ebiten.DefaultTPS)
	}
	d := now.Sub(t.last)
	t.last = now
	return d
}

// pollActions refreshes in with this update's pressed actions.
func pollActions(in *components.InputData) {
	in.Previous = in.Current
	in.Current = input.Poll()
}

// primeActions records the keys already held when a scene starts, so a press
// carried over from the previous scene is not seen as a new one.
func primeActions(in *components.InputData) {
	in.Current = input.Poll()
}

func justPressed(in *components.InputData, id cfg.ActionID) bool {
	return in.Action(id).JustPressed
}
