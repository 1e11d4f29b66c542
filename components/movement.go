package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type MovementData struct {
	Speed     float64 // horizontal px/s at full intent
	JumpSpeed float64
}

var Movement = donburi.NewComponentType[MovementData]()

// MovementControllerData holds the player's movement intent. X is in [-1, 1],
// Y > 0 asks for a jump.
type MovementControllerData struct {
	Intent math.Vec2
}

var MovementController = donburi.NewComponentType[MovementControllerData]()
