package components

import (
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Facing float64 // -1 left, 1 right
}

var Player = donburi.NewComponentType[PlayerData]()
