package components

import "github.com/yohamta/donburi"

type FinishPointData struct {
	Reached bool
}

var FinishPoint = donburi.NewComponentType[FinishPointData]()
