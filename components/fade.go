package components

import "github.com/yohamta/donburi"

// FadeData is the opacity of the full-screen fade overlay, 0 clear to 1 black.
type FadeData struct {
	Alpha float64
}

var Fade = donburi.NewComponentType[FadeData]()
