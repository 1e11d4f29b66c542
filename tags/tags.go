package tags

import "github.com/yohamta/donburi"

var (
	Player      = donburi.NewTag().SetName("Player")
	Duckling    = donburi.NewTag().SetName("Duckling")
	Wall        = donburi.NewTag().SetName("Wall")
	FinishPoint = donburi.NewTag().SetName("FinishPoint")

	// LevelScoped marks everything removed when a level is torn down.
	LevelScoped = donburi.NewTag().SetName("LevelScoped")
)

// Resolv tags for physics collision
const (
	ResolvSolid    = "solid"
	ResolvPlayer   = "Player"
	ResolvDuckling = "Duckling"
	ResolvFinish   = "finish"
)
