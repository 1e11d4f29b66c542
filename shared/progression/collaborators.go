package progression

import "github.com/automoto/dizzy-ducklings/shared/leveldata"

// Fader runs screen fades. Each request must eventually be answered with one
// FadeCompleted event carrying the matching direction.
type Fader interface {
	FadeOut(seconds float64)
	FadeIn(seconds float64)
}

// MapLoader starts loading a map. Completion is reported back as a MapLoaded
// event with the same id.
type MapLoader interface {
	Load(mapID string)
}

// Spawner creates and removes level-scoped entities.
type Spawner interface {
	SpawnLevel(def leveldata.LevelDefinition, m *leveldata.MapData)
	SpawnPlayerAt(tile leveldata.Tile)
	SpawnCollectibleAt(tile leveldata.Tile)
	// DespawnAll removes every level-scoped entity. It is a no-op when nothing
	// is spawned.
	DespawnAll()
}

// Scoreboard tracks objectives and timing.
type Scoreboard interface {
	ResetAll()
	ResetObjectives(total int)
	IncrementCollected() (collected, total int)
	// GameCompleted reports the played time. fullRun is false when the game
	// did not start at the first level, so the time is not a whole-game record.
	GameCompleted(elapsedSeconds float64, fullRun bool)
}

// Screens switches between the top-level presentations.
type Screens interface {
	ShowGameOver()
	ShowTitle()
}

// Collaborators groups everything the controller talks to. Nil fields are
// replaced with no-op implementations.
type Collaborators struct {
	Fader   Fader
	Loader  MapLoader
	Spawner Spawner
	Score   Scoreboard
	Screens Screens
}

func (c Collaborators) withDefaults() Collaborators {
	if c.Fader == nil {
		c.Fader = nopFader{}
	}
	if c.Loader == nil {
		c.Loader = nopLoader{}
	}
	if c.Spawner == nil {
		c.Spawner = nopSpawner{}
	}
	if c.Score == nil {
		c.Score = nopScore{}
	}
	if c.Screens == nil {
		c.Screens = nopScreens{}
	}
	return c
}

type nopFader struct{}

func (nopFader) FadeOut(float64) {}
func (nopFader) FadeIn(float64)  {}

type nopLoader struct{}

func (nopLoader) Load(string) {}

type nopSpawner struct{}

func (nopSpawner) SpawnLevel(leveldata.LevelDefinition, *leveldata.MapData) {}
func (nopSpawner) SpawnPlayerAt(leveldata.Tile)                             {}
func (nopSpawner) SpawnCollectibleAt(leveldata.Tile)                        {}
func (nopSpawner) DespawnAll()                                              {}

type nopScore struct{}

func (nopScore) ResetAll()                      {}
func (nopScore) ResetObjectives(int)            {}
func (nopScore) IncrementCollected() (int, int) { return 0, 0 }
func (nopScore) GameCompleted(float64, bool)    {}

type nopScreens struct{}

func (nopScreens) ShowGameOver() {}
func (nopScreens) ShowTitle()    {}
