package progression

import "github.com/automoto/dizzy-ducklings/shared/leveldata"

type EventKind int

const (
	EventStartNewGame EventKind = iota
	EventFadeCompleted
	EventLevelEnd
	EventCollectibleCollected
	EventMapLoaded
	EventTick
)

func (k EventKind) String() string {
	switch k {
	case EventStartNewGame:
		return "StartNewGame"
	case EventFadeCompleted:
		return "FadeCompleted"
	case EventLevelEnd:
		return "LevelEnd"
	case EventCollectibleCollected:
		return "CollectibleCollected"
	case EventMapLoaded:
		return "MapLoaded"
	case EventTick:
		return "Tick"
	default:
		return "Unknown"
	}
}

// Event is a tagged message for Controller.Dispatch. Only the fields relevant
// to Kind are read.
type Event struct {
	Kind EventKind

	// EventFadeCompleted
	Direction FadeDirection

	// EventMapLoaded
	MapID string
	Map   *leveldata.MapData
	Err   error
}

func FadeCompleted(dir FadeDirection) Event {
	return Event{Kind: EventFadeCompleted, Direction: dir}
}

func MapLoaded(result leveldata.LoadResult) Event {
	return Event{Kind: EventMapLoaded, MapID: result.MapID, Map: result.Map, Err: result.Err}
}
