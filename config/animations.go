package config

// AnimationID names a sprite animation.
type AnimationID int

const (
	AnimNone AnimationID = iota
	AnimIdle
	AnimWalk
	AnimDuckling
)

type AnimationDef struct {
	First int
	Last  int
	Step  int
	Speed float32 // fixed ticks per frame
}

// CharacterAnimations maps a sprite sheet key to its animation definitions.
var CharacterAnimations = map[string]map[AnimationID]AnimationDef{
	"player": {
		AnimIdle: {First: 0, Last: 1, Step: 1, Speed: 32},
		AnimWalk: {First: 2, Last: 5, Step: 1, Speed: 6},
	},
	"duckling": {
		AnimDuckling: {First: 0, Last: 3, Step: 1, Speed: 13}, // ~0.2s at 64Hz
	},
}
