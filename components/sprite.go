package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// SpriteData is a drawable child of a physics body. Parent is a non-owning
// back-reference; the sprite is despawned together with its parent.
type SpriteData struct {
	Parent donburi.Entity
	Offset math.Vec2 // constant offset aligning the image with the collider
	Local  math.Vec2 // offset from the parent's physics position, set per frame
	Sheet  string    // image key in the asset store
	Size   int       // frame width and height in pixels
	FlipX  bool
}

var Sprite = donburi.NewComponentType[SpriteData]()
