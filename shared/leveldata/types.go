// Package leveldata provides the level catalog and TMX map parsing.
// It does not import ebitengine, donburi or resolv.
package leveldata

import "errors"

var (
	ErrNoLevels   = errors.New("leveldata: catalog has no levels")
	ErrUnknownMap = errors.New("leveldata: unknown map")
)

// Tile is a tile coordinate relative to the map center, y pointing up.
type Tile struct {
	X, Y int
}

// Size is a map size in tiles.
type Size struct {
	W, H int
}

// Rect is an axis-aligned rectangle in map pixel space (origin top-left, y down).
type Rect struct {
	X, Y, W, H float64
}

// MapData holds everything the game needs from a parsed TMX level.
type MapData struct {
	Width, Height         int // in tiles
	TileWidth, TileHeight int
	Solids                []Rect
	Finish                []Rect
}

// PixelSize returns the map dimensions in pixels.
func (m *MapData) PixelSize() (int, int) {
	return m.Width * m.TileWidth, m.Height * m.TileHeight
}
