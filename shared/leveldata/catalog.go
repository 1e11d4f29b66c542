package leveldata

// LevelDefinition describes one level. Values are never mutated after the
// catalog is built.
type LevelDefinition struct {
	Map       string // TMX file name inside the levels directory
	Size      Size
	Start     Tile
	Ducklings []Tile // spawn order
}

// Catalog is the ordered, read-only list of levels. The index is the level number.
type Catalog struct {
	levels []LevelDefinition
}

// NewCatalog copies defs so later changes to the caller's slices cannot leak in.
func NewCatalog(defs ...LevelDefinition) Catalog {
	levels := make([]LevelDefinition, len(defs))
	for i, d := range defs {
		levels[i] = d.clone()
	}
	return Catalog{levels: levels}
}

func (c Catalog) Len() int {
	return len(c.levels)
}

// At returns the level at index i. ok is false when i is outside the catalog,
// which callers treat as "no more levels".
func (c Catalog) At(i int) (def LevelDefinition, ok bool) {
	if i < 0 || i >= len(c.levels) {
		return LevelDefinition{}, false
	}
	return c.levels[i].clone(), true
}

// Levels returns a copy of every definition in order.
func (c Catalog) Levels() []LevelDefinition {
	out := make([]LevelDefinition, len(c.levels))
	for i, l := range c.levels {
		out[i] = l.clone()
	}
	return out
}

func (d LevelDefinition) clone() LevelDefinition {
	d.Ducklings = append([]Tile(nil), d.Ducklings...)
	return d
}

// TileToWorld converts a centered, y-up tile coordinate into the pixel center of
// that tile in map space (origin top-left, y down).
func TileToWorld(t Tile, size Size, tileSize float64) (x, y float64) {
	col := t.X + (size.W-1)/2
	row := (size.H-1)/2 - t.Y
	return (float64(col) + 0.5) * tileSize, (float64(row) + 0.5) * tileSize
}
