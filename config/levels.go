package config

import "github.com/automoto/dizzy-ducklings/shared/leveldata"

// LevelsDir is the directory inside the embedded assets that holds the TMX maps.
const LevelsDir = "levels"

type tile = leveldata.Tile

func level(mapID string, w, h int, start tile, ducklings ...tile) leveldata.LevelDefinition {
	return leveldata.LevelDefinition{
		Map:       mapID,
		Size:      leveldata.Size{W: w, H: h},
		Start:     start,
		Ducklings: ducklings,
	}
}

// DefaultCatalog returns the compiled-in level list. Tiles are relative to the
// map center with y pointing up.
func DefaultCatalog() leveldata.Catalog {
	return leveldata.NewCatalog(
		level("level1.tmx", 21, 21, tile{-2, 2},
			tile{0, -6}, tile{0, 8}, tile{6, 3}),
		level("level2.tmx", 21, 21, tile{-8, -8},
			tile{-8, 8}, tile{8, -5}, tile{4, 0}, tile{-6, 1}),
		level("level3.tmx", 21, 21, tile{-2, -3},
			tile{-8, 0}, tile{8, 0}, tile{8, 8}, tile{-8, -8}, tile{8, -8}, tile{-8, 8}),
		level("level4.tmx", 21, 21, tile{5, 5},
			tile{-7, -7}, tile{7, -7}, tile{-7, 0}, tile{7, 0}, tile{0, 7}, tile{-3, 8}, tile{3, 8}),
		level("level5.tmx", 21, 21, tile{0, 0},
			tile{-5, -2}, tile{5, -2}, tile{-5, 1}, tile{5, 1}, tile{-9, 4}, tile{9, -4}, tile{1, 8},
			tile{-2, -4}, tile{2, -4}, tile{3, 6}),
		level("level6.tmx", 31, 31, tile{-2, 4},
			tile{-13, -1}, tile{-13, -3}, tile{0, -13}, tile{5, -9}, tile{-7, -13}, tile{9, -4},
			tile{-11, 11}, tile{0, 11}, tile{13, 1}, tile{3, 7}),
		level("level7.tmx", 31, 31, tile{0, 2},
			tile{-3, 0}, tile{3, 0}, tile{0, -3}, tile{-11, 0}, tile{11, 0}, tile{0, 11}, tile{0, -11},
			tile{9, 9}, tile{9, -9}, tile{-9, -9}, tile{-9, 9}),
		level("level8.tmx", 31, 31, tile{-2, -2},
			tile{-4, 2}, tile{-8, 0}, tile{4, 0}, tile{6, -3}, tile{4, -8}, tile{8, 0}, tile{10, 7},
			tile{-8, 6}, tile{0, 8}, tile{13, 7}, tile{12, -6}, tile{-10, -6}, tile{-11, -10}),
		level("level9.tmx", 25, 25, tile{10, -10},
			tile{3, 3}, tile{-3, 3}, tile{-3, -3}, tile{3, -3}, tile{-10, 0}, tile{10, 0}, tile{3, 10},
			tile{-3, -10}, tile{10, 10}, tile{-10, -10}, tile{-10, 10}, tile{4, 11}, tile{4, -11}),
		level("level11.tmx", 25, 25, tile{7, 1},
			tile{0, 1}, tile{-1, 1}, tile{-2, 1}, tile{-3, 1}, tile{1, 1}, tile{2, 1}, tile{3, 1},
			tile{4, 7}, tile{5, 7}, tile{6, 7}, tile{7, 7}, tile{8, 7},
			tile{-4, 7}, tile{-5, 7}, tile{-6, 7}, tile{-7, 7}, tile{-8, 7},
			tile{-4, -5}, tile{-5, -5}, tile{-6, -5}, tile{-7, -5}, tile{-8, -5},
			tile{4, -5}, tile{5, -5}, tile{6, -5}, tile{7, -5}, tile{8, -5},
			tile{-11, -11}, tile{-11, 11}, tile{11, -11}),
	)
}
