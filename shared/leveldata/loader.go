package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sync"

	"github.com/lafriks/go-tiled"
)

const (
	// CollisionLayer is the tile layer whose non-empty tiles are solid.
	CollisionLayer = "collision"
	// FinishGroup is the object group holding level finish areas.
	FinishGroup = "Finish"
)

// LoadMap parses a TMX file and returns its collision and finish data. It takes
// an fs.FS so callers can pass embed.FS (game) or fstest.MapFS (tests).
func LoadMap(fsys fs.FS, tmxPath string) (*MapData, error) {
	if _, err := fs.Stat(fsys, tmxPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrUnknownMap, tmxPath)
		}
		return nil, fmt.Errorf("stat TMX %s: %w", tmxPath, err)
	}

	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	data := &MapData{
		Width:      levelMap.Width,
		Height:     levelMap.Height,
		TileWidth:  levelMap.TileWidth,
		TileHeight: levelMap.TileHeight,
	}

	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	for _, layer := range levelMap.Layers {
		if layer.Name != CollisionLayer {
			continue
		}
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				i := y*levelMap.Width + x
				if i >= len(layer.Tiles) {
					break
				}
				tile := layer.Tiles[i]
				if tile == nil || tile.IsNil() {
					continue
				}
				data.Solids = append(data.Solids, Rect{
					X: float64(x) * tileW,
					Y: float64(y) * tileH,
					W: tileW,
					H: tileH,
				})
			}
		}
		break
	}

	for _, og := range levelMap.ObjectGroups {
		if og.Name != FinishGroup {
			continue
		}
		for _, o := range og.Objects {
			w, h := o.Width, o.Height
			// Point objects get one tile of extent.
			if w == 0 {
				w = tileW
			}
			if h == 0 {
				h = tileH
			}
			data.Finish = append(data.Finish, Rect{X: o.X, Y: o.Y, W: w, H: h})
		}
	}

	return data, nil
}

// LoadResult is one finished asynchronous map load.
type LoadResult struct {
	MapID string
	Map   *MapData
	Err   error
}

// AsyncLoader parses maps on a background goroutine. Results are collected
// with Poll from the game loop, so the loop itself never blocks on disk.
// Finished results queue without limit, so a worker never waits on Poll.
type AsyncLoader struct {
	fsys fs.FS
	dir  string
	wg   sync.WaitGroup

	mu      sync.Mutex
	results []LoadResult
}

func NewAsyncLoader(fsys fs.FS, dir string) *AsyncLoader {
	return &AsyncLoader{
		fsys: fsys,
		dir:  dir,
	}
}

// Load starts parsing mapID. Exactly one LoadResult is produced per call.
func (l *AsyncLoader) Load(mapID string) {
	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		m, err := LoadMap(l.fsys, path.Join(l.dir, mapID))
		l.mu.Lock()
		l.results = append(l.results, LoadResult{MapID: mapID, Map: m, Err: err})
		l.mu.Unlock()
	}()
}

// Poll returns every result finished so far without blocking.
func (l *AsyncLoader) Poll() []LoadResult {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := l.results
	l.results = nil
	return out
}

// Wait blocks until every started load has delivered its result. Results still
// need to be drained with Poll.
func (l *AsyncLoader) Wait() {
	l.wg.Wait()
}
