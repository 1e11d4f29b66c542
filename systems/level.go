package systems

import (
	"github.com/automoto/dizzy-ducklings/components"
	cfg "github.com/automoto/dizzy-ducklings/config"
	"github.com/automoto/dizzy-ducklings/shared/leveldata"
	"github.com/automoto/dizzy-ducklings/systems/factory"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// WorldSpawner builds and tears down levels in a donburi world.
type WorldSpawner struct {
	world    donburi.World
	tileSize float64
	cellSize int
	log      *log.Logger

	// Index reports the catalog index of the level being spawned. Nil means 0.
	Index func() int
}

func NewWorldSpawner(w donburi.World, logger *log.Logger) *WorldSpawner {
	if logger == nil {
		logger = log.Default()
	}
	return &WorldSpawner{
		world:    w,
		tileSize: cfg.C.TileSize,
		cellSize: cfg.Physics.CellSize,
		log:      logger,
	}
}

// SpawnLevel creates the level entity, its collision space, walls and finish
// areas.
func (s *WorldSpawner) SpawnLevel(def leveldata.LevelDefinition, m *leveldata.MapData) {
	index := 0
	if s.Index != nil {
		index = s.Index()
	}

	w, h := m.PixelSize()
	factory.CreateSpace(s.world, w, h, s.cellSize, s.cellSize)
	factory.CreateLevel(s.world, index, def, m)

	for _, r := range m.Solids {
		factory.CreateWall(s.world, r.X, r.Y, r.W, r.H)
	}
	for _, r := range m.Finish {
		factory.CreateFinishPoint(s.world, r.X, r.Y, r.W, r.H)
	}
	s.log.Debug("level geometry", "map", def.Map, "solids", len(m.Solids), "finish", len(m.Finish))
}

// SpawnPlayerAt creates the player on a tile and snaps the camera to it.
func (s *WorldSpawner) SpawnPlayerAt(t leveldata.Tile) {
	x, y, ok := s.tileCenter(t)
	if !ok {
		s.log.Warn("player spawned without a level", "tile", t)
		return
	}
	factory.CreatePlayer(s.world, x, y)

	camera := factory.CreateCamera(s.world, math.Vec2{X: x, Y: y})
	components.Camera.Get(camera).Position = math.Vec2{X: x, Y: y}
}

func (s *WorldSpawner) SpawnCollectibleAt(t leveldata.Tile) {
	x, y, ok := s.tileCenter(t)
	if !ok {
		s.log.Warn("duckling spawned without a level", "tile", t)
		return
	}
	factory.CreateDuckling(s.world, x, y)
}

func (s *WorldSpawner) DespawnAll() {
	if n := factory.DespawnLevel(s.world); n > 0 {
		s.log.Debug("despawned level", "entities", n)
	}
}

func (s *WorldSpawner) tileCenter(t leveldata.Tile) (float64, float64, bool) {
	levelEntry, ok := components.Level.First(s.world)
	if !ok {
		return 0, 0, false
	}
	level := components.Level.Get(levelEntry)
	x, y := leveldata.TileToWorld(t, level.Definition.Size, s.tileSize)
	return x, y, true
}
