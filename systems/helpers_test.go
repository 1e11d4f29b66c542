package systems

import (
	"testing"

	"github.com/automoto/dizzy-ducklings/components"
	"github.com/automoto/dizzy-ducklings/systems/factory"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
	"github.com/yohamta/donburi/features/math"
)

const tick = 1.0 / 64

// newSpaceWorld returns a world with a 320x320 collision space and the given
// solid walls.
func newSpaceWorld(t *testing.T, walls ...[4]float64) donburi.World {
	t.Helper()
	w := donburi.NewWorld()
	factory.CreateSpace(w, 320, 320, 16, 16)
	for _, r := range walls {
		factory.CreateWall(w, r[0], r[1], r[2], r[3])
	}
	return w
}

// addBody adds a square physics body with its top-left corner at (x, y).
func addBody(w donburi.World, x, y, size float64, physics components.PhysicsData) *donburi.Entry {
	e := w.Entry(w.Create(components.Object, components.Physics, components.Motion))
	obj := resolv.NewObject(x, y, size, size)
	obj.SetShape(resolv.NewRectangle(0, 0, size, size))
	obj.Data = e
	components.Object.SetValue(e, components.ObjectData{Object: obj})
	components.Physics.SetValue(e, physics)
	components.Motion.SetValue(e, components.NewMotion(math.Vec2{X: x + size/2, Y: y + size/2}))
	if spaceEntry, ok := components.Space.First(w); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
	return e
}

func count(w donburi.World, c donburi.IComponentType) int {
	return donburi.NewQuery(filter.Contains(c)).Count(w)
}

type memStore struct {
	items map[string][]byte
}

func newMemStore() *memStore {
	return &memStore{items: map[string][]byte{}}
}

func (s *memStore) LoadItem(key string) ([]byte, error) {
	return s.items[key], nil
}

func (s *memStore) SaveItem(key string, data []byte) error {
	s.items[key] = data
	return nil
}

// withStore swaps the persistence backend for the duration of a test.
func withStore(t *testing.T, s Store) {
	t.Helper()
	UseStore(s)
	t.Cleanup(func() { UseStore(nil) })
}
