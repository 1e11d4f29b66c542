package leveldata

import (
	"errors"
	"testing"
	"testing/fstest"
)

const fixtureTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" tiledversion="1.10.2" orientation="orthogonal" renderorder="right-down" width="3" height="3" tilewidth="32" tileheight="32" infinite="0" nextlayerid="3" nextobjectid="3">
 <tileset firstgid="1" name="tiles" tilewidth="32" tileheight="32" tilecount="2" columns="2">
  <image source="tiles.png" width="64" height="32"/>
 </tileset>
 <layer id="1" name="collision" width="3" height="3">
  <data encoding="csv">
1,0,0,
0,0,0,
1,1,1
</data>
 </layer>
 <objectgroup id="2" name="Finish">
  <object id="1" x="32" y="0" width="32" height="64"/>
  <object id="2" x="64" y="32"/>
 </objectgroup>
</map>
`

func fixtureFS() fstest.MapFS {
	return fstest.MapFS{
		"levels/test.tmx": &fstest.MapFile{Data: []byte(fixtureTMX)},
	}
}

func TestLoadMap(t *testing.T) {
	m, err := LoadMap(fixtureFS(), "levels/test.tmx")
	if err != nil {
		t.Fatalf("LoadMap: %v", err)
	}

	if m.Width != 3 || m.Height != 3 || m.TileWidth != 32 || m.TileHeight != 32 {
		t.Fatalf("unexpected dimensions: %+v", m)
	}
	if w, h := m.PixelSize(); w != 96 || h != 96 {
		t.Fatalf("PixelSize = %dx%d, want 96x96", w, h)
	}

	wantSolids := []Rect{
		{X: 0, Y: 0, W: 32, H: 32},
		{X: 0, Y: 64, W: 32, H: 32},
		{X: 32, Y: 64, W: 32, H: 32},
		{X: 64, Y: 64, W: 32, H: 32},
	}
	if len(m.Solids) != len(wantSolids) {
		t.Fatalf("got %d solids, want %d: %v", len(m.Solids), len(wantSolids), m.Solids)
	}
	for i, want := range wantSolids {
		if m.Solids[i] != want {
			t.Errorf("solid %d = %v, want %v", i, m.Solids[i], want)
		}
	}

	wantFinish := []Rect{
		{X: 32, Y: 0, W: 32, H: 64},
		{X: 64, Y: 32, W: 32, H: 32},
	}
	if len(m.Finish) != len(wantFinish) {
		t.Fatalf("got %d finish rects, want %d", len(m.Finish), len(wantFinish))
	}
	for i, want := range wantFinish {
		if m.Finish[i] != want {
			t.Errorf("finish %d = %v, want %v", i, m.Finish[i], want)
		}
	}
}

func TestLoadMapMissing(t *testing.T) {
	_, err := LoadMap(fixtureFS(), "levels/nope.tmx")
	if !errors.Is(err, ErrUnknownMap) {
		t.Fatalf("err = %v, want ErrUnknownMap", err)
	}
}

func TestAsyncLoaderDeliversOneResultPerLoad(t *testing.T) {
	l := NewAsyncLoader(fixtureFS(), "levels")
	if got := l.Poll(); len(got) != 0 {
		t.Fatalf("Poll before Load returned %d results", len(got))
	}

	l.Load("test.tmx")
	l.Load("missing.tmx")
	l.Wait()

	results := l.Poll()
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	byID := map[string]LoadResult{}
	for _, r := range results {
		byID[r.MapID] = r
	}

	ok := byID["test.tmx"]
	if ok.Err != nil || ok.Map == nil {
		t.Fatalf("test.tmx result = %+v", ok)
	}
	bad := byID["missing.tmx"]
	if !errors.Is(bad.Err, ErrUnknownMap) || bad.Map != nil {
		t.Fatalf("missing.tmx result = %+v", bad)
	}

	if again := l.Poll(); len(again) != 0 {
		t.Fatalf("results delivered twice: %v", again)
	}
}

func TestAsyncLoaderQueuesManyLoadsBeforePoll(t *testing.T) {
	l := NewAsyncLoader(fixtureFS(), "levels")
	const loads = 20
	for i := 0; i < loads; i++ {
		l.Load("test.tmx")
	}
	l.Wait()

	results := l.Poll()
	if len(results) != loads {
		t.Fatalf("got %d results, want %d", len(results), loads)
	}
	for _, r := range results {
		if r.Err != nil || r.Map == nil {
			t.Fatalf("result %+v, want a parsed map", r)
		}
	}
}
