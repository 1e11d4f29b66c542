package progression

import (
	"errors"
	"fmt"
	"io"
	"reflect"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/automoto/dizzy-ducklings/shared/leveldata"
)

// recorder implements every collaborator and records calls in order.
type recorder struct {
	calls     []string
	collected int
	total     int
	completed []float64
	fullRuns  []bool
}

func (r *recorder) add(format string, args ...any) {
	r.calls = append(r.calls, fmt.Sprintf(format, args...))
}

func (r *recorder) FadeOut(s float64) { r.add("FadeOut(%.1f)", s) }
func (r *recorder) FadeIn(s float64)  { r.add("FadeIn(%.1f)", s) }
func (r *recorder) Load(id string)    { r.add("Load(%s)", id) }

func (r *recorder) SpawnLevel(def leveldata.LevelDefinition, _ *leveldata.MapData) {
	r.add("SpawnLevel(%s)", def.Map)
}
func (r *recorder) SpawnPlayerAt(t leveldata.Tile)      { r.add("SpawnPlayerAt(%d,%d)", t.X, t.Y) }
func (r *recorder) SpawnCollectibleAt(t leveldata.Tile) { r.add("SpawnCollectibleAt(%d,%d)", t.X, t.Y) }
func (r *recorder) DespawnAll()                         { r.add("DespawnAll") }

func (r *recorder) ResetAll() { r.add("ResetAll") }
func (r *recorder) ResetObjectives(total int) {
	r.collected, r.total = 0, total
	r.add("ResetObjectives(%d)", total)
}
func (r *recorder) IncrementCollected() (int, int) {
	r.collected++
	return r.collected, r.total
}
func (r *recorder) GameCompleted(s float64, fullRun bool) {
	r.completed = append(r.completed, s)
	r.fullRuns = append(r.fullRuns, fullRun)
	r.add("GameCompleted")
}

func (r *recorder) ShowGameOver() { r.add("ShowGameOver") }
func (r *recorder) ShowTitle()    { r.add("ShowTitle") }

func (r *recorder) count(call string) int {
	n := 0
	for _, c := range r.calls {
		if c == call {
			n++
		}
	}
	return n
}

func (r *recorder) reset() { r.calls = nil }

func twoLevels() leveldata.Catalog {
	return leveldata.NewCatalog(
		leveldata.LevelDefinition{
			Map:       "one.tmx",
			Size:      leveldata.Size{W: 21, H: 21},
			Start:     leveldata.Tile{X: -2, Y: 2},
			Ducklings: []leveldata.Tile{{X: 0, Y: -6}, {X: 0, Y: 8}, {X: 6, Y: 3}},
		},
		leveldata.LevelDefinition{
			Map:       "two.tmx",
			Size:      leveldata.Size{W: 21, H: 21},
			Start:     leveldata.Tile{X: -8, Y: -8},
			Ducklings: []leveldata.Tile{{X: -8, Y: 8}, {X: 8, Y: -5}},
		},
	)
}

type harness struct {
	ctrl   *Controller
	rec    *recorder
	states []State
}

func newHarness(catalog leveldata.Catalog, opts Options) *harness {
	h := &harness{rec: &recorder{}, states: []State{Inactive}}
	opts.Logger = log.New(io.Discard)
	opts.OnTransition = func(_, to State) { h.states = append(h.states, to) }
	h.ctrl = New(catalog, Collaborators{
		Fader:   h.rec,
		Loader:  h.rec,
		Spawner: h.rec,
		Score:   h.rec,
		Screens: h.rec,
	}, opts)
	return h
}

func defaultOpts() Options {
	return Options{FadeSeconds: 0.5, MinTicksToEnd: 10, TickRate: 60}
}

// enterLevel drives the controller from a fade-out completion into Active with
// the current level's map spawned and the tick guard satisfied.
func (h *harness) enterLevel(t *testing.T) {
	t.Helper()
	h.ctrl.OnFadeCompleted(DirectionOut)
	def, ok := h.ctrl.CurrentLevel()
	if !ok {
		t.Fatalf("no current level at index %d", h.ctrl.Index())
	}
	h.ctrl.OnMapLoaded(def.Map, &leveldata.MapData{}, nil)
	h.ctrl.OnFadeCompleted(DirectionIn)
	for i := 0; i < h.ctrl.opts.MinTicksToEnd; i++ {
		h.ctrl.Tick()
	}
	if h.ctrl.State() != Active {
		t.Fatalf("state = %v, want Active", h.ctrl.State())
	}
}

func TestStartNewGameReachesActive(t *testing.T) {
	h := newHarness(twoLevels(), defaultOpts())

	h.ctrl.StartNewGame()
	h.ctrl.OnFadeCompleted(DirectionOut)
	h.ctrl.OnMapLoaded("one.tmx", &leveldata.MapData{}, nil)
	h.ctrl.OnFadeCompleted(DirectionIn)

	want := []State{Inactive, FadingOutForEnd, FadingInForStart, Active}
	if !reflect.DeepEqual(h.states, want) {
		t.Fatalf("states = %v, want %v", h.states, want)
	}
	if h.ctrl.Index() != 0 {
		t.Fatalf("index = %d, want 0", h.ctrl.Index())
	}

	wantCalls := []string{
		"ResetAll",
		"FadeOut(0.5)",
		"DespawnAll",
		"ResetObjectives(3)",
		"Load(one.tmx)",
		"FadeIn(0.5)",
		"SpawnLevel(one.tmx)",
		"SpawnPlayerAt(-2,2)",
		"SpawnCollectibleAt(0,-6)",
		"SpawnCollectibleAt(0,8)",
		"SpawnCollectibleAt(6,3)",
	}
	if !reflect.DeepEqual(h.rec.calls, wantCalls) {
		t.Fatalf("calls =\n%v\nwant\n%v", h.rec.calls, wantCalls)
	}
}

func TestStartNewGameFromAnyState(t *testing.T) {
	h := newHarness(twoLevels(), defaultOpts())
	h.ctrl.StartNewGame()
	h.enterLevel(t)
	h.ctrl.RequestLevelEnd()
	h.enterLevel(t)
	if h.ctrl.Index() != 1 {
		t.Fatalf("index = %d, want 1", h.ctrl.Index())
	}

	h.ctrl.StartNewGame()
	if h.ctrl.State() != FadingOutForEnd || h.ctrl.Index() != 0 {
		t.Fatalf("after restart: state %v index %d", h.ctrl.State(), h.ctrl.Index())
	}
	h.enterLevel(t)
	if h.ctrl.Index() != 0 {
		t.Fatalf("restart spawned index %d, want 0", h.ctrl.Index())
	}
	if got := h.rec.count("ResetAll"); got != 2 {
		t.Fatalf("ResetAll called %d times, want 2", got)
	}
}

func TestAdvanceLevelReachesEndExactlyOnce(t *testing.T) {
	catalog := twoLevels()
	h := newHarness(catalog, defaultOpts())

	var results []bool
	for i := 0; i < catalog.Len(); i++ {
		results = append(results, h.ctrl.advanceLevel())
	}
	want := []bool{true, false}
	if !reflect.DeepEqual(results, want) {
		t.Fatalf("advanceLevel results = %v, want %v", results, want)
	}
	if h.ctrl.Index() != catalog.Len() {
		t.Fatalf("index = %d, want %d", h.ctrl.Index(), catalog.Len())
	}
	if _, ok := h.ctrl.CurrentLevel(); ok {
		t.Fatalf("CurrentLevel reported a level past the end")
	}

	h.ctrl.advanceLevel()
	if h.ctrl.Index() != catalog.Len() {
		t.Fatalf("index moved past catalog length: %d", h.ctrl.Index())
	}
}

func TestDuplicateFadeOutAdvancesOnce(t *testing.T) {
	h := newHarness(twoLevels(), defaultOpts())
	h.ctrl.StartNewGame()
	h.enterLevel(t)

	if !h.ctrl.RequestLevelEnd() {
		t.Fatalf("RequestLevelEnd rejected")
	}
	h.ctrl.OnFadeCompleted(DirectionOut)
	h.ctrl.OnFadeCompleted(DirectionOut)

	if h.ctrl.Index() != 1 {
		t.Fatalf("index = %d, want 1", h.ctrl.Index())
	}
	if h.ctrl.State() != FadingInForStart {
		t.Fatalf("state = %v, want FadingInForStart", h.ctrl.State())
	}
	if got := h.rec.count("Load(two.tmx)"); got != 1 {
		t.Fatalf("two.tmx loaded %d times, want 1", got)
	}
}

func TestMismatchedFadeDirectionIgnored(t *testing.T) {
	h := newHarness(twoLevels(), defaultOpts())
	h.ctrl.StartNewGame()

	h.ctrl.OnFadeCompleted(DirectionIn)
	if h.ctrl.State() != FadingOutForEnd {
		t.Fatalf("fade-in completion moved state to %v", h.ctrl.State())
	}

	h.ctrl.OnFadeCompleted(DirectionOut)
	h.ctrl.OnFadeCompleted(DirectionOut)
	if h.ctrl.State() != FadingInForStart {
		t.Fatalf("state = %v, want FadingInForStart", h.ctrl.State())
	}
}

func TestRequestLevelEndIgnoredOutsideActive(t *testing.T) {
	cases := []struct {
		name  string
		setup func(h *harness)
		state State
	}{
		{
			name:  "inactive",
			setup: func(h *harness) {},
			state: Inactive,
		},
		{
			name: "fading_in_for_start",
			setup: func(h *harness) {
				h.ctrl.StartNewGame()
				h.ctrl.OnFadeCompleted(DirectionOut)
				h.ctrl.OnMapLoaded("one.tmx", &leveldata.MapData{}, nil)
				for i := 0; i < 20; i++ {
					h.ctrl.Tick()
				}
			},
			state: FadingInForStart,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := newHarness(twoLevels(), defaultOpts())
			tc.setup(h)
			h.rec.reset()
			index := h.ctrl.Index()

			if h.ctrl.RequestLevelEnd() {
				t.Fatalf("RequestLevelEnd took effect in %v", tc.state)
			}
			if h.ctrl.State() != tc.state || h.ctrl.Index() != index {
				t.Fatalf("state %v index %d changed", h.ctrl.State(), h.ctrl.Index())
			}
			if len(h.rec.calls) != 0 {
				t.Fatalf("unexpected side effects: %v", h.rec.calls)
			}
		})
	}
}

func TestLevelEndGuard(t *testing.T) {
	cases := []struct {
		name  string
		ticks int
		ends  bool
	}{
		{"tick_3", 3, false},
		{"tick_9", 9, false},
		{"tick_10", 10, true},
		{"tick_25", 25, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := newHarness(twoLevels(), defaultOpts())
			h.ctrl.StartNewGame()
			h.ctrl.OnFadeCompleted(DirectionOut)
			h.ctrl.OnMapLoaded("one.tmx", &leveldata.MapData{}, nil)
			h.ctrl.OnFadeCompleted(DirectionIn)
			for i := 0; i < tc.ticks; i++ {
				h.ctrl.Tick()
			}

			got := h.ctrl.RequestLevelEnd()
			if got != tc.ends {
				t.Fatalf("RequestLevelEnd at tick %d = %v, want %v", tc.ticks, got, tc.ends)
			}
			wantState := Active
			if tc.ends {
				wantState = FadingOutForEnd
			}
			if h.ctrl.State() != wantState {
				t.Fatalf("state = %v, want %v", h.ctrl.State(), wantState)
			}
		})
	}
}

func TestLevelEndRequiresSpawnedMap(t *testing.T) {
	h := newHarness(twoLevels(), defaultOpts())
	h.ctrl.StartNewGame()
	h.ctrl.OnFadeCompleted(DirectionOut)
	h.ctrl.OnFadeCompleted(DirectionIn)
	for i := 0; i < 30; i++ {
		h.ctrl.Tick()
	}
	if h.ctrl.RequestLevelEnd() {
		t.Fatalf("level ended before its map was spawned")
	}
	if !h.ctrl.AwaitingMap() {
		t.Fatalf("controller stopped waiting for the map")
	}
}

func TestLastLevelCompletesGameOnce(t *testing.T) {
	h := newHarness(twoLevels(), defaultOpts())
	h.ctrl.StartNewGame()
	h.enterLevel(t)
	h.ctrl.RequestLevelEnd()
	h.enterLevel(t)
	if h.ctrl.Index() != h.ctrl.LevelCount()-1 {
		t.Fatalf("not on last level: %d", h.ctrl.Index())
	}

	if !h.ctrl.RequestLevelEnd() {
		t.Fatalf("RequestLevelEnd rejected on last level")
	}
	h.rec.reset()
	h.ctrl.OnFadeCompleted(DirectionOut)
	h.ctrl.OnFadeCompleted(DirectionOut)

	if len(h.rec.completed) != 1 {
		t.Fatalf("GameCompleted called %d times, want 1", len(h.rec.completed))
	}
	for _, c := range h.rec.calls {
		if len(c) >= 10 && c[:10] == "SpawnLevel" {
			t.Fatalf("level spawned after game completion: %v", h.rec.calls)
		}
	}
	if h.ctrl.State() != Inactive {
		t.Fatalf("state = %v, want Inactive", h.ctrl.State())
	}
	if got := h.rec.count("ShowGameOver"); got != 1 {
		t.Fatalf("ShowGameOver called %d times, want 1", got)
	}

	tail := h.states[len(h.states)-2:]
	if !reflect.DeepEqual(tail, []State{FadingOutForCompletion, Inactive}) {
		t.Fatalf("terminal states = %v", tail)
	}
	if _, ok := h.ctrl.CurrentLevel(); ok {
		t.Fatalf("CurrentLevel reported a level after completion")
	}
}

func TestCollectingAllEndsLevel(t *testing.T) {
	h := newHarness(twoLevels(), defaultOpts())
	h.ctrl.StartNewGame()
	h.ctrl.OnFadeCompleted(DirectionOut)
	h.ctrl.OnMapLoaded("one.tmx", &leveldata.MapData{}, nil)
	h.ctrl.OnFadeCompleted(DirectionIn)

	// All three collected before the guard has elapsed.
	for i := 0; i < 3; i++ {
		h.ctrl.Tick()
		h.ctrl.OnCollectibleCollected()
	}
	if h.ctrl.State() != Active {
		t.Fatalf("level ended inside the guard window")
	}

	for h.ctrl.TicksSinceSpawn() < 9 {
		h.ctrl.Tick()
	}
	if h.ctrl.State() != Active {
		t.Fatalf("level ended at tick %d", h.ctrl.TicksSinceSpawn())
	}
	h.ctrl.Tick()
	if h.ctrl.State() != FadingOutForEnd {
		t.Fatalf("state = %v after guard, want FadingOutForEnd", h.ctrl.State())
	}
}

func TestPlayedSecondsReported(t *testing.T) {
	catalog := leveldata.NewCatalog(leveldata.LevelDefinition{Map: "only.tmx"})
	h := newHarness(catalog, defaultOpts())
	h.ctrl.StartNewGame()
	h.ctrl.OnFadeCompleted(DirectionOut)
	h.ctrl.OnMapLoaded("only.tmx", &leveldata.MapData{}, nil)
	h.ctrl.OnFadeCompleted(DirectionIn)
	for i := 0; i < 90; i++ {
		h.ctrl.Tick()
	}
	h.ctrl.RequestLevelEnd()
	// Ticks during the fade do not count.
	for i := 0; i < 30; i++ {
		h.ctrl.Tick()
	}
	h.ctrl.OnFadeCompleted(DirectionOut)

	if len(h.rec.completed) != 1 || h.rec.completed[0] != 1.5 {
		t.Fatalf("GameCompleted seconds = %v, want [1.5]", h.rec.completed)
	}
}

func TestStaleMapLoadIgnored(t *testing.T) {
	h := newHarness(twoLevels(), defaultOpts())
	h.ctrl.StartNewGame()
	h.ctrl.OnFadeCompleted(DirectionOut)

	h.ctrl.OnMapLoaded("two.tmx", &leveldata.MapData{}, nil)
	if h.rec.count("SpawnLevel(two.tmx)") != 0 {
		t.Fatalf("stale map spawned")
	}
	if !h.ctrl.AwaitingMap() {
		t.Fatalf("stale result cleared the pending load")
	}

	h.ctrl.OnMapLoaded("one.tmx", &leveldata.MapData{}, nil)
	h.ctrl.OnMapLoaded("one.tmx", &leveldata.MapData{}, nil)
	if got := h.rec.count("SpawnLevel(one.tmx)"); got != 1 {
		t.Fatalf("one.tmx spawned %d times, want 1", got)
	}
}

func TestMapLoadFailureAborts(t *testing.T) {
	cases := []struct {
		name string
		m    *leveldata.MapData
		err  error
	}{
		{"error", nil, errors.New("broken tmx")},
		{"nil_map", nil, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := newHarness(twoLevels(), defaultOpts())
			h.ctrl.StartNewGame()
			h.ctrl.OnFadeCompleted(DirectionOut)
			h.rec.reset()

			h.ctrl.OnMapLoaded("one.tmx", tc.m, tc.err)

			want := []string{"DespawnAll", "ShowTitle"}
			if !reflect.DeepEqual(h.rec.calls, want) {
				t.Fatalf("calls = %v, want %v", h.rec.calls, want)
			}
			if h.ctrl.State() != Inactive || h.ctrl.AwaitingMap() {
				t.Fatalf("state %v awaiting %v", h.ctrl.State(), h.ctrl.AwaitingMap())
			}
		})
	}
}

func TestMapLoadTimeout(t *testing.T) {
	opts := defaultOpts()
	opts.MapLoadTimeout = 5
	h := newHarness(twoLevels(), opts)
	h.ctrl.StartNewGame()
	h.ctrl.OnFadeCompleted(DirectionOut)

	for i := 0; i < 4; i++ {
		h.ctrl.Tick()
	}
	if h.ctrl.State() != FadingInForStart {
		t.Fatalf("aborted early: %v", h.ctrl.State())
	}
	h.ctrl.Tick()
	if h.ctrl.State() != Inactive || h.rec.count("ShowTitle") != 1 {
		t.Fatalf("timeout did not abort: state %v calls %v", h.ctrl.State(), h.rec.calls)
	}

	// The late result is stale now.
	h.ctrl.OnMapLoaded("one.tmx", &leveldata.MapData{}, nil)
	if h.rec.count("SpawnLevel(one.tmx)") != 0 {
		t.Fatalf("late map spawned after timeout")
	}
}

func TestNoTimeoutWaitsForever(t *testing.T) {
	h := newHarness(twoLevels(), defaultOpts())
	h.ctrl.StartNewGame()
	h.ctrl.OnFadeCompleted(DirectionOut)
	for i := 0; i < 10000; i++ {
		h.ctrl.Tick()
	}
	if !h.ctrl.AwaitingMap() || h.ctrl.State() != FadingInForStart {
		t.Fatalf("stopped waiting: state %v", h.ctrl.State())
	}
}

func TestEmptyCatalogCompletesImmediately(t *testing.T) {
	h := newHarness(leveldata.NewCatalog(), defaultOpts())
	h.ctrl.StartNewGame()
	h.ctrl.OnFadeCompleted(DirectionOut)
	if h.ctrl.State() != FadingOutForCompletion {
		t.Fatalf("state = %v, want FadingOutForCompletion", h.ctrl.State())
	}
	if len(h.rec.completed) != 1 {
		t.Fatalf("GameCompleted not reported")
	}
}

func TestDispatch(t *testing.T) {
	h := newHarness(twoLevels(), defaultOpts())
	events := []Event{
		{Kind: EventStartNewGame},
		FadeCompleted(DirectionOut),
		MapLoaded(leveldata.LoadResult{MapID: "one.tmx", Map: &leveldata.MapData{}}),
		FadeCompleted(DirectionIn),
	}
	for i := 0; i < 10; i++ {
		events = append(events, Event{Kind: EventTick})
	}
	events = append(events, Event{Kind: EventLevelEnd})
	for _, e := range events {
		h.ctrl.Dispatch(e)
	}

	want := []State{Inactive, FadingOutForEnd, FadingInForStart, Active, FadingOutForEnd}
	if !reflect.DeepEqual(h.states, want) {
		t.Fatalf("states = %v, want %v", h.states, want)
	}
}

func TestNilCollaboratorsAreSafe(t *testing.T) {
	c := New(twoLevels(), Collaborators{}, Options{Logger: log.New(io.Discard)})
	c.StartNewGame()
	c.OnFadeCompleted(DirectionOut)
	c.OnMapLoaded("one.tmx", &leveldata.MapData{}, nil)
	c.OnFadeCompleted(DirectionIn)
	c.OnCollectibleCollected()
	c.Tick()
	if c.State() != Active {
		t.Fatalf("state = %v, want Active", c.State())
	}
}

func TestStartLevelOption(t *testing.T) {
	cases := []struct {
		name  string
		start int
		want  int
	}{
		{"default", 0, 0},
		{"second", 1, 1},
		{"out_of_range", 5, 0},
		{"negative", -1, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			opts := defaultOpts()
			opts.StartLevel = tc.start
			h := newHarness(twoLevels(), opts)
			h.ctrl.StartNewGame()
			h.enterLevel(t)
			if h.ctrl.Index() != tc.want {
				t.Fatalf("index = %d, want %d", h.ctrl.Index(), tc.want)
			}
		})
	}
}

func TestCompletionReportsFullRun(t *testing.T) {
	cases := []struct {
		name  string
		start int
		want  bool
	}{
		{"from_first_level", 0, true},
		{"from_second_level", 1, false},
		{"out_of_range_start", 5, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			opts := defaultOpts()
			opts.StartLevel = tc.start
			h := newHarness(twoLevels(), opts)
			h.ctrl.StartNewGame()
			for {
				h.enterLevel(t)
				if !h.ctrl.RequestLevelEnd() {
					t.Fatalf("level %d did not end", h.ctrl.Index())
				}
				if h.ctrl.Index() == h.ctrl.LevelCount()-1 {
					break
				}
			}
			h.ctrl.OnFadeCompleted(DirectionOut)

			if len(h.rec.fullRuns) != 1 || h.rec.fullRuns[0] != tc.want {
				t.Fatalf("GameCompleted fullRun = %v, want [%v]", h.rec.fullRuns, tc.want)
			}
		})
	}
}
