package progression

import (
	"errors"

	"github.com/charmbracelet/log"

	"github.com/automoto/dizzy-ducklings/shared/leveldata"
)

var errNilMap = errors.New("progression: loader returned no map")

type Options struct {
	FadeSeconds   float64 // duration of every fade request
	MinTicksToEnd int     // fixed ticks after spawn before a level may end
	TickRate      float64 // fixed ticks per second, for PlayedSeconds

	// MapLoadTimeout is the number of fixed ticks to wait for a map before
	// giving up and returning to the title screen. Zero waits forever.
	MapLoadTimeout int

	// StartLevel is the index StartNewGame begins at. Values outside the
	// catalog fall back to 0.
	StartLevel int

	Logger       *log.Logger
	OnTransition func(from, to State)
}

func (o Options) withDefaults() Options {
	if o.TickRate <= 0 {
		o.TickRate = 60
	}
	if o.MinTicksToEnd < 0 {
		o.MinTicksToEnd = 0
	}
	if o.Logger == nil {
		o.Logger = log.Default()
	}
	return o
}

// Controller is the level progression state machine. It is not safe for
// concurrent use; every method is expected to run on the game loop goroutine.
type Controller struct {
	catalog leveldata.Catalog
	fader   Fader
	loader  MapLoader
	spawner Spawner
	score   Scoreboard
	screens Screens
	opts    Options
	log     *log.Logger

	state State
	index int
	// newGame skips the index increment on the first fade-out after StartNewGame.
	newGame bool
	// fullRun is false when StartNewGame began past the first level.
	fullRun bool

	awaiting  string // map id we are waiting on, empty when none
	waitTicks int

	spawned         bool
	ticksSinceSpawn int
	playedTicks     int
	objectivesDone  bool
	completed       bool
}

func New(catalog leveldata.Catalog, c Collaborators, opts Options) *Controller {
	c = c.withDefaults()
	opts = opts.withDefaults()
	return &Controller{
		catalog: catalog,
		fader:   c.Fader,
		loader:  c.Loader,
		spawner: c.Spawner,
		score:   c.Score,
		screens: c.Screens,
		opts:    opts,
		log:     opts.Logger,
		state:   Inactive,
	}
}

// Dispatch handles one event to completion.
func (c *Controller) Dispatch(e Event) {
	switch e.Kind {
	case EventStartNewGame:
		c.StartNewGame()
	case EventFadeCompleted:
		c.OnFadeCompleted(e.Direction)
	case EventLevelEnd:
		c.RequestLevelEnd()
	case EventCollectibleCollected:
		c.OnCollectibleCollected()
	case EventMapLoaded:
		c.OnMapLoaded(e.MapID, e.Map, e.Err)
	case EventTick:
		c.Tick()
	default:
		c.log.Warn("unknown progression event", "kind", e.Kind)
	}
}

// StartNewGame resets everything and fades out toward level 0. It may be
// called from any state.
func (c *Controller) StartNewGame() {
	if c.catalog.Len() == 0 {
		c.log.Warn("starting a game with an empty catalog", "error", leveldata.ErrNoLevels)
	}
	c.score.ResetAll()
	c.index = 0
	if c.opts.StartLevel > 0 && c.opts.StartLevel < c.catalog.Len() {
		c.index = c.opts.StartLevel
	}
	c.newGame = true
	c.fullRun = c.index == 0
	c.awaiting = ""
	c.waitTicks = 0
	c.spawned = false
	c.ticksSinceSpawn = 0
	c.playedTicks = 0
	c.objectivesDone = false
	c.completed = false

	c.fader.FadeOut(c.opts.FadeSeconds)
	c.setState(FadingOutForEnd)
}

// OnFadeCompleted is the only way the controller leaves a fading state.
// Completions that do not match the current state are dropped, so a repeated
// signal cannot advance twice.
func (c *Controller) OnFadeCompleted(dir FadeDirection) {
	switch {
	case c.state == FadingOutForEnd && dir == DirectionOut:
		c.spawner.DespawnAll()
		c.spawned = false
		c.awaiting = ""

		var more bool
		if c.newGame {
			c.newGame = false
			more = c.index < c.catalog.Len()
		} else {
			more = c.advanceLevel()
		}
		if !more {
			c.completeGame()
			return
		}
		c.spawnLevel()
		c.fader.FadeIn(c.opts.FadeSeconds)
		c.setState(FadingInForStart)

	case c.state == FadingInForStart && dir == DirectionIn:
		c.setState(Active)

	case c.state == FadingOutForCompletion && dir == DirectionOut:
		c.setState(Inactive)
		c.screens.ShowGameOver()

	default:
		c.log.Debug("ignoring fade completion", "state", c.state, "direction", dir)
	}
}

// RequestLevelEnd ends the active level. It reports false, and changes
// nothing, unless the state is Active, the level map is spawned and at least
// MinTicksToEnd fixed ticks have run since the spawn.
func (c *Controller) RequestLevelEnd() bool {
	if c.state != Active || !c.spawned {
		return false
	}
	if c.ticksSinceSpawn < c.opts.MinTicksToEnd {
		return false
	}
	c.objectivesDone = false
	c.fader.FadeOut(c.opts.FadeSeconds)
	c.setState(FadingOutForEnd)
	return true
}

// OnCollectibleCollected counts a pickup and ends the level once all
// collectibles are in. If the end is rejected by the tick guard, Tick retries.
func (c *Controller) OnCollectibleCollected() {
	if !c.spawned {
		return
	}
	collected, total := c.score.IncrementCollected()
	if total <= 0 || collected < total {
		return
	}
	c.objectivesDone = true
	c.RequestLevelEnd()
}

// OnMapLoaded spawns the current level once its map is ready. Results for
// any other map id are stale and ignored.
func (c *Controller) OnMapLoaded(mapID string, m *leveldata.MapData, err error) {
	if c.awaiting == "" || mapID != c.awaiting {
		c.log.Debug("ignoring stale map load", "map", mapID, "awaiting", c.awaiting)
		return
	}
	c.awaiting = ""
	if err == nil && m == nil {
		err = errNilMap
	}
	if err != nil {
		c.log.Error("map load failed", "map", mapID, "error", err)
		c.abort()
		return
	}

	def, ok := c.catalog.At(c.index)
	if !ok {
		return
	}
	c.spawner.SpawnLevel(def, m)
	c.spawner.SpawnPlayerAt(def.Start)
	for _, t := range def.Ducklings {
		c.spawner.SpawnCollectibleAt(t)
	}
	c.spawned = true
	c.ticksSinceSpawn = 0
	c.log.Info("spawned level", "index", c.index, "map", def.Map, "ducklings", len(def.Ducklings))
}

// Tick runs once per fixed step, after pickups and finish checks.
func (c *Controller) Tick() {
	if c.awaiting != "" {
		c.waitTicks++
		if c.opts.MapLoadTimeout > 0 && c.waitTicks >= c.opts.MapLoadTimeout {
			c.log.Error("map load timed out", "map", c.awaiting, "ticks", c.waitTicks)
			c.abort()
		}
		return
	}
	if !c.spawned {
		return
	}
	c.ticksSinceSpawn++
	if c.state != Active {
		return
	}
	c.playedTicks++
	if c.objectivesDone {
		c.RequestLevelEnd()
	}
}

func (c *Controller) State() State {
	return c.state
}

func (c *Controller) Index() int {
	return c.index
}

// CurrentLevel returns the active level definition. ok is false once the
// catalog is exhausted, which means the game is complete.
func (c *Controller) CurrentLevel() (leveldata.LevelDefinition, bool) {
	return c.catalog.At(c.index)
}

func (c *Controller) LevelCount() int {
	return c.catalog.Len()
}

func (c *Controller) TicksSinceSpawn() int {
	return c.ticksSinceSpawn
}

func (c *Controller) AwaitingMap() bool {
	return c.awaiting != ""
}

// PlayedSeconds is the time spent in Active with a spawned level since the
// last StartNewGame.
func (c *Controller) PlayedSeconds() float64 {
	return float64(c.playedTicks) / c.opts.TickRate
}

// advanceLevel moves to the next level and reports whether one exists. The
// index never goes past the catalog length.
func (c *Controller) advanceLevel() bool {
	if c.index < c.catalog.Len() {
		c.index++
	}
	return c.index < c.catalog.Len()
}

func (c *Controller) spawnLevel() {
	def, ok := c.catalog.At(c.index)
	if !ok {
		return
	}
	c.score.ResetObjectives(len(def.Ducklings))
	c.objectivesDone = false
	c.ticksSinceSpawn = 0
	c.waitTicks = 0
	c.awaiting = def.Map
	c.log.Info("loading level", "index", c.index, "map", def.Map)
	c.loader.Load(def.Map)
}

func (c *Controller) completeGame() {
	if !c.completed {
		c.completed = true
		c.score.GameCompleted(c.PlayedSeconds(), c.fullRun)
		c.log.Info("game completed", "seconds", c.PlayedSeconds(), "full_run", c.fullRun)
	}
	c.fader.FadeOut(c.opts.FadeSeconds)
	c.setState(FadingOutForCompletion)
}

func (c *Controller) abort() {
	c.spawner.DespawnAll()
	c.spawned = false
	c.awaiting = ""
	c.objectivesDone = false
	c.setState(Inactive)
	c.screens.ShowTitle()
}

func (c *Controller) setState(to State) {
	from := c.state
	if from == to {
		return
	}
	c.state = to
	c.log.Debug("level state", "from", from, "to", to)
	if c.opts.OnTransition != nil {
		c.opts.OnTransition(from, to)
	}
}
