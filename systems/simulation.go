package systems

import (
	"time"

	"github.com/automoto/dizzy-ducklings/archetypes"
	"github.com/automoto/dizzy-ducklings/components"
	cfg "github.com/automoto/dizzy-ducklings/config"
	"github.com/automoto/dizzy-ducklings/shared/leveldata"
	"github.com/automoto/dizzy-ducklings/shared/progression"
	"github.com/automoto/dizzy-ducklings/shared/timestep"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
)

// MapSource starts map loads and hands back finished ones.
type MapSource interface {
	progression.MapLoader
	Poll() []leveldata.LoadResult
}

type SimulationConfig struct {
	Catalog  leveldata.Catalog
	Maps     MapSource
	Screens  progression.Screens
	TickRate float64
	MaxFrame time.Duration
	Options  progression.Options
	Logger   *log.Logger
}

// Simulation owns the gameplay world and runs it on a fixed timestep. Frame is
// the only entry point the host loop needs.
type Simulation struct {
	world      donburi.World
	clock      *timestep.Clock
	maps       MapSource
	controller *progression.Controller
	fader      *Fader
	score      *Scoreboard
	spawner    *WorldSpawner
	input      *components.InputData
	maxFrame   time.Duration
}

func NewSimulation(c SimulationConfig) *Simulation {
	if c.Logger == nil {
		c.Logger = log.Default()
	}
	w := donburi.NewWorld()
	clock := timestep.NewClock(c.TickRate, c.MaxFrame)

	s := &Simulation{
		world:    w,
		clock:    clock,
		maps:     c.Maps,
		fader:    NewFader(w),
		score:    NewScoreboard(w),
		spawner:  NewWorldSpawner(w, c.Logger),
		maxFrame: c.MaxFrame,
	}
	if s.maxFrame <= 0 {
		s.maxFrame = timestep.DefaultMaxFrame
	}
	inputEntry := archetypes.Input.Spawn(w)
	s.input = components.Input.Get(inputEntry)

	opts := c.Options
	opts.TickRate = 1 / clock.Dt()
	if opts.Logger == nil {
		opts.Logger = c.Logger
	}
	s.controller = progression.New(c.Catalog, progression.Collaborators{
		Fader:   s.fader,
		Loader:  c.Maps,
		Spawner: s.spawner,
		Score:   s.score,
		Screens: c.Screens,
	}, opts)
	s.spawner.Index = s.controller.Index

	return s
}

// SetInput stores this frame's pressed actions. Call it before Frame.
func (s *Simulation) SetInput(current [cfg.ActionCount]bool) {
	s.input.Previous = s.input.Current
	s.input.Current = current
}

// Frame runs one rendered frame: input intent, the fixed ticks owed for the
// elapsed time, then fades, interpolation, camera and stopwatch.
func (s *Simulation) Frame(frame time.Duration) {
	if frame > s.maxFrame {
		frame = s.maxFrame
	}
	dt := frame.Seconds()

	RecordIntent(s.world)

	for n := s.clock.Advance(frame); n > 0; n-- {
		s.FixedTick()
	}

	if dir, ok := s.fader.Update(dt); ok {
		s.controller.Dispatch(progression.FadeCompleted(dir))
	}

	InterpolateMotion(s.world, s.clock.Overstep())
	ApplySpriteOffsets(s.world)
	UpdateCamera(s.world, dt)
	if s.controller.State() == progression.Active {
		s.score.Tick(dt)
	}
}

// FixedTick runs one simulation step.
func (s *Simulation) FixedTick() {
	if s.maps != nil {
		for _, r := range s.maps.Poll() {
			s.controller.Dispatch(progression.MapLoaded(r))
		}
	}

	dt := s.clock.Dt()
	SnapshotMotion(s.world)
	ApplyMovement(s.world, dt)
	UpdateCollisions(s.world, dt)
	SyncPhysical(s.world)
	UpdateAnimations(s.world)
	UpdatePickups(s.world, s.controller)
	s.controller.Dispatch(progression.Event{Kind: progression.EventTick})
}

func (s *Simulation) StartNewGame() {
	s.clock.Reset()
	s.controller.Dispatch(progression.Event{Kind: progression.EventStartNewGame})
}

func (s *Simulation) World() donburi.World {
	return s.world
}

func (s *Simulation) Controller() *progression.Controller {
	return s.controller
}

func (s *Simulation) Fader() *Fader {
	return s.fader
}

func (s *Simulation) Score() *Scoreboard {
	return s.score
}

func (s *Simulation) Clock() *timestep.Clock {
	return s.clock
}
