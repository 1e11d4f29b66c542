package systems

import (
	"github.com/automoto/dizzy-ducklings/archetypes"
	"github.com/automoto/dizzy-ducklings/components"
	"github.com/yohamta/donburi"
)

// Scoreboard keeps objective counts and run timing in the world's score
// singleton. The best completion time is loaded from and saved to the
// persistence layer.
type Scoreboard struct {
	entry *donburi.Entry
}

func NewScoreboard(w donburi.World) *Scoreboard {
	entry, ok := components.Score.First(w)
	if !ok {
		entry = archetypes.Score.Spawn(w)
	}
	overall := components.OverallScore.Get(entry)
	if best, ok := LoadBestTime(); ok {
		overall.BestSeconds = best
	}
	return &Scoreboard{entry: entry}
}

func (s *Scoreboard) ResetAll() {
	best := s.Overall().BestSeconds
	components.Score.SetValue(s.entry, components.ScoreData{})
	components.OverallScore.SetValue(s.entry, components.OverallScoreData{BestSeconds: best})
}

func (s *Scoreboard) ResetObjectives(total int) {
	components.Score.SetValue(s.entry, components.ScoreData{Total: total})
}

func (s *Scoreboard) IncrementCollected() (int, int) {
	score := s.Level()
	score.Collected++
	return score.Collected, score.Total
}

// GameCompleted records the run time. Only full runs compete for the best
// time; a game started past the first level never replaces it.
func (s *Scoreboard) GameCompleted(elapsedSeconds float64, fullRun bool) {
	overall := s.Overall()
	overall.TotalSeconds = elapsedSeconds
	overall.Completed = true
	overall.NewBest = fullRun && (overall.BestSeconds <= 0 || elapsedSeconds < overall.BestSeconds)
	if !overall.NewBest {
		return
	}
	overall.BestSeconds = elapsedSeconds
	// saveJSON logs failures; the in-memory best still holds for this session
	_ = SaveBestTime(elapsedSeconds)
}

// Tick advances the level stopwatch.
func (s *Scoreboard) Tick(dt float64) {
	s.Level().LevelSeconds += dt
}

func (s *Scoreboard) Level() *components.ScoreData {
	return components.Score.Get(s.entry)
}

func (s *Scoreboard) Overall() *components.OverallScoreData {
	return components.OverallScore.Get(s.entry)
}
