package components

import "github.com/yohamta/donburi"

// ScoreData tracks the current level's objectives.
type ScoreData struct {
	Collected    int
	Total        int
	LevelSeconds float64
}

var Score = donburi.NewComponentType[ScoreData]()

// OverallScoreData tracks the whole run.
type OverallScoreData struct {
	TotalSeconds float64 // reported when the last level is finished
	BestSeconds  float64 // 0 when no run was ever completed
	NewBest      bool
	Completed    bool
}

var OverallScore = donburi.NewComponentType[OverallScoreData]()
