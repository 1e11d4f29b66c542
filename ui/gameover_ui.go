package ui

import (
	"fmt"

	"github.com/automoto/dizzy-ducklings/components"
	cfg "github.com/automoto/dizzy-ducklings/config"
)

type GameOverUI struct {
	*Menu
}

// NewGameOverUI shows the completion time of a finished run and the best
// time on record.
func NewGameOverUI(result components.OverallScoreData, onContinue func()) *GameOverUI {
	g := &GameOverUI{Menu: newMenu()}

	g.addTitle(cfg.Menu.CongratsText)
	g.addText(CompletionLine(result.TotalSeconds))
	if line := BestTimeLine(result); line != "" {
		g.addText(line)
	}
	g.addButton(cfg.Menu.ContinueText, onContinue)

	return g
}

func CompletionLine(seconds float64) string {
	return fmt.Sprintf("%s %.1fs", cfg.Menu.CompletedInText, seconds)
}

// BestTimeLine is empty when no best time is known.
func BestTimeLine(result components.OverallScoreData) string {
	if result.NewBest {
		return cfg.Menu.NewBestText
	}
	if result.BestSeconds <= 0 {
		return ""
	}
	return fmt.Sprintf("%s: %.1fs", cfg.Menu.BestTimeText, result.BestSeconds)
}
