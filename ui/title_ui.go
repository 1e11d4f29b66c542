package ui

import (
	cfg "github.com/automoto/dizzy-ducklings/config"
	"github.com/ebitenui/ebitenui/widget"
)

// TitleActions are the callbacks of the title screen buttons.
// ToggleFullscreen returns the new fullscreen setting.
type TitleActions struct {
	Play             func()
	ToggleFullscreen func() bool
	Credits          func()
	Exit             func()
}

type TitleUI struct {
	*Menu
	fullscreen *widget.Button
}

func NewTitleUI(fullscreen bool, actions TitleActions) *TitleUI {
	t := &TitleUI{Menu: newMenu()}

	t.addTitle(cfg.Menu.TitleText)
	t.addButton(cfg.Menu.PlayText, actions.Play)
	t.fullscreen = t.addButton(cfg.FullscreenLabel(fullscreen), func() {
		setButtonLabel(t.fullscreen, cfg.FullscreenLabel(actions.ToggleFullscreen()))
	})
	t.addButton(cfg.Menu.CreditsButtonText, actions.Credits)
	t.addButton(cfg.Menu.ExitText, actions.Exit)

	return t
}
