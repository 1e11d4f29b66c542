package ui

import cfg "github.com/automoto/dizzy-ducklings/config"

type CreditsUI struct {
	*Menu
}

func NewCreditsUI(onBack func()) *CreditsUI {
	c := &CreditsUI{Menu: newMenu()}
	c.addTitle(cfg.Menu.CreditsButtonText)
	for _, line := range cfg.Menu.CreditsLines {
		c.addText(line)
	}
	c.addButton(cfg.Menu.BackText, onBack)
	return c
}
