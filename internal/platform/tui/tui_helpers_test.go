package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	_ "github.com/vovakirdan/tui-fx/internal/presets" // register presets
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}
