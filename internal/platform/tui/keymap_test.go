package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapGameplay(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionMoveLeft},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionMoveRight},
		{"up arrow rotates", tea.KeyMsg{Type: tea.KeyUp}, core.ActionRotate},
		{"down arrow drops", tea.KeyMsg{Type: tea.KeyDown}, core.ActionHardDrop},
		{"space drops", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionHardDrop},
		{"vim h", runeKey('h'), core.ActionMoveLeft},
		{"vim l", runeKey('l'), core.ActionMoveRight},
		{"wasd w", runeKey('w'), core.ActionRotate},
		{"wasd s", runeKey('s'), core.ActionHardDrop},
		{"pause", runeKey('p'), core.ActionPause},
		{"esc pauses", tea.KeyMsg{Type: tea.KeyEscape}, core.ActionPause},
		{"restart", runeKey('r'), core.ActionRestart},
		{"quit", runeKey('q'), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"back disabled by default", runeKey('b'), core.ActionNone},
		{"unbound", runeKey('z'), core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, km.MapKey(tt.msg))
		})
	}
}

func TestKeyMapBackWhenEnabled(t *testing.T) {
	km := DefaultKeyMap()
	km.Back.SetEnabled(true)
	assert.Equal(t, core.ActionBack, km.MapKey(runeKey('b')))
}

func TestMenuKeyMap(t *testing.T) {
	km := DefaultMenuKeyMap()

	assert.Equal(t, MenuActionUp, km.MapKey(tea.KeyMsg{Type: tea.KeyUp}))
	assert.Equal(t, MenuActionUp, km.MapKey(runeKey('k')))
	assert.Equal(t, MenuActionDown, km.MapKey(tea.KeyMsg{Type: tea.KeyDown}))
	assert.Equal(t, MenuActionDown, km.MapKey(runeKey('j')))
	assert.Equal(t, MenuActionSelect, km.MapKey(tea.KeyMsg{Type: tea.KeyEnter}))
	assert.Equal(t, MenuActionQuit, km.MapKey(runeKey('q')))
	assert.Equal(t, MenuActionNone, km.MapKey(runeKey('x')))
}
