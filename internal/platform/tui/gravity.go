// Package tui provides the Bubble Tea integration for the game.
// It handles the terminal UI loop, the gravity timer, input mapping, and
// the SSH host.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// GravityMsg is sent when a scheduled gravity step falls due.
type GravityMsg struct {
	Epoch uint64
	At    time.Time
}

// epochs hands out epoch numbers unique across all models in the process,
// so a fire scheduled by a discarded model is never mistaken for a live one.
var epochs atomic.Uint64

// gravity owns the single gravity timer of a model.
// Every arm or disarm starts a new epoch; a fire from an older epoch is stale
// and is dropped on arrival, so at most one timer chain is ever live.
type gravity struct {
	interval time.Duration
	epoch    uint64
	armed    bool
}

func newGravity(interval time.Duration) gravity {
	return gravity{interval: interval}
}

// arm starts a new timer chain.
func (g *gravity) arm() tea.Cmd {
	g.epoch = epochs.Add(1)
	g.armed = true
	return g.schedule()
}

// disarm invalidates any pending fire.
func (g *gravity) disarm() {
	g.epoch = epochs.Add(1)
	g.armed = false
}

// accept reports whether msg belongs to the live chain.
func (g *gravity) accept(msg GravityMsg) bool {
	return g.armed && msg.Epoch == g.epoch
}

// schedule queues the next fire of the current epoch.
func (g *gravity) schedule() tea.Cmd {
	epoch := g.epoch
	return tea.Tick(g.interval, func(t time.Time) tea.Msg {
		return GravityMsg{Epoch: epoch, At: t}
	})
}
