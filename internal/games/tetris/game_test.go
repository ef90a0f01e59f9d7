package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

func testConfig(seed int64) core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.Seed = seed
	return cfg
}

func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	g := New()
	g.Reset(testConfig(seed))
	require.False(t, g.tooSmall, "default config should fit the layout")
	return g
}

func TestModesRegistered(t *testing.T) {
	for _, id := range []string{IDClassic, IDBag} {
		require.True(t, registry.Exists(id), "%s not registered", id)
		g, err := registry.Create(id)
		require.NoError(t, err)
		assert.Equal(t, id, g.ID())
	}
	assert.Equal(t, "Tetris", New().Title())
	assert.Equal(t, "Tetris (7-bag)", NewBag().Title())
}

func TestGameDeterminism(t *testing.T) {
	actions := []core.Action{
		core.ActionMoveLeft, core.ActionRotate, core.ActionNone, core.ActionHardDrop,
		core.ActionMoveRight, core.ActionMoveRight, core.ActionNone, core.ActionRotate,
	}

	run := func() Snapshot {
		g := newTestGame(t, 12345)
		for i := 0; i < 500; i++ {
			if a := actions[i%len(actions)]; a != core.ActionNone {
				g.Handle(a)
			}
			g.Step()
		}
		return g.Snapshot()
	}

	first := run()
	second := run()
	assert.Equal(t, first, second)
	assert.Positive(t, first.Pieces)
}

func TestGameJournalReplays(t *testing.T) {
	g := newTestGame(t, 99)
	for i := 0; i < 300; i++ {
		switch i % 5 {
		case 0:
			g.Handle(core.ActionMoveLeft)
		case 2:
			g.Handle(core.ActionRotate)
		case 4:
			g.Handle(core.ActionHardDrop)
		}
		g.Step()
	}

	j := g.Journal()
	assert.Equal(t, IDClassic, j.GameID)
	assert.Equal(t, RandomizerUniform, j.Randomizer)
	assert.Equal(t, int64(99), j.Seed)
	assert.Equal(t, DefaultPointsPerLine, j.PointsPerLine)

	e, err := Replay(j)
	require.NoError(t, err)
	assert.Equal(t, g.Frame(), e.Frame())

	// Journal hands out a copy.
	j.Commands[0] = CmdReset
	assert.NotEqual(t, CmdReset, g.Journal().Commands[0])
}

func TestGameStepStopsWhenPaused(t *testing.T) {
	g := newTestGame(t, 1)

	res := g.Handle(core.ActionPause)
	assert.True(t, res.State.Paused)

	n := len(g.Journal().Commands)
	snap := g.Snapshot()
	for i := 0; i < 5; i++ {
		g.Step()
	}
	assert.Equal(t, snap, g.Snapshot())
	assert.Len(t, g.Journal().Commands, n, "paused steps are not journaled")

	res = g.Handle(core.ActionPause)
	assert.True(t, res.State.Running())
	g.Step()
	assert.Equal(t, 1, g.Snapshot().Y)
}

func TestGameOverIgnoresGameplay(t *testing.T) {
	g := newTestGame(t, 5)
	for i := 0; i < 1000 && !g.State().GameOver; i++ {
		g.Handle(core.ActionHardDrop)
	}
	require.True(t, g.State().GameOver)

	n := len(g.Journal().Commands)
	for _, a := range []core.Action{core.ActionMoveLeft, core.ActionRotate, core.ActionHardDrop, core.ActionPause} {
		res := g.Handle(a)
		assert.True(t, res.State.GameOver)
	}
	g.Step()
	assert.Len(t, g.Journal().Commands, n)
}

func TestGameRestart(t *testing.T) {
	g := newTestGame(t, 5)
	for i := 0; i < 1000 && !g.State().GameOver; i++ {
		g.Handle(core.ActionHardDrop)
	}
	oldSeed := g.Journal().Seed

	res := g.Handle(core.ActionRestart)

	assert.True(t, res.State.Running())
	assert.Zero(t, res.State.Score)
	j := g.Journal()
	assert.Empty(t, j.Commands)
	assert.NotEqual(t, oldSeed, j.Seed)
	assert.Zero(t, g.Snapshot().Filled)
}

func TestGameTooSmall(t *testing.T) {
	g := newTestGame(t, 3)
	g.Resize(layoutWidth-1, layoutHeight)

	assert.True(t, g.State().Paused)
	snap := g.Snapshot()
	g.Handle(core.ActionMoveLeft)
	g.Step()
	assert.Equal(t, snap, g.Snapshot())

	g.Resize(layoutWidth, layoutHeight)
	assert.True(t, g.State().Running())
	g.Step()
	assert.Equal(t, 1, g.Snapshot().Y)
}

func TestSetPointsPerLine(t *testing.T) {
	t.Cleanup(func() { SetPointsPerLine(0) })

	SetPointsPerLine(250)
	g := newTestGame(t, 8)
	assert.Equal(t, 250, g.Journal().PointsPerLine)

	SetPointsPerLine(-4)
	assert.Equal(t, DefaultPointsPerLine, pointsPerLine)
}

func TestRenderLayout(t *testing.T) {
	g := newTestGame(t, 2)
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	out := screen.String()
	assert.Contains(t, out, "T E T R I S")
	assert.Contains(t, out, "Score")
	assert.Contains(t, out, "Playing")
	assert.NotContains(t, out, "PAUSED")

	g.Handle(core.ActionPause)
	g.Render(screen)
	out = screen.String()
	assert.Contains(t, out, "PAUSED")
	assert.Contains(t, out, "P: resume")
}

func TestRenderGameOver(t *testing.T) {
	g := newTestGame(t, 5)
	for i := 0; i < 1000 && !g.State().GameOver; i++ {
		g.Handle(core.ActionHardDrop)
	}
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	out := screen.String()
	assert.Contains(t, out, "GAME OVER")
	assert.Contains(t, out, "R: restart")
}

func TestRenderTooSmall(t *testing.T) {
	g := newTestGame(t, 2)
	g.Resize(30, 10)
	screen := core.NewScreen(30, 10)

	g.Render(screen)
	assert.Contains(t, screen.String(), "Window too small")
}

func TestRenderUsesPieceColors(t *testing.T) {
	g := newTestGame(t, 2)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	want := g.Frame().Kind
	color := DefinitionFor(want).Color
	found := false
	for y := 0; y < screen.Height() && !found; y++ {
		for x := 0; x < screen.Width(); x++ {
			c := screen.GetCell(x, y)
			if c.Rune == blockRune && c.Color == color {
				found = true
				break
			}
		}
	}
	assert.True(t, found, "active %s piece not drawn in its color", want)
}

func TestFromJournal(t *testing.T) {
	g := NewBag()
	g.Reset(testConfig(21))
	for i := 0; i < 200; i++ {
		if i%6 == 0 {
			g.Handle(core.ActionHardDrop)
		}
		g.Step()
	}

	rebuilt, err := FromJournal(g.Journal())
	require.NoError(t, err)
	assert.Equal(t, IDBag, rebuilt.ID())
	assert.Equal(t, g.Frame(), rebuilt.Frame())
	assert.Equal(t, g.Snapshot(), rebuilt.Snapshot())

	w, h := LayoutSize()
	screen := core.NewScreen(w, h)
	rebuilt.Render(screen)
	assert.Contains(t, screen.String(), "T E T R I S")

	_, err = FromJournal(Journal{GameID: IDClassic, Randomizer: RandomizerBag})
	assert.Error(t, err)
}

func TestFromJournalRejectsUnknownMode(t *testing.T) {
	tests := []struct {
		name   string
		gameID string
	}{
		{"other game", "pong"},
		{"empty", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			j := Journal{GameID: tt.gameID, Randomizer: RandomizerUniform, PointsPerLine: DefaultPointsPerLine}
			g, err := FromJournal(j)
			require.Error(t, err)
			assert.Nil(t, g)
			assert.Contains(t, err.Error(), "unknown mode")
		})
	}
}
