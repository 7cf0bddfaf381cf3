package tictactoe

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tictactoe/internal/config"
	"github.com/vovakirdan/tui-tictactoe/internal/core"
)

// With the default 7x3 cells on an 80x24 screen the board border spans
// x 27..51 and y 6..18; cell 0 is centred at (31, 8), cell 4 at (39, 12).
var testRuntime = core.RuntimeConfig{ScreenW: 80, ScreenH: 24}

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g := New(config.DefaultConfig())
	g.Reset(testRuntime)
	return g
}

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func cellFrame(cell int) core.InputFrame {
	f := core.NewInputFrame()
	f.SelectCell(cell)
	return f
}

func clickFrame(x, y int) core.InputFrame {
	f := core.NewInputFrame()
	f.SetClick(x, y)
	return f
}

func eventNames(res core.StepResult) []string {
	names := make([]string, 0, len(res.Events))
	for _, e := range res.Events {
		names = append(names, e.Msg)
	}
	return names
}

func TestGame_Identity(t *testing.T) {
	g := New(config.DefaultConfig())
	assert.Equal(t, "tictactoe", g.ID())
	assert.Equal(t, "Tic-Tac-Toe", g.Title())
}

func TestGame_CursorMovement(t *testing.T) {
	t.Run("Starts in the centre", func(t *testing.T) {
		g := newTestGame(t)
		assert.Equal(t, 4, g.Snapshot().Cursor)
	})

	t.Run("Moves one cell per frame", func(t *testing.T) {
		g := newTestGame(t)

		g.Step(frame(core.ActionUp))
		assert.Equal(t, 1, g.cursor)
		g.Step(frame(core.ActionLeft))
		assert.Equal(t, 0, g.cursor)
		g.Step(frame(core.ActionDown))
		assert.Equal(t, 3, g.cursor)
		g.Step(frame(core.ActionRight))
		assert.Equal(t, 4, g.cursor)
	})

	t.Run("Stops at the edges", func(t *testing.T) {
		g := newTestGame(t)
		for i := 0; i < 5; i++ {
			g.Step(frame(core.ActionUp))
			g.Step(frame(core.ActionLeft))
		}
		assert.Equal(t, 0, g.cursor)

		for i := 0; i < 5; i++ {
			g.Step(frame(core.ActionDown))
			g.Step(frame(core.ActionRight))
		}
		assert.Equal(t, 8, g.cursor)
	})

	t.Run("Moving never places a mark", func(t *testing.T) {
		g := newTestGame(t)
		g.Step(frame(core.ActionUp))
		assert.Equal(t, Board{}, g.engine.Board())
	})
}

func TestGame_Placement(t *testing.T) {
	t.Run("Place uses the cursor", func(t *testing.T) {
		// Given: the cursor moved to cell 0
		g := newTestGame(t)
		g.Step(frame(core.ActionUp))
		g.Step(frame(core.ActionLeft))

		// When: placing
		res := g.Step(frame(core.ActionPlace))

		// Then: X is on cell 0 and O is next
		assert.Equal(t, X, g.engine.Board()[0])
		assert.Equal(t, []string{"mark placed"}, eventNames(res))
		assert.Equal(t, "Next player: O", res.State.Status)
		assert.False(t, res.State.GameOver)
	})

	t.Run("Selected cell wins over the cursor", func(t *testing.T) {
		g := newTestGame(t)
		in := cellFrame(8)
		in.Set(core.ActionPlace)

		g.Step(in)

		assert.Equal(t, X, g.engine.Board()[8])
		assert.Equal(t, Empty, g.engine.Board()[4])
		assert.Equal(t, 8, g.cursor, "cursor follows the played cell")
	})

	t.Run("Click inside a cell plays it", func(t *testing.T) {
		g := newTestGame(t)

		g.Step(clickFrame(31, 8))

		assert.Equal(t, X, g.engine.Board()[0])
		assert.Equal(t, 0, g.cursor)
	})

	t.Run("Click on a grid line or outside the board is ignored", func(t *testing.T) {
		g := newTestGame(t)

		res := g.Step(clickFrame(35, 8))
		assert.Empty(t, res.Events)

		res = g.Step(clickFrame(2, 2))
		assert.Empty(t, res.Events)

		assert.Equal(t, Board{}, g.engine.Board())
	})

	t.Run("Occupied cell is rejected with a reason", func(t *testing.T) {
		// Given: X on the centre
		g := newTestGame(t)
		g.Step(frame(core.ActionPlace))
		before := g.engine.State()

		// When: O tries the centre
		res := g.Step(cellFrame(4))

		// Then: the move is rejected and the engine is untouched
		require.Len(t, res.Events, 1)
		assert.Equal(t, "move rejected", res.Events[0].Msg)
		assert.Contains(t, res.Events[0].KeyVals, "reason")
		assert.Equal(t, before, g.engine.State())
	})
}

func TestGame_MatchFlow(t *testing.T) {
	t.Run("Win ends the match and is reported", func(t *testing.T) {
		g := newTestGame(t)
		for _, c := range []int{0, 3, 1, 4} {
			g.Step(cellFrame(c))
		}

		res := g.Step(cellFrame(2))

		assert.Equal(t, []string{"mark placed", "match won"}, eventNames(res))
		assert.True(t, res.State.GameOver)
		assert.Equal(t, "Winner: X", res.State.Status)

		snap := g.Snapshot()
		assert.Equal(t, [CellCount]string{"X", "X", "X", "O", "O", "", "", "", ""}, snap.Board)
		assert.Equal(t, "X", snap.Winner)
		assert.Equal(t, Scores{X: 1}, snap.Scores)
	})

	t.Run("Draw is reported", func(t *testing.T) {
		g := newTestGame(t)
		var res core.StepResult
		for _, c := range []int{0, 1, 2, 4, 3, 5, 7, 6, 8} {
			res = g.Step(cellFrame(c))
		}

		assert.Equal(t, []string{"mark placed", "match drawn"}, eventNames(res))
		assert.Equal(t, "It's a draw!", res.State.Status)
		assert.Equal(t, Scores{Draws: 1}, g.Snapshot().Scores)
	})

	t.Run("New game keeps the tally", func(t *testing.T) {
		// Given: X has won once
		g := newTestGame(t)
		for _, c := range []int{0, 3, 1, 4, 2} {
			g.Step(cellFrame(c))
		}

		// When: starting a new match
		res := g.Step(frame(core.ActionNewGame))

		// Then: the board is clear, X starts and the tally stays
		snap := g.Snapshot()
		assert.Equal(t, [CellCount]string{}, snap.Board)
		assert.Equal(t, "X", snap.Turn)
		assert.Equal(t, "in_progress", snap.Outcome)
		assert.Equal(t, 4, snap.Cursor)
		assert.Equal(t, Scores{X: 1}, snap.Scores)
		assert.Equal(t, []string{"new match"}, eventNames(res))
	})

	t.Run("Reset scores keeps the match", func(t *testing.T) {
		g := newTestGame(t)
		for _, c := range []int{0, 3, 1, 4, 2} {
			g.Step(cellFrame(c))
		}

		res := g.Step(frame(core.ActionResetScores))

		assert.Equal(t, Scores{}, g.Snapshot().Scores)
		assert.True(t, res.State.GameOver)
		assert.Equal(t, []string{"scores reset"}, eventNames(res))
	})

	t.Run("Reset keeps the tally across screen setups", func(t *testing.T) {
		g := newTestGame(t)
		for _, c := range []int{0, 3, 1, 4, 2} {
			g.Step(cellFrame(c))
		}

		g.Reset(testRuntime)

		assert.Equal(t, Scores{X: 1}, g.Snapshot().Scores)
		assert.Equal(t, "in_progress", g.Snapshot().Outcome)
	})
}

func TestGame_Render(t *testing.T) {
	t.Run("Draws title, scores, hints, cursor and status", func(t *testing.T) {
		g := newTestGame(t)
		screen := core.NewScreen(testRuntime.ScreenW, testRuntime.ScreenH)

		g.Render(screen)

		assert.Contains(t, screen.Row(2), titleText)
		assert.Contains(t, screen.Row(4), "X: 0   O: 0   Draws: 0")
		assert.Contains(t, screen.Row(20), "Next player: X")
		assert.Equal(t, '┌', screen.Get(27, 6))
		assert.Equal(t, '┼', screen.Get(35, 10))
		assert.Equal(t, '1', screen.Get(31, 8))
		assert.Equal(t, "[5]", string([]rune{screen.Get(38, 12), screen.Get(39, 12), screen.Get(40, 12)}))
	})

	t.Run("Highlights the winning line", func(t *testing.T) {
		g := newTestGame(t)
		for _, c := range []int{0, 3, 1, 4, 2} {
			g.Step(cellFrame(c))
		}
		screen := core.NewScreen(testRuntime.ScreenW, testRuntime.ScreenH)

		g.Render(screen)

		win := g.palette.Win
		assert.Equal(t, core.Cell{Rune: 'X', Color: win}, screen.GetCell(31, 8))
		assert.Equal(t, core.Cell{Rune: 'O', Color: g.palette.O}, screen.GetCell(31, 12))
		assert.Contains(t, screen.Row(4), "X: 1")
		assert.Contains(t, screen.Row(20), "Winner: X")
		assert.NotContains(t, screen.String(), "[", "no cursor once the match is over")
	})

	t.Run("Small terminal shows a notice and ignores input", func(t *testing.T) {
		g := New(config.DefaultConfig())
		g.Reset(core.RuntimeConfig{ScreenW: 20, ScreenH: 10})
		screen := core.NewScreen(20, 10)

		res := g.Step(cellFrame(0))
		g.Render(screen)

		assert.Empty(t, res.Events)
		assert.Equal(t, Board{}, g.engine.Board())
		assert.True(t, strings.Contains(screen.String(), "Terminal too small"))
	})

	t.Run("Resize keeps the match", func(t *testing.T) {
		g := newTestGame(t)
		g.Step(cellFrame(0))

		g.Resize(120, 40)

		assert.Equal(t, X, g.engine.Board()[0])
		assert.False(t, g.tooSmall)
	})
}
