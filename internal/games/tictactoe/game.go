// Package tictactoe implements two-player (hot-seat) Tic-Tac-Toe with a
// session score tally. engine.go holds the rules and has no dependencies;
// Game adapts the engine to the platform's input frames and screen buffer.
package tictactoe

import (
	"github.com/vovakirdan/tui-tictactoe/internal/config"
	"github.com/vovakirdan/tui-tictactoe/internal/core"
)

// GameID identifies the game in logs and the CLI.
const GameID = "tictactoe"

// centerCell is where the cursor starts each match.
const centerCell = 4

// Game implements the platform game contract on top of an Engine.
type Game struct {
	engine  *Engine
	palette config.Palette
	cellW   int
	cellH   int
	cursor  int

	// Screen dimensions
	screenW  int
	screenH  int
	layout   layout
	tooSmall bool
}

// New creates a game using the board and theme settings of cfg.
// An unusable theme falls back to the default palette.
func New(cfg config.Config) *Game {
	palette, err := cfg.Theme.Palette()
	if err != nil {
		palette, _ = config.DefaultConfig().Theme.Palette()
	}

	return &Game{
		engine:  NewEngine(),
		palette: palette,
		cellW:   core.Clamp(cfg.Board.CellWidth, config.MinCellWidth, config.MaxCellWidth),
		cellH:   core.Clamp(cfg.Board.CellHeight, config.MinCellHeight, config.MaxCellHeight),
		cursor:  centerCell,
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tic-Tac-Toe"
}

// Reset sizes the game for the screen and starts a new match.
// The session tally survives.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.engine.ResetMatch()
	g.cursor = centerCell
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize recomputes the layout without touching game state.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	g.layout = computeLayout(width, height, g.cellW, g.cellH)
	g.tooSmall = !g.layout.fits
}

// Step applies one frame of input.
//
// Scores are reset before a new match is started, then the cursor moves,
// then at most one mark is placed: a directly selected cell wins over a
// click, which wins over the cursor.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	var events []core.Event

	if in.Has(core.ActionResetScores) {
		g.engine.ResetScores()
		events = append(events, core.Event{Msg: "scores reset"})
	}

	if in.Has(core.ActionNewGame) {
		g.engine.ResetMatch()
		g.cursor = centerCell
		events = append(events, core.Event{Msg: "new match", KeyVals: scoreKeyVals(g.engine.Scores())})
	}

	g.moveCursor(in)

	if target, ok := g.target(in); ok {
		events = append(events, g.play(target)...)
	}

	return core.StepResult{State: g.State(), Events: events}
}

// moveCursor moves the cursor one cell, stopping at the board edges.
func (g *Game) moveCursor(in core.InputFrame) {
	switch {
	case in.Has(core.ActionUp) && g.cursor >= 3:
		g.cursor -= 3
	case in.Has(core.ActionDown) && g.cursor < 6:
		g.cursor += 3
	case in.Has(core.ActionLeft) && g.cursor%3 > 0:
		g.cursor--
	case in.Has(core.ActionRight) && g.cursor%3 < 2:
		g.cursor++
	}
}

// target picks the cell this frame wants to play, if any.
func (g *Game) target(in core.InputFrame) (int, bool) {
	if cell, ok := in.SelectedCell(); ok {
		return cell, true
	}
	if in.Click != nil {
		if cell, ok := g.layout.cellAt(in.Click.X, in.Click.Y); ok {
			return cell, true
		}
	}
	if in.Has(core.ActionPlace) {
		return g.cursor, true
	}
	return 0, false
}

// play applies a move and describes what happened.
func (g *Game) play(cell int) []core.Event {
	mark := g.engine.Turn()
	if err := CheckMove(g.engine.State(), cell); err != nil {
		return []core.Event{{
			Msg:     "move rejected",
			KeyVals: []any{"cell", cell, "mark", mark.String(), "reason", err},
			Detail:  true,
		}}
	}

	g.engine.ApplyMove(cell)
	g.cursor = cell

	events := []core.Event{{
		Msg:     "mark placed",
		KeyVals: []any{"cell", cell, "mark", mark.String()},
		Detail:  true,
	}}

	switch outcome := g.engine.Outcome(); {
	case outcome == Draw:
		events = append(events, core.Event{Msg: "match drawn", KeyVals: scoreKeyVals(g.engine.Scores())})
	case outcome.Terminal():
		kv := append([]any{"winner", outcome.Winner().String()}, scoreKeyVals(g.engine.Scores())...)
		events = append(events, core.Event{Msg: "match won", KeyVals: kv})
	}

	return events
}

func scoreKeyVals(s Scores) []any {
	return []any{"x", s.X, "o", s.O, "draws", s.Draws}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Status:   g.engine.Status(),
		GameOver: g.engine.Outcome().Terminal(),
	}
}

// Engine exposes the underlying engine.
func (g *Game) Engine() *Engine {
	return g.engine
}
