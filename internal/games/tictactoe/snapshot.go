package tictactoe

// Snapshot captures the complete game state for tests and debugging.
type Snapshot struct {
	Board   [CellCount]string // "X", "O" or ""
	Turn    string
	Outcome string
	Winner  string
	Scores  Scores
	Cursor  int
	Status  string
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	s := g.engine.State()

	var board [CellCount]string
	for i, m := range s.Board {
		board[i] = m.String()
	}

	return Snapshot{
		Board:   board,
		Turn:    s.Turn.String(),
		Outcome: s.Outcome.String(),
		Winner:  s.Outcome.Winner().String(),
		Scores:  s.Scores,
		Cursor:  g.cursor,
		Status:  StatusMessage(s),
	}
}
