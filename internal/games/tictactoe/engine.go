package tictactoe

import (
	"errors"
	"fmt"
)

// Mark is the content of a board cell.
type Mark uint8

const (
	Empty Mark = iota
	X
	O
)

// String returns "X", "O" or "" for an empty cell.
func (m Mark) String() string {
	switch m {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return ""
	}
}

// Other returns the opposing mark. Empty has no opponent.
func (m Mark) Other() Mark {
	switch m {
	case X:
		return O
	case O:
		return X
	default:
		return Empty
	}
}

// CellCount is the number of cells on the board.
const CellCount = 9

// Board holds the nine cells in row-major order:
//
//	0 | 1 | 2
//	3 | 4 | 5
//	6 | 7 | 8
type Board [CellCount]Mark

// Full returns true if no cell is empty.
func (b Board) Full() bool {
	for _, m := range b {
		if m == Empty {
			return false
		}
	}
	return true
}

// Outcome is the result of a match.
type Outcome uint8

const (
	InProgress Outcome = iota
	XWins
	OWins
	Draw
)

// String returns a short name for the outcome.
func (o Outcome) String() string {
	switch o {
	case InProgress:
		return "in_progress"
	case XWins:
		return "x_wins"
	case OWins:
		return "o_wins"
	case Draw:
		return "draw"
	default:
		return "unknown"
	}
}

// Terminal returns true once the match has ended.
func (o Outcome) Terminal() bool {
	return o != InProgress
}

// Winner returns the winning mark, or Empty for a draw or a running match.
func (o Outcome) Winner() Mark {
	switch o {
	case XWins:
		return X
	case OWins:
		return O
	default:
		return Empty
	}
}

func wonBy(m Mark) Outcome {
	if m == X {
		return XWins
	}
	return OWins
}

// Scores is the session tally across matches.
type Scores struct {
	X     int
	O     int
	Draws int
}

// Lines are the winning lines, in evaluation order.
var Lines = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

var (
	ErrCellOutOfRange = errors.New("cell index out of range")
	ErrCellOccupied   = errors.New("cell is already occupied")
	ErrMatchOver      = errors.New("match is already over")
	ErrNoTurn         = errors.New("no player to move")
)

// WinningLine returns the first line in Lines held entirely by one mark.
func WinningLine(b Board) ([3]int, bool) {
	for _, line := range Lines {
		a := b[line[0]]
		if a != Empty && a == b[line[1]] && a == b[line[2]] {
			return line, true
		}
	}
	return [3]int{}, false
}

// EvaluateWinner returns the mark owning the first complete line, or Empty.
// Boards with several complete lines resolve to the first one in Lines.
func EvaluateWinner(b Board) Mark {
	line, ok := WinningLine(b)
	if !ok {
		return Empty
	}
	return b[line[0]]
}

// State is the complete engine state.
type State struct {
	Board   Board
	Turn    Mark
	Outcome Outcome
	Scores  Scores
}

// NewState returns an empty board with X to move and a zero tally.
func NewState() State {
	return State{Turn: X, Outcome: InProgress}
}

// CheckMove reports why a move at index would be rejected, or nil.
func CheckMove(s State, index int) error {
	switch {
	case s.Outcome.Terminal():
		return fmt.Errorf("%w: %s", ErrMatchOver, s.Outcome)
	case s.Turn != X && s.Turn != O:
		return ErrNoTurn
	case index < 0 || index >= CellCount:
		return fmt.Errorf("%w: %d", ErrCellOutOfRange, index)
	case s.Board[index] != Empty:
		return fmt.Errorf("%w: cell %d holds %s", ErrCellOccupied, index, s.Board[index])
	}
	return nil
}

// Apply places the current player's mark at index and returns the next state.
// Illegal moves return s unchanged and false.
func Apply(s State, index int) (State, bool) {
	if CheckMove(s, index) != nil {
		return s, false
	}

	s.Board[index] = s.Turn

	switch winner := EvaluateWinner(s.Board); {
	case winner != Empty:
		s.Outcome = wonBy(winner)
		if winner == X {
			s.Scores.X++
		} else {
			s.Scores.O++
		}
	case s.Board.Full():
		s.Outcome = Draw
		s.Scores.Draws++
	default:
		s.Turn = s.Turn.Other()
	}

	return s, true
}

// Engine owns the state of one session: the current match and the tally.
// It is not safe for concurrent use.
type Engine struct {
	state State
}

// NewEngine creates an engine ready for the first match.
func NewEngine() *Engine {
	return &Engine{state: NewState()}
}

// ApplyMove plays the current turn at index.
// Returns false and leaves the state untouched if the move is illegal.
func (e *Engine) ApplyMove(index int) bool {
	next, ok := Apply(e.state, index)
	e.state = next
	return ok
}

// ResetMatch starts a new match. The score tally is kept.
func (e *Engine) ResetMatch() {
	scores := e.state.Scores
	e.state = NewState()
	e.state.Scores = scores
}

// ResetScores zeroes the tally. The current match is kept.
func (e *Engine) ResetScores() {
	e.state.Scores = Scores{}
}

// State returns a copy of the engine state.
func (e *Engine) State() State {
	return e.state
}

// Board returns a copy of the board.
func (e *Engine) Board() Board {
	return e.state.Board
}

// Turn returns the mark to move next. Frozen once the match is over.
func (e *Engine) Turn() Mark {
	return e.state.Turn
}

// Outcome returns the current match outcome.
func (e *Engine) Outcome() Outcome {
	return e.state.Outcome
}

// Scores returns the session tally.
func (e *Engine) Scores() Scores {
	return e.state.Scores
}

// Status returns the status line shown under the board.
func (e *Engine) Status() string {
	return StatusMessage(e.state)
}

// StatusMessage describes a state for display.
func StatusMessage(s State) string {
	switch {
	case s.Outcome == Draw:
		return "It's a draw!"
	case s.Outcome.Terminal():
		return "Winner: " + s.Outcome.Winner().String()
	default:
		return "Next player: " + s.Turn.String()
	}
}
