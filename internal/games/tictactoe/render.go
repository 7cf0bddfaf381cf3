package tictactoe

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/tui-tictactoe/internal/core"
)

const (
	titleText = "T I C - T A C - T O E"

	// Rows used around the board: title, gap, scores, gap | board | gap, status.
	headerRows = 4
	footerRows = 2

	// Narrowest screen that still fits the score line.
	minTextWidth = 30
)

// layout holds screen positions derived from the screen and cell sizes.
type layout struct {
	board   core.Rect // Outer border of the grid
	cellW   int
	cellH   int
	titleY  int
	scoreY  int
	statusY int
	fits    bool
}

func computeLayout(screenW, screenH, cellW, cellH int) layout {
	boardW := 3*cellW + 4
	boardH := 3*cellH + 4
	totalH := headerRows + boardH + footerRows

	top := max((screenH-totalH)/2, 0)
	left := max((screenW-boardW)/2, 0)

	return layout{
		board:   core.NewRect(left, top+headerRows, boardW, boardH),
		cellW:   cellW,
		cellH:   cellH,
		titleY:  top,
		scoreY:  top + 2,
		statusY: top + headerRows + boardH + 1,
		fits:    screenW >= max(boardW, minTextWidth) && screenH >= totalH,
	}
}

// cellRect returns the interior of a cell (without grid lines).
func (l layout) cellRect(i int) core.Rect {
	col, row := i%3, i/3
	return core.NewRect(
		l.board.X+1+col*(l.cellW+1),
		l.board.Y+1+row*(l.cellH+1),
		l.cellW,
		l.cellH,
	)
}

// cellAt maps a screen position to a cell. Grid lines hit nothing.
func (l layout) cellAt(x, y int) (int, bool) {
	if !l.fits {
		return 0, false
	}
	for i := 0; i < CellCount; i++ {
		if l.cellRect(i).Contains(x, y) {
			return i, true
		}
	}
	return 0, false
}

// Render draws the current game state.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		l := computeLayout(0, 0, g.cellW, g.cellH)
		need := fmt.Sprintf("Need at least %dx%d", max(l.board.W, minTextWidth), headerRows+l.board.H+footerRows)
		dst.DrawTextCentered(dst.Height()/2-1, "Terminal too small", core.ColorBrightRed)
		dst.DrawTextCentered(dst.Height()/2, need, core.ColorGray)
		return
	}

	l := g.layout
	dst.DrawTextCentered(l.titleY, titleText, g.palette.Title)
	g.drawScores(dst, l.scoreY)
	g.drawGrid(dst)
	g.drawCells(dst)
	dst.DrawTextCentered(l.statusY, g.engine.Status(), g.statusColor())
}

// drawScores draws "X: n   O: n   Draws: n" centered, each part in its color.
func (g *Game) drawScores(dst *core.Screen, y int) {
	s := g.engine.Scores()
	parts := []struct {
		text  string
		color core.Color
	}{
		{fmt.Sprintf("X: %d", s.X), g.palette.X},
		{"   ", core.ColorDefault},
		{fmt.Sprintf("O: %d", s.O), g.palette.O},
		{"   ", core.ColorDefault},
		{fmt.Sprintf("Draws: %d", s.Draws), g.palette.Title},
	}

	width := 0
	for _, p := range parts {
		width += utf8.RuneCountInString(p.text)
	}

	x := (dst.Width() - width) / 2
	for _, p := range parts {
		dst.DrawText(x, y, p.text, p.color)
		x += utf8.RuneCountInString(p.text)
	}
}

func (g *Game) drawGrid(dst *core.Screen) {
	b := g.layout.board
	c := g.palette.Grid
	dst.DrawBox(b, c)

	for k := 1; k <= 2; k++ {
		vx := b.X + k*(g.cellW+1)
		dst.DrawVLine(vx, b.Y+1, b.H-2, '│', c)
		dst.SetColored(vx, b.Y, '┬', c)
		dst.SetColored(vx, b.Bottom()-1, '┴', c)

		hy := b.Y + k*(g.cellH+1)
		dst.DrawHLine(b.X+1, hy, b.W-2, '─', c)
		dst.SetColored(b.X, hy, '├', c)
		dst.SetColored(b.Right()-1, hy, '┤', c)
	}

	for kx := 1; kx <= 2; kx++ {
		for ky := 1; ky <= 2; ky++ {
			dst.SetColored(b.X+kx*(g.cellW+1), b.Y+ky*(g.cellH+1), '┼', c)
		}
	}
}

func (g *Game) drawCells(dst *core.Screen) {
	board := g.engine.Board()
	outcome := g.engine.Outcome()

	var winCells [CellCount]bool
	if line, ok := WinningLine(board); ok && outcome.Terminal() {
		for _, i := range line {
			winCells[i] = true
		}
	}

	for i, mark := range board {
		cx, cy := g.layout.cellRect(i).Center()

		switch {
		case mark != Empty:
			color := g.markColor(mark)
			if winCells[i] {
				color = g.palette.Win
			}
			r, _ := utf8.DecodeRuneInString(mark.String())
			dst.SetColored(cx, cy, r, color)
		case !outcome.Terminal():
			dst.SetColored(cx, cy, rune('1'+i), g.palette.Hint)
		}

		if i == g.cursor && !outcome.Terminal() {
			dst.SetColored(cx-1, cy, '[', g.palette.Cursor)
			dst.SetColored(cx+1, cy, ']', g.palette.Cursor)
		}
	}
}

func (g *Game) markColor(m Mark) core.Color {
	if m == X {
		return g.palette.X
	}
	return g.palette.O
}

func (g *Game) statusColor() core.Color {
	switch outcome := g.engine.Outcome(); {
	case outcome == Draw:
		return g.palette.Title
	case outcome.Terminal():
		return g.palette.Win
	default:
		return g.markColor(g.engine.Turn())
	}
}
