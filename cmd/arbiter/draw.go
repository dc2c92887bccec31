package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/dkarlsen/arbiter/board"
	"github.com/dkarlsen/arbiter/game"
	"github.com/dkarlsen/arbiter/position"
)

var (
	labelColor = color.New(color.Bold)
	lightCell  = color.New(color.FgBlack, color.BgHiWhite)
	darkCell   = color.New(color.FgBlack, color.BgGreen)
)

// draw renders the board with checkered cells, white's side at the bottom.
func draw(st game.State) string {
	builder := strings.Builder{}
	for row := int8(0); row < board.Height; row++ {
		_, _ = builder.WriteString(labelColor.Sprintf(" %d ", position.New(row, 0).Rank()))
		for col := int8(0); col < board.Width; col++ {
			c := st.Board.At(position.New(row, col))
			sym := c.Piece.SymbolUnicode(c.Side)
			if c.IsEmpty() {
				sym = " "
			}
			cell := lightCell
			if (row+col)%2 == 1 {
				cell = darkCell
			}
			_, _ = builder.WriteString(cell.Sprintf(" %s ", sym))
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("   ")
	for col := int8(0); col < board.Width; col++ {
		_, _ = builder.WriteString(labelColor.Sprintf(" %s ", position.New(0, col).NotationComponentX()))
	}
	return builder.String()
}

func describe(st game.State) string {
	switch {
	case st.Checkmate:
		return fmt.Sprintf("checkmate, %s wins", st.Turn.Opposite())
	case st.Stalemate:
		return "stalemate"
	case st.InCheck:
		return fmt.Sprintf("%s to move, in check", st.Turn)
	default:
		return fmt.Sprintf("%s to move", st.Turn)
	}
}
