package board

import (
	"fmt"
	"strings"

	"github.com/dkarlsen/arbiter/position"
)

const (
	Width      = position.MaxComponentScalar
	Height     = position.MaxComponentScalar
	TotalCells = int(Width) * int(Height)
)

// Cell is the occupant of a single square. The zero value means an empty
// square.
type Cell struct {
	Side  Side
	Piece Piece
}

func (c Cell) IsEmpty() bool {
	return c.Piece == PieceUnknown
}

// Board is an 8×8 mailbox grid of cells. Board is a value type: assignment
// produces an independent deep copy, so no two snapshots ever alias storage.
type Board struct {
	cells [Height][Width]Cell
}

var backRank = [Width]Piece{
	PieceRook, PieceKnight, PieceBishop, PieceQueen,
	PieceKing, PieceBishop, PieceKnight, PieceRook,
}

// NewBoard returns a board with all pieces on their initial squares.
func NewBoard() Board {
	var b Board
	for col := int8(0); col < Width; col++ {
		b.Put(position.New(SideBlack.HomeRow(), col), SideBlack, backRank[col])
		b.Put(position.New(SideBlack.PawnRow(), col), SideBlack, PiecePawn)
		b.Put(position.New(SideWhite.PawnRow(), col), SideWhite, PiecePawn)
		b.Put(position.New(SideWhite.HomeRow(), col), SideWhite, backRank[col])
	}
	return b
}

func (b *Board) At(p position.Pos) Cell {
	return b.cells[p.Row][p.Col]
}

func (b *Board) Put(p position.Pos, s Side, pc Piece) {
	b.cells[p.Row][p.Col] = Cell{Side: s, Piece: pc}
}

func (b *Board) Clear(p position.Pos) {
	b.cells[p.Row][p.Col] = Cell{}
}

// Find returns the position of the first cell holding the given side and
// piece, scanning row-major from the black back rank.
func (b *Board) Find(s Side, pc Piece) (position.Pos, bool) {
	for row := int8(0); row < Height; row++ {
		for col := int8(0); col < Width; col++ {
			c := b.cells[row][col]
			if c.Side == s && c.Piece == pc {
				return position.New(row, col), true
			}
		}
	}
	return position.Pos{}, false
}

func (b *Board) Dump() string {
	builder := strings.Builder{}
	for row := int8(0); row < Height; row++ {
		_, _ = builder.WriteString("   +---+---+---+---+---+---+---+---+\n")
		_, _ = builder.WriteString(fmt.Sprintf(" %d |", Height-row))
		for col := int8(0); col < Width; col++ {
			c := b.cells[row][col]
			sym := c.Piece.SymbolFEN(c.Side)
			if c.IsEmpty() {
				sym = " "
			}
			_, _ = builder.WriteString(fmt.Sprintf(" %s |", sym))
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("   +---+---+---+---+---+---+---+---+\n   ")
	for col := int8(0); col < Width; col++ {
		_, _ = builder.WriteString(fmt.Sprintf("  %s ", position.New(0, col).NotationComponentX()))
	}
	return builder.String()
}
