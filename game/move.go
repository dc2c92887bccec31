package game

import (
	"strings"

	"github.com/dkarlsen/arbiter/board"
	"github.com/dkarlsen/arbiter/position"
)

// Move describes one half-move. Captured holds the piece actually removed,
// which for en passant does not stand on To. Notation is filled in by the
// executor once the check and mate flags of the resulting state are known.
type Move struct {
	From, To position.Pos
	Side     board.Side
	Piece    board.Piece

	Captured    board.Piece
	Promotion   board.Piece
	IsCastling  bool
	IsEnPassant bool
	Notation    string
}

func (m Move) String() string {
	if m.Notation != "" {
		return m.Notation
	}
	return m.UCI()
}

// UCI returns the long algebraic form of the move. Castling is expressed by
// the king's own hop, as usual.
func (m Move) UCI() string {
	nt := m.From.Notation() + m.To.Notation()
	if m.Promotion != board.PieceUnknown {
		nt += strings.ToLower(m.Promotion.SymbolAlgebra())
	}
	return nt
}
