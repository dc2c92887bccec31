package game

import (
	"github.com/dkarlsen/arbiter/board"
)

// san renders simplified algebraic notation for a move, given the check and
// mate flags of the resulting position. Like pieces reaching the same
// destination are not disambiguated.
func san(mv Move, check, mate bool) string {
	var nt string
	if mv.IsCastling {
		if mv.To.Col > mv.From.Col {
			nt = "O-O"
		} else {
			nt = "O-O-O"
		}
	} else {
		nt = mv.Piece.SymbolAlgebra()
		if mv.Captured != board.PieceUnknown || mv.IsEnPassant {
			if mv.Piece == board.PiecePawn {
				nt += mv.From.NotationComponentX()
			}
			nt += "x"
		}
		nt += mv.To.Notation()
		if mv.Promotion != board.PieceUnknown {
			nt += "=" + mv.Promotion.SymbolAlgebra()
		}
	}
	switch {
	case mate:
		nt += "#"
	case check:
		nt += "+"
	}
	return nt
}
