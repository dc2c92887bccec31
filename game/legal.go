package game

import (
	"fmt"

	"github.com/dkarlsen/arbiter/board"
	"github.com/dkarlsen/arbiter/position"
)

// LegalMoves returns the moves the side to move may play with the piece on
// pos. An empty square, an off-board position or a square holding the
// opponent's piece yields an empty result and no error. A board without a
// king for the side to move is out of contract and fails with ErrMissingKing.
func LegalMoves(st State, pos position.Pos) ([]Move, error) {
	if !pos.Valid() {
		return nil, nil
	}
	c := st.Board.At(pos)
	if c.IsEmpty() || c.Side != st.Turn {
		return nil, nil
	}
	if _, ok := st.Board.Find(st.Turn, board.PieceKing); !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingKing, st.Turn)
	}

	var mvs []Move
	for _, mv := range pseudoMoves(&st.Board, pos, st.CastlingRights, st.EnPassant) {
		if mv.IsCastling && !castleSafe(&st.Board, mv) {
			continue
		}
		sim := st.Board
		applyToBoard(&sim, mv, mv.Promotion)
		king, ok := sim.Find(mv.Side, board.PieceKing)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingKing, mv.Side)
		}
		if SquareAttacked(&sim, king, mv.Side.Opposite()) {
			continue
		}
		mvs = append(mvs, mv)
	}
	return mvs, nil
}

// castleSafe checks the pre-move conditions the generator defers: the king is
// not currently attacked, and neither is the square it crosses. The landing
// square is covered by the regular king-safety simulation.
func castleSafe(b *board.Board, mv Move) bool {
	opponent := mv.Side.Opposite()
	if SquareAttacked(b, mv.From, opponent) {
		return false
	}
	transit := position.New(mv.From.Row, (mv.From.Col+mv.To.Col)/2)
	return !SquareAttacked(b, transit, opponent)
}

// AllLegalMoves aggregates LegalMoves over every square held by the side to
// move. Order is deterministic: origin squares row-major from the black back
// rank, candidates in generation order.
func AllLegalMoves(st State) ([]Move, error) {
	var mvs []Move
	for row := int8(0); row < board.Height; row++ {
		for col := int8(0); col < board.Width; col++ {
			pos := position.New(row, col)
			if st.Board.At(pos).Side != st.Turn {
				continue
			}
			sq, err := LegalMoves(st, pos)
			if err != nil {
				return nil, err
			}
			mvs = append(mvs, sq...)
		}
	}
	return mvs, nil
}
