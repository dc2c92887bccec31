package game

import (
	"github.com/dkarlsen/arbiter/board"
	"github.com/dkarlsen/arbiter/position"
)

// SquareAttacked reports whether target is attacked by any piece of the given
// side. Generation runs with castling rights forced off and no en passant
// target so that castling legality checks cannot recurse back into castling
// generation. Pawns are checked against their diagonal capture squares
// directly: capture generation only yields occupied destinations, while a
// pawn bears on its diagonals whether or not they are occupied, and forward
// pushes are never attacks.
func SquareAttacked(b *board.Board, target position.Pos, by board.Side) bool {
	for row := int8(0); row < board.Height; row++ {
		for col := int8(0); col < board.Width; col++ {
			from := position.New(row, col)
			c := b.At(from)
			if c.Side != by {
				continue
			}
			if c.Piece == board.PiecePawn {
				if pawnAttacks(from, by, target) {
					return true
				}
				continue
			}
			for _, mv := range pseudoMoves(b, from, 0, nil) {
				if mv.To == target {
					return true
				}
			}
		}
	}
	return false
}

func pawnAttacks(from position.Pos, s board.Side, target position.Pos) bool {
	if from.Row+s.Forward() != target.Row {
		return false
	}
	return from.Col-target.Col == 1 || target.Col-from.Col == 1
}
