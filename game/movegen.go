package game

import (
	"github.com/dkarlsen/arbiter/board"
	"github.com/dkarlsen/arbiter/position"
)

var (
	knightOffsets = [8][2]int8{
		{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2},
		{1, -2}, {1, 2}, {2, -1}, {2, 1},
	}
	kingOffsets = [8][2]int8{
		{-1, -1}, {-1, 0}, {-1, 1}, {0, -1},
		{0, 1}, {1, -1}, {1, 0}, {1, 1},
	}
	bishopDirections = [4][2]int8{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	rookDirections   = [4][2]int8{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	queenDirections  = [8][2]int8{
		{-1, 0}, {1, 0}, {0, -1}, {0, 1},
		{-1, -1}, {-1, 1}, {1, -1}, {1, 1},
	}
)

// pseudoMoves enumerates the geometrically valid moves for the piece on from,
// ignoring king safety. Castling candidates are emitted whenever the right is
// intact, the rook is home and the gap is clear; attack checks on the king and
// its transit square belong to the legality filter.
func pseudoMoves(b *board.Board, from position.Pos, rights board.CastleRights, enPassant *position.Pos) []Move {
	c := b.At(from)
	switch c.Piece {
	case board.PiecePawn:
		return pawnMoves(b, from, c.Side, enPassant)
	case board.PieceKnight:
		return offsetMoves(b, from, c, knightOffsets[:])
	case board.PieceBishop:
		return slidingMoves(b, from, c, bishopDirections[:])
	case board.PieceRook:
		return slidingMoves(b, from, c, rookDirections[:])
	case board.PieceQueen:
		return slidingMoves(b, from, c, queenDirections[:])
	case board.PieceKing:
		mvs := offsetMoves(b, from, c, kingOffsets[:])
		return append(mvs, castlingMoves(b, from, c.Side, rights)...)
	default:
		return nil
	}
}

func pawnMoves(b *board.Board, from position.Pos, s board.Side, enPassant *position.Pos) []Move {
	var mvs []Move
	forward := s.Forward()

	one := from.Offset(forward, 0)
	if one.Valid() && b.At(one).IsEmpty() {
		mvs = appendPawnMove(mvs, Move{From: from, To: one, Side: s, Piece: board.PiecePawn})
		if from.Row == s.PawnRow() {
			two := from.Offset(2*forward, 0)
			if b.At(two).IsEmpty() {
				mvs = append(mvs, Move{From: from, To: two, Side: s, Piece: board.PiecePawn})
			}
		}
	}

	for _, dCol := range [2]int8{-1, 1} {
		to := from.Offset(forward, dCol)
		if !to.Valid() {
			continue
		}
		target := b.At(to)
		switch {
		case !target.IsEmpty() && target.Side == s.Opposite():
			mvs = appendPawnMove(mvs, Move{
				From: from, To: to, Side: s, Piece: board.PiecePawn,
				Captured: target.Piece,
			})
		case target.IsEmpty() && enPassant != nil && *enPassant == to:
			mvs = append(mvs, Move{
				From: from, To: to, Side: s, Piece: board.PiecePawn,
				Captured: board.PiecePawn, IsEnPassant: true,
			})
		}
	}
	return mvs
}

// appendPawnMove expands a move landing on the promotion row into one
// candidate per promotable piece.
func appendPawnMove(mvs []Move, mv Move) []Move {
	if mv.To.Row != mv.Side.PromotionRow() {
		return append(mvs, mv)
	}
	for _, promote := range board.PawnPromoteCandidates {
		mv.Promotion = promote
		mvs = append(mvs, mv)
	}
	return mvs
}

func offsetMoves(b *board.Board, from position.Pos, c board.Cell, offsets [][2]int8) []Move {
	var mvs []Move
	for _, d := range offsets {
		to := from.Offset(d[0], d[1])
		if !to.Valid() {
			continue
		}
		target := b.At(to)
		if !target.IsEmpty() && target.Side == c.Side {
			continue
		}
		mvs = append(mvs, Move{
			From: from, To: to, Side: c.Side, Piece: c.Piece,
			Captured: target.Piece,
		})
	}
	return mvs
}

func slidingMoves(b *board.Board, from position.Pos, c board.Cell, directions [][2]int8) []Move {
	var mvs []Move
	for _, d := range directions {
		for to := from.Offset(d[0], d[1]); to.Valid(); to = to.Offset(d[0], d[1]) {
			target := b.At(to)
			if target.IsEmpty() {
				mvs = append(mvs, Move{From: from, To: to, Side: c.Side, Piece: c.Piece})
				continue
			}
			if target.Side != c.Side {
				mvs = append(mvs, Move{
					From: from, To: to, Side: c.Side, Piece: c.Piece,
					Captured: target.Piece,
				})
			}
			break
		}
	}
	return mvs
}

func castlingMoves(b *board.Board, from position.Pos, s board.Side, rights board.CastleRights) []Move {
	home := s.HomeRow()
	if from.Row != home || from.Col != 4 || !rights.IsSideAllowed(s) {
		return nil
	}
	var mvs []Move
	for _, kingSide := range [2]bool{true, false} {
		if !rights.IsAllowed(board.NewCastleDirection(s, kingSide)) {
			continue
		}
		rookCol, toCol := int8(0), int8(2)
		gap := []int8{1, 2, 3}
		if kingSide {
			rookCol, toCol = 7, 6
			gap = []int8{5, 6}
		}
		rook := b.At(position.New(home, rookCol))
		if rook.Piece != board.PieceRook || rook.Side != s {
			continue
		}
		clear := true
		for _, col := range gap {
			if !b.At(position.New(home, col)).IsEmpty() {
				clear = false
				break
			}
		}
		if !clear {
			continue
		}
		mvs = append(mvs, Move{
			From: from, To: position.New(home, toCol), Side: s,
			Piece: board.PieceKing, IsCastling: true,
		})
	}
	return mvs
}
