package game

import (
	"fmt"

	"github.com/dkarlsen/arbiter/board"
	"github.com/dkarlsen/arbiter/position"
)

// Execute applies a move to the state and returns the next snapshot. The move
// is re-validated against the current legal set for its origin square and
// rejected with ErrIllegalMove when absent; the input state is never touched.
// promotionOverride selects the promotion piece when not PieceUnknown and
// takes precedence over the move's own Promotion field; the final fallback is
// a queen.
func Execute(st State, mv Move, promotionOverride board.Piece) (State, error) {
	if promotionOverride != board.PieceUnknown && !promotionOverride.CanPromoteTo() {
		return State{}, fmt.Errorf("%w: %s", ErrInvalidPromotion, promotionOverride.Name())
	}

	legal, err := LegalMoves(st, mv.From)
	if err != nil {
		return State{}, err
	}
	matched, ok := matchCandidate(legal, mv, promotionOverride)
	if !ok {
		return State{}, fmt.Errorf("%w: %s", ErrIllegalMove, mv.UCI())
	}

	next := State{
		Board:          st.Board,
		Turn:           st.Turn.Opposite(),
		CastlingRights: st.CastlingRights,
		HalfMoveClock:  st.HalfMoveClock + 1,
		FullMoveNumber: st.FullMoveNumber,
		Captured:       cloneCaptured(st.Captured),
	}

	applyToBoard(&next.Board, matched, matched.Promotion)

	if matched.Captured != board.PieceUnknown {
		victim := matched.Side.Opposite()
		next.Captured[victim] = append(next.Captured[victim], matched.Captured)
	}

	revokeCastlingRights(&next.CastlingRights, matched)

	if matched.Piece == board.PiecePawn && (matched.To.Row-matched.From.Row == 2 || matched.From.Row-matched.To.Row == 2) {
		skipped := position.New((matched.From.Row+matched.To.Row)/2, matched.From.Col)
		next.EnPassant = &skipped
	}

	if matched.Piece == board.PiecePawn || matched.Captured != board.PieceUnknown {
		next.HalfMoveClock = 0
	}
	if matched.Side == board.SideBlack {
		next.FullMoveNumber++
	}

	king, ok := next.Board.Find(next.Turn, board.PieceKing)
	if !ok {
		return State{}, fmt.Errorf("%w: %s", ErrMissingKing, next.Turn)
	}
	next.InCheck = SquareAttacked(&next.Board, king, matched.Side)

	replies, err := AllLegalMoves(next)
	if err != nil {
		return State{}, err
	}
	if len(replies) == 0 {
		if next.InCheck {
			next.Checkmate = true
		} else {
			next.Stalemate = true
		}
	}

	matched.Notation = san(matched, next.InCheck, next.Checkmate)
	next.History = make([]Move, len(st.History), len(st.History)+1)
	copy(next.History, st.History)
	next.History = append(next.History, matched)

	return next, nil
}

// matchCandidate selects the legal candidate the caller asked for. Candidates
// are unique by destination except for promotions, where the requested piece
// (override first, then the move's own field, then queen) picks among the four.
func matchCandidate(legal []Move, mv Move, promotionOverride board.Piece) (Move, bool) {
	want := promotionOverride
	if want == board.PieceUnknown {
		want = mv.Promotion
	}
	if want == board.PieceUnknown {
		want = board.PieceQueen
	}
	for _, cand := range legal {
		if cand.To != mv.To {
			continue
		}
		if cand.Promotion != board.PieceUnknown && cand.Promotion != want {
			continue
		}
		return cand, true
	}
	return Move{}, false
}

// applyToBoard performs the board-geometry part of a move: relocation, capture
// removal (en passant victims stand one rank behind To on the mover's side),
// the castling rook hop and promotion replacement.
func applyToBoard(b *board.Board, mv Move, promote board.Piece) {
	c := b.At(mv.From)
	b.Clear(mv.From)
	if mv.IsEnPassant {
		b.Clear(position.New(mv.To.Row-mv.Side.Forward(), mv.To.Col))
	}
	placed := c.Piece
	if promote != board.PieceUnknown {
		placed = promote
	}
	b.Put(mv.To, mv.Side, placed)

	if mv.IsCastling {
		home := mv.Side.HomeRow()
		if mv.To.Col == 6 {
			b.Clear(position.New(home, 7))
			b.Put(position.New(home, 5), mv.Side, board.PieceRook)
		} else {
			b.Clear(position.New(home, 0))
			b.Put(position.New(home, 3), mv.Side, board.PieceRook)
		}
	}
}

// revokeCastlingRights clears rights invalidated by the move: both for a side
// whose king moved, the matching wing when a rook leaves its home square, and
// the opponent's matching wing when a rook is captured on its home square.
// Rights are only ever cleared, never restored.
func revokeCastlingRights(rights *board.CastleRights, mv Move) {
	if mv.Piece == board.PieceKing {
		rights.Set(board.NewCastleDirection(mv.Side, true), false)
		rights.Set(board.NewCastleDirection(mv.Side, false), false)
	}
	if mv.Piece == board.PieceRook && mv.From.Row == mv.Side.HomeRow() {
		switch mv.From.Col {
		case 7:
			rights.Set(board.NewCastleDirection(mv.Side, true), false)
		case 0:
			rights.Set(board.NewCastleDirection(mv.Side, false), false)
		}
	}
	if mv.Captured == board.PieceRook && !mv.IsEnPassant {
		opponent := mv.Side.Opposite()
		if mv.To.Row == opponent.HomeRow() {
			switch mv.To.Col {
			case 7:
				rights.Set(board.NewCastleDirection(opponent, true), false)
			case 0:
				rights.Set(board.NewCastleDirection(opponent, false), false)
			}
		}
	}
}
