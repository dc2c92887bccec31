package game

import (
	"errors"

	"github.com/dkarlsen/arbiter/board"
	"github.com/dkarlsen/arbiter/position"
)

var (
	// ErrIllegalMove is returned when a submitted move is not in the legal set.
	ErrIllegalMove = errors.New("illegal move")
	// ErrMissingKing is returned when the queried side has no king on the board.
	ErrMissingKing = errors.New("missing king")
	// ErrInvalidPromotion is returned for a promotion piece outside the four
	// promotable types.
	ErrInvalidPromotion = errors.New("invalid promotion")
	// ErrInvalidFEN represents an invalid FEN error.
	ErrInvalidFEN = errors.New("invalid fen")
)

// State is one immutable snapshot of a game. Every transition produces a new
// State value; nothing in a snapshot aliases storage with its predecessor.
type State struct {
	Board          board.Board
	Turn           board.Side
	CastlingRights board.CastleRights
	EnPassant      *position.Pos
	HalfMoveClock  int
	FullMoveNumber int

	History []Move

	InCheck   bool
	Checkmate bool
	Stalemate bool

	// Captured tallies captured piece types, keyed by the color of the pieces
	// that were taken.
	Captured map[board.Side][]board.Piece
}

// NewGame returns the standard initial position with white to move.
func NewGame() State {
	return State{
		Board:          board.NewBoard(),
		Turn:           board.SideWhite,
		CastlingRights: board.CastleRightsAll,
		FullMoveNumber: 1,
	}
}

// Terminal reports whether meaningful play has ended. The engine does not
// forbid further calls on a terminal state; callers should treat it as final.
func (st *State) Terminal() bool {
	return st.Checkmate || st.Stalemate
}

func cloneCaptured(src map[board.Side][]board.Piece) map[board.Side][]board.Piece {
	dst := make(map[board.Side][]board.Piece, len(src))
	for s, pieces := range src {
		dst[s] = append([]board.Piece(nil), pieces...)
	}
	return dst
}
