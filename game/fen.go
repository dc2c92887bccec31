package game

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dkarlsen/arbiter/board"
	"github.com/dkarlsen/arbiter/position"
)

// DefaultStartingPositionFEN is the standard initial position.
const DefaultStartingPositionFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ParseFEN builds a state from a FEN record. The check and terminal flags are
// recomputed from the parsed position when the side to move has a king;
// otherwise they stay false and engine queries will fail with ErrMissingKing.
func ParseFEN(fen string) (State, error) {
	segments := strings.Split(fen, " ")
	if len(segments) != 6 {
		return State{}, fmt.Errorf("%w: incorrect number of segments", ErrInvalidFEN)
	}

	var st State

	rows := strings.Split(segments[0], "/")
	if len(rows) != int(board.Height) {
		return State{}, fmt.Errorf("%w: invalid board configuration", ErrInvalidFEN)
	}
	for row := int8(0); row < board.Height; row++ {
		col := int8(0)
		for _, sym := range rows[row] {
			if '1' <= sym && sym <= '8' {
				col += int8(sym - '0')
				continue
			}
			s, p, ok := board.PieceFromSymbolFEN(sym)
			if !ok {
				return State{}, fmt.Errorf("%w: unknown symbol %q", ErrInvalidFEN, string(sym))
			}
			if col >= board.Width {
				return State{}, fmt.Errorf("%w: row overflow", ErrInvalidFEN)
			}
			st.Board.Put(position.New(row, col), s, p)
			col++
		}
		if col != board.Width {
			return State{}, fmt.Errorf("%w: missing cells", ErrInvalidFEN)
		}
	}

	switch segments[1] {
	case "w":
		st.Turn = board.SideWhite
	case "b":
		st.Turn = board.SideBlack
	default:
		return State{}, fmt.Errorf("%w: invalid turn", ErrInvalidFEN)
	}

	if len(segments[2]) > 4 {
		return State{}, fmt.Errorf("%w: invalid castling rights", ErrInvalidFEN)
	}
crLoop:
	for i, e := range segments[2] {
		switch e {
		case 'K':
			st.CastlingRights.Set(board.CastleDirectionWhiteKing, true)
		case 'Q':
			st.CastlingRights.Set(board.CastleDirectionWhiteQueen, true)
		case 'k':
			st.CastlingRights.Set(board.CastleDirectionBlackKing, true)
		case 'q':
			st.CastlingRights.Set(board.CastleDirectionBlackQueen, true)
		default:
			if i == 0 && e == '-' {
				break crLoop
			}
			return State{}, fmt.Errorf("%w: invalid castling rights", ErrInvalidFEN)
		}
	}

	if segments[3] != "-" {
		target, err := position.NewPosFromNotation(segments[3])
		if err != nil {
			return State{}, fmt.Errorf("%w: invalid en passant target", ErrInvalidFEN)
		}
		st.EnPassant = &target
	}

	halfMove, err := strconv.Atoi(segments[4])
	if err != nil || halfMove < 0 {
		return State{}, fmt.Errorf("%w: invalid half move clock", ErrInvalidFEN)
	}
	st.HalfMoveClock = halfMove

	fullMove, err := strconv.Atoi(segments[5])
	if err != nil || fullMove < 1 {
		return State{}, fmt.Errorf("%w: invalid full move number", ErrInvalidFEN)
	}
	st.FullMoveNumber = fullMove

	if king, ok := st.Board.Find(st.Turn, board.PieceKing); ok {
		st.InCheck = SquareAttacked(&st.Board, king, st.Turn.Opposite())
		mvs, err := AllLegalMoves(st)
		if err == nil && len(mvs) == 0 {
			if st.InCheck {
				st.Checkmate = true
			} else {
				st.Stalemate = true
			}
		}
	}

	return st, nil
}

// FEN renders the state as a FEN record.
func (st State) FEN() string {
	builder := strings.Builder{}
	for row := int8(0); row < board.Height; row++ {
		var skip int
		for col := int8(0); col < board.Width; col++ {
			c := st.Board.At(position.New(row, col))
			if c.IsEmpty() {
				skip++
				continue
			}
			if skip > 0 {
				_, _ = builder.WriteString(strconv.Itoa(skip))
				skip = 0
			}
			_, _ = builder.WriteString(c.Piece.SymbolFEN(c.Side))
		}
		if skip > 0 {
			_, _ = builder.WriteString(strconv.Itoa(skip))
		}
		if row < board.Height-1 {
			_, _ = builder.WriteRune('/')
		}
	}

	if st.Turn == board.SideWhite {
		_, _ = builder.WriteString(" w ")
	} else {
		_, _ = builder.WriteString(" b ")
	}

	if st.CastlingRights == 0 {
		_, _ = builder.WriteRune('-')
	} else {
		if st.CastlingRights.IsAllowed(board.CastleDirectionWhiteKing) {
			_, _ = builder.WriteRune('K')
		}
		if st.CastlingRights.IsAllowed(board.CastleDirectionWhiteQueen) {
			_, _ = builder.WriteRune('Q')
		}
		if st.CastlingRights.IsAllowed(board.CastleDirectionBlackKing) {
			_, _ = builder.WriteRune('k')
		}
		if st.CastlingRights.IsAllowed(board.CastleDirectionBlackQueen) {
			_, _ = builder.WriteRune('q')
		}
	}
	_, _ = builder.WriteRune(' ')

	if st.EnPassant == nil {
		_, _ = builder.WriteRune('-')
	} else {
		_, _ = builder.WriteString(st.EnPassant.Notation())
	}

	_, _ = builder.WriteString(fmt.Sprintf(" %d %d", st.HalfMoveClock, st.FullMoveNumber))

	return builder.String()
}
