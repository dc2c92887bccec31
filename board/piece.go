package board

type Piece uint8

const (
	PieceUnknown Piece = iota
	PiecePawn
	PieceBishop
	PieceKnight
	PieceRook
	PieceQueen
	PieceKing
)

// PawnPromoteCandidates represents the candidates for pawn promotion.
var PawnPromoteCandidates = []Piece{PieceBishop, PieceKnight, PieceRook, PieceQueen}

func (p Piece) String() string {
	return p.Name()
}

func (p Piece) Name() string {
	switch p {
	case PiecePawn:
		return "Pawn"
	case PieceBishop:
		return "Bishop"
	case PieceKnight:
		return "Knight"
	case PieceRook:
		return "Rook"
	case PieceQueen:
		return "Queen"
	case PieceKing:
		return "King"
	default:
		return ""
	}
}

// CanPromoteTo reports whether a pawn may promote to this piece.
func (p Piece) CanPromoteTo() bool {
	switch p {
	case PieceBishop, PieceKnight, PieceRook, PieceQueen:
		return true
	default:
		return false
	}
}

// SymbolAlgebra returns the algebraic letter of the piece, empty for pawns.
func (p Piece) SymbolAlgebra() string {
	if p == PiecePawn {
		return ""
	}
	return p.SymbolFEN(SideWhite)
}

func (p Piece) SymbolFEN(s Side) string {
	var sym rune
	switch p {
	case PiecePawn:
		sym = 'P'
	case PieceBishop:
		sym = 'B'
	case PieceKnight:
		sym = 'N'
	case PieceRook:
		sym = 'R'
	case PieceQueen:
		sym = 'Q'
	case PieceKing:
		sym = 'K'
	default:
		return ""
	}
	if s == SideBlack {
		sym |= 0x20 // lowercase is +32 uppercase
	}
	return string(sym)
}

func (p Piece) SymbolUnicode(s Side) string {
	switch s {
	case SideWhite:
		switch p {
		case PiecePawn:
			return "♙"
		case PieceBishop:
			return "♗"
		case PieceKnight:
			return "♘"
		case PieceRook:
			return "♖"
		case PieceQueen:
			return "♕"
		case PieceKing:
			return "♔"
		default:
			return ""
		}
	case SideBlack:
		switch p {
		case PiecePawn:
			return "♟"
		case PieceBishop:
			return "♝"
		case PieceKnight:
			return "♞"
		case PieceRook:
			return "♜"
		case PieceQueen:
			return "♛"
		case PieceKing:
			return "♚"
		default:
			return ""
		}
	default:
		return ""
	}
}

// PieceFromSymbolFEN maps a FEN letter to its piece and side.
func PieceFromSymbolFEN(sym rune) (Side, Piece, bool) {
	s := SideWhite
	if 'a' <= sym && sym <= 'z' {
		s = SideBlack
		sym &^= 0x20
	}
	switch sym {
	case 'P':
		return s, PiecePawn, true
	case 'B':
		return s, PieceBishop, true
	case 'N':
		return s, PieceKnight, true
	case 'R':
		return s, PieceRook, true
	case 'Q':
		return s, PieceQueen, true
	case 'K':
		return s, PieceKing, true
	default:
		return SideUnknown, PieceUnknown, false
	}
}
