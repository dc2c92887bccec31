package board

// CastleDirection identifies one castling option of one side.
type CastleDirection uint8

const (
	CastleDirectionUnknown CastleDirection = iota
	CastleDirectionWhiteKing
	CastleDirectionWhiteQueen
	CastleDirectionBlackKing
	CastleDirectionBlackQueen
)

func (d CastleDirection) String() string {
	switch d {
	case CastleDirectionWhiteKing:
		return "White O-O"
	case CastleDirectionWhiteQueen:
		return "White O-O-O"
	case CastleDirectionBlackKing:
		return "Black O-O"
	case CastleDirectionBlackQueen:
		return "Black O-O-O"
	default:
		return ""
	}
}

// IsKingSide reports whether the direction castles toward the h-file.
func (d CastleDirection) IsKingSide() bool {
	return d == CastleDirectionWhiteKing || d == CastleDirectionBlackKing
}

// NewCastleDirection maps a side and wing to its direction.
func NewCastleDirection(s Side, kingSide bool) CastleDirection {
	if s == SideWhite {
		if kingSide {
			return CastleDirectionWhiteKing
		}
		return CastleDirectionWhiteQueen
	}
	if kingSide {
		return CastleDirectionBlackKing
	}
	return CastleDirectionBlackQueen
}

var maskCastleRights = [5]CastleRights{
	CastleDirectionWhiteKing:  0b1000,
	CastleDirectionWhiteQueen: 0b0100,
	CastleDirectionBlackKing:  0b0010,
	CastleDirectionBlackQueen: 0b0001,
}

// CastleRights packs the four per-side, per-wing castling flags. Rights are
// only ever revoked during a game, never restored.
type CastleRights uint8

// CastleRightsAll has every right set, as at the start of a game.
const CastleRightsAll CastleRights = 0b1111

func (c *CastleRights) Set(d CastleDirection, allow bool) {
	if allow {
		*c |= maskCastleRights[d]
	} else {
		*c &^= maskCastleRights[d]
	}
}

func (c CastleRights) IsAllowed(d CastleDirection) bool {
	return c&maskCastleRights[d] != 0
}

func (c CastleRights) IsSideAllowed(s Side) bool {
	if s == SideWhite {
		return c&(maskCastleRights[CastleDirectionWhiteKing]|maskCastleRights[CastleDirectionWhiteQueen]) != 0
	}
	return c&(maskCastleRights[CastleDirectionBlackKing]|maskCastleRights[CastleDirectionBlackQueen]) != 0
}
