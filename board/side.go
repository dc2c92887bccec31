package board

type Side uint8

const (
	SideUnknown Side = iota
	SideWhite
	SideBlack
)

func (s Side) String() string {
	switch s {
	case SideWhite:
		return "White"
	case SideBlack:
		return "Black"
	default:
		return ""
	}
}

func (s Side) Opposite() Side {
	switch s {
	case SideWhite:
		return SideBlack
	case SideBlack:
		return SideWhite
	default:
		return SideUnknown
	}
}

// Forward is the row delta a pawn of this side advances by. White pawns move
// toward row 0, black pawns toward row 7.
func (s Side) Forward() int8 {
	if s == SideWhite {
		return -1
	}
	return 1
}

// HomeRow is the back rank row for this side.
func (s Side) HomeRow() int8 {
	if s == SideWhite {
		return 7
	}
	return 0
}

// PawnRow is the starting row of this side's pawns.
func (s Side) PawnRow() int8 {
	if s == SideWhite {
		return 6
	}
	return 1
}

// PromotionRow is the row a pawn of this side promotes on.
func (s Side) PromotionRow() int8 {
	if s == SideWhite {
		return 0
	}
	return 7
}
