package position

import (
	"errors"
)

const (
	// MaxComponentScalar is the maximum component scalar the position system supports.
	MaxComponentScalar int8 = 8
)

var (
	// ErrInvalidNotation represents an invalid notation error.
	ErrInvalidNotation = errors.New("invalid notation")
)

// Pos addresses a single square on the board. Row 0 is the black back rank and
// row 7 the white back rank; Col 0 is the a-file. The algebraic rank is 8-Row.
type Pos struct {
	Row, Col int8
}

func New(row, col int8) Pos {
	return Pos{Row: row, Col: col}
}

func NewPosFromNotation(n string) (Pos, error) {
	if len(n) != 2 {
		return Pos{}, ErrInvalidNotation
	}
	col := int8(n[0] - 'a')
	if col < 0 || MaxComponentScalar <= col {
		return Pos{}, ErrInvalidNotation
	}
	row := int8('8' - n[1])
	if row < 0 || MaxComponentScalar <= row {
		return Pos{}, ErrInvalidNotation
	}
	return Pos{Row: row, Col: col}, nil
}

func (p Pos) String() string {
	return p.Notation()
}

func (p Pos) Notation() string {
	if !p.Valid() {
		return ""
	}
	return p.NotationComponentX() + p.NotationComponentY()
}

// NotationComponentX returns the file letter of the position.
func (p Pos) NotationComponentX() string {
	if p.Col < 0 || MaxComponentScalar <= p.Col {
		return ""
	}
	return string(rune('a' + p.Col))
}

// NotationComponentY returns the rank digit of the position.
func (p Pos) NotationComponentY() string {
	if p.Row < 0 || MaxComponentScalar <= p.Row {
		return ""
	}
	return string(rune('8' - p.Row))
}

// Rank returns the algebraic rank in [1,8].
func (p Pos) Rank() int8 {
	return MaxComponentScalar - p.Row
}

func (p Pos) Valid() bool {
	return 0 <= p.Row && p.Row < MaxComponentScalar &&
		0 <= p.Col && p.Col < MaxComponentScalar
}

// Offset returns the position shifted by the given deltas. The result may be
// off-board; check with Valid.
func (p Pos) Offset(dRow, dCol int8) Pos {
	return Pos{Row: p.Row + dRow, Col: p.Col + dCol}
}
