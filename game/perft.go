package game

import (
	"github.com/dkarlsen/arbiter/board"
)

// PerftResult aggregates node and move-class counts at the leaf depth.
type PerftResult struct {
	Nodes      uint64
	Captures   uint64
	EnPassants uint64
	Castles    uint64
	Promotions uint64
}

// Perft walks the legal move tree to the given depth, counting leaf nodes and
// move classes. It serves as a correctness oracle for the generator.
func Perft(st State, depth int) (PerftResult, error) {
	var res PerftResult
	if err := runPerft(st, depth, &res); err != nil {
		return PerftResult{}, err
	}
	return res, nil
}

func runPerft(st State, depth int, res *PerftResult) error {
	if depth == 0 {
		res.Nodes++
		return nil
	}
	mvs, err := AllLegalMoves(st)
	if err != nil {
		return err
	}
	for _, mv := range mvs {
		// leaves only need counting, not execution
		if depth == 1 {
			res.Nodes++
			if mv.Captured != board.PieceUnknown {
				res.Captures++
			}
			if mv.IsEnPassant {
				res.EnPassants++
			}
			if mv.IsCastling {
				res.Castles++
			}
			if mv.Promotion != board.PieceUnknown {
				res.Promotions++
			}
			continue
		}
		next, err := Execute(st, mv, mv.Promotion)
		if err != nil {
			return err
		}
		if err := runPerft(next, depth-1, res); err != nil {
			return err
		}
	}
	return nil
}
