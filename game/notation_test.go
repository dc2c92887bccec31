package game

import (
	"testing"

	"github.com/dkarlsen/arbiter/board"
	"github.com/dkarlsen/arbiter/position"
)

func TestNotation(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		fen      string
		from, to string
		want     string
	}{
		{
			name: "pawn push",
			fen:  DefaultStartingPositionFEN,
			from: "e2", to: "e4",
			want: "e4",
		},
		{
			name: "knight development",
			fen:  DefaultStartingPositionFEN,
			from: "g1", to: "f3",
			want: "Nf3",
		},
		{
			name: "pawn capture keeps origin file",
			fen:  "rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 2",
			from: "e4", to: "d5",
			want: "exd5",
		},
		{
			name: "piece capture",
			fen:  "rnbqkbnr/ppp1pppp/8/3P4/8/8/PPPP1PPP/RNBQKBNR b KQkq - 0 2",
			from: "d8", to: "d5",
			want: "Qxd5",
		},
		{
			name: "king side castle",
			fen:  "4k3/8/8/8/8/8/8/4K2R w K - 0 1",
			from: "e1", to: "g1",
			want: "O-O",
		},
		{
			name: "queen side castle",
			fen:  "4k3/8/8/8/8/8/8/R3K3 w Q - 0 1",
			from: "e1", to: "c1",
			want: "O-O-O",
		},
		{
			name: "promotion with check",
			fen:  "8/4P3/8/7k/8/8/8/K7 w - - 0 1",
			from: "e7", to: "e8",
			want: "e8=Q+",
		},
		{
			name: "checking move",
			fen:  "4k3/8/8/8/8/8/8/R3K3 w - - 0 1",
			from: "a1", to: "a8",
			want: "Ra8+",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			st, err := ParseFEN(tt.fen)
			if err != nil {
				t.Fatal("unexpected error:", err)
			}
			from, err := position.NewPosFromNotation(tt.from)
			if err != nil {
				t.Fatal("unexpected error:", err)
			}
			to, err := position.NewPosFromNotation(tt.to)
			if err != nil {
				t.Fatal("unexpected error:", err)
			}
			next, err := Execute(st, Move{From: from, To: to}, board.PieceUnknown)
			if err != nil {
				t.Fatal("unexpected error:", err)
			}
			if got := next.History[len(next.History)-1].Notation; got != tt.want {
				t.Errorf("unexpected notation: got=%s want=%s", got, tt.want)
			}
		})
	}
}
