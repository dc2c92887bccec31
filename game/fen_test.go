package game

import (
	"errors"
	"testing"
)

func TestFEN(t *testing.T) {
	t.Parallel()
	tests := []struct {
		fen     string
		wantErr bool
	}{
		{fen: DefaultStartingPositionFEN, wantErr: false},
		{fen: "r3k2r/1bppqppp/p1n2n2/2b1p3/B3P3/2NP1N2/1PP2PPP/R1BQ1RK1 b kq - 2 10", wantErr: false},
		{fen: "r4rk1/1bpp1ppp/p2q4/2bPp3/8/1BPP1Q2/1P3PPP/R1B2RK1 b - - 2 15", wantErr: false},
		{fen: "8/5kBp/3p3P/5pb1/8/5P2/4R2K/3r4 b - - 8 52", wantErr: false},
		{fen: "rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq e6 0 2", wantErr: false},
		{fen: "r4rk1/5ppp/p2p4/1bb1p3/BP6/2PP4/5PPP/R1B1R1K1 b - b3 0 20", wantErr: false},
		{fen: "8/7R/5B2/5P1k/p6p/P6P/6P1/7K b - - 2 58", wantErr: false},
		{fen: "r7/p4k2/4p2p/2B4N/4Pn2/2P2P2/PP2r1qP/R5K1 w - - 6 39", wantErr: false},
		{fen: "5k2/R7/4NN1p/p7/5P2/8/P1P3PP/3B2K1 b - - 7 30", wantErr: false},
		{fen: "8/5k2/4N3/8/8/3K4/8/8 w - - 0 71", wantErr: false},
		{fen: "1r3b1r/6pp/8/1p1pN3/3P1PQk/2P5/P7/qN3RK1 b - - 5 26", wantErr: false},
		{fen: "R4k1r/1pNQ3p/4ppp1/8/3Pb1q1/5N2/5PPP/4KB1R b K - 5 22", wantErr: false},
		{fen: "", wantErr: true},
		{fen: "invalid fen", wantErr: true},
		{fen: "8/3Rn3/5Q2/p5kp/2B1P3/2P3bP/PP3R2/7K badside - - 1 38", wantErr: true},
		{fen: "8/3Rn3/5Q2/p5kp/2B1P3/2P3bP/PP3R2/7K b badcastlingrights - 1 38", wantErr: true},
		{fen: "8/3Rn3/badboard/p5kp/2B1P3/2P3bP/PP3R2/7K b - - 1 38", wantErr: true},
		{fen: "7k/8/8/8/8/7/8/7K w - - 1 1", wantErr: true},
		{fen: "7k/8/8/8/8//8/7K w - - 1 1", wantErr: true},
		{fen: "7k/8/8/8/8/8/7K w - - 1 1", wantErr: true},
		{fen: "7k/8/8/8/8/8/8/7K w - - 1 1 extrasegment", wantErr: true},
		{fen: "7k/8/8/8/8/8/8/7K w - e9 1 1", wantErr: true},
		{fen: "7k/8/8/8/8/8/8/7K w - - -1 1", wantErr: true},
		{fen: "7k/8/8/8/8/8/8/7K w - - 1 0", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.fen, func(t *testing.T) {
			t.Parallel()

			st, err := ParseFEN(tt.fen)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidFEN) {
					t.Errorf("unexpected error: got=%v want=%v", err, ErrInvalidFEN)
				}
				return
			}
			if err != nil {
				t.Fatal("unexpected error:", err)
			}

			if gotFEN := st.FEN(); gotFEN != tt.fen {
				t.Errorf("unexpected FEN: got=%s want=%s", gotFEN, tt.fen)
			}
		})
	}
}

func TestParseFENComputesFlags(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name          string
		fen           string
		wantCheck     bool
		wantCheckmate bool
		wantStalemate bool
	}{
		{
			name: "initial position",
			fen:  DefaultStartingPositionFEN,
		},
		{
			name:      "check",
			fen:       "R3k3/8/8/8/8/8/8/4K3 b - - 0 1",
			wantCheck: true,
		},
		{
			name:          "back rank mate",
			fen:           "R3k3/6R1/8/8/8/8/8/4K3 b - - 0 1",
			wantCheck:     true,
			wantCheckmate: true,
		},
		{
			name:          "stalemate",
			fen:           "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1",
			wantStalemate: true,
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
			if st.InCheck != tt.wantCheck {
				t.Errorf("unexpected InCheck: got=%v want=%v", st.InCheck, tt.wantCheck)
			}
			if st.Checkmate != tt.wantCheckmate {
				t.Errorf("unexpected Checkmate: got=%v want=%v", st.Checkmate, tt.wantCheckmate)
			}
			if st.Stalemate != tt.wantStalemate {
				t.Errorf("unexpected Stalemate: got=%v want=%v", st.Stalemate, tt.wantStalemate)
			}
		})
	}
}
