package session

import (
	"errors"
	"testing"

	"github.com/dkarlsen/arbiter/board"
	"github.com/dkarlsen/arbiter/game"
	"github.com/dkarlsen/arbiter/position"
)

func pos(t *testing.T, n string) position.Pos {
	t.Helper()
	p, err := position.NewPosFromNotation(n)
	if err != nil {
		t.Fatalf("parse %q: %v", n, err)
	}
	return p
}

func TestManagerCreateGetList(t *testing.T) {
	t.Parallel()
	m := NewManager()

	if got := len(m.List()); got != 0 {
		t.Fatalf("fresh manager lists %d games, want 0", got)
	}

	id1, st := m.Create()
	if st.Turn != board.SideWhite {
		t.Errorf("new game turn: got %s, want %s", st.Turn, board.SideWhite)
	}
	id2, _ := m.Create()
	if id1 == id2 {
		t.Fatalf("duplicate game ID %q", id1)
	}

	if got := len(m.List()); got != 2 {
		t.Fatalf("manager lists %d games, want 2", got)
	}

	if _, err := m.Get(id1); err != nil {
		t.Errorf("Get(%q): %v", id1, err)
	}
	if _, err := m.Get("nope"); !errors.Is(err, ErrGameNotFound) {
		t.Errorf("Get(unknown): got %v, want ErrGameNotFound", err)
	}
}

func TestManagerMove(t *testing.T) {
	t.Parallel()
	m := NewManager()
	id, _ := m.Create()

	st, err := m.Move(id, board.SideWhite, pos(t, "e2"), pos(t, "e4"), board.PieceUnknown)
	if err != nil {
		t.Fatalf("e2e4: %v", err)
	}
	if st.Turn != board.SideBlack {
		t.Errorf("turn after e2e4: got %s, want %s", st.Turn, board.SideBlack)
	}
	if len(st.History) != 1 || st.History[0].Notation != "e4" {
		t.Errorf("history after e2e4: %v", st.History)
	}

	got, err := m.Get(id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.FEN() != st.FEN() {
		t.Errorf("stored state diverged: got %q, want %q", got.FEN(), st.FEN())
	}
}

func TestManagerMovePromotion(t *testing.T) {
	t.Parallel()
	base, err := game.ParseFEN("k7/4P3/8/8/8/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("parse fen: %v", err)
	}

	m := NewManager()
	m.games["default"] = &entry{state: base}
	m.games["knight"] = &entry{state: base}

	st, err := m.Move("default", board.SideWhite, pos(t, "e7"), pos(t, "e8"), board.PieceUnknown)
	if err != nil {
		t.Fatalf("e7e8: %v", err)
	}
	if got := st.Board.At(pos(t, "e8")).Piece; got != board.PieceQueen {
		t.Errorf("unspecified promotion: got %s, want %s", got, board.PieceQueen)
	}

	st, err = m.Move("knight", board.SideWhite, pos(t, "e7"), pos(t, "e8"), board.PieceKnight)
	if err != nil {
		t.Fatalf("e7e8n: %v", err)
	}
	if got := st.Board.At(pos(t, "e8")).Piece; got != board.PieceKnight {
		t.Errorf("knight promotion: got %s, want %s", got, board.PieceKnight)
	}
}

func TestManagerMoveErrors(t *testing.T) {
	t.Parallel()
	m := NewManager()
	id, _ := m.Create()

	if _, err := m.Move("nope", board.SideWhite, pos(t, "e2"), pos(t, "e4"), board.PieceUnknown); !errors.Is(err, ErrGameNotFound) {
		t.Errorf("unknown game: got %v, want ErrGameNotFound", err)
	}
	if _, err := m.Move(id, board.SideBlack, pos(t, "e7"), pos(t, "e5"), board.PieceUnknown); !errors.Is(err, ErrWrongSide) {
		t.Errorf("black moving first: got %v, want ErrWrongSide", err)
	}
	if _, err := m.Move(id, board.SideWhite, pos(t, "e2"), pos(t, "e5"), board.PieceUnknown); !errors.Is(err, game.ErrIllegalMove) {
		t.Errorf("e2e5: got %v, want ErrIllegalMove", err)
	}
}

func TestManagerMoveAfterCheckmate(t *testing.T) {
	t.Parallel()
	m := NewManager()
	id, _ := m.Create()

	mate := [][3]string{
		{"w", "f2", "f3"},
		{"b", "e7", "e5"},
		{"w", "g2", "g4"},
		{"b", "d8", "h4"},
	}
	var st game.State
	var err error
	for _, mv := range mate {
		side := board.SideWhite
		if mv[0] == "b" {
			side = board.SideBlack
		}
		st, err = m.Move(id, side, pos(t, mv[1]), pos(t, mv[2]), board.PieceUnknown)
		if err != nil {
			t.Fatalf("%s%s: %v", mv[1], mv[2], err)
		}
	}
	if !st.Checkmate {
		t.Fatalf("expected checkmate after fool's mate, got %q", st.FEN())
	}
	if _, err := m.Move(id, board.SideWhite, pos(t, "e2"), pos(t, "e4"), board.PieceUnknown); !errors.Is(err, ErrGameOver) {
		t.Errorf("move after mate: got %v, want ErrGameOver", err)
	}
}

func TestManagerLegalMoves(t *testing.T) {
	t.Parallel()
	m := NewManager()
	id, _ := m.Create()

	moves, err := m.LegalMoves(id, pos(t, "g1"))
	if err != nil {
		t.Fatalf("LegalMoves: %v", err)
	}
	if len(moves) != 2 {
		t.Errorf("knight on g1 has %d moves, want 2", len(moves))
	}
	if _, err := m.LegalMoves("nope", pos(t, "g1")); !errors.Is(err, ErrGameNotFound) {
		t.Errorf("unknown game: got %v, want ErrGameNotFound", err)
	}
}
