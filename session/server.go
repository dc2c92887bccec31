package session

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/dkarlsen/arbiter/board"
	"github.com/dkarlsen/arbiter/game"
	"github.com/dkarlsen/arbiter/position"
)

const maxJSONBodyBytes int64 = 1 << 20

// Server exposes the game registry over a JSON HTTP API.
type Server struct {
	manager *Manager
	srvMu   sync.Mutex
	srv     *http.Server
}

func NewServer(manager *Manager) *Server {
	return &Server{
		manager: manager,
	}
}

// Listen starts the HTTP server and blocks until it stops.
func (s *Server) Listen(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 16,
	}

	s.srvMu.Lock()
	s.srv = srv
	s.srvMu.Unlock()
	defer func() {
		s.srvMu.Lock()
		s.srv = nil
		s.srvMu.Unlock()
	}()

	log.Printf("HTTP listening on %s", addr)
	err := srv.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Close attempts a graceful shutdown of the HTTP server.
func (s *Server) Close(ctx context.Context) error {
	s.srvMu.Lock()
	srv := s.srv
	s.srvMu.Unlock()
	if srv == nil {
		return nil
	}
	return srv.Shutdown(ctx)
}

// Routes configures the ServeMux for the JSON API.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/games", s.withJSON(s.handleGames))
	mux.HandleFunc("/api/games/", s.withJSON(s.handleGame))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	return mux
}

func (s *Server) withJSON(h func(http.ResponseWriter, *http.Request)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		if r.Body != nil && r.Body != http.NoBody {
			r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
		}
		h(w, r)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.WriteHeader(status)
	writeJSON(w, map[string]string{"error": msg})
}

func isBodyTooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	return errors.As(err, &maxErr)
}

// ---- API: game collection ----

func (s *Server) handleGames(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, map[string]any{"games": s.manager.List()})
	case http.MethodPost:
		if r.Body != nil {
			r.Body.Close()
		}
		id, st := s.manager.Create()
		w.WriteHeader(http.StatusCreated)
		writeJSON(w, map[string]any{"state": statePayloadFrom(id, st)})
	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

// ---- API: single game ----

// handleGame dispatches /api/games/{id}, /api/games/{id}/move and
// /api/games/{id}/moves by hand.
func (s *Server) handleGame(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/api/games/")
	id, action, _ := strings.Cut(rest, "/")
	if id == "" {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	switch action {
	case "":
		s.handleGameState(w, r, id)
	case "move":
		s.handleGameMove(w, r, id)
	case "moves":
		s.handleGameMoves(w, r, id)
	default:
		writeError(w, http.StatusNotFound, "not found")
	}
}

func (s *Server) handleGameState(w http.ResponseWriter, r *http.Request, id string) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	st, err := s.manager.Get(id)
	if err != nil {
		writeGameError(w, err)
		return
	}
	writeJSON(w, map[string]any{"state": statePayloadFrom(id, st)})
}

func (s *Server) handleGameMoves(w http.ResponseWriter, r *http.Request, id string) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	from, err := position.NewPosFromNotation(strings.ToLower(strings.TrimSpace(r.URL.Query().Get("from"))))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid from square")
		return
	}
	moves, err := s.manager.LegalMoves(id, from)
	if err != nil {
		writeGameError(w, err)
		return
	}
	out := make([]string, 0, len(moves))
	for _, mv := range moves {
		out = append(out, mv.UCI())
	}
	writeJSON(w, map[string]any{"moves": out})
}

type moveBody struct {
	Side      string `json:"side"`
	From      string `json:"from"`
	To        string `json:"to"`
	Promotion string `json:"promotion"`
}

func (s *Server) handleGameMove(w http.ResponseWriter, r *http.Request, id string) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	defer r.Body.Close()
	var body moveBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		if isBodyTooLarge(err) {
			writeError(w, http.StatusRequestEntityTooLarge, "request too large")
			return
		}
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	side, ok := parseSide(body.Side)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid side")
		return
	}
	from, err := position.NewPosFromNotation(strings.ToLower(strings.TrimSpace(body.From)))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid from square")
		return
	}
	to, err := position.NewPosFromNotation(strings.ToLower(strings.TrimSpace(body.To)))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid to square")
		return
	}
	var promotion board.Piece
	if p := strings.TrimSpace(body.Promotion); p != "" {
		promotion, ok = parsePromotion(p)
		if !ok {
			writeError(w, http.StatusBadRequest, "invalid promotion choice")
			return
		}
	}

	st, err := s.manager.Move(id, side, from, to, promotion)
	if err != nil {
		writeGameError(w, err)
		return
	}
	writeJSON(w, map[string]any{"state": statePayloadFrom(id, st)})
}

func writeGameError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrGameNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrWrongSide), errors.Is(err, ErrGameOver):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, game.ErrIllegalMove), errors.Is(err, game.ErrInvalidPromotion):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

// ---- parsing helpers ----

func parseSide(s string) (board.Side, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "white", "w":
		return board.SideWhite, true
	case "black", "b":
		return board.SideBlack, true
	default:
		return board.SideUnknown, false
	}
}

func parsePromotion(s string) (board.Piece, bool) {
	needle := strings.ToLower(s)
	for _, p := range board.PawnPromoteCandidates {
		if needle == strings.ToLower(p.SymbolAlgebra()) || needle == strings.ToLower(p.Name()) {
			return p, true
		}
	}
	return board.PieceUnknown, false
}

// ---- payloads ----

type statePayload struct {
	ID        string              `json:"id"`
	FEN       string              `json:"fen"`
	Turn      string              `json:"turn"`
	Board     [][]string          `json:"board"`
	InCheck   bool                `json:"inCheck"`
	Checkmate bool                `json:"checkmate"`
	Stalemate bool                `json:"stalemate"`
	History   []string            `json:"history"`
	Captured  map[string][]string `json:"captured"`
}

func statePayloadFrom(id string, st game.State) statePayload {
	grid := make([][]string, board.Height)
	for row := int8(0); row < board.Height; row++ {
		grid[row] = make([]string, board.Width)
		for col := int8(0); col < board.Width; col++ {
			c := st.Board.At(position.New(row, col))
			if c.IsEmpty() {
				continue
			}
			grid[row][col] = c.Piece.SymbolFEN(c.Side)
		}
	}
	history := make([]string, 0, len(st.History))
	for _, mv := range st.History {
		history = append(history, mv.String())
	}
	captured := make(map[string][]string, len(st.Captured))
	for side, pieces := range st.Captured {
		names := make([]string, 0, len(pieces))
		for _, p := range pieces {
			names = append(names, p.Name())
		}
		captured[strings.ToLower(side.String())] = names
	}
	return statePayload{
		ID:        id,
		FEN:       st.FEN(),
		Turn:      strings.ToLower(st.Turn.String()),
		Board:     grid,
		InCheck:   st.InCheck,
		Checkmate: st.Checkmate,
		Stalemate: st.Stalemate,
		History:   history,
		Captured:  captured,
	}
}
