package session

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/dkarlsen/arbiter/board"
	"github.com/dkarlsen/arbiter/game"
	"github.com/dkarlsen/arbiter/position"
)

var (
	// ErrGameNotFound is returned for an unknown game ID.
	ErrGameNotFound = errors.New("game not found")
	// ErrWrongSide is returned when the requester does not own the side to move.
	ErrWrongSide = errors.New("wrong side")
	// ErrGameOver is returned for a move submitted to a finished game.
	ErrGameOver = errors.New("game over")
)

// Manager is the registry of active games: one engine state per game ID. The
// engine itself does no locking, so every transition of a game is serialized
// through its entry lock here.
type Manager struct {
	mu    sync.RWMutex
	games map[string]*entry
}

type entry struct {
	mu    sync.Mutex
	state game.State
}

func NewManager() *Manager {
	return &Manager{
		games: make(map[string]*entry),
	}
}

// Create registers a fresh game and returns its ID and initial state.
func (m *Manager) Create() (string, game.State) {
	id := newID()
	st := game.NewGame()

	m.mu.Lock()
	m.games[id] = &entry{state: st}
	m.mu.Unlock()

	return id, st
}

// Get returns the current snapshot of a game.
func (m *Manager) Get(id string) (game.State, error) {
	e, err := m.entry(id)
	if err != nil {
		return game.State{}, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state, nil
}

// List returns the IDs of all registered games in stable order.
func (m *Manager) List() []string {
	m.mu.RLock()
	ids := maps.Keys(m.games)
	m.mu.RUnlock()
	slices.Sort(ids)
	return ids
}

// LegalMoves returns the legal moves for a square of a game, for the
// transport layer to offer to its peer.
func (m *Manager) LegalMoves(id string, from position.Pos) ([]game.Move, error) {
	e, err := m.entry(id)
	if err != nil {
		return nil, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return game.LegalMoves(e.state, from)
}

// Move verifies that the requester owns the side to move, selects the legal
// candidate matching the untyped (from, to, promotion) request, and advances
// the game. The returned state is the new snapshot.
func (m *Manager) Move(id string, side board.Side, from, to position.Pos, promotion board.Piece) (game.State, error) {
	e, err := m.entry(id)
	if err != nil {
		return game.State{}, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	st := e.state
	if st.Terminal() {
		return game.State{}, ErrGameOver
	}
	if side != st.Turn {
		return game.State{}, fmt.Errorf("%w: %s to move", ErrWrongSide, st.Turn)
	}

	candidates, err := game.LegalMoves(st, from)
	if err != nil {
		return game.State{}, err
	}
	for _, cand := range candidates {
		if cand.To != to {
			continue
		}
		// an unspecified promotion resolves to a queen regardless of which
		// promotion candidate matched first
		override := promotion
		if override == board.PieceUnknown && cand.Promotion != board.PieceUnknown {
			override = board.PieceQueen
		}
		next, err := game.Execute(st, cand, override)
		if err != nil {
			return game.State{}, err
		}
		e.state = next
		return next, nil
	}
	return game.State{}, fmt.Errorf("%w: %s%s", game.ErrIllegalMove, from, to)
}

func (m *Manager) entry(id string) (*entry, error) {
	m.mu.RLock()
	e, ok := m.games[id]
	m.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrGameNotFound, id)
	}
	return e, nil
}

func newID() string {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		panic(err)
	}
	return hex.EncodeToString(buf)
}
