// Package session keeps a registry of live games addressed by id. Each game
// is guarded by its own mutex, so requests on different games never block
// each other. Mutations can be written through to a Store and published to
// subscribers.
package session

import (
	stderrors "errors"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Store persists game snapshots. Load must return an error wrapping
// errors.ErrGameNotFound for unknown ids.
type Store interface {
	Save(id string, snap *engine.Snapshot) error
	Load(id string) (*engine.Snapshot, error)
	Delete(id string) error
	List() ([]string, error)
}

// subscriberBuffer is the capacity of each subscription channel. A
// subscriber that falls further behind misses intermediate snapshots.
const subscriberBuffer = 8

type entry struct {
	mu      sync.Mutex
	game    *engine.Game
	subs    map[int]chan engine.Snapshot
	nextSub int
}

// Manager is a concurrency-safe registry of games.
type Manager struct {
	mu       sync.RWMutex
	games    map[string]*entry
	store    Store
	autoSave bool
}

// Option configures a Manager.
type Option func(*Manager)

// WithStore restores unknown ids from store on first access. Games are
// written back by SaveAll, or after every change with WithAutoSave.
func WithStore(store Store) Option {
	return func(m *Manager) {
		m.store = store
	}
}

// WithAutoSave writes every change through to the store.
func WithAutoSave() Option {
	return func(m *Manager) {
		m.autoSave = true
	}
}

// NewManager creates an empty registry.
func NewManager(opts ...Option) *Manager {
	m := &Manager{games: make(map[string]*entry)}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Create starts a new game, from fen if it is not empty, and returns its id
// and initial snapshot.
func (m *Manager) Create(fen string) (string, engine.Snapshot, error) {
	g := engine.NewGame()
	if fen != "" {
		if err := g.LoadFEN(fen); err != nil {
			return "", engine.Snapshot{}, err
		}
	}

	id := uuid.New().String()
	e := &entry{game: g, subs: make(map[int]chan engine.Snapshot)}
	snap := g.ExportState()
	if m.autoSave {
		if err := m.save(id, &snap); err != nil {
			return "", engine.Snapshot{}, err
		}
	}

	m.mu.Lock()
	m.games[id] = e
	m.mu.Unlock()
	return id, snap, nil
}

// Get returns a snapshot of game id.
func (m *Manager) Get(id string) (engine.Snapshot, error) {
	e, err := m.lookup(id)
	if err != nil {
		return engine.Snapshot{}, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.game.ExportState(), nil
}

// Move plays a long algebraic move such as "e2e4" or "e7e8q".
func (m *Manager) Move(id, uci string) (engine.Snapshot, error) {
	return m.mutate(id, func(g *engine.Game) error {
		if err := g.PlayUCI(uci); err != nil {
			return &errors.GameError{Err: err, GameID: id, PlyNum: g.Ply() + 1, MoveText: uci}
		}
		return nil
	})
}

// Undo takes back the last move. An empty history returns an error
// wrapping errors.ErrNoHistory.
func (m *Manager) Undo(id string) (engine.Snapshot, error) {
	return m.mutate(id, func(g *engine.Game) error {
		if !g.Undo() {
			return &errors.GameError{Err: errors.ErrNoHistory, GameID: id}
		}
		return nil
	})
}

// ImportFEN replaces game id with the FEN position, clearing its history.
func (m *Manager) ImportFEN(id, fen string) (engine.Snapshot, error) {
	return m.mutate(id, func(g *engine.Game) error {
		if err := g.LoadFEN(fen); err != nil {
			return &errors.GameError{Err: err, GameID: id}
		}
		return nil
	})
}

// Reset returns game id to the starting position.
func (m *Manager) Reset(id string) (engine.Snapshot, error) {
	return m.mutate(id, func(g *engine.Game) error {
		g.Reset()
		return nil
	})
}

// LegalMoves returns the legal moves from square, or every legal move of
// the side to move when square is empty.
func (m *Manager) LegalMoves(id, square string) ([]chess.Move, error) {
	var sq chess.Square
	if square != "" {
		var err error
		if sq, err = chess.ParseSquare(square); err != nil {
			return nil, &errors.GameError{Err: errors.Wrap(errors.ErrIllegalMove, err.Error()), GameID: id}
		}
	}

	e, err := m.lookup(id)
	if err != nil {
		return nil, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if square == "" {
		return e.game.AllLegalMoves(), nil
	}
	return e.game.LegalMoves(sq), nil
}

// Delete removes game id and closes its subscriptions.
func (m *Manager) Delete(id string) error {
	m.mu.Lock()
	e, ok := m.games[id]
	delete(m.games, id)
	m.mu.Unlock()

	if m.store != nil {
		if !ok {
			if _, err := m.lookupStored(id); err != nil {
				return err
			}
		}
		if err := m.store.Delete(id); err != nil {
			return &errors.GameError{Err: err, GameID: id}
		}
	} else if !ok {
		return notFound(id)
	}

	if ok {
		e.mu.Lock()
		for n, ch := range e.subs {
			close(ch)
			delete(e.subs, n)
		}
		e.mu.Unlock()
	}
	return nil
}

// IDs returns the ids of every known game, sorted. With a store this
// includes persisted games that have not been restored yet.
func (m *Manager) IDs() ([]string, error) {
	ids := m.liveIDs()
	if m.store != nil {
		stored, err := m.store.List()
		if err != nil {
			return nil, err
		}
		seen := make(map[string]bool, len(ids))
		for _, id := range ids {
			seen[id] = true
		}
		for _, id := range stored {
			if !seen[id] {
				ids = append(ids, id)
			}
		}
	}
	sort.Strings(ids)
	return ids, nil
}

// liveIDs returns the ids of the games in memory.
func (m *Manager) liveIDs() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ids := make([]string, 0, len(m.games))
	for id := range m.games {
		ids = append(ids, id)
	}
	return ids
}

// SaveAll writes every game in memory to the store.
func (m *Manager) SaveAll() error {
	if m.store == nil {
		return nil
	}
	for _, id := range m.liveIDs() {
		m.mu.RLock()
		e, ok := m.games[id]
		m.mu.RUnlock()
		if !ok {
			continue
		}
		e.mu.Lock()
		snap := e.game.ExportState()
		e.mu.Unlock()
		if err := m.save(id, &snap); err != nil {
			return err
		}
	}
	return nil
}

// Subscribe returns a channel that receives a snapshot after every change
// to game id, and a function that ends the subscription. The channel is
// closed when the subscription ends or the game is deleted.
func (m *Manager) Subscribe(id string) (<-chan engine.Snapshot, func(), error) {
	e, err := m.lookup(id)
	if err != nil {
		return nil, nil, err
	}

	e.mu.Lock()
	n := e.nextSub
	e.nextSub++
	ch := make(chan engine.Snapshot, subscriberBuffer)
	e.subs[n] = ch
	e.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			e.mu.Lock()
			defer e.mu.Unlock()
			if c, ok := e.subs[n]; ok {
				close(c)
				delete(e.subs, n)
			}
		})
	}
	return ch, cancel, nil
}

// mutate runs fn on game id under its lock. On success the new snapshot is
// saved and published.
func (m *Manager) mutate(id string, fn func(g *engine.Game) error) (engine.Snapshot, error) {
	e, err := m.lookup(id)
	if err != nil {
		return engine.Snapshot{}, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if err := fn(e.game); err != nil {
		return engine.Snapshot{}, err
	}

	snap := e.game.ExportState()
	if m.autoSave {
		if err := m.save(id, &snap); err != nil {
			return engine.Snapshot{}, err
		}
	}
	for _, ch := range e.subs {
		select {
		case ch <- snap:
		default:
		}
	}
	return snap, nil
}

// lookup finds game id in memory, restoring it from the store if needed.
func (m *Manager) lookup(id string) (*entry, error) {
	m.mu.RLock()
	e, ok := m.games[id]
	m.mu.RUnlock()
	if ok {
		return e, nil
	}
	if m.store == nil {
		return nil, notFound(id)
	}

	g, err := m.lookupStored(id)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if e, ok := m.games[id]; ok {
		return e, nil
	}
	e = &entry{game: g, subs: make(map[int]chan engine.Snapshot)}
	m.games[id] = e
	return e, nil
}

// lookupStored loads game id from the store.
func (m *Manager) lookupStored(id string) (*engine.Game, error) {
	snap, err := m.store.Load(id)
	if err != nil {
		if stderrors.Is(err, errors.ErrGameNotFound) {
			return nil, notFound(id)
		}
		return nil, &errors.GameError{Err: err, GameID: id}
	}
	g := engine.NewGame()
	if err := g.LoadState(*snap); err != nil {
		return nil, &errors.GameError{Err: err, GameID: id}
	}
	return g, nil
}

func (m *Manager) save(id string, snap *engine.Snapshot) error {
	if m.store == nil {
		return nil
	}
	if err := m.store.Save(id, snap); err != nil {
		return &errors.GameError{Err: errors.Wrap(err, "save"), GameID: id}
	}
	return nil
}

func notFound(id string) error {
	return &errors.GameError{Err: errors.ErrGameNotFound, GameID: id}
}
