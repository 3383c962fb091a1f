// Package storage persists game snapshots in a badger key-value store.
package storage

import (
	"encoding/json"
	stderrors "errors"

	"github.com/dgraph-io/badger/v4"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// keyPrefix namespaces game snapshots; the value under game/<id> is the
// JSON encoding of engine.Snapshot.
const keyPrefix = "game/"

// Store wraps BadgerDB for snapshot persistence.
type Store struct {
	db *badger.DB
}

// Open opens (or creates) a store in dir.
func Open(dir string) (*Store, error) {
	return open(badger.DefaultOptions(dir))
}

// OpenInMemory opens a store that lives only as long as the process.
func OpenInMemory() (*Store, error) {
	return open(badger.DefaultOptions("").WithInMemory(true))
}

// OpenConfig opens the store described by cfg.
func OpenConfig(cfg *config.StorageConfig) (*Store, error) {
	if cfg.InMemory {
		return OpenInMemory()
	}
	return open(badger.DefaultOptions(cfg.DataDir).WithSyncWrites(cfg.SyncWrites))
}

func open(opts badger.Options) (*Store, error) {
	opts.Logger = nil
	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrap(err, "open store")
	}
	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func gameKey(id string) []byte {
	return []byte(keyPrefix + id)
}

// Save writes the snapshot of game id, replacing any previous one.
func (s *Store) Save(id string, snap *engine.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return errors.Wrapf(err, "encode game %s", id)
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(gameKey(id), data)
	})
}

// Load reads the snapshot of game id. A missing game returns an error
// wrapping errors.ErrGameNotFound.
func (s *Store) Load(id string) (*engine.Snapshot, error) {
	var snap engine.Snapshot
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(gameKey(id))
		if stderrors.Is(err, badger.ErrKeyNotFound) {
			return &errors.GameError{Err: errors.ErrGameNotFound, GameID: id}
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &snap)
		})
	})
	if err != nil {
		return nil, err
	}
	return &snap, nil
}

// Delete removes game id. Deleting a missing game is not an error.
func (s *Store) Delete(id string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(gameKey(id))
	})
}

// List returns the ids of all stored games in key order.
func (s *Store) List() ([]string, error) {
	var ids []string
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = []byte(keyPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			key := it.Item().Key()
			ids = append(ids, string(key[len(keyPrefix):]))
		}
		return nil
	})
	return ids, err
}
