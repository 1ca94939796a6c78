// Package memory backs the repositories with process-local storage, for tests
// and DSN-less demo runs. Game state is kept as snapshot bytes so load/save
// exercises the same codec the database path uses.
package memory

import (
	"context"
	"sync"
	"time"

	"orebound/internal/app/ports"
	"orebound/internal/domain/game"
	"orebound/internal/domain/news"
	"orebound/internal/random"
)

type gameRecord struct {
	snapshot []byte
	version  int64
}

type Store struct {
	mu    sync.RWMutex
	games map[string]gameRecord
	log   map[string][]news.NewsItem

	// Rand seeds the scheduler of materialized states.
	Rand random.Source
}

func NewStore(src random.Source) *Store {
	return &Store{
		games: map[string]gameRecord{},
		log:   map[string][]news.NewsItem{},
		Rand:  src,
	}
}

func (s *Store) Load(_ context.Context, gameID string) (*game.State, error) {
	s.mu.RLock()
	rec, ok := s.games[gameID]
	s.mu.RUnlock()
	if !ok {
		return nil, ports.ErrNotFound
	}
	state := game.NewState(time.Time{}, 0, 0, s.Rand)
	if err := state.Restore(rec.snapshot); err != nil {
		return nil, err
	}
	state.Version = rec.version
	return state, nil
}

func (s *Store) SaveWithVersion(_ context.Context, gameID string, state *game.State, expectedVersion int64) error {
	data, err := state.Snapshot()
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.games[gameID]
	if expectedVersion == 0 {
		if ok {
			return ports.ErrConflict
		}
		s.games[gameID] = gameRecord{snapshot: data, version: state.Version}
		return nil
	}
	if !ok {
		return ports.ErrNotFound
	}
	if rec.version != expectedVersion {
		return ports.ErrConflict
	}
	s.games[gameID] = gameRecord{snapshot: data, version: state.Version}
	return nil
}

func (s *Store) Append(_ context.Context, gameID string, items []news.NewsItem) error {
	if len(items) == 0 {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.log[gameID] = append(s.log[gameID], items...)
	return nil
}

func (s *Store) ListByGameID(_ context.Context, gameID string, limit int) ([]news.NewsItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := s.log[gameID]
	// Newest first, matching the database adapter.
	out := make([]news.NewsItem, 0, len(items))
	for i := len(items) - 1; i >= 0; i-- {
		out = append(out, items[i])
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}
