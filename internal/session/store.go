package session

import (
	"context"
	"errors"
	"sync"
)

var (
	ErrNotFound = errors.New("game not found")
	ErrExists   = errors.New("game already exists")
)

// Store 保存对局记录。Update 对同一局的读-改-写是原子的，fn 可能被重试。
type Store interface {
	Create(ctx context.Context, rec *Record) error
	Load(ctx context.Context, id string) (*Record, error)
	Update(ctx context.Context, id string, fn func(*Record) error) (*Record, error)
	Delete(ctx context.Context, id string) error
}

// MemoryStore 进程内存储，本地单机够用。
type MemoryStore struct {
	mu    sync.RWMutex
	games map[string]*Record
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{games: make(map[string]*Record)}
}

func (s *MemoryStore) Create(_ context.Context, rec *Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.games[rec.ID]; ok {
		return ErrExists
	}
	s.games[rec.ID] = rec.clone()
	return nil
}

func (s *MemoryStore) Load(_ context.Context, id string) (*Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.games[id]
	if !ok {
		return nil, ErrNotFound
	}
	return rec.clone(), nil
}

func (s *MemoryStore) Update(_ context.Context, id string, fn func(*Record) error) (*Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.games[id]
	if !ok {
		return nil, ErrNotFound
	}
	work := rec.clone()
	if err := fn(work); err != nil {
		return nil, err
	}
	s.games[id] = work
	return work.clone(), nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.games[id]; !ok {
		return ErrNotFound
	}
	delete(s.games, id)
	return nil
}
