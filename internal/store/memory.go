package store

import (
	"errors"
	"sync"

	"github.com/i474232898/weather-lookup/internal/weather"
)

// ErrNotFound is returned when no record exists for the given id.
var ErrNotFound = errors.New("weather record not found")

// MemoryStore is a concurrency-safe in-memory record store. Records are kept
// for the lifetime of the process; there is no eviction.
type MemoryStore struct {
	mu sync.RWMutex

	// key: record id
	records map[string]weather.Record
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		records: make(map[string]weather.Record),
	}
}

// Put stores a record under its id. A record with an existing id replaces
// the previous one.
func (s *MemoryStore) Put(rec weather.Record) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records[rec.ID] = rec
}

// Get returns the record stored under id.
func (s *MemoryStore) Get(id string) (weather.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[id]
	if !ok {
		return weather.Record{}, ErrNotFound
	}
	return rec, nil
}

// Len reports how many records are stored.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.records)
}
