package client

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// MemoryStore is an in-memory Store for tests and single-session use.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]Record
}

// NewMemoryStore builds an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string]Record)}
}

// Get implements Store.
func (s *MemoryStore) Get(ctx context.Context, id string) (Record, error) {
	if err := ctx.Err(); err != nil {
		return Record{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.records[id]
	if !ok {
		return Record{}, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	return cloneRecord(rec), nil
}

// Put implements Store.
func (s *MemoryStore) Put(ctx context.Context, rec Record) (Record, error) {
	if err := ctx.Err(); err != nil {
		return Record{}, err
	}
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[rec.ID] = cloneRecord(rec)
	return rec, nil
}

// List implements Store.
func (s *MemoryStore) List(ctx context.Context) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Record, 0, len(s.records))
	for _, rec := range s.records {
		out = append(out, cloneRecord(rec))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// AppendLetter implements Store.
func (s *MemoryStore) AppendLetter(ctx context.Context, clientID string, letter Letter) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.records[clientID]
	if !ok {
		return fmt.Errorf("%w: %q", ErrNotFound, clientID)
	}
	rec.Letters = append(rec.Letters, letter)
	s.records[clientID] = rec
	return nil
}

// MarkLetterSent implements Store.
func (s *MemoryStore) MarkLetterSent(ctx context.Context, clientID, letterType string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.records[clientID]
	if !ok {
		return fmt.Errorf("%w: %q", ErrNotFound, clientID)
	}
	for i := len(rec.Letters) - 1; i >= 0; i-- {
		if rec.Letters[i].Type == letterType {
			rec.Letters[i].Sent = true
			s.records[clientID] = rec
			return nil
		}
	}
	return fmt.Errorf("client: no %q letter on record %q", letterType, clientID)
}

func cloneRecord(rec Record) Record {
	out := rec
	out.Letters = append([]Letter(nil), rec.Letters...)
	return out
}

var _ Store = (*MemoryStore)(nil)
