// Package docstore is a thread-safe in-memory registry of parsed books for
// the HTTP service. The parse pipeline deposits records here; the API reads
// them back out.
package docstore

import (
	"sort"
	"sync"
	"time"

	"lessongest/internal/assemble"
	"lessongest/internal/book"
)

// Record is one stored parse result with identity metadata.
type Record struct {
	ID          string          `json:"doc_id"`
	Filename    string          `json:"filename"`
	ContentHash string          `json:"content_hash"`
	CreatedAt   time.Time       `json:"created_at"`
	Counts      assemble.Counts `json:"counts"`

	Document *book.Document `json:"-"`
}

// Store holds parsed books keyed by document id, with a content-hash index
// for dedup.
type Store struct {
	mu     sync.RWMutex
	byID   map[string]*Record
	byHash map[string]string
}

func New() *Store {
	return &Store{
		byID:   make(map[string]*Record),
		byHash: make(map[string]string),
	}
}

func (s *Store) Put(rec *Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byID[rec.ID] = rec
	if rec.ContentHash != "" {
		s.byHash[rec.ContentHash] = rec.ID
	}
}

func (s *Store) Get(id string) *Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.byID[id]
}

// ByHash returns the record with the given content hash, or nil.
func (s *Store) ByHash(hash string) *Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.byHash[hash]
	if !ok {
		return nil
	}
	return s.byID[id]
}

// List returns all records ordered by creation time.
func (s *Store) List() []*Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	recs := make([]*Record, 0, len(s.byID))
	for _, r := range s.byID {
		recs = append(recs, r)
	}
	sort.Slice(recs, func(i, j int) bool {
		if recs[i].CreatedAt.Equal(recs[j].CreatedAt) {
			return recs[i].ID < recs[j].ID
		}
		return recs[i].CreatedAt.Before(recs[j].CreatedAt)
	})
	return recs
}

// Delete removes a record; it reports whether one existed.
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.byID[id]
	if !ok {
		return false
	}
	delete(s.byID, id)
	if rec.ContentHash != "" && s.byHash[rec.ContentHash] == id {
		delete(s.byHash, rec.ContentHash)
	}
	return true
}
