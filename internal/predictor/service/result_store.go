package service

import (
	"sync"

	"golang-stock-predictor/internal/predictor/dto"
)

// ResultStore is the single displayed-result slot. Every request takes a
// sequence number at issue time; only the completion carrying the latest
// issued sequence may replace the slot, so overlapping submissions cannot
// leave a stale result displayed.
type ResultStore struct {
	mu     sync.Mutex
	issued uint64
	result *dto.PredictionResult
}

// NewResultStore creates an empty result slot.
func NewResultStore() *ResultStore {
	return &ResultStore{}
}

// Issue reserves the next sequence number for a new request.
func (s *ResultStore) Issue() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.issued++
	return s.issued
}

// Publish replaces the slot if seq is the latest issued sequence. It
// reports whether the result was accepted.
func (s *ResultStore) Publish(seq uint64, result *dto.PredictionResult) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.issued {
		return false
	}
	s.result = result
	return true
}

// Latest returns the currently displayed result, if any.
func (s *ResultStore) Latest() (*dto.PredictionResult, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.result == nil {
		return nil, false
	}
	return s.result, true
}
