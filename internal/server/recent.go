package server

import (
	"sync"

	"github.com/echotrace/echotrace/internal/model"
)

const defaultRecentCapacity = 100

// RecentStore keeps the most recent captured requests in a bounded ring.
// Oldest entries are evicted first.
type RecentStore struct {
	mu       sync.Mutex
	capacity int
	requests []model.CapturedRequest
}

func newRecentStore(capacity int) *RecentStore {
	if capacity <= 0 {
		capacity = defaultRecentCapacity
	}
	return &RecentStore{capacity: capacity}
}

// Record implements handler.Recorder.
func (s *RecentStore) Record(req model.CapturedRequest) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = append(s.requests, req)
	if len(s.requests) > s.capacity {
		s.requests = s.requests[len(s.requests)-s.capacity:]
	}
}

// Recent returns the stored requests, newest first.
func (s *RecentStore) Recent() []model.CapturedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.CapturedRequest, len(s.requests))
	for i, req := range s.requests {
		out[len(s.requests)-1-i] = req
	}
	return out
}
