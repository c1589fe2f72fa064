package server

import (
	"fmt"
	"testing"

	"github.com/echotrace/echotrace/internal/model"
)

func TestRecentStore_NewestFirst(t *testing.T) {
	s := newRecentStore(10)
	s.Record(model.CapturedRequest{Path: "/first"})
	s.Record(model.CapturedRequest{Path: "/second"})

	got := s.Recent()
	if len(got) != 2 {
		t.Fatalf("expected 2 requests, got %d", len(got))
	}
	if got[0].Path != "/second" || got[1].Path != "/first" {
		t.Fatalf("expected newest first, got %+v", got)
	}
}

func TestRecentStore_EvictsOldest(t *testing.T) {
	s := newRecentStore(3)
	for i := 0; i < 5; i++ {
		s.Record(model.CapturedRequest{Path: fmt.Sprintf("/req-%d", i)})
	}

	got := s.Recent()
	if len(got) != 3 {
		t.Fatalf("expected capacity 3, got %d", len(got))
	}
	if got[0].Path != "/req-4" {
		t.Errorf("expected newest /req-4 first, got %s", got[0].Path)
	}
	for _, r := range got {
		if r.Path == "/req-0" || r.Path == "/req-1" {
			t.Errorf("oldest entry not evicted: %s", r.Path)
		}
	}
}

func TestRecentStore_DefaultCapacity(t *testing.T) {
	s := newRecentStore(0)
	if s.capacity != defaultRecentCapacity {
		t.Fatalf("expected default capacity %d, got %d", defaultRecentCapacity, s.capacity)
	}
}
