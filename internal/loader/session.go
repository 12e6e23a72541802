package loader

import (
	"context"
	"sync"
	"sync/atomic"
)

// Session serializes snapshot publication. Every load is tagged with a
// monotonically increasing sequence number; a completed load is applied only
// if its sequence is still the newest issued, so a stale response that
// resolves after a newer request can never overwrite the newer result.
type Session struct {
	loader  *Loader
	nextSeq atomic.Uint64

	mu      sync.RWMutex
	current Snapshot
}

func NewSession(l *Loader) *Session {
	return &Session{
		loader:  l,
		current: Snapshot{State: StateLoading},
	}
}

// Begin issues the next sequence number.
func (s *Session) Begin() uint64 {
	return s.nextSeq.Add(1)
}

// Load runs one full load under a fresh sequence number and publishes the
// result if it is still current. The returned snapshot is the one produced by
// this load regardless of whether it won publication.
func (s *Session) Load(ctx context.Context) Snapshot {
	seq := s.Begin()
	snap := s.loader.Load(ctx)
	snap.Seq = seq
	s.Publish(snap)
	return snap
}

// Publish applies snap only if no newer sequence has been issued since.
// Reports whether the snapshot became current.
func (s *Session) Publish(snap Snapshot) bool {
	if snap.Seq != s.nextSeq.Load() {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if snap.Seq < s.current.Seq {
		return false
	}
	s.current = snap
	return true
}

// Current returns the latest published snapshot. Before any publication it is
// a Loading snapshot.
func (s *Session) Current() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}
