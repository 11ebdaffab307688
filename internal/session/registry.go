package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"
)

var ErrSessionNotFound = errors.New("session not found")

type key struct{ viewer, match string }

// Registry holds the open sessions, one per viewer and match.
type Registry struct {
	layout *Layout
	source SoldSource
	log    *slog.Logger

	mu       sync.RWMutex
	sessions map[key]*Session
}

// NewRegistry returns an empty registry. src may be nil, in which case new
// sessions start with no sold seats.
func NewRegistry(layout *Layout, src SoldSource, logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{
		layout:   layout,
		source:   src,
		log:      logger,
		sessions: make(map[key]*Session),
	}
}

// Layout returns the shared seat table.
func (r *Registry) Layout() *Layout { return r.layout }

// Open starts a fresh session for viewer and match, replacing any existing
// one, and seeds it from the sold source. A failing source is logged and
// the session opens with what it has.
func (r *Registry) Open(ctx context.Context, viewerID, matchID string) *Session {
	s := New(r.layout, viewerID, matchID)
	if n, err := s.Refresh(ctx, r.source); err != nil {
		r.log.Warn("seed sold seats failed", "match_id", matchID, "viewer_id", viewerID, "err", err)
	} else if n > 0 {
		r.log.Debug("seeded sold seats", "match_id", matchID, "count", n)
	}

	r.mu.Lock()
	r.sessions[key{viewerID, matchID}] = s
	r.mu.Unlock()
	return s
}

// Get returns the open session for viewer and match.
func (r *Registry) Get(viewerID, matchID string) (*Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[key{viewerID, matchID}]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// Close discards the session. Its state is not persisted.
func (r *Registry) Close(viewerID, matchID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	k := key{viewerID, matchID}
	if _, ok := r.sessions[k]; !ok {
		return ErrSessionNotFound
	}
	delete(r.sessions, k)
	return nil
}

// Refresh re-pulls sold seats for an open session.
func (r *Registry) Refresh(ctx context.Context, s *Session) (int, error) {
	return s.Refresh(ctx, r.source)
}

// MarkSold applies a sold-seat delivery to every open session of match and
// returns the number of sessions it touched.
func (r *Registry) MarkSold(matchID string, indices []int) int {
	r.mu.RLock()
	targets := make([]*Session, 0, len(r.sessions))
	for k, s := range r.sessions {
		if k.match == matchID {
			targets = append(targets, s)
		}
	}
	r.mu.RUnlock()

	for _, s := range targets {
		s.MarkSold(indices)
	}
	return len(targets)
}

// Len is the number of open sessions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
