// Package session implements the bounded per-user conversation memory.
package session

import (
	"context"
	"sync"

	"kounhany-ai-go/internal/model"
)

// Store is the conversation-memory abstraction injected into the chat
// pipeline. A session holds at most the configured limit of turns; appending
// past the limit evicts the oldest turns. Turns are never mutated.
type Store interface {
	// Append adds turns to the tail of the user's session, then truncates
	// from the head to keep the session within its limit.
	Append(ctx context.Context, userID string, turns ...model.ChatMessage) error
	// Recent returns the last k turns without side effects. k <= 0 means all.
	Recent(ctx context.Context, userID string, k int) ([]model.ChatMessage, error)
	// HasHistory reports whether the user has a non-empty session.
	HasHistory(ctx context.Context, userID string) (bool, error)
	// Clear removes the user's session entirely.
	Clear(ctx context.Context, userID string) error
}

// memoryStore keeps sessions in process memory with one lock per user, so
// append-then-truncate is atomic per key.
type memoryStore struct {
	limit    int
	mu       sync.RWMutex
	sessions map[string]*userSession
}

type userSession struct {
	mu    sync.Mutex
	turns []model.ChatMessage
}

// NewMemoryStore creates an in-process Store with the given per-user turn
// limit.
func NewMemoryStore(limit int) Store {
	return &memoryStore{
		limit:    limit,
		sessions: make(map[string]*userSession),
	}
}

func (s *memoryStore) session(userID string) *userSession {
	s.mu.RLock()
	sess, ok := s.sessions[userID]
	s.mu.RUnlock()
	if ok {
		return sess
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok = s.sessions[userID]; ok {
		return sess
	}
	sess = &userSession{}
	s.sessions[userID] = sess
	return sess
}

func (s *memoryStore) Append(_ context.Context, userID string, turns ...model.ChatMessage) error {
	sess := s.session(userID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	sess.turns = append(sess.turns, turns...)
	if len(sess.turns) > s.limit {
		sess.turns = sess.turns[len(sess.turns)-s.limit:]
	}
	return nil
}

func (s *memoryStore) Recent(_ context.Context, userID string, k int) ([]model.ChatMessage, error) {
	sess := s.session(userID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	turns := sess.turns
	if k > 0 && len(turns) > k {
		turns = turns[len(turns)-k:]
	}
	out := make([]model.ChatMessage, len(turns))
	copy(out, turns)
	return out, nil
}

func (s *memoryStore) HasHistory(_ context.Context, userID string) (bool, error) {
	s.mu.RLock()
	sess, ok := s.sessions[userID]
	s.mu.RUnlock()
	if !ok {
		return false, nil
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return len(sess.turns) > 0, nil
}

func (s *memoryStore) Clear(_ context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, userID)
	return nil
}
