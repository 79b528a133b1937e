// Package store provides the process-lifetime quiz store: an injected
// object owned by main and shared by the API layer.
package store

import (
	"sync"

	"eduquest/internal/domain"
)

// MemoryQuizStore keeps quizzes in a mutex-guarded map. There is no
// eviction and no TTL; entries live until the process exits.
type MemoryQuizStore struct {
	mu      sync.RWMutex
	quizzes map[string]*domain.Quiz
}

// NewMemoryQuizStore creates an empty store.
func NewMemoryQuizStore() *MemoryQuizStore {
	return &MemoryQuizStore{
		quizzes: make(map[string]*domain.Quiz),
	}
}

// Save stores a quiz under its id after checking its invariants. Ids are
// UUIDs, so concurrent writers never target the same key; the lock only
// guards the map itself.
func (s *MemoryQuizStore) Save(quiz *domain.Quiz) error {
	if err := quiz.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.quizzes[quiz.ID] = quiz
	return nil
}

// Get returns the stored quiz or a quiz-not-found domain error.
func (s *MemoryQuizStore) Get(id string) (*domain.Quiz, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	quiz, ok := s.quizzes[id]
	if !ok {
		return nil, domain.NewQuizNotFoundError()
	}
	return quiz, nil
}

// Len reports how many quizzes are stored. Used by the health endpoint.
func (s *MemoryQuizStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.quizzes)
}

var _ domain.QuizStore = (*MemoryQuizStore)(nil)
